// Package slice implements the area-tree layout engine. A static tree of
// areas describes zones of fixed capacity plus one overflow zone, and the
// engine pours its flat, ordered window list into those zones.
package slice

import (
	"fmt"
	"slices"
)

// AreaKind tags the variant held by an Area.
type AreaKind uint8

const (
	// AreaParent splits its rectangle between child areas by weight.
	AreaParent AreaKind = iota
	// AreaSlice holds up to MaxChildren windows.
	AreaSlice
	// AreaOverflow holds every window past the slices' capacity.
	AreaOverflow
)

func (k AreaKind) String() string {
	switch k {
	case AreaParent:
		return "parent"
	case AreaSlice:
		return "slice"
	case AreaOverflow:
		return "overflow"
	default:
		return fmt.Sprintf("AreaKind(%d)", uint8(k))
	}
}

// Area is one node of the area tree.
//
// Parent areas use Weights and Children. Slice areas use Order and
// MaxChildren. StartIndex is derived by SetStartIndexes and is ignored on input.
type Area struct {
	Kind        AreaKind
	IsRow       bool
	Weights     []float64
	Children    []Area
	Order       int
	MaxChildren int
	StartIndex  int
}

// NewParent returns a parent area. Weights are scaled to sum to 1; missing or
// all-zero weights are shared equally.
func NewParent(isRow bool, weights []float64, children ...Area) Area {
	return Area{Kind: AreaParent, IsRow: isRow, Weights: normalizeWeights(weights, len(children)), Children: children}
}

// normalizeWeights returns n weights summing to 1. Negative weights count as 0.
func normalizeWeights(weights []float64, n int) []float64 {
	out := make([]float64, n)
	sum := 0.0
	if len(weights) == n {
		for i, w := range weights {
			out[i] = max(w, 0)
			sum += out[i]
		}
	}
	if sum <= 0 {
		for i := range out {
			out[i] = 1 / float64(n)
		}
		return out
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// NewSlice returns a slice area ranked by order.
func NewSlice(order, maxChildren int, isRow bool) Area {
	return Area{Kind: AreaSlice, Order: order, MaxChildren: maxChildren, IsRow: isRow}
}

// NewOverflow returns an overflow area.
func NewOverflow(isRow bool) Area {
	return Area{Kind: AreaOverflow, IsRow: isRow}
}

// Clone deep copies a.
func (a Area) Clone() Area {
	out := a
	out.Weights = slices.Clone(a.Weights)
	if a.Children != nil {
		out.Children = make([]Area, len(a.Children))
		for i, c := range a.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// Capacity returns how many windows a zone takes when count windows are laid out.
func (a Area) Capacity(count int) int {
	left := max(count-a.StartIndex, 0)
	switch a.Kind {
	case AreaSlice:
		return min(a.MaxChildren, left)
	case AreaOverflow:
		return left
	default:
		return 0
	}
}

func (a Area) String() string {
	switch a.Kind {
	case AreaSlice:
		return fmt.Sprintf("slice(order=%d max=%d start=%d)", a.Order, a.MaxChildren, a.StartIndex)
	case AreaOverflow:
		return fmt.Sprintf("overflow(start=%d)", a.StartIndex)
	default:
		return fmt.Sprintf("parent(row=%t children=%d)", a.IsRow, len(a.Children))
	}
}
