package slice

import (
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/layout"
)

// PrimaryStackArea is one primary window on the left and every other window
// stacked on the right.
func PrimaryStackArea() Area {
	return NewParent(true, []float64{0.5, 0.5},
		NewSlice(0, 1, false),
		NewOverflow(false),
	)
}

// MultiColumnArea lays out one column per capacity. A capacity of zero marks
// the overflow column; only the last zero is kept as overflow, earlier ones
// become empty slices.
func MultiColumnArea(capacities ...int) Area {
	if len(capacities) == 0 {
		return NewParent(true, nil)
	}
	weight := 1 / float64(len(capacities))
	weights := make([]float64, len(capacities))
	children := make([]Area, len(capacities))
	overflowIdx := -1
	for i, capacity := range capacities {
		weights[i] = weight
		if capacity > 0 {
			children[i] = NewSlice(i, capacity, false)
			continue
		}
		if overflowIdx >= 0 {
			children[overflowIdx] = NewSlice(overflowIdx, 0, false)
		}
		children[i] = NewOverflow(false)
		overflowIdx = i
	}
	return NewParent(true, weights, children...)
}

// SecondaryPrimaryArea puts the primary column in the middle, the secondary
// column on the left and the overflow on the right.
func SecondaryPrimaryArea(primaryCapacity, secondaryCapacity int) Area {
	return NewParent(true, []float64{0.25, 0.5, 0.25},
		NewSlice(1, secondaryCapacity, false),
		NewSlice(0, primaryCapacity, false),
		NewOverflow(false),
	)
}

// NewPrimaryStack returns an engine using PrimaryStackArea.
func NewPrimaryStack(env layout.Env, identity entity.LayoutEngineIdentity, opts ...Option) *Engine {
	return New(env, identity, PrimaryStackArea(), append([]Option{WithName("Primary stack")}, opts...)...)
}

// NewMultiColumn returns an engine using MultiColumnArea.
func NewMultiColumn(env layout.Env, identity entity.LayoutEngineIdentity, capacities []int, opts ...Option) *Engine {
	return New(env, identity, MultiColumnArea(capacities...), append([]Option{WithName("Multi-column")}, opts...)...)
}

// NewSecondaryPrimary returns an engine using SecondaryPrimaryArea.
func NewSecondaryPrimary(env layout.Env, identity entity.LayoutEngineIdentity, primaryCapacity, secondaryCapacity int, opts ...Option) *Engine {
	return New(env, identity, SecondaryPrimaryArea(primaryCapacity, secondaryCapacity),
		append([]Option{WithName("Secondary primary")}, opts...)...)
}
