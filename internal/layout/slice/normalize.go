package slice

import (
	"cmp"
	"slices"

	"github.com/rs/zerolog"
)

// SetStartIndexes returns a copy of root with every zone's StartIndex
// assigned, plus the zones in window order.
//
// Slices are ranked by Order and each starts where the previous one's
// capacity ends. The overflow starts after the last slice. When no overflow
// exists the highest ranked slice becomes one; an empty tree becomes a single
// row overflow. Overflows after the first one found are left out of the
// returned zones and dropped by Prune.
func SetStartIndexes(root Area, log zerolog.Logger) (Area, []Area) {
	out := root.Clone()
	if out.Kind == AreaParent && len(out.Children) == 0 {
		log.Warn().Msg("area tree is empty, using a single overflow area")
		out = NewOverflow(true)
	}

	var zones []*Area
	var overflow *Area
	var collect func(a *Area)
	collect = func(a *Area) {
		switch a.Kind {
		case AreaParent:
			a.Weights = normalizeWeights(a.Weights, len(a.Children))
			for i := range a.Children {
				collect(&a.Children[i])
			}
		case AreaSlice:
			zones = append(zones, a)
		case AreaOverflow:
			if overflow == nil {
				overflow = a
			} else {
				a.StartIndex = -1
			}
		}
	}
	collect(&out)

	slices.SortStableFunc(zones, func(x, y *Area) int { return cmp.Compare(x.Order, y.Order) })

	if overflow == nil && len(zones) == 0 {
		log.Warn().Msg("area tree has no zones, using a single overflow area")
		out = NewOverflow(true)
		return out, []Area{out}
	}
	if overflow == nil {
		last := zones[len(zones)-1]
		log.Warn().Int("order", last.Order).Msg("area tree has no overflow area, converting the last slice")
		last.Kind = AreaOverflow
		last.MaxChildren = 0
		overflow = last
		zones = zones[:len(zones)-1]
	}

	start := 0
	ordered := make([]Area, 0, len(zones)+1)
	for _, z := range zones {
		z.StartIndex = start
		start += z.MaxChildren
		ordered = append(ordered, *z)
	}
	overflow.StartIndex = start
	ordered = append(ordered, *overflow)

	return out, ordered
}

// Prune removes the zones that receive no window when count windows are laid
// out, and parents left without children. A pruned child's weight is shared
// equally by the children kept at the same level, and the kept weights are
// rescaled to sum to 1. Returns false when nothing
// remains.
func Prune(root Area, count int) (Area, bool) {
	seenOverflow := false
	return prune(root, count, &seenOverflow)
}

func prune(a Area, count int, seenOverflow *bool) (Area, bool) {
	switch a.Kind {
	case AreaSlice:
		return a, a.MaxChildren > 0 && a.StartIndex < count
	case AreaOverflow:
		if *seenOverflow || a.StartIndex < 0 {
			return a, false
		}
		*seenOverflow = true
		return a, a.StartIndex < count
	}

	out := Area{Kind: AreaParent, IsRow: a.IsRow}
	ignored := 0.0
	for i, c := range a.Children {
		pruned, ok := prune(c, count, seenOverflow)
		if !ok {
			ignored += a.Weights[i]
			continue
		}
		out.Children = append(out.Children, pruned)
		out.Weights = append(out.Weights, a.Weights[i])
	}
	if len(out.Children) == 0 {
		return out, false
	}
	share := ignored / float64(len(out.Children))
	for i := range out.Weights {
		out.Weights[i] += share
	}
	out.Weights = normalizeWeights(out.Weights, len(out.Children))
	return out, true
}
