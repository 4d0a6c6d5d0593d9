package slice_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbtile/internal/layout/slice"
)

func TestSetStartIndexes(t *testing.T) {
	t.Run("slices are ranked by order", func(t *testing.T) {
		root, zones := slice.SetStartIndexes(slice.SecondaryPrimaryArea(1, 2), zerolog.Nop())

		require.Len(t, zones, 3)
		assert.Equal(t, 0, zones[0].Order)
		assert.Equal(t, 0, zones[0].StartIndex)
		assert.Equal(t, 1, zones[1].Order)
		assert.Equal(t, 1, zones[1].StartIndex)
		assert.Equal(t, slice.AreaOverflow, zones[2].Kind)
		assert.Equal(t, 3, zones[2].StartIndex)

		// The tree keeps its authored shape.
		assert.Equal(t, 1, root.Children[0].StartIndex)
		assert.Equal(t, 0, root.Children[1].StartIndex)
		assert.Equal(t, 3, root.Children[2].StartIndex)
	})

	t.Run("missing overflow converts the highest order slice", func(t *testing.T) {
		area := slice.NewParent(true, nil, slice.NewSlice(1, 2, false), slice.NewSlice(0, 1, false))

		root, zones := slice.SetStartIndexes(area, zerolog.Nop())

		require.Len(t, zones, 2)
		assert.Equal(t, slice.AreaSlice, root.Children[1].Kind)
		assert.Equal(t, slice.AreaOverflow, root.Children[0].Kind)
		assert.Equal(t, 1, root.Children[0].StartIndex)
		assert.Equal(t, slice.AreaSlice, area.Children[0].Kind, "input must not be modified")
	})

	t.Run("empty tree becomes one overflow", func(t *testing.T) {
		root, zones := slice.SetStartIndexes(slice.NewParent(true, nil), zerolog.Nop())

		assert.Equal(t, slice.AreaOverflow, root.Kind)
		assert.True(t, root.IsRow)
		require.Len(t, zones, 1)
		assert.Equal(t, 0, zones[0].StartIndex)
	})

	t.Run("extra overflows are ignored", func(t *testing.T) {
		area := slice.NewParent(true, nil, slice.NewSlice(0, 1, false), slice.NewOverflow(false), slice.NewOverflow(false))

		root, zones := slice.SetStartIndexes(area, zerolog.Nop())

		require.Len(t, zones, 2)
		pruned, ok := slice.Prune(root, 10)
		require.True(t, ok)
		require.Len(t, pruned.Children, 2)
		assert.InDelta(t, 0.5, pruned.Weights[0], 1e-9)
		assert.InDelta(t, 0.5, pruned.Weights[1], 1e-9)
	})
}

func TestPrune(t *testing.T) {
	root, _ := slice.SetStartIndexes(slice.MultiColumnArea(2, 1, 0), zerolog.Nop())

	tests := []struct {
		name        string
		count       int
		wantZones   int
		wantWeights []float64
	}{
		{name: "no windows", count: 0, wantZones: 0},
		{name: "one window", count: 1, wantZones: 1, wantWeights: []float64{1}},
		{name: "fills the slices", count: 3, wantZones: 2, wantWeights: []float64{0.5, 0.5}},
		{name: "reaches the overflow", count: 5, wantZones: 3, wantWeights: []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pruned, ok := slice.Prune(root, tt.count)

			if tt.wantZones == 0 {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			require.Len(t, pruned.Children, tt.wantZones)
			require.Len(t, pruned.Weights, tt.wantZones)
			for i, w := range tt.wantWeights {
				assert.InDelta(t, w, pruned.Weights[i], 1e-9)
			}
		})
	}
}

func TestPrune_DropsEmptyParentsAndZeroCapacitySlices(t *testing.T) {
	area := slice.NewParent(true, []float64{0.2, 0.3, 0.5},
		slice.NewSlice(0, 0, false),
		slice.NewParent(false, nil, slice.NewSlice(2, 1, false)),
		slice.NewParent(false, nil, slice.NewSlice(1, 1, false), slice.NewOverflow(false)),
	)
	root, _ := slice.SetStartIndexes(area, zerolog.Nop())

	pruned, ok := slice.Prune(root, 1)

	require.True(t, ok)
	require.Len(t, pruned.Children, 1)
	assert.InDelta(t, 1.0, pruned.Weights[0], 1e-9)
	inner := pruned.Children[0]
	require.Len(t, inner.Children, 1)
	assert.Equal(t, 1, inner.Children[0].Order)
	assert.InDelta(t, 1.0, inner.Weights[0], 1e-9)
}

func TestMultiColumnArea_LaterZeroDemotesEarlierOverflow(t *testing.T) {
	area := slice.MultiColumnArea(0, 1, 0)

	require.Len(t, area.Children, 3)
	assert.Equal(t, slice.AreaSlice, area.Children[0].Kind)
	assert.Equal(t, 0, area.Children[0].MaxChildren)
	assert.Equal(t, slice.AreaOverflow, area.Children[2].Kind)
}

func TestSetStartIndexes_ScalesParentWeights(t *testing.T) {
	area := slice.Area{Kind: slice.AreaParent, IsRow: true, Weights: []float64{3, 1, 4},
		Children: []slice.Area{slice.NewSlice(0, 1, false), slice.NewSlice(1, 1, false), slice.NewOverflow(false)}}

	root, _ := slice.SetStartIndexes(area, zerolog.Nop())
	pruned, ok := slice.Prune(root, 2)

	require.True(t, ok)
	assert.InDeltaSlice(t, []float64{0.375, 0.125, 0.5}, root.Weights, 1e-9)
	require.Len(t, pruned.Weights, 2)
	assert.InDelta(t, 1.0, pruned.Weights[0]+pruned.Weights[1], 1e-9)
	assert.InDelta(t, 0.625, pruned.Weights[0], 1e-9)
	assert.Equal(t, []float64{3, 1, 4}, area.Weights, "input is not modified")
}
