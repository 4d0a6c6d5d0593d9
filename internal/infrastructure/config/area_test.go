package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/layout/slice"
)

func TestAreaConfig_ToArea(t *testing.T) {
	cfg := AreaConfig{
		Kind: "parent",
		Row:  true,
		Children: []AreaConfig{
			{Kind: "slice", Order: 0, MaxChildren: 1},
			{Kind: "parent", Children: []AreaConfig{
				{Kind: "slice", Order: 1, MaxChildren: 2},
				{Kind: "overflow"},
			}},
		},
	}

	area, err := cfg.ToArea()

	require.NoError(t, err)
	assert.Equal(t, slice.AreaParent, area.Kind)
	assert.True(t, area.IsRow)
	assert.Equal(t, []float64{0.5, 0.5}, area.Weights)
	require.Len(t, area.Children, 2)
	assert.Equal(t, slice.AreaSlice, area.Children[0].Kind)
	assert.Equal(t, 1, area.Children[0].MaxChildren)
	assert.Equal(t, slice.AreaOverflow, area.Children[1].Children[1].Kind)
}

func TestAreaConfig_ToAreaScalesRelativeWeights(t *testing.T) {
	cfg := AreaConfig{Kind: "parent", Row: true, Weights: []float64{3, 1}, Children: []AreaConfig{
		{Kind: "slice", Order: 0, MaxChildren: 1},
		{Kind: "overflow"},
	}}

	area, err := cfg.ToArea()

	require.NoError(t, err)
	require.Len(t, area.Weights, 2)
	assert.InDelta(t, 0.75, area.Weights[0], 1e-9)
	assert.InDelta(t, 0.25, area.Weights[1], 1e-9)
}

func TestAreaConfig_ToAreaErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AreaConfig
		wantMsg string
	}{
		{name: "unknown kind", cfg: AreaConfig{Kind: "grid"}, wantMsg: "slice.area.kind"},
		{name: "parent without children", cfg: AreaConfig{Kind: "parent"}, wantMsg: "has no children"},
		{
			name: "weights mismatch",
			cfg: AreaConfig{Kind: "parent", Weights: []float64{1}, Children: []AreaConfig{
				{Kind: "overflow"}, {Kind: "overflow"},
			}},
			wantMsg: "1 weights for 2 children",
		},
		{
			name: "negative weight",
			cfg: AreaConfig{Kind: "parent", Weights: []float64{-1}, Children: []AreaConfig{
				{Kind: "overflow"},
			}},
			wantMsg: "weights[0]",
		},
		{
			name: "nested path",
			cfg: AreaConfig{Kind: "parent", Children: []AreaConfig{
				{Kind: "slice", MaxChildren: -2},
			}},
			wantMsg: "slice.area.children[0].max_children",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.ToArea()

			require.ErrorIs(t, err, ErrInvalidArea)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestSliceConfig_BuildAreaPresets(t *testing.T) {
	cfg := DefaultConfig().Slice

	area, err := cfg.BuildArea()
	require.NoError(t, err)
	assert.Equal(t, slice.PrimaryStackArea(), area)

	cfg.Preset = SlicePresetMultiColumn
	area, err = cfg.BuildArea()
	require.NoError(t, err)
	assert.Len(t, area.Children, 3)

	cfg.Preset = SlicePresetSecondaryPrimary
	area, err = cfg.BuildArea()
	require.NoError(t, err)
	assert.Equal(t, slice.SecondaryPrimaryArea(1, 2), area)

	cfg.Preset = "hexagons"
	_, err = cfg.BuildArea()
	require.ErrorIs(t, err, ErrInvalidArea)
}

func TestParsedHelpers(t *testing.T) {
	assert.Equal(t, entity.DirectionDown, TreeConfig{AddDirection: "down"}.Direction())
	assert.Equal(t, entity.DirectionRight, TreeConfig{}.Direction())
	assert.Equal(t, entity.WindowInsertionRotate, SliceConfig{InsertionType: "rotate"}.Insertion())

	monitor := MonitorConfig{Width: 800, Height: 600, Reserved: 40}.ToMonitor()
	assert.Equal(t, entity.Rectangle[int]{Width: 800, Height: 560}, monitor.WorkingArea)
	assert.True(t, monitor.Primary)
}
