package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbtile/internal/infrastructure/config"
	floatreg "github.com/bnema/dumbtile/internal/infrastructure/floating"
	"github.com/bnema/dumbtile/internal/layout"
	"github.com/bnema/dumbtile/internal/layout/floating"
	"github.com/bnema/dumbtile/internal/layout/focus"
	"github.com/bnema/dumbtile/internal/layout/slice"
	"github.com/bnema/dumbtile/internal/layout/tree"
)

func TestBuildEngines(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Layout.Engines = []config.EngineKind{config.EngineTree, config.EngineSlice, config.EngineFree}
	cfg.Slice.Preset = config.SlicePresetMultiColumn

	engines, err := BuildEngines(cfg, layout.NopEnv(), floatreg.NewRegistry())

	require.NoError(t, err)
	require.Len(t, engines, 3)

	_, ok := engines[0].(*floating.ProxyEngine)
	assert.True(t, ok, "tiling engines are wrapped when floating is enabled")
	_, ok = layout.Find[*tree.Engine](engines[0])
	assert.True(t, ok)

	s, ok := layout.Find[*slice.Engine](engines[1])
	require.True(t, ok)
	assert.Equal(t, "Multi-column", s.Name())

	_, ok = engines[2].(*floating.FreeEngine)
	assert.True(t, ok, "the free engine is never proxied")

	for i := range engines {
		for j := i + 1; j < len(engines); j++ {
			assert.NotEqual(t, engines[i].Identity(), engines[j].Identity())
		}
	}
}

func TestBuildEngines_WithoutFloating(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Layout.Floating = false
	cfg.Slice.InsertionType = "rotate"

	engines, err := BuildEngines(cfg, layout.NopEnv(), nil)

	require.NoError(t, err)
	_, ok := engines[0].(*tree.Engine)
	assert.True(t, ok)
	s, ok := engines[1].(*slice.Engine)
	require.True(t, ok)
	assert.Equal(t, "rotate", s.InsertionType().String())
}

func TestBuildEngines_Focus(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Layout.Engines = []config.EngineKind{config.EngineFocus}
	cfg.Focus.Maximized = true

	engines, err := BuildEngines(cfg, layout.NopEnv(), floatreg.NewRegistry())

	require.NoError(t, err)
	require.Len(t, engines, 1)
	_, ok := engines[0].(*floating.ProxyEngine)
	assert.True(t, ok, "the focus engine takes part in floating")
	f, ok := layout.Find[*focus.Engine](engines[0])
	require.True(t, ok)
	assert.Equal(t, "Focus", f.Name())
	assert.True(t, f.Maximized())
}

func TestBuildEngines_InvalidCustomArea(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Slice.Preset = config.SlicePresetCustom
	cfg.Slice.Area = &config.AreaConfig{Kind: "parent"}

	_, err := BuildEngines(cfg, layout.NopEnv(), nil)

	require.ErrorIs(t, err, config.ErrInvalidArea)
}
