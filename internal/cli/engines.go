package cli

import (
	"fmt"

	"github.com/bnema/dumbtile/internal/application/port"
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/infrastructure/config"
	"github.com/bnema/dumbtile/internal/layout"
	"github.com/bnema/dumbtile/internal/layout/floating"
	"github.com/bnema/dumbtile/internal/layout/focus"
	"github.com/bnema/dumbtile/internal/layout/slice"
	"github.com/bnema/dumbtile/internal/layout/tree"
)

var slicePresetNames = map[config.SlicePreset]string{
	config.SlicePresetPrimaryStack:     "Primary stack",
	config.SlicePresetMultiColumn:      "Multi-column",
	config.SlicePresetSecondaryPrimary: "Secondary primary",
	config.SlicePresetCustom:           "Slice",
}

// BuildEngines creates one engine chain per configured engine kind. Tiling
// engines are wrapped in the floating proxy when layout.floating is set.
func BuildEngines(cfg *config.Config, env layout.Env, registry port.FloatingRegistry) ([]layout.Engine, error) {
	engines := make([]layout.Engine, 0, len(cfg.Layout.Engines))
	for _, kind := range cfg.Layout.Engines {
		engine, err := buildEngine(cfg, kind, env)
		if err != nil {
			return nil, err
		}
		if cfg.Layout.Floating && kind != config.EngineFree {
			engine = floating.NewProxy(env, registry, engine)
		}
		engines = append(engines, engine)
	}
	return engines, nil
}

func buildEngine(cfg *config.Config, kind config.EngineKind, env layout.Env) (layout.Engine, error) {
	identity := entity.NewLayoutEngineIdentity()
	switch kind {
	case config.EngineTree:
		return tree.New(env, identity, tree.WithAddDirection(cfg.Tree.Direction())), nil
	case config.EngineSlice:
		area, err := cfg.Slice.BuildArea()
		if err != nil {
			return nil, fmt.Errorf("build slice engine: %w", err)
		}
		return slice.New(env, identity, area,
			slice.WithName(slicePresetNames[cfg.Slice.Preset]),
			slice.WithInsertionType(cfg.Slice.Insertion()),
		), nil
	case config.EngineFree:
		return floating.NewFree(env, identity), nil
	case config.EngineFocus:
		return focus.New(env, identity, focus.WithMaximized(cfg.Focus.Maximized)), nil
	default:
		return nil, fmt.Errorf("unknown layout engine %q", kind)
	}
}
