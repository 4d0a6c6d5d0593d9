// Package floating provides engines for windows positioned by the user
// instead of by a tiling layout.
package floating

import (
	"slices"

	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/layout"
)

// rectSet maps windows to normalized rectangles and remembers insertion
// order. Values are never modified once shared.
type rectSet struct {
	keys  []entity.WindowID
	rects map[entity.WindowID]entity.Rectangle[float64]
}

func (s rectSet) len() int { return len(s.keys) }

func (s rectSet) get(w entity.WindowID) (entity.Rectangle[float64], bool) {
	r, ok := s.rects[w]
	return r, ok
}

func (s rectSet) with(w entity.WindowID, r entity.Rectangle[float64]) rectSet {
	out := rectSet{keys: slices.Clone(s.keys), rects: make(map[entity.WindowID]entity.Rectangle[float64], len(s.rects)+1)}
	for k, v := range s.rects {
		out.rects[k] = v
	}
	if _, ok := s.rects[w]; !ok {
		out.keys = append(out.keys, w)
	}
	out.rects[w] = r
	return out
}

// without returns s minus w, and whether w was present.
func (s rectSet) without(w entity.WindowID) (rectSet, bool) {
	if _, ok := s.rects[w]; !ok {
		return s, false
	}
	out := rectSet{rects: make(map[entity.WindowID]entity.Rectangle[float64], len(s.rects))}
	for _, k := range s.keys {
		if k != w {
			out.keys = append(out.keys, k)
			out.rects[k] = s.rects[k]
		}
	}
	return out, true
}

// resolveRectangle reads the OS rectangle of window and normalizes it to the
// working area of the monitor under its top-left corner.
func resolveRectangle(env layout.Env, window entity.WindowID) (entity.Rectangle[float64], bool) {
	if env.Geometry == nil || env.Monitors == nil {
		return entity.Rectangle[float64]{}, false
	}
	ctx := env.Context()
	abs, ok := env.Geometry.WindowRectangle(ctx, window)
	if !ok {
		env.Logger.Warn().Str("window", string(window)).Msg("could not obtain rectangle for floating window")
		return entity.Rectangle[float64]{}, false
	}
	monitor, ok := env.Monitors.MonitorAtPoint(ctx, entity.Point[int]{X: abs.X, Y: abs.Y})
	if !ok {
		env.Logger.Warn().Str("window", string(window)).Int("x", abs.X).Int("y", abs.Y).Msg("no monitor at window position")
		return entity.Rectangle[float64]{}, false
	}
	return entity.Normalize(abs, monitor.WorkingArea), true
}
