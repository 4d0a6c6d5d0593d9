package floating

import (
	"slices"

	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/layout"
)

// FreeEngine is an engine in which every window floats at the rectangle it
// has on screen.
type FreeEngine struct {
	env       layout.Env
	identity  entity.LayoutEngineIdentity
	name      string
	windows   rectSet
	minimized []entity.WindowID
}

var _ layout.Engine = (*FreeEngine)(nil)

// NewFree creates an empty free engine.
func NewFree(env layout.Env, identity entity.LayoutEngineIdentity) *FreeEngine {
	return &FreeEngine{env: env, identity: identity, name: "Free"}
}

func (f *FreeEngine) Name() string                          { return f.name }
func (f *FreeEngine) Identity() entity.LayoutEngineIdentity { return f.identity }
func (f *FreeEngine) Count() int                            { return f.windows.len() }

func (f *FreeEngine) ContainsWindow(window entity.WindowID) bool {
	_, ok := f.windows.get(window)
	return ok
}

func (f *FreeEngine) updateRectangle(window entity.WindowID) layout.Engine {
	rect, ok := resolveRectangle(f.env, window)
	if !ok {
		return f
	}
	if old, ok := f.windows.get(window); ok && old == rect {
		return f
	}
	next := *f
	next.windows = f.windows.with(window, rect)
	return &next
}

func (f *FreeEngine) AddWindow(window entity.WindowID) layout.Engine {
	if f.ContainsWindow(window) {
		return f
	}
	return f.updateRectangle(window)
}

func (f *FreeEngine) RemoveWindow(window entity.WindowID) layout.Engine {
	rest, ok := f.windows.without(window)
	if !ok {
		return f
	}
	next := *f
	next.windows = rest
	next.minimized = slices.DeleteFunc(slices.Clone(f.minimized), func(w entity.WindowID) bool { return w == window })
	return &next
}

func (f *FreeEngine) MoveWindowToPoint(window entity.WindowID, _ entity.Point[float64]) layout.Engine {
	return f.updateRectangle(window)
}

func (f *FreeEngine) MoveWindowEdgesInDirection(_ entity.Direction, _ entity.Point[float64], window entity.WindowID) layout.Engine {
	return f.updateRectangle(window)
}

func (f *FreeEngine) SwapWindowInDirection(entity.Direction, entity.WindowID) layout.Engine  { return f }
func (f *FreeEngine) FocusWindowInDirection(entity.Direction, entity.WindowID) layout.Engine { return f }
func (f *FreeEngine) PerformCustomAction(layout.CustomAction) layout.Engine                  { return f }

func (f *FreeEngine) MinimizeWindowStart(window entity.WindowID) layout.Engine {
	if !f.ContainsWindow(window) || slices.Contains(f.minimized, window) {
		return f
	}
	next := *f
	next.minimized = append(slices.Clone(f.minimized), window)
	return &next
}

func (f *FreeEngine) MinimizeWindowEnd(window entity.WindowID) layout.Engine {
	idx := slices.Index(f.minimized, window)
	if idx < 0 {
		return f
	}
	next := *f
	next.minimized = slices.Delete(slices.Clone(f.minimized), idx, idx+1)
	return &next
}

func (f *FreeEngine) GetFirstWindow() (entity.WindowID, bool) {
	if f.windows.len() == 0 {
		return "", false
	}
	return f.windows.keys[0], true
}

// DoLayout places windows relative to the monitor's working area rather than rect.
func (f *FreeEngine) DoLayout(_ entity.Rectangle[int], monitor entity.Monitor) []entity.WindowState {
	states := make([]entity.WindowState, 0, f.windows.len())
	for _, w := range f.windows.keys {
		size := entity.WindowSizeNormal
		if slices.Contains(f.minimized, w) {
			size = entity.WindowSizeMinimized
		}
		loc := f.windows.rects[w]
		states = append(states, entity.WindowState{Window: w, Rectangle: loc.ToMonitor(monitor.WorkingArea), Size: size})
	}
	return states
}
