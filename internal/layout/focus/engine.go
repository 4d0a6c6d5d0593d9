// Package focus implements a layout engine that shows one window at a time.
// The visible window fills the rectangle, normal or maximized, and every
// other window is minimized.
package focus

import (
	"slices"

	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/layout"
)

const defaultName = "Focus"

// Custom action names understood by the focus engine.
const (
	ActionToggleMaximized = "focus.toggle_maximized"
	ActionSetMaximized    = "focus.set_maximized"
	ActionUnsetMaximized  = "focus.unset_maximized"
)

// Engine is an immutable focus layout. Every edit returns a new *Engine
// sharing the identity, or the receiver when nothing changed.
type Engine struct {
	env       layout.Env
	identity  entity.LayoutEngineIdentity
	name      string
	windows   []entity.WindowID
	top       int
	hidden    bool
	maximized bool
}

var _ layout.Engine = (*Engine)(nil)

// Option configures a new Engine.
type Option func(*Engine)

// WithName sets the engine name.
func WithName(name string) Option {
	return func(e *Engine) {
		if name != "" {
			e.name = name
		}
	}
}

// WithMaximized shows the visible window maximized.
func WithMaximized(maximized bool) Option {
	return func(e *Engine) { e.maximized = maximized }
}

// New creates an empty focus engine.
func New(env layout.Env, identity entity.LayoutEngineIdentity, opts ...Option) *Engine {
	e := &Engine{env: env, identity: identity, name: defaultName}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Name() string                          { return e.name }
func (e *Engine) Identity() entity.LayoutEngineIdentity { return e.identity }
func (e *Engine) Count() int                            { return len(e.windows) }

// Maximized reports whether the visible window is shown maximized.
func (e *Engine) Maximized() bool { return e.maximized }

// Top returns the visible window.
func (e *Engine) Top() (entity.WindowID, bool) {
	if len(e.windows) == 0 {
		return "", false
	}
	return e.windows[e.top], true
}

// Windows returns the windows in cycling order.
func (e *Engine) Windows() []entity.WindowID { return slices.Clone(e.windows) }

func (e *Engine) with(windows []entity.WindowID, top int, hidden, maximized bool) *Engine {
	next := *e
	next.windows, next.top, next.hidden, next.maximized = windows, top, hidden, maximized
	return &next
}

func (e *Engine) ContainsWindow(window entity.WindowID) bool {
	return slices.Contains(e.windows, window)
}

// AddWindow appends window and shows it.
func (e *Engine) AddWindow(window entity.WindowID) layout.Engine {
	if e.ContainsWindow(window) {
		e.env.Logger.Debug().Str("window", string(window)).Msg("window already in focus layout")
		return e
	}
	windows := append(slices.Clone(e.windows), window)
	return e.with(windows, len(windows)-1, false, e.maximized)
}

// RemoveWindow drops window. Removing the visible window shows the one before it.
func (e *Engine) RemoveWindow(window entity.WindowID) layout.Engine {
	idx := slices.Index(e.windows, window)
	if idx < 0 {
		e.env.Logger.Debug().Str("window", string(window)).Msg("window not in focus layout")
		return e
	}
	top := e.top
	switch {
	case idx < e.top:
		top--
	case idx == e.top:
		top = max(e.top-1, 0)
	}
	return e.with(slices.Delete(slices.Clone(e.windows), idx, idx+1), top, e.hidden, e.maximized)
}

// MoveWindowToPoint adds window if needed. Points carry no meaning here.
func (e *Engine) MoveWindowToPoint(window entity.WindowID, _ entity.Point[float64]) layout.Engine {
	return e.AddWindow(window)
}

func (e *Engine) MoveWindowEdgesInDirection(entity.Direction, entity.Point[float64], entity.WindowID) layout.Engine {
	return e
}

// step returns -1 for Left and Up, 1 for Right and Down, and 0 otherwise.
func step(direction entity.Direction) int {
	switch direction {
	case entity.DirectionLeft, entity.DirectionUp:
		return -1
	case entity.DirectionRight, entity.DirectionDown:
		return 1
	default:
		return 0
	}
}

func (e *Engine) neighbour(idx int, direction entity.Direction) (int, bool) {
	s := step(direction)
	if s == 0 || len(e.windows) < 2 {
		return idx, false
	}
	n := len(e.windows)
	return ((idx+s)%n + n) % n, true
}

// SwapWindowInDirection exchanges window with its neighbour in cycling
// order, wrapping around. The visible window stays visible.
func (e *Engine) SwapWindowInDirection(direction entity.Direction, window entity.WindowID) layout.Engine {
	idx := slices.Index(e.windows, window)
	if idx < 0 {
		return e
	}
	target, ok := e.neighbour(idx, direction)
	if !ok {
		return e
	}
	windows := slices.Clone(e.windows)
	windows[idx], windows[target] = windows[target], windows[idx]
	top := e.top
	switch e.top {
	case idx:
		top = target
	case target:
		top = idx
	}
	return e.with(windows, top, e.hidden, e.maximized)
}

// FocusWindowInDirection shows and focuses the neighbour of window in
// cycling order, wrapping around. The order is unchanged.
func (e *Engine) FocusWindowInDirection(direction entity.Direction, window entity.WindowID) layout.Engine {
	idx := slices.Index(e.windows, window)
	if idx < 0 {
		e.env.Logger.Debug().Str("window", string(window)).Msg("window not in focus layout")
		return e
	}
	target, ok := e.neighbour(idx, direction)
	if !ok {
		return e
	}
	e.env.FocusWindow(e.windows[target])
	if target == e.top && !e.hidden {
		return e
	}
	return e.with(e.windows, target, false, e.maximized)
}

// MinimizeWindowStart hides window when it is the visible one. An unknown
// window is added without being shown.
func (e *Engine) MinimizeWindowStart(window entity.WindowID) layout.Engine {
	idx := slices.Index(e.windows, window)
	switch {
	case idx < 0:
		windows := append(slices.Clone(e.windows), window)
		return e.with(windows, e.top, e.hidden || len(e.windows) == 0, e.maximized)
	case idx == e.top && !e.hidden:
		return e.with(e.windows, e.top, true, e.maximized)
	default:
		return e
	}
}

// MinimizeWindowEnd shows window, adding it when unknown.
func (e *Engine) MinimizeWindowEnd(window entity.WindowID) layout.Engine {
	windows := e.windows
	idx := slices.Index(windows, window)
	if idx < 0 {
		windows = append(slices.Clone(windows), window)
		idx = len(windows) - 1
	} else if idx == e.top && !e.hidden {
		return e
	}
	return e.with(windows, idx, false, e.maximized)
}

func (e *Engine) GetFirstWindow() (entity.WindowID, bool) {
	if len(e.windows) == 0 {
		return "", false
	}
	return e.windows[0], true
}

// DoLayout emits the visible window first. Every window gets rect so a
// restored window comes back at full size.
func (e *Engine) DoLayout(rect entity.Rectangle[int], _ entity.Monitor) []entity.WindowState {
	if len(e.windows) == 0 {
		return nil
	}
	size := entity.WindowSizeNormal
	switch {
	case e.hidden:
		size = entity.WindowSizeMinimized
	case e.maximized:
		size = entity.WindowSizeMaximized
	}
	states := make([]entity.WindowState, 0, len(e.windows))
	states = append(states, entity.WindowState{Window: e.windows[e.top], Rectangle: rect, Size: size})
	for i, w := range e.windows {
		if i != e.top {
			states = append(states, entity.WindowState{Window: w, Rectangle: rect, Size: entity.WindowSizeMinimized})
		}
	}
	return states
}

func (e *Engine) PerformCustomAction(action layout.CustomAction) layout.Engine {
	maximized := e.maximized
	switch action.Name {
	case ActionToggleMaximized:
		maximized = !e.maximized
	case ActionSetMaximized:
		maximized = true
	case ActionUnsetMaximized:
		maximized = false
	default:
		return e
	}
	if maximized == e.maximized {
		return e
	}
	return e.with(e.windows, e.top, e.hidden, maximized)
}
