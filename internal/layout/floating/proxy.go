package floating

import (
	"github.com/bnema/dumbtile/internal/application/port"
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/layout"
)

// ProxyEngine wraps an engine and takes over the windows the registry marks
// as floating for the wrapped engine's identity. Floating windows keep the
// rectangle they had on screen. Everything else is forwarded.
//
// The registry is consulted on every call, so a window docked in the
// registry is handed back to the inner engine the next time it is touched.
type ProxyEngine struct {
	layout.ProxyBase
	env      layout.Env
	registry port.FloatingRegistry
	floating rectSet
}

var _ layout.FloatingLayer = (*ProxyEngine)(nil)

// NewProxy wraps inner.
func NewProxy(env layout.Env, registry port.FloatingRegistry, inner layout.Engine) *ProxyEngine {
	return &ProxyEngine{ProxyBase: layout.NewProxyBase(inner), env: env, registry: registry}
}

func (p *ProxyEngine) Count() int { return p.Inner().Count() + p.floating.len() }

// FloatingWindows lists the windows held by the proxy in the order they started floating.
func (p *ProxyEngine) FloatingWindows() []entity.WindowID {
	return append([]entity.WindowID(nil), p.floating.keys...)
}

func (p *ProxyEngine) with(inner layout.Engine, floating rectSet) *ProxyEngine {
	return &ProxyEngine{ProxyBase: layout.NewProxyBase(inner), env: p.env, registry: p.registry, floating: floating}
}

// updateInner rewraps inner, dropping gc from the floating windows. The
// receiver is returned when neither changed.
func (p *ProxyEngine) updateInner(inner layout.Engine, gc entity.WindowID) layout.Engine {
	floating, removed := p.floating.without(gc)
	if inner == p.Inner() && !removed {
		return p
	}
	return p.with(inner, floating)
}

func (p *ProxyEngine) isFloating(window entity.WindowID) bool {
	return window != "" && p.registry != nil && p.registry.IsFloating(window, p.Inner().Identity())
}

// captureRectangle records the current rectangle of a floating window and
// takes it away from the inner engine. Returns false when the rectangle
// cannot be resolved.
func (p *ProxyEngine) captureRectangle(window entity.WindowID) (layout.Engine, bool) {
	rect, ok := resolveRectangle(p.env, window)
	if !ok {
		return p, false
	}
	if old, ok := p.floating.get(window); ok && old == rect {
		p.env.Logger.Debug().Str("window", string(window)).Msg("floating rectangle unchanged")
		return p, true
	}
	return p.with(p.Inner().RemoveWindow(window), p.floating.with(window, rect)), true
}

func (p *ProxyEngine) AddWindow(window entity.WindowID) layout.Engine {
	if p.isFloating(window) {
		if next, ok := p.captureRectangle(window); ok {
			return next
		}
	}
	return p.updateInner(p.Inner().AddWindow(window), window)
}

func (p *ProxyEngine) RemoveWindow(window entity.WindowID) layout.Engine {
	floating := p.isFloating(window)
	if _, ok := p.floating.get(window); ok {
		if p.registry != nil {
			p.registry.MarkDocked(window, p.Inner().Identity())
		}
		if floating {
			rest, _ := p.floating.without(window)
			return p.with(p.Inner(), rest)
		}
	}
	return p.updateInner(p.Inner().RemoveWindow(window), window)
}

func (p *ProxyEngine) ContainsWindow(window entity.WindowID) bool {
	if _, ok := p.floating.get(window); ok {
		return true
	}
	return p.Inner().ContainsWindow(window)
}

func (p *ProxyEngine) MoveWindowToPoint(window entity.WindowID, point entity.Point[float64]) layout.Engine {
	if p.isFloating(window) {
		if next, ok := p.captureRectangle(window); ok {
			return next
		}
	}
	return p.updateInner(p.Inner().MoveWindowToPoint(window, point), window)
}

func (p *ProxyEngine) MoveWindowEdgesInDirection(edges entity.Direction, deltas entity.Point[float64], window entity.WindowID) layout.Engine {
	if p.isFloating(window) {
		if next, ok := p.captureRectangle(window); ok {
			return next
		}
	}
	return p.updateInner(p.Inner().MoveWindowEdgesInDirection(edges, deltas, window), window)
}

func (p *ProxyEngine) SwapWindowInDirection(direction entity.Direction, window entity.WindowID) layout.Engine {
	if p.isFloating(window) {
		return p
	}
	return p.updateInner(p.Inner().SwapWindowInDirection(direction, window), window)
}

// FocusWindowInDirection from a floating window focuses the first tiled window.
func (p *ProxyEngine) FocusWindowInDirection(direction entity.Direction, window entity.WindowID) layout.Engine {
	if p.isFloating(window) {
		if first, ok := p.Inner().GetFirstWindow(); ok {
			p.env.FocusWindow(first)
		}
		return p
	}
	return p.updateInner(p.Inner().FocusWindowInDirection(direction, window), window)
}

func (p *ProxyEngine) MinimizeWindowStart(window entity.WindowID) layout.Engine {
	return p.updateInner(p.Inner().MinimizeWindowStart(window), window)
}

func (p *ProxyEngine) MinimizeWindowEnd(window entity.WindowID) layout.Engine {
	return p.updateInner(p.Inner().MinimizeWindowEnd(window), window)
}

func (p *ProxyEngine) GetFirstWindow() (entity.WindowID, bool) {
	if w, ok := p.Inner().GetFirstWindow(); ok {
		return w, true
	}
	if p.floating.len() > 0 {
		return p.floating.keys[0], true
	}
	return "", false
}

// DoLayout lists floating windows first, then the inner engine's windows.
func (p *ProxyEngine) DoLayout(rect entity.Rectangle[int], monitor entity.Monitor) []entity.WindowState {
	inner := p.Inner().DoLayout(rect, monitor)
	states := make([]entity.WindowState, 0, p.floating.len()+len(inner))
	for _, w := range p.floating.keys {
		loc := p.floating.rects[w]
		states = append(states, entity.WindowState{Window: w, Rectangle: loc.ToMonitor(rect), Size: entity.WindowSizeNormal})
	}
	return append(states, inner...)
}

func (p *ProxyEngine) PerformCustomAction(action layout.CustomAction) layout.Engine {
	if p.isFloating(action.Window) {
		return p
	}
	return p.updateInner(p.Inner().PerformCustomAction(action), action.Window)
}
