// Package layout defines the contract shared by every layout engine and the
// helpers used to compose engines into proxy chains.
//
// Engines are immutable values: every edit returns an Engine, and an edit that
// changes nothing returns the receiver itself so callers can compare with ==.
package layout

import (
	"github.com/bnema/dumbtile/internal/domain/entity"
)

// Engine computes window placement for one workspace and answers structural edits.
type Engine interface {
	// Name is the user-facing name of the engine.
	Name() string
	// Count returns the number of windows the engine manages, minimized ones included.
	Count() int
	// Identity is shared by every value derived from the same engine.
	Identity() entity.LayoutEngineIdentity

	AddWindow(window entity.WindowID) Engine
	RemoveWindow(window entity.WindowID) Engine
	ContainsWindow(window entity.WindowID) bool

	// MoveWindowToPoint moves window to the normalized point of the monitor.
	MoveWindowToPoint(window entity.WindowID, point entity.Point[float64]) Engine
	// MoveWindowEdgesInDirection moves the edges of window named by edges by the
	// normalized deltas. Only the X component applies to Left/Right edges and
	// only the Y component to Up/Down edges.
	MoveWindowEdgesInDirection(edges entity.Direction, deltas entity.Point[float64], window entity.WindowID) Engine
	SwapWindowInDirection(direction entity.Direction, window entity.WindowID) Engine
	// FocusWindowInDirection focuses the window adjacent to window. The focus
	// itself is a side effect on the window system.
	FocusWindowInDirection(direction entity.Direction, window entity.WindowID) Engine

	MinimizeWindowStart(window entity.WindowID) Engine
	MinimizeWindowEnd(window entity.WindowID) Engine

	// GetFirstWindow returns the first tiled window, if any.
	GetFirstWindow() (entity.WindowID, bool)
	// DoLayout places every window inside rect.
	DoLayout(rect entity.Rectangle[int], monitor entity.Monitor) []entity.WindowState
	// PerformCustomAction runs an engine specific action. Unknown names return the receiver.
	PerformCustomAction(action CustomAction) Engine
}

// CustomAction is an engine specific operation addressed by name.
type CustomAction struct {
	Name    string
	Window  entity.WindowID
	Payload any
}

// Proxy is an engine wrapping another engine.
type Proxy interface {
	Engine
	Inner() Engine
}

// ProxyBase holds the wrapped engine of a proxy and forwards Name and
// Identity to it, so a proxy and its inner engine are one engine to callers.
// Proxies embed it and build a new ProxyBase for every new inner value.
type ProxyBase struct {
	inner Engine
}

// NewProxyBase wraps inner.
func NewProxyBase(inner Engine) ProxyBase { return ProxyBase{inner: inner} }

func (b ProxyBase) Inner() Engine                         { return b.inner }
func (b ProxyBase) Name() string                          { return b.inner.Name() }
func (b ProxyBase) Identity() entity.LayoutEngineIdentity { return b.inner.Identity() }

// FloatingLayer is a proxy that takes floating windows away from its inner engine.
type FloatingLayer interface {
	Proxy
	FloatingWindows() []entity.WindowID
}

// Find walks the proxy chain starting at e and returns the first engine of type T.
func Find[T Engine](e Engine) (T, bool) {
	for e != nil {
		if t, ok := e.(T); ok {
			return t, true
		}
		p, ok := e.(Proxy)
		if !ok {
			break
		}
		e = p.Inner()
	}
	var zero T
	return zero, false
}
