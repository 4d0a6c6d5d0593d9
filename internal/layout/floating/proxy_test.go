package floating_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbtile/internal/application/port/mocks"
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/layout"
	"github.com/bnema/dumbtile/internal/layout/floating"
	"github.com/bnema/dumbtile/internal/layout/tree"
	"github.com/rs/zerolog"
)

var monitor = entity.Monitor{ID: "m1", Name: "primary", WorkingArea: entity.Rectangle[int]{Width: 1000, Height: 1000}, Primary: true}

// fixture wires mocked collaborators around a proxy over a tree engine.
type fixture struct {
	geometry *mocks.MockWindowGeometry
	monitors *mocks.MockMonitorLocator
	registry *mocks.MockFloatingRegistry
	env      layout.Env
	floating map[entity.WindowID]bool
	rects    map[entity.WindowID]entity.Rectangle[int]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		geometry: mocks.NewMockWindowGeometry(t),
		monitors: mocks.NewMockMonitorLocator(t),
		registry: mocks.NewMockFloatingRegistry(t),
		floating: map[entity.WindowID]bool{},
		rects:    map[entity.WindowID]entity.Rectangle[int]{},
	}
	f.registry.EXPECT().IsFloating(mock.Anything, mock.Anything).
		RunAndReturn(func(w entity.WindowID, _ entity.LayoutEngineIdentity) bool { return f.floating[w] }).Maybe()
	f.geometry.EXPECT().WindowRectangle(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, w entity.WindowID) (entity.Rectangle[int], bool) {
			r, ok := f.rects[w]
			return r, ok
		}).Maybe()
	f.monitors.EXPECT().MonitorAtPoint(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, p entity.Point[int]) (entity.Monitor, bool) {
			return monitor, monitor.Contains(p)
		}).Maybe()
	f.env = layout.Env{Geometry: f.geometry, Monitors: f.monitors, Logger: zerolog.Nop()}
	return f
}

func (f *fixture) proxy(windows ...entity.WindowID) layout.Engine {
	var inner layout.Engine = tree.New(f.env, entity.NewLayoutEngineIdentity())
	for _, w := range windows {
		inner = inner.AddWindow(w)
	}
	return floating.NewProxy(f.env, f.registry, inner)
}

func innerOf(t *testing.T, e layout.Engine) layout.Engine {
	t.Helper()
	p, ok := e.(*floating.ProxyEngine)
	require.True(t, ok)
	return p.Inner()
}

func TestProxy_AddFloatingWindowKeepsItsRectangle(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.floating["f"] = true
	f.rects["f"] = entity.Rectangle[int]{X: 100, Y: 100, Width: 200, Height: 300}
	e := f.proxy("a", "b")

	// Act
	got := e.AddWindow("f")

	// Assert
	assert.Equal(t, 3, got.Count())
	assert.True(t, got.ContainsWindow("f"))
	assert.False(t, innerOf(t, got).ContainsWindow("f"))

	states := got.DoLayout(monitor.WorkingArea, monitor)
	require.Len(t, states, 3)
	assert.Equal(t, entity.WindowState{Window: "f", Rectangle: f.rects["f"], Size: entity.WindowSizeNormal}, states[0])
	assert.Equal(t, entity.WindowID("a"), states[1].Window)
	assert.Equal(t, entity.WindowID("b"), states[2].Window)
}

func TestProxy_UnchangedRectangleReturnsSameEngine(t *testing.T) {
	f := newFixture(t)
	f.floating["f"] = true
	f.rects["f"] = entity.Rectangle[int]{X: 100, Y: 100, Width: 200, Height: 300}
	e := f.proxy("a").AddWindow("f")

	assert.Same(t, e, e.MoveWindowToPoint("f", entity.Point[float64]{X: 0.5, Y: 0.5}))
	assert.Same(t, e, e.MoveWindowEdgesInDirection(entity.DirectionRight, entity.Point[float64]{X: 0.1}, "f"))
	assert.Same(t, e, e.AddWindow("f"))

	f.rects["f"] = entity.Rectangle[int]{X: 300, Y: 100, Width: 200, Height: 300}
	moved := e.MoveWindowToPoint("f", entity.Point[float64]{X: 0.5, Y: 0.5})
	assert.NotSame(t, e, moved)
	assert.Equal(t, f.rects["f"], moved.DoLayout(monitor.WorkingArea, monitor)[0].Rectangle)
}

func TestProxy_ForwardsWhenRectangleCannotBeResolved(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.floating["f"] = true
	e := f.proxy("a")

	// Act
	got := e.AddWindow("f")

	// Assert
	assert.True(t, innerOf(t, got).ContainsWindow("f"))
	assert.Equal(t, 2, got.Count())
}

func TestProxy_ForwardsWhenNoMonitorUnderWindow(t *testing.T) {
	f := newFixture(t)
	f.floating["f"] = true
	f.rects["f"] = entity.Rectangle[int]{X: 5000, Y: 5000, Width: 10, Height: 10}

	got := f.proxy().AddWindow("f")

	assert.True(t, innerOf(t, got).ContainsWindow("f"))
}

func TestProxy_DockedWindowIsHandedBackLazily(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.floating["f"] = true
	f.rects["f"] = entity.Rectangle[int]{X: 100, Y: 100, Width: 200, Height: 300}
	e := f.proxy("a").AddWindow("f")
	require.False(t, innerOf(t, e).ContainsWindow("f"))

	// Act
	f.floating["f"] = false
	got := e.MoveWindowToPoint("f", entity.Point[float64]{X: 0.9, Y: 0.5})

	// Assert
	assert.True(t, innerOf(t, got).ContainsWindow("f"))
	assert.Empty(t, got.(*floating.ProxyEngine).FloatingWindows())
	assert.Equal(t, 2, got.Count())
}

func TestProxy_RemoveFloatingWindowMarksItDocked(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.floating["f"] = true
	f.rects["f"] = entity.Rectangle[int]{X: 100, Y: 100, Width: 200, Height: 300}
	e := f.proxy("a").AddWindow("f")
	inner := innerOf(t, e)
	f.registry.EXPECT().MarkDocked(entity.WindowID("f"), e.Identity()).Return().Once()

	// Act
	got := e.RemoveWindow("f")

	// Assert
	assert.False(t, got.ContainsWindow("f"))
	assert.Same(t, inner, innerOf(t, got))
	assert.Equal(t, 1, got.Count())
}

func TestProxy_RemoveTiledWindowForwards(t *testing.T) {
	f := newFixture(t)
	e := f.proxy("a", "b")

	got := e.RemoveWindow("a")

	assert.False(t, got.ContainsWindow("a"))
	assert.Equal(t, 1, got.Count())
	assert.Same(t, e, e.RemoveWindow("missing"))
}

func TestProxy_IdentityIsInnerIdentity(t *testing.T) {
	f := newFixture(t)
	e := f.proxy("a")

	assert.Equal(t, innerOf(t, e).Identity(), e.Identity())
	assert.Equal(t, "Tree", e.Name())

	found, ok := layout.Find[*tree.Engine](e)
	require.True(t, ok)
	assert.Same(t, innerOf(t, e), layout.Engine(found))
}

func TestProxy_FocusFromFloatingWindowFocusesFirstTiled(t *testing.T) {
	// Arrange
	f := newFixture(t)
	focuser := mocks.NewMockWindowFocuser(t)
	focuser.EXPECT().LastFocusedWindow(mock.Anything).Return("", false).Maybe()
	focuser.EXPECT().Focus(mock.Anything, entity.WindowID("a")).Return(nil).Once()
	f.env.Focus = focuser
	f.floating["f"] = true
	f.rects["f"] = entity.Rectangle[int]{X: 100, Y: 100, Width: 200, Height: 300}
	e := f.proxy("a", "b").AddWindow("f")

	// Act
	got := e.FocusWindowInDirection(entity.DirectionRight, "f")

	// Assert
	assert.Same(t, e, got)
}

func TestProxy_SwapAndActionsIgnoreFloatingWindows(t *testing.T) {
	f := newFixture(t)
	f.floating["f"] = true
	f.rects["f"] = entity.Rectangle[int]{X: 100, Y: 100, Width: 200, Height: 300}
	e := f.proxy("a", "b").AddWindow("f")

	assert.Same(t, e, e.SwapWindowInDirection(entity.DirectionLeft, "f"))
	assert.Same(t, e, e.PerformCustomAction(layout.CustomAction{Name: tree.ActionSplitFocused, Window: "f"}))
}

func TestProxy_GetFirstWindowPrefersInner(t *testing.T) {
	f := newFixture(t)
	f.floating["f"] = true
	f.rects["f"] = entity.Rectangle[int]{X: 100, Y: 100, Width: 200, Height: 300}

	onlyFloating := f.proxy().AddWindow("f")
	w, ok := onlyFloating.GetFirstWindow()
	require.True(t, ok)
	assert.Equal(t, entity.WindowID("f"), w)

	mixed := onlyFloating.AddWindow("a")
	w, ok = mixed.GetFirstWindow()
	require.True(t, ok)
	assert.Equal(t, entity.WindowID("a"), w)
}

func TestProxy_MinimizeForwardsToInner(t *testing.T) {
	f := newFixture(t)
	e := f.proxy("a", "b")

	got := e.MinimizeWindowStart("a")

	states := got.DoLayout(monitor.WorkingArea, monitor)
	require.Len(t, states, 2)
	assert.Equal(t, entity.WindowSizeMinimized, states[1].Size)
	assert.Equal(t, 2, got.MinimizeWindowEnd("a").Count())
}
