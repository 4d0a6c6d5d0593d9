package slice_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbtile/internal/application/port/mocks"
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/layout"
	"github.com/bnema/dumbtile/internal/layout/slice"
)

var screen = entity.Rectangle[int]{X: 0, Y: 0, Width: 1920, Height: 1080}

// nestedArea is a two slot column, then a column holding a two slot slice
// above the overflow.
func nestedArea() slice.Area {
	return slice.NewParent(true, []float64{0.5, 0.5},
		slice.NewSlice(0, 2, false),
		slice.NewParent(false, []float64{0.5, 0.5},
			slice.NewSlice(1, 2, true),
			slice.NewOverflow(true),
		),
	)
}

func windows(n int) []entity.WindowID {
	out := make([]entity.WindowID, n)
	for i := range out {
		out[i] = entity.WindowID(fmt.Sprintf("w%d", i))
	}
	return out
}

func fill(e layout.Engine, ws []entity.WindowID) layout.Engine {
	for _, w := range ws {
		e = e.AddWindow(w)
	}
	return e
}

func newEngine(area slice.Area, opts ...slice.Option) *slice.Engine {
	return slice.New(layout.NopEnv(), entity.NewLayoutEngineIdentity(), area, opts...)
}

func windowOrder(t *testing.T, e layout.Engine) []entity.WindowID {
	t.Helper()
	se, ok := e.(*slice.Engine)
	require.True(t, ok)
	return se.Windows()
}

func TestCapacities_AssignWindowsToZonesInOrder(t *testing.T) {
	ws := windows(5)
	e := fill(newEngine(slice.MultiColumnArea(2, 1, 0)), ws).(*slice.Engine)

	assert.Equal(t, [][]entity.WindowID{{"w0", "w1"}, {"w2"}, {"w3", "w4"}}, e.Assignment())

	states := e.DoLayout(screen, entity.Monitor{})
	require.Len(t, states, 5)
	for i, s := range states {
		assert.Equal(t, ws[i], s.Window)
	}
	assert.Equal(t, entity.Rectangle[int]{X: 0, Y: 0, Width: 640, Height: 540}, states[0].Rectangle)
	assert.Equal(t, entity.Rectangle[int]{X: 0, Y: 540, Width: 640, Height: 540}, states[1].Rectangle)
	assert.Equal(t, entity.Rectangle[int]{X: 640, Y: 0, Width: 640, Height: 1080}, states[2].Rectangle)
	assert.Equal(t, entity.Rectangle[int]{X: 1280, Y: 540, Width: 640, Height: 540}, states[4].Rectangle)
}

func TestCapacities_SingleWindowTakesTheWholeRectangle(t *testing.T) {
	e := fill(newEngine(slice.MultiColumnArea(2, 1, 0)), windows(1))

	states := e.DoLayout(screen, entity.Monitor{})

	require.Len(t, states, 1)
	assert.Equal(t, screen, states[0].Rectangle)
}

func TestDoLayout_CoversRectangleForEveryCount(t *testing.T) {
	rect := entity.Rectangle[int]{X: 10, Y: 20, Width: 1001, Height: 777}
	for n := 1; n <= 9; n++ {
		t.Run(fmt.Sprintf("%d windows", n), func(t *testing.T) {
			e := fill(newEngine(nestedArea()), windows(n))

			states := e.DoLayout(rect, entity.Monitor{})

			require.Len(t, states, n)
			total := 0.0
			for i, a := range states {
				total += a.Rectangle.Area()
				for _, b := range states[i+1:] {
					w := min(a.Rectangle.Right(), b.Rectangle.Right()) - max(a.Rectangle.X, b.Rectangle.X)
					h := min(a.Rectangle.Bottom(), b.Rectangle.Bottom()) - max(a.Rectangle.Y, b.Rectangle.Y)
					assert.False(t, w > 0 && h > 0, "%s overlaps %s", a.Window, b.Window)
				}
			}
			assert.Equal(t, rect.Area(), total)
		})
	}
}

func TestDoLayout_RelativeWeightsPartitionTheRectangle(t *testing.T) {
	rect := entity.Rectangle[int]{Width: 1000, Height: 500}
	tests := []struct {
		name    string
		weights []float64
		wantA   entity.Rectangle[int]
		wantB   entity.Rectangle[int]
	}{
		{
			name:    "sum above one",
			weights: []float64{3, 1},
			wantA:   entity.Rectangle[int]{X: 0, Width: 750, Height: 500},
			wantB:   entity.Rectangle[int]{X: 750, Width: 250, Height: 500},
		},
		{
			name:    "sum below one",
			weights: []float64{0.2, 0.2},
			wantA:   entity.Rectangle[int]{X: 0, Width: 500, Height: 500},
			wantB:   entity.Rectangle[int]{X: 500, Width: 500, Height: 500},
		},
		{
			name:    "all zero",
			weights: []float64{0, 0},
			wantA:   entity.Rectangle[int]{X: 0, Width: 500, Height: 500},
			wantB:   entity.Rectangle[int]{X: 500, Width: 500, Height: 500},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			area := slice.NewParent(true, tt.weights, slice.NewSlice(0, 1, false), slice.NewOverflow(false))
			e := fill(newEngine(area), []entity.WindowID{"a", "b"})

			states := e.DoLayout(rect, entity.Monitor{})

			require.Len(t, states, 2)
			assert.Equal(t, tt.wantA, states[0].Rectangle)
			assert.Equal(t, tt.wantB, states[1].Rectangle)
			assert.Equal(t, rect.Area(), states[0].Rectangle.Area()+states[1].Rectangle.Area())
		})
	}

	t.Run("literal area with unscaled weights", func(t *testing.T) {
		area := slice.Area{Kind: slice.AreaParent, IsRow: true, Weights: []float64{2, 2},
			Children: []slice.Area{slice.NewSlice(0, 1, false), slice.NewOverflow(false)}}
		e := fill(newEngine(area), []entity.WindowID{"a", "b"})

		states := e.DoLayout(rect, entity.Monitor{})

		require.Len(t, states, 2)
		assert.Equal(t, 500, states[0].Rectangle.Width)
		assert.Equal(t, 500, states[1].Rectangle.Width)
	})
}

func TestDoLayout_EmitsWindowsInIndexOrder(t *testing.T) {
	e := fill(newEngine(slice.SecondaryPrimaryArea(1, 2)), windows(4))

	states := e.DoLayout(screen, entity.Monitor{})

	require.Len(t, states, 4)
	assert.Equal(t, entity.WindowID("w0"), states[0].Window)
	assert.Equal(t, 480, states[0].Rectangle.X, "primary is the middle column")
	assert.Equal(t, 0, states[1].Rectangle.X)
	assert.Equal(t, 1440, states[3].Rectangle.X)
}

func TestAddRemove(t *testing.T) {
	base := fill(newEngine(slice.PrimaryStackArea()), windows(3))

	got := base.AddWindow("extra").RemoveWindow("extra")

	assert.Equal(t, base.Count(), got.Count())
	assert.False(t, got.ContainsWindow("extra"))
	assert.Equal(t, windowOrder(t, base), windowOrder(t, got))
	assert.Same(t, base, base.RemoveWindow("missing"))
	assert.Same(t, base, base.AddWindow("w1"))
	assert.Equal(t, base.Identity(), got.Identity())
}

func TestMoveWindowToPoint(t *testing.T) {
	tests := []struct {
		name      string
		insertion entity.WindowInsertionType
		want      []entity.WindowID
	}{
		{name: "swap", insertion: entity.WindowInsertionSwap, want: []entity.WindowID{"w3", "w1", "w2", "w0"}},
		{name: "rotate", insertion: entity.WindowInsertionRotate, want: []entity.WindowID{"w3", "w0", "w1", "w2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := fill(newEngine(slice.PrimaryStackArea(), slice.WithInsertionType(tt.insertion)), windows(4))

			got := e.MoveWindowToPoint("w3", entity.Point[float64]{X: 0.25, Y: 0.5})

			assert.Equal(t, tt.want, windowOrder(t, got))
		})
	}

	t.Run("point on the bottom right corner", func(t *testing.T) {
		e := fill(newEngine(slice.PrimaryStackArea()), windows(4))

		got := e.MoveWindowToPoint("w0", entity.Point[float64]{X: 1, Y: 1})

		assert.Equal(t, []entity.WindowID{"w3", "w1", "w2", "w0"}, windowOrder(t, got))
	})

	t.Run("point outside every slot", func(t *testing.T) {
		e := fill(newEngine(slice.PrimaryStackArea()), windows(2))
		assert.Same(t, e, e.MoveWindowToPoint("w1", entity.Point[float64]{X: 2, Y: 2}))
	})

	t.Run("unknown window", func(t *testing.T) {
		e := fill(newEngine(slice.PrimaryStackArea()), windows(2))
		assert.Same(t, e, e.MoveWindowToPoint("nope", entity.Point[float64]{X: 0.5, Y: 0.5}))
	})
}

func TestRotate_MovesWindowTowardTheFront(t *testing.T) {
	// Four single window columns.
	e := fill(newEngine(slice.MultiColumnArea(1, 1, 1, 0), slice.WithInsertionType(entity.WindowInsertionRotate)), windows(4))

	got := e.MoveWindowToPoint("w3", entity.Point[float64]{X: 0.3, Y: 0.5})

	assert.Equal(t, []entity.WindowID{"w0", "w3", "w1", "w2"}, windowOrder(t, got))

	back := got.MoveWindowToPoint("w0", entity.Point[float64]{X: 0.6, Y: 0.5})
	assert.Equal(t, []entity.WindowID{"w3", "w1", "w0", "w2"}, windowOrder(t, back))
}

func TestSwapWindowInDirection(t *testing.T) {
	e := fill(newEngine(slice.PrimaryStackArea()), windows(3))

	got := e.SwapWindowInDirection(entity.DirectionRight, "w0")

	assert.Equal(t, []entity.WindowID{"w1", "w0", "w2"}, windowOrder(t, got))
	assert.Same(t, e, e.SwapWindowInDirection(entity.DirectionLeft, "w0"))
}

func TestMoveWindowEdgesInDirection(t *testing.T) {
	e := fill(newEngine(slice.PrimaryStackArea()), windows(3))

	grown := e.MoveWindowEdgesInDirection(entity.DirectionRight, entity.Point[float64]{X: 0.1}, "w0")
	shrunk := e.MoveWindowEdgesInDirection(entity.DirectionRight, entity.Point[float64]{X: -0.1}, "w0")
	down := e.MoveWindowEdgesInDirection(entity.DirectionDown, entity.Point[float64]{Y: 0.1}, "w1")

	assert.Equal(t, []entity.WindowID{"w1", "w0", "w2"}, windowOrder(t, grown))
	assert.Same(t, e, shrunk)
	assert.Equal(t, []entity.WindowID{"w0", "w2", "w1"}, windowOrder(t, down))
}

func TestFocusWindowInDirection(t *testing.T) {
	// Arrange
	focuser := mocks.NewMockWindowFocuser(t)
	focuser.EXPECT().Focus(mock.Anything, entity.WindowID("w1")).Return(nil).Once()
	env := layout.Env{Focus: focuser}
	e := fill(slice.New(env, entity.NewLayoutEngineIdentity(), slice.PrimaryStackArea()), windows(3))

	// Act
	got := e.FocusWindowInDirection(entity.DirectionUp, "w2")
	none := e.FocusWindowInDirection(entity.DirectionLeft, "w0")

	// Assert
	assert.Same(t, e, got)
	assert.Same(t, e, none)
}

func TestPromoteDemoteWindow(t *testing.T) {
	tests := []struct {
		action   string
		focused  int
		expected int
	}{
		{slice.ActionPromoteWindow, 0, 0},
		{slice.ActionPromoteWindow, 2, 1},
		{slice.ActionPromoteWindow, 5, 3},
		{slice.ActionPromoteWindow, 3, 1},
		{slice.ActionDemoteWindow, 5, 5},
		{slice.ActionDemoteWindow, 1, 2},
		{slice.ActionDemoteWindow, 3, 4},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %d", tt.action, tt.focused), func(t *testing.T) {
			ws := windows(6)
			e := fill(newEngine(nestedArea()), ws)

			got := e.PerformCustomAction(layout.CustomAction{Name: tt.action, Window: ws[tt.focused]})

			states := got.DoLayout(screen, entity.Monitor{})
			assert.Equal(t, ws[tt.expected], states[tt.focused].Window)
			assert.Equal(t, ws[tt.focused], states[tt.expected].Window)
		})
	}
}

func TestPromoteDemoteFocus(t *testing.T) {
	tests := []struct {
		focused  int
		expected int
		promote  bool
	}{
		{0, 0, true},
		{1, 0, true},
		{2, 1, true},
		{4, 3, true},
		{0, 2, false},
		{1, 2, false},
		{2, 4, false},
		{4, 5, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d promote=%t", tt.focused, tt.promote), func(t *testing.T) {
			// Arrange
			ws := windows(6)
			focuser := mocks.NewMockWindowFocuser(t)
			focuser.EXPECT().Focus(mock.Anything, ws[tt.expected]).Return(nil).Once()
			e := fill(slice.New(layout.Env{Focus: focuser}, entity.NewLayoutEngineIdentity(), nestedArea()), ws)
			name := slice.ActionDemoteFocus
			if tt.promote {
				name = slice.ActionPromoteFocus
			}

			// Act
			got := e.PerformCustomAction(layout.CustomAction{Name: name, Window: ws[tt.focused]})

			// Assert
			assert.Same(t, e, got)
		})
	}
}

func TestPerformCustomAction_Unknown(t *testing.T) {
	e := fill(newEngine(nestedArea()), windows(2))
	assert.Same(t, e, e.PerformCustomAction(layout.CustomAction{Name: "slice.nope", Window: "w0"}))
	assert.Same(t, e, e.PerformCustomAction(layout.CustomAction{Name: slice.ActionPromoteWindow, Window: "missing"}))
}

func TestMinimize(t *testing.T) {
	e := fill(newEngine(slice.PrimaryStackArea()), windows(3))

	minimized := e.MinimizeWindowStart("w0")

	assert.Equal(t, 3, minimized.Count())
	assert.True(t, minimized.ContainsWindow("w0"))
	first, ok := minimized.GetFirstWindow()
	require.True(t, ok)
	assert.Equal(t, entity.WindowID("w1"), first)
	states := minimized.DoLayout(screen, entity.Monitor{})
	require.Len(t, states, 3)
	assert.Equal(t, entity.WindowSizeMinimized, states[2].Size)
	assert.Equal(t, entity.WindowID("w0"), states[2].Window)

	restored := minimized.MinimizeWindowEnd("w0")
	assert.Equal(t, []entity.WindowID{"w1", "w2", "w0"}, windowOrder(t, restored))
	assert.Same(t, restored, restored.MinimizeWindowEnd("w0"))
}
