package virtual_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbtile/internal/application/port"
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/infrastructure/virtual"
)

func twoMonitors(t *testing.T) *virtual.Desktop {
	t.Helper()
	d, err := virtual.NewDesktop(
		entity.Monitor{ID: "right", WorkingArea: entity.Rectangle[int]{X: 1920, Width: 1280, Height: 1024}},
		entity.Monitor{ID: "left", WorkingArea: entity.Rectangle[int]{Width: 1920, Height: 1080}, Primary: true},
	)
	require.NoError(t, err)
	return d
}

func TestNewDesktop_RequiresMonitor(t *testing.T) {
	_, err := virtual.NewDesktop()
	assert.ErrorIs(t, err, virtual.ErrNoMonitor)
}

func TestDesktop_MonitorsPrimaryFirst(t *testing.T) {
	d := twoMonitors(t)

	monitors := d.Monitors(context.Background())

	require.Len(t, monitors, 2)
	assert.Equal(t, entity.MonitorID("left"), monitors[0].ID)
	assert.Equal(t, entity.MonitorID("left"), d.Primary().ID)
}

func TestDesktop_MonitorAtPoint(t *testing.T) {
	d := twoMonitors(t)
	ctx := context.Background()

	m, ok := d.MonitorAtPoint(ctx, entity.Point[int]{X: 2000, Y: 10})
	require.True(t, ok)
	assert.Equal(t, entity.MonitorID("right"), m.ID)

	_, ok = d.MonitorAtPoint(ctx, entity.Point[int]{X: 100, Y: 1100})
	assert.False(t, ok)
}

func TestDesktop_OpenFocusesAndCloseForgets(t *testing.T) {
	d := twoMonitors(t)
	ctx := context.Background()

	d.Open(ctx, "a", entity.Rectangle[int]{Width: 100, Height: 100})
	d.Open(ctx, "b", entity.Rectangle[int]{Width: 100, Height: 100})

	focused, ok := d.LastFocusedWindow(ctx)
	require.True(t, ok)
	assert.Equal(t, entity.WindowID("b"), focused)

	require.NoError(t, d.Close(ctx, "b"))
	_, ok = d.LastFocusedWindow(ctx)
	assert.False(t, ok)
	assert.Equal(t, []entity.WindowID{"a"}, d.Windows())
	assert.ErrorIs(t, d.Close(ctx, "b"), virtual.ErrUnknownWindow)
	assert.ErrorIs(t, d.Focus(ctx, "b"), virtual.ErrUnknownWindow)
}

func TestDesktop_FrameOffsetIsHiddenFromGeometry(t *testing.T) {
	d := twoMonitors(t)
	ctx := context.Background()
	visible := entity.Rectangle[int]{X: 10, Y: 10, Width: 200, Height: 100}
	d.Open(ctx, "a", visible)

	require.NoError(t, d.SetFrameOffset("a", port.FrameOffset{X: -7, Y: 0, Width: 14, Height: 7}))

	got, ok := d.WindowRectangle(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, visible, got)
	assert.Equal(t, entity.Rectangle[int]{X: 3, Y: 10, Width: 214, Height: 107}, d.Frames()["a"])

	require.NoError(t, d.Drag("a", entity.Rectangle[int]{X: 50, Y: 60, Width: 200, Height: 100}))
	got, _ = d.WindowRectangle(ctx, "a")
	assert.Equal(t, entity.Rectangle[int]{X: 50, Y: 60, Width: 200, Height: 100}, got)
}

func TestDesktop_SetWindowPositionsIsAllOrNothing(t *testing.T) {
	d := twoMonitors(t)
	ctx := context.Background()
	d.Open(ctx, "a", entity.Rectangle[int]{Width: 100, Height: 100})

	err := d.SetWindowPositions(ctx, []entity.WindowPosition{
		{Window: "a", Rectangle: entity.Rectangle[int]{X: 500, Width: 10, Height: 10}},
		{Window: "ghost", Rectangle: entity.Rectangle[int]{Width: 10, Height: 10}},
	})

	require.ErrorIs(t, err, virtual.ErrUnknownWindow)
	assert.Equal(t, entity.Rectangle[int]{Width: 100, Height: 100}, d.Frames()["a"])
	assert.Zero(t, d.Batches())
}

func TestDesktop_SetWindowPositionsMinimizes(t *testing.T) {
	d := twoMonitors(t)
	ctx := context.Background()
	d.Open(ctx, "a", entity.Rectangle[int]{Width: 100, Height: 100})
	d.Open(ctx, "b", entity.Rectangle[int]{Width: 100, Height: 100})

	err := d.SetWindowPositions(ctx, []entity.WindowPosition{
		{Window: "a", Size: entity.WindowSizeMinimized},
		{Window: "b", Rectangle: entity.Rectangle[int]{X: 960, Width: 960, Height: 1080}},
	})

	require.NoError(t, err)
	assert.True(t, d.IsMinimized("a"))
	assert.Equal(t, entity.Rectangle[int]{Width: 100, Height: 100}, d.Frames()["a"])
	assert.Equal(t, entity.Rectangle[int]{X: 960, Width: 960, Height: 1080}, d.Frames()["b"])
	assert.Equal(t, 1, d.Batches())
}
