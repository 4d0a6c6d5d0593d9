package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbtile/internal/application/usecase"
	"github.com/bnema/dumbtile/internal/domain/entity"
	infrafloating "github.com/bnema/dumbtile/internal/infrastructure/floating"
	"github.com/bnema/dumbtile/internal/infrastructure/virtual"
	"github.com/bnema/dumbtile/internal/layout"
	"github.com/bnema/dumbtile/internal/layout/floating"
	"github.com/bnema/dumbtile/internal/layout/slice"
	"github.com/bnema/dumbtile/internal/layout/tree"
)

// desktopFixture wires a floating proxy over an inner engine against a
// virtual desktop, with batches applied for real.
type desktopFixture struct {
	desktop  *virtual.Desktop
	registry *infrafloating.Registry
	apply    *usecase.ApplyLayoutUseCase
	ws       *usecase.ManageWorkspaceUseCase
	floating *usecase.ManageFloatingUseCase
}

func newDesktopFixture(t *testing.T, inner func(layout.Env) layout.Engine) *desktopFixture {
	t.Helper()
	desktop, err := virtual.NewDesktop(primary)
	require.NoError(t, err)
	registry := infrafloating.NewRegistry()
	env := layout.Env{Geometry: desktop, Monitors: desktop, Focus: desktop}
	apply := usecase.NewApplyLayoutUseCase(desktop, nil, 4)
	ws, err := usecase.NewManageWorkspaceUseCase("main", primary, apply, nil, floating.NewProxy(env, registry, inner(env)))
	require.NoError(t, err)
	return &desktopFixture{
		desktop:  desktop,
		registry: registry,
		apply:    apply,
		ws:       ws,
		floating: usecase.NewManageFloatingUseCase(registry, desktop),
	}
}

func (f *desktopFixture) open(t *testing.T, windows ...entity.WindowID) {
	t.Helper()
	ctx := testContext()
	for _, w := range windows {
		f.desktop.Open(ctx, w, rect(100, 100, 400, 300))
		require.NoError(t, f.ws.AddWindow(ctx, w))
	}
}

func TestManageFloatingUseCase_FloatKeepsRectangleAndRetiles(t *testing.T) {
	ctx := testContext()
	f := newDesktopFixture(t, func(env layout.Env) layout.Engine {
		return tree.New(env, entity.NewLayoutEngineIdentity())
	})
	f.open(t, "a", "b", "c")
	require.Equal(t, rect(1280, 0, 640, 1080), f.desktop.Frames()["c"])

	require.NoError(t, f.desktop.Drag("c", rect(200, 150, 500, 400)))
	require.NoError(t, f.floating.MarkFloating(ctx, f.ws, "c"))

	frames := f.desktop.Frames()
	assert.Equal(t, rect(200, 150, 500, 400), frames["c"])
	assert.Equal(t, rect(0, 0, 960, 1080), frames["a"])
	assert.Equal(t, rect(960, 0, 960, 1080), frames["b"])
	assert.True(t, f.floating.IsFloating(f.ws, "c"))
	assert.Equal(t, 3, f.ws.Engine().Count())

	proxy, ok := layout.Find[*floating.ProxyEngine](f.ws.Engine())
	require.True(t, ok)
	assert.Equal(t, []entity.WindowID{"c"}, proxy.FloatingWindows())
}

func TestManageFloatingUseCase_DockReturnsWindowToTree(t *testing.T) {
	ctx := testContext()
	f := newDesktopFixture(t, func(env layout.Env) layout.Engine {
		return tree.New(env, entity.NewLayoutEngineIdentity())
	})
	f.open(t, "a", "b")
	require.NoError(t, f.desktop.Drag("b", rect(1500, 400, 200, 200)))
	require.NoError(t, f.floating.MarkFloating(ctx, f.ws, "b"))

	floatingNow, err := f.floating.Toggle(ctx, f.ws, "b")

	require.NoError(t, err)
	assert.False(t, floatingNow)
	frames := f.desktop.Frames()
	assert.Equal(t, rect(0, 0, 960, 1080), frames["a"])
	assert.Equal(t, rect(960, 0, 960, 1080), frames["b"])
	assert.Zero(t, f.registry.Windows())
}

func TestManageFloatingUseCase_DockIntoSliceEngine(t *testing.T) {
	ctx := testContext()
	f := newDesktopFixture(t, func(env layout.Env) layout.Engine {
		return slice.NewPrimaryStack(env, entity.NewLayoutEngineIdentity())
	})
	f.open(t, "a", "b")
	require.NoError(t, f.floating.MarkFloating(ctx, f.ws, "b"))
	require.Equal(t, rect(0, 0, 1920, 1080), f.desktop.Frames()["a"])

	require.NoError(t, f.floating.MarkDocked(ctx, f.ws, "b"))

	assert.True(t, f.ws.Engine().ContainsWindow("b"))
	assert.Equal(t, rect(960, 0, 960, 1080), f.desktop.Frames()["b"])
}

func TestManageFloatingUseCase_RequiresManagedWindow(t *testing.T) {
	f := newDesktopFixture(t, func(env layout.Env) layout.Engine {
		return tree.New(env, entity.NewLayoutEngineIdentity())
	})

	err := f.floating.MarkFloating(testContext(), f.ws, "ghost")

	assert.ErrorIs(t, err, usecase.ErrWindowNotManaged)
}

func TestManageFloatingUseCase_RemoveFloatingWindowForgetsIt(t *testing.T) {
	ctx := testContext()
	f := newDesktopFixture(t, func(env layout.Env) layout.Engine {
		return tree.New(env, entity.NewLayoutEngineIdentity())
	})
	f.open(t, "a", "b")
	require.NoError(t, f.floating.MarkFloating(ctx, f.ws, "b"))

	require.NoError(t, f.ws.RemoveWindow(ctx, "b"))
	f.floating.Forget("b")

	assert.False(t, f.ws.Engine().ContainsWindow("b"))
	assert.Zero(t, f.registry.Windows())
	assert.Equal(t, rect(0, 0, 1920, 1080), f.desktop.Frames()["a"])
}

func TestManageFloatingUseCase_MarkFloatingNeedsFloatingLayer(t *testing.T) {
	ctx := testContext()
	desktop, err := virtual.NewDesktop(primary)
	require.NoError(t, err)
	registry := infrafloating.NewRegistry()
	env := layout.Env{Geometry: desktop, Monitors: desktop, Focus: desktop}
	apply := usecase.NewApplyLayoutUseCase(desktop, nil, 0)
	ws, err := usecase.NewManageWorkspaceUseCase("main", primary, apply, nil, tree.New(env, entity.NewLayoutEngineIdentity()))
	require.NoError(t, err)
	desktop.Open(ctx, "a", rect(0, 0, 100, 100))
	require.NoError(t, ws.AddWindow(ctx, "a"))

	uc := usecase.NewManageFloatingUseCase(registry, desktop)
	err = uc.MarkFloating(ctx, ws, "a")

	if !errors.Is(err, usecase.ErrNoFloatingLayer) {
		t.Fatalf("err = %v, want ErrNoFloatingLayer", err)
	}
	assert.False(t, uc.IsFloating(ws, "a"))
	assert.Equal(t, 0, registry.Windows())
}
