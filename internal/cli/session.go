package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/bnema/dumbtile/internal/application/usecase"
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/infrastructure/cache"
	"github.com/bnema/dumbtile/internal/infrastructure/config"
	floatreg "github.com/bnema/dumbtile/internal/infrastructure/floating"
	"github.com/bnema/dumbtile/internal/infrastructure/virtual"
	"github.com/bnema/dumbtile/internal/layout"
	"github.com/bnema/dumbtile/internal/logging"
)

// cascadeStep is the offset between windows opened by a Session.
const cascadeStep = 40

// Session is one workspace laid out on a virtual desktop.
type Session struct {
	Desktop   *virtual.Desktop
	Registry  *floatreg.Registry
	Apply     *usecase.ApplyLayoutUseCase
	Workspace *usecase.ManageWorkspaceUseCase
	Floating  *usecase.ManageFloatingUseCase
	Cache     *cache.LRU[usecase.LayoutKey, []entity.WindowState]

	opened    int
	minimized []entity.WindowID
}

// NewSession builds the engines of cfg over a virtual desktop with the
// configured monitor.
func (a *App) NewSession(cfg *config.Config) (*Session, error) {
	monitor := cfg.Monitor.ToMonitor()
	desktop, err := virtual.NewDesktop(monitor)
	if err != nil {
		return nil, fmt.Errorf("virtual desktop: %w", err)
	}

	registry := floatreg.NewRegistry()
	env := layout.Env{
		Geometry: desktop,
		Monitors: desktop,
		Focus:    desktop,
		Logger:   a.Logger().With().Str("component", "layout").Logger(),
	}
	engines, err := BuildEngines(cfg, env, registry)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Desktop:  desktop,
		Registry: registry,
		Floating: usecase.NewManageFloatingUseCase(registry, desktop),
	}
	if a.Recorder != nil {
		s.Apply = usecase.NewApplyLayoutUseCase(desktop, a.Recorder, cfg.Apply.MaxParallel)
	} else {
		s.Apply = usecase.NewApplyLayoutUseCase(desktop, nil, cfg.Apply.MaxParallel)
	}

	var layoutCache *cache.LRU[usecase.LayoutKey, []entity.WindowState]
	if cfg.Layout.CacheSize > 0 {
		layoutCache = cache.NewLRU[usecase.LayoutKey, []entity.WindowState](cfg.Layout.CacheSize)
		s.Cache = layoutCache
	}
	if layoutCache != nil {
		s.Workspace, err = usecase.NewManageWorkspaceUseCase(cfg.Layout.Workspace, monitor, s.Apply, layoutCache, engines...)
	} else {
		s.Workspace, err = usecase.NewManageWorkspaceUseCase(cfg.Layout.Workspace, monitor, s.Apply, nil, engines...)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// OpenWindow opens a new window on the desktop and adds it to the workspace.
func (s *Session) OpenWindow(ctx context.Context) (entity.WindowID, error) {
	s.opened++
	id := entity.WindowID(fmt.Sprintf("w%d", s.opened))

	area := s.Workspace.Monitor().WorkingArea
	step := (s.opened - 1) % 8 * cascadeStep
	bounds := entity.Rectangle[int]{
		X:      area.X + step,
		Y:      area.Y + step,
		Width:  max(area.Width/3, 1),
		Height: max(area.Height/3, 1),
	}
	s.Desktop.Open(ctx, id, bounds)

	if err := s.Workspace.AddWindow(logging.WithWindowID(ctx, string(id)), id); err != nil {
		return id, err
	}
	return id, nil
}

// CloseWindow removes window from the workspace and the desktop.
func (s *Session) CloseWindow(ctx context.Context, window entity.WindowID) error {
	if err := s.Workspace.RemoveWindow(ctx, window); err != nil {
		return err
	}
	s.Floating.Forget(window)
	s.minimized = slices.DeleteFunc(s.minimized, func(w entity.WindowID) bool { return w == window })
	return s.Desktop.Close(ctx, window)
}

// Minimize minimizes window, remembering it for Restore.
func (s *Session) Minimize(ctx context.Context, window entity.WindowID) error {
	if slices.Contains(s.minimized, window) {
		return nil
	}
	if err := s.Workspace.MinimizeWindowStart(ctx, window); err != nil {
		return err
	}
	s.minimized = append(s.minimized, window)
	return nil
}

// Restore brings back the most recently minimized window.
func (s *Session) Restore(ctx context.Context) (entity.WindowID, bool, error) {
	if len(s.minimized) == 0 {
		return "", false, nil
	}
	window := s.minimized[len(s.minimized)-1]
	s.minimized = s.minimized[:len(s.minimized)-1]
	if err := s.Workspace.MinimizeWindowEnd(ctx, window); err != nil {
		return window, false, err
	}
	if err := s.Desktop.Focus(ctx, window); err != nil {
		return window, false, err
	}
	return window, true, nil
}

// Minimized lists minimized windows, oldest first.
func (s *Session) Minimized() []entity.WindowID {
	return slices.Clone(s.minimized)
}

// Focused returns the focused window, if it is managed by the workspace.
func (s *Session) Focused(ctx context.Context) (entity.WindowID, bool) {
	window, ok := s.Desktop.LastFocusedWindow(ctx)
	if !ok || !s.Workspace.Engine().ContainsWindow(window) {
		return "", false
	}
	return window, true
}

// Nudge drags a floating window by delta pixels and lets the engine pick up
// its new rectangle.
func (s *Session) Nudge(ctx context.Context, window entity.WindowID, delta entity.Point[int]) error {
	rect, ok := s.Desktop.WindowRectangle(ctx, window)
	if !ok {
		return fmt.Errorf("nudge %s: %w", window, virtual.ErrUnknownWindow)
	}
	rect.X += delta.X
	rect.Y += delta.Y
	if err := s.Desktop.Drag(window, rect); err != nil {
		return err
	}
	center := rect.Center()
	if !s.Workspace.Monitor().Contains(center) {
		return nil
	}
	return s.Workspace.MoveWindowToPoint(ctx, window, center)
}
