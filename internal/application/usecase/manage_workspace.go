package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/dumbtile/internal/application/port"
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/layout"
	"github.com/bnema/dumbtile/internal/logging"
)

var (
	ErrNoEngine           = errors.New("workspace needs at least one layout engine")
	ErrWindowNotManaged   = errors.New("window not managed by workspace")
	ErrOutsideWorkingArea = errors.New("point outside working area")
)

// LayoutKey identifies one layout pass. Engines are immutable, so the same
// engine over the same monitor always yields the same states.
type LayoutKey struct {
	Engine  layout.Engine
	Monitor entity.Monitor
}

// ManageWorkspaceUseCase drives the engines of one workspace on one monitor.
// Windows are added to and removed from every engine so that cycling keeps
// them; every other edit goes to the active engine only.
type ManageWorkspaceUseCase struct {
	name       string
	positioner port.WindowPositioner
	cache      port.Cache[LayoutKey, []entity.WindowState]

	mu      sync.Mutex
	monitor entity.Monitor
	engines []layout.Engine
	active  int
}

// NewManageWorkspaceUseCase creates a workspace over engines, the first one active.
// cache may be nil.
func NewManageWorkspaceUseCase(
	name string,
	monitor entity.Monitor,
	positioner port.WindowPositioner,
	cache port.Cache[LayoutKey, []entity.WindowState],
	engines ...layout.Engine,
) (*ManageWorkspaceUseCase, error) {
	if len(engines) == 0 {
		return nil, ErrNoEngine
	}
	return &ManageWorkspaceUseCase{
		name:       name,
		positioner: positioner,
		cache:      cache,
		monitor:    monitor,
		engines:    append([]layout.Engine(nil), engines...),
	}, nil
}

func (uc *ManageWorkspaceUseCase) Name() string { return uc.name }

// Engine returns the active engine.
func (uc *ManageWorkspaceUseCase) Engine() layout.Engine {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.engines[uc.active]
}

// Engines returns every engine, the active one included.
func (uc *ManageWorkspaceUseCase) Engines() []layout.Engine {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return append([]layout.Engine(nil), uc.engines...)
}

func (uc *ManageWorkspaceUseCase) Monitor() entity.Monitor {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.monitor
}

// SetMonitor moves the workspace to another monitor and relayouts.
func (uc *ManageWorkspaceUseCase) SetMonitor(ctx context.Context, monitor entity.Monitor) error {
	uc.mu.Lock()
	uc.monitor = monitor
	uc.mu.Unlock()
	return uc.Relayout(ctx)
}

// Layout computes the states of the active engine on the workspace monitor.
func (uc *ManageWorkspaceUseCase) Layout(ctx context.Context) []entity.WindowState {
	uc.mu.Lock()
	engine, monitor := uc.engines[uc.active], uc.monitor
	uc.mu.Unlock()
	return uc.layout(ctx, engine, monitor)
}

func (uc *ManageWorkspaceUseCase) layout(ctx context.Context, engine layout.Engine, monitor entity.Monitor) []entity.WindowState {
	compute := func() []entity.WindowState {
		return engine.DoLayout(monitor.WorkingArea, monitor)
	}
	if uc.cache == nil {
		return compute()
	}
	key := LayoutKey{Engine: engine, Monitor: monitor}
	if states, ok := uc.cache.Get(key); ok {
		logging.FromContext(ctx).Trace().Str("workspace", uc.name).Msg("layout cache hit")
		return states
	}
	states := compute()
	uc.cache.Set(key, states)
	return states
}

// Relayout applies the current layout through the positioner.
func (uc *ManageWorkspaceUseCase) Relayout(ctx context.Context) error {
	uc.mu.Lock()
	engine, monitor := uc.engines[uc.active], uc.monitor
	uc.mu.Unlock()

	states := uc.layout(ctx, engine, monitor)
	if uc.positioner == nil {
		return nil
	}
	ctx = logging.WithWorkspace(ctx, uc.name)
	if err := uc.positioner.ApplyWindowPositions(ctx, uc.name, engine.Name(), states); err != nil {
		return fmt.Errorf("relayout %q: %w", uc.name, err)
	}
	return nil
}

// Edit runs edit on the active engine and relayouts when it produced a new
// engine. It reports whether anything changed.
func (uc *ManageWorkspaceUseCase) Edit(ctx context.Context, edit func(layout.Engine) layout.Engine) (bool, error) {
	uc.mu.Lock()
	current := uc.engines[uc.active]
	next := edit(current)
	changed := next != current
	if changed {
		uc.engines[uc.active] = next
	}
	uc.mu.Unlock()

	if !changed {
		return false, nil
	}
	return true, uc.Relayout(ctx)
}

// editAll runs edit on every engine.
func (uc *ManageWorkspaceUseCase) editAll(ctx context.Context, edit func(layout.Engine) layout.Engine) (bool, error) {
	uc.mu.Lock()
	changed := false
	for i, e := range uc.engines {
		if next := edit(e); next != e {
			uc.engines[i] = next
			changed = changed || i == uc.active
		}
	}
	uc.mu.Unlock()

	if !changed {
		return false, nil
	}
	return true, uc.Relayout(ctx)
}

func (uc *ManageWorkspaceUseCase) requireWindow(window entity.WindowID) error {
	if !uc.Engine().ContainsWindow(window) {
		return fmt.Errorf("%s in %q: %w", window, uc.name, ErrWindowNotManaged)
	}
	return nil
}

func (uc *ManageWorkspaceUseCase) AddWindow(ctx context.Context, window entity.WindowID) error {
	ctx = logging.WithWindowID(ctx, string(window))
	logging.FromContext(ctx).Debug().Str("workspace", uc.name).Msg("adding window")
	_, err := uc.editAll(ctx, func(e layout.Engine) layout.Engine { return e.AddWindow(window) })
	return err
}

func (uc *ManageWorkspaceUseCase) RemoveWindow(ctx context.Context, window entity.WindowID) error {
	if err := uc.requireWindow(window); err != nil {
		return err
	}
	ctx = logging.WithWindowID(ctx, string(window))
	logging.FromContext(ctx).Debug().Str("workspace", uc.name).Msg("removing window")
	_, err := uc.editAll(ctx, func(e layout.Engine) layout.Engine { return e.RemoveWindow(window) })
	return err
}

// MoveWindowToPoint moves window to the absolute point, e.g. where a drag ended.
func (uc *ManageWorkspaceUseCase) MoveWindowToPoint(ctx context.Context, window entity.WindowID, point entity.Point[int]) error {
	monitor := uc.Monitor()
	if !monitor.Contains(point) {
		return fmt.Errorf("move %s to (%d,%d): %w", window, point.X, point.Y, ErrOutsideWorkingArea)
	}
	normalized, _ := entity.NormalizePoint(point, monitor.WorkingArea)
	_, err := uc.Edit(ctx, func(e layout.Engine) layout.Engine { return e.MoveWindowToPoint(window, normalized) })
	return err
}

// MoveWindowEdges moves the edges of window by a pixel delta.
func (uc *ManageWorkspaceUseCase) MoveWindowEdges(ctx context.Context, window entity.WindowID, edges entity.Direction, delta entity.Point[int]) error {
	if err := uc.requireWindow(window); err != nil {
		return err
	}
	area := uc.Monitor().WorkingArea
	if area.Width == 0 || area.Height == 0 {
		return nil
	}
	deltas := entity.Point[float64]{
		X: float64(delta.X) / float64(area.Width),
		Y: float64(delta.Y) / float64(area.Height),
	}
	_, err := uc.Edit(ctx, func(e layout.Engine) layout.Engine { return e.MoveWindowEdgesInDirection(edges, deltas, window) })
	return err
}

func (uc *ManageWorkspaceUseCase) SwapWindow(ctx context.Context, window entity.WindowID, direction entity.Direction) error {
	if err := uc.requireWindow(window); err != nil {
		return err
	}
	_, err := uc.Edit(ctx, func(e layout.Engine) layout.Engine { return e.SwapWindowInDirection(direction, window) })
	return err
}

func (uc *ManageWorkspaceUseCase) FocusWindow(ctx context.Context, window entity.WindowID, direction entity.Direction) error {
	if err := uc.requireWindow(window); err != nil {
		return err
	}
	_, err := uc.Edit(ctx, func(e layout.Engine) layout.Engine { return e.FocusWindowInDirection(direction, window) })
	return err
}

func (uc *ManageWorkspaceUseCase) MinimizeWindowStart(ctx context.Context, window entity.WindowID) error {
	if err := uc.requireWindow(window); err != nil {
		return err
	}
	_, err := uc.editAll(ctx, func(e layout.Engine) layout.Engine { return e.MinimizeWindowStart(window) })
	return err
}

func (uc *ManageWorkspaceUseCase) MinimizeWindowEnd(ctx context.Context, window entity.WindowID) error {
	if err := uc.requireWindow(window); err != nil {
		return err
	}
	_, err := uc.editAll(ctx, func(e layout.Engine) layout.Engine { return e.MinimizeWindowEnd(window) })
	return err
}

// PerformAction runs a custom action on the active engine. Unknown actions
// leave the workspace untouched.
func (uc *ManageWorkspaceUseCase) PerformAction(ctx context.Context, action layout.CustomAction) (bool, error) {
	return uc.Edit(ctx, func(e layout.Engine) layout.Engine { return e.PerformCustomAction(action) })
}

// CycleEngine activates the next engine and relayouts. It returns the new active engine.
func (uc *ManageWorkspaceUseCase) CycleEngine(ctx context.Context) (layout.Engine, error) {
	uc.mu.Lock()
	uc.active = (uc.active + 1) % len(uc.engines)
	engine := uc.engines[uc.active]
	uc.mu.Unlock()

	ctx = logging.WithEngine(ctx, engine.Name(), engine.Identity().String())
	logging.FromContext(ctx).Info().Str("workspace", uc.name).Msg("layout engine activated")
	return engine, uc.Relayout(ctx)
}
