package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dumbtile/internal/application/port"
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/layout"
	"github.com/bnema/dumbtile/internal/logging"
)

// ErrNoFloatingLayer is returned when the active engine cannot hold floating windows.
var ErrNoFloatingLayer = errors.New("active engine has no floating layer")

// ManageFloatingUseCase marks windows as floating or docked in the active
// engine of a workspace. The floating proxy picks the change up on the
// following move, which is issued here at the window's current center.
type ManageFloatingUseCase struct {
	registry port.FloatingRegistry
	geometry port.WindowGeometry
}

// NewManageFloatingUseCase creates the floating window use case.
func NewManageFloatingUseCase(registry port.FloatingRegistry, geometry port.WindowGeometry) *ManageFloatingUseCase {
	return &ManageFloatingUseCase{registry: registry, geometry: geometry}
}

// IsFloating reports whether window floats in the active engine of ws.
func (uc *ManageFloatingUseCase) IsFloating(ws *ManageWorkspaceUseCase, window entity.WindowID) bool {
	return uc.registry.IsFloating(window, ws.Engine().Identity())
}

// MarkFloating lets window keep its current rectangle.
func (uc *ManageFloatingUseCase) MarkFloating(ctx context.Context, ws *ManageWorkspaceUseCase, window entity.WindowID) error {
	if err := ws.requireWindow(window); err != nil {
		return err
	}
	if _, ok := layout.Find[layout.FloatingLayer](ws.Engine()); !ok {
		return fmt.Errorf("float %s in %s: %w", window, ws.Engine().Name(), ErrNoFloatingLayer)
	}
	uc.registry.MarkFloating(window, ws.Engine().Identity())
	logging.FromContext(ctx).Debug().Str("window", string(window)).Msg("window marked floating")
	return uc.touch(ctx, ws, window)
}

// MarkDocked hands window back to the tiling engine.
func (uc *ManageFloatingUseCase) MarkDocked(ctx context.Context, ws *ManageWorkspaceUseCase, window entity.WindowID) error {
	if err := ws.requireWindow(window); err != nil {
		return err
	}
	uc.registry.MarkDocked(window, ws.Engine().Identity())
	logging.FromContext(ctx).Debug().Str("window", string(window)).Msg("window marked docked")
	if err := uc.touch(ctx, ws, window); err != nil {
		return err
	}
	// Engines that only reorder existing windows ignore the move of an
	// unknown window; add it back explicitly.
	if !ws.Engine().ContainsWindow(window) {
		_, err := ws.Edit(ctx, func(e layout.Engine) layout.Engine { return e.AddWindow(window) })
		return err
	}
	return nil
}

// Toggle flips the floating state of window and returns the new state.
func (uc *ManageFloatingUseCase) Toggle(ctx context.Context, ws *ManageWorkspaceUseCase, window entity.WindowID) (bool, error) {
	if uc.IsFloating(ws, window) {
		return false, uc.MarkDocked(ctx, ws, window)
	}
	return true, uc.MarkFloating(ctx, ws, window)
}

// touch moves window to its own center so the proxy reconsiders it.
func (uc *ManageFloatingUseCase) touch(ctx context.Context, ws *ManageWorkspaceUseCase, window entity.WindowID) error {
	rect, ok := uc.geometry.WindowRectangle(ctx, window)
	if !ok {
		return fmt.Errorf("rectangle of %s: %w", window, ErrWindowNotManaged)
	}
	area := ws.Monitor().WorkingArea
	center, ok := entity.NormalizePoint(rect.Center(), area)
	if !ok {
		return nil
	}
	_, err := ws.Edit(ctx, func(e layout.Engine) layout.Engine { return e.MoveWindowToPoint(window, center) })
	return err
}

// Forget drops window from the registry, e.g. after it was closed.
func (uc *ManageFloatingUseCase) Forget(window entity.WindowID) {
	uc.registry.Forget(window)
}
