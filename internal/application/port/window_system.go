package port

import (
	"context"

	"github.com/bnema/dumbtile/internal/domain/entity"
)

// WindowGeometry reports the current OS bounds of a window.
type WindowGeometry interface {
	// WindowRectangle returns the window's absolute bounds.
	// Returns false when the window has no retrievable geometry, e.g. it was closed.
	WindowRectangle(ctx context.Context, window entity.WindowID) (entity.Rectangle[int], bool)
}

// MonitorLocator resolves which monitor an absolute point belongs to.
type MonitorLocator interface {
	// MonitorAtPoint returns the monitor containing point, or false when none does.
	MonitorAtPoint(ctx context.Context, point entity.Point[int]) (entity.Monitor, bool)
	// Monitors lists every known monitor, primary first.
	Monitors(ctx context.Context) []entity.Monitor
}

// WindowFocuser moves keyboard focus between windows.
type WindowFocuser interface {
	Focus(ctx context.Context, window entity.WindowID) error
	// LastFocusedWindow returns the window that most recently had focus.
	LastFocusedWindow(ctx context.Context) (entity.WindowID, bool)
}

// FrameOffset is the difference between a window's visible bounds and the
// bounds the OS expects when positioning it (borders, shadows).
type FrameOffset struct {
	X, Y          int
	Width, Height int
}

// NativeWindowManager is the OS sink for window positions.
type NativeWindowManager interface {
	// WindowOffset returns the frame offset of window.
	WindowOffset(ctx context.Context, window entity.WindowID) (FrameOffset, error)
	// SetWindowPositions applies the whole batch in a single operation.
	// Implementations must not apply a subset of the batch.
	SetWindowPositions(ctx context.Context, batch []entity.WindowPosition) error
}

// WindowPositioner applies the output of a layout pass. engine names the
// engine that produced states.
type WindowPositioner interface {
	ApplyWindowPositions(ctx context.Context, workspace, engine string, states []entity.WindowState) error
}

// FloatingRegistry records which windows float in which engine.
// It is owned outside the engines and may change between engine calls.
type FloatingRegistry interface {
	IsFloating(window entity.WindowID, engine entity.LayoutEngineIdentity) bool
	MarkFloating(window entity.WindowID, engine entity.LayoutEngineIdentity)
	MarkDocked(window entity.WindowID, engine entity.LayoutEngineIdentity)
	// Forget drops every entry of window, e.g. after it was closed.
	Forget(window entity.WindowID)
}

// SnapshotRecorder receives every applied batch for persistence.
type SnapshotRecorder interface {
	Record(ctx context.Context, snapshot *entity.LayoutSnapshot)
}
