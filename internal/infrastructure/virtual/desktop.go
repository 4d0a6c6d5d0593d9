// Package virtual is an in-memory window system. It backs the CLI
// playground and the use case tests with real monitors, windows and
// batch positioning without talking to an OS.
package virtual

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/bnema/dumbtile/internal/application/port"
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/logging"
)

var (
	// ErrUnknownWindow is returned for windows that were never opened or are closed.
	ErrUnknownWindow = errors.New("unknown window")
	// ErrNoMonitor is returned when a desktop is created without monitors.
	ErrNoMonitor = errors.New("desktop needs at least one monitor")
)

type window struct {
	// frame is what the OS positions, visible bounds plus offset.
	frame     entity.Rectangle[int]
	offset    port.FrameOffset
	minimized bool
	maximized bool
}

// Desktop implements the window system ports in memory.
type Desktop struct {
	mu       sync.RWMutex
	monitors []entity.Monitor
	windows  map[entity.WindowID]*window
	order    []entity.WindowID
	focused  entity.WindowID
	batches  int
}

var (
	_ port.WindowGeometry      = (*Desktop)(nil)
	_ port.MonitorLocator      = (*Desktop)(nil)
	_ port.WindowFocuser       = (*Desktop)(nil)
	_ port.NativeWindowManager = (*Desktop)(nil)
)

// NewDesktop creates a desktop with the given monitors. The primary monitor
// is listed first.
func NewDesktop(monitors ...entity.Monitor) (*Desktop, error) {
	if len(monitors) == 0 {
		return nil, ErrNoMonitor
	}
	sorted := slices.Clone(monitors)
	slices.SortStableFunc(sorted, func(a, b entity.Monitor) int {
		switch {
		case a.Primary && !b.Primary:
			return -1
		case b.Primary && !a.Primary:
			return 1
		}
		return 0
	})
	return &Desktop{monitors: sorted, windows: make(map[entity.WindowID]*window)}, nil
}

// Open creates a window with the given visible bounds and focuses it.
func (d *Desktop) Open(ctx context.Context, id entity.WindowID, bounds entity.Rectangle[int]) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.windows[id]; !ok {
		d.order = append(d.order, id)
	}
	d.windows[id] = &window{frame: bounds}
	d.focused = id
	logging.FromContext(ctx).Debug().Str("window", string(id)).Msg("virtual window opened")
}

// Close destroys a window.
func (d *Desktop) Close(ctx context.Context, id entity.WindowID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.windows[id]; !ok {
		return fmt.Errorf("close %s: %w", id, ErrUnknownWindow)
	}
	delete(d.windows, id)
	d.order = slices.DeleteFunc(d.order, func(w entity.WindowID) bool { return w == id })
	if d.focused == id {
		d.focused = ""
	}
	logging.FromContext(ctx).Debug().Str("window", string(id)).Msg("virtual window closed")
	return nil
}

// Drag moves a window to new visible bounds as a user would.
func (d *Desktop) Drag(id entity.WindowID, bounds entity.Rectangle[int]) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, ok := d.windows[id]
	if !ok {
		return fmt.Errorf("drag %s: %w", id, ErrUnknownWindow)
	}
	w.frame = withOffset(bounds, w.offset)
	return nil
}

// SetFrameOffset sets the decoration offset of a window.
func (d *Desktop) SetFrameOffset(id entity.WindowID, offset port.FrameOffset) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, ok := d.windows[id]
	if !ok {
		return fmt.Errorf("set offset %s: %w", id, ErrUnknownWindow)
	}
	visible := withoutOffset(w.frame, w.offset)
	w.offset = offset
	w.frame = withOffset(visible, offset)
	return nil
}

// Windows lists open windows in the order they were opened.
func (d *Desktop) Windows() []entity.WindowID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.order)
}

// Frames returns the OS frame of every open window.
func (d *Desktop) Frames() map[entity.WindowID]entity.Rectangle[int] {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[entity.WindowID]entity.Rectangle[int], len(d.windows))
	for id, w := range d.windows {
		out[id] = w.frame
	}
	return out
}

// IsMinimized reports whether the last batch minimized the window.
func (d *Desktop) IsMinimized(id entity.WindowID) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	w, ok := d.windows[id]
	return ok && w.minimized
}

// Batches counts the SetWindowPositions calls applied so far.
func (d *Desktop) Batches() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.batches
}

// Primary returns the primary monitor.
func (d *Desktop) Primary() entity.Monitor {
	return d.monitors[0]
}

func (d *Desktop) WindowRectangle(_ context.Context, id entity.WindowID) (entity.Rectangle[int], bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	w, ok := d.windows[id]
	if !ok {
		return entity.Rectangle[int]{}, false
	}
	return withoutOffset(w.frame, w.offset), true
}

func (d *Desktop) MonitorAtPoint(_ context.Context, p entity.Point[int]) (entity.Monitor, bool) {
	for _, m := range d.monitors {
		if m.Contains(p) {
			return m, true
		}
	}
	return entity.Monitor{}, false
}

func (d *Desktop) Monitors(context.Context) []entity.Monitor {
	return slices.Clone(d.monitors)
}

func (d *Desktop) Focus(ctx context.Context, id entity.WindowID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.windows[id]; !ok {
		return fmt.Errorf("focus %s: %w", id, ErrUnknownWindow)
	}
	d.focused = id
	logging.FromContext(ctx).Debug().Str("window", string(id)).Msg("virtual focus changed")
	return nil
}

func (d *Desktop) LastFocusedWindow(context.Context) (entity.WindowID, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.focused, d.focused != ""
}

func (d *Desktop) WindowOffset(_ context.Context, id entity.WindowID) (port.FrameOffset, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	w, ok := d.windows[id]
	if !ok {
		return port.FrameOffset{}, fmt.Errorf("offset %s: %w", id, ErrUnknownWindow)
	}
	return w.offset, nil
}

// SetWindowPositions applies the batch atomically: an unknown window rejects
// the whole batch.
func (d *Desktop) SetWindowPositions(ctx context.Context, batch []entity.WindowPosition) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, p := range batch {
		if _, ok := d.windows[p.Window]; !ok {
			return fmt.Errorf("set positions: %s: %w", p.Window, ErrUnknownWindow)
		}
	}

	staged := maps.Clone(d.windows)
	for _, p := range batch {
		w := *staged[p.Window]
		w.minimized = p.Size == entity.WindowSizeMinimized
		w.maximized = p.Size == entity.WindowSizeMaximized
		if !w.minimized {
			w.frame = p.Rectangle
		}
		staged[p.Window] = &w
	}
	d.windows = staged
	d.batches++

	logging.FromContext(ctx).Debug().Int("windows", len(batch)).Int("batch", d.batches).Msg("virtual batch applied")
	return nil
}

func withOffset(r entity.Rectangle[int], o port.FrameOffset) entity.Rectangle[int] {
	return entity.Rectangle[int]{X: r.X + o.X, Y: r.Y + o.Y, Width: r.Width + o.Width, Height: r.Height + o.Height}
}

func withoutOffset(r entity.Rectangle[int], o port.FrameOffset) entity.Rectangle[int] {
	return entity.Rectangle[int]{X: r.X - o.X, Y: r.Y - o.Y, Width: r.Width - o.Width, Height: r.Height - o.Height}
}
