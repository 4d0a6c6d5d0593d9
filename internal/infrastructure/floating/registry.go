// Package floating holds the process-wide record of floating windows.
package floating

import (
	"sync"

	"github.com/bnema/dumbtile/internal/application/port"
	"github.com/bnema/dumbtile/internal/domain/entity"
)

// Registry implements port.FloatingRegistry. A window can float in several
// engines at once, e.g. one per workspace.
type Registry struct {
	mu      sync.RWMutex
	windows map[entity.WindowID]map[entity.LayoutEngineIdentity]struct{}
}

var _ port.FloatingRegistry = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{windows: make(map[entity.WindowID]map[entity.LayoutEngineIdentity]struct{})}
}

func (r *Registry) IsFloating(window entity.WindowID, engine entity.LayoutEngineIdentity) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.windows[window][engine]
	return ok
}

func (r *Registry) MarkFloating(window entity.WindowID, engine entity.LayoutEngineIdentity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	engines, ok := r.windows[window]
	if !ok {
		engines = make(map[entity.LayoutEngineIdentity]struct{})
		r.windows[window] = engines
	}
	engines[engine] = struct{}{}
}

func (r *Registry) MarkDocked(window entity.WindowID, engine entity.LayoutEngineIdentity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	engines, ok := r.windows[window]
	if !ok {
		return
	}
	delete(engines, engine)
	if len(engines) == 0 {
		delete(r.windows, window)
	}
}

func (r *Registry) Forget(window entity.WindowID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.windows, window)
}

// Windows returns how many windows float in at least one engine.
func (r *Registry) Windows() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.windows)
}
