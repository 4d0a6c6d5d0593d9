package layout

import (
	"context"

	"github.com/bnema/dumbtile/internal/application/port"
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/rs/zerolog"
)

// Env carries the collaborators an engine consults. Every field is optional;
// a nil collaborator behaves like one that never finds anything.
type Env struct {
	Geometry port.WindowGeometry
	Monitors port.MonitorLocator
	Focus    port.WindowFocuser
	Logger   zerolog.Logger
}

// NopEnv returns an Env without collaborators and with logging disabled.
func NopEnv() Env {
	return Env{Logger: zerolog.Nop()}
}

// Context returns a background context carrying the env logger.
// Engine methods never block, so there is nothing to cancel.
func (e Env) Context() context.Context {
	return e.Logger.WithContext(context.Background())
}

// LastFocused returns the window that last had focus, if a focuser is wired.
func (e Env) LastFocused() (entity.WindowID, bool) {
	if e.Focus == nil {
		return "", false
	}
	return e.Focus.LastFocusedWindow(e.Context())
}

// FocusWindow asks the window system to focus w, if a focuser is wired.
func (e Env) FocusWindow(w entity.WindowID) {
	if e.Focus == nil {
		return
	}
	if err := e.Focus.Focus(e.Context(), w); err != nil {
		e.Logger.Debug().Err(err).Str("window", string(w)).Msg("focus request failed")
	}
}
