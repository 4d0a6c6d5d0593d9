package config

import (
	"fmt"
	"reflect"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/dumbtile/internal/logging"
)

// Watch reloads the config file when it changes on disk. Callbacks run only
// when the reloaded configuration differs from the current one.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	m.viper.OnConfigChange(m.handleFileEvent)
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

func (m *Manager) handleFileEvent(e fsnotify.Event) {
	log := logging.NewFromEnv()
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
		return
	}
	log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")

	m.mu.Lock()
	if m.skipNextReload {
		// Save already holds the written config in memory.
		m.skipNextReload = false
		if err := m.viper.ReadInConfig(); err != nil {
			log.Warn().Err(err).Msg("failed to sync viper after save")
		}
		m.mu.Unlock()
		return
	}

	previous := m.config
	if err := m.reload(); err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Msg("config reload rejected, keeping previous config")
		return
	}
	if previous != nil && reflect.DeepEqual(previous, m.config) {
		m.mu.Unlock()
		log.Debug().Msg("config unchanged after reload")
		return
	}
	m.notifyCallbacksLocked()
}

// notifyCallbacksLocked releases m.mu and then runs the callbacks with the
// current config. Must be called with m.mu held.
func (m *Manager) notifyCallbacksLocked() {
	config := m.config
	callbacks := append([]func(*Config){}, m.callbacks...)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(config)
	}
}

// OnConfigChange registers a callback run after each effective reload.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

// reload re-reads the file. Must be called with m.mu held.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	m.config = config
	return nil
}
