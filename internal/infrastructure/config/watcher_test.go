package config

import (
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleFileEvent(t *testing.T) {
	mgr, dir := newTestManager(t)
	require.NoError(t, mgr.Load())
	path := filepath.Join(dir, configName)

	calls := 0
	mgr.OnConfigChange(func(*Config) { calls++ })

	// Chmod events never reload.
	cfg := mgr.Get()
	cfg.Layout.Workspace = "chmod"
	require.NoError(t, WriteConfigOrdered(cfg, path))
	mgr.handleFileEvent(fsnotify.Event{Name: path, Op: fsnotify.Chmod})
	assert.Equal(t, 0, calls)
	assert.NotEqual(t, "chmod", mgr.Get().Layout.Workspace)

	mgr.handleFileEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})
	assert.Equal(t, 1, calls)
	assert.Equal(t, "chmod", mgr.Get().Layout.Workspace)

	// Same content again: reloaded but callbacks stay quiet.
	mgr.handleFileEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})
	assert.Equal(t, 1, calls)
}
