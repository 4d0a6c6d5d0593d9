package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	dir := t.TempDir()
	mgr, err := NewManagerAt(dir)
	require.NoError(t, err)
	return mgr, dir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configName), []byte(content), filePerm))
}

func TestSetLayoutDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "right", mgr.viper.GetString("tree.add_direction"))
	assert.True(t, mgr.viper.GetBool("layout.floating"))
	assert.Equal(t, defaultMaxParallel, mgr.viper.GetInt("apply.max_parallel"))
}

func TestLoad_CreatesDefaultConfigAndSchema(t *testing.T) {
	mgr, dir := newTestManager(t)

	require.NoError(t, mgr.Load())

	assert.FileExists(t, filepath.Join(dir, configName))
	assert.FileExists(t, filepath.Join(dir, schemaName))

	cfg := mgr.Get()
	want := DefaultConfig()
	assert.Equal(t, want.Layout, cfg.Layout)
	assert.Equal(t, want.Slice.Preset, cfg.Slice.Preset)
	assert.Equal(t, want.Monitor, cfg.Monitor)
	assert.NotEmpty(t, cfg.Database.Path)
}

func TestLoad_ReadsFileAndNormalizes(t *testing.T) {
	mgr, dir := newTestManager(t)
	writeConfig(t, dir, `
[layout]
  workspace = 'dev'
  engines = ['Slice', ' TREE ']

[tree]
  add_direction = 'Down'

[slice]
  preset = 'custom'
  insertion_type = 'rotate'

  [slice.area]
    kind = 'parent'
    row = true
    weights = [0.6, 0.4]

    [[slice.area.children]]
      kind = 'slice'
      max_children = 1

    [[slice.area.children]]
      kind = 'overflow'
`)

	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "dev", cfg.Layout.Workspace)
	assert.Equal(t, []EngineKind{EngineSlice, EngineTree}, cfg.Layout.Engines)
	assert.Equal(t, "down", cfg.Tree.AddDirection)
	require.NotNil(t, cfg.Slice.Area)
	area, err := cfg.Slice.BuildArea()
	require.NoError(t, err)
	assert.Len(t, area.Children, 2)
	require.Len(t, area.Weights, 2)
	assert.InDelta(t, 0.6, area.Weights[0], 1e-9)
	assert.InDelta(t, 0.4, area.Weights[1], 1e-9)
}

func TestLoad_FocusEngine(t *testing.T) {
	mgr, dir := newTestManager(t)
	writeConfig(t, dir, `
[layout]
  engines = ['focus', 'tree']

[focus]
  maximized = true
`)

	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, []EngineKind{EngineFocus, EngineTree}, cfg.Layout.Engines)
	assert.True(t, cfg.Focus.Maximized)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	mgr, dir := newTestManager(t)
	writeConfig(t, dir, "[logging]\n  level = 'info'\n")
	t.Setenv("DUMBTILE_LOG_LEVEL", "debug")

	require.NoError(t, mgr.Load())

	assert.Equal(t, "debug", mgr.Get().Logging.Level)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	mgr, dir := newTestManager(t)
	writeConfig(t, dir, "[apply]\n  max_parallel = 0\n\n[tree]\n  add_direction = 'sideways'\n")

	err := mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "apply.max_parallel")
	assert.Contains(t, err.Error(), "tree.add_direction")
}

func TestLoad_MalformedFile(t *testing.T) {
	mgr, dir := newTestManager(t)
	writeConfig(t, dir, "[layout\nworkspace = ")

	err := mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be valid TOML")
}

func TestGet_BeforeLoadReturnsDefaults(t *testing.T) {
	mgr, _ := newTestManager(t)

	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestSave_WritesAndReloads(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Layout.Workspace = "second"
	cfg.Apply.MaxParallel = 2
	require.NoError(t, mgr.Save(cfg))

	assert.Equal(t, "second", mgr.Get().Layout.Workspace)
	assert.Equal(t, 2, mgr.Get().Apply.MaxParallel)

	reopened, err := NewManagerAt(filepath.Dir(mgr.GetConfigFile()))
	require.NoError(t, err)
	require.NoError(t, reopened.Load())
	assert.Equal(t, "second", reopened.Get().Layout.Workspace)
}

func TestSave_RejectsInvalidConfig(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Layout.Engines = []EngineKind{"spiral"}

	err := mgr.Save(cfg)

	require.Error(t, err)
	assert.Equal(t, []EngineKind{EngineTree, EngineSlice}, mgr.Get().Layout.Engines)
}

func TestWatch_ReloadsOnExternalChange(t *testing.T) {
	mgr, dir := newTestManager(t)
	require.NoError(t, mgr.Load())

	var seen atomic.Value
	mgr.OnConfigChange(func(cfg *Config) { seen.Store(cfg.Layout.Workspace) })
	require.NoError(t, mgr.Watch())

	cfg := mgr.Get()
	cfg.Layout.Workspace = "watched"
	require.NoError(t, WriteConfigOrdered(cfg, filepath.Join(dir, configName)))

	require.Eventually(t, func() bool {
		v, _ := seen.Load().(string)
		return v == "watched"
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, "watched", mgr.Get().Layout.Workspace)
}
