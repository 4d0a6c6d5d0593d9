// Package config loads, validates, watches and writes the dumbtile configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/dumbtile/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	// skipNextReload is set by Save so the watcher doesn't reload our own write.
	skipNextReload bool
}

// NewManager creates a configuration manager reading from the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerAt(configDir)
}

// NewManagerAt creates a configuration manager reading config.toml from configDir.
func NewManagerAt(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("DUMBTILE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The logging variables predate the config file and keep their short names.
	if err := v.BindEnv("logging.level", "DUMBTILE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DUMBTILE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DUMBTILE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DUMBTILE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is created on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
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
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) configFile() string {
	return filepath.Join(m.configDir, configName)
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile = m.configFile()
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}
		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf(
				"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
				rereadErr,
			)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	config.Layout.Workspace = strings.TrimSpace(config.Layout.Workspace)
	for i, kind := range config.Layout.Engines {
		config.Layout.Engines[i] = EngineKind(strings.ToLower(strings.TrimSpace(string(kind))))
	}
	if len(config.Layout.Engines) == 0 {
		config.Layout.Engines = []EngineKind{EngineTree}
	}

	config.Tree.AddDirection = strings.ToLower(strings.TrimSpace(config.Tree.AddDirection))
	if config.Tree.AddDirection == "" {
		config.Tree.AddDirection = defaultAddDirection
	}

	config.Slice.Preset = SlicePreset(strings.ToLower(strings.TrimSpace(string(config.Slice.Preset))))
	if config.Slice.Preset == "" {
		config.Slice.Preset = SlicePresetPrimaryStack
	}
	config.Slice.InsertionType = strings.ToLower(strings.TrimSpace(config.Slice.InsertionType))
	if config.Slice.InsertionType == "" {
		config.Slice.InsertionType = defaultInsertionType
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := WriteConfigOrdered(cfg, m.configFile()); err != nil {
		return err
	}

	if m.watching {
		m.skipNextReload = true
		saved := *cfg
		m.config = &saved
		return nil
	}
	return m.reload()
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.configFile()
}

// createDefaultConfig writes the defaults and the matching JSON schema.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}

	configFile := m.configFile()
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	if err := WriteSchemaFile(filepath.Join(m.configDir, schemaName)); err != nil {
		return err
	}

	logger := logging.NewFromEnv()
	logger.Info().Str("file", configFile).Msg("created default configuration file")
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Note: Database.Path is set dynamically in Load(), no defaults needed

	m.setLoggingDefaults(defaults)
	m.setLayoutDefaults(defaults)
	m.setSliceDefaults(defaults)
	m.setMonitorDefaults(defaults)
	m.setDatabaseDefaults(defaults)
	m.viper.SetDefault("apply.max_parallel", defaults.Apply.MaxParallel)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

func (m *Manager) setLayoutDefaults(defaults *Config) {
	m.viper.SetDefault("layout.workspace", defaults.Layout.Workspace)
	m.viper.SetDefault("layout.engines", defaults.Layout.Engines)
	m.viper.SetDefault("layout.floating", defaults.Layout.Floating)
	m.viper.SetDefault("layout.cache_size", defaults.Layout.CacheSize)
	m.viper.SetDefault("tree.add_direction", defaults.Tree.AddDirection)
	m.viper.SetDefault("focus.maximized", defaults.Focus.Maximized)
}

func (m *Manager) setSliceDefaults(defaults *Config) {
	m.viper.SetDefault("slice.preset", string(defaults.Slice.Preset))
	m.viper.SetDefault("slice.capacities", defaults.Slice.Capacities)
	m.viper.SetDefault("slice.primary_capacity", defaults.Slice.PrimaryCapacity)
	m.viper.SetDefault("slice.secondary_capacity", defaults.Slice.SecondaryCapacity)
	m.viper.SetDefault("slice.insertion_type", defaults.Slice.InsertionType)
}

func (m *Manager) setMonitorDefaults(defaults *Config) {
	m.viper.SetDefault("monitor.width", defaults.Monitor.Width)
	m.viper.SetDefault("monitor.height", defaults.Monitor.Height)
	m.viper.SetDefault("monitor.reserved", defaults.Monitor.Reserved)
}

func (m *Manager) setDatabaseDefaults(defaults *Config) {
	m.viper.SetDefault("database.enabled", defaults.Database.Enabled)
	m.viper.SetDefault("database.snapshot_interval_ms", defaults.Database.SnapshotIntervalMs)
	m.viper.SetDefault("database.retention_days", defaults.Database.RetentionDays)
}
