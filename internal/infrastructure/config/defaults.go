package config

// Default configuration constants
const (
	defaultWorkspace = "main"
	defaultCacheSize = 64 // layout passes

	defaultAddDirection      = "right"
	defaultInsertionType     = "swap"
	defaultPrimaryCapacity   = 1
	defaultSecondaryCapacity = 2

	// Preview monitor
	defaultMonitorWidth  = 1920
	defaultMonitorHeight = 1080

	defaultMaxParallel        = 8
	defaultSnapshotIntervalMs = 500
	defaultRetentionDays      = 30
)

// DefaultConfig returns the default configuration values for dumbtile.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Layout: LayoutConfig{
			Workspace: defaultWorkspace,
			Engines:   []EngineKind{EngineTree, EngineSlice},
			Floating:  true,
			CacheSize: defaultCacheSize,
		},
		Tree: TreeConfig{
			AddDirection: defaultAddDirection,
		},
		Slice: SliceConfig{
			Preset:            SlicePresetPrimaryStack,
			Capacities:        []int{1, 2, 0},
			PrimaryCapacity:   defaultPrimaryCapacity,
			SecondaryCapacity: defaultSecondaryCapacity,
			InsertionType:     defaultInsertionType,
		},
		Monitor: MonitorConfig{
			Width:  defaultMonitorWidth,
			Height: defaultMonitorHeight,
		},
		Apply: ApplyConfig{
			MaxParallel: defaultMaxParallel,
		},
		Database: DatabaseConfig{
			Enabled: true,
			// Path is set dynamically in Load()
			SnapshotIntervalMs: defaultSnapshotIntervalMs,
			RetentionDays:      defaultRetentionDays,
		},
	}
}
