package config

// Config represents the complete configuration for dumbtile.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	// Layout selects the engines of a workspace and how they are composed.
	Layout LayoutConfig `mapstructure:"layout" yaml:"layout" toml:"layout" json:"layout"`
	// Tree configures the split-tree engine.
	Tree TreeConfig `mapstructure:"tree" yaml:"tree" toml:"tree" json:"tree"`
	// Slice configures the area-tree engine.
	Slice SliceConfig `mapstructure:"slice" yaml:"slice" toml:"slice" json:"slice"`
	// Focus configures the one-window engine.
	Focus FocusConfig `mapstructure:"focus" yaml:"focus" toml:"focus" json:"focus"`
	// Monitor describes the preview monitor used by the CLI.
	Monitor MonitorConfig `mapstructure:"monitor" yaml:"monitor" toml:"monitor" json:"monitor"`
	// Apply tunes how layout batches are pushed to the window system.
	Apply    ApplyConfig    `mapstructure:"apply" yaml:"apply" toml:"apply" json:"apply"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=text,enum=console,enum=json"`
}

// EngineKind names a layout engine implementation.
type EngineKind string

const (
	EngineTree  EngineKind = "tree"
	EngineSlice EngineKind = "slice"
	// EngineFree floats every window.
	EngineFree EngineKind = "free"
	// EngineFocus shows one window at a time.
	EngineFocus EngineKind = "focus"
)

// LayoutConfig selects the engines of a workspace.
type LayoutConfig struct {
	// Workspace is the name snapshots are recorded under.
	Workspace string `mapstructure:"workspace" yaml:"workspace" toml:"workspace" json:"workspace"`
	// Engines lists the engines a workspace cycles through, the first one is active at start.
	Engines []EngineKind `mapstructure:"engines" yaml:"engines" toml:"engines" json:"engines" jsonschema:"minItems=1"`
	// Floating wraps every engine in the floating proxy.
	Floating bool `mapstructure:"floating" yaml:"floating" toml:"floating" json:"floating"`
	// CacheSize bounds the number of memoized layout passes (0 disables the cache).
	CacheSize int `mapstructure:"cache_size" yaml:"cache_size" toml:"cache_size" json:"cache_size" jsonschema:"minimum=0"`
}

// TreeConfig configures the split-tree engine.
type TreeConfig struct {
	// AddDirection is the side new windows are added on (left, right, up, down).
	AddDirection string `mapstructure:"add_direction" yaml:"add_direction" toml:"add_direction" json:"add_direction" jsonschema:"enum=left,enum=right,enum=up,enum=down"`
}

// SlicePreset names a built-in area tree.
type SlicePreset string

const (
	SlicePresetPrimaryStack     SlicePreset = "primary_stack"
	SlicePresetMultiColumn      SlicePreset = "multi_column"
	SlicePresetSecondaryPrimary SlicePreset = "secondary_primary"
	// SlicePresetCustom uses SliceConfig.Area.
	SlicePresetCustom SlicePreset = "custom"
)

// SliceConfig configures the area-tree engine.
type SliceConfig struct {
	Preset SlicePreset `mapstructure:"preset" yaml:"preset" toml:"preset" json:"preset" jsonschema:"enum=primary_stack,enum=multi_column,enum=secondary_primary,enum=custom"`
	// Capacities lists the column capacities of the multi_column preset, 0 marks the overflow column.
	Capacities        []int `mapstructure:"capacities" yaml:"capacities" toml:"capacities" json:"capacities"`
	PrimaryCapacity   int   `mapstructure:"primary_capacity" yaml:"primary_capacity" toml:"primary_capacity" json:"primary_capacity" jsonschema:"minimum=1"`
	SecondaryCapacity int   `mapstructure:"secondary_capacity" yaml:"secondary_capacity" toml:"secondary_capacity" json:"secondary_capacity" jsonschema:"minimum=1"`
	// InsertionType is how a window moves onto another window's slot (swap, rotate).
	InsertionType string `mapstructure:"insertion_type" yaml:"insertion_type" toml:"insertion_type" json:"insertion_type" jsonschema:"enum=swap,enum=rotate"`
	// Area is the area tree of the custom preset.
	Area *AreaConfig `mapstructure:"area" yaml:"area" toml:"area,omitempty" json:"area,omitempty"`
}

// AreaConfig is one node of a custom area tree.
type AreaConfig struct {
	Kind        string       `mapstructure:"kind" yaml:"kind" toml:"kind" json:"kind" jsonschema:"enum=parent,enum=slice,enum=overflow"`
	Row         bool         `mapstructure:"row" yaml:"row" toml:"row" json:"row"`
	Weights     []float64    `mapstructure:"weights" yaml:"weights" toml:"weights,omitempty" json:"weights,omitempty"`
	Order       int          `mapstructure:"order" yaml:"order" toml:"order,omitempty" json:"order,omitempty"`
	MaxChildren int          `mapstructure:"max_children" yaml:"max_children" toml:"max_children,omitempty" json:"max_children,omitempty"`
	Children    []AreaConfig `mapstructure:"children" yaml:"children" toml:"children,omitempty" json:"children,omitempty"`
}

// FocusConfig configures the focus engine.
type FocusConfig struct {
	// Maximized shows the visible window maximized instead of filling the working area.
	Maximized bool `mapstructure:"maximized" yaml:"maximized" toml:"maximized" json:"maximized"`
}

// MonitorConfig describes the monitor the CLI lays windows out on.
type MonitorConfig struct {
	Width  int `mapstructure:"width" yaml:"width" toml:"width" json:"width" jsonschema:"minimum=1"`
	Height int `mapstructure:"height" yaml:"height" toml:"height" json:"height" jsonschema:"minimum=1"`
	// Reserved is the height of a panel at the bottom, excluded from the working area.
	Reserved int `mapstructure:"reserved" yaml:"reserved" toml:"reserved" json:"reserved" jsonschema:"minimum=0"`
}

// ApplyConfig tunes batch application.
type ApplyConfig struct {
	// MaxParallel bounds concurrent frame offset lookups.
	MaxParallel int `mapstructure:"max_parallel" yaml:"max_parallel" toml:"max_parallel" json:"max_parallel" jsonschema:"minimum=1"`
}

// DatabaseConfig holds snapshot database configuration.
type DatabaseConfig struct {
	// Enabled records every applied batch.
	Enabled bool   `mapstructure:"enabled" yaml:"enabled" toml:"enabled" json:"enabled"`
	Path    string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
	// SnapshotIntervalMs debounces snapshot writes.
	SnapshotIntervalMs int `mapstructure:"snapshot_interval_ms" yaml:"snapshot_interval_ms" toml:"snapshot_interval_ms" json:"snapshot_interval_ms" jsonschema:"minimum=0"`
	// RetentionDays prunes snapshots older than this many days (0 keeps everything).
	RetentionDays int `mapstructure:"retention_days" yaml:"retention_days" toml:"retention_days" json:"retention_days" jsonschema:"minimum=0"`
}
