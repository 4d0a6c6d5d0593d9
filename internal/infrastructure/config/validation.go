package config

import (
	"fmt"
	"strings"

	"github.com/bnema/dumbtile/internal/domain/entity"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateTree(config)...)
	validationErrors = append(validationErrors, validateSlice(config)...)
	validationErrors = append(validationErrors, validateMonitor(config)...)
	validationErrors = append(validationErrors, validateApply(config)...)
	validationErrors = append(validationErrors, validateDatabase(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "text", "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: text, json, console (got: %s)",
			config.Logging.Format,
		))
	}
	return validationErrors
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	if len(config.Layout.Engines) == 0 {
		validationErrors = append(validationErrors, "layout.engines must list at least one engine")
	}
	for i, kind := range config.Layout.Engines {
		switch kind {
		case EngineTree, EngineSlice, EngineFree, EngineFocus:
		default:
			validationErrors = append(validationErrors, fmt.Sprintf(
				"layout.engines[%d] must be one of: tree, slice, free, focus (got: %s)", i, kind,
			))
		}
	}
	if strings.TrimSpace(config.Layout.Workspace) == "" {
		validationErrors = append(validationErrors, "layout.workspace cannot be empty")
	}
	if config.Layout.CacheSize < 0 {
		validationErrors = append(validationErrors, "layout.cache_size must be non-negative")
	}
	return validationErrors
}

func validateTree(config *Config) []string {
	if _, ok := entity.ParseDirection(config.Tree.AddDirection); !ok {
		return []string{fmt.Sprintf(
			"tree.add_direction must be one of: left, right, up, down (got: %s)", config.Tree.AddDirection,
		)}
	}
	return nil
}

func validateSlice(config *Config) []string {
	var validationErrors []string
	if _, ok := entity.ParseWindowInsertionType(config.Slice.InsertionType); !ok {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"slice.insertion_type must be one of: swap, rotate (got: %s)", config.Slice.InsertionType,
		))
	}
	if config.Slice.Preset == SlicePresetSecondaryPrimary {
		if config.Slice.PrimaryCapacity < 1 || config.Slice.SecondaryCapacity < 1 {
			validationErrors = append(validationErrors,
				"slice.primary_capacity and slice.secondary_capacity must be at least 1")
		}
	}
	for i, capacity := range config.Slice.Capacities {
		if capacity < 0 {
			validationErrors = append(validationErrors, fmt.Sprintf("slice.capacities[%d] must be non-negative", i))
		}
	}
	if _, err := config.Slice.BuildArea(); err != nil {
		validationErrors = append(validationErrors, err.Error())
	}
	return validationErrors
}

func validateMonitor(config *Config) []string {
	var validationErrors []string
	if config.Monitor.Width < 1 || config.Monitor.Height < 1 {
		validationErrors = append(validationErrors, "monitor.width and monitor.height must be positive")
	}
	if config.Monitor.Reserved < 0 || config.Monitor.Reserved >= config.Monitor.Height {
		validationErrors = append(validationErrors, "monitor.reserved must be between 0 and monitor.height")
	}
	return validationErrors
}

func validateApply(config *Config) []string {
	if config.Apply.MaxParallel < 1 {
		return []string{"apply.max_parallel must be at least 1"}
	}
	return nil
}

func validateDatabase(config *Config) []string {
	var validationErrors []string
	if config.Database.SnapshotIntervalMs < 0 {
		validationErrors = append(validationErrors, "database.snapshot_interval_ms must be non-negative")
	}
	if config.Database.RetentionDays < 0 {
		validationErrors = append(validationErrors, "database.retention_days must be non-negative")
	}
	return validationErrors
}
