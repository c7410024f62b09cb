package config

import (
	"os"

	"github.com/nibzard/tugas-go/internal/utils"
)

// loadFromEnv overrides config from TUGAS_* environment variables.
// Empty variables are ignored. If sources is non-nil, it records them.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	mark := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}

	if v := os.Getenv("TUGAS_TODO"); v != "" {
		cfg.TodoFile = v
		mark("todo_file")
	}
	if v := os.Getenv("TUGAS_SCHEMA"); v != "" {
		cfg.SchemaFile = v
		mark("schema_file")
	}
	if v := os.Getenv("TUGAS_DEFAULT_CATEGORY"); v != "" {
		cfg.DefaultCategory = v
		mark("default_category")
	}
	if v := os.Getenv("TUGAS_CATEGORIES"); v != "" {
		if cats := utils.SplitAndTrim(v, ","); len(cats) > 0 {
			cfg.Categories = cats
			mark("categories")
		}
	}

	// Logging configuration
	if v := os.Getenv("TUGAS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		mark("log_level")
	}
	if v := os.Getenv("TUGAS_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
		mark("log_format")
	}
	if v := os.Getenv("TUGAS_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = utils.BoolFromString(v)
		mark("log_timestamps")
	}
	if v := os.Getenv("TUGAS_LOG_CALLER"); v != "" {
		cfg.LogCaller = utils.BoolFromString(v)
		mark("log_caller")
	}
}
