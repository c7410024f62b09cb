package config

import (
	"flag"
)

// parseFlags registers the config flags on fs, parses args and applies the
// flags that were explicitly set. If sources is non-nil, it records them.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("tugas", flag.ContinueOnError)
	}

	var (
		todoFile, schemaFile     string
		logLevel, logFormat      string
		logTimestamps, logCaller bool
	)

	fs.StringVar(&todoFile, "todo", cfg.TodoFile, "Path to the task file")
	fs.StringVar(&schemaFile, "schema", cfg.SchemaFile, "Path to a JSON Schema for the task file (default: built-in)")
	fs.StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&logFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&logTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&logCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Map flag names to config fields
	apply := map[string]struct {
		field string
		set   func()
	}{
		"todo":           {"todo_file", func() { cfg.TodoFile = todoFile }},
		"schema":         {"schema_file", func() { cfg.SchemaFile = schemaFile }},
		"log-level":      {"log_level", func() { cfg.LogLevel = logLevel }},
		"log-format":     {"log_format", func() { cfg.LogFormat = logFormat }},
		"log-timestamps": {"log_timestamps", func() { cfg.LogTimestamps = logTimestamps }},
		"log-caller":     {"log_caller", func() { cfg.LogCaller = logCaller }},
	}

	fs.Visit(func(f *flag.Flag) {
		binding, ok := apply[f.Name]
		if !ok {
			return
		}
		binding.set()
		if sources != nil {
			sources[binding.field] = SourceFlag
		}
	})

	return nil
}
