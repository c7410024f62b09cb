package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/nibzard/tugas-go/internal/todo"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.tugas/tugas.toml or OS-specific config dir)
// 3. Project config file (tugas.toml or .tugas.toml in current directory)
// 4. Environment variables
// 5. CLI flags
//
// Flags registered on fs by the caller are parsed along with the config flags.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cws, err := load(fs, args, nil)
	if err != nil {
		return nil, err
	}
	return cws.Config, nil
}

// LoadWithSources loads configuration and tracks the source of each value.
func LoadWithSources(fs *flag.FlagSet, args []string) (*ConfigWithSources, error) {
	sources := make(map[string]ConfigSource)
	for _, field := range configFields() {
		sources[field] = SourceDefault
	}
	return load(fs, args, sources)
}

// load is the shared implementation. If sources is non-nil, it records
// the source of each value.
func load(fs *flag.FlagSet, args []string, sources map[string]ConfigSource) (*ConfigWithSources, error) {
	cfg := &Config{}
	cws := &ConfigWithSources{Config: cfg, Sources: sources}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile, sources, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
		cws.UserFile = userConfigFile
	}

	// 3. Try to load from project config file (overrides user config)
	if projectConfigFile := findProjectConfigFile(); projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile, sources, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
		cws.ProjectFile = projectConfigFile
	}

	// 4. Override from environment
	loadFromEnv(cfg, sources)

	// 5. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args, sources); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 6. Compute derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cws, nil
}

// loadConfigFile decodes a TOML file and applies only the keys it defines.
func loadConfigFile(cfg *Config, path string, sources map[string]ConfigSource, source ConfigSource) error {
	fileCfg := &Config{}
	md, err := toml.DecodeFile(path, fileCfg)
	if err != nil {
		return err
	}

	set := func(field string, apply func()) {
		if !md.IsDefined(field) {
			return
		}
		apply()
		if sources != nil {
			sources[field] = source
		}
	}

	set("todo_file", func() { cfg.TodoFile = fileCfg.TodoFile })
	set("schema_file", func() { cfg.SchemaFile = fileCfg.SchemaFile })
	set("default_category", func() { cfg.DefaultCategory = fileCfg.DefaultCategory })
	set("categories", func() { cfg.Categories = fileCfg.Categories })
	set("log_level", func() { cfg.LogLevel = fileCfg.LogLevel })
	set("log_format", func() { cfg.LogFormat = fileCfg.LogFormat })
	set("log_timestamps", func() { cfg.LogTimestamps = fileCfg.LogTimestamps })
	set("log_caller", func() { cfg.LogCaller = fileCfg.LogCaller })

	return nil
}

// finalizeConfig computes derived values and resolves paths.
func finalizeConfig(cfg *Config) error {
	if cfg.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfg.WorkDir = wd
	}

	if cfg.TodoFile == "" {
		cfg.TodoFile = DefaultTodoFile
	}
	cfg.TodoFile = resolvePath(cfg.WorkDir, cfg.TodoFile)
	if cfg.SchemaFile != "" {
		cfg.SchemaFile = resolvePath(cfg.WorkDir, cfg.SchemaFile)
	}

	if cfg.DefaultCategory == "" {
		cfg.DefaultCategory = todo.DefaultCategory
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = DefaultCategories()
	}

	return nil
}

// resolvePath expands p and makes it absolute relative to base.
func resolvePath(base, p string) string {
	p = expandPath(p)
	if !filepath.IsAbs(p) {
		p = filepath.Join(base, p)
	}
	return p
}
