package config

import (
	"github.com/nibzard/tugas-go/internal/todo"
	"github.com/nibzard/tugas-go/internal/tugasdir"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource

	// UserFile and ProjectFile are the config files that were read, if any.
	UserFile    string
	ProjectFile string
}

// Default values.
const (
	DefaultTodoFile  = "~/" + tugasdir.Dir + "/" + tugasdir.DefaultTodoFile
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// DefaultCategories returns the built-in category suggestions.
func DefaultCategories() []string {
	return []string{
		"Tugas Sekolah",
		"Pekerjaan Rumah",
		"Acara Keluarga",
		"Agenda Organisasi",
		"Ulang Tahun",
		"Pertemuan OSIS",
		"Jadwal Olahraga",
		"Hari Penting Lainnya",
		"Nongkrong",
		"Main Bola",
	}
}

// Config holds the full configuration for tugas.
type Config struct {
	// Paths
	TodoFile   string `toml:"todo_file"`
	SchemaFile string `toml:"schema_file"` // empty means the embedded schema

	// Tasks
	DefaultCategory string   `toml:"default_category"`
	Categories      []string `toml:"categories"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Working directory used to resolve relative paths (computed)
	WorkDir string `toml:"-"`
}

// configFields returns the configurable field names used for source tracking.
func configFields() []string {
	return []string{
		"todo_file",
		"schema_file",
		"default_category",
		"categories",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
	}
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.TodoFile = DefaultTodoFile
	cfg.SchemaFile = ""
	cfg.DefaultCategory = todo.DefaultCategory
	cfg.Categories = DefaultCategories()
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.LogCaller = false
}
