// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.tugas/tugas.toml or OS-specific config directory)
// 3. Project config file (tugas.toml or .tugas.toml in the working directory)
// 4. Environment variables (TUGAS_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.tugas/tugas.toml (preferred)
// - Windows: %APPDATA%\tugas\tugas.toml
// - macOS: ~/Library/Application Support/tugas/tugas.toml
// - Linux/BSD: $XDG_CONFIG_HOME/tugas/tugas.toml or ~/.config/tugas/tugas.toml
//
// Project-level config locations (overrides user config):
// - ./tugas.toml (preferred)
// - ./.tugas.toml
package config
