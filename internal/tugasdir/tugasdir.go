// Package tugasdir provides constants and helpers for the .tugas state directory.
package tugasdir

import "path/filepath"

const (
	// Dir is the name of the tugas state directory, normally under the user's home.
	Dir = ".tugas"

	// DefaultTodoFile is the collection file name (inside .tugas).
	DefaultTodoFile = "todos.json"

	// DefaultConfigFile is the config file name (inside .tugas, or in a project directory).
	DefaultConfigFile = "tugas.toml"
)

// TodoPath returns the collection file path under base.
func TodoPath(base string) string {
	return filepath.Join(DirPath(base), DefaultTodoFile)
}

// ConfigPath returns the config file path under base.
func ConfigPath(base string) string {
	return filepath.Join(DirPath(base), DefaultConfigFile)
}

// DirPath returns the .tugas directory path under base.
// An empty base or "." yields the relative directory name.
func DirPath(base string) string {
	if base == "" || base == "." {
		return Dir
	}
	return filepath.Join(base, Dir)
}
