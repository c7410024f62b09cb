package tugasdir

import (
	"path/filepath"
	"testing"
)

func TestPaths(t *testing.T) {
	tests := []struct {
		base   string
		dir    string
		todo   string
		config string
	}{
		{"", ".tugas", filepath.Join(".tugas", "todos.json"), filepath.Join(".tugas", "tugas.toml")},
		{".", ".tugas", filepath.Join(".tugas", "todos.json"), filepath.Join(".tugas", "tugas.toml")},
		{
			filepath.Join("home", "sari"),
			filepath.Join("home", "sari", ".tugas"),
			filepath.Join("home", "sari", ".tugas", "todos.json"),
			filepath.Join("home", "sari", ".tugas", "tugas.toml"),
		},
	}

	for _, tt := range tests {
		if got := DirPath(tt.base); got != tt.dir {
			t.Errorf("DirPath(%q) = %q, want %q", tt.base, got, tt.dir)
		}
		if got := TodoPath(tt.base); got != tt.todo {
			t.Errorf("TodoPath(%q) = %q, want %q", tt.base, got, tt.todo)
		}
		if got := ConfigPath(tt.base); got != tt.config {
			t.Errorf("ConfigPath(%q) = %q, want %q", tt.base, got, tt.config)
		}
	}
}
