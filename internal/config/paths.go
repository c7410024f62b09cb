package config

import (
	"os"
	"path/filepath"
	"strings"
)

// expandPath expands environment variables and a leading ~ in p.
// If the home directory cannot be determined, p is returned with only
// the environment expanded.
func expandPath(p string) string {
	if p == "" {
		return p
	}

	expanded := os.ExpandEnv(p)
	rest, ok := strings.CutPrefix(expanded, "~")
	if !ok {
		return expanded
	}
	if rest != "" && rest[0] != '/' && rest[0] != filepath.Separator {
		// ~user forms are left alone.
		return expanded
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return expanded
	}
	return filepath.Join(home, rest)
}
