package utils

import (
	"os"
	"path/filepath"
)

// maxAscendIterations bounds the upward directory walk.
const maxAscendIterations = 20

// FindConfigFile walks from startDir up through its parent directories
// looking for a file with the given name. It returns the first match, or an
// empty string when none is found.
func FindConfigFile(startDir, name string) string {
	dir := startDir
	if abs, err := filepath.Abs(startDir); err == nil {
		dir = abs
	}

	for i := 0; i < maxAscendIterations; i++ {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
