package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// dependencyDirs are vendored package directories that never hold
// first-party sources worth linting.
var dependencyDirs = map[string]bool{
	"Pods":     true,
	"Carthage": true,
	".build":   true,
}

// IsSwiftFile checks if a file is a Swift source file
func IsSwiftFile(filename string) bool {
	return strings.HasSuffix(filename, ".swift")
}

// FindSwiftFiles recursively finds all Swift source files in a directory
func FindSwiftFiles(root string) ([]string, error) {
	var swiftFiles []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip dependency directories and hidden directories (but not the root directory)
		if info.IsDir() && path != root {
			name := filepath.Base(path)
			if dependencyDirs[name] || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if IsSwiftFile(filepath.Base(path)) {
			swiftFiles = append(swiftFiles, path)
		}

		return nil
	})

	return swiftFiles, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
