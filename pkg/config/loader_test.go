package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_defaultsWhenNoConfigFile(t *testing.T) {
	req := require.New(t)
	cfg, err := Load("", t.TempDir())
	req.NoError(err)
	req.Equal(Default(), *cfg)
}

func TestLoad_explicitPath(t *testing.T) {
	req := require.New(t)
	path := writeConfig(t, t.TempDir(), "ignore_case: true\nseverity: error\n")

	cfg, err := Load(path, ".")
	req.NoError(err)
	req.True(cfg.IgnoreCase)
	req.False(cfg.IgnoreImportsOrder)
	req.Equal("error", cfg.Severity)
	req.Equal(SeverityError, cfg.SeverityLevel())
}

func TestLoad_discoversInParentDirectory(t *testing.T) {
	req := require.New(t)
	tempDir := t.TempDir()
	writeConfig(t, tempDir, "ignore_order: true\n")

	subDir := filepath.Join(tempDir, "Sources", "App")
	req.NoError(os.MkdirAll(subDir, 0755))

	cfg, err := Load("", subDir)
	req.NoError(err)
	req.True(cfg.IgnoreImportsOrder)
	req.False(cfg.IgnoreImportsPosition)
}

func TestLoad_allToggles(t *testing.T) {
	req := require.New(t)
	path := writeConfig(t, t.TempDir(),
		"ignore_case: true\nignore_duplicated: true\nignore_order: true\nignore_position: true\nseverity: warning\n")

	cfg, err := Load(path, ".")
	req.NoError(err)
	req.True(cfg.IgnoreCase)
	req.True(cfg.IgnoreDuplicatedImports)
	req.True(cfg.IgnoreImportsOrder)
	req.True(cfg.IgnoreImportsPosition)
}

func TestLoad_unrecognizedKey(t *testing.T) {
	req := require.New(t)
	path := writeConfig(t, t.TempDir(), "ignore_everything: true\n")

	_, err := Load(path, ".")
	req.ErrorIs(err, ErrUnknownConfiguration)
}

func TestLoad_notAKeyValueStructure(t *testing.T) {
	req := require.New(t)
	path := writeConfig(t, t.TempDir(), "- just\n- a\n- list\n")

	_, err := Load(path, ".")
	req.ErrorIs(err, ErrUnknownConfiguration)
}

func TestLoad_unrecognizedSeverity(t *testing.T) {
	req := require.New(t)
	path := writeConfig(t, t.TempDir(), "severity: fatal\n")

	_, err := Load(path, ".")
	req.ErrorIs(err, ErrUnknownConfiguration)
}

func TestLoad_missingExplicitFile(t *testing.T) {
	req := require.New(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"), ".")
	req.Error(err)
}
