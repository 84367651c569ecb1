package linter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siyuan-infoblox/swift-import-lint/pkg/config"
	"github.com/siyuan-infoblox/swift-import-lint/pkg/source"
)

func TestImportUsageDescription(t *testing.T) {
	req := require.New(t)
	desc := ImportUsage{}.Describe()

	req.Equal("import_usage", desc.Identifier)
	req.NotEmpty(desc.Summary)

	cfg := config.Default()
	for _, example := range desc.TriggeringExamples {
		violations := Validate(source.FromString("example.swift", example), cfg)
		req.NotEmpty(violations, "triggering example %q must produce a violation", example)
	}
	for _, example := range desc.NonTriggeringExamples {
		violations := Validate(source.FromString("example.swift", example), cfg)
		req.Empty(violations, "non-triggering example %q must be clean", example)
	}
}

func TestRunner_RunFile(t *testing.T) {
	req := require.New(t)
	runner := NewRunner(config.Default())

	violations := runner.RunFile(source.FromString("test.swift", "import UIKit\nimport Foundation"))
	req.Len(violations, 1)
	req.Equal(2, violations[0].Line)
	req.Equal(ReasonAlphabeticalOrder, violations[0].Reason)
}

func TestRunner_RunPath(t *testing.T) {
	req := require.New(t)
	tempDir := t.TempDir()

	path := filepath.Join(tempDir, "App.swift")
	req.NoError(os.WriteFile(path, []byte("import Foundation\nimport UIKit\n"), 0644))

	runner := NewRunner(config.Default())
	violations, err := runner.RunPath(path)
	req.NoError(err)
	req.Empty(violations)

	_, err = runner.RunPath(filepath.Join(tempDir, "missing.swift"))
	req.Error(err)
}

type stubRule struct {
	calls int
}

func (s *stubRule) Describe() Description { return Description{Identifier: "stub"} }

func (s *stubRule) Validate(file *source.File, cfg config.Validation) []Violation {
	s.calls++
	return []Violation{{FilePath: file.Path, Line: 1, Reason: "stub"}}
}

func TestRunner_mergesAllRules(t *testing.T) {
	req := require.New(t)
	stub := &stubRule{}
	runner := NewRunner(config.Default(), ImportUsage{}, stub)

	violations := runner.RunFile(source.FromString("test.swift", "import UIKit\nimport Foundation"))
	req.Len(violations, 2)
	req.Equal(1, stub.calls)
}
