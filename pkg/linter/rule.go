package linter

import (
	"github.com/siyuan-infoblox/swift-import-lint/pkg/config"
	"github.com/siyuan-infoblox/swift-import-lint/pkg/source"
)

// Description is the static metadata for a rule: identifier plus examples
// for documentation. Process-wide read-only data.
type Description struct {
	Identifier            string
	Name                  string
	Summary               string
	TriggeringExamples    []string
	NonTriggeringExamples []string
}

// ImportUsageDescription describes the import validation rule.
var ImportUsageDescription = Description{
	Identifier: "import_usage",
	Name:       "Import Usage",
	Summary: "Import declarations must appear at the top of the file, free of duplicates, " +
		"and alphabetically sorted with @testable imports grouped after normal imports.",
	TriggeringExamples: []string{
		"import UIKit\nimport Foundation",
		"@testable import Test\nimport Foundation",
		"import UIKit\nimport UIKit",
		"struct Box {}\nimport Foundation",
	},
	NonTriggeringExamples: []string{
		"import Foundation\nimport UIKit\n@testable import Test",
		"// import Zlib\nimport Foundation",
	},
}

// Rule is the contract the runner depends on: static metadata plus a
// stateless validate function.
type Rule interface {
	Describe() Description
	Validate(file *source.File, cfg config.Validation) []Violation
}

// ImportUsage is the import validation rule. The zero value is ready to use.
type ImportUsage struct{}

// Describe returns the rule's static metadata.
func (ImportUsage) Describe() Description { return ImportUsageDescription }

// Validate runs the position, order, and duplicate checks over one file.
func (ImportUsage) Validate(file *source.File, cfg config.Validation) []Violation {
	return Validate(file, cfg)
}

// Runner applies a fixed set of rules to files under one configuration.
// Runners hold no per-file state, so one runner may be shared across files.
type Runner struct {
	rules []Rule
	cfg   config.Validation
}

// NewRunner creates a runner. With no rules given it runs ImportUsage.
func NewRunner(cfg config.Validation, rules ...Rule) *Runner {
	if len(rules) == 0 {
		rules = []Rule{ImportUsage{}}
	}
	return &Runner{rules: rules, cfg: cfg}
}

// RunFile validates one in-memory file and merges all rules' violations.
func (r *Runner) RunFile(file *source.File) []Violation {
	var violations []Violation
	for _, rule := range r.rules {
		violations = append(violations, rule.Validate(file, r.cfg)...)
	}
	return violations
}

// RunPath reads one file from disk and validates it.
func (r *Runner) RunPath(path string) ([]Violation, error) {
	file, err := source.Read(path)
	if err != nil {
		return nil, err
	}
	return r.RunFile(file), nil
}
