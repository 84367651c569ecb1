package linter

import "github.com/siyuan-infoblox/swift-import-lint/pkg/config"

// Violation reasons, one per check.
const (
	ReasonImportsAtTop      = "imports must be declared at the top of the file"
	ReasonTestableGrouping  = "testable imports must be grouped after normal imports"
	ReasonAlphabeticalOrder = "imports must be alphabetically sorted"
	ReasonDuplicatedImports = "duplicated imports should be avoided"
)

// Violation is a single located style finding in one file.
type Violation struct {
	FilePath string
	Severity config.Severity
	Line     int // 1-based line number in the original file
	Reason   string
}
