package linter

import "strings"

// ImportKind classifies a code line with respect to import declarations.
type ImportKind int

const (
	NotImport ImportKind = iota
	PlainImport
	TestableImport
)

const (
	testableImportPrefix = "@testable import "
	plainImportPrefix    = "import "
)

// Classify reports the import kind of a normalized code line. The testable
// prefix is tested first because it contains the plain prefix as a
// substring; the other order would misreport testable imports as plain.
func Classify(content string) ImportKind {
	switch {
	case strings.HasPrefix(content, testableImportPrefix):
		return TestableImport
	case strings.HasPrefix(content, plainImportPrefix):
		return PlainImport
	}
	return NotImport
}
