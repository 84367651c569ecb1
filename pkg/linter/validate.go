package linter

import (
	"sort"
	"strings"

	"github.com/siyuan-infoblox/swift-import-lint/pkg/config"
	"github.com/siyuan-infoblox/swift-import-lint/pkg/source"
)

// importLine pairs an import's original line index with its normalized text
// and classified kind.
type importLine struct {
	index int
	text  string
	kind  ImportKind
}

// Validate strips comments from the file and runs the enabled checkers over
// the resulting code lines. It is a pure function of the lines and the
// configuration; the violation list is its only output.
func Validate(file *source.File, cfg config.Validation) []Violation {
	code := StripComments(file.Lines)
	severity := cfg.SeverityLevel()

	var violations []Violation
	if !cfg.IgnoreImportsPosition {
		violations = append(violations, checkPosition(file.Path, severity, code, cfg.IgnoreCase)...)
	}
	if !cfg.IgnoreImportsOrder {
		violations = append(violations, checkOrder(file.Path, severity, code, cfg.IgnoreCase)...)
	}
	if !cfg.IgnoreDuplicatedImports {
		violations = append(violations, checkDuplicates(file.Path, severity, code, cfg.IgnoreCase)...)
	}
	return violations
}

// normalize trims surrounding whitespace and case-folds when requested.
// Classification and all text comparisons operate on normalized content.
func normalize(content string, ignoreCase bool) string {
	text := strings.TrimSpace(content)
	if ignoreCase {
		text = strings.ToLower(text)
	}
	return text
}

// checkPosition reports every import declared after the first non-import
// code line. Imports before that line never violate, regardless of how
// many comment or blank lines were stripped between them.
func checkPosition(path string, severity config.Severity, code []source.Line, ignoreCase bool) []Violation {
	firstCode := -1
	for i, line := range code {
		if Classify(normalize(line.Content, ignoreCase)) == NotImport {
			firstCode = i
			break
		}
	}
	if firstCode < 0 {
		// All imports, or nothing at all.
		return nil
	}

	var violations []Violation
	for _, line := range code[firstCode+1:] {
		if Classify(normalize(line.Content, ignoreCase)) != NotImport {
			violations = append(violations, Violation{
				FilePath: path,
				Severity: severity,
				Line:     line.Index,
				Reason:   ReasonImportsAtTop,
			})
		}
	}
	return violations
}

// importLines filters code lines down to imports, preserving original order
// and indices.
func importLines(code []source.Line, ignoreCase bool) []importLine {
	var imports []importLine
	for _, line := range code {
		text := normalize(line.Content, ignoreCase)
		if kind := Classify(text); kind != NotImport {
			imports = append(imports, importLine{index: line.Index, text: text, kind: kind})
		}
	}
	return imports
}

// checkOrder reports every adjacent inversion in the import sequence. The
// required order is a non-decreasing run of plain imports followed by a
// non-decreasing run of testable imports.
func checkOrder(path string, severity config.Severity, code []source.Line, ignoreCase bool) []Violation {
	imports := importLines(code, ignoreCase)

	var violations []Violation
	for i := 0; i+1 < len(imports); i++ {
		current, next := imports[i], imports[i+1]
		if !greaterThan(current, next) {
			continue
		}

		reason := ReasonAlphabeticalOrder
		if current.kind == TestableImport && next.kind != TestableImport {
			reason = ReasonTestableGrouping
		}
		violations = append(violations, Violation{
			FilePath: path,
			Severity: severity,
			Line:     next.index,
			Reason:   reason,
		})
	}
	return violations
}

// greaterThan orders testable imports after all plain imports and otherwise
// compares normalized text lexicographically. Equal texts are not an
// inversion.
func greaterThan(a, b importLine) bool {
	switch {
	case a.kind == TestableImport && b.kind == TestableImport:
		return a.text > b.text
	case a.kind == TestableImport:
		return true
	case b.kind == TestableImport:
		return false
	}
	return a.text > b.text
}

// checkDuplicates reports every import whose normalized text was already
// seen. Sorting is bookkeeping only: the stable sort keeps equal texts in
// file order, so the earliest occurrence is the accepted one and reported
// locations are original file locations.
func checkDuplicates(path string, severity config.Severity, code []source.Line, ignoreCase bool) []Violation {
	imports := importLines(code, ignoreCase)
	sort.SliceStable(imports, func(i, j int) bool {
		return imports[i].text < imports[j].text
	})

	seen := make(map[string]bool, len(imports))
	var violations []Violation
	for _, imp := range imports {
		if seen[imp.text] {
			violations = append(violations, Violation{
				FilePath: path,
				Severity: severity,
				Line:     imp.index,
				Reason:   ReasonDuplicatedImports,
			})
			continue
		}
		seen[imp.text] = true
	}
	return violations
}
