package reporter

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/siyuan-infoblox/swift-import-lint/pkg/config"
	"github.com/siyuan-infoblox/swift-import-lint/pkg/errors"
	"github.com/siyuan-infoblox/swift-import-lint/pkg/linter"
)

// Reporter renders violations as they arrive and keeps running counts for
// the final summary.
type Reporter struct {
	out      io.Writer
	errors   int
	warnings int
}

// New creates a Reporter writing to out.
func New(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Report renders one batch of violations, one finding per line in the form
// path:line: severity: reason.
func (r *Reporter) Report(violations []linter.Violation) {
	for _, v := range violations {
		line := color.New(color.FgYellow)
		if v.Severity == config.SeverityError {
			line = color.New(color.FgRed)
			r.errors++
		} else {
			r.warnings++
		}
		line.Fprintf(r.out, "%s:%d: %s: %s\n", v.FilePath, v.Line, v.Severity, v.Reason)
	}
}

// Summary prints totals for the whole run.
func (r *Reporter) Summary(filesChecked int) {
	fmt.Fprintf(r.out, errors.InfoMsgCheckedCount, filesChecked)
	fmt.Fprintf(r.out, errors.InfoMsgViolationCount, r.errors, r.warnings)
	fmt.Fprintln(r.out)
}

// HasErrors reports whether any error-severity violation was rendered.
func (r *Reporter) HasErrors() bool {
	return r.errors > 0
}

// Counts returns the number of error and warning violations rendered so far.
func (r *Reporter) Counts() (errorCount, warningCount int) {
	return r.errors, r.warnings
}
