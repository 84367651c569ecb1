package linter

import (
	"strings"

	"github.com/siyuan-infoblox/swift-import-lint/pkg/source"
)

const (
	lineCommentMarker = "//"
	blockCommentOpen  = "/*"
	blockCommentClose = "*/"
)

// scanState is the comment scanner state.
type scanState int

const (
	stateNormal scanState = iota
	stateInBlockComment
)

// StripComments filters raw lines down to code lines: blank lines, line
// comments, and block comment spans are dropped, everything else is kept
// with its original index and content. An unterminated block comment
// swallows the rest of the file; that is not an error.
func StripComments(lines []source.Line) []source.Line {
	var code []source.Line
	state := stateNormal

	for _, line := range lines {
		trimmed := strings.TrimSpace(line.Content)

		if state == stateInBlockComment {
			// The closing line is consumed with the comment body, even
			// when code follows the close marker on the same line.
			if strings.Contains(trimmed, blockCommentClose) {
				state = stateNormal
			}
			continue
		}

		lineIdx := strings.Index(trimmed, lineCommentMarker)
		openIdx := strings.Index(trimmed, blockCommentOpen)

		switch {
		case lineIdx >= 0 && openIdx >= 0 && lineIdx < openIdx:
			// A block opener behind a line-comment marker is itself
			// commented out. The line is only dropped when the marker
			// is its very first characters.
			if lineIdx != 0 {
				code = append(code, line)
			}
		case openIdx >= 0 && strings.Contains(trimmed, blockCommentClose):
			if openIdx != 0 {
				code = append(code, line)
			}
		case openIdx >= 0:
			if openIdx != 0 {
				code = append(code, line)
			}
			state = stateInBlockComment
		case trimmed != "" && lineIdx != 0:
			code = append(code, line)
		}
	}

	return code
}
