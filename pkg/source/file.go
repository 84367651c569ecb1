package source

import (
	"fmt"
	"os"
	"strings"

	"github.com/siyuan-infoblox/swift-import-lint/pkg/errors"
)

// Line is a single physical line of a source file.
type Line struct {
	Index   int    // 1-based line number
	Content string // raw text without the trailing newline
}

// File holds the raw lines of one source file together with its path.
type File struct {
	Path  string
	Lines []Line
}

// Read loads a source file from disk and splits it into lines.
func Read(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
	}
	return FromString(path, string(data)), nil
}

// FromString builds a File from in-memory content. An empty content string
// yields a file with no lines.
func FromString(path, content string) *File {
	file := &File{Path: path}
	if content == "" {
		return file
	}

	raw := strings.Split(content, "\n")
	file.Lines = make([]Line, 0, len(raw))
	for i, text := range raw {
		file.Lines = append(file.Lines, Line{Index: i + 1, Content: text})
	}
	return file
}
