package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Line
	}{
		{
			name:    "empty content has no lines",
			content: "",
			want:    nil,
		},
		{
			name:    "single line",
			content: "import Foundation",
			want:    []Line{{Index: 1, Content: "import Foundation"}},
		},
		{
			name:    "lines numbered from one, blanks preserved",
			content: "import Foundation\n\nstruct Box {}",
			want: []Line{
				{Index: 1, Content: "import Foundation"},
				{Index: 2, Content: ""},
				{Index: 3, Content: "struct Box {}"},
			},
		},
		{
			name:    "trailing newline yields a final empty line",
			content: "import Foundation\n",
			want: []Line{
				{Index: 1, Content: "import Foundation"},
				{Index: 2, Content: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			file := FromString("test.swift", tt.content)
			req.Equal("test.swift", file.Path)
			if tt.want == nil {
				req.Empty(file.Lines)
				return
			}
			req.Equal(tt.want, file.Lines)
		})
	}
}

func TestRead(t *testing.T) {
	req := require.New(t)
	tempDir := t.TempDir()

	path := filepath.Join(tempDir, "App.swift")
	req.NoError(os.WriteFile(path, []byte("import Foundation\nstruct App {}\n"), 0644))

	file, err := Read(path)
	req.NoError(err)
	req.Equal(path, file.Path)
	req.Len(file.Lines, 3)
	req.Equal("import Foundation", file.Lines[0].Content)
	req.Equal("struct App {}", file.Lines[1].Content)
}

func TestRead_missingFile(t *testing.T) {
	req := require.New(t)
	_, err := Read(filepath.Join(t.TempDir(), "missing.swift"))
	req.Error(err)
	req.Contains(err.Error(), "failed to read file")
}
