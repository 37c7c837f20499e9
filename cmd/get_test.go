package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Rick Astley", "Rick Astley"},
		{"What is Go? A Tour", "What is Go A Tour"},
		{`a/b\c:d*e<f>g|h"i`, "abcdefghi"},
		{"...dotted...", "dotted"},
		{"  spaced  ", "spaced"},
		{`:/\?*<>|"`, "untitled"},
		{"", "untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeFilename(tt.input))
		})
	}
}

func TestGetRejectsUnknownFormat(t *testing.T) {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"get", "dQw4w9WgXcQ",
		"--format", "xml",
		"--db", filepath.Join(t.TempDir(), "transcripts.db")})
	t.Cleanup(func() { getFormat = "doc"; storePathFlag = "" })

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestGetRequiresExactlyOneArgument(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"get"})

	assert.Error(t, root.Execute())
}
