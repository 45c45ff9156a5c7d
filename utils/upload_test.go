package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"notes.pdf", "notes.pdf"},
		{"my lecture notes.pdf", "my_lecture_notes.pdf"},
		{"week#1 (final).pdf", "week_1__final_.pdf"},
		{"résumé.pdf", "r_sum_.pdf"},
		{"already_safe-1.2.pdf", "already_safe-1.2.pdf"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SanitizeFilename(tc.in))
	}
}

func TestSanitizeFilenameStripsDirectories(t *testing.T) {
	assert.Equal(t, "passwd", SanitizeFilename("../../etc/passwd"))
	assert.Equal(t, "notes.pdf", SanitizeFilename("/tmp/notes.pdf"))
}

func TestStoredFilename(t *testing.T) {
	assert.Equal(t, "1700000000000_class_notes.pdf", StoredFilename(1700000000000, "class notes.pdf"))
	assert.Equal(t, "42_a.pdf", StoredFilename(42, "a.pdf"))
}

func TestWithinDir(t *testing.T) {
	dir := t.TempDir()

	assert.True(t, WithinDir(dir, filepath.Join(dir, "a.pdf")))
	assert.True(t, WithinDir(dir, filepath.Join(dir, "sub", "a.pdf")))

	assert.False(t, WithinDir(dir, filepath.Join(dir, "..", "escape.pdf")))
	assert.False(t, WithinDir(dir, "/etc/passwd"))
	assert.False(t, WithinDir(dir, dir), "the directory itself is not a file inside it")
	// Sibling directory sharing the prefix must not pass.
	assert.False(t, WithinDir(dir, dir+"2/a.pdf"))
}

func TestIsPDF(t *testing.T) {
	assert.True(t, IsPDF("application/pdf", "whatever.bin"))
	assert.True(t, IsPDF("application/octet-stream", "Notes.PDF"))
	assert.False(t, IsPDF("image/png", "photo.png"))
	assert.False(t, IsPDF("", "archive.zip"))
}
