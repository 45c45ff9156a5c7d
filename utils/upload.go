package utils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SanitizeFilename replaces anything outside [a-zA-Z0-9._-] with underscores.
func SanitizeFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllString(filepath.Base(name), "_")
}

// StoredFilename prefixes a unix-millisecond timestamp so two uploads of the
// same file never collide.
func StoredFilename(timestampMillis int64, original string) string {
	return fmt.Sprintf("%d_%s", timestampMillis, SanitizeFilename(original))
}

// WithinDir reports whether target, once cleaned to an absolute path, stays
// inside dir. Used to reject file names that try to escape an entity's
// upload directory.
func WithinDir(dir, target string) bool {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return false
	}
	if absTarget == absDir {
		return false
	}
	return strings.HasPrefix(absTarget, absDir+string(filepath.Separator))
}

// IsPDF accepts a file when either the declared content type or the filename
// extension says PDF.
func IsPDF(contentType, filename string) bool {
	return contentType == "application/pdf" ||
		strings.HasSuffix(strings.ToLower(filename), ".pdf")
}
