// Package security guards filesystem paths taken from HTTP requests, keeping
// plot downloads confined to the configured plot directory.
package security

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidatePathWithinDirectory checks if a file path is within a safe directory.
// It prevents path traversal attacks by ensuring the resolved path doesn't
// escape the specified safe directory.
func ValidatePathWithinDirectory(filePath, safeDir string) error {
	absPath, err := filepath.Abs(filepath.Clean(filePath))
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	absSafeDir, err := filepath.Abs(safeDir)
	if err != nil {
		return fmt.Errorf("failed to resolve safe directory path: %w", err)
	}

	rel, err := filepath.Rel(absSafeDir, absPath)
	if err != nil {
		return fmt.Errorf("failed to relativise path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("path %q escapes directory %q", filePath, safeDir)
	}
	return nil
}

// ValidatePlotPath checks that a requested plot file stays under the plot
// directory and carries a plot file extension.
func ValidatePlotPath(filePath, plotDir string) error {
	switch ext := filepath.Ext(filePath); ext {
	case ".png", ".svg", ".pdf":
	default:
		return fmt.Errorf("unsupported plot extension %q", filepath.Ext(filePath))
	}
	return ValidatePathWithinDirectory(filePath, plotDir)
}

// SanitizeFilename strips path separators and traversal sequences from a
// name destined for a Content-Disposition header or an output filename.
func SanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, "..", "_")
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return "unnamed"
	}
	return s
}
