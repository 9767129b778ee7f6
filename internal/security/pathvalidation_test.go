package security

import (
	"path/filepath"
	"testing"
)

func TestValidatePathWithinDirectory(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"inside", filepath.Join(dir, "a.png"), false},
		{"nested", filepath.Join(dir, "born", "a.png"), false},
		{"escape", filepath.Join(dir, "..", "a.png"), true},
		{"dotdot", filepath.Join(dir, "x", "..", "..", "a.png"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePathWithinDirectory(tt.path, dir)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePathWithinDirectory(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePlotPath(t *testing.T) {
	dir := t.TempDir()

	if err := ValidatePlotPath(filepath.Join(dir, "plot.png"), dir); err != nil {
		t.Errorf("png inside dir: %v", err)
	}
	if err := ValidatePlotPath(filepath.Join(dir, "notes.txt"), dir); err == nil {
		t.Error("expected extension error for .txt")
	}
	if err := ValidatePlotPath(filepath.Join(dir, "..", "plot.png"), dir); err == nil {
		t.Error("expected traversal error")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plot.png", "plot.png"},
		{"../../etc/passwd", "____etc_passwd"},
		{"a/b\\c", "a_b_c"},
		{"", "unnamed"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
