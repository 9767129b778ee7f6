package monitoring

import (
	"fmt"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var lines []string
	SetLogger(func(format string, v ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, v...))
	})

	Logf("run %s finished", "taylor")
	if len(lines) != 1 || lines[0] != "run taylor finished" {
		t.Errorf("lines = %v", lines)
	}

	SetLogger(nil)
	Logf("muted")
	if len(lines) != 1 {
		t.Errorf("no-op logger still recorded: %v", lines)
	}
}

func TestProgress(t *testing.T) {
	defer SetLogger(nil)

	var lines []string
	SetLogger(func(format string, v ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, v...))
	})

	for i := 1; i <= 100; i++ {
		Progress("mc", i, 100)
	}
	if len(lines) != 10 {
		t.Errorf("got %d progress lines, want 10", len(lines))
	}
	if !strings.Contains(lines[len(lines)-1], "100/100") {
		t.Errorf("last line = %q", lines[len(lines)-1])
	}
}
