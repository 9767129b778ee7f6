package monitoring

import "log"

// Logf is the package-level diagnostic logger for demo runs. It defaults to
// log.Printf but may be replaced by SetLogger; tests redirect or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil sets a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Progress logs a sampled progress line for long numeric runs: call it with
// the current and total iteration counts and it reports at ~10% intervals.
func Progress(label string, done, total int) {
	if total <= 0 || done <= 0 {
		return
	}
	step := total / 10
	if step == 0 {
		step = 1
	}
	if done%step == 0 || done == total {
		Logf("%s: %d/%d (%.0f%%)", label, done, total, 100*float64(done)/float64(total))
	}
}
