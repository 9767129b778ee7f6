package report

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quantfold/scatter.report/internal/scatter"
)

func TestNewSeries(t *testing.T) {
	s, err := NewSeries("test", []float64{0, 1}, []float64{2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Pts) != 2 || s.Pts[1].Y != 3 {
		t.Errorf("series = %+v", s)
	}

	if _, err := NewSeries("bad", []float64{0}, []float64{1, 2}); err == nil {
		t.Error("expected length mismatch error")
	}
}

func TestLinePlotWritesPNG(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "sub", "line.png")

	xs := linspace(0, 1, 50)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = math.Sin(x)
	}
	s, err := NewSeries("sin", xs, ys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := LinePlot("test", "x", "y", file, s); err != nil {
		t.Fatalf("LinePlot: %v", err)
	}

	info, err := os.Stat(file)
	if err != nil {
		t.Fatalf("stat plot: %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}

func TestTaylorPlot(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taylor.png")
	approx := map[int]func(float64) float64{
		1: func(x float64) float64 { return 1 + x },
		2: func(x float64) float64 { return 1 + x + x*x/2 },
	}
	if err := TaylorPlot(math.Exp, approx, -1, 1, 100, file); err != nil {
		t.Fatalf("TaylorPlot: %v", err)
	}
	if _, err := os.Stat(file); err != nil {
		t.Errorf("stat plot: %v", err)
	}
}

func TestConvergencePlot(t *testing.T) {
	file := filepath.Join(t.TempDir(), "conv.png")
	results := []scatter.MCResult{
		{Estimate: complex(-0.9, 0), StdErr: 0.1, Samples: 1000, Volume: 8000},
		{Estimate: complex(-1.01, 0), StdErr: 0.03, Samples: 10000, Volume: 8000},
	}
	if err := ConvergencePlot(results, complex(-1, 0), file); err != nil {
		t.Fatalf("ConvergencePlot: %v", err)
	}
	if _, err := os.Stat(file); err != nil {
		t.Errorf("stat plot: %v", err)
	}
}

func TestRenderEntropyChart(t *testing.T) {
	var buf bytes.Buffer
	times := []float64{0, 0.1, 0.2}
	entropies := []float64{0, 0.4, 0.8}
	if err := RenderEntropyChart(&buf, times, entropies, "two qubits"); err != nil {
		t.Fatalf("RenderEntropyChart: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "entropy") {
		t.Error("rendered chart missing series name")
	}

	if err := RenderEntropyChart(&buf, times, entropies[:2], "bad"); err == nil {
		t.Error("expected length mismatch error")
	}
}

func TestRenderConvergenceChart(t *testing.T) {
	var buf bytes.Buffer
	results := []scatter.MCResult{
		{Estimate: complex(-1.1, 0), StdErr: 0.05, Samples: 5000, Volume: 8000},
	}
	if err := RenderConvergenceChart(&buf, results, complex(-1, 0), "yukawa"); err != nil {
		t.Fatalf("RenderConvergenceChart: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty chart output")
	}

	if err := RenderConvergenceChart(&buf, nil, 0, "empty"); err == nil {
		t.Error("expected error for no results")
	}
}

func TestMakeOutputDir(t *testing.T) {
	dir := MakeOutputDir("plots", "born")
	if !strings.HasPrefix(dir, filepath.Join("plots", "born")) {
		t.Errorf("dir = %q", dir)
	}
}
