// Package report renders demo results as PNG plots (gonum/plot) and HTML
// charts (go-echarts) for the report server.
package report

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/quantfold/scatter.report/internal/scatter"
)

// Series is one named line on a plot.
type Series struct {
	Name string
	Pts  plotter.XYs
}

// NewSeries pairs xs and ys into a named series. The slices must have equal
// length.
func NewSeries(name string, xs, ys []float64) (Series, error) {
	if len(xs) != len(ys) {
		return Series{}, fmt.Errorf("report: series %q has %d xs and %d ys", name, len(xs), len(ys))
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return Series{Name: name, Pts: pts}, nil
}

// LinePlot draws the series as coloured lines and saves a PNG.
func LinePlot(title, xLabel, yLabel, file string, series ...Series) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	colors := generateColors(len(series))
	for i, s := range series {
		if len(s.Pts) == 0 {
			continue
		}
		line, err := plotter.NewLine(s.Pts)
		if err != nil {
			return err
		}
		line.Color = colors[i]
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	if err := p.Save(10*vg.Inch, 6*vg.Inch, file); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}

// TaylorPlot overlays a target function with its Taylor partial sums of the
// given orders on [x0, x1].
func TaylorPlot(target func(float64) float64, approx map[int]func(float64) float64, x0, x1 float64, n int, file string) error {
	xs := linspace(x0, x1, n)

	ys := make([]float64, n)
	for i, x := range xs {
		ys[i] = target(x)
	}
	exact, err := NewSeries("exact", xs, ys)
	if err != nil {
		return err
	}
	series := []Series{exact}

	orders := make([]int, 0, len(approx))
	for order := range approx {
		orders = append(orders, order)
	}
	sort.Ints(orders)
	for _, order := range orders {
		f := approx[order]
		ay := make([]float64, n)
		for i, x := range xs {
			ay[i] = f(x)
		}
		s, err := NewSeries(fmt.Sprintf("order %d", order), xs, ay)
		if err != nil {
			return err
		}
		series = append(series, s)
	}

	return LinePlot("Taylor approximations", "x", "f(x)", file, series...)
}

// TrajectoryPlot draws ODE state components against time.
func TrajectoryPlot(times []float64, states [][]float64, labels []string, file string) error {
	if len(states) == 0 {
		return fmt.Errorf("report: no states to plot")
	}
	dim := len(states[0])
	series := make([]Series, 0, dim)
	for d := 0; d < dim; d++ {
		ys := make([]float64, len(states))
		for i := range states {
			ys[i] = states[i][d]
		}
		name := fmt.Sprintf("y[%d]", d)
		if d < len(labels) {
			name = labels[d]
		}
		s, err := NewSeries(name, times, ys)
		if err != nil {
			return err
		}
		series = append(series, s)
	}
	return LinePlot("Trajectory", "t", "state", file, series...)
}

// ProfilePlot draws PDE field snapshots over the grid, one line per snapshot.
func ProfilePlot(xs []float64, snaps [][]float64, file string) error {
	series := make([]Series, 0, len(snaps))
	for i, snap := range snaps {
		s, err := NewSeries(fmt.Sprintf("t%d", i), xs, snap)
		if err != nil {
			return err
		}
		series = append(series, s)
	}
	return LinePlot("Field profiles", "x", "u(x)", file, series...)
}

// ConvergencePlot draws Monte Carlo error against sample count on log-log
// axes, alongside the reported standard error.
func ConvergencePlot(results []scatter.MCResult, exact complex128, file string) error {
	ns := make([]float64, len(results))
	errs := make([]float64, len(results))
	stderrs := make([]float64, len(results))
	for i, r := range results {
		ns[i] = math.Log10(float64(r.Samples))
		diff := math.Hypot(real(r.Estimate)-real(exact), imag(r.Estimate)-imag(exact))
		errs[i] = math.Log10(math.Max(diff, 1e-300))
		stderrs[i] = math.Log10(math.Max(r.StdErr, 1e-300))
	}

	errSeries, err := NewSeries("|estimate - analytic|", ns, errs)
	if err != nil {
		return err
	}
	seSeries, err := NewSeries("standard error", ns, stderrs)
	if err != nil {
		return err
	}
	return LinePlot("Monte Carlo convergence", "log10 samples", "log10 error", file, errSeries, seSeries)
}

// EntropyPlot draws entanglement entropy against time.
func EntropyPlot(times, entropies []float64, file string) error {
	s, err := NewSeries("S(rho_A)", times, entropies)
	if err != nil {
		return err
	}
	return LinePlot("Entanglement entropy", "t", "S (bits)", file, s)
}

// linspace returns n evenly spaced points covering [x0, x1].
func linspace(x0, x1 float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	xs := make([]float64, n)
	dx := (x1 - x0) / float64(n-1)
	for i := range xs {
		xs[i] = x0 + float64(i)*dx
	}
	return xs
}

// generateColors creates a palette of distinct colors for plot lines.
func generateColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}
	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.7, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL to RGB (0-255 range).
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64

	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}

	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// FormatTimestamp generates a timestamp string for directory naming.
func FormatTimestamp(t time.Time) string {
	return t.Format("20060102_150405")
}

// MakeOutputDir returns a timestamped output directory under baseDir for a
// named demo, e.g. plots/born/20260825_141503.
func MakeOutputDir(baseDir, demo string) string {
	return filepath.Join(baseDir, demo, FormatTimestamp(time.Now()))
}
