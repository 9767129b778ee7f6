package report

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/quantfold/scatter.report/internal/scatter"
)

// RenderEntropyChart writes an HTML line chart of entanglement entropy over
// time to w.
func RenderEntropyChart(w io.Writer, times, entropies []float64, title string) error {
	if len(times) != len(entropies) {
		return fmt.Errorf("report: %d times and %d entropies", len(times), len(entropies))
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Entanglement Entropy", Theme: "dark", Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("points=%d", len(times))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "S (bits)", Min: 0, Max: 1}),
		charts.WithXAxisOpts(opts.XAxis{Name: "t"}),
	)

	xs := make([]string, len(times))
	data := make([]opts.LineData, len(entropies))
	for i := range times {
		xs[i] = fmt.Sprintf("%.3f", times[i])
		data[i] = opts.LineData{Value: entropies[i]}
	}
	line.SetXAxis(xs).AddSeries("entropy", data)

	return line.Render(w)
}

// RenderConvergenceChart writes an HTML scatter chart of Monte Carlo error
// against sample count (log10 both axes) to w.
func RenderConvergenceChart(w io.Writer, results []scatter.MCResult, exact complex128, title string) error {
	if len(results) == 0 {
		return fmt.Errorf("report: no results to chart")
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "MC Convergence", Theme: "dark", Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("runs=%d", len(results))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "log10 samples"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "log10 error"}),
	)

	errData := make([]opts.ScatterData, len(results))
	seData := make([]opts.ScatterData, len(results))
	for i, r := range results {
		n := math.Log10(float64(r.Samples))
		diff := math.Hypot(real(r.Estimate)-real(exact), imag(r.Estimate)-imag(exact))
		errData[i] = opts.ScatterData{Value: []interface{}{n, math.Log10(math.Max(diff, 1e-300))}}
		seData[i] = opts.ScatterData{Value: []interface{}{n, math.Log10(math.Max(r.StdErr, 1e-300))}}
	}
	sc.AddSeries("error", errData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}))
	sc.AddSeries("stderr", seData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}))

	return sc.Render(w)
}
