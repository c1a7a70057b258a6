package bench

import (
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteChart renders the phase results as an HTML page with bar charts
// comparing runtime and node throughput.
func WriteChart(path string, results []PhaseResult) error {
	var phases []string
	times := make([]opts.BarData, 0, len(results))
	rates := make([]opts.BarData, 0, len(results))
	for _, r := range results {
		name := "serial"
		if r.Parallel {
			name = "parallel"
		}
		phases = append(phases, name)
		secs := r.Elapsed.Seconds()
		times = append(times, opts.BarData{Value: secs})
		var nps float64
		if secs > 0 {
			nps = float64(r.Nodes) / secs
		}
		rates = append(rates, opts.BarData{Value: nps})
	}

	runtimeBar := charts.NewBar()
	runtimeBar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "opening solver runtime (s)",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)
	runtimeBar.SetXAxis(phases)
	runtimeBar.AddSeries("runtime", times)

	rateBar := charts.NewBar()
	rateBar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "minimax calls per second",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)
	rateBar.SetXAxis(phases)
	rateBar.AddSeries("calls/s", rates)

	page := components.NewPage()
	page.AddCharts(runtimeBar, rateBar)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}
