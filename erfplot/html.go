package erfplot

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Jung-woojin/manim-theory-lab/receptive"
)

// WriteHTML renders an interactive page with one heatmap per matrix and a
// chart overlaying their radial profiles.
func WriteHTML(out io.Writer, mats ...*receptive.WeightMatrix) error {
	if len(mats) == 0 {
		return ErrNoWeights
	}
	page := components.NewPage()
	for _, w := range mats {
		page.AddCharts(heatmapChart(w))
	}
	page.AddCharts(profileChart(mats))

	if err := page.Render(out); err != nil {
		return fmt.Errorf("erfplot: render html: %w", err)
	}
	return nil
}

func heatmapChart(w *receptive.WeightMatrix) *charts.HeatMap {
	n := w.Size()
	axis := make([]string, n)
	for i := range axis {
		axis[i] = strconv.Itoa(i)
	}

	data := make([]opts.HeatMapData, 0, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{col, n - 1 - row, w.At(row, col)}})
		}
	}

	title := fmt.Sprintf("ERF after %d×%d filter", w.Kernel(), w.Kernel())
	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Effective receptive fields", Theme: "dark", Width: "640px", Height: "640px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("N=%d σ=%.3f peak/edge=%.3g", n, w.Sigma(), w.PeakToEdgeRatio())}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: axis, Name: "col"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: reversed(axis), Name: "row"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(w.Min()),
			Max:        float32(w.Max()),
			InRange:    &opts.VisualMapInRange{Color: []string{"#000000", "#ffffff"}},
		}),
	)
	hm.SetXAxis(axis).AddSeries(fmt.Sprintf("K=%d", w.Kernel()), data)
	return hm
}

func profileChart(mats []*receptive.WeightMatrix) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "dark", Width: "900px", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{Title: "Radial profile", Subtitle: "mean weight by distance from center"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "distance (cells)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "weight"}),
	)
	for _, w := range mats {
		prof := w.RadialProfile()
		data := make([]opts.LineData, len(prof))
		for i, s := range prof {
			data[i] = opts.LineData{Value: []interface{}{s.Radius, s.Weight}}
		}
		line.AddSeries(fmt.Sprintf("K=%d", w.Kernel()), data)
	}
	return line
}

func reversed(s []string) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
