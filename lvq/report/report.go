// Package report renders the history of an LVQ training run to an
// interactive HTML page: an error-rate/MSE line chart per epoch and a
// heatmap of the final desired-class/winner-class transition counts.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/atmafra/poli-sub001/lvq"
)

// TrainingReport accumulates one SweepResult per epoch of a training run.
type TrainingReport struct {
	Name    string
	Sweeps  []*lvq.SweepResult
	Classes int
}

// NewTrainingReport creates an empty report for a run over classes
// classes; classes fixes the heatmap's axis extent.
func NewTrainingReport(name string, classes int) *TrainingReport {
	return &TrainingReport{Name: name, Classes: classes}
}

// Record appends one epoch's sweep result to the report's history.
func (r *TrainingReport) Record(sweep *lvq.SweepResult) {
	r.Sweeps = append(r.Sweeps, sweep)
}

func (r *TrainingReport) errorRateLine() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: r.Name + ": error rate & MSE per epoch"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "epoch", Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "value", Type: "value"}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside"},
			opts.DataZoom{Type: "slider"},
		),
	)

	epochs := make([]string, len(r.Sweeps))
	errData := make([]opts.LineData, len(r.Sweeps))
	mseData := make([]opts.LineData, len(r.Sweeps))
	for i, s := range r.Sweeps {
		epochs[i] = strconv.Itoa(i)
		errData[i] = opts.LineData{Value: s.ErrorRate}
		mseData[i] = opts.LineData{Value: s.MSE}
	}

	line.SetXAxis(epochs).
		AddSeries("error rate", errData).
		AddSeries("MSE", mseData).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false)}))
	return line
}

func (r *TrainingReport) transitionHeatMap() *charts.HeatMap {
	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: r.Name + ": final transition map"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "desired class", Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "winner class", Type: "category"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Type:       "continuous",
			Calculable: opts.Bool(true),
			Min:        0,
		}),
	)

	labels := make([]string, r.Classes)
	for c := 0; c < r.Classes; c++ {
		labels[c] = strconv.Itoa(c + 1)
	}
	hm.SetXAxis(labels).SetYAxis(labels)

	var final lvq.TransitionMap
	if n := len(r.Sweeps); n > 0 {
		final = r.Sweeps[n-1].Transitions
	}

	data := make([]opts.HeatMapData, 0, r.Classes*r.Classes)
	for desired := 1; desired <= r.Classes; desired++ {
		row := final[desired]
		for winner := 1; winner <= r.Classes; winner++ {
			data = append(data, opts.HeatMapData{
				Value: [3]interface{}{desired - 1, winner - 1, row[winner]},
			})
		}
	}
	hm.AddSeries("transitions", data)
	return hm
}

// WriteHTML renders the report's error-rate/MSE history and final
// transition heatmap as a single HTML page.
func (r *TrainingReport) WriteHTML(w io.Writer) error {
	if len(r.Sweeps) == 0 {
		return fmt.Errorf("report: no sweeps recorded for %q", r.Name)
	}

	page := components.NewPage().SetPageTitle(r.Name + " training report")
	page.AddCharts(r.errorRateLine(), r.transitionHeatMap())
	return page.Render(w)
}
