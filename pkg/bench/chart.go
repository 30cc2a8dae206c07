package bench

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// One bar of the chart
type Bar struct {
	Label string
	Value float64
}

// Outcome rates of the self-play experiment
func (r SelfPlayResult) Bars() []Bar {
	return []Bar{
		{"X wins", r.XRate()},
		{"O wins", r.ORate()},
		{"Ties", r.TieRate()},
	}
}

// Win rates of both players, and the draw rate
func (s VersusSummaryInfo) Bars() []Bar {
	return []Bar{
		{s.P1Name, rate(s.P1Wins, s.TotalGames)},
		{s.P2Name, rate(s.P2Wins, s.TotalGames)},
		{"Draws", rate(s.Draws, s.TotalGames)},
	}
}

// Render a html page with a bar chart of given values
func WriteChart(w io.Writer, title string, bars []Bar) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	labels := make([]string, 0, len(bars))
	items := make([]opts.BarData, 0, len(bars))
	for _, b := range bars {
		labels = append(labels, b.Label)
		items = append(items, opts.BarData{Value: b.Value})
	}

	bar.SetXAxis(labels).AddSeries("rate", items)

	page := components.NewPage()
	page.AddCharts(bar)
	return page.Render(w)
}
