package util

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/catalano/optimization/pkg/optimization/framework"
)

// Series is one run's global best fitness after each iteration.
type Series struct {
	Name   string
	Values []float64
}

func globalOpts(title, xName, yName string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: xName,
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: yName,
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	}
}

// PlotConvergence renders a line chart with one line per series as HTML.
func PlotConvergence(w io.Writer, title string, series []Series) error {
	if len(series) == 0 {
		return fmt.Errorf("%w: no series to plot for %s", framework.ErrInvalidArgument, title)
	}

	longest := 0
	for _, s := range series {
		longest = max(longest, len(s.Values))
	}
	if longest == 0 {
		return fmt.Errorf("%w: all series are empty for %s", framework.ErrInvalidArgument, title)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(globalOpts(title, "iteration", "best fitness")...)

	iterations := make([]int, longest)
	for i := range iterations {
		iterations[i] = i + 1
	}
	line.SetXAxis(iterations)

	for _, s := range series {
		data := make([]opts.LineData, len(s.Values))
		for i, v := range s.Values {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.Name, data)
	}
	line.SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{
			Show: opts.Bool(false),
		}),
		charts.WithLineChartOpts(opts.LineChart{
			ShowSymbol: opts.Bool(false),
		}),
	)
	return line.Render(w)
}

// PlotSolutions renders a scatter plot comparing the known optimum of a
// two-dimensional problem with the locations found by several runs.
func PlotSolutions(w io.Writer, problem framework.Problem, algorithmName string, found [][]float64) error {
	if len(found) == 0 {
		return fmt.Errorf("%w: results are empty for %s benchmark", framework.ErrInvalidArgument, problem.Name())
	}
	if problem.Dimensions() != 2 {
		return fmt.Errorf("%w: can only plot 2D for %s benchmark", framework.ErrInvalidArgument, problem.Name())
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(globalOpts(
		fmt.Sprintf("%s results for %s benchmark", algorithmName, problem.Name()), "x1", "x2")...)

	optimum, _ := problem.Optimum()
	want := []opts.ScatterData{{
		Value:      optimum,
		Symbol:     "circle",
		SymbolSize: 14,
	}}

	got := make([]opts.ScatterData, len(found))
	for i, x := range found {
		if len(x) != 2 {
			return fmt.Errorf("%w: solution %d has %d dimensions", framework.ErrInvalidArgument, i, len(x))
		}
		got[i] = opts.ScatterData{
			Value:      []float64{x[0], x[1]},
			Symbol:     "triangle",
			SymbolSize: 10,
		}
	}

	scatter.AddSeries("Global Optimum", want).
		AddSeries(fmt.Sprintf("%s Solutions", algorithmName), got).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
			charts.WithEmphasisOpts(opts.Emphasis{}),
		)
	return scatter.Render(w)
}

// WriteFile creates path and passes it to render.
func WriteFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
