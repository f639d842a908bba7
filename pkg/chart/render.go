package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

type RenderOptions struct {
	// ErrorBars draws +/- runtime error around every runtime point.
	ErrorBars bool
}

// Save renders fig to path. The image format follows the file extension.
// The file is only created once rendering has succeeded.
func Save(fig *Figure, path string, width, height vg.Length, opts RenderOptions) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	canvas, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return fmt.Errorf("unsupported output %s: %w", path, err)
	}
	if err := Render(fig, draw.New(canvas), opts); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := canvas.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// WriteTo renders fig in the given format ("png", "svg", "pdf", ...) to w.
func WriteTo(w io.Writer, fig *Figure, width, height vg.Length, format string, opts RenderOptions) error {
	canvas, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return err
	}
	if err := Render(fig, draw.New(canvas), opts); err != nil {
		return err
	}
	_, err = canvas.WriteTo(w)
	return err
}

// Render draws fig onto c. The memory plot owns the left axis and the x
// axis; runtime lines are drawn into its data area with their own
// logarithmic transform and get a separate axis on the right.
func Render(fig *Figure, c draw.Canvas, opts RenderOptions) error {
	memoryPlot := newMemoryPlot(fig)
	runtimePlot := newRuntimePlot(fig)

	lines, err := runtimePlotters(fig, runtimePlot, opts)
	if err != nil {
		return err
	}

	area := draw.Crop(c, 0, -secondaryAxisWidth(&runtimePlot.Y), 0, 0)
	memoryPlot.Draw(area)

	da := memoryPlot.DataCanvas(area)
	for _, p := range lines {
		p.Plot(da, runtimePlot)
	}
	drawSecondaryAxis(c, da, &runtimePlot.Y)
	runtimePlot.Legend.Draw(da)

	log.Debugf("Rendered %d bar layers and %d runtime series", len(fig.Bars), len(fig.Lines))
	return nil
}

func applyAxis(a *plot.Axis, ax Axis) {
	a.Label.Text = ax.Label
	a.Min = ax.Min
	a.Max = ax.Max

	switch ax.Scale {
	case LogScale:
		a.Scale = plot.LogScale{}
		a.Tick.Marker = powerTicks{Base: ax.Base, Minor: ax.Base > 2}
	default:
		a.Scale = plot.LinearScale{}
		a.Tick.Marker = plot.DefaultTicks{}
	}
}

func newMemoryPlot(fig *Figure) *plot.Plot {
	p := plot.New()
	p.Title.Text = fig.Title

	for k, layer := range fig.Bars {
		p.Add(newStackedBars(layer, layerColor(k)))
	}

	// Add widens the axes to the data range, so the fixed ranges go last.
	applyAxis(&p.X, fig.X)
	applyAxis(&p.Y, fig.Memory)
	p.Y.Tick.Marker = plot.TickerFunc(byteTicks)

	return p
}

// newRuntimePlot returns a plot that is never drawn itself. It provides the
// runtime transform, the right axis styles and the shared legend.
func newRuntimePlot(fig *Figure) *plot.Plot {
	p := plot.New()

	applyAxis(&p.X, fig.X)
	applyAxis(&p.Y, fig.Runtime)

	p.Legend.Top = true
	p.Legend.Left = true
	for k, layer := range fig.Bars {
		p.Legend.Add(layer.Label, newStackedBars(layer, layerColor(k)))
	}

	return p
}

func layerColor(i int) color.Color {
	return plotutil.SoftColors[i%len(plotutil.SoftColors)]
}

func lineStyle(i int) draw.LineStyle {
	return draw.LineStyle{
		Color: plotutil.DarkColors[i%len(plotutil.DarkColors)],
		Width: vg.Points(1.5),
	}
}

type runtimeErrorPoints struct {
	plotter.XYs
	plotter.YErrors
}

func runtimePlotters(fig *Figure, p *plot.Plot, opts RenderOptions) ([]plot.Plotter, error) {
	var result []plot.Plotter

	for i, series := range fig.Lines {
		style := lineStyle(i)
		p.Legend.Add(series.Benchmark, &plotter.Line{LineStyle: style})

		for _, run := range positiveRuns(series.Points) {
			xys := make(plotter.XYs, len(run))
			for j, pt := range run {
				xys[j].X = float64(pt.ChunkSize)
				xys[j].Y = pt.Runtime
			}

			line, err := plotter.NewLine(xys)
			if err != nil {
				return nil, fmt.Errorf("runtime series %q: %w", series.Benchmark, err)
			}
			line.LineStyle = style
			result = append(result, line)

			if !opts.ErrorBars {
				continue
			}

			points := errorBarPoints(run, fig.Runtime)
			if len(points.XYs) == 0 {
				continue
			}
			bars, err := plotter.NewYErrorBars(points)
			if err != nil {
				return nil, fmt.Errorf("runtime error bars %q: %w", series.Benchmark, err)
			}
			bars.LineStyle = style
			bars.LineStyle.Width = vg.Points(1)
			result = append(result, bars)
		}
	}

	return result, nil
}

// positiveRuns splits points into consecutive runs with a positive runtime.
// A logarithmic axis cannot show the rest, so the line breaks there.
func positiveRuns(points []LinePoint) [][]LinePoint {
	var runs [][]LinePoint
	var current []LinePoint

	for _, pt := range points {
		if pt.Runtime > 0 && !math.IsInf(pt.Runtime, 1) {
			current = append(current, pt)
			continue
		}
		if len(current) > 0 {
			runs = append(runs, current)
			current = nil
		}
	}
	if len(current) > 0 {
		runs = append(runs, current)
	}

	return runs
}

// errorBarPoints keeps error bars inside the axis range. Points outside it
// get no bar, and the lower end is cut at the axis minimum because the
// logarithmic axis cannot show non-positive values.
func errorBarPoints(points []LinePoint, a Axis) runtimeErrorPoints {
	var result runtimeErrorPoints

	for _, pt := range points {
		if pt.Runtime < a.Min || pt.Runtime > a.Max {
			continue
		}

		e := math.Abs(pt.RuntimeError)
		low := math.Min(e, pt.Runtime-a.Min)
		high := math.Min(e, a.Max-pt.Runtime)

		result.XYs = append(result.XYs, plotter.XY{X: float64(pt.ChunkSize), Y: pt.Runtime})
		result.YErrors = append(result.YErrors, struct{ Low, High float64 }{Low: low, High: high})
	}

	return result
}
