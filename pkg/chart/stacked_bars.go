package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// StackedBars draws one layer of a stacked bar chart. Bars are placed at
// their chunk size in data coordinates, so they work on a logarithmic x axis
// where the category-based plotter.BarChart does not.
type StackedBars struct {
	Segments []BarSegment

	Color     color.Color
	LineStyle draw.LineStyle
}

func newStackedBars(layer BarLayer, clr color.Color) *StackedBars {
	return &StackedBars{
		Segments:  layer.Segments,
		Color:     clr,
		LineStyle: draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)},
	}
}

func (b *StackedBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for _, s := range b.Segments {
		if s.Top <= s.Bottom {
			continue
		}

		x := float64(s.ChunkSize)
		left, right := trX(x-s.Width/2), trX(x+s.Width/2)
		bottom, top := trY(float64(s.Bottom)), trY(float64(s.Top))

		pts := []vg.Point{
			{X: left, Y: bottom},
			{X: right, Y: bottom},
			{X: right, Y: top},
			{X: left, Y: top},
		}

		if b.Color != nil {
			c.FillPolygon(b.Color, c.ClipPolygonXY(pts))
		}
		if b.LineStyle.Width > 0 {
			outline := append(pts, pts[0])
			c.StrokeLines(b.LineStyle, c.ClipLinesXY(outline)...)
		}
	}
}

func (b *StackedBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)

	for _, s := range b.Segments {
		x := float64(s.ChunkSize)
		xmin = math.Min(xmin, x-s.Width/2)
		xmax = math.Max(xmax, x+s.Width/2)
		ymin = math.Min(ymin, float64(s.Bottom))
		ymax = math.Max(ymax, float64(s.Top))
	}

	return
}

func (b *StackedBars) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Max.Y},
	}
	if b.Color != nil {
		c.FillPolygon(b.Color, pts)
	}
}
