package chart

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// gonum/plot only draws y axes on the left of the data area. The runtime axis
// is drawn by hand on the right edge using the same styles.

func secondaryAxisWidth(a *plot.Axis) vg.Length {
	var labels vg.Length
	for _, t := range a.Tick.Marker.Ticks(a.Min, a.Max) {
		if t.IsMinor() {
			continue
		}
		if w := a.Tick.Label.Width(t.Label); w > labels {
			labels = w
		}
	}

	width := a.Tick.Length + a.Padding + labels
	if a.Label.Text != "" {
		width += a.Label.Padding + a.Label.TextStyle.Height(a.Label.Text)
	}
	return width
}

// drawSecondaryAxis draws a's line, ticks and labels along the right side of
// the data canvas da. The axis label goes at the right edge of c.
func drawSecondaryAxis(c draw.Canvas, da draw.Canvas, a *plot.Axis) {
	x := da.Max.X
	c.StrokeLine2(a.LineStyle, x, da.Min.Y, x, da.Max.Y)

	labelStyle := a.Tick.Label
	labelStyle.XAlign = text.XLeft
	labelStyle.YAlign = text.YCenter

	for _, t := range a.Tick.Marker.Ticks(a.Min, a.Max) {
		if t.Value < a.Min || t.Value > a.Max {
			continue
		}

		y := da.Y(a.Norm(t.Value))
		length := a.Tick.Length
		if t.IsMinor() {
			length /= 2
		}
		c.StrokeLine2(a.Tick.LineStyle, x, y, x+length, y)

		if !t.IsMinor() {
			c.FillText(labelStyle, vg.Point{X: x + a.Tick.Length + a.Padding, Y: y}, t.Label)
		}
	}

	if a.Label.Text == "" {
		return
	}

	titleStyle := a.Label.TextStyle
	titleStyle.Rotation = math.Pi / 2
	titleStyle.XAlign = text.XCenter
	titleStyle.YAlign = text.YCenter

	h := titleStyle.Height(a.Label.Text)
	c.FillText(titleStyle, vg.Point{X: c.Max.X - h/2, Y: (da.Min.Y + da.Max.Y) / 2}, a.Label.Text)
}
