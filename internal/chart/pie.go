package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Pie implements plot.Plotter, drawing values as wedges of a circle
// centered in the data area. Each wedge is labelled with its name outside
// the circle and its percentage of the total inside.
type Pie struct {
	Values []float64
	Labels []string
	Colors []color.Color

	// StartAngle is where the first wedge begins, in radians
	// counterclockwise from the positive x axis.
	StartAngle float64

	// RadiusRatio scales the radius against half the shorter canvas side.
	RadiusRatio float64

	// TextStyle is used for labels. A zero value borrows the plot's
	// legend style.
	TextStyle draw.TextStyle
}

// NewPie returns a pie of values, starting at 12 o'clock like a clock face.
func NewPie(values []float64, labels []string, colors ...color.Color) (*Pie, error) {
	if len(values) != len(labels) {
		return nil, fmt.Errorf("pie: %d values but %d labels", len(values), len(labels))
	}
	total := 0.0
	for _, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("pie: invalid value %v", v)
		}
		total += v
	}
	if total == 0 {
		return nil, fmt.Errorf("pie: values sum to zero")
	}
	if len(colors) == 0 {
		colors = []color.Color{color.Gray{Y: 180}}
	}
	return &Pie{
		Values:      values,
		Labels:      labels,
		Colors:      colors,
		StartAngle:  math.Pi / 2,
		RadiusRatio: 0.7,
	}, nil
}

// Plot implements plot.Plotter.
func (p *Pie) Plot(c draw.Canvas, plt *plot.Plot) {
	sty := p.TextStyle
	if sty.Handler == nil {
		sty = plt.Legend.TextStyle
	}
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YCenter

	size := c.Max.Sub(c.Min)
	center := c.Min.Add(size.Scale(0.5))
	radius := min(size.X, size.Y) / 2 * vg.Length(p.RadiusRatio)

	total := 0.0
	for _, v := range p.Values {
		total += v
	}

	angle := p.StartAngle
	for i, v := range p.Values {
		sweep := 2 * math.Pi * v / total

		var wedge vg.Path
		wedge.Move(center)
		wedge.Arc(center, radius, angle, sweep)
		wedge.Close()

		c.SetColor(p.Colors[i%len(p.Colors)])
		c.Fill(wedge)
		c.SetColor(color.White)
		c.SetLineWidth(vg.Points(1))
		c.Stroke(wedge)

		mid := angle + sweep/2
		c.FillText(sty, polar(center, radius*0.6, mid), fmt.Sprintf("%.1f%%", 100*v/total))
		c.FillText(sty, polar(center, radius*1.2, mid), p.Labels[i])

		angle += sweep
	}
}

func polar(center vg.Point, r vg.Length, theta float64) vg.Point {
	return vg.Point{
		X: center.X + r*vg.Length(math.Cos(theta)),
		Y: center.Y + r*vg.Length(math.Sin(theta)),
	}
}
