// Package chart renders the six-panel sales figure.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/example/sales-analyzer/internal/sales"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	rows = 2
	cols = 3
)

var (
	skyBlue    = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}
	lightCoral = color.RGBA{R: 0xf0, G: 0x80, B: 0x80, A: 0xff}
	lightGreen = color.RGBA{R: 0x90, G: 0xee, B: 0x90, A: 0xff}
	gold       = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	purple     = color.RGBA{R: 0x80, G: 0x00, B: 0x80, A: 0xff}
	gridGray   = color.Gray{Y: 210}

	pieColors = []color.Color{
		color.RGBA{R: 0xff, G: 0x99, B: 0x99, A: 0xff},
		color.RGBA{R: 0x66, G: 0xb3, B: 0xff, A: 0xff},
		color.RGBA{R: 0x99, G: 0xff, B: 0x99, A: 0xff},
	}
)

// Options controls the figure geometry and labels.
type Options struct {
	Width       vg.Length
	Height      vg.Length
	DPI         int
	TopProducts int
	MonthLabels []string
}

// DefaultOptions is a 16x12 inch figure at 300 DPI.
func DefaultOptions() Options {
	return Options{
		Width:       16 * vg.Inch,
		Height:      12 * vg.Inch,
		DPI:         300,
		TopProducts: 5,
		MonthLabels: []string{"Enero", "Febrero", "Marzo"},
	}
}

// Figure is a grid of panels built from one analysis.
type Figure struct {
	opts   Options
	panels []*plot.Plot
}

// New builds every panel of the figure. Panels are laid out row-major:
// category, seller, payment method, city, top products, monthly trend.
func New(a *sales.Analysis, opts Options) (*Figure, error) {
	builders := []func() (*plot.Plot, error){
		func() (*plot.Plot, error) {
			return barPanel(a.Categories, "Ingresos por Categoría", "Categoría", skyBlue, false)
		},
		func() (*plot.Plot, error) {
			return barPanel(a.Sellers, "Ingresos por Vendedor", "Vendedor", lightCoral, false)
		},
		func() (*plot.Plot, error) {
			return piePanel(a.PaymentMethods, "Distribución de Métodos de Pago")
		},
		func() (*plot.Plot, error) {
			return barPanel(a.Cities, "Ingresos por Ciudad", "Ciudad", lightGreen, true)
		},
		func() (*plot.Plot, error) {
			title := fmt.Sprintf("Top %d Productos por Ingresos", opts.TopProducts)
			return barPanel(a.Products.Head(opts.TopProducts), title, "Producto", gold, true)
		},
		func() (*plot.Plot, error) {
			return linePanel(a.Months, "Tendencia de Ingresos Mensuales", opts.MonthLabels)
		},
	}

	f := &Figure{opts: opts}
	for i, build := range builders {
		p, err := build()
		if err != nil {
			return nil, fmt.Errorf("failed to build panel %d: %w", i+1, err)
		}
		f.panels = append(f.panels, p)
	}
	return f, nil
}

// Panels returns the panel titles in layout order.
func (f *Figure) Panels() []string {
	titles := make([]string, len(f.panels))
	for i, p := range f.panels {
		titles[i] = p.Title.Text
	}
	return titles
}

// WriteTo renders the figure as PNG to w.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	img := vgimg.NewWith(vgimg.UseWH(f.opts.Width, f.opts.Height), vgimg.UseDPI(f.opts.DPI))
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Millimeter * 8,
		PadY:      vg.Millimeter * 8,
		PadTop:    vg.Millimeter * 4,
		PadBottom: vg.Millimeter * 4,
		PadLeft:   vg.Millimeter * 4,
		PadRight:  vg.Millimeter * 4,
	}

	grid := make([][]*plot.Plot, rows)
	for r := range grid {
		grid[r] = f.panels[r*cols : (r+1)*cols]
	}

	canvases := plot.Align(grid, tiles, dc)
	for r := range grid {
		for c, p := range grid[r] {
			p.Draw(canvases[r][c])
		}
	}

	return vgimg.PngCanvas{Canvas: img}.WriteTo(w)
}

// Save writes the figure to path as PNG, creating parent directories.
func (f *Figure) Save(path string) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close chart file: %w", cerr)
		}
	}()

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}

func newPanel(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Title.TextStyle.Font.Weight = xfont.WeightBold
	p.Title.Padding = vg.Points(6)
	return p
}

func barPanel(v *sales.View, title, keyLabel string, fill color.Color, horizontal bool) (*plot.Plot, error) {
	p := newPanel(title)

	grid := plotter.NewGrid()
	grid.Horizontal.Color = gridGray
	grid.Vertical.Color = gridGray
	if horizontal {
		p.X.Label.Text = "Ingresos ($)"
		p.Y.Label.Text = keyLabel
		grid.Horizontal.Color = nil
	} else {
		p.X.Label.Text = keyLabel
		p.Y.Label.Text = "Ingresos ($)"
		grid.Vertical.Color = nil
	}
	p.Add(grid)

	values := plotter.Values(v.RevenueValues())
	if len(values) == 0 {
		return p, nil
	}

	bars, err := plotter.NewBarChart(values, vg.Points(22))
	if err != nil {
		return nil, err
	}
	bars.Color = fill
	bars.LineStyle.Color = color.Black
	bars.LineStyle.Width = vg.Points(0.8)
	bars.Horizontal = horizontal
	p.Add(bars)

	if horizontal {
		p.NominalY(v.Keys()...)
	} else {
		p.NominalX(v.Keys()...)
		p.X.Tick.Label.Rotation = math.Pi / 4
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YTop
	}
	return p, nil
}

func piePanel(v *sales.View, title string) (*plot.Plot, error) {
	p := newPanel(title)
	p.HideAxes()

	values := make([]float64, len(v.Rows))
	for i, r := range v.Rows {
		values[i] = float64(r.Transactions)
	}

	pie, err := NewPie(values, v.Keys(), pieColors...)
	if err != nil {
		return nil, err
	}
	p.Add(pie)
	return p, nil
}

func linePanel(v *sales.View, title string, labels []string) (*plot.Plot, error) {
	p := newPanel(title)
	p.X.Label.Text = "Mes"
	p.Y.Label.Text = "Ingresos ($)"
	p.Add(plotter.NewGrid())

	var pts plotter.XYs
	for i, r := range v.Rows {
		if r.Missing {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(i), Y: r.Revenue.InexactFloat64()})
	}

	if len(pts) > 0 {
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.Color = purple
		line.Width = vg.Points(2)

		marks, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		marks.GlyphStyle = draw.GlyphStyle{
			Color:  purple,
			Radius: vg.Points(4),
			Shape:  draw.CircleGlyph{},
		}
		p.Add(line, marks)
	}

	names := make([]string, len(v.Rows))
	for i, r := range v.Rows {
		names[i] = r.Key
		if i < len(labels) {
			names[i] = labels[i]
		}
	}
	p.NominalX(names...)
	p.X.Min = -0.5
	p.X.Max = float64(len(names)) - 0.5
	return p, nil
}
