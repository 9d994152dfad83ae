package main

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrDegenerateRange is returned when an axis would have zero width.
var ErrDegenerateRange = errors.New("degenerate axis range")

// Renderer draws series into image files.
type Renderer interface {
	DrawScatter(pts *Points, path, title string) error
	DrawTimeSeries(series []*TimeSeries, path, title string) error
}

type plottable interface {
	plotter.XYer
	Extrema() (Extrema, error)
}

var palette = []color.Color{
	color.RGBA{R: 255, A: 255},
	color.RGBA{B: 255, A: 255},
	color.RGBA{G: 255, A: 255},
	color.RGBA{G: 255, B: 255, A: 255},
	color.RGBA{R: 255, B: 255, A: 255},
	color.RGBA{R: 255, G: 255, A: 255},
}

// seriesColor skips the first palette entry, series 0 is drawn blue.
func seriesColor(i int) color.Color {
	return palette[(i+1)%len(palette)]
}

// pngRenderer renders with gonum/plot to PNG files of a fixed pixel size.
type pngRenderer struct {
	width, height int
}

func newPNGRenderer(width, height int) *pngRenderer {
	return &pngRenderer{width: width, height: height}
}

func (r *pngRenderer) DrawScatter(pts *Points, path, title string) error {
	return r.draw([]plottable{pts}, path, title, func(int) color.Color { return palette[0] })
}

func (r *pngRenderer) DrawTimeSeries(series []*TimeSeries, path, title string) error {
	ps := make([]plottable, len(series))
	for i, ts := range series {
		ps[i] = ts
	}
	return r.draw(ps, path, title, seriesColor)
}

func (r *pngRenderer) draw(series []plottable, path, title string, colorOf func(int) color.Color) error {
	xmin, xmax, ymin, ymax, err := axisRange(series)
	if err != nil {
		return fmt.Errorf("draw %s: %w", path, err)
	}

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(20)
	p.Add(plotter.NewGrid())

	for i, s := range series {
		sc, err := plotter.NewScatter(s)
		if err != nil {
			return fmt.Errorf("draw %s: series %d: %w", path, i, err)
		}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(1)
		sc.GlyphStyle.Color = colorOf(i)
		p.Add(sc)
	}

	// Add widens the axes to every series, so the range is fixed afterwards.
	p.X.Min, p.X.Max = xmin, xmax
	p.Y.Min, p.Y.Max = ymin, ymax

	return r.save(p, path)
}

// axisRange rounds the extrema of the first series outwards to whole
// numbers. Later series are not considered; their markers outside that
// range are clipped.
func axisRange(series []plottable) (xmin, xmax, ymin, ymax float64, err error) {
	if len(series) == 0 {
		return 0, 0, 0, 0, ErrEmptySeries
	}
	e, err := series[0].Extrema()
	if err != nil {
		return 0, 0, 0, 0, err
	}
	xmin, xmax = math.Floor(e.XMin), math.Ceil(e.XMax)
	ymin, ymax = math.Floor(e.YMin), math.Ceil(e.YMax)
	if !(xmin < xmax) || !(ymin < ymax) {
		return 0, 0, 0, 0, fmt.Errorf("x [%v, %v] y [%v, %v]: %w", xmin, xmax, ymin, ymax, ErrDegenerateRange)
	}
	return xmin, xmax, ymin, ymax, nil
}

// save renders at 72 DPI so one point is one pixel.
func (r *pngRenderer) save(p *plot.Plot, path string) error {
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(r.width), vg.Length(r.height)),
		vgimg.UseDPI(72),
		vgimg.UseBackgroundColor(color.White),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create png: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(bw); err != nil {
		return fmt.Errorf("cannot write png: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("cannot write png: %w", err)
	}
	return f.Close()
}
