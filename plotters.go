package mnvplot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrBand draws a shaded box of height Low..High over each bin.
type ErrBand struct {
	Edges []float64
	Low   []float64
	High  []float64
	Color color.Color
}

// NewErrBand returns the band h ± errs. Bins that are not finite are left out
// when drawing.
func NewErrBand(h *Hist, errs []float64) *ErrBand {
	b := &ErrBand{
		Edges: append([]float64(nil), h.Edges...),
		Low:   make([]float64, h.Len()),
		High:  make([]float64, h.Len()),
		Color: mcBandColor,
	}
	for i, v := range h.SumW {
		b.Low[i] = v - errs[i]
		b.High[i] = v + errs[i]
	}
	return b
}

// Plot implements plot.Plotter.
func (b *ErrBand) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i := range b.Low {
		if !Finite(b.Low[i]) || !Finite(b.High[i]) {
			continue
		}
		x0, x1 := trX(b.Edges[i]), trX(b.Edges[i+1])
		y0, y1 := trY(b.Low[i]), trY(b.High[i])
		pts := []vg.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
		c.FillPolygon(b.Color, c.ClipPolygonXY(pts))
	}
}

// DataRange implements plot.DataRanger.
func (b *ErrBand) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = b.Edges[0], b.Edges[len(b.Edges)-1]
	ymin, ymax = math.Inf(+1), math.Inf(-1)
	for i := range b.Low {
		if Finite(b.Low[i]) {
			ymin = math.Min(ymin, b.Low[i])
		}
		if Finite(b.High[i]) {
			ymax = math.Max(ymax, b.High[i])
		}
	}
	if ymin > ymax {
		ymin, ymax = 0, 1
	}
	return xmin, xmax, ymin, ymax
}

// Thumbnail implements plot.Thumbnailer.
func (b *ErrBand) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Max.Y},
	}
	c.FillPolygon(b.Color, c.ClipPolygonXY(pts))
}

// stepXYs outlines the contents of h as a histogram-style step, skipping bins
// that cannot be drawn.
func stepXYs(h *Hist) plotter.XYs {
	xys := make(plotter.XYs, 0, 2*h.Len())
	for i, v := range h.SumW {
		if !Finite(v) {
			continue
		}
		xys = append(xys,
			plotter.XY{X: h.Edges[i], Y: v},
			plotter.XY{X: h.Edges[i+1], Y: v},
		)
	}
	return xys
}

// NewStepLine returns a line tracing the contents of h.
func NewStepLine(h *Hist, c color.Color, width vg.Length) (*plotter.Line, error) {
	l, err := plotter.NewLine(stepXYs(h))
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = width
	return l, nil
}

// NewPoints returns markers at the bin centers of h with vertical bars for
// errs. Bins whose content is not finite are left out and drawn error bars
// are clamped with ClampError.
func NewPoints(h *Hist, errs []float64, width vg.Length) (*plotter.Scatter, *plotter.YErrorBars, error) {
	var pts plotutil.ErrorPoints
	for i, v := range h.SumW {
		if !Finite(v) {
			continue
		}
		e := ClampError(errs[i])
		pts.XYs = append(pts.XYs, plotter.XY{X: h.Center(i), Y: v})
		pts.YErrors = append(pts.YErrors, struct{ Low, High float64 }{e, e})
	}

	s, err := plotter.NewScatter(pts.XYs)
	if err != nil {
		return nil, nil, err
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(2.5)
	s.GlyphStyle.Color = color.Black

	yerr, err := plotter.NewYErrorBars(pts)
	if err != nil {
		return nil, nil, err
	}
	yerr.LineStyle.Width = width
	yerr.LineStyle.Color = color.Black
	return s, yerr, nil
}
