package mnvplot

import (
	"image/color"
	"io"
	"os"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Renderer draws Comparisons as a data/MC overlay on top of a data/MC ratio
// panel.
type Renderer struct {
	Style Style
}

// Save renders c into the PNG file fname.
func (r Renderer) Save(c *Comparison, fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "could not create output")
	}
	if err := r.Render(c, f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "could not close %s", fname)
}

// Render writes c to w as a PNG image.
func (r Renderer) Render(c *Comparison, w io.Writer) error {
	if err := r.Style.Validate(); err != nil {
		return err
	}
	top, err := r.overlay(c)
	if err != nil {
		return err
	}
	bottom, err := r.ratio(c)
	if err != nil {
		return err
	}

	width, height := r.Style.size()
	img := vgimg.New(width, height)
	r.draw(top, bottom, draw.New(img))

	png := vgimg.PngCanvas{Canvas: img}
	_, err = png.WriteTo(w)
	return errors.Wrap(err, "could not encode PNG")
}

// draw places both panels according to the layout. The panels are aligned
// horizontally so their x axes coincide, and the ratio panel is drawn last
// so it covers the overlay's x axis.
func (r Renderer) draw(top, bottom *plot.Plot, dc draw.Canvas) {
	aligned := plot.Align([][]*plot.Plot{{top}, {bottom}}, draw.Tiles{Rows: 2, Cols: 1}, dc)

	height := dc.Max.Y - dc.Min.Y
	tlo, _ := r.Style.Layout.Top()
	_, bhi := r.Style.Layout.Bottom()

	ta, ba := aligned[0][0], aligned[1][0]
	topC := draw.Crop(dc, ta.Min.X-dc.Min.X, ta.Max.X-dc.Max.X, vg.Length(tlo)*height, 0)
	botC := draw.Crop(dc, ba.Min.X-dc.Min.X, ba.Max.X-dc.Max.X, 0, -vg.Length(1-bhi)*height)

	top.Draw(topC)
	bottom.Draw(botC)
}

func (r Renderer) overlay(c *Comparison) (*plot.Plot, error) {
	total := c.Stack.Total()
	lw := r.Style.lineWidth()

	pal, err := r.Style.Colors()
	if err != nil {
		return nil, err
	}
	colors, err := pal.Colors(c.Stack.Len())
	if err != nil {
		return nil, errors.Wrap(err, "could not color the MC layers")
	}

	p := plot.New()
	p.Title.Text = r.Style.Title
	p.Y.Label.Text = c.YTitle
	p.X.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
	p.X.Tick.Label.Color = color.Transparent
	p.Legend.Top = true

	layers := c.Stack.Layers()
	if c.Stacked {
		if err := r.Style.AddStack(p, c.Stack); err != nil {
			return nil, err
		}
	} else {
		band := NewErrBand(total, total.StatErrors())
		p.Add(band)
		p.Legend.Add(c.MCLabel, band)
		for i, layer := range layers {
			h := hplot.NewH1D(layer.Hist.H1D())
			h.FillColor = nil
			h.LineStyle.Color = colors[i]
			h.LineStyle.Width = lw
			h.Infos.Style = hplot.HInfoNone
			p.Add(h)
			p.Legend.Add(layer.Label, h)
		}
	}

	// The total is outlined after the legend is built so it gets no entry.
	line, err := NewStepLine(total, mcLineColor, lw)
	if err != nil {
		return nil, err
	}
	p.Add(line)

	pts, yerr, err := NewPoints(c.Data, c.Data.StatErrors(), lw)
	if err != nil {
		return nil, err
	}
	p.Add(pts, yerr)
	p.Legend.Add(c.DataLabel, pts)

	p.X.Min, p.X.Max = total.XMin(), total.XMax()
	p.Y.Min = 0
	if c.YMax > 0 {
		p.Y.Max = c.YMax
	}

	if err := r.addLabels(p); err != nil {
		return nil, err
	}
	return p, nil
}

// addLabels writes the style's labels in the top left corner of p.
func (r Renderer) addLabels(p *plot.Plot) error {
	if len(r.Style.Labels) == 0 {
		return nil
	}
	var xyl plotter.XYLabels
	dx, dy := p.X.Max-p.X.Min, p.Y.Max-p.Y.Min
	for i, text := range r.Style.Labels {
		xyl.XYs = append(xyl.XYs, plotter.XY{X: p.X.Min + 0.03*dx, Y: p.Y.Max - (0.08+0.07*float64(i))*dy})
		xyl.Labels = append(xyl.Labels, text)
	}
	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return errors.Wrap(err, "could not create labels")
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = labelColor
	}
	p.Add(labels)
	return nil
}

func (r Renderer) ratio(c *Comparison) (*plot.Plot, error) {
	lw := r.Style.lineWidth()

	p := plot.New()
	p.X.Label.Text = c.XTitle
	p.Y.Label.Text = "Data / MC"
	p.X.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = DivisionTicks{Major: 5, Minor: 5}
	p.Legend.Top = true
	p.Legend.Left = true

	band := NewErrBand(c.Reference, c.Reference.StatErrors())
	p.Add(band)
	flat, err := NewStepLine(c.Reference, mcLineColor, lw)
	if err != nil {
		return nil, err
	}
	p.Add(flat)

	for i, m := range c.Models {
		l, err := NewStepLine(m.Hist, color.Black, lw)
		if err != nil {
			return nil, err
		}
		l.LineStyle.Dashes = plotutil.Dashes(i + 1)
		p.Add(l)
		p.Legend.Add(m.Label, l)
	}

	pts, yerr, err := NewPoints(c.Ratio, c.Ratio.StatErrors(), lw)
	if err != nil {
		return nil, err
	}
	p.Add(pts, yerr)
	if len(c.Models) > 0 {
		p.Legend.Add("data", pts)
	}

	p.X.Min, p.X.Max = c.Reference.XMin(), c.Reference.XMax()
	if !r.Style.AutoRatio() {
		p.Y.Min, p.Y.Max = r.Style.RatioMin, r.Style.RatioMax
	}
	return p, nil
}

// NewPlot returns an empty single-panel plot with s's title.
func (s Style) NewPlot() *plot.Plot {
	p := plot.New()
	p.Title.Text = s.Title
	p.X.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
	p.Legend.Top = true
	return p
}

// Save writes p to fname at s's size. The format follows the extension.
func (s Style) Save(p *plot.Plot, fname string) error {
	w, h := s.size()
	return errors.Wrapf(p.Save(w, h, fname), "could not save %s", fname)
}

// AddHists draws each histogram of hs as an unfilled line, colored in order
// from pal, with a legend entry named after its title.
func (s Style) AddHists(p *plot.Plot, pal Palette, hs ...*Hist) error {
	colors, err := pal.Colors(len(hs))
	if err != nil {
		return err
	}
	for i, hist := range hs {
		h := hplot.NewH1D(hist.H1D())
		h.FillColor = nil
		h.LineStyle.Color = colors[i]
		h.LineStyle.Width = s.lineWidth()
		h.Infos.Style = hplot.HInfoNone
		p.Add(h)
		p.Legend.Add(hist.Title, h)
	}
	return nil
}

// AddStack draws stack as filled areas, one color per layer from s's palette,
// with legend entries in stack order.
func (s Style) AddStack(p *plot.Plot, stack *Stack) error {
	pal, err := s.Colors()
	if err != nil {
		return err
	}
	colors, err := pal.Colors(stack.Len())
	if err != nil {
		return errors.Wrap(err, "could not color the stack")
	}

	// Paint the running sums from the top down so that each layer only
	// shows the part it adds.
	hs := make([]*hplot.H1D, stack.Len())
	for i := stack.Len() - 1; i >= 0; i-- {
		h := hplot.NewH1D(stack.Cumulative(i).H1D())
		h.FillColor = colors[i]
		h.LineStyle.Color = colors[i]
		h.LineStyle.Width = 0
		h.Infos.Style = hplot.HInfoNone
		p.Add(h)
		hs[i] = h
	}
	for i, layer := range stack.Layers() {
		p.Legend.Add(layer.Label, hs[i])
	}
	return nil
}

// AddErrorCurves draws fractional error curves over the binning of h. The
// first two curves, the total and the statistical error, are black; the rest
// take s's palette in order.
func (s Style) AddErrorCurves(p *plot.Plot, h *Hist, curves []ErrorCurve, withTotals bool) error {
	pal, err := s.Colors()
	if err != nil {
		return err
	}
	first := 0
	if withTotals {
		first = 2
	}
	if len(curves) < first {
		return errors.Errorf("expected at least %d error curves, got %d", first, len(curves))
	}
	colors, err := pal.Colors(len(curves) - first)
	if err != nil {
		return errors.Wrap(err, "could not color the error curves")
	}

	for i, c := range curves {
		curve := h.Clone()
		copy(curve.SumW, c.Fraction)
		clr := color.Color(color.Black)
		if i >= first {
			clr = colors[i-first]
		}
		l, err := NewStepLine(curve, clr, s.lineWidth())
		if err != nil {
			return err
		}
		if withTotals && i == 1 {
			l.LineStyle.Dashes = plotutil.Dashes(1)
		}
		p.Add(l)
		p.Legend.Add(c.Label, l)
	}
	p.Y.Min = 0
	p.Y.Label.Text = "Fractional Uncertainty"
	return nil
}
