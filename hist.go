package mnvplot

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// ErrBinning is returned when two histograms that must share a binning do not.
var ErrBinning = errors.New("mnvplot: incompatible binning")

// ErrorMode selects which uncertainties an error query includes.
type ErrorMode int

const (
	StatOnly ErrorMode = iota
	SysOnly
	StatAndSys
)

// ErrorBand is one source of systematic uncertainty: a set of alternate
// universes, each a full vector of bin contents.
type ErrorBand struct {
	Name      string
	Universes [][]float64
}

func (b *ErrorBand) clone() *ErrorBand {
	c := &ErrorBand{Name: b.Name, Universes: make([][]float64, len(b.Universes))}
	for i, u := range b.Universes {
		c.Universes[i] = append([]float64(nil), u...)
	}
	return c
}

// Errors returns the per-bin RMS deviation of the universes from cv.
func (b *ErrorBand) Errors(cv []float64) []float64 {
	errs := make([]float64, len(cv))
	if len(b.Universes) == 0 {
		return errs
	}
	for i := range cv {
		var sum float64
		for _, u := range b.Universes {
			d := u[i] - cv[i]
			sum += d * d
		}
		errs[i] = math.Sqrt(sum / float64(len(b.Universes)))
	}
	return errs
}

// Hist is a 1D multi-universe histogram. The central value lives in SumW with
// its statistical variance in SumW2; systematic variations live in the error
// bands. The bin count is fixed at creation.
type Hist struct {
	Name   string
	Title  string
	XTitle string
	YTitle string

	Edges []float64
	SumW  []float64
	SumW2 []float64

	bands []*ErrorBand
}

// NewHist returns an empty histogram over the given bin edges.
func NewHist(name string, edges []float64) *Hist {
	if len(edges) < 2 {
		panic("mnvplot: a histogram needs at least 2 bin edges")
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			panic("mnvplot: bin edges must be strictly increasing")
		}
	}
	n := len(edges) - 1
	return &Hist{
		Name:  name,
		Title: name,
		Edges: append([]float64(nil), edges...),
		SumW:  make([]float64, n),
		SumW2: make([]float64, n),
	}
}

// NewHistFromValues returns a histogram holding values with Poisson
// statistical variances.
func NewHistFromValues(name string, edges, values []float64) *Hist {
	h := NewHist(name, edges)
	if len(values) != h.Len() {
		panic("mnvplot: number of values does not match number of bins")
	}
	copy(h.SumW, values)
	for i, v := range values {
		h.SumW2[i] = math.Abs(v)
	}
	return h
}

// Len returns the number of bins.
func (h *Hist) Len() int { return len(h.SumW) }

// XMin returns the low edge of the first bin.
func (h *Hist) XMin() float64 { return h.Edges[0] }

// XMax returns the high edge of the last bin.
func (h *Hist) XMax() float64 { return h.Edges[len(h.Edges)-1] }

// Center returns the middle of bin i.
func (h *Hist) Center(i int) float64 { return 0.5 * (h.Edges[i] + h.Edges[i+1]) }

// Clone returns a deep copy of h.
func (h *Hist) Clone() *Hist {
	c := *h
	c.Edges = append([]float64(nil), h.Edges...)
	c.SumW = append([]float64(nil), h.SumW...)
	c.SumW2 = append([]float64(nil), h.SumW2...)
	c.bands = make([]*ErrorBand, len(h.bands))
	for i, b := range h.bands {
		c.bands[i] = b.clone()
	}
	return &c
}

// SameBinning reports whether h and o have identical bin edges.
func (h *Hist) SameBinning(o *Hist) bool {
	return floats.Equal(h.Edges, o.Edges)
}

// AddBand attaches a vertical error band to h. Every universe must have one
// entry per bin.
func (h *Hist) AddBand(name string, universes [][]float64) error {
	if h.Band(name) != nil {
		return errors.Errorf("mnvplot: %s already has an error band named %q", h.Name, name)
	}
	b := &ErrorBand{Name: name, Universes: make([][]float64, len(universes))}
	for i, u := range universes {
		if len(u) != h.Len() {
			return errors.Wrapf(ErrBinning, "universe %d of band %q has %d bins, %s has %d", i, name, len(u), h.Name, h.Len())
		}
		b.Universes[i] = append([]float64(nil), u...)
	}
	h.bands = append(h.bands, b)
	return nil
}

// Band returns the error band with the given name or nil.
func (h *Hist) Band(name string) *ErrorBand {
	for _, b := range h.bands {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// BandNames returns the names of the error bands in the order they were added.
func (h *Hist) BandNames() []string {
	names := make([]string, len(h.bands))
	for i, b := range h.bands {
		names[i] = b.Name
	}
	return names
}

// Scale multiplies h by f in place and returns h: contents and universes by f,
// statistical variances by f*f.
func (h *Hist) Scale(f float64) *Hist {
	floats.Scale(f, h.SumW)
	floats.Scale(f*f, h.SumW2)
	for _, b := range h.bands {
		for _, u := range b.Universes {
			floats.Scale(f, u)
		}
	}
	return h
}

// Add adds o to h bin by bin. A band that only one of the two histograms
// carries is combined with the other one's central value.
func (h *Hist) Add(o *Hist) error {
	if !h.SameBinning(o) {
		return errors.Wrapf(ErrBinning, "could not add %s to %s", o.Name, h.Name)
	}
	h.combineBands(o, func(dst, a, b []float64) { floats.AddTo(dst, a, b) })
	floats.Add(h.SumW, o.SumW)
	floats.Add(h.SumW2, o.SumW2)
	return nil
}

// combineBands applies op universe by universe, before h's central value
// changes. Bands missing on either side are stood in for by the central value.
func (h *Hist) combineBands(o *Hist, op func(dst, a, b []float64)) {
	for _, b := range h.bands {
		ob := o.Band(b.Name)
		for i, u := range b.Universes {
			other := o.SumW
			if ob != nil && i < len(ob.Universes) {
				other = ob.Universes[i]
			}
			op(u, u, other)
		}
	}
	for _, ob := range o.bands {
		if h.Band(ob.Name) != nil {
			continue
		}
		nb := &ErrorBand{Name: ob.Name, Universes: make([][]float64, len(ob.Universes))}
		for i, u := range ob.Universes {
			nb.Universes[i] = make([]float64, h.Len())
			op(nb.Universes[i], h.SumW, u)
		}
		h.bands = append(h.bands, nb)
	}
}

// StatErrors returns the per-bin statistical uncertainty.
func (h *Hist) StatErrors() []float64 {
	errs := make([]float64, h.Len())
	for i, w2 := range h.SumW2 {
		errs[i] = math.Sqrt(math.Abs(w2))
	}
	return errs
}

// BandErrors returns the per-bin uncertainty from one error band, or nil if h
// has no such band.
func (h *Hist) BandErrors(name string) []float64 {
	b := h.Band(name)
	if b == nil {
		return nil
	}
	return b.Errors(h.SumW)
}

// SysErrors returns the per-bin quadrature sum of all error bands.
func (h *Hist) SysErrors() []float64 {
	sum2 := make([]float64, h.Len())
	for _, b := range h.bands {
		for i, e := range b.Errors(h.SumW) {
			sum2[i] += e * e
		}
	}
	for i, v := range sum2 {
		sum2[i] = math.Sqrt(v)
	}
	return sum2
}

// Errors returns the per-bin uncertainty selected by mode.
func (h *Hist) Errors(mode ErrorMode) []float64 {
	switch mode {
	case StatOnly:
		return h.StatErrors()
	case SysOnly:
		return h.SysErrors()
	}
	stat, sys := h.StatErrors(), h.SysErrors()
	for i := range stat {
		stat[i] = math.Hypot(stat[i], sys[i])
	}
	return stat
}

// Max returns the largest bin content.
func (h *Hist) Max() float64 { return floats.Max(h.SumW) }

// Integral sums the contents of bins lo through hi inclusive, clamped to the
// histogram's range.
func (h *Hist) Integral(lo, hi int) float64 {
	if lo < 0 {
		lo = 0
	}
	if hi >= h.Len() {
		hi = h.Len() - 1
	}
	if hi < lo {
		return 0
	}
	return floats.Sum(h.SumW[lo : hi+1])
}
