package mnvplot

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Hist2D is a 2D histogram. Bins are stored row-major: bin (ix, iy) lives at
// ix + iy*nx.
type Hist2D struct {
	Name   string
	Title  string
	XTitle string
	YTitle string

	XEdges []float64
	YEdges []float64
	SumW   []float64
	SumW2  []float64
}

// NewHist2D returns an empty 2D histogram over the given edges.
func NewHist2D(name string, xEdges, yEdges []float64) *Hist2D {
	// borrow the 1D edge checks
	NewHist(name, xEdges)
	NewHist(name, yEdges)
	n := (len(xEdges) - 1) * (len(yEdges) - 1)
	return &Hist2D{
		Name:   name,
		Title:  name,
		XEdges: append([]float64(nil), xEdges...),
		YEdges: append([]float64(nil), yEdges...),
		SumW:   make([]float64, n),
		SumW2:  make([]float64, n),
	}
}

// Dims returns the number of bins along x and y.
func (h *Hist2D) Dims() (nx, ny int) { return len(h.XEdges) - 1, len(h.YEdges) - 1 }

func (h *Hist2D) index(ix, iy int) int {
	nx, _ := h.Dims()
	return ix + iy*nx
}

// At returns the content of bin (ix, iy).
func (h *Hist2D) At(ix, iy int) float64 { return h.SumW[h.index(ix, iy)] }

// Set overwrites bin (ix, iy) with a content and its variance.
func (h *Hist2D) Set(ix, iy int, w, w2 float64) {
	i := h.index(ix, iy)
	h.SumW[i] = w
	h.SumW2[i] = w2
}

// Clone returns a deep copy of h.
func (h *Hist2D) Clone() *Hist2D {
	c := *h
	c.XEdges = append([]float64(nil), h.XEdges...)
	c.YEdges = append([]float64(nil), h.YEdges...)
	c.SumW = append([]float64(nil), h.SumW...)
	c.SumW2 = append([]float64(nil), h.SumW2...)
	return &c
}

// Add adds o to h bin by bin.
func (h *Hist2D) Add(o *Hist2D) error {
	if !floats.Equal(h.XEdges, o.XEdges) || !floats.Equal(h.YEdges, o.YEdges) {
		return errors.Wrapf(ErrBinning, "could not add %s to %s", o.Name, h.Name)
	}
	floats.Add(h.SumW, o.SumW)
	floats.Add(h.SumW2, o.SumW2)
	return nil
}

// ProjectionX sums the y bins lo through hi inclusive onto the x axis.
func (h *Hist2D) ProjectionX(name string, lo, hi int) *Hist {
	nx, ny := h.Dims()
	lo, hi = clampRange(lo, hi, ny)
	p := NewHist(name, h.XEdges)
	p.XTitle = h.XTitle
	for iy := lo; iy <= hi; iy++ {
		for ix := 0; ix < nx; ix++ {
			i := h.index(ix, iy)
			p.SumW[ix] += h.SumW[i]
			p.SumW2[ix] += h.SumW2[i]
		}
	}
	return p
}

// ProjectionY sums the x bins lo through hi inclusive onto the y axis.
func (h *Hist2D) ProjectionY(name string, lo, hi int) *Hist {
	nx, ny := h.Dims()
	lo, hi = clampRange(lo, hi, nx)
	p := NewHist(name, h.YEdges)
	p.XTitle = h.YTitle
	for iy := 0; iy < ny; iy++ {
		for ix := lo; ix <= hi; ix++ {
			i := h.index(ix, iy)
			p.SumW[iy] += h.SumW[i]
			p.SumW2[iy] += h.SumW2[i]
		}
	}
	return p
}

func clampRange(lo, hi, n int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi >= n {
		hi = n - 1
	}
	return lo, hi
}
