package mnvplot

import (
	"sort"

	"go-hep.org/x/hep/hbook"
)

// FromH1D converts an hbook histogram into a Hist with no error bands.
// Under- and overflow are dropped.
func FromH1D(name string, hh *hbook.H1D) *Hist {
	bins := hh.Binning.Bins
	edges := make([]float64, len(bins)+1)
	for i, bin := range bins {
		edges[i] = bin.XMin()
	}
	edges[len(bins)] = bins[len(bins)-1].XMax()

	h := NewHist(name, edges)
	for i, bin := range bins {
		h.SumW[i] = bin.SumW()
		h.SumW2[i] = bin.SumW2()
	}
	return h
}

// H1D converts the central value of h into an hbook histogram. Bin contents
// and their variances survive the conversion; error bands do not.
func (h *Hist) H1D() *hbook.H1D {
	hh := hbook.NewH1DFromEdges(h.Edges)
	for i, w := range h.SumW {
		hh.Fill(h.Center(i), w)
		hh.Binning.Bins[i].Dist.Dist.SumW2 = h.SumW2[i]
	}
	ann := hh.Annotation()
	ann["name"] = h.Name
	ann["title"] = h.Title
	return hh
}

// H2D converts h into an hbook histogram.
func (h *Hist2D) H2D() *hbook.H2D {
	hh := hbook.NewH2DFromEdges(h.XEdges, h.YEdges)
	nx, ny := h.Dims()
	for iy := 0; iy < ny; iy++ {
		for ix := 0; ix < nx; ix++ {
			x := 0.5 * (h.XEdges[ix] + h.XEdges[ix+1])
			y := 0.5 * (h.YEdges[iy] + h.YEdges[iy+1])
			hh.Fill(x, y, h.At(ix, iy))
		}
	}
	for i := range hh.Binning.Bins {
		bin := &hh.Binning.Bins[i]
		ix := sort.SearchFloat64s(h.XEdges, bin.XMin())
		iy := sort.SearchFloat64s(h.YEdges, bin.YMin())
		w2 := h.SumW2[h.index(ix, iy)]
		bin.Dist.X.Dist.SumW2 = w2
		bin.Dist.Y.Dist.SumW2 = w2
	}
	ann := hh.Annotation()
	ann["name"] = h.Name
	ann["title"] = h.Title
	return hh
}

// FromH2D converts an hbook 2D histogram into a Hist2D. The bin layout is
// recovered from the bins' own ranges, so it does not depend on hbook's
// storage order.
func FromH2D(name string, hh *hbook.H2D) *Hist2D {
	bins := hh.Binning.Bins
	var xs, ys []float64
	xmax, ymax := bins[0].XMax(), bins[0].YMax()
	for _, bin := range bins {
		xs = append(xs, bin.XMin())
		ys = append(ys, bin.YMin())
		if bin.XMax() > xmax {
			xmax = bin.XMax()
		}
		if bin.YMax() > ymax {
			ymax = bin.YMax()
		}
	}
	xEdges := append(uniqueSorted(xs), xmax)
	yEdges := append(uniqueSorted(ys), ymax)

	h := NewHist2D(name, xEdges, yEdges)
	for _, bin := range bins {
		ix := sort.SearchFloat64s(xEdges, bin.XMin())
		iy := sort.SearchFloat64s(yEdges, bin.YMin())
		i := h.index(ix, iy)
		h.SumW[i] += bin.SumW()
		h.SumW2[i] += bin.SumW2()
	}
	return h
}

func uniqueSorted(vs []float64) []float64 {
	sort.Float64s(vs)
	out := vs[:0]
	for i, v := range vs {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
