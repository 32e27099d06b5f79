package rootfile

import (
	"strconv"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rbase"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/root"

	"github.com/decibelcooper/mnvplot"
)

// Write saves the histograms and exposure records of s into a new ROOT file,
// laid out the way Open reads them back. Exposures are written as
// TObjStrings. Axis titles are not kept.
func Write(fname string, s mnvplot.Store) error {
	f, err := groot.Create(fname)
	if err != nil {
		return errors.Wrapf(err, "failed to create a file named %s", fname)
	}
	defer f.Close()

	var banded []*mnvplot.Hist
	for _, k := range s.Keys() {
		var obj root.Object
		switch k.Kind {
		case mnvplot.KindHist1D:
			h, err := s.Hist1D(k.Name)
			if err != nil {
				return err
			}
			obj = rhist.NewH1DFrom(h.H1D())
			if len(h.BandNames()) > 0 {
				banded = append(banded, h)
			}
		case mnvplot.KindHist2D:
			h, err := s.Hist2D(k.Name)
			if err != nil {
				return err
			}
			obj = rhist.NewH2DFrom(h.H2D())
		case mnvplot.KindExposure:
			v, err := s.Exposure(k.Name)
			if err != nil {
				return err
			}
			obj = rbase.NewObjString(strconv.FormatFloat(v, 'g', -1, 64))
		default:
			continue
		}
		if err := f.Put(k.Name, obj); err != nil {
			return errors.Wrapf(err, "could not write %q to %s", k.Name, fname)
		}
	}

	for _, h := range banded {
		if err := writeBands(f, h); err != nil {
			return errors.Wrapf(err, "could not write the error bands of %q to %s", h.Name, fname)
		}
	}

	return f.Close()
}

// writeBands stores each band of h as a TH2 whose y bins are the universes.
func writeBands(f *riofs.File, h *mnvplot.Hist) error {
	dir, err := riofs.Dir(f).Mkdir(BandDir + "/" + h.Name)
	if err != nil {
		return err
	}
	for _, name := range h.BandNames() {
		band := h.Band(name)
		if len(band.Universes) == 0 {
			continue
		}
		yEdges := make([]float64, len(band.Universes)+1)
		for i := range yEdges {
			yEdges[i] = float64(i)
		}
		grid := mnvplot.NewHist2D(name, h.Edges, yEdges)
		for u, universe := range band.Universes {
			for i, w := range universe {
				grid.Set(i, u, w, 0)
			}
		}
		if err := dir.Put(name, rhist.NewH2DFrom(grid.H2D())); err != nil {
			return err
		}
	}
	return nil
}
