// Package rootfile reads histograms out of ROOT files.
//
// A multi-universe histogram called NAME is stored as a TH1 under NAME with
// its error bands in the directory ErrorBands/NAME: one TH2 per band, whose x
// axis repeats the histogram binning and whose y bins are the universes.
// Exposure records are TParameter<double>s, TObjStrings holding a number,
// or single-bin TH1s.
package rootfile

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rbase"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/root"
	"go-hep.org/x/hep/hbook/rootcnv"

	"github.com/decibelcooper/mnvplot"
)

// BandDir is the top-level directory holding error bands.
const BandDir = "ErrorBands"

// File is a mnvplot.Store backed by a ROOT file.
type File struct {
	name string
	f    *riofs.File
	keys []mnvplot.Key
}

// Open opens the ROOT file fname for reading.
func Open(fname string) (*File, error) {
	f, err := groot.Open(fname)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open a file named %s", fname)
	}

	file := &File{name: fname, f: f}
	for _, k := range f.Keys() {
		file.keys = append(file.keys, mnvplot.Key{Name: k.Name(), Kind: Classify(k.ClassName())})
	}
	return file, nil
}

// Classify maps a ROOT class name onto a mnvplot.Kind. Only classes the
// lookups below can decode get a histogram or exposure kind.
func Classify(class string) mnvplot.Kind {
	switch {
	case strings.HasPrefix(class, "TH1"):
		return mnvplot.KindHist1D
	case strings.HasPrefix(class, "TH2"):
		return mnvplot.KindHist2D
	case class == "TObjString", strings.HasPrefix(class, "TParameter"):
		return mnvplot.KindExposure
	case class == "TDirectory", class == "TDirectoryFile":
		return mnvplot.KindDir
	}
	return mnvplot.KindUnknown
}

func (f *File) Name() string { return f.name }

func (f *File) Keys() []mnvplot.Key { return append([]mnvplot.Key(nil), f.keys...) }

func (f *File) Close() error { return f.f.Close() }

// get looks name up, following slashes into sub-directories.
func (f *File) get(name string) (root.Object, error) {
	obj, err := riofs.Dir(f.f).Get(name)
	if err != nil {
		return nil, &mnvplot.MissingError{Name: name, File: f.name}
	}
	return obj, nil
}

func (f *File) kindOf(obj root.Object) mnvplot.Kind {
	return Classify(obj.Class())
}

// Hist1D reads a 1D histogram together with its error bands.
func (f *File) Hist1D(name string) (*mnvplot.Hist, error) {
	obj, err := f.get(name)
	if err != nil {
		return nil, err
	}
	h1, ok := obj.(rhist.H1)
	if !ok {
		return nil, &mnvplot.TypeError{Name: name, File: f.name, Want: mnvplot.KindHist1D, Got: f.kindOf(obj)}
	}

	h := mnvplot.FromH1D(name, rootcnv.H1D(h1))
	h.Title, h.XTitle, h.YTitle = titles(obj)
	if err := f.readBands(name, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (f *File) readBands(name string, h *mnvplot.Hist) error {
	obj, err := riofs.Dir(f.f).Get(BandDir + "/" + name)
	if err != nil {
		// no bands
		return nil
	}
	dir, ok := obj.(riofs.Directory)
	if !ok {
		return errors.Errorf("%s/%s in %s is not a directory", BandDir, name, f.name)
	}

	for _, k := range dir.Keys() {
		o, err := k.Object()
		if err != nil {
			return errors.Wrapf(err, "could not read error band %s of %s", k.Name(), name)
		}
		h2, ok := o.(rhist.H2)
		if !ok {
			return errors.Errorf("error band %s of %s in %s is a %s, not a TH2", k.Name(), name, f.name, k.ClassName())
		}
		grid := mnvplot.FromH2D(k.Name(), rootcnv.H2D(h2))
		nx, ny := grid.Dims()
		if nx != h.Len() {
			return errors.Wrapf(mnvplot.ErrBinning, "error band %s of %s has %d bins instead of %d", k.Name(), name, nx, h.Len())
		}
		universes := make([][]float64, ny)
		for u := range universes {
			universes[u] = make([]float64, nx)
			for i := range universes[u] {
				universes[u][i] = grid.At(i, u)
			}
		}
		if err := h.AddBand(k.Name(), universes); err != nil {
			return err
		}
	}
	return nil
}

// Hist2D reads a 2D histogram.
func (f *File) Hist2D(name string) (*mnvplot.Hist2D, error) {
	obj, err := f.get(name)
	if err != nil {
		return nil, err
	}
	h2, ok := obj.(rhist.H2)
	if !ok {
		return nil, &mnvplot.TypeError{Name: name, File: f.name, Want: mnvplot.KindHist2D, Got: f.kindOf(obj)}
	}

	h := mnvplot.FromH2D(name, rootcnv.H2D(h2))
	h.Title, h.XTitle, h.YTitle = titles(obj)
	return h, nil
}

// Exposure reads an exposure record.
func (f *File) Exposure(name string) (float64, error) {
	obj, err := f.get(name)
	if err != nil {
		return 0, err
	}

	switch o := obj.(type) {
	case *rbase.ObjString:
		v, err := strconv.ParseFloat(strings.TrimSpace(o.String()), 64)
		if err != nil {
			return 0, errors.Wrapf(err, "exposure %q in %s is not a number", name, f.name)
		}
		return v, nil
	case rhist.H1:
		h := mnvplot.FromH1D(name, rootcnv.H1D(o))
		if h.Len() == 1 {
			return h.SumW[0], nil
		}
	default:
		if v, ok := parameterValue(reflect.ValueOf(obj), 4); ok {
			return v, nil
		}
	}
	return 0, &mnvplot.TypeError{Name: name, File: f.name, Want: mnvplot.KindExposure, Got: f.kindOf(obj)}
}

// parameterValue digs fVal out of a TParameter. groot has no type for it,
// so it comes back as a streamer-built object holding a struct whose
// members are named after the C++ ones.
func parameterValue(v reflect.Value, depth int) (float64, bool) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return 0, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct || depth == 0 {
		return 0, false
	}

	if f := v.FieldByName("ROOT_fVal"); f.IsValid() {
		switch f.Kind() {
		case reflect.Float32, reflect.Float64:
			return f.Float(), true
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return float64(f.Int()), true
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return float64(f.Uint()), true
		}
		return 0, false
	}
	if f := v.FieldByName("v"); f.IsValid() {
		return parameterValue(f, depth-1)
	}
	return 0, false
}

// titles pulls the histogram and axis titles out of a ROOT object, leaving
// blanks for whatever it does not carry.
func titles(obj root.Object) (title, xTitle, yTitle string) {
	if n, ok := obj.(root.Named); ok {
		title = n.Title()
	}
	if h, ok := obj.(interface{ XAxis() rhist.Axis }); ok {
		xTitle = axisTitle(h.XAxis())
	}
	if h, ok := obj.(interface{ YAxis() rhist.Axis }); ok {
		yTitle = axisTitle(h.YAxis())
	}
	return title, xTitle, yTitle
}

func axisTitle(ax rhist.Axis) string {
	if n, ok := ax.(interface{ Title() string }); ok {
		return n.Title()
	}
	return ""
}

var _ mnvplot.Store = (*File)(nil)
