package rootfile

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/riofs"

	"github.com/decibelcooper/mnvplot"
)

func TestClassify(t *testing.T) {
	for class, want := range map[string]mnvplot.Kind{
		"TH1D":               mnvplot.KindHist1D,
		"TH1F":               mnvplot.KindHist1D,
		"TH2D":               mnvplot.KindHist2D,
		"TObjString":         mnvplot.KindExposure,
		"TParameter<double>": mnvplot.KindExposure,
		"TDirectoryFile":     mnvplot.KindDir,
		"PlotUtils::MnvH1D":  mnvplot.KindUnknown,
		"PlotUtils::MnvH2D":  mnvplot.KindUnknown,
		"TProfile":           mnvplot.KindUnknown,
		"TTree":              mnvplot.KindUnknown,
		"TH3D":               mnvplot.KindUnknown,
	} {
		assert.Equal(t, want, Classify(class), class)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open("does-not-exist.root")
	assert.Error(t, err)
}

func sampleStore(t *testing.T) *mnvplot.MemStore {
	t.Helper()

	edges := []float64{0, 0.5, 1, 2}
	qe := mnvplot.NewHistFromValues("Tracker_EAvailable_QE", edges, []float64{10, 20, 30})
	qe.Title = "Available energy"
	require.NoError(t, qe.AddBand("flux", [][]float64{{11, 21, 31}}))
	res := mnvplot.NewHistFromValues("Tracker_EAvailable_RES", edges, []float64{1, 2, 3})

	migration := mnvplot.NewHist2D("Tracker_Migration", []float64{0, 1, 2}, []float64{0, 1, 2})
	migration.Set(0, 0, 5, 5)
	migration.Set(1, 1, 7, 7)

	s := mnvplot.NewMemStore("mc.root")
	s.PutHist1D(qe.Name, qe)
	s.PutHist1D(res.Name, res)
	s.PutHist2D(migration.Name, migration)
	s.PutExposure(mnvplot.ExposureName, 2e20)
	s.PutOther("notes")
	return s
}

func TestWriteThenOpen(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "mc.root")
	require.NoError(t, Write(fname, sampleStore(t)))

	f, err := Open(fname)
	require.NoError(t, err)
	defer f.Close()

	want := []mnvplot.Key{
		{Name: "Tracker_EAvailable_QE", Kind: mnvplot.KindHist1D},
		{Name: "Tracker_EAvailable_RES", Kind: mnvplot.KindHist1D},
		{Name: "Tracker_Migration", Kind: mnvplot.KindHist2D},
		{Name: mnvplot.ExposureName, Kind: mnvplot.KindExposure},
		{Name: BandDir, Kind: mnvplot.KindDir},
	}
	if diff := cmp.Diff(want, f.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	found, err := mnvplot.Select(f, "Tracker_EAvailable_(.*)")
	require.NoError(t, err)
	require.Len(t, found, 2)
	qe, res := found[0], found[1]

	assert.Equal(t, "Tracker_EAvailable_QE", qe.Name)
	assert.Equal(t, "Available energy", qe.Title)
	assert.Equal(t, []float64{0, 0.5, 1, 2}, qe.Edges)
	assert.Equal(t, []float64{10, 20, 30}, qe.SumW)
	assert.Equal(t, []float64{10, 20, 30}, qe.SumW2)
	assert.Equal(t, []string{"flux"}, qe.BandNames())
	assert.InDeltaSlice(t, []float64{1, 1, 1}, qe.BandErrors("flux"), 1e-12)
	assert.Empty(t, res.BandNames())

	m, err := f.Hist2D("Tracker_Migration")
	require.NoError(t, err)
	assert.Equal(t, 5.0, m.At(0, 0))
	assert.Equal(t, 7.0, m.At(1, 1))
	assert.Equal(t, 0.0, m.At(1, 0))

	pot, err := f.Exposure(mnvplot.ExposureName)
	require.NoError(t, err)
	assert.Equal(t, 2e20, pot)

	_, err = f.Hist1D("Tracker_Migration")
	var typeErr *mnvplot.TypeError
	assert.True(t, errors.As(err, &typeErr))

	_, err = f.Exposure("nothing")
	var missing *mnvplot.MissingError
	assert.True(t, errors.As(err, &missing))
}

func TestBandBinningMismatch(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "bad.root")

	w, err := groot.Create(fname)
	require.NoError(t, err)
	h := mnvplot.NewHistFromValues("h", []float64{0, 1, 2, 3}, []float64{1, 2, 3})
	require.NoError(t, w.Put("h", rhist.NewH1DFrom(h.H1D())))
	dir, err := riofs.Dir(w).Mkdir(BandDir + "/h")
	require.NoError(t, err)
	band := mnvplot.NewHist2D("flux", []float64{0, 1, 2}, []float64{0, 1})
	require.NoError(t, dir.Put("flux", rhist.NewH2DFrom(band.H2D())))
	require.NoError(t, w.Close())

	f, err := Open(fname)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Hist1D("h")
	assert.True(t, errors.Is(err, mnvplot.ErrBinning), "got %v", err)

	_, err = mnvplot.Select(f, "h")
	assert.Error(t, err, "a broken band is not skipped")
}

// streamed has the shape groot gives a class it only knows by streamer.
type streamed struct {
	v interface{}
}

func TestParameterValue(t *testing.T) {
	param := &streamed{v: &struct {
		ROOT_TObject struct{ ROOT_fUniqueID uint32 }
		ROOT_fName   string
		ROOT_fVal    float64
	}{ROOT_fName: "POTUsed", ROOT_fVal: 3.5e20}}

	v, ok := parameterValue(reflect.ValueOf(param), 4)
	require.True(t, ok)
	assert.Equal(t, 3.5e20, v)

	_, ok = parameterValue(reflect.ValueOf(&streamed{v: &struct{ ROOT_fName string }{}}), 4)
	assert.False(t, ok)

	_, ok = parameterValue(reflect.ValueOf(&streamed{}), 4)
	assert.False(t, ok)
}
