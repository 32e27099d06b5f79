package mnvplot

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func testComparison(t *testing.T, stacked bool) *Comparison {
	mc := []*Hist{threeBins("Signal", 5, 10, 15), threeBins("Background", 1, 2, 3)}
	c, err := CompareDataMC(threeBins("data", 6, 11, 19), mc, StatOnly)
	require.NoError(t, err)
	c.Stacked = stacked
	return c
}

func TestRender(t *testing.T) {
	for _, stacked := range []bool{false, true} {
		var buf bytes.Buffer
		require.NoError(t, Renderer{Style: DefaultStyle()}.Render(testComparison(t, stacked), &buf))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic), "stacked=%v", stacked)
	}
}

func TestRenderWithModelsAndEmptyBins(t *testing.T) {
	c := testComparison(t, false)
	c.Ratio.SumW[1] = math.NaN()
	c.YMax = 40
	require.NoError(t, c.AddModel("noFSI", []*Hist{threeBins("alt", 6, 12, 20)}))

	var buf bytes.Buffer
	require.NoError(t, Renderer{Style: DefaultStyle()}.Render(c, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestRenderTooManyLayers(t *testing.T) {
	st := DefaultStyle()
	st.Palette = []string{"black"}

	var buf bytes.Buffer
	err := Renderer{Style: st}.Render(testComparison(t, true), &buf)
	var palErr *PaletteError
	assert.ErrorAs(t, err, &palErr)
}

func TestRenderInvalidStyle(t *testing.T) {
	st := DefaultStyle()
	st.RatioMin = 2
	var buf bytes.Buffer
	assert.Error(t, Renderer{Style: st}.Render(testComparison(t, false), &buf))
	assert.Zero(t, buf.Len())
}

func TestRenderAutoRatioRange(t *testing.T) {
	c := testComparison(t, false)

	fixed, err := Renderer{Style: DefaultStyle()}.ratio(c)
	require.NoError(t, err)
	assert.Equal(t, 0.5, fixed.Y.Min)
	assert.Equal(t, 1.5, fixed.Y.Max)

	st := DefaultStyle()
	st.RatioMin, st.RatioMax = 0, 0
	auto, err := Renderer{Style: st}.ratio(c)
	require.NoError(t, err)
	assert.Greater(t, auto.Y.Max, 19.0/18)
	assert.Less(t, auto.Y.Min, 11.0/12)
	assert.Greater(t, auto.Y.Min, 0.0)

	var buf bytes.Buffer
	require.NoError(t, Renderer{Style: st}.Render(c, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestSave(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "ratio.png")
	require.NoError(t, Renderer{Style: DefaultStyle()}.Save(testComparison(t, true), fname))

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestSinglePanelHelpers(t *testing.T) {
	st := DefaultStyle()
	h := threeBins("signal", 10, 20, 30)
	require.NoError(t, h.AddBand("Flux", [][]float64{{11, 22, 33}}))
	groups := ErrorGroups{"Flux": {"Flux"}}

	p := st.NewPlot()
	require.NoError(t, st.AddErrorCurves(p, h, ErrorSummary(h, groups), true))
	stack, err := BuildStack([]*Hist{h, threeBins("bkg", 1, 1, 1)})
	require.NoError(t, err)
	q := st.NewPlot()
	require.NoError(t, st.AddStack(q, stack))
	require.NoError(t, st.AddHists(q, OkabeIto, threeBins("line", 3, 2, 1)))

	dir := t.TempDir()
	require.NoError(t, st.Save(p, filepath.Join(dir, "errors.png")))
	require.NoError(t, st.Save(q, filepath.Join(dir, "stack.png")))

	assert.Error(t, st.AddErrorCurves(p, h, nil, true))
	assert.Error(t, st.AddHists(p, Palette{}, h))
}
