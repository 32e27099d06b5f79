package mnvplot

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalizedComparison walks the whole chain: exposure scaling,
// stacking, and the data/MC ratio.
func TestNormalizedComparison(t *testing.T) {
	dataFile, mcFile := NewMemStore("data.root"), NewMemStore("mc.root")
	dataFile.PutExposure(ExposureName, 1e20)
	mcFile.PutExposure(ExposureName, 2e20)
	mcFile.PutHist1D("Tracker_Background_A", threeBins("Tracker_Background_A", 10, 20, 30))
	mcFile.PutHist1D("Tracker_Background_B", threeBins("Tracker_Background_B", 2, 4, 6))
	dataFile.PutHist1D("Tracker_Data", threeBins("Tracker_Data", 6, 11, 19))

	pot, err := ReadExposureRatio(dataFile, mcFile)
	require.NoError(t, err)
	mc, err := SelectScaled(mcFile, "Tracker_Background_(.*)", pot)
	require.NoError(t, err)
	require.Len(t, mc, 2)
	assert.Equal(t, []float64{5, 10, 15}, mc[0].SumW)

	data, err := dataFile.Hist1D("Tracker_Data")
	require.NoError(t, err)

	c, err := CompareDataMC(data, mc, StatOnly)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 12, 18}, c.Stack.Total().SumW)
	assert.Empty(t, cmp.Diff([]float64{1, 0.91667, 1.05556}, c.Ratio.SumW, cmpopts.EquateApprox(0, 1e-4)))
	assert.Equal(t, []float64{1, 1, 1}, c.Reference.SumW)
	assert.Equal(t, "MC", c.MCLabel)
	assert.Equal(t, "Data", c.DataLabel)
}

func TestAddModel(t *testing.T) {
	c, err := CompareDataMC(threeBins("data", 2, 2, 2), []*Hist{threeBins("mc", 1, 2, 4)}, StatAndSys)
	require.NoError(t, err)

	require.NoError(t, c.AddModel("noFSI", []*Hist{threeBins("a", 1, 1, 1), threeBins("b", 1, 1, 1)}))
	require.Len(t, c.Models, 1)
	assert.Equal(t, "noFSI", c.Models[0].Label)
	assert.Equal(t, []float64{2, 1, 0.5}, c.Models[0].Hist.SumW)

	assert.ErrorIs(t, c.AddModel("empty", nil), ErrEmptyStack)
	assert.ErrorIs(t, c.AddModel("rebinned", []*Hist{NewHist("x", []float64{0, 3})}), ErrBinning)
}

func TestCompareDataMCEmpty(t *testing.T) {
	_, err := CompareDataMC(threeBins("data", 1, 1, 1), nil, StatOnly)
	assert.ErrorIs(t, err, ErrEmptyStack)
}
