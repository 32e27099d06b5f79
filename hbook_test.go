package mnvplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-hep.org/x/hep/hbook"
)

func TestFromH1D(t *testing.T) {
	hh := hbook.NewH1D(4, 0, 2)
	hh.Fill(0.1, 2)
	hh.Fill(0.2, 1)
	hh.Fill(1.9, 3)
	hh.Fill(5, 100) // overflow

	h := FromH1D("h", hh)
	assert.Equal(t, "h", h.Name)
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, h.Edges)
	assert.Equal(t, []float64{3, 0, 0, 3}, h.SumW)
	assert.Equal(t, []float64{5, 0, 0, 9}, h.SumW2)
}

func TestH1DKeepsContents(t *testing.T) {
	h := NewHistFromValues("h", []float64{0, 1, 3, 6}, []float64{1.5, 0, 7})
	back := FromH1D("back", h.H1D())
	assert.Equal(t, h.Edges, back.Edges)
	assert.Equal(t, h.SumW, back.SumW)
}

func TestH1DKeepsVariances(t *testing.T) {
	h := NewHist("h", []float64{0, 1, 2})
	h.SumW = []float64{4, 2}
	h.SumW2 = []float64{16, 0.5}
	h.Title = "Energy"

	hh := h.H1D()
	assert.Equal(t, "h", hh.Name())
	assert.Equal(t, []float64{16, 0.5}, FromH1D("back", hh).SumW2)
}

func TestH2DRoundTrip(t *testing.T) {
	h := NewHist2D("m", []float64{0, 1, 3}, []float64{0, 10, 20, 30})
	h.Set(0, 0, 1, 1)
	h.Set(1, 0, 2, 0.25)
	h.Set(1, 2, 4, 9)

	back := FromH2D("m", h.H2D())
	assert.Equal(t, h.XEdges, back.XEdges)
	assert.Equal(t, h.YEdges, back.YEdges)
	assert.Equal(t, h.SumW, back.SumW)
	assert.Equal(t, h.SumW2, back.SumW2)
}

func TestFromH2D(t *testing.T) {
	hh := hbook.NewH2D(2, 0, 2, 3, 0, 30)
	hh.Fill(0.5, 5, 1)
	hh.Fill(1.5, 5, 2)
	hh.Fill(1.5, 25, 4)

	h := FromH2D("m", hh)
	require.Equal(t, []float64{0, 1, 2}, h.XEdges)
	require.Equal(t, []float64{0, 10, 20, 30}, h.YEdges)
	assert.Equal(t, 1.0, h.At(0, 0))
	assert.Equal(t, 2.0, h.At(1, 0))
	assert.Equal(t, 4.0, h.At(1, 2))
	assert.Equal(t, 0.0, h.At(0, 2))
}
