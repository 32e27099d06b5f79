package mnvplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diagonal returns a 3x3 matrix with 10 on the diagonal and 1 elsewhere.
func diagonal() *Hist2D {
	m := NewHist2D("m", []float64{0, 1, 2, 3}, []float64{0, 1, 2, 3})
	for ix := 0; ix < 3; ix++ {
		for iy := 0; iy < 3; iy++ {
			w := 1.0
			if ix == iy {
				w = 10
			}
			m.Set(ix, iy, w, w)
		}
	}
	return m
}

func TestHist2DProjections(t *testing.T) {
	m := diagonal()
	m.Set(2, 0, 5, 5)

	px := m.ProjectionX("px", 0, 0)
	assert.Equal(t, []float64{10, 1, 5}, px.SumW)
	assert.Equal(t, m.XEdges, px.Edges)

	py := m.ProjectionY("py", 1, 2)
	assert.Equal(t, []float64{6, 11, 11}, py.SumW)

	all := m.ProjectionY("all", -1, 99)
	assert.Equal(t, []float64{16, 12, 12}, all.SumW)
}

func TestHist2DAdd(t *testing.T) {
	a := diagonal()
	require.NoError(t, a.Add(diagonal()))
	assert.Equal(t, 20.0, a.At(1, 1))
	assert.Equal(t, 2.0, a.At(0, 1))

	b := NewHist2D("b", []float64{0, 1}, []float64{0, 1})
	assert.ErrorIs(t, a.Add(b), ErrBinning)
}

func TestHist2DClone(t *testing.T) {
	a := diagonal()
	c := a.Clone()
	c.Set(0, 0, 0, 0)
	assert.Equal(t, 10.0, a.At(0, 0))

	nx, ny := a.Dims()
	assert.Equal(t, 3, nx)
	assert.Equal(t, 3, ny)
}
