package mnvplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStack(t *testing.T) {
	a := threeBins("a", 1, 2, 3)
	b := threeBins("b", 10, 20, 30)
	b.Title = "Background"
	c := threeBins("c", 100, 200, 300)
	c.Title = ""

	s, err := BuildStack([]*Hist{a, b, c})
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	var labels []string
	for _, l := range s.Layers() {
		labels = append(labels, l.Label)
	}
	assert.Equal(t, []string{"a", "Background", "c"}, labels)

	assert.Equal(t, []float64{1, 2, 3}, s.Cumulative(0).SumW)
	assert.Equal(t, []float64{11, 22, 33}, s.Cumulative(1).SumW)
	assert.Equal(t, []float64{111, 222, 333}, s.Total().SumW)
	assert.Same(t, s.Total(), s.Last())

	assert.Equal(t, []float64{1, 2, 3}, a.SumW, "inputs are not modified")
}

func TestBuildStackSingle(t *testing.T) {
	a := threeBins("a", 1, 2, 3)
	s, err := BuildStack([]*Hist{a})
	require.NoError(t, err)
	assert.Equal(t, a.SumW, s.Total().SumW)
	assert.NotSame(t, a, s.Total())
}

func TestBuildStackErrors(t *testing.T) {
	_, err := BuildStack(nil)
	assert.ErrorIs(t, err, ErrEmptyStack)

	_, err = BuildStack([]*Hist{threeBins("a", 1, 2, 3), NewHist("b", []float64{0, 1})})
	assert.ErrorIs(t, err, ErrBinning)
}
