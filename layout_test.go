package mnvplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout
	assert.NoError(t, l.Validate())

	lo, hi := l.Top()
	assert.Equal(t, 0.2, lo)
	assert.Equal(t, 1.0, hi)

	lo, hi = l.Bottom()
	assert.Equal(t, 0.0, lo)
	assert.InDelta(t, 0.278, hi, 1e-12)
	assert.InDelta(t, 0.078, l.Overlap(), 1e-12)
}

func TestLayoutValidate(t *testing.T) {
	for _, l := range []Layout{
		{BottomFraction: 0, Margin: 0.1},
		{BottomFraction: 1, Margin: 0},
		{BottomFraction: 0.3, Margin: -0.1},
		{BottomFraction: 0.6, Margin: 0.5},
	} {
		assert.Error(t, l.Validate(), "%+v", l)
	}
}
