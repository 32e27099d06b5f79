package mnvplot

import (
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestPaletteColors(t *testing.T) {
	cs, err := OkabeIto.Colors(3)
	require.NoError(t, err)
	assert.Equal(t, []color.Color(OkabeIto[:3]), cs)

	_, err = OkabeIto.Colors(len(OkabeIto) + 1)
	var palErr *PaletteError
	require.True(t, errors.As(err, &palErr))
	assert.Equal(t, len(OkabeIto)+1, palErr.Need)
	assert.Equal(t, len(OkabeIto), palErr.Have)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor(" Red ")
	require.NoError(t, err)
	assert.Equal(t, colornames.Red, c)

	c, err = ParseColor("#0072b2")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x00, G: 0x72, B: 0xb2, A: 0xff}, c)

	c, err = ParseColor("#ff000080")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0x80}, c)

	for _, bad := range []string{"notacolor", "#12345", "#gggggg", "0072b2"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette([]string{"black", "#ffffff"})
	require.NoError(t, err)
	assert.Len(t, p, 2)

	_, err = ParsePalette([]string{"black", "nope"})
	assert.Error(t, err)
}
