package mnvplot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// Palette is an ordered list of layer colors.
type Palette []color.Color

// OkabeIto is the colorblind-safe palette of Okabe and Ito, darkest first.
var OkabeIto = Palette{
	color.RGBA{R: 0x00, G: 0x72, B: 0xb2, A: 0xff},
	color.RGBA{R: 0xd5, G: 0x5e, B: 0x00, A: 0xff},
	color.RGBA{R: 0x00, G: 0x9e, B: 0x73, A: 0xff},
	color.RGBA{R: 0xcc, G: 0x79, B: 0xa7, A: 0xff},
	color.RGBA{R: 0xe6, G: 0x9f, B: 0x00, A: 0xff},
	color.RGBA{R: 0x56, G: 0xb4, B: 0xe9, A: 0xff},
	color.RGBA{R: 0xf0, G: 0xe4, B: 0x42, A: 0xff},
	color.RGBA{A: 0xff},
}

// PaletteError is returned when there are more layers than colors.
type PaletteError struct {
	Need, Have int
}

func (e *PaletteError) Error() string {
	return fmt.Sprintf("need %d colors but the palette only has %d", e.Need, e.Have)
}

// Colors returns the first n colors. Colors are never reused: two layers
// with one color would be indistinguishable.
func (p Palette) Colors(n int) ([]color.Color, error) {
	if n > len(p) {
		return nil, &PaletteError{Need: n, Have: len(p)}
	}
	return append([]color.Color(nil), p[:n]...), nil
}

// ParseColor understands SVG color names and #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if hex == s || (len(hex) != 6 && len(hex) != 8) {
		return nil, errors.Errorf("unknown color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "bad color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// ParsePalette parses every entry with ParseColor.
func ParsePalette(names []string) (Palette, error) {
	p := make(Palette, len(names))
	for i, name := range names {
		c, err := ParseColor(name)
		if err != nil {
			return nil, err
		}
		p[i] = c
	}
	return p, nil
}
