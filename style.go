package mnvplot

import (
	"image/color"
	"os"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

// Style carries every presentation setting of a plot. It is passed to the
// renderer explicitly so that plots made in the same process do not leak
// settings into each other.
type Style struct {
	// Width and Height of the image in inches.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Layout Layout `yaml:"layout"`

	// LineWidth in points.
	LineWidth float64 `yaml:"line_width"`

	Title  string   `yaml:"title"`
	Labels []string `yaml:"labels"`

	// RatioMin and RatioMax fix the ratio panel's y range. Both zero lets
	// the panel fit its contents.
	RatioMin float64 `yaml:"ratio_min"`
	RatioMax float64 `yaml:"ratio_max"`

	// Palette lists layer colors by SVG name or #rrggbb. Empty means OkabeIto.
	Palette []string `yaml:"palette"`
}

// DefaultStyle returns the house style.
func DefaultStyle() Style {
	return Style{
		Width:     7,
		Height:    5,
		Layout:    DefaultLayout,
		LineWidth: 2,
		Title:     "Tracker",
		Labels:    []string{"MINERvA Work in Progress", "Stat. Errors Only"},
		RatioMin:  0.5,
		RatioMax:  1.5,
	}
}

// LoadStyle reads a YAML style file on top of DefaultStyle. An empty path or
// a file that does not exist yields the defaults.
func LoadStyle(path string) (Style, error) {
	s := DefaultStyle()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, errors.Wrap(err, "failed to read style")
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, errors.Wrap(err, "failed to parse style")
	}
	return s, s.Validate()
}

// Validate checks s for settings that cannot be drawn.
func (s Style) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return errors.Errorf("invalid canvas size %vx%v", s.Width, s.Height)
	}
	if !s.AutoRatio() && s.RatioMax <= s.RatioMin {
		return errors.Errorf("invalid ratio range [%v, %v]", s.RatioMin, s.RatioMax)
	}
	if _, err := s.Colors(); err != nil {
		return err
	}
	return s.Layout.Validate()
}

// AutoRatio reports whether the ratio panel picks its own y range.
func (s Style) AutoRatio() bool { return s.RatioMin == 0 && s.RatioMax == 0 }

// Colors returns the layer palette.
func (s Style) Colors() (Palette, error) {
	if len(s.Palette) == 0 {
		return OkabeIto, nil
	}
	return ParsePalette(s.Palette)
}

func (s Style) size() (vg.Length, vg.Length) {
	return vg.Length(s.Width) * vg.Inch, vg.Length(s.Height) * vg.Inch
}

func (s Style) lineWidth() vg.Length { return vg.Points(s.LineWidth) }

var (
	mcLineColor = color.RGBA{R: 255, A: 255}
	mcBandColor = color.NRGBA{R: 255, G: 51, B: 153, A: 102}
	labelColor  = color.RGBA{B: 255, A: 255}
)
