package mnvplot

import "github.com/pkg/errors"

// Layout splits a ratio plot canvas vertically. The overlay panel covers
// [BottomFraction, 1] and the ratio panel covers [0, BottomFraction+Margin],
// so the ratio panel hides the overlay's x axis and the shared axis is only
// labelled once.
type Layout struct {
	BottomFraction float64 `yaml:"bottom_fraction"`
	Margin         float64 `yaml:"margin"`
}

// DefaultLayout has the margin tuned by hand for the default canvas.
var DefaultLayout = Layout{BottomFraction: 0.2, Margin: 0.078}

// Validate checks that both panels fit on the canvas.
func (l Layout) Validate() error {
	switch {
	case l.BottomFraction <= 0 || l.BottomFraction >= 1:
		return errors.Errorf("bottom fraction %v not in (0, 1)", l.BottomFraction)
	case l.Margin < 0:
		return errors.Errorf("negative margin %v", l.Margin)
	case l.BottomFraction+l.Margin >= 1:
		return errors.Errorf("ratio panel %v covers the whole canvas", l.BottomFraction+l.Margin)
	}
	return nil
}

// Top returns the vertical extent of the overlay panel as canvas fractions.
func (l Layout) Top() (lo, hi float64) { return l.BottomFraction, 1 }

// Bottom returns the vertical extent of the ratio panel as canvas fractions.
func (l Layout) Bottom() (lo, hi float64) { return 0, l.BottomFraction + l.Margin }

// Overlap returns how much of the canvas both panels cover.
func (l Layout) Overlap() float64 {
	_, bhi := l.Bottom()
	tlo, _ := l.Top()
	return bhi - tlo
}
