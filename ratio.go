package mnvplot

import (
	"math"

	"github.com/pkg/errors"
)

// MinError is the smallest error drawn. Zero-width error bands make the
// shaded region around a ratio collapse, so errors are clamped up to it.
const MinError = 1e-9

// ClampError turns e into something safe to draw: never below MinError and
// never NaN or infinite.
func ClampError(e float64) float64 {
	if math.IsNaN(e) || math.IsInf(e, 0) || e < MinError {
		return MinError
	}
	return e
}

// Divide returns num/den bin by bin. Statistical errors are propagated as if
// num and den were independent, which is an approximation for a data/MC
// ratio. Bins where den is 0 come out non-finite. Error bands are divided
// universe by universe.
func Divide(num, den *Hist) (*Hist, error) {
	if !num.SameBinning(den) {
		return nil, errors.Wrapf(ErrBinning, "could not divide %s by %s", num.Name, den.Name)
	}
	r := num.Clone()
	r.combineBands(den, func(dst, a, b []float64) {
		for i := range dst {
			dst[i] = a[i] / b[i]
		}
	})
	for i := range r.SumW {
		n, d := num.SumW[i], den.SumW[i]
		r.SumW[i] = n / d
		d2 := d * d
		r.SumW2[i] = (num.SumW2[i]*d2 + den.SumW2[i]*n*n) / (d2 * d2)
	}
	return r, nil
}

// ZeroNonFinite sets every bin of h whose content or variance is NaN or
// infinite to zero, universes included, and returns h.
func (h *Hist) ZeroNonFinite() *Hist {
	for i := range h.SumW {
		if !Finite(h.SumW[i]) || !Finite(h.SumW2[i]) {
			h.SumW[i], h.SumW2[i] = 0, 0
		}
	}
	for _, b := range h.bands {
		for _, u := range b.Universes {
			for i, v := range u {
				if !Finite(v) {
					u[i] = 0
				}
			}
		}
	}
	return h
}

// FlatReference returns a histogram with den's binning, every content 1, and
// every error den's fractional uncertainty selected by mode, clamped with
// ClampError.
func FlatReference(den *Hist, mode ErrorMode) *Hist {
	ref := NewHist(den.Name+"_reference", den.Edges)
	ref.Title = den.Title
	ref.XTitle = den.XTitle
	for i, e := range den.Errors(mode) {
		frac := ClampError(e / math.Abs(den.SumW[i]))
		ref.SumW[i] = 1
		ref.SumW2[i] = frac * frac
	}
	return ref
}

// Finite reports whether v can be placed on a plot.
func Finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
