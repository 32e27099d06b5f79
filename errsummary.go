package mnvplot

import (
	"math"
	"sort"
)

// OtherGroup collects the error bands that no other group claims.
const OtherGroup = "Other"

// ErrorGroups maps a group name to the error bands summed in it.
type ErrorGroups map[string][]string

// WithOther returns a copy of g with every band of bands that is in no group
// appended to OtherGroup.
func (g ErrorGroups) WithOther(bands []string) ErrorGroups {
	out := make(ErrorGroups, len(g)+1)
	claimed := make(map[string]bool)
	for name, members := range g {
		out[name] = append([]string(nil), members...)
		for _, m := range members {
			claimed[m] = true
		}
	}
	for _, b := range bands {
		if !claimed[b] {
			out[OtherGroup] = append(out[OtherGroup], b)
		}
	}
	return out
}

// Names returns the group names in sorted order.
func (g ErrorGroups) Names() []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ErrorCurve is one line of an uncertainty summary: a fractional error per bin.
type ErrorCurve struct {
	Label    string
	Fraction []float64
}

func fractional(h *Hist, errs []float64) []float64 {
	out := make([]float64, len(errs))
	for i, e := range errs {
		if h.SumW[i] != 0 {
			out[i] = e / math.Abs(h.SumW[i])
		}
	}
	return out
}

// groupErrors adds the bands of members in quadrature. Members h does not
// carry are ignored.
func groupErrors(h *Hist, members []string) []float64 {
	sum2 := make([]float64, h.Len())
	for _, m := range members {
		for i, e := range h.BandErrors(m) {
			sum2[i] += e * e
		}
	}
	for i, v := range sum2 {
		sum2[i] = math.Sqrt(v)
	}
	return sum2
}

// ErrorSummary returns the total, the statistical, and one grouped
// fractional error curve per group, in that order.
func ErrorSummary(h *Hist, groups ErrorGroups) []ErrorCurve {
	curves := []ErrorCurve{
		{Label: "Total Uncertainty", Fraction: fractional(h, h.Errors(StatAndSys))},
		{Label: "Statistical", Fraction: fractional(h, h.StatErrors())},
	}
	for _, name := range groups.Names() {
		curves = append(curves, ErrorCurve{Label: name, Fraction: fractional(h, groupErrors(h, groups[name]))})
	}
	return curves
}

// GroupSummary returns one fractional error curve per band of the group.
func GroupSummary(h *Hist, groups ErrorGroups, group string) []ErrorCurve {
	var curves []ErrorCurve
	for _, m := range groups[group] {
		errs := h.BandErrors(m)
		if errs == nil {
			continue
		}
		curves = append(curves, ErrorCurve{Label: m, Fraction: fractional(h, errs)})
	}
	return curves
}
