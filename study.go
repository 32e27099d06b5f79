package mnvplot

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// TruthOnX reports whether the x axis of a migration matrix holds the true
// quantity, judging by which axis title mentions "True". found is false when
// neither does, in which case x is assumed.
func TruthOnX(xTitle, yTitle string) (xIsTrue, found bool) {
	switch {
	case strings.Contains(xTitle, "True"):
		return true, true
	case strings.Contains(yTitle, "True"):
		return false, true
	}
	return true, false
}

// CutLabel turns a truth axis title into the title of a cut on it.
func CutLabel(truthTitle string) string {
	label := strings.Replace(truthTitle, "True", "", 1)
	return strings.TrimSpace(strings.Join(strings.Fields(label), " ") + " Cut")
}

// SmearPoint is the result of one cut value of a smearing fraction study.
type SmearPoint struct {
	Cut     float64
	Percent float64
}

// SmearingFractions scans a square migration matrix. For every bin k along
// the truth axis it cuts both the reconstructed and the true quantity at the
// upper edge of bin k and reports the percentage of events passing the
// reconstructed cut that also pass the true one. Cuts with no events are
// left out.
func SmearingFractions(m *Hist2D, xIsTrue bool) ([]SmearPoint, error) {
	nx, ny := m.Dims()
	if nx != ny {
		return nil, errors.Errorf("migration matrix %s is %dx%d, not square", m.Name, nx, ny)
	}

	var points []SmearPoint
	for k := 0; k < nx; k++ {
		var proj *Hist
		if xIsTrue {
			proj = m.ProjectionX("proj", 0, k)
		} else {
			proj = m.ProjectionY("proj", 0, k)
		}
		all := proj.Integral(0, proj.Len()-1)
		if all <= 0 {
			continue
		}
		points = append(points, SmearPoint{
			Cut:     proj.Edges[k+1],
			Percent: proj.Integral(0, k) / all * 100,
		})
	}
	return points, nil
}

// Minimum returns the smallest bin content of h and its bin number, counting
// from 1.
func Minimum(h *Hist) (value float64, bin int) {
	value, bin = h.SumW[0], 1
	for i, v := range h.SumW {
		if v < value {
			value, bin = v, i+1
		}
	}
	return value, bin
}

// Crossings returns, for every threshold, the first bin number counting from
// 1 whose content is at or below it, or -1 if no bin ever gets there.
func Crossings(h *Hist, thresholds []float64) []int {
	out := make([]int, len(thresholds))
	for i, t := range thresholds {
		out[i] = -1
		for j, v := range h.SumW {
			if v <= t {
				out[i] = j + 1
				break
			}
		}
	}
	return out
}

// WarpingRecord formats the fields of one warping study line.
func WarpingRecord(name string, h *Hist, thresholds []float64) []string {
	min, bin := Minimum(h)
	rec := []string{name, strconv.FormatFloat(min, 'g', -1, 64), strconv.Itoa(bin)}
	for _, c := range Crossings(h, thresholds) {
		rec = append(rec, strconv.Itoa(c))
	}
	return rec
}
