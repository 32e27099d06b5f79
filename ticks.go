package mnvplot

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// PreciseTicks labels major ticks with as many digits as the spacing needs
// and no more.
type PreciseTicks struct {
	NSuggestedTicks int
}

func (t PreciseTicks) Ticks(min, max float64) []plot.Tick {
	if t.NSuggestedTicks < 2 {
		t.NSuggestedTicks = 4
	}
	if !validRange(min, max) {
		return nil
	}

	tens := math.Pow10(int(math.Floor(math.Log10(max - min))))
	n := (max - min) / tens
	for n < float64(t.NSuggestedTicks)-1 {
		tens /= 10
		n = (max - min) / tens
	}

	majorMult := int(n / float64(t.NSuggestedTicks-1))
	switch majorMult {
	case 7:
		majorMult = 6
	case 9:
		majorMult = 8
	}
	majorDelta := float64(majorMult) * tens

	var ticks []plot.Tick
	last := 0.0
	for val := math.Floor(min/majorDelta) * majorDelta; val <= max; val += majorDelta {
		last = val
		if val < min {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: val})
	}
	prec := int(math.Ceil(math.Log10(math.Abs(last)+majorDelta)) - math.Floor(math.Log10(majorDelta)))
	for i := range ticks {
		v := round(ticks[i].Value, prec)
		ticks[i] = plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)}
	}

	return append(ticks, minorTicks(ticks, min, max, majorDelta/minorDivisions(majorMult))...)
}

func minorDivisions(majorMult int) float64 {
	switch majorMult {
	case 3, 6:
		return 3
	case 5:
		return 5
	}
	return 2
}

// minorTicks fills [min, max] with unlabelled ticks delta apart, skipping the
// positions already taken by major.
func minorTicks(major []plot.Tick, min, max, delta float64) []plot.Tick {
	taken := make(map[float64]bool, len(major))
	for _, t := range major {
		taken[t.Value] = true
	}
	var ticks []plot.Tick
	for val := math.Floor(min/delta) * delta; val <= max; val += delta {
		if val >= min && !taken[round(val, 12)] {
			ticks = append(ticks, plot.Tick{Value: val})
		}
	}
	return ticks
}

// DivisionTicks splits the axis range into Major labelled intervals, each cut
// into Minor unlabelled ones.
type DivisionTicks struct {
	Major int
	Minor int
}

func (t DivisionTicks) Ticks(min, max float64) []plot.Tick {
	if !validRange(min, max) {
		return nil
	}
	if t.Major < 1 {
		return plot.DefaultTicks{}.Ticks(min, max)
	}
	if t.Minor < 1 {
		t.Minor = 1
	}
	step := (max - min) / float64(t.Major)
	prec := int(-math.Floor(math.Log10(step))) + 1
	var ticks []plot.Tick
	for i := 0; i <= t.Major*t.Minor; i++ {
		v := min + float64(i)*step/float64(t.Minor)
		if i%t.Minor != 0 {
			ticks = append(ticks, plot.Tick{Value: v})
			continue
		}
		v = round(v, prec)
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)})
	}
	return ticks
}

// validRange reports whether [min, max] can carry ticks. Ranges that are
// empty or not finite get none.
func validRange(min, max float64) bool {
	return max > min && Finite(min) && Finite(max)
}

func round(x float64, prec int) float64 {
	if x == 0 {
		// Make sure zero is returned
		// without the negative bit set.
		return 0
	}
	// Fast path for positive precision on integers.
	if prec >= 0 && x == math.Trunc(x) {
		return x
	}
	pow := math.Pow10(prec)
	intermed := x * pow
	if math.IsInf(intermed, 0) {
		return x
	}
	if x < 0 {
		x = math.Ceil(intermed - 0.5)
	} else {
		x = math.Floor(intermed + 0.5)
	}

	if x == 0 {
		return 0
	}

	return x / pow
}
