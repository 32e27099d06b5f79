package mnvplot

import "github.com/pkg/errors"

// RatioCurve is an extra prediction drawn in the ratio panel.
type RatioCurve struct {
	Label string
	Hist  *Hist
}

// Comparison holds everything drawn on a data/MC ratio plot.
type Comparison struct {
	Data  *Hist
	Stack *Stack
	// Stacked draws the MC layers as filled, cumulative areas. Otherwise each
	// layer is an unstacked line and the total is a shaded band.
	Stacked bool

	Ratio     *Hist
	Reference *Hist
	Models    []RatioCurve

	MCLabel   string
	DataLabel string
	XTitle    string
	YTitle    string
	// YMax is the top of the overlay panel, or automatic when 0.
	YMax float64
}

// CompareDataMC stacks the MC layers, divides data by their total and builds
// the flat reference from the total's uncertainty selected by mode.
func CompareDataMC(data *Hist, mc []*Hist, mode ErrorMode) (*Comparison, error) {
	stack, err := BuildStack(mc)
	if err != nil {
		return nil, err
	}
	ratio, err := Divide(data, stack.Total())
	if err != nil {
		return nil, errors.Wrap(err, "could not compute data/MC ratio")
	}
	return &Comparison{
		Data:      data,
		Stack:     stack,
		Ratio:     ratio,
		Reference: FlatReference(stack.Total(), mode),
		MCLabel:   "MC",
		DataLabel: "Data",
		XTitle:    data.XTitle,
		YTitle:    data.YTitle,
	}, nil
}

// AddModel divides another MC prediction's total by the reference MC total
// and attaches it to the ratio panel.
func (c *Comparison) AddModel(label string, mc []*Hist) error {
	stack, err := BuildStack(mc)
	if err != nil {
		return errors.Wrapf(err, "could not stack model %s", label)
	}
	r, err := Divide(stack.Total(), c.Stack.Total())
	if err != nil {
		return errors.Wrapf(err, "could not compute ratio for model %s", label)
	}
	c.Models = append(c.Models, RatioCurve{Label: label, Hist: r})
	return nil
}
