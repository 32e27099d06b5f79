package mnvplot

import "github.com/pkg/errors"

// ErrEmptyStack is returned when building a stack out of nothing.
var ErrEmptyStack = errors.New("mnvplot: cannot stack zero histograms")

// Layer is one component of a Stack.
type Layer struct {
	Label string
	Hist  *Hist
}

// Stack is an ordered composition of histograms. Layer i of the running sum
// holds the bin-wise sum of layers 0 through i.
type Stack struct {
	layers     []Layer
	cumulative []*Hist
}

// BuildStack stacks hists in order, labelling each layer with its title.
// The inputs are kept as the layers; the running sums are new histograms.
func BuildStack(hists []*Hist) (*Stack, error) {
	if len(hists) == 0 {
		return nil, ErrEmptyStack
	}
	s := &Stack{
		layers:     make([]Layer, len(hists)),
		cumulative: make([]*Hist, len(hists)),
	}
	var sum *Hist
	for i, h := range hists {
		label := h.Title
		if label == "" {
			label = h.Name
		}
		s.layers[i] = Layer{Label: label, Hist: h}

		if sum == nil {
			sum = h.Clone()
		} else {
			sum = sum.Clone()
			if err := sum.Add(h); err != nil {
				return nil, errors.Wrapf(err, "could not stack layer %d", i)
			}
		}
		s.cumulative[i] = sum
	}
	return s, nil
}

// Len returns the number of layers.
func (s *Stack) Len() int { return len(s.layers) }

// Layers returns the layers in stack order.
func (s *Stack) Layers() []Layer { return append([]Layer(nil), s.layers...) }

// Cumulative returns the sum of layers 0 through i.
func (s *Stack) Cumulative(i int) *Hist { return s.cumulative[i] }

// Total returns the sum of every layer.
func (s *Stack) Total() *Hist { return s.cumulative[len(s.cumulative)-1] }

// Last is the top of the drawn stack, i.e. the total, not the last layer on
// its own.
func (s *Stack) Last() *Hist { return s.Total() }
