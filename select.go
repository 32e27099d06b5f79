package mnvplot

import (
	"regexp"

	"github.com/pkg/errors"
)

// CompileFull compiles pattern so that it only matches whole strings.
func CompileFull(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, errors.Wrapf(err, "bad histogram pattern %q", pattern)
	}
	return re, nil
}

// Select returns, in store order, every 1D histogram whose whole key matches
// pattern. Keys that match but hold another kind of object, or an object the
// store cannot decode as a 1D histogram, are skipped. Nothing matching is not
// an error.
func Select(s Store, pattern string) ([]*Hist, error) {
	re, err := CompileFull(pattern)
	if err != nil {
		return nil, err
	}

	var found []*Hist
	for _, key := range s.Keys() {
		if key.Kind != KindHist1D || !re.MatchString(key.Name) {
			continue
		}
		h, err := s.Hist1D(key.Name)
		if err != nil {
			var terr *TypeError
			if errors.As(err, &terr) {
				continue
			}
			return nil, errors.Wrapf(err, "could not read %q from %s", key.Name, s.Name())
		}
		found = append(found, h)
	}
	return found, nil
}

// SelectScaled is Select followed by scaling every result by f. The
// histograms are scaled in place and returned as is, so callers must not
// scale them again.
func SelectScaled(s Store, pattern string, f float64) ([]*Hist, error) {
	found, err := Select(s, pattern)
	if err != nil {
		return nil, err
	}
	ScaleAll(found, f)
	return found, nil
}

// SelectStrict is like Select, but a matching key that does not hold a 1D
// histogram is an error.
func SelectStrict(s Store, pattern string) ([]*Hist, error) {
	re, err := CompileFull(pattern)
	if err != nil {
		return nil, err
	}

	var found []*Hist
	for _, key := range s.Keys() {
		if !re.MatchString(key.Name) {
			continue
		}
		if key.Kind != KindHist1D {
			return nil, &TypeError{Name: key.Name, File: s.Name(), Want: KindHist1D, Got: key.Kind}
		}
		h, err := s.Hist1D(key.Name)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read %q from %s", key.Name, s.Name())
		}
		found = append(found, h)
	}
	return found, nil
}
