package mnvplot

import "strconv"

// Kind tags the type of object stored under a key.
type Kind int

const (
	KindUnknown Kind = iota
	KindHist1D
	KindHist2D
	KindExposure
	KindDir
)

func (k Kind) String() string {
	switch k {
	case KindHist1D:
		return "1D histogram"
	case KindHist2D:
		return "2D histogram"
	case KindExposure:
		return "exposure record"
	case KindDir:
		return "directory"
	case KindUnknown:
		return "unknown object"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Key names one entry of a Store along with the kind of object it holds.
type Key struct {
	Name string
	Kind Kind
}

// Store is a named collection of histograms, usually backed by one file.
// Each lookup returns a value owned by the caller.
type Store interface {
	// Name identifies the store in diagnostics, typically its file name.
	Name() string
	// Keys enumerates the top-level entries in on-disk order.
	Keys() []Key
	Hist1D(name string) (*Hist, error)
	Hist2D(name string) (*Hist2D, error)
	Exposure(name string) (float64, error)
	Close() error
}

// MemStore is an in-memory Store.
type MemStore struct {
	name  string
	keys  []Key
	h1    map[string]*Hist
	h2    map[string]*Hist2D
	expos map[string]float64
}

// NewMemStore returns an empty store called name.
func NewMemStore(name string) *MemStore {
	return &MemStore{
		name:  name,
		h1:    make(map[string]*Hist),
		h2:    make(map[string]*Hist2D),
		expos: make(map[string]float64),
	}
}

func (m *MemStore) put(name string, kind Kind) {
	for i, k := range m.keys {
		if k.Name == name {
			m.keys[i].Kind = kind
			return
		}
	}
	m.keys = append(m.keys, Key{Name: name, Kind: kind})
}

// PutHist1D stores a copy of h under name.
func (m *MemStore) PutHist1D(name string, h *Hist) {
	m.put(name, KindHist1D)
	m.h1[name] = h.Clone()
}

// PutHist2D stores a copy of h under name.
func (m *MemStore) PutHist2D(name string, h *Hist2D) {
	m.put(name, KindHist2D)
	m.h2[name] = h.Clone()
}

// PutExposure stores an exposure record under name.
func (m *MemStore) PutExposure(name string, v float64) {
	m.put(name, KindExposure)
	m.expos[name] = v
}

// PutOther registers a key holding an object no lookup understands.
func (m *MemStore) PutOther(name string) { m.put(name, KindUnknown) }

func (m *MemStore) Name() string { return m.name }

func (m *MemStore) Keys() []Key { return append([]Key(nil), m.keys...) }

func (m *MemStore) kind(name string) (Kind, bool) {
	for _, k := range m.keys {
		if k.Name == name {
			return k.Kind, true
		}
	}
	return KindUnknown, false
}

func (m *MemStore) check(name string, want Kind) error {
	got, ok := m.kind(name)
	if !ok {
		return &MissingError{Name: name, File: m.name}
	}
	if got != want {
		return &TypeError{Name: name, File: m.name, Want: want, Got: got}
	}
	return nil
}

func (m *MemStore) Hist1D(name string) (*Hist, error) {
	if err := m.check(name, KindHist1D); err != nil {
		return nil, err
	}
	return m.h1[name].Clone(), nil
}

func (m *MemStore) Hist2D(name string) (*Hist2D, error) {
	if err := m.check(name, KindHist2D); err != nil {
		return nil, err
	}
	return m.h2[name].Clone(), nil
}

func (m *MemStore) Exposure(name string) (float64, error) {
	if err := m.check(name, KindExposure); err != nil {
		return 0, err
	}
	return m.expos[name], nil
}

func (m *MemStore) Close() error { return nil }
