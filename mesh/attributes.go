package mesh

import (
	"errors"
	"fmt"
	"sort"
)

// ErrMissingAttribute signals a lookup for an attribute that was never
// computed. The exporter treats it as fatal.
var ErrMissingAttribute = errors.New("missing attribute")

// ScalarAttribute is a dense per-element float column. Components > 1 stores
// that many values per element, flattened in element order.
type ScalarAttribute struct {
	Data       []float64
	Components int
}

// AttributeStore holds named per-element arrays, typed as float64 or bool
// columns. Names are unique per column type; each column is written once per
// run in one bulk assignment.
type AttributeStore struct {
	scalars map[string]*ScalarAttribute
	flags   map[string][]bool
}

func NewAttributeStore() *AttributeStore {
	return &AttributeStore{
		scalars: make(map[string]*ScalarAttribute),
		flags:   make(map[string][]bool),
	}
}

// SetScalar registers a single-component float column under name, replacing
// any previous contents.
func (s *AttributeStore) SetScalar(name string, values []float64) {
	s.scalars[name] = &ScalarAttribute{Data: values, Components: 1}
}

// SetScalarN registers a float column with components values per element.
func (s *AttributeStore) SetScalarN(name string, values []float64, components int) {
	if components < 1 {
		panic(fmt.Sprintf("attribute %s: components must be >= 1", name))
	}
	s.scalars[name] = &ScalarAttribute{Data: values, Components: components}
}

// SetFlag registers a bool column under name.
func (s *AttributeStore) SetFlag(name string, values []bool) {
	s.flags[name] = values
}

func (s *AttributeStore) Scalar(name string) ([]float64, error) {
	attr, ok := s.scalars[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingAttribute, name)
	}
	return attr.Data, nil
}

func (s *AttributeStore) ScalarN(name string) (*ScalarAttribute, error) {
	attr, ok := s.scalars[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingAttribute, name)
	}
	return attr, nil
}

func (s *AttributeStore) Flag(name string) ([]bool, error) {
	vals, ok := s.flags[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingAttribute, name)
	}
	return vals, nil
}

// ScalarNames returns the float column names in sorted order.
func (s *AttributeStore) ScalarNames() (names []string) {
	for name := range s.scalars {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// FlagNames returns the bool column names in sorted order.
func (s *AttributeStore) FlagNames() (names []string) {
	for name := range s.flags {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
