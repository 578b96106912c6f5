package proxy

import (
	"fmt"
	"iter"
	"slices"
)

// Sequence is a list-like view over an ordered set of attributes of a
// backing object.
type Sequence struct {
	base   any
	names  []string
	fields []accessor
}

// NewSequence binds names, in order, on base. It fails with a
// *MissingAttributesError if any name does not resolve.
func NewSequence(base any, names ...string) (*Sequence, error) {
	r, err := newResolver(base)
	if err != nil {
		return nil, err
	}

	fields, err := r.bind(names)
	if err != nil {
		return nil, err
	}

	return &Sequence{
		base:   base,
		names:  slices.Clone(names),
		fields: fields,
	}, nil
}

// Len returns the number of managed attributes.
func (s *Sequence) Len() int { return len(s.fields) }

// Names returns the attribute names in index order.
func (s *Sequence) Names() []string { return slices.Clone(s.names) }

func (s *Sequence) index(i int) (int, error) {
	n := len(s.fields)
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		return 0, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, n)
	}
	return j, nil
}

// Get returns the current value of the attribute at index i.
func (s *Sequence) Get(i int) (any, error) {
	j, err := s.index(i)
	if err != nil {
		return nil, err
	}
	return s.fields[j].get(), nil
}

// Set assigns v to the attribute at index i.
func (s *Sequence) Set(i int, v any) error {
	j, err := s.index(i)
	if err != nil {
		return err
	}
	return s.fields[j].set(v)
}

// GetSlice returns the values of the attributes selected by sl.
func (s *Sequence) GetSlice(sl Slice) ([]any, error) {
	pos, err := sl.positions(len(s.fields))
	if err != nil {
		return nil, err
	}

	out := make([]any, len(pos))
	for i, p := range pos {
		out[i] = s.fields[p].get()
	}
	return out, nil
}

// SetSlice assigns values pairwise to the attributes selected by sl.
// Assignment stops at whichever of the two runs out first.
func (s *Sequence) SetSlice(sl Slice, values []any) error {
	pos, err := sl.positions(len(s.fields))
	if err != nil {
		return err
	}

	for i, p := range pos {
		if i >= len(values) {
			break
		}
		if err := s.fields[p].set(values[i]); err != nil {
			return err
		}
	}
	return nil
}

// Values returns a snapshot of every attribute value in index order.
func (s *Sequence) Values() []any {
	out := make([]any, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.get()
	}
	return out
}

// All iterates over index/value pairs, reading each value as it is reached.
func (s *Sequence) All() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i, f := range s.fields {
			if !yield(i, f.get()) {
				return
			}
		}
	}
}

// String renders the current values.
func (s *Sequence) String() string {
	return fmt.Sprint(s.Values())
}

// GoString identifies the backing object.
func (s *Sequence) GoString() string {
	return fmt.Sprintf("<SequenceProxy of %#v>", s.base)
}
