package proxy

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Binding ties a mapping key to an attribute name.
type Binding[K comparable] struct {
	Key  K
	Attr string
}

// Bind is shorthand for Binding{Key: key, Attr: attr}.
func Bind[K comparable](key K, attr string) Binding[K] {
	return Binding[K]{Key: key, Attr: attr}
}

// Pair is one entry of a mapping snapshot.
type Pair[K comparable] struct {
	Key   K
	Value any
}

// Mapping is a map-like view over a keyed set of attributes of a backing
// object. Keys keep the order of the bindings they were declared with.
type Mapping[K comparable] struct {
	base   any
	keys   []K
	fields map[K]accessor
}

// NewMapping binds every attribute named in bindings on base. A key bound
// more than once keeps its first position and its last attribute. It
// fails with a *MissingAttributesError naming every attribute that does
// not resolve.
func NewMapping[K comparable](base any, bindings ...Binding[K]) (*Mapping[K], error) {
	r, err := newResolver(base)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(bindings))
	for i, b := range bindings {
		names[i] = b.Attr
	}

	accs, err := r.bind(names)
	if err != nil {
		return nil, err
	}

	m := &Mapping[K]{
		base:   base,
		fields: make(map[K]accessor, len(bindings)),
	}
	for i, b := range bindings {
		if _, seen := m.fields[b.Key]; !seen {
			m.keys = append(m.keys, b.Key)
		}
		m.fields[b.Key] = accs[i]
	}
	return m, nil
}

// Len returns the number of keys.
func (m *Mapping[K]) Len() int { return len(m.keys) }

// Contains reports whether key is bound.
func (m *Mapping[K]) Contains(key K) bool {
	_, ok := m.fields[key]
	return ok
}

// Keys returns the bound keys in insertion order.
func (m *Mapping[K]) Keys() []K { return slices.Clone(m.keys) }

// Get returns the current value of the attribute bound to key.
func (m *Mapping[K]) Get(key K) (any, error) {
	f, ok := m.fields[key]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return f.get(), nil
}

// Set assigns v to the attribute bound to key.
func (m *Mapping[K]) Set(key K, v any) error {
	f, ok := m.fields[key]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return f.set(v)
}

// All iterates over keys in insertion order with their current values.
func (m *Mapping[K]) All() iter.Seq2[K, any] {
	return func(yield func(K, any) bool) {
		for _, k := range m.keys {
			if !yield(k, m.fields[k].get()) {
				return
			}
		}
	}
}

// Snapshot reads every bound attribute once.
func (m *Mapping[K]) Snapshot() []Pair[K] {
	out := make([]Pair[K], 0, len(m.keys))
	for k, v := range m.All() {
		out = append(out, Pair[K]{Key: k, Value: v})
	}
	return out
}

// String renders the full key/value snapshot, e.g. map[a:1 b:2].
func (m *Mapping[K]) String() string {
	var b strings.Builder
	b.WriteString("map[")
	for i, p := range m.Snapshot() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", p.Key, p.Value)
	}
	b.WriteByte(']')
	return b.String()
}

// GoString identifies the backing object.
func (m *Mapping[K]) GoString() string {
	return fmt.Sprintf("<MappingProxy of %#v>", m.base)
}
