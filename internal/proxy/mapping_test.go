package proxy

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cell struct {
	Row int
	Col string
}

type grid struct {
	Data0A int
	Data0B int
	Data1A int
}

func TestMapping_GetSet(t *testing.T) {
	g := &grid{Data0A: 1, Data0B: 2}

	m, err := NewMapping(g,
		Bind(cell{0, "A"}, "Data0A"),
		Bind(cell{0, "B"}, "Data0B"),
	)
	require.NoError(t, err)

	got, err := m.Get(cell{0, "A"})
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	require.NoError(t, m.Set(cell{0, "A"}, 2))
	assert.Equal(t, 2, g.Data0A)

	g.Data0B = 10
	got, err = m.Get(cell{0, "B"})
	require.NoError(t, err)
	assert.Equal(t, 10, got)
}

func TestMapping_UnknownKey(t *testing.T) {
	m, err := NewMapping(&grid{}, Bind("a", "Data0A"))
	require.NoError(t, err)

	_, err = m.Get("b")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.ErrorIs(t, m.Set("b", 1), ErrKeyNotFound)
	assert.False(t, m.Contains("b"))
	assert.True(t, m.Contains("a"))
}

func TestMapping_MissingAttributesReportsAll(t *testing.T) {
	_, err := NewMapping(&grid{},
		Bind(1, "Data0A"),
		Bind(2, "Data9Z"),
		Bind(3, "Data1A"),
		Bind(4, "Data8Y"),
	)

	var missing *MissingAttributesError
	require.ErrorAs(t, err, &missing)
	assert.ErrorIs(t, err, ErrMissingAttributes)
	assert.Equal(t, []string{"Data9Z", "Data8Y"}, missing.Names)
}

func TestMapping_InsertionOrder(t *testing.T) {
	g := &grid{Data0A: 1, Data0B: 2, Data1A: 3}

	m, err := NewMapping(g,
		Bind("z", "Data0A"),
		Bind("a", "Data0B"),
		Bind("m", "Data1A"),
		Bind("z", "Data1A"),
	)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())

	// A repeated key keeps its position and takes the later attribute.
	got, err := m.Get("z")
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	var keys []string
	for k := range m.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"z", "a", "m"}, keys)

	assert.Equal(t, []Pair[string]{{"z", 3}, {"a", 2}, {"m", 3}}, m.Snapshot())
}

func TestMapping_ObjectBase(t *testing.T) {
	obj := attrs{"x": 1}
	m, err := NewMapping(obj, Bind("key", "x"))
	require.NoError(t, err)

	require.NoError(t, m.Set("key", "one"))
	assert.Equal(t, "one", obj["x"])

	_, err = NewMapping(obj, Bind("key", "y"))
	assert.ErrorIs(t, err, ErrMissingAttributes)
}

func TestMapping_Format(t *testing.T) {
	g := &grid{Data0A: 1, Data0B: 2}
	m, err := NewMapping(g, Bind("b", "Data0B"), Bind("a", "Data0A"))
	require.NoError(t, err)

	assert.Equal(t, "map[b:2 a:1]", m.String())
	assert.True(t, strings.HasPrefix(fmt.Sprintf("%#v", m), "<MappingProxy of &proxy.grid{"))
}
