package reading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReading(t *testing.T) {
	values := []float64{1.5, 2.5}

	r, err := NewReading("  gauge-1 ", values)
	require.NoError(t, err)
	assert.Equal(t, "gauge-1", r.Sensor)
	assert.Equal(t, values, r.Values)
	assert.False(t, r.CreatedAt.IsZero())

	// The reading owns its values.
	values[0] = 99
	assert.Equal(t, 1.5, r.Values[0])

	v, ok := r.Channel(2)
	assert.True(t, ok)
	assert.Equal(t, 2.5, v)

	_, ok = r.Channel(3)
	assert.False(t, ok)
	_, ok = r.Channel(0)
	assert.False(t, ok)
}

func TestNewReading_Invalid(t *testing.T) {
	_, err := NewReading(" ", []float64{1})
	assert.ErrorIs(t, err, ErrEmptySensor)

	_, err = NewReading("gauge", nil)
	assert.ErrorIs(t, err, ErrNoValues)

	_, err = NewReading("gauge", make([]float64, Channels+1))
	assert.ErrorIs(t, err, ErrTooManyValues)
}
