// Package reading holds the domain model for multi-channel sensor readings.
package reading

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Channels is the number of value channels a reading can carry.
const Channels = 10

var (
	// ErrEmptySensor is returned when no sensor name is provided.
	ErrEmptySensor = errors.New("sensor name is required")
	// ErrNoValues is returned when a reading has no channel values.
	ErrNoValues = errors.New("at least one channel value is required")
	// ErrTooManyValues is returned when more than Channels values are given.
	ErrTooManyValues = fmt.Errorf("a reading holds at most %d values", Channels)
	// ErrNotFound is returned by repositories for unknown ids.
	ErrNotFound = errors.New("reading not found")
)

// Reading is one sample taken by a sensor across up to Channels channels.
// Values[i] is channel i+1.
type Reading struct {
	ID        int64
	Sensor    string
	Values    []float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewReading constructs a Reading and enforces basic domain rules.
func NewReading(sensor string, values []float64) (*Reading, error) {
	sensor = strings.TrimSpace(sensor)

	if sensor == "" {
		return nil, ErrEmptySensor
	}
	if len(values) == 0 {
		return nil, ErrNoValues
	}
	if len(values) > Channels {
		return nil, ErrTooManyValues
	}

	return &Reading{
		Sensor:    sensor,
		Values:    append([]float64(nil), values...),
		CreatedAt: time.Now(),
	}, nil
}

// Channel returns the value of the 1-based channel n.
func (r *Reading) Channel(n int) (float64, bool) {
	if n < 1 || n > len(r.Values) {
		return 0, false
	}
	return r.Values[n-1], true
}
