package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameValues(t *testing.T) {
	assert.True(t, sameValues([]float64{1.5, 42.123456789012345}, []float64{1.5, 42.1234567890123}))
	assert.True(t, sameValues(nil, []float64{}))
	assert.False(t, sameValues([]float64{1}, []float64{1, 2}))
	assert.False(t, sameValues([]float64{1.5}, []float64{1.6}))
}

func TestRandomValues(t *testing.T) {
	for i := 0; i < 20; i++ {
		v := randomValues()
		assert.NotEmpty(t, v)
		assert.LessOrEqual(t, len(v), 10)
	}
}
