package shor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngles(t *testing.T) {
	angles := Angles(5, 3)
	// 5 = 0b101
	expected := []float64{
		math.Pi,
		math.Pi / 2,
		math.Pi/4 + math.Pi,
	}
	assert.InDeltaSlice(t, expected, angles, 1e-12)

	assert.Equal(t, make([]float64, 4), Angles(0, 4))
	assert.InDeltaSlice(t, Angles(3, 3), Angles(3+8, 3), 1e-12, "only the low n bits contribute")
	assert.Empty(t, Angles(7, 0))
}
