package sample

import (
	"bytes"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	r := mrand.New(mrand.NewSource(0))
	for i := 0; i < 1000; i++ {
		f := Float(r)
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
	assert.Equal(t, 0.0, Float(bytes.NewReader(make([]byte, 8))))
	assert.Panics(t, func() { Float(bytes.NewReader(nil)) })
}

func TestDistribution_Index(t *testing.T) {
	r := mrand.New(mrand.NewSource(1))
	d, err := NewDistribution([]float64{0, 1, 0, 3, 0})
	require.NoError(t, err)

	hits := make([]int, 5)
	for i := 0; i < 4000; i++ {
		hits[d.Index(r)]++
	}
	assert.Zero(t, hits[0])
	assert.Zero(t, hits[2])
	assert.Zero(t, hits[4])
	assert.InDelta(t, 1000, hits[1], 150)
	assert.InDelta(t, 3000, hits[3], 150)
}

func TestNewDistribution_Invalid(t *testing.T) {
	_, err := NewDistribution(nil)
	assert.Error(t, err)
	_, err = NewDistribution([]float64{0, 0})
	assert.Error(t, err)
	_, err = NewDistribution([]float64{1, -1})
	assert.Error(t, err)
}
