package sample

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/floats"
)

const maxIterations = 255

var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

// Float returns a uniform value in [0, 1) with 53 bits of precision.
func Float(rand io.Reader) float64 {
	buf := make([]byte, 8)
	mustReadBits(rand, buf)
	return float64(binary.BigEndian.Uint64(buf)>>11) / (1 << 53)
}

// Distribution draws indices proportionally to a fixed vector of weights.
type Distribution struct {
	cdf []float64
}

// NewDistribution prepares sampling from weights, which must be non negative
// and have a positive sum.
func NewDistribution(weights []float64) (*Distribution, error) {
	if len(weights) == 0 {
		return nil, errors.New("sample: empty distribution")
	}
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("sample: negative weight %g at %d", w, i)
		}
	}
	cdf := floats.CumSum(make([]float64, len(weights)), weights)
	if cdf[len(cdf)-1] <= 0 {
		return nil, errors.New("sample: weights sum to zero")
	}
	return &Distribution{cdf: cdf}, nil
}

// Index returns i with probability weights[i] / Σ weights.
func (d *Distribution) Index(rand io.Reader) int {
	u := Float(rand) * d.cdf[len(d.cdf)-1]
	i := sort.Search(len(d.cdf), func(j int) bool { return d.cdf[j] > u })
	if i == len(d.cdf) {
		// u rounded up to the total
		i--
	}
	// skip zero weight entries sharing the same cumulative value
	for i > 0 && d.cdf[i] == d.cdf[i-1] {
		i--
	}
	return i
}
