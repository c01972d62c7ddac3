package shor

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactors(t *testing.T) {
	tests := []struct {
		name        string
		N, a        int
		measurement string
		factors     []int
		err         error
	}{
		{"quarter", 15, 2, "01000000", []int{3, 5}, nil},
		{"three quarters", 15, 2, "11000000", []int{3, 5}, nil},
		{"half yields one non trivial gcd", 15, 2, "10000000", []int{3, 5}, nil},
		{"period six", 21, 2, "0010101011", []int{3, 7}, nil},
		{"zero", 15, 2, "00000000", nil, ErrNoContinuedFraction},
		{"large exponential", 21, 20, "0000000010", nil, ErrDenominatorTooLarge},
		{"exact convergent", 21, 2, "0000000001", nil, ErrExactConvergent},
		{"iteration bound", 3, 2, "0101", nil, ErrTooManyAttempts},
		{"not a bitstring", 15, 2, "01200000", nil, ErrInvalidArgument},
		{"empty", 15, 2, "", nil, ErrInvalidArgument},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			factors, err := Factors(tc.N, tc.a, tc.measurement)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.Nil(t, factors)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.factors, factors)
		})
	}
}

func TestFactorPair(t *testing.T) {
	pair, ok := factorPair(15, 5, 3)
	assert.True(t, ok)
	assert.Equal(t, []int{3, 5}, pair)

	pair, ok = factorPair(15, 3, 1)
	assert.True(t, ok)
	assert.Equal(t, []int{3, 5}, pair)

	pair, ok = factorPair(15, 15, 5)
	assert.True(t, ok)
	assert.Equal(t, []int{3, 5}, pair)

	_, ok = factorPair(15, 1, 15)
	assert.False(t, ok)
}

func TestConvergentDenominator(t *testing.T) {
	assert.EqualValues(t, 1, convergentDenominator([]int64{3}))
	assert.EqualValues(t, 2, convergentDenominator([]int64{0, 2}))
	assert.EqualValues(t, 4, convergentDenominator([]int64{0, 4}))
	assert.EqualValues(t, 4, convergentDenominator([]int64{0, 1, 2, 1}))
	assert.EqualValues(t, 13, convergentDenominator([]int64{0, 3, 4}))
	assert.EqualValues(t, 113, convergentDenominator([]int64{3, 7, 16}))
}

func TestLimitDenominator(t *testing.T) {
	pi := new(big.Rat).SetFloat64(math.Pi)
	assert.Equal(t, "355/113", limitDenominator(pi, big.NewInt(1000)).RatString())
	assert.Equal(t, "22/7", limitDenominator(pi, big.NewInt(10)).RatString())
	assert.Equal(t, "3", limitDenominator(pi, big.NewInt(1)).RatString())

	third := big.NewRat(1, 3)
	assert.Equal(t, "1/3", limitDenominator(third, big.NewInt(10)).RatString())

	// the float64 closest to 0.3 is slightly above it
	x := new(big.Rat).SetFloat64(0.3)
	assert.NotZero(t, x.Cmp(big.NewRat(3, 10)))
	assert.Equal(t, "3/10", limitDenominator(x, big.NewInt(1_000_000)).RatString())
}
