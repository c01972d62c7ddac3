package arith

import (
	"errors"
	mrand "math/rand"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModulus_Exp(t *testing.T) {
	r := mrand.New(mrand.NewSource(0))
	for i := 0; i < 100; i++ {
		n := 2*r.Intn(5000) + 3
		m := ModulusFromInt(n)
		x := r.Intn(n)
		e := r.Intn(64)

		expected := 1
		for j := 0; j < e; j++ {
			expected = expected * x % n
		}
		assert.Equal(t, expected, m.Exp(x, e), "%d^%d mod %d", x, e, n)
	}
}

func TestModulus_ExpPow2(t *testing.T) {
	m := ModulusFromInt(15)
	// 2, 4, 16 = 1, 1, ...
	assert.Equal(t, 2, m.ExpPow2(2, 0))
	assert.Equal(t, 4, m.ExpPow2(2, 1))
	assert.Equal(t, 1, m.ExpPow2(2, 2))
	assert.Equal(t, 1, m.ExpPow2(2, 7))

	m = ModulusFromInt(21)
	for k := 0; k < 10; k++ {
		assert.Equal(t, m.Exp(5, 1<<k), m.ExpPow2(5, k))
	}
}

func TestModulus_Mul(t *testing.T) {
	m := ModulusFromInt(15)
	assert.Equal(t, 1, m.Mul(7, 13))
	assert.Equal(t, 8, m.Mul(-7, 1))
	assert.Equal(t, 4, m.Mul(19, 1))
	assert.True(t, m.IsUnit(7))
	assert.False(t, m.IsUnit(5))
}

func TestModInverse(t *testing.T) {
	for _, n := range []int{15, 21, 35, 77, 1009} {
		nMod := saferith.ModulusFromUint64(uint64(n))
		for a := 1; a < n; a++ {
			inv, err := ModInverse(a, n)
			if GCD(a, n) != 1 {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrNotInvertible))
				continue
			}
			require.NoError(t, err)
			assert.Equal(t, 1, a*inv%n)

			expected := new(saferith.Nat).ModInverse(new(saferith.Nat).SetUint64(uint64(a)), nMod)
			assert.Equal(t, expected.Big().Int64(), int64(inv))
		}
	}

	_, err := ModInverse(5, 15)
	assert.EqualError(t, err, "arith: modular inverse does not exist: the greatest common divisor of 5 and 15 is 5")
	_, err = ModInverse(3, 0)
	assert.Error(t, err)
}

func TestGCD(t *testing.T) {
	assert.Equal(t, 5, GCD(5, 15))
	assert.Equal(t, 1, GCD(-1, 15))
	assert.Equal(t, 15, GCD(0, 15))
	assert.Equal(t, 3, GCD(15, -3))
}

func TestIsPower(t *testing.T) {
	ok, b, p := IsPower(8)
	assert.True(t, ok)
	assert.Equal(t, 2, b)
	assert.Equal(t, 3, p)

	ok, b, p = IsPower(15)
	assert.False(t, ok)
	assert.Zero(t, b)
	assert.Zero(t, p)

	ok, b, p = IsPower(9)
	assert.True(t, ok)
	assert.Equal(t, 3, b)
	assert.Equal(t, 2, p)

	// 3^4 is found first as 9^2
	ok, b, p = IsPower(81)
	assert.True(t, ok)
	assert.Equal(t, 9, b)
	assert.Equal(t, 2, p)

	ok, _, _ = IsPower(1)
	assert.False(t, ok)
	ok, _, _ = IsPower(0)
	assert.False(t, ok)

	ok, b, p = IsPower(3 * 3 * 3 * 3 * 3 * 7 * 7 * 7 * 7 * 7)
	assert.True(t, ok)
	assert.Equal(t, 21, b)
	assert.Equal(t, 5, p)
}

func TestBitLen(t *testing.T) {
	assert.Equal(t, 4, BitLen(15))
	assert.Equal(t, 5, BitLen(16))
	assert.Equal(t, 1, BitLen(1))
}
