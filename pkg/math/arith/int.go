package arith

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

// ErrNotInvertible is returned when a modular inverse does not exist.
var ErrNotInvertible = errors.New("arith: modular inverse does not exist")

// GCD returns the non negative greatest common divisor of a and b.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// BitLen returns the minimum number of bits needed to represent n ≥ 0.
func BitLen(n int) int {
	return bits.Len(uint(n))
}

// ModInverse returns x in [0, m) such that a⋅x = 1 (mod m).
//
// The extended Euclidean algorithm is run iteratively. An error wrapping
// ErrNotInvertible is returned when gcd(a, m) ≠ 1.
func ModInverse(a, m int) (int, error) {
	if m <= 0 {
		return 0, fmt.Errorf("arith: modulus %d must be positive", m)
	}
	oldR, r := a, m
	oldS, s := 1, 0
	for r != 0 {
		q := floorDiv(oldR, r)
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldR < 0 {
		oldR, oldS = -oldR, -oldS
	}
	if oldR != 1 {
		return 0, fmt.Errorf("%w: the greatest common divisor of %d and %d is %d", ErrNotInvertible, a, m, oldR)
	}
	x := oldS % m
	if x < 0 {
		x += m
	}
	return x, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// IsPower checks whether n = bᵖ for some integer b and p ≥ 2.
//
// Exponents are scanned from 2 up to the bit length of n, and the smallest one
// for which the rounded p-th root of n is exact is returned.
// Values below 2 are never reported as powers: IsPower(1) returns false.
func IsPower(n int) (ok bool, base, exponent int) {
	if n < 2 {
		return false, 0, 0
	}
	target := big.NewInt(int64(n))
	var candidate, pow big.Int
	for p := 2; p <= BitLen(n); p++ {
		b := int64(math.Round(math.Pow(float64(n), 1/float64(p))))
		// the floating point root may be off by one for large n
		for _, c := range []int64{b, b - 1, b + 1} {
			if c < 2 {
				continue
			}
			candidate.SetInt64(c)
			pow.Exp(&candidate, big.NewInt(int64(p)), nil)
			if pow.Cmp(target) == 0 {
				return true, int(c), p
			}
		}
	}
	return false, 0, 0
}
