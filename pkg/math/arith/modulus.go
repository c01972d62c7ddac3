package arith

import (
	"github.com/cronokirby/saferith"
)

// Modulus wraps a saferith.Modulus for the small moduli used when building
// factoring circuits, and exposes the operations on plain ints.
type Modulus struct {
	*saferith.Modulus
	n int
}

// ModulusFromInt creates a Modulus for n > 1.
func ModulusFromInt(n int) *Modulus {
	if n <= 1 {
		panic("arith: modulus must be greater than 1")
	}
	return &Modulus{
		Modulus: saferith.ModulusFromUint64(uint64(n)),
		n:       n,
	}
}

func (m *Modulus) nat(x int) *saferith.Nat {
	x %= m.n
	if x < 0 {
		x += m.n
	}
	return new(saferith.Nat).SetUint64(uint64(x))
}

func toInt(x *saferith.Nat) int {
	return int(x.Big().Int64())
}

// Mul returns x⋅y (mod n).
func (m *Modulus) Mul(x, y int) int {
	return toInt(new(saferith.Nat).ModMul(m.nat(x), m.nat(y), m.Modulus))
}

// Exp returns xᵉ (mod n), for e ≥ 0.
func (m *Modulus) Exp(x, e int) int {
	if e < 0 {
		panic("arith: negative exponent")
	}
	return toInt(new(saferith.Nat).Exp(m.nat(x), new(saferith.Nat).SetUint64(uint64(e)), m.Modulus))
}

// ExpPow2 returns x^(2ᵏ) (mod n), obtained by squaring x k times.
func (m *Modulus) ExpPow2(x, k int) int {
	y := m.nat(x)
	for i := 0; i < k; i++ {
		y = new(saferith.Nat).ModMul(y, y, m.Modulus)
	}
	return toInt(y)
}

// IsUnit returns true if x is invertible modulo n.
func (m *Modulus) IsUnit(x int) bool {
	return m.nat(x).IsUnit(m.Modulus) == 1
}
