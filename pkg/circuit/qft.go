package circuit

import "math"

// QFT returns the quantum Fourier transform on n qubits.
//
// Qubit j is processed from the most significant down: a Hadamard followed by
// controlled phases of π/2^(j-k) from every lower qubit k. Without swaps the
// output is left in bit reversed order, which is the form expected by Fourier
// space addition.
func QFT(n int, swaps bool) *Gate {
	c := New("qft")
	q := c.AddRegister("q", n)
	for j := n - 1; j >= 0; j-- {
		c.H(q.At(j))
		for k := j - 1; k >= 0; k-- {
			c.CP(math.Ldexp(math.Pi, k-j), q.At(j), q.At(k))
		}
	}
	if swaps {
		for i := 0; i < n/2; i++ {
			c.Swap(q.At(i), q.At(n-i-1))
		}
	}
	return c.ToGate()
}

// InverseQFT returns the inverse of QFT(n, swaps).
func InverseQFT(n int, swaps bool) *Gate {
	g := QFT(n, swaps).Inverse()
	g.Name = "iqft"
	return g
}
