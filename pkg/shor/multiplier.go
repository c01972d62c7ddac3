package shor

import (
	"fmt"

	"github.com/taurusgroup/shor/pkg/circuit"
	"github.com/taurusgroup/shor/pkg/math/arith"
)

// ModularMultiplier returns the gate mapping |c⟩|x⟩|0⟩|0⟩ to |c⟩|aᶜ⋅x mod N⟩|0⟩|0⟩,
// for x < N.
//
// Operands are ordered as ctrl (1), x (n), b (n+1), flag (1). The b register
// accumulates a⋅x mod N, is swapped with x, and is then cleared by subtracting
// a⁻¹ times the new x. a must be invertible mod N.
func ModularMultiplier(n, N, a int, cPhiAddN, iPhiAddN, qft, iqft *circuit.Gate) (*circuit.Gate, error) {
	aInv, err := arith.ModInverse(a, N)
	if err != nil {
		return nil, fmt.Errorf("shor: multiplier for %d mod %d: %w: %w", a, N, ErrInvalidArgument, err)
	}
	mod := arith.ModulusFromInt(N)

	c := circuit.New("cmult_a_mod_N")
	ctrl := c.AddRegister("ctrl", 1)
	x := c.AddRegister("x", n)
	b := c.AddRegister("b", n+1)
	flag := c.AddRegister("flag", 1)

	appendAdder := func(constant, idx int, inverse bool) {
		partial := mod.Mul(mod.Exp(2, idx), constant)
		adder := ModularAdder(Angles(partial, n+1), cPhiAddN, iPhiAddN, qft, iqft)
		if inverse {
			adder = adder.Inverse()
		}
		c.Append(adder, circuit.Join(ctrl.Qubits(), []int{x.At(idx)}, b.Qubits(), flag.Qubits())...)
	}

	c.Append(qft, b.Qubits()...)
	for i := 0; i < n; i++ {
		appendAdder(a, i, false)
	}
	c.Append(iqft, b.Qubits()...)

	for i := 0; i < n; i++ {
		c.CSwap(ctrl.At(0), x.At(i), b.At(i))
	}

	c.Append(qft, b.Qubits()...)
	for i := n - 1; i >= 0; i-- {
		appendAdder(aInv, i, true)
	}
	c.Append(iqft, b.Qubits()...)

	return c.ToGate(), nil
}
