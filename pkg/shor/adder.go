package shor

import "github.com/taurusgroup/shor/pkg/circuit"

// PhiAdd returns the gate adding a constant in Fourier space: a phase of
// angles[i] on qubit i.
func PhiAdd(angles []float64) *circuit.Gate {
	c := circuit.New("phi_add_a")
	q := c.AddRegister("q", len(angles))
	for i, angle := range angles {
		c.P(angle, q.At(i))
	}
	return c.ToGate()
}

// ModularAdder returns the doubly controlled addition of a constant modulo N,
// for a b register already in the Fourier basis.
//
// angles encodes the constant over len(angles) = n+1 qubits. cPhiAddN adds N
// under a single control, iPhiAddN subtracts N, and qft / iqft enter and leave
// the Fourier basis on the b register.
//
// Operands are ordered as ctrl (2), b (n+1), flag (1). The flag qubit holds the
// overflow bit in between and is always returned to |0⟩.
func ModularAdder(angles []float64, cPhiAddN, iPhiAddN, qft, iqft *circuit.Gate) *circuit.Gate {
	c := circuit.New("ccphi_add_a_mod_N")
	ctrl := c.AddRegister("ctrl", 2)
	b := c.AddRegister("b", len(angles))
	flag := c.AddRegister("flag", 1)

	ccPhiAddA := PhiAdd(angles).Control(2)
	ccIPhiAddA := ccPhiAddA.Inverse()

	controlled := circuit.Join(ctrl.Qubits(), b.Qubits())
	flagged := circuit.Join(flag.Qubits(), b.Qubits())

	// b + a - N
	c.Append(ccPhiAddA, controlled...)
	c.Append(iPhiAddN, b.Qubits()...)

	// the sign of b + a - N goes into the flag
	c.Append(iqft, b.Qubits()...)
	c.CX(b.Last(), flag.At(0))
	c.Append(qft, b.Qubits()...)

	// add N back on underflow, then compare again with a removed
	c.Append(cPhiAddN, flagged...)
	c.Append(ccIPhiAddA, controlled...)

	// uncompute the flag
	c.Append(iqft, b.Qubits()...)
	c.X(b.Last())
	c.CX(b.Last(), flag.At(0))
	c.X(b.Last())
	c.Append(qft, b.Qubits()...)

	c.Append(ccPhiAddA, controlled...)
	return c.ToGate()
}
