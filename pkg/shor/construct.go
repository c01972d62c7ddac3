package shor

import (
	"fmt"

	"github.com/taurusgroup/shor/pkg/circuit"
	"github.com/taurusgroup/shor/pkg/math/arith"
)

// Register names of the factoring circuit.
const (
	UpRegister          = "up"
	DownRegister        = "down"
	AuxRegister         = "aux"
	MeasurementRegister = "m"
)

// ConstructCircuit builds the order finding circuit for a modulo N.
//
// The up register (2n qubits) is put in uniform superposition, the down
// register (n qubits) is set to 1 and the aux register (n+2 qubits) is left at
// 0. After the modular exponentiation, an inverse QFT is applied to the up
// register, which is measured into the m register when measurement is set.
func ConstructCircuit(N, a int, measurement bool) (*circuit.Circuit, error) {
	if err := validate(N, a); err != nil {
		return nil, err
	}
	n := arith.BitLen(N)

	c := circuit.New(fmt.Sprintf("Shor(N=%d, a=%d)", N, a))
	up := c.AddRegister(UpRegister, 2*n)
	down := c.AddRegister(DownRegister, n)
	c.AddRegister(AuxRegister, n+2)

	c.H(up.Qubits()...)
	c.X(down.At(0))

	powerModN, err := PowerModN(n, N, a)
	if err != nil {
		return nil, err
	}
	all := make([]int, c.NumQubits())
	for i := range all {
		all[i] = i
	}
	c.Append(powerModN, all...)

	c.Append(circuit.InverseQFT(up.Size, true), up.Qubits()...)

	if measurement {
		m := c.AddClassicalRegister(MeasurementRegister, 2*n)
		c.MeasureRegister(up, m)
	}
	return c, nil
}
