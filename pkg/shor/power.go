package shor

import (
	"fmt"

	"github.com/taurusgroup/shor/pkg/circuit"
	"github.com/taurusgroup/shor/pkg/math/arith"
)

// PowerModN returns the gate multiplying the down register by aˣ mod N, where x
// is the value of the up register.
//
// Operands are ordered as up (2n), down (n), aux (n+2). Exponent qubit i
// controls a multiplication by a^(2ⁱ) mod N, obtained by repeated squaring.
func PowerModN(n, N, a int) (*circuit.Gate, error) {
	c := circuit.New(fmt.Sprintf("power_mod_N_%d_%d", a, N))
	up := c.AddRegister("up", 2*n)
	down := c.AddRegister("down", n)
	aux := c.AddRegister("aux", n+2)

	qft := circuit.QFT(n+1, false)
	iqft := circuit.InverseQFT(n+1, false)

	phiAddN := PhiAdd(Angles(N, n+1))
	iPhiAddN := phiAddN.Inverse()
	cPhiAddN := phiAddN.Control(1)

	mod := arith.ModulusFromInt(N)
	for i := 0; i < 2*n; i++ {
		partialA := mod.ExpPow2(a, i)
		multiplier, err := ModularMultiplier(n, N, partialA, cPhiAddN, iPhiAddN, qft, iqft)
		if err != nil {
			return nil, err
		}
		c.Append(multiplier, circuit.Join([]int{up.At(i)}, down.Qubits(), aux.Qubits())...)
	}
	return c.ToGate(), nil
}
