package shor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/shor/pkg/circuit"
)

func multiplierGates(n, N int) (cPhiAddN, iPhiAddN, qft, iqft *circuit.Gate) {
	phiAddN := PhiAdd(Angles(N, n+1))
	return phiAddN.Control(1), phiAddN.Inverse(), circuit.QFT(n+1, false), circuit.InverseQFT(n+1, false)
}

func TestModularMultiplier(t *testing.T) {
	const N = 15
	const n = 4
	const a = 7
	cPhiAddN, iPhiAddN, qft, iqft := multiplierGates(n, N)
	mult, err := ModularMultiplier(n, N, a, cPhiAddN, iPhiAddN, qft, iqft)
	require.NoError(t, err)
	assert.Equal(t, "cmult_a_mod_N", mult.Name)
	assert.Equal(t, 2*n+3, mult.Width)

	for _, ctrl := range []int{0, 1} {
		for x := 0; x < N; x++ {
			c := circuit.New("test")
			cr := c.AddRegister("ctrl", 1)
			xr := c.AddRegister("x", n)
			aux := c.AddRegister("aux", n+2)
			setValue(c, cr, ctrl)
			setValue(c, xr, x)
			c.Append(mult, circuit.Join(cr.Qubits(), xr.Qubits(), aux.Qubits())...)

			expected := x
			if ctrl == 1 {
				expected = a * x % N
			}
			index := runBasis(t, c)
			assert.Equal(t, expected, readValue(index, xr), "x=%d ctrl=%d", x, ctrl)
			assert.Zero(t, readValue(index, aux), "ancillas must be cleared")
		}
	}
}

func TestModularMultiplier_Inverse(t *testing.T) {
	const n = 4
	for _, tc := range []struct{ N, a int }{{13, 5}, {15, 7}, {9, 2}} {
		cPhiAddN, iPhiAddN, qft, iqft := multiplierGates(n, tc.N)
		mult, err := ModularMultiplier(n, tc.N, tc.a, cPhiAddN, iPhiAddN, qft, iqft)
		require.NoError(t, err)

		for x := 0; x < tc.N; x++ {
			c := circuit.New("test")
			cr := c.AddRegister("ctrl", 1)
			xr := c.AddRegister("x", n)
			aux := c.AddRegister("aux", n+2)
			setValue(c, cr, 1)
			setValue(c, xr, x)
			all := circuit.Join(cr.Qubits(), xr.Qubits(), aux.Qubits())
			c.Append(mult, all...)
			c.Append(mult.Inverse(), all...)

			index := runBasis(t, c)
			assert.Equal(t, x, readValue(index, xr), "N=%d a=%d x=%d", tc.N, tc.a, x)
			assert.Zero(t, readValue(index, aux))
		}
	}
}

func TestModularMultiplier_NotInvertible(t *testing.T) {
	cPhiAddN, iPhiAddN, qft, iqft := multiplierGates(4, 15)
	_, err := ModularMultiplier(4, 15, 5, cPhiAddN, iPhiAddN, qft, iqft)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
