package shor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taurusgroup/shor/pkg/circuit"
)

func TestPhiAdd(t *testing.T) {
	const n = 4
	for _, a := range []int{0, 1, 3, 7, 11, 15} {
		for x := 0; x < 1<<n; x++ {
			for _, inverse := range []bool{false, true} {
				c := circuit.New("test")
				q := c.AddRegister("q", n)
				setValue(c, q, x)

				add := PhiAdd(Angles(a, n))
				if inverse {
					add = add.Inverse()
				}
				c.Append(circuit.QFT(n, false), q.Qubits()...)
				c.Append(add, q.Qubits()...)
				c.Append(circuit.InverseQFT(n, false), q.Qubits()...)

				expected := (x + a) % (1 << n)
				if inverse {
					expected = (x - a + 1<<n) % (1 << n)
				}
				assert.Equal(t, expected, readValue(runBasis(t, c), q), "x=%d a=%d inverse=%t", x, a, inverse)
			}
		}
	}
}

func TestPhiAdd_Control(t *testing.T) {
	const n = 3
	g := PhiAdd(Angles(3, n)).Control(2)
	assert.Equal(t, n+2, g.Width)
	for _, ctrl := range []int{0, 1, 2, 3} {
		c := circuit.New("test")
		cr := c.AddRegister("ctrl", 2)
		q := c.AddRegister("q", n)
		setValue(c, cr, ctrl)
		setValue(c, q, 6)

		c.Append(circuit.QFT(n, false), q.Qubits()...)
		c.Append(g, circuit.Join(cr.Qubits(), q.Qubits())...)
		c.Append(circuit.InverseQFT(n, false), q.Qubits()...)

		expected := 6
		if ctrl == 3 {
			expected = (6 + 3) % 8
		}
		index := runBasis(t, c)
		assert.Equal(t, expected, readValue(index, q), "ctrl=%b", ctrl)
		assert.Equal(t, ctrl, readValue(index, cr))
	}
}

func TestModularAdder(t *testing.T) {
	const N = 11
	const n = 4
	qft := circuit.QFT(n+1, false)
	iqft := circuit.InverseQFT(n+1, false)
	phiAddN := PhiAdd(Angles(N, n+1))

	for _, a := range []int{1, 5, 10} {
		adder := ModularAdder(Angles(a, n+1), phiAddN.Control(1), phiAddN.Inverse(), qft, iqft)
		assert.Equal(t, n+4, adder.Width)

		for b := 0; b < N; b++ {
			for ctrl := 0; ctrl < 4; ctrl++ {
				c := circuit.New("test")
				cr := c.AddRegister("ctrl", 2)
				br := c.AddRegister("b", n+1)
				flag := c.AddRegister("flag", 1)
				setValue(c, cr, ctrl)
				setValue(c, br, b)

				c.Append(qft, br.Qubits()...)
				c.Append(adder, circuit.Join(cr.Qubits(), br.Qubits(), flag.Qubits())...)
				c.Append(iqft, br.Qubits()...)

				expected := b
				if ctrl == 3 {
					expected = (b + a) % N
				}
				index := runBasis(t, c)
				assert.Equal(t, expected, readValue(index, br), "a=%d b=%d ctrl=%b", a, b, ctrl)
				assert.Zero(t, readValue(index, flag), "flag must be cleared")
				assert.Equal(t, ctrl, readValue(index, cr))
			}
		}
	}
}
