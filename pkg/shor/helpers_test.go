package shor

import (
	"context"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/shor/pkg/circuit"
	"github.com/taurusgroup/shor/pkg/simulator"
)

// setValue prepares the basis value v on r with X gates.
func setValue(c *circuit.Circuit, r circuit.Register, v int) {
	for i := 0; i < r.Size; i++ {
		if v>>i&1 == 1 {
			c.X(r.At(i))
		}
	}
}

// readValue extracts the value of r from a basis state index.
func readValue(index int, r circuit.Register) int {
	v := 0
	for i := 0; i < r.Size; i++ {
		v |= (index >> r.At(i) & 1) << i
	}
	return v
}

// runBasis simulates c, which must end in a computational basis state with
// amplitude exactly 1, and returns the index of that state.
func runBasis(t *testing.T, c *circuit.Circuit) int {
	t.Helper()
	amplitudes, err := simulator.New().RunStatevector(context.Background(), c)
	require.NoError(t, err)
	for i, amp := range amplitudes {
		if cmplx.Abs(amp) > 0.999 {
			require.InDelta(t, 1, real(amp), 1e-9, "phase error at basis state %d", i)
			require.InDelta(t, 0, imag(amp), 1e-9, "phase error at basis state %d", i)
			return i
		}
	}
	require.FailNow(t, "final state is not a basis state")
	return -1
}
