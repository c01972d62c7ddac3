package simulator

import (
	"math"
	"math/cmplx"

	"github.com/taurusgroup/shor/pkg/circuit"
)

// state is a dense statevector; bit q of an index is the value of qubit q.
type state struct {
	amplitudes []complex128
}

func newState(numQubits int) *state {
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1
	return &state{amplitudes: amps}
}

// apply applies a primitive instruction.
func (s *state) apply(inst circuit.Instruction) {
	g := inst.Gate
	mask := 0
	for _, q := range inst.Qubits[:g.Controls] {
		mask |= 1 << q
	}
	targets := inst.Qubits[g.Controls:]

	switch g.Kind {
	case circuit.KindH:
		s.applyH(mask, 1<<targets[0])
	case circuit.KindX:
		s.applyX(mask, 1<<targets[0])
	case circuit.KindPhase:
		s.applyPhase(mask|1<<targets[0], cmplx.Exp(complex(0, g.Param)))
	case circuit.KindSwap:
		s.applySwap(mask, 1<<targets[0], 1<<targets[1])
	case circuit.KindMeasure:
		// measurements are handled by the caller
	default:
		panic("simulator: cannot apply gate " + g.Name)
	}
}

func (s *state) applyH(mask, bit int) {
	h := complex(1/math.Sqrt2, 0)
	amps := s.amplitudes
	for i := range amps {
		if i&bit != 0 || i&mask != mask {
			continue
		}
		j := i | bit
		a, b := amps[i], amps[j]
		amps[i] = h * (a + b)
		amps[j] = h * (a - b)
	}
}

func (s *state) applyX(mask, bit int) {
	amps := s.amplitudes
	for i := range amps {
		if i&bit != 0 || i&mask != mask {
			continue
		}
		j := i | bit
		amps[i], amps[j] = amps[j], amps[i]
	}
}

func (s *state) applyPhase(mask int, f complex128) {
	amps := s.amplitudes
	for i := range amps {
		if i&mask == mask {
			amps[i] *= f
		}
	}
}

func (s *state) applySwap(mask, a, b int) {
	amps := s.amplitudes
	for i := range amps {
		if i&a == 0 || i&b != 0 || i&mask != mask {
			continue
		}
		j := i ^ a ^ b
		amps[i], amps[j] = amps[j], amps[i]
	}
}
