package backend

import (
	"errors"
	"fmt"
	"math/bits"

	"gonum.org/v1/gonum/floats"
)

// Distribution maps a bitstring to its probability.
type Distribution map[string]float64

// Marginal traces out every qubit except qubits from a full statevector and
// returns the probability of each outcome of the remaining ones.
//
// Bit k of an outcome is the value of qubits[k]. Outcomes whose probability is
// not above threshold are dropped.
func Marginal(amplitudes []complex128, qubits []int, threshold float64) (Distribution, error) {
	if len(amplitudes) == 0 || bits.OnesCount(uint(len(amplitudes))) != 1 {
		return nil, fmt.Errorf("backend: statevector length %d is not a power of two", len(amplitudes))
	}
	numQubits := bits.TrailingZeros(uint(len(amplitudes)))
	if len(qubits) == 0 || len(qubits) > numQubits {
		return nil, fmt.Errorf("backend: cannot marginalize %d qubits out of %d", len(qubits), numQubits)
	}
	for _, q := range qubits {
		if q < 0 || q >= numQubits {
			return nil, fmt.Errorf("backend: qubit %d out of range [0, %d)", q, numQubits)
		}
	}
	if threshold < 0 {
		return nil, errors.New("backend: negative threshold")
	}

	probs := make([]float64, 1<<len(qubits))
	for i, amp := range amplitudes {
		p := real(amp)*real(amp) + imag(amp)*imag(amp)
		if p == 0 {
			continue
		}
		var k int
		for bit, q := range qubits {
			k |= (i >> q & 1) << bit
		}
		probs[k] += p
	}

	total := floats.Sum(probs)
	if total == 0 {
		return nil, errors.New("backend: statevector has zero norm")
	}
	floats.Scale(1/total, probs)

	dist := make(Distribution)
	for k, p := range probs {
		if p > threshold {
			dist[Bitstring(uint64(k), len(qubits))] = p
		}
	}
	return dist, nil
}

// Distribution returns the relative frequency of every observed bitstring.
func (c Counts) Distribution() Distribution {
	total := 0
	for _, n := range c {
		total += n
	}
	dist := make(Distribution, len(c))
	if total == 0 {
		return dist
	}
	for s, n := range c {
		if n > 0 {
			dist[s] = float64(n) / float64(total)
		}
	}
	return dist
}
