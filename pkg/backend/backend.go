// Package backend defines the contract between the factoring core and the
// service executing its circuits.
package backend

import (
	"context"
	"fmt"
	"strings"

	"github.com/taurusgroup/shor/pkg/circuit"
)

// Mode selects how a circuit is executed.
type Mode string

const (
	// ModeCounts runs the measured circuit a number of times and returns a histogram.
	ModeCounts Mode = "counts"
	// ModeStatevector runs the unmeasured circuit once and returns its final amplitudes.
	ModeStatevector Mode = "statevector"
)

// ParseMode converts a string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case ModeCounts, ModeStatevector:
		return m, nil
	default:
		return "", fmt.Errorf("backend: unknown mode %q", s)
	}
}

// Counts maps a measured bitstring to the number of times it was observed.
//
// Bitstrings are big-endian: the first character is the most significant classical bit.
type Counts map[string]int

// Backend is an Execution Service.
//
// Implementations own the qubit state. They receive a complete circuit
// description, including its register layout, and return a complete result.
type Backend interface {
	// RunCounts executes the measured circuit shots times.
	RunCounts(ctx context.Context, c *circuit.Circuit, shots int) (Counts, error)
	// RunStatevector returns the final state of the circuit. Amplitude i
	// corresponds to the basis state whose bit q is the value of qubit q.
	RunStatevector(ctx context.Context, c *circuit.Circuit) ([]complex128, error)
}

// Bitstring formats the low width bits of v, most significant first.
func Bitstring(v uint64, width int) string {
	var sb strings.Builder
	sb.Grow(width)
	for i := width - 1; i >= 0; i-- {
		if v>>uint(i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
