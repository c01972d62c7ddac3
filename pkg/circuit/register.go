package circuit

import "fmt"

// Register is a named, contiguous range of qubit (or classical bit) indices
// inside a circuit. It does not own any state.
type Register struct {
	Name   string
	Offset int
	Size   int
}

// At returns the circuit index of the i-th element of the register.
func (r Register) At(i int) int {
	if i < 0 || i >= r.Size {
		panic(fmt.Sprintf("circuit: index %d out of range for register %s of size %d", i, r.Name, r.Size))
	}
	return r.Offset + i
}

// Last returns the circuit index of the most significant element of the register.
func (r Register) Last() int {
	return r.At(r.Size - 1)
}

// Qubits returns the circuit indices of the register, least significant first.
func (r Register) Qubits() []int {
	out := make([]int, r.Size)
	for i := range out {
		out[i] = r.Offset + i
	}
	return out
}

// Contains returns true if q belongs to the register.
func (r Register) Contains(q int) bool {
	return q >= r.Offset && q < r.Offset+r.Size
}

// Join concatenates operand lists into a single one, preserving order.
func Join(parts ...[]int) []int {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]int, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
