package circuit

import (
	"fmt"
	"strings"
)

// Kind identifies the operation performed by a Gate.
type Kind uint8

const (
	KindH Kind = iota + 1
	KindX
	KindPhase
	KindSwap
	KindMeasure
	KindComposite
)

func (k Kind) String() string {
	switch k {
	case KindH:
		return "h"
	case KindX:
		return "x"
	case KindPhase:
		return "p"
	case KindSwap:
		return "swap"
	case KindMeasure:
		return "measure"
	case KindComposite:
		return "composite"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Gate is an immutable gate definition.
//
// The first Controls operands of a gate are its controls, the remaining ones are
// its targets. A composite gate carries its definition in Body, expressed over
// local operand indices 0..Width-1. Controls of a composite gate are already
// pushed down into every instruction of its body.
type Gate struct {
	Name string
	Kind Kind
	// Param is the rotation angle of a phase gate, in radians.
	Param float64
	// Controls is the number of leading operands acting as controls.
	Controls int
	// Width is the total number of operands, controls included.
	Width int
	// Body is the definition of a composite gate.
	Body []Instruction
}

// Instruction is the application of a gate to an ordered list of operands.
type Instruction struct {
	Gate   *Gate
	Qubits []int
	// Clbits holds the classical bit written by a measurement.
	Clbits []int
}

var (
	hGate    = &Gate{Name: "h", Kind: KindH, Width: 1}
	xGate    = &Gate{Name: "x", Kind: KindX, Width: 1}
	swapGate = &Gate{Name: "swap", Kind: KindSwap, Width: 2}
	measure  = &Gate{Name: "measure", Kind: KindMeasure, Width: 1}
)

// HGate returns the Hadamard gate.
func HGate() *Gate { return hGate }

// XGate returns the bit flip gate.
func XGate() *Gate { return xGate }

// SwapGate returns the two qubit swap gate.
func SwapGate() *Gate { return swapGate }

// PhaseGate returns diag(1, e^{iθ}).
func PhaseGate(theta float64) *Gate {
	return &Gate{Name: "p", Kind: KindPhase, Param: theta, Width: 1}
}

// IsPrimitive returns true if the gate is applied directly by an executor.
func (g *Gate) IsPrimitive() bool {
	return g.Kind != KindComposite
}

// Inverse returns the gate undoing g.
//
// Phase gates negate their angle, H, X and swap are their own inverse, and
// composite gates invert every instruction of their body in reverse order.
func (g *Gate) Inverse() *Gate {
	switch g.Kind {
	case KindH, KindX, KindSwap:
		return g
	case KindPhase:
		inv := *g
		inv.Param = -g.Param
		return &inv
	case KindComposite:
		body := make([]Instruction, len(g.Body))
		for i, inst := range g.Body {
			body[len(body)-1-i] = Instruction{
				Gate:   inst.Gate.Inverse(),
				Qubits: inst.Qubits,
			}
		}
		name := g.Name + "_dg"
		if strings.HasSuffix(g.Name, "_dg") {
			name = strings.TrimSuffix(g.Name, "_dg")
		}
		return &Gate{
			Name:     name,
			Kind:     KindComposite,
			Controls: g.Controls,
			Width:    g.Width,
			Body:     body,
		}
	default:
		panic(fmt.Sprintf("circuit: gate %s of kind %s has no inverse", g.Name, g.Kind))
	}
}

// Control returns g with k additional control operands prepended.
//
// Relative order of the original operands is unchanged: operand i of g becomes
// operand i+k of the controlled gate.
func (g *Gate) Control(k int) *Gate {
	if k < 0 {
		panic(fmt.Sprintf("circuit: negative control count %d", k))
	}
	if k == 0 {
		return g
	}
	if g.Kind == KindMeasure {
		panic("circuit: measurement cannot be controlled")
	}
	out := &Gate{
		Name:     strings.Repeat("c", k) + g.Name,
		Kind:     g.Kind,
		Param:    g.Param,
		Controls: g.Controls + k,
		Width:    g.Width + k,
	}
	if g.Kind != KindComposite {
		return out
	}
	controls := make([]int, k)
	for i := range controls {
		controls[i] = i
	}
	out.Body = make([]Instruction, len(g.Body))
	for i, inst := range g.Body {
		qubits := make([]int, 0, k+len(inst.Qubits))
		qubits = append(qubits, controls...)
		for _, q := range inst.Qubits {
			qubits = append(qubits, q+k)
		}
		out.Body[i] = Instruction{Gate: inst.Gate.Control(k), Qubits: qubits}
	}
	return out
}

// Size returns the number of primitive instructions g expands to.
func (g *Gate) Size() int {
	if g.Kind != KindComposite {
		return 1
	}
	n := 0
	for _, inst := range g.Body {
		n += inst.Gate.Size()
	}
	return n
}
