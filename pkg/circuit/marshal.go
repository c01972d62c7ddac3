package circuit

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// The wire form stores every distinct gate definition once, children before
// parents, and refers to gates by their position in that table.

type instructionMarshal struct {
	Gate   int
	Qubits []int
	Clbits []int `cbor:",omitempty"`
}

type gateMarshal struct {
	Name     string
	Kind     Kind
	Param    float64
	Controls int     `cbor:",omitempty"`
	Width    int
	Body     []instructionMarshal `cbor:",omitempty"`
}

type circuitMarshal struct {
	Name  string
	Qregs []Register
	Cregs []Register `cbor:",omitempty"`
	Gates []gateMarshal
	Ops   []instructionMarshal
}

type gateTable struct {
	index map[*Gate]int
	gates []gateMarshal
}

func (t *gateTable) add(g *Gate) int {
	if i, ok := t.index[g]; ok {
		return i
	}
	gm := gateMarshal{
		Name:     g.Name,
		Kind:     g.Kind,
		Param:    g.Param,
		Controls: g.Controls,
		Width:    g.Width,
	}
	if len(g.Body) > 0 {
		gm.Body = make([]instructionMarshal, len(g.Body))
		for i, inst := range g.Body {
			gm.Body[i] = instructionMarshal{Gate: t.add(inst.Gate), Qubits: inst.Qubits}
		}
	}
	t.index[g] = len(t.gates)
	t.gates = append(t.gates, gm)
	return t.index[g]
}

// MarshalBinary encodes the circuit description with CBOR.
func (c *Circuit) MarshalBinary() ([]byte, error) {
	t := &gateTable{index: make(map[*Gate]int)}
	ops := make([]instructionMarshal, len(c.ops))
	for i, inst := range c.ops {
		ops[i] = instructionMarshal{
			Gate:   t.add(inst.Gate),
			Qubits: inst.Qubits,
			Clbits: inst.Clbits,
		}
	}
	return cbor.Marshal(&circuitMarshal{
		Name:  c.name,
		Qregs: c.qregs,
		Cregs: c.cregs,
		Gates: t.gates,
		Ops:   ops,
	})
}

// UnmarshalBinary decodes a circuit produced by MarshalBinary, validating every operand.
func (c *Circuit) UnmarshalBinary(data []byte) error {
	var cm circuitMarshal
	if err := cbor.Unmarshal(data, &cm); err != nil {
		return fmt.Errorf("circuit: unmarshal: %w", err)
	}

	decoded := New(cm.Name)
	for _, r := range cm.Qregs {
		if r.Offset != decoded.numQubits || r.Size <= 0 {
			return fmt.Errorf("circuit: unmarshal: register %s is not contiguous", r.Name)
		}
		if _, ok := decoded.Register(r.Name); ok {
			return fmt.Errorf("circuit: unmarshal: duplicate register %s", r.Name)
		}
		decoded.AddRegister(r.Name, r.Size)
	}
	for _, r := range cm.Cregs {
		if r.Offset != decoded.numClbits || r.Size <= 0 {
			return fmt.Errorf("circuit: unmarshal: classical register %s is not contiguous", r.Name)
		}
		decoded.AddClassicalRegister(r.Name, r.Size)
	}

	gates := make([]*Gate, len(cm.Gates))
	for i, gm := range cm.Gates {
		g, err := decodeGate(gm, gates[:i])
		if err != nil {
			return fmt.Errorf("circuit: unmarshal: gate %d: %w", i, err)
		}
		gates[i] = g
	}

	for i, op := range cm.Ops {
		if op.Gate < 0 || op.Gate >= len(gates) {
			return fmt.Errorf("circuit: unmarshal: instruction %d: unknown gate %d", i, op.Gate)
		}
		g := gates[op.Gate]
		if err := decoded.validateOperands(g, op.Qubits); err != nil {
			return fmt.Errorf("circuit: unmarshal: instruction %d: %w", i, err)
		}
		if g.Kind == KindMeasure {
			if len(op.Clbits) != 1 || op.Clbits[0] < 0 || op.Clbits[0] >= decoded.numClbits {
				return fmt.Errorf("circuit: unmarshal: instruction %d: invalid clbit", i)
			}
		}
		decoded.ops = append(decoded.ops, Instruction{Gate: g, Qubits: op.Qubits, Clbits: op.Clbits})
	}

	*c = *decoded
	return nil
}

func decodeGate(gm gateMarshal, known []*Gate) (*Gate, error) {
	if gm.Width <= 0 || gm.Controls < 0 || gm.Controls > gm.Width {
		return nil, fmt.Errorf("%s: invalid width %d with %d controls", gm.Name, gm.Width, gm.Controls)
	}
	switch gm.Kind {
	case KindH, KindX, KindPhase, KindMeasure:
		if gm.Width-gm.Controls != 1 {
			return nil, fmt.Errorf("%s: expected a single target", gm.Name)
		}
	case KindSwap:
		if gm.Width-gm.Controls != 2 {
			return nil, fmt.Errorf("%s: expected two targets", gm.Name)
		}
	case KindComposite:
	default:
		return nil, fmt.Errorf("%s: unknown kind %d", gm.Name, gm.Kind)
	}
	if gm.Kind == KindMeasure && gm.Controls != 0 {
		return nil, errors.New("controlled measurement")
	}
	if gm.Kind != KindComposite {
		if len(gm.Body) != 0 {
			return nil, fmt.Errorf("%s: primitive gate with a body", gm.Name)
		}
		return &Gate{Name: gm.Name, Kind: gm.Kind, Param: gm.Param, Controls: gm.Controls, Width: gm.Width}, nil
	}

	local := &Circuit{name: gm.Name, numQubits: gm.Width}
	body := make([]Instruction, len(gm.Body))
	for i, inst := range gm.Body {
		if inst.Gate < 0 || inst.Gate >= len(known) {
			return nil, fmt.Errorf("%s: instruction %d refers to unknown gate %d", gm.Name, i, inst.Gate)
		}
		sub := known[inst.Gate]
		if sub.Kind == KindMeasure {
			return nil, fmt.Errorf("%s: measurement inside a gate", gm.Name)
		}
		if err := local.validateOperands(sub, inst.Qubits); err != nil {
			return nil, err
		}
		body[i] = Instruction{Gate: sub, Qubits: inst.Qubits}
	}
	return &Gate{Name: gm.Name, Kind: KindComposite, Controls: gm.Controls, Width: gm.Width, Body: body}, nil
}
