package circuit

import "fmt"

// Circuit is an append-only list of instructions over a set of registers.
//
// Qubit indices are assigned to registers in the order they are added.
// Instructions are validated when appended and are never modified afterwards.
type Circuit struct {
	name      string
	qregs     []Register
	cregs     []Register
	numQubits int
	numClbits int
	ops       []Instruction
}

// New creates an empty circuit.
func New(name string) *Circuit {
	return &Circuit{name: name}
}

// Name returns the name given to the circuit.
func (c *Circuit) Name() string { return c.name }

// NumQubits returns the total width of the quantum registers.
func (c *Circuit) NumQubits() int { return c.numQubits }

// NumClbits returns the total width of the classical registers.
func (c *Circuit) NumClbits() int { return c.numClbits }

// Len returns the number of instructions appended so far.
func (c *Circuit) Len() int { return len(c.ops) }

// AddRegister allocates size new qubits.
func (c *Circuit) AddRegister(name string, size int) Register {
	if size <= 0 {
		panic(fmt.Sprintf("circuit: register %s must have positive size, got %d", name, size))
	}
	if _, ok := c.Register(name); ok {
		panic(fmt.Sprintf("circuit: duplicate register %s", name))
	}
	r := Register{Name: name, Offset: c.numQubits, Size: size}
	c.qregs = append(c.qregs, r)
	c.numQubits += size
	return r
}

// AddClassicalRegister allocates size new classical bits.
func (c *Circuit) AddClassicalRegister(name string, size int) Register {
	if size <= 0 {
		panic(fmt.Sprintf("circuit: register %s must have positive size, got %d", name, size))
	}
	r := Register{Name: name, Offset: c.numClbits, Size: size}
	c.cregs = append(c.cregs, r)
	c.numClbits += size
	return r
}

// Register looks up a quantum register by name.
func (c *Circuit) Register(name string) (Register, bool) {
	for _, r := range c.qregs {
		if r.Name == name {
			return r, true
		}
	}
	return Register{}, false
}

// Registers returns the quantum registers in allocation order.
func (c *Circuit) Registers() []Register {
	return append([]Register(nil), c.qregs...)
}

// ClassicalRegisters returns the classical registers in allocation order.
func (c *Circuit) ClassicalRegisters() []Register {
	return append([]Register(nil), c.cregs...)
}

// Instructions returns a copy of the top level instructions.
func (c *Circuit) Instructions() []Instruction {
	return append([]Instruction(nil), c.ops...)
}

// Append applies g to qubits.
//
// It panics if the number of operands does not match the width of g, if an
// operand is outside the circuit, or if an operand is repeated.
func (c *Circuit) Append(g *Gate, qubits ...int) {
	if g.Kind == KindMeasure {
		panic("circuit: use Measure to append a measurement")
	}
	c.checkQubits(g, qubits)
	c.ops = append(c.ops, Instruction{Gate: g, Qubits: append([]int(nil), qubits...)})
}

func (c *Circuit) checkQubits(g *Gate, qubits []int) {
	if err := c.validateOperands(g, qubits); err != nil {
		panic(err.Error())
	}
}

func (c *Circuit) validateOperands(g *Gate, qubits []int) error {
	if len(qubits) != g.Width {
		return fmt.Errorf("circuit: %s: gate %s expects %d operands, got %d", c.name, g.Name, g.Width, len(qubits))
	}
	seen := make(map[int]struct{}, len(qubits))
	for _, q := range qubits {
		if q < 0 || q >= c.numQubits {
			return fmt.Errorf("circuit: %s: gate %s: qubit %d out of range [0, %d)", c.name, g.Name, q, c.numQubits)
		}
		if _, ok := seen[q]; ok {
			return fmt.Errorf("circuit: %s: gate %s: qubit %d used twice", c.name, g.Name, q)
		}
		seen[q] = struct{}{}
	}
	return nil
}

// H applies a Hadamard gate to every given qubit.
func (c *Circuit) H(qubits ...int) {
	for _, q := range qubits {
		c.Append(hGate, q)
	}
}

// X applies a bit flip to q.
func (c *Circuit) X(q int) { c.Append(xGate, q) }

// P applies a phase rotation of theta to q.
func (c *Circuit) P(theta float64, q int) { c.Append(PhaseGate(theta), q) }

// CP applies a phase rotation of theta to target, controlled by control.
func (c *Circuit) CP(theta float64, control, target int) {
	c.Append(PhaseGate(theta).Control(1), control, target)
}

// CX flips target when control is set.
func (c *Circuit) CX(control, target int) { c.Append(xGate.Control(1), control, target) }

// Swap exchanges a and b.
func (c *Circuit) Swap(a, b int) { c.Append(swapGate, a, b) }

// CSwap exchanges a and b when control is set.
func (c *Circuit) CSwap(control, a, b int) { c.Append(swapGate.Control(1), control, a, b) }

// Measure records qubit q into classical bit clbit.
func (c *Circuit) Measure(q, clbit int) {
	c.checkQubits(measure, []int{q})
	if clbit < 0 || clbit >= c.numClbits {
		panic(fmt.Sprintf("circuit: %s: clbit %d out of range [0, %d)", c.name, clbit, c.numClbits))
	}
	c.ops = append(c.ops, Instruction{Gate: measure, Qubits: []int{q}, Clbits: []int{clbit}})
}

// MeasureRegister measures every qubit of q into the matching bit of cr.
func (c *Circuit) MeasureRegister(q, cr Register) {
	if q.Size != cr.Size {
		panic(fmt.Sprintf("circuit: %s: cannot measure %d qubits into %d bits", c.name, q.Size, cr.Size))
	}
	for i := 0; i < q.Size; i++ {
		c.Measure(q.At(i), cr.At(i))
	}
}

// ToGate wraps the circuit into a composite gate over all its qubits.
// The circuit must not contain measurements.
func (c *Circuit) ToGate() *Gate {
	body := make([]Instruction, len(c.ops))
	for i, inst := range c.ops {
		if inst.Gate.Kind == KindMeasure {
			panic(fmt.Sprintf("circuit: %s: cannot convert a measured circuit to a gate", c.name))
		}
		body[i] = Instruction{Gate: inst.Gate, Qubits: append([]int(nil), inst.Qubits...)}
	}
	return &Gate{
		Name:  c.name,
		Kind:  KindComposite,
		Width: c.numQubits,
		Body:  body,
	}
}

// Flatten expands every composite gate and returns the circuit as a sequence
// of primitive instructions over circuit indices.
func (c *Circuit) Flatten() []Instruction {
	out := make([]Instruction, 0, len(c.ops))
	for _, inst := range c.ops {
		out = flatten(out, inst)
	}
	return out
}

func flatten(out []Instruction, inst Instruction) []Instruction {
	if inst.Gate.IsPrimitive() {
		return append(out, inst)
	}
	for _, sub := range inst.Gate.Body {
		qubits := make([]int, len(sub.Qubits))
		for i, q := range sub.Qubits {
			qubits[i] = inst.Qubits[q]
		}
		out = flatten(out, Instruction{Gate: sub.Gate, Qubits: qubits})
	}
	return out
}
