package circuit

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/taurusgroup/shor/internal/hash"
)

// WriteTo writes the flattened instruction sequence of the circuit to w.
//
// Two circuits produce the same output exactly when they apply the same
// primitive gates, with the same parameters, to the same operands in the same order.
func (c *Circuit) WriteTo(w io.Writer) (int64, error) {
	var total int64
	write := func(vs ...uint64) error {
		buf := make([]byte, 8*len(vs))
		for i, v := range vs {
			binary.BigEndian.PutUint64(buf[8*i:], v)
		}
		n, err := w.Write(buf)
		total += int64(n)
		return err
	}

	if err := write(uint64(c.numQubits), uint64(c.numClbits)); err != nil {
		return total, err
	}
	for _, inst := range c.Flatten() {
		g := inst.Gate
		if err := write(uint64(g.Kind), uint64(g.Controls), math.Float64bits(g.Param), uint64(len(inst.Qubits))); err != nil {
			return total, err
		}
		for _, q := range inst.Qubits {
			if err := write(uint64(q)); err != nil {
				return total, err
			}
		}
		for _, b := range inst.Clbits {
			if err := write(uint64(b)); err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// Domain implements hash.WriterToWithDomain.
func (*Circuit) Domain() string { return "Circuit" }

// Fingerprint returns a digest of the flattened circuit.
func (c *Circuit) Fingerprint() ([]byte, error) {
	h := hash.New()
	if err := h.WriteAny(c); err != nil {
		return nil, err
	}
	return h.Sum(), nil
}
