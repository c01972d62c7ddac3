// Package simulator is an in-process Execution Service backed by a dense statevector.
package simulator

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/rs/zerolog"
	"github.com/taurusgroup/shor/internal/params"
	"github.com/taurusgroup/shor/pkg/backend"
	"github.com/taurusgroup/shor/pkg/circuit"
	"github.com/taurusgroup/shor/pkg/math/sample"
	"github.com/taurusgroup/shor/pkg/pool"
)

// ErrTooManyQubits is returned when a circuit does not fit in the qubit budget.
var ErrTooManyQubits = errors.New("simulator: too many qubits")

// how many instructions are applied between two context checks
const checkEvery = 256

// Simulator implements backend.Backend.
//
// It is safe for concurrent use: every run owns its own state, and the
// randomness used to draw shots is shared through a locked reader.
type Simulator struct {
	rand      io.Reader
	maxQubits int
	log       zerolog.Logger
}

var _ backend.Backend = (*Simulator)(nil)

// Option configures a Simulator.
type Option func(*Simulator)

// WithRand sets the randomness used to draw shots. Defaults to crypto/rand.
func WithRand(r io.Reader) Option {
	return func(s *Simulator) { s.rand = pool.NewLockedReader(r) }
}

// WithMaxQubits sets the largest circuit the simulator accepts.
func WithMaxQubits(n int) Option {
	return func(s *Simulator) { s.maxQubits = n }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Simulator) { s.log = l }
}

// New creates a Simulator.
func New(opts ...Option) *Simulator {
	s := &Simulator{
		rand:      pool.NewLockedReader(rand.Reader),
		maxQubits: params.MaxSimulatorQubits,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("backend", "simulator").Logger()
	return s
}

// RunStatevector implements backend.Backend. Measurements are ignored.
func (s *Simulator) RunStatevector(ctx context.Context, c *circuit.Circuit) ([]complex128, error) {
	st, err := s.run(ctx, c)
	if err != nil {
		return nil, err
	}
	return st.amplitudes, nil
}

// RunCounts implements backend.Backend.
//
// Every classical bit must be written by exactly one measurement, and
// measurements must come after every other instruction.
func (s *Simulator) RunCounts(ctx context.Context, c *circuit.Circuit, shots int) (backend.Counts, error) {
	if shots <= 0 {
		return nil, fmt.Errorf("simulator: shots must be positive, got %d", shots)
	}
	measured, err := measuredQubits(c)
	if err != nil {
		return nil, err
	}
	st, err := s.run(ctx, c)
	if err != nil {
		return nil, err
	}
	dist, err := backend.Marginal(st.amplitudes, measured, 0)
	if err != nil {
		return nil, fmt.Errorf("simulator: %w", err)
	}

	outcomes := make([]string, 0, len(dist))
	for o := range dist {
		outcomes = append(outcomes, o)
	}
	sort.Strings(outcomes)
	weights := make([]float64, len(outcomes))
	for i, o := range outcomes {
		weights[i] = dist[o]
	}
	d, err := sample.NewDistribution(weights)
	if err != nil {
		return nil, fmt.Errorf("simulator: %w", err)
	}

	counts := make(backend.Counts)
	for i := 0; i < shots; i++ {
		counts[outcomes[d.Index(s.rand)]]++
	}
	s.log.Debug().Int("shots", shots).Int("outcomes", len(counts)).Msg("sampled counts")
	return counts, nil
}

// measuredQubits returns, for every classical bit, the qubit measured into it.
func measuredQubits(c *circuit.Circuit) ([]int, error) {
	if c.NumClbits() == 0 {
		return nil, errors.New("simulator: circuit has no classical bits to measure into")
	}
	qubits := make([]int, c.NumClbits())
	for i := range qubits {
		qubits[i] = -1
	}
	measuring := false
	for _, inst := range c.Instructions() {
		if inst.Gate.Kind != circuit.KindMeasure {
			if measuring {
				return nil, errors.New("simulator: mid-circuit measurements are not supported")
			}
			continue
		}
		measuring = true
		b := inst.Clbits[0]
		if qubits[b] != -1 {
			return nil, fmt.Errorf("simulator: clbit %d is measured twice", b)
		}
		qubits[b] = inst.Qubits[0]
	}
	for b, q := range qubits {
		if q == -1 {
			return nil, fmt.Errorf("simulator: clbit %d is never measured", b)
		}
	}
	return qubits, nil
}

func (s *Simulator) run(ctx context.Context, c *circuit.Circuit) (*state, error) {
	if c.NumQubits() > s.maxQubits {
		return nil, fmt.Errorf("%w: circuit %s has %d qubits, limit is %d", ErrTooManyQubits, c.Name(), c.NumQubits(), s.maxQubits)
	}
	ops := c.Flatten()
	s.log.Debug().
		Str("circuit", c.Name()).
		Int("qubits", c.NumQubits()).
		Int("instructions", len(ops)).
		Msg("running circuit")

	st := newState(c.NumQubits())
	for i, inst := range ops {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("simulator: %w", err)
			}
		}
		st.apply(inst)
	}
	return st, nil
}
