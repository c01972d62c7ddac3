// Package shor factors integers with Shor's algorithm.
//
// The package builds the order finding circuit for a base a modulo N, hands it
// to a backend.Backend, and recovers factors of N from the measured outcomes
// with continued fractions.
package shor

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/taurusgroup/shor/pkg/backend"
	"github.com/taurusgroup/shor/pkg/math/arith"
	"github.com/taurusgroup/shor/pkg/pool"
	"golang.org/x/sync/errgroup"
)

// Shor runs the factoring algorithm against a backend.
type Shor struct {
	backend backend.Backend
	cfg     Config
}

// New returns a Shor instance executing its circuits on b.
//
// Zero fields of cfg are replaced by the values of DefaultConfig.
func New(b backend.Backend, cfg Config) *Shor {
	return &Shor{
		backend: b,
		cfg:     cfg.withDefaults(),
	}
}

// validate checks that N is odd and greater than 1, and that a is a unit mod N
// with 1 < a < N.
func validate(N, a int) error {
	if N <= 1 || N%2 == 0 {
		return fmt.Errorf("%w: the input N needs to be an odd integer greater than 1, got %d", ErrInvalidArgument, N)
	}
	if a <= 1 || a >= N {
		return fmt.Errorf("%w: the integer a needs to satisfy 1 < a < N, got a=%d for N=%d", ErrInvalidArgument, a, N)
	}
	if !arith.ModulusFromInt(N).IsUnit(a) {
		return fmt.Errorf("%w: the integer a needs to satisfy gcd(a, N) = 1, got gcd(%d, %d) = %d",
			ErrInvalidArgument, a, N, arith.GCD(a, N))
	}
	return nil
}

// IsPower reports whether N = baseᵉˣᵖᵒⁿᵉⁿᵗ for some exponent ≥ 2.
// It returns false for N < 2.
func IsPower(N int) (ok bool, base, exponent int) {
	return arith.IsPower(N)
}

// Factor runs Shor's algorithm for N with base a.
//
// Invalid arguments are reported with ErrInvalidArgument, and a missing backend
// with ErrNoBackend. When N is a perfect power bᵏ, the result holds [[b]] and
// the backend is not used.
//
// A failure of the backend is logged and yields the empty result with a nil
// error, unless ctx was canceled, in which case ctx.Err() is returned.
func (s *Shor) Factor(ctx context.Context, N, a int) (*Result, error) {
	if err := validate(N, a); err != nil {
		return nil, err
	}
	if s.backend == nil {
		return nil, ErrNoBackend
	}

	log := s.cfg.Logger.With().
		Str("run", uuid.NewString()).
		Int("N", N).
		Int("a", a).
		Logger()

	result := NewResult()
	if ok, base, exponent := IsPower(N); ok {
		log.Info().Int("base", base).Int("exponent", exponent).Msg("the input integer is a power")
		result.addFactors([]int{base})
		return result, nil
	}

	distribution, err := s.execute(ctx, log, N, a)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		log.Error().Err(err).Msg("the circuit could not be executed")
		return result, nil
	}

	outcomes := make([]string, 0, len(distribution))
	for outcome := range distribution {
		outcomes = append(outcomes, outcome)
	}
	sort.Strings(outcomes)

	type analysis struct {
		factors []int
		err     error
	}
	analyses := pool.Parallelize(s.cfg.Pool, len(outcomes), func(i int) analysis {
		f, err := factors(log.With().Str("outcome", outcomes[i]).Logger(), N, a, outcomes[i])
		return analysis{factors: f, err: err}
	})

	for i, an := range analyses {
		result.TotalCounts++
		if an.err != nil {
			log.Debug().Str("outcome", outcomes[i]).Err(an.err).Msg("no factors found")
			continue
		}
		result.SuccessfulCounts++
		if result.addFactors(an.factors) {
			log.Info().Str("outcome", outcomes[i]).Ints("factors", an.factors).Msg("found factors")
		}
	}

	log.Info().
		Int("total_counts", result.TotalCounts).
		Int("successful_counts", result.SuccessfulCounts).
		Msg("factoring finished")
	return result, nil
}

// execute builds the circuit, runs it in the configured mode, and returns
// the outcomes observed on the up register.
func (s *Shor) execute(ctx context.Context, log zerolog.Logger, N, a int) (backend.Distribution, error) {
	switch s.cfg.Mode {
	case backend.ModeStatevector:
		c, err := ConstructCircuit(N, a, false)
		if err != nil {
			return nil, err
		}
		log.Debug().Int("qubits", c.NumQubits()).Str("mode", string(s.cfg.Mode)).Msg("executing circuit")
		amplitudes, err := s.backend.RunStatevector(ctx, c)
		if err != nil {
			return nil, err
		}
		up, _ := c.Register(UpRegister)
		log.Warn().Int("qubits", c.NumQubits()).Msg("statevector mode is memory intensive for large N")
		return backend.Marginal(amplitudes, up.Qubits(), s.cfg.AmplitudeThreshold)

	case backend.ModeCounts:
		c, err := ConstructCircuit(N, a, true)
		if err != nil {
			return nil, err
		}
		log.Debug().Int("qubits", c.NumQubits()).Int("shots", s.cfg.Shots).Str("mode", string(s.cfg.Mode)).Msg("executing circuit")
		counts, err := s.backend.RunCounts(ctx, c, s.cfg.Shots)
		if err != nil {
			return nil, err
		}
		return counts.Distribution(), nil

	default:
		return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidArgument, s.cfg.Mode)
	}
}

// FactorBases runs Factor for every base concurrently and merges the results.
//
// The first error other than a backend failure cancels the remaining runs.
// Besides ErrInvalidArgument and ErrNoBackend, that error may be ctx.Err():
// a canceled context is reported instead of an empty result.
func (s *Shor) FactorBases(ctx context.Context, N int, bases []int) (*Result, error) {
	if len(bases) == 0 {
		return nil, fmt.Errorf("%w: no bases given", ErrInvalidArgument)
	}
	results := make([]*Result, len(bases))
	g, ctx := errgroup.WithContext(ctx)
	for i, a := range bases {
		i, a := i, a
		g.Go(func() error {
			r, err := s.Factor(ctx, N, a)
			if err != nil {
				return fmt.Errorf("base %d: %w", a, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := NewResult()
	for _, r := range results {
		merged.Merge(r)
	}
	return merged, nil
}
