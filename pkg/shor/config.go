package shor

import (
	"github.com/rs/zerolog"
	"github.com/taurusgroup/shor/internal/params"
	"github.com/taurusgroup/shor/pkg/backend"
	"github.com/taurusgroup/shor/pkg/pool"
)

// Config holds the execution parameters of a Shor instance.
type Config struct {
	// Mode selects between sampled counts and an exact statevector.
	Mode backend.Mode
	// Shots is the number of executions in counts mode.
	Shots int
	// AmplitudeThreshold is the probability below which a statevector outcome is ignored.
	AmplitudeThreshold float64
	// Pool parallelizes the classical analysis of outcomes. It may be nil.
	Pool *pool.Pool
	// Logger receives the progress of every run.
	Logger zerolog.Logger
}

// DefaultConfig returns a Config using counts mode with params.DefaultShots
// shots and a disabled logger.
func DefaultConfig() Config {
	return Config{
		Mode:               backend.ModeCounts,
		Shots:              params.DefaultShots,
		AmplitudeThreshold: params.AmplitudeThreshold,
		Logger:             zerolog.Nop(),
	}
}

// withDefaults fills zero fields of c.
func (c Config) withDefaults() Config {
	if c.Mode == "" {
		c.Mode = backend.ModeCounts
	}
	if c.Shots <= 0 {
		c.Shots = params.DefaultShots
	}
	if c.AmplitudeThreshold <= 0 {
		c.AmplitudeThreshold = params.AmplitudeThreshold
	}
	return c
}
