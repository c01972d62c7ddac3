package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/taurusgroup/shor/pkg/shor"
	"github.com/taurusgroup/shor/pkg/simulator"
)

// Factor runs Shor's algorithm for N on the simulator, once per base.
func Factor(ctx context.Context, cfg fileConfig, log zerolog.Logger, N int, bases []int) (*shor.Result, error) {
	sc, err := cfg.shorConfig(log)
	if err != nil {
		return nil, err
	}
	defer sc.Pool.TearDown()

	sim := simulator.New(
		simulator.WithMaxQubits(cfg.MaxQubits),
		simulator.WithLogger(log),
	)
	s := shor.New(sim, sc)
	if len(bases) == 1 {
		return s.Factor(ctx, N, bases[0])
	}
	return s.FactorBases(ctx, N, bases)
}

// Circuit writes the encoded factoring circuit for N and a to path, and
// returns its fingerprint.
func Circuit(N, a int, measurement bool, path string) (string, error) {
	c, err := shor.ConstructCircuit(N, a, measurement)
	if err != nil {
		return "", err
	}
	data, err := c.MarshalBinary()
	if err != nil {
		return "", err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write circuit: %w", err)
	}
	fp, err := c.Fingerprint()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(fp), nil
}
