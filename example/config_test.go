package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/shor/pkg/backend"
	"github.com/taurusgroup/shor/pkg/shor"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultFileConfig(), cfg)

	path := filepath.Join(t.TempDir(), "shor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: statevector\nworkers: 2\n"), 0o600))
	cfg, err = loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "statevector", cfg.Mode)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, defaultFileConfig().Shots, cfg.Shots)

	sc, err := cfg.shorConfig(zerolog.Nop())
	require.NoError(t, err)
	defer sc.Pool.TearDown()
	assert.Equal(t, backend.ModeStatevector, sc.Mode)
	assert.Equal(t, 2, sc.Pool.Workers())

	require.NoError(t, os.WriteFile(path, []byte("mode: [\n"), 0o600))
	_, err = loadConfig(path)
	assert.Error(t, err)

	cfg.Mode = "hardware"
	_, err = cfg.shorConfig(zerolog.Nop())
	assert.Error(t, err)
}

func TestFactor_PerfectPower(t *testing.T) {
	r, err := Factor(context.Background(), defaultFileConfig(), zerolog.Nop(), 49, []int{2})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{7}}, r.Factors)

	_, err = Factor(context.Background(), defaultFileConfig(), zerolog.Nop(), 15, []int{3})
	assert.ErrorIs(t, err, shor.ErrInvalidArgument)
}

func TestCircuit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.cbor")
	fp, err := Circuit(15, 2, true, path)
	require.NoError(t, err)
	assert.Len(t, fp, 64)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
