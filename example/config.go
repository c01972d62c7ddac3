package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/taurusgroup/shor/internal/params"
	"github.com/taurusgroup/shor/pkg/backend"
	"github.com/taurusgroup/shor/pkg/pool"
	"github.com/taurusgroup/shor/pkg/shor"
	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML configuration accepted by --config.
type fileConfig struct {
	Mode               string  `yaml:"mode"`
	Shots              int     `yaml:"shots"`
	AmplitudeThreshold float64 `yaml:"amplitude_threshold"`
	Workers            int     `yaml:"workers"`
	MaxQubits          int     `yaml:"max_qubits"`
	LogLevel           string  `yaml:"log_level"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		Mode:               string(backend.ModeCounts),
		Shots:              params.DefaultShots,
		AmplitudeThreshold: params.AmplitudeThreshold,
		MaxQubits:          params.MaxSimulatorQubits,
		LogLevel:           zerolog.InfoLevel.String(),
	}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// shorConfig converts the file configuration. The returned pool, if any, must
// be torn down by the caller.
func (c fileConfig) shorConfig(log zerolog.Logger) (shor.Config, error) {
	mode, err := backend.ParseMode(c.Mode)
	if err != nil {
		return shor.Config{}, err
	}
	cfg := shor.DefaultConfig()
	cfg.Mode = mode
	cfg.Shots = c.Shots
	cfg.AmplitudeThreshold = c.AmplitudeThreshold
	cfg.Logger = log
	if c.Workers != 0 {
		cfg.Pool = pool.NewPool(c.Workers)
	}
	return cfg, nil
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger(), nil
}
