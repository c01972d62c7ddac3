package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	modeFlag    string
	shotsFlag   int
	workersFlag int
	logLevel    string
	outPath     string
	noMeasure   bool
)

var rootCmd = &cobra.Command{
	Use:           "shor",
	Short:         "Factor integers with Shor's algorithm on a statevector simulator",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var factorCmd = &cobra.Command{
	Use:   "factor N a [a...]",
	Short: "Factor N using one or more bases",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runFactor,
}

var circuitCmd = &cobra.Command{
	Use:   "circuit N a",
	Short: "Build the factoring circuit and write it in binary form",
	Args:  cobra.ExactArgs(2),
	RunE:  runCircuit,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")

	factorCmd.Flags().StringVar(&modeFlag, "mode", "", "execution mode: counts or statevector")
	factorCmd.Flags().IntVar(&shotsFlag, "shots", 0, "number of shots in counts mode")
	factorCmd.Flags().IntVar(&workersFlag, "workers", 0, "analysis workers, -1 for one per CPU")
	factorCmd.Flags().StringVar(&logLevel, "log-level", "", "log level")

	circuitCmd.Flags().StringVarP(&outPath, "out", "o", "circuit.cbor", "output file")
	circuitCmd.Flags().BoolVar(&noMeasure, "no-measure", false, "omit the final measurement")

	rootCmd.AddCommand(factorCmd, circuitCmd)
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %q is not an integer", arg)
		}
		out[i] = v
	}
	return out, nil
}

func runFactor(cmd *cobra.Command, args []string) error {
	values, err := parseInts(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if modeFlag != "" {
		cfg.Mode = modeFlag
	}
	if shotsFlag != 0 {
		cfg.Shots = shotsFlag
	}
	if workersFlag != 0 {
		cfg.Workers = workersFlag
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	r, err := Factor(ctx, cfg, log, values[0], values[1:])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), r)
	return nil
}

func runCircuit(cmd *cobra.Command, args []string) error {
	values, err := parseInts(args)
	if err != nil {
		return err
	}
	fp, err := Circuit(values[0], values[1], !noMeasure, outPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", outPath, fp)
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
