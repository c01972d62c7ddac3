package params

const (
	// DefaultShots is the number of circuit executions requested in counts mode.
	DefaultShots = 1000

	// SmallDenominator bounds the convergent denominators for which a^(r/2) is recomputed.
	SmallDenominator = 1000
	// MaxExponential is the largest a^(r/2) that is still fed to the gcd test.
	MaxExponential = 1e9
	// MaxDenominator is the bound used when reducing a convergent to its best rational approximation.
	MaxDenominator = 1_000_000
	// MaxPartialQuotient bounds a single continued fraction term.
	MaxPartialQuotient = 1<<31 - 1

	// AmplitudeThreshold is the default probability below which a control register
	// outcome derived from a statevector is discarded.
	AmplitudeThreshold = 1e-8

	// MaxSimulatorQubits is the default qubit budget of the statevector simulator.
	// 2^26 amplitudes of complex128 take 1 GiB.
	MaxSimulatorQubits = 26
)
