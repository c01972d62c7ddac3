package shor

import (
	"fmt"
	"math"
	"math/big"
	"sort"

	"github.com/rs/zerolog"
	"github.com/taurusgroup/shor/internal/params"
	"github.com/taurusgroup/shor/pkg/math/arith"
)

// Factors tries to recover factors of N from one measurement of the up register.
//
// The measurement is read as x, a big-endian bitstring of length L, and the
// continued fraction expansion of x/2ᴸ is computed one term at a time. Every
// even convergent denominator r is used as a period candidate and tested
// through gcd(a^(r/2) ± 1, N). The returned pair is sorted.
//
// When no factor is found, the returned error explains why.
func Factors(N, a int, measurement string) ([]int, error) {
	return factors(zerolog.Nop(), N, a, measurement)
}

func factors(log zerolog.Logger, N, a int, measurement string) ([]int, error) {
	xFinal, ok := new(big.Int).SetString(measurement, 2)
	if !ok || measurement == "" {
		return nil, fmt.Errorf("%w: %q is not a bitstring", ErrInvalidArgument, measurement)
	}
	log.Debug().Str("x_final", xFinal.String()).Msg("decoded measurement")
	if xFinal.Sign() <= 0 {
		return nil, ErrNoContinuedFraction
	}

	// x / 2^L, rounded to the nearest float64
	xOverT, _ := new(big.Float).SetMantExp(new(big.Float).SetInt(xFinal), -len(measurement)).Float64()

	// partial quotients, and the fractional remainders kept at single precision
	terms := []int64{int64(math.Floor(xOverT))}
	remainders := []float32{float32(xOverT - float64(terms[0]))}

	exponential := 0.0
	for i := 0; i < N; {
		if i > 0 {
			if remainders[i-1] == 0 {
				// the previous convergent was exact and had an odd denominator
				return nil, ErrExactConvergent
			}
			inv := 1 / float64(remainders[i-1])
			if inv >= params.MaxPartialQuotient+1 {
				return nil, ErrDenominatorTooLarge
			}
			term := int64(math.Floor(inv))
			terms = append(terms, term)
			remainders = append(remainders, float32(inv-float64(term)))
		}

		denominator := convergentDenominator(terms)
		log.Debug().
			Int("approximation", len(terms)).
			Int64("denominator", denominator).
			Msg("continued fraction convergent")
		i++

		if denominator%2 == 1 {
			log.Debug().Msg("odd denominator, will try next iteration of continued fractions")
			continue
		}

		// larger denominators keep the previous exponential
		if denominator < params.SmallDenominator {
			exponential = math.Pow(float64(a), float64(denominator/2))
		}
		if exponential > params.MaxExponential {
			return nil, ErrDenominatorTooLarge
		}

		plus := arith.GCD(int(exponential+1), N)
		minus := arith.GCD(int(exponential-1), N)
		if pair, ok := factorPair(N, plus, minus); ok {
			return pair, nil
		}
		log.Debug().Int("plus", plus).Int("minus", minus).Msg("found just trivial factors, not good enough")
		if remainders[i-1] == 0 {
			return nil, ErrExactConvergent
		}
	}
	return nil, ErrTooManyAttempts
}

// factorPair returns the sorted candidate pair when at least one of the two
// gcds is a non trivial divisor of N. A trivial member is replaced by the
// cofactor of the other one, so the pair can differ from the two gcds: for
// N = 15, gcds 3 and 1 give [3, 5] rather than [1, 3].
func factorPair(N, plus, minus int) ([]int, bool) {
	trivial := func(f int) bool { return f == 1 || f == N }
	switch {
	case trivial(plus) && trivial(minus):
		return nil, false
	case trivial(plus):
		plus = N / minus
	case trivial(minus):
		minus = N / plus
	}
	pair := []int{plus, minus}
	sort.Ints(pair)
	return pair, true
}

// convergentDenominator evaluates the continued fraction [b0; b1, ..., bk]
// bottom up in floating point, and returns the denominator of its best
// rational approximation with a denominator of at most params.MaxDenominator.
func convergentDenominator(terms []int64) int64 {
	x := 0.0
	for i := len(terms) - 2; i >= 0; i-- {
		x = 1 / (float64(terms[i+1]) + x)
	}
	x += float64(terms[0])

	r := new(big.Rat).SetFloat64(x)
	return limitDenominator(r, big.NewInt(params.MaxDenominator)).Denom().Int64()
}

// limitDenominator returns the closest fraction to r with a denominator of at
// most max. Ties are resolved towards the last convergent.
func limitDenominator(r *big.Rat, max *big.Int) *big.Rat {
	if r.Denom().Cmp(max) <= 0 {
		return new(big.Rat).Set(r)
	}

	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	n := new(big.Int).Set(r.Num())
	d := new(big.Int).Set(r.Denom())
	a, q2, tmp := new(big.Int), new(big.Int), new(big.Int)
	for {
		a.Div(n, d)
		q2.Add(q0, tmp.Mul(a, q1))
		if q2.Cmp(max) > 0 {
			break
		}
		p2 := new(big.Int).Add(p0, tmp.Mul(a, p1))
		p0, q0, p1, q1 = p1, q1, p2, new(big.Int).Set(q2)
		n, d = d, new(big.Int).Sub(n, tmp.Mul(a, d))
	}

	k := new(big.Int).Div(new(big.Int).Sub(max, q0), q1)
	bound1 := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	bound2 := new(big.Rat).SetFrac(p1, q1)

	dist1 := new(big.Rat).Abs(new(big.Rat).Sub(bound1, r))
	dist2 := new(big.Rat).Abs(new(big.Rat).Sub(bound2, r))
	if dist2.Cmp(dist1) <= 0 {
		return bound2
	}
	return bound1
}
