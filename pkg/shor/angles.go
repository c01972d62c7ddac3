package shor

import "math"

// Angles returns the phase rotations adding the constant a to an n qubit
// register held in the Fourier basis.
//
// Qubit i receives π⋅Σ_{j≤i, bit j of a set} 2^-(i-j). Only the low n bits of a
// contribute, so a is effectively reduced mod 2ⁿ.
func Angles(a, n int) []float64 {
	angles := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			if a>>uint(j)&1 == 1 {
				angles[i] += math.Pow(2, float64(j-i))
			}
		}
	}
	for i := range angles {
		angles[i] *= math.Pi
	}
	return angles
}
