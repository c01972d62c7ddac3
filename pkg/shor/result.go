package shor

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// Result summarizes a factoring run.
type Result struct {
	// Factors holds the distinct factor lists found, in discovery order.
	// It holds a single [b] when N = bᵏ, and pairs otherwise.
	Factors [][]int
	// TotalCounts is the number of distinct measurement outcomes analyzed.
	TotalCounts int
	// SuccessfulCounts is the number of outcomes that yielded factors.
	SuccessfulCounts int
}

// NewResult returns an empty result.
func NewResult() *Result {
	return &Result{Factors: [][]int{}}
}

// addFactors records f unless an equal list was already found.
// It returns true if f was new.
func (r *Result) addFactors(f []int) bool {
	for _, existing := range r.Factors {
		if slices.Equal(existing, f) {
			return false
		}
	}
	r.Factors = append(r.Factors, slices.Clone(f))
	return true
}

// Merge adds the counts of other to r, and appends the factors r does not hold yet.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.TotalCounts += other.TotalCounts
	r.SuccessfulCounts += other.SuccessfulCounts
	for _, f := range other.Factors {
		r.addFactors(f)
	}
}

// String implements fmt.Stringer.
func (r Result) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, f := range r.Factors {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strings.ReplaceAll(fmt.Sprint(f), " ", ", "))
	}
	sb.WriteString("]")
	return fmt.Sprintf("factors: %s, total counts: %d, successful counts: %d",
		sb.String(), r.TotalCounts, r.SuccessfulCounts)
}

type resultMarshal struct {
	Factors          [][]int `cbor:"1,keyasint"`
	TotalCounts      int     `cbor:"2,keyasint"`
	SuccessfulCounts int     `cbor:"3,keyasint"`
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (r *Result) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(resultMarshal{
		Factors:          r.Factors,
		TotalCounts:      r.TotalCounts,
		SuccessfulCounts: r.SuccessfulCounts,
	})
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (r *Result) UnmarshalBinary(data []byte) error {
	var rm resultMarshal
	if err := cbor.Unmarshal(data, &rm); err != nil {
		return fmt.Errorf("shor: unmarshal result: %w", err)
	}
	if rm.TotalCounts < 0 || rm.SuccessfulCounts < 0 || rm.SuccessfulCounts > rm.TotalCounts {
		return fmt.Errorf("shor: unmarshal result: inconsistent counts %d/%d", rm.SuccessfulCounts, rm.TotalCounts)
	}
	if rm.Factors == nil {
		rm.Factors = [][]int{}
	}
	r.Factors = rm.Factors
	r.TotalCounts = rm.TotalCounts
	r.SuccessfulCounts = rm.SuccessfulCounts
	return nil
}
