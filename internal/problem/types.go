package problem

import "math/rand/v2"

// Problem is one generated question ready for display. A Problem is
// immutable once created; requesting the next question replaces it.
type Problem struct {
	// Operands are the drawn values for arithmetic problems, in display
	// order. Empty for multiple-choice problems.
	Operands []int

	// Answer is the expected result. For arithmetic it is the operator
	// result; for multiple choice it is the index into Choices of the
	// correct option.
	Answer int

	// Text is the prompt shown to the learner.
	Text string

	// Choices is populated only for multiple-choice problems, already
	// shuffled into presentation order.
	Choices []string
}

// Tier is a named difficulty bucket selecting the numeric range or item
// set used for generation.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// Range is an inclusive integer interval operands are drawn from.
type Range struct {
	Min int
	Max int
}

// DefaultRanges are the standard arithmetic ranges per tier.
var DefaultRanges = map[Tier]Range{
	TierEasy:   {Min: 1, Max: 10},
	TierMedium: {Min: 1, Max: 20},
	TierHard:   {Min: 1, Max: 50},
}

// Source supplies the randomness for generation. Production code passes
// NewSource(); tests pin values to make generation deterministic.
type Source interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// NewSource returns a Source backed by the shared math/rand/v2 generator.
func NewSource() Source {
	return randSource{}
}

type randSource struct{}

func (randSource) Float64() float64 { return rand.Float64() }

// intn draws a uniform value in [0, n) from src. n must be positive.
func intn(src Source, n int) int {
	v := int(src.Float64() * float64(n))
	// Float64 is right-open so v < n, but guard against a rounding edge.
	if v >= n {
		v = n - 1
	}
	return v
}

// drawRange draws a uniform value in [r.Min, r.Max].
func drawRange(src Source, r Range) int {
	return intn(src, r.Max-r.Min+1) + r.Min
}

// shuffle performs a Fisher-Yates shuffle of s in place.
func shuffle(src Source, s []string) {
	for i := len(s) - 1; i > 0; i-- {
		j := intn(src, i+1)
		s[i], s[j] = s[j], s[i]
	}
}
