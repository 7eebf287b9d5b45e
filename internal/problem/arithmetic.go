package problem

import (
	"errors"
	"fmt"
)

// Configuration errors. These indicate caller bugs and are surfaced
// loudly rather than papered over with a degenerate problem.
var (
	ErrUnknownTier = errors.New("unknown difficulty tier")
	ErrBadRange    = errors.New("invalid operand range")
	ErrEmptySet    = errors.New("empty item set")
)

// Op is an arithmetic operator.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
)

// Arithmetic generates two-operand arithmetic problems from tiered
// integer ranges.
type Arithmetic struct {
	// Op is the operator applied to the two operands.
	Op Op

	// Ranges maps each supported tier to its operand range. Nil falls
	// back to DefaultRanges.
	Ranges map[Tier]Range
}

// Generate draws two operands independently and uniformly from the
// tier's range and computes the expected answer. Subtraction orders the
// operands so the result is never negative.
func (a Arithmetic) Generate(tier Tier, src Source) (*Problem, error) {
	ranges := a.Ranges
	if ranges == nil {
		ranges = DefaultRanges
	}
	r, ok := ranges[tier]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
	if r.Min > r.Max {
		return nil, fmt.Errorf("%w: [%d,%d]", ErrBadRange, r.Min, r.Max)
	}

	x := drawRange(src, r)
	y := drawRange(src, r)

	var answer int
	switch a.Op {
	case OpAdd:
		answer = x + y
	case OpSub:
		if y > x {
			x, y = y, x
		}
		answer = x - y
	default:
		return nil, fmt.Errorf("unsupported operator %q", a.Op)
	}

	return &Problem{
		Operands: []int{x, y},
		Answer:   answer,
		Text:     fmt.Sprintf("%d %s %d = ?", x, a.Op, y),
	}, nil
}
