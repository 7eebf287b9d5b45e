package problem

import (
	"errors"
	"testing"
)

// fixedSource returns the same value on every draw.
type fixedSource struct{ v float64 }

func (f fixedSource) Float64() float64 { return f.v }

// seqSource replays a fixed sequence of values, wrapping around.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestArithmetic_Generate_RangeProperty(t *testing.T) {
	gen := Arithmetic{Op: OpAdd}
	src := NewSource()

	for _, tier := range []Tier{TierEasy, TierMedium, TierHard} {
		r := DefaultRanges[tier]
		for i := 0; i < 1000; i++ {
			p, err := gen.Generate(tier, src)
			if err != nil {
				t.Fatalf("Generate(%s): %v", tier, err)
			}
			if len(p.Operands) != 2 {
				t.Fatalf("got %d operands, want 2", len(p.Operands))
			}
			for _, op := range p.Operands {
				if op < r.Min || op > r.Max {
					t.Fatalf("tier %s: operand %d outside [%d,%d]", tier, op, r.Min, r.Max)
				}
			}
			if p.Answer != p.Operands[0]+p.Operands[1] {
				t.Fatalf("answer %d != %d+%d", p.Answer, p.Operands[0], p.Operands[1])
			}
		}
	}
}

func TestArithmetic_Generate_PinnedRandom(t *testing.T) {
	gen := Arithmetic{Op: OpAdd}
	p, err := gen.Generate(TierEasy, fixedSource{0.5})
	if err != nil {
		t.Fatal(err)
	}

	// floor(0.5*10)+1 = 6 for both operands on the easy range.
	if p.Operands[0] != 6 || p.Operands[1] != 6 {
		t.Errorf("operands = %v, want [6 6]", p.Operands)
	}
	if p.Answer != 12 {
		t.Errorf("Answer = %d, want 12", p.Answer)
	}
	if p.Text != "6 + 6 = ?" {
		t.Errorf("Text = %q", p.Text)
	}
}

func TestArithmetic_Generate_SubtractionNeverNegative(t *testing.T) {
	gen := Arithmetic{Op: OpSub}
	src := NewSource()
	for i := 0; i < 1000; i++ {
		p, err := gen.Generate(TierMedium, src)
		if err != nil {
			t.Fatal(err)
		}
		if p.Answer < 0 {
			t.Fatalf("negative answer %d from operands %v", p.Answer, p.Operands)
		}
		if p.Answer != p.Operands[0]-p.Operands[1] {
			t.Fatalf("answer %d != %d-%d", p.Answer, p.Operands[0], p.Operands[1])
		}
	}
}

func TestArithmetic_Generate_ConfigErrors(t *testing.T) {
	gen := Arithmetic{Op: OpAdd}
	if _, err := gen.Generate(Tier("nightmare"), fixedSource{0}); !errors.Is(err, ErrUnknownTier) {
		t.Errorf("unknown tier: got %v, want ErrUnknownTier", err)
	}

	inverted := Arithmetic{Op: OpAdd, Ranges: map[Tier]Range{TierEasy: {Min: 10, Max: 1}}}
	if _, err := inverted.Generate(TierEasy, fixedSource{0}); !errors.Is(err, ErrBadRange) {
		t.Errorf("inverted range: got %v, want ErrBadRange", err)
	}
}
