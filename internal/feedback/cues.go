package feedback

import (
	"github.com/misaki/drillbox/internal/problem"
	"github.com/misaki/drillbox/internal/quiz"
)

// Tone is one note of an audio cue.
type Tone struct {
	Hz int
	Ms int
}

// ToneFor returns the audio cue for an outcome: an ascending triad for
// a correct answer (with a top note added when the goal is reached), a
// single low tone for a miss, nothing for validation rejections.
func ToneFor(out quiz.Outcome) []Tone {
	switch out {
	case quiz.OutcomeCorrect:
		return []Tone{{523, 120}, {659, 120}, {784, 120}}
	case quiz.OutcomeGoalReached:
		return []Tone{{523, 120}, {659, 120}, {784, 120}, {1047, 240}}
	case quiz.OutcomeIncorrect, quiz.OutcomeNegative:
		return []Tone{{220, 200}}
	}
	return nil
}

// Particle is one glyph of a decorative burst, positioned relative to
// the burst origin.
type Particle struct {
	Glyph string
	DX    int
	DY    int
}

var burstGlyphs = []string{"✦", "✧", "★", "✶", "·"}

// Burst returns n particles scattered around the origin.
func Burst(n int, src problem.Source) []Particle {
	if n <= 0 {
		return nil
	}
	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = Particle{
			Glyph: burstGlyphs[i%len(burstGlyphs)],
			DX:    spread(src, 13) - 6,
			DY:    spread(src, 7) - 3,
		}
	}
	return ps
}

func spread(src problem.Source, n int) int {
	if src == nil {
		return n / 2
	}
	v := int(src.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}
