package feedback

import (
	"slices"
	"strings"
	"testing"

	"github.com/misaki/drillbox/internal/quiz"
)

type fixedSource struct{ v float64 }

func (f fixedSource) Float64() float64 { return f.v }

func TestNextMilestone(t *testing.T) {
	tests := []struct {
		current int
		want    int
	}{
		{0, 5}, {4, 5}, {5, 10}, {9, 10}, {10, 15}, {19, 20}, {20, 25}, {27, 30},
	}
	for _, tt := range tests {
		if got := NextMilestone(tt.current); got != tt.want {
			t.Errorf("NextMilestone(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}

func TestPick_ValidationMessagesAreFixed(t *testing.T) {
	for i := 0; i < 10; i++ {
		src := fixedSource{float64(i) / 10}
		if got := Pick(quiz.OutcomeInvalid, 0, src); got != MsgEnterNumber {
			t.Fatalf("invalid message = %q, want %q", got, MsgEnterNumber)
		}
		if got := Pick(quiz.OutcomeNegative, 0, src); got != MsgNoNegative {
			t.Fatalf("negative message = %q, want %q", got, MsgNoNegative)
		}
	}
}

func TestPick_DrawsFromTheRightPool(t *testing.T) {
	src := fixedSource{0.0}

	if got := Pick(quiz.OutcomeCorrect, 1, src); !slices.Contains(correctPool, got) {
		t.Errorf("correct message %q not in pool", got)
	}
	if got := Pick(quiz.OutcomeIncorrect, 0, src); !slices.Contains(incorrectPool, got) {
		t.Errorf("incorrect message %q not in pool", got)
	}
}

func TestPick_GoalReachedDiffersFromPlainCorrect(t *testing.T) {
	src := fixedSource{0.0}
	goal := Pick(quiz.OutcomeGoalReached, 3, src)

	if !slices.Contains(goalPool, goal) {
		t.Fatalf("goal message %q not in goal pool", goal)
	}
	if slices.Contains(correctPool, goal) {
		t.Errorf("goal message %q must not come from the plain correct pool", goal)
	}
}

func TestPick_StreakMilestone(t *testing.T) {
	got := Pick(quiz.OutcomeCorrect, 5, fixedSource{0.0})
	if !strings.Contains(got, "5") {
		t.Errorf("milestone message %q does not mention the streak", got)
	}

	got = Pick(quiz.OutcomeCorrect, 6, fixedSource{0.0})
	if !slices.Contains(correctPool, got) {
		t.Errorf("streak 6 should use the plain pool, got %q", got)
	}
}

func TestToneFor(t *testing.T) {
	correct := ToneFor(quiz.OutcomeCorrect)
	if len(correct) != 3 {
		t.Fatalf("correct cue has %d tones, want 3", len(correct))
	}
	for i := 1; i < len(correct); i++ {
		if correct[i].Hz <= correct[i-1].Hz {
			t.Errorf("correct cue not ascending: %v", correct)
		}
	}

	miss := ToneFor(quiz.OutcomeIncorrect)
	if len(miss) != 1 || miss[0].Hz >= correct[0].Hz {
		t.Errorf("miss cue should be a single low tone, got %v", miss)
	}

	if ToneFor(quiz.OutcomeInvalid) != nil {
		t.Error("validation rejection should have no tone")
	}
}

func TestBurst(t *testing.T) {
	ps := Burst(12, fixedSource{0.5})
	if len(ps) != 12 {
		t.Fatalf("got %d particles, want 12", len(ps))
	}
	for _, p := range ps {
		if p.Glyph == "" {
			t.Fatal("empty particle glyph")
		}
		if p.DX < -6 || p.DX > 6 || p.DY < -3 || p.DY > 3 {
			t.Fatalf("particle offset out of range: %+v", p)
		}
	}
	if Burst(0, nil) != nil {
		t.Error("Burst(0) should be nil")
	}
}
