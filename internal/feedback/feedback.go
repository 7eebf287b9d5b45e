// Package feedback maps answer outcomes to learner-facing messages and
// decorative cues. Everything here is data selection: the caller
// decides whether to actually ring, flash or render, and a terminal
// with no capability for any of it loses nothing but sparkle.
package feedback

import (
	"fmt"

	"github.com/misaki/drillbox/internal/problem"
	"github.com/misaki/drillbox/internal/quiz"
)

// Fixed validation messages. Tests and screens rely on these exact
// strings, so they are constants rather than pool entries.
const (
	MsgEnterNumber = "Enter a number!"
	MsgNoNegative  = "Enter 0 or bigger!"
)

var correctPool = []string{
	"Correct! Nice work!",
	"You got it!",
	"That's right!",
	"Great job!",
}

var streakPool = []string{
	"%d in a row! You're on fire!",
	"Streak of %d! Keep it up!",
	"Wow, %d straight!",
}

var goalPool = []string{
	"Mission complete! See you tomorrow!",
	"That's today's goal — amazing work!",
}

var incorrectPool = []string{
	"Not quite — try again!",
	"Almost! Give it another go!",
	"Keep trying, you'll get it!",
}

// BaseMilestone is the first streak length that gets a callout.
const BaseMilestone = 5

// NextMilestone returns the next streak milestone above current:
// 5, 10, 15, 20, then every 5.
func NextMilestone(current int) int {
	thresholds := []int{5, 10, 15, 20}
	for _, t := range thresholds {
		if t > current {
			return t
		}
	}
	return ((current / 5) + 1) * 5
}

// IsMilestone reports whether a streak length lands on a milestone.
func IsMilestone(streak int) bool {
	return streak >= BaseMilestone && streak%BaseMilestone == 0
}

// Pick selects the message for one outcome. Correct answers on a
// streak milestone get the milestone variant; reaching the daily goal
// overrides both.
func Pick(out quiz.Outcome, streak int, src problem.Source) string {
	switch out {
	case quiz.OutcomeInvalid:
		return MsgEnterNumber
	case quiz.OutcomeNegative:
		return MsgNoNegative
	case quiz.OutcomeIncorrect:
		return pick(incorrectPool, src)
	case quiz.OutcomeGoalReached:
		return pick(goalPool, src)
	case quiz.OutcomeCorrect:
		if IsMilestone(streak) {
			return fmt.Sprintf(pick(streakPool, src), streak)
		}
		return pick(correctPool, src)
	}
	return ""
}

func pick(pool []string, src problem.Source) string {
	if src == nil {
		return pool[0]
	}
	i := int(src.Float64() * float64(len(pool)))
	if i >= len(pool) {
		i = len(pool) - 1
	}
	return pool[i]
}
