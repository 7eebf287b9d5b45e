package quiz

import "github.com/misaki/drillbox/internal/problem"

// Mode selects what a session counts toward.
type Mode string

const (
	// ModePractice is free play: nothing persists.
	ModePractice Mode = "practice"

	// ModeDaily counts correct answers toward the day's mission.
	ModeDaily Mode = "daily"
)

// Phase is the engine's position in the answer cycle.
type Phase int

const (
	// PhaseIdle means no question has been served yet.
	PhaseIdle Phase = iota

	// PhaseQuestion means a question is displayed and awaiting an answer.
	PhaseQuestion

	// PhaseCorrect means the last submission was correct; the next
	// question is an explicit action.
	PhaseCorrect

	// PhaseIncorrect means the last submission was wrong; the same
	// question stays up for retry.
	PhaseIncorrect
)

// Outcome classifies one submission. The validation order is fixed:
// empty/unparseable input is rejected first, then a disallowed negative
// value, and only then is the answer compared.
type Outcome int

const (
	// OutcomeInvalid: nothing parseable was entered. No counter moves;
	// the learner is re-prompted.
	OutcomeInvalid Outcome = iota

	// OutcomeNegative: a negative value where the game disallows them.
	OutcomeNegative

	// OutcomeIncorrect: a well-formed but wrong answer.
	OutcomeIncorrect

	// OutcomeCorrect: the right answer.
	OutcomeCorrect

	// OutcomeGoalReached: the right answer, and it completed the daily
	// mission.
	OutcomeGoalReached
)

// Counts reports whether the outcome counts as a submitted answer
// (i.e. it moves Total and feeds the answer event log).
func (o Outcome) Counts() bool {
	return o != OutcomeInvalid
}

// State is the runtime state of one engine. It is owned by the engine
// for the lifetime of one run and mutated only in response to a
// discrete user action; only the daily record and sound preference
// survive a restart.
type State struct {
	Mode  Mode
	Phase Phase

	// Correct, Total and Streak are session-lifetime counters. Streak
	// resets to zero on any counted miss.
	Correct int
	Total   int
	Streak  int

	// DailyDone is today's progress toward DailyGoal. Meaningful in
	// ModeDaily; capped at DailyGoal.
	DailyDone int
	DailyGoal int

	SoundEnabled bool

	// Current is the active problem. Replaced, never mutated.
	Current *problem.Problem
}
