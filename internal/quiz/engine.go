// Package quiz is the game-agnostic session engine: one parameterized
// state machine drives every mini-game. Host screens construct an
// Engine with a problem builder and drive it through NewQuestion,
// StartPractice/StartDaily and Check; all presentation stays outside.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/misaki/drillbox/internal/numtext"
	"github.com/misaki/drillbox/internal/problem"
	"github.com/misaki/drillbox/internal/store"
)

// DefaultDailyGoal is the number of correct answers a daily mission
// takes when the game doesn't configure one.
const DefaultDailyGoal = 3

// BuildFunc produces the next problem for the engine.
type BuildFunc func(src problem.Source) (*problem.Problem, error)

// Config parameterizes an Engine for one game.
type Config struct {
	// GameID namespaces the persisted daily record and answer events.
	GameID string

	// Title and Subtitle label the session screen.
	Title    string
	Subtitle string

	// DailyGoal is the daily-mission target; 0 means DefaultDailyGoal.
	DailyGoal int

	// Build generates problems. Required.
	Build BuildFunc

	// AllowNegative accepts negative submissions. Off by default since
	// most games can't have negative answers and a stray minus sign is
	// almost always a typo.
	AllowNegative bool
}

func (c Config) validate() error {
	if c.GameID == "" {
		return errors.New("quiz: config missing GameID")
	}
	if c.Build == nil {
		return errors.New("quiz: config missing Build")
	}
	if c.DailyGoal < 0 {
		return fmt.Errorf("quiz: negative DailyGoal %d", c.DailyGoal)
	}
	return nil
}

// Engine runs the quiz state machine for one game. It is not safe for
// concurrent use; all calls happen on the UI event loop.
type Engine struct {
	cfg       Config
	state     State
	progress  store.ProgressRepo
	events    store.EventRepo
	src       problem.Source
	sessionID string
	now       func() time.Time
}

// Option tweaks engine construction.
type Option func(*Engine)

// WithNow overrides the engine clock, used to pin "today" in tests.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New builds an Engine and loads the persisted sound preference.
// progress is required; events may be nil to disable answer logging.
func New(ctx context.Context, cfg Config, progress store.ProgressRepo, events store.EventRepo, src problem.Source, opts ...Option) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.DailyGoal == 0 {
		cfg.DailyGoal = DefaultDailyGoal
	}
	if src == nil {
		src = problem.NewSource()
	}

	e := &Engine{
		cfg:       cfg,
		progress:  progress,
		events:    events,
		src:       src,
		sessionID: uuid.NewString(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.state = State{
		Mode:         ModePractice,
		Phase:        PhaseIdle,
		DailyGoal:    cfg.DailyGoal,
		SoundEnabled: progress.LoadSound(ctx),
	}
	return e, nil
}

// State exposes the engine state for host pages to inspect. Callers
// must treat it as read-only.
func (e *Engine) State() *State {
	return &e.state
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// SessionID identifies this run in the answer event log.
func (e *Engine) SessionID() string {
	return e.sessionID
}

// StartPractice switches to free-play mode. Session counters carry
// over; only the goal bookkeeping changes.
func (e *Engine) StartPractice() {
	e.state.Mode = ModePractice
}

// StartDaily switches to daily-mission mode and loads today's progress.
// The stored record handles stale-date rollover, so a record from
// yesterday reads as zero.
func (e *Engine) StartDaily(ctx context.Context) {
	e.state.Mode = ModeDaily
	rec := e.progress.LoadDaily(ctx, e.cfg.GameID)
	done := rec.Done
	if done > e.state.DailyGoal {
		done = e.state.DailyGoal
	}
	e.state.DailyDone = done
}

// NewQuestion generates and installs the next problem. Generation
// failures indicate a misconfigured game and are returned as-is.
func (e *Engine) NewQuestion() error {
	p, err := e.cfg.Build(e.src)
	if err != nil {
		return fmt.Errorf("build question: %w", err)
	}
	e.state.Current = p
	e.state.Phase = PhaseQuestion
	return nil
}

// Check validates and scores one submission against the current
// problem. Validation order is fixed because each branch carries a
// different message: empty, unparseable, disallowed negative, compare.
//
// Invalid input moves no counters and keeps the question up. A wrong
// answer counts the attempt, resets the streak and enters
// PhaseIncorrect with the same problem retained for retry. A correct
// answer bumps all counters and, in daily mode, advances and persists
// today's record.
func (e *Engine) Check(ctx context.Context, raw string) Outcome {
	if e.state.Phase != PhaseQuestion || e.state.Current == nil {
		return OutcomeInvalid
	}

	n, ok := numtext.ParseAnswer(raw)
	if !ok {
		return OutcomeInvalid
	}
	if n < 0 && !e.cfg.AllowNegative {
		return e.miss(ctx, OutcomeNegative)
	}
	if n != e.state.Current.Answer {
		return e.miss(ctx, OutcomeIncorrect)
	}

	e.state.Correct++
	e.state.Total++
	e.state.Streak++
	e.state.Phase = PhaseCorrect
	e.logAnswer(ctx, true)

	out := OutcomeCorrect
	if e.state.Mode == ModeDaily && e.state.DailyDone < e.state.DailyGoal {
		e.state.DailyDone++
		e.progress.SaveDaily(ctx, e.cfg.GameID, store.DailyRecord{
			Date: e.now().Format("2006-01-02"),
			Done: e.state.DailyDone,
		})
		if e.state.DailyDone == e.state.DailyGoal {
			out = OutcomeGoalReached
		}
	}
	return out
}

func (e *Engine) miss(ctx context.Context, out Outcome) Outcome {
	e.state.Total++
	e.state.Streak = 0
	e.state.Phase = PhaseIncorrect
	e.logAnswer(ctx, false)
	return out
}

// Retry re-arms the current question after an incorrect answer. The
// host calls this when its clear-input delay fires.
func (e *Engine) Retry() {
	if e.state.Phase == PhaseIncorrect {
		e.state.Phase = PhaseQuestion
	}
}

// SetSound updates and persists the sound preference.
func (e *Engine) SetSound(ctx context.Context, enabled bool) {
	e.state.SoundEnabled = enabled
	e.progress.SaveSound(ctx, enabled)
}

// logAnswer appends to the event log. Best effort: a full disk must
// never block scoring.
func (e *Engine) logAnswer(ctx context.Context, correct bool) {
	if e.events == nil {
		return
	}
	_ = e.events.AppendAnswer(ctx, store.AnswerEventData{
		SessionID: e.sessionID,
		GameID:    e.cfg.GameID,
		Mode:      string(e.state.Mode),
		Correct:   correct,
	})
}
