// Package session hosts a running quiz: it owns the engine for one game
// and turns key presses into engine calls and engine outcomes into
// messages, tones and sparkle.
package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/misaki/drillbox/internal/catalog"
	"github.com/misaki/drillbox/internal/feedback"
	"github.com/misaki/drillbox/internal/problem"
	"github.com/misaki/drillbox/internal/quiz"
	"github.com/misaki/drillbox/internal/router"
	"github.com/misaki/drillbox/internal/screens/summary"
	"github.com/misaki/drillbox/internal/store"
	"github.com/misaki/drillbox/internal/ui/components"
	"github.com/misaki/drillbox/internal/ui/layout"
	"github.com/misaki/drillbox/internal/ui/theme"
)

const (
	// retryDelay is how long a wrong answer stays marked before the
	// question re-arms for another try.
	retryDelay = 900 * time.Millisecond

	// advanceDelay is how long the celebration shows before the next
	// question appears.
	advanceDelay = 900 * time.Millisecond

	// finishDelay lets the goal celebration land before the summary.
	finishDelay = 1600 * time.Millisecond
)

// advanceMsg moves to the next question after a correct answer.
type advanceMsg struct{ seq int }

// retryMsg re-arms the current question after a wrong answer.
type retryMsg struct{ seq int }

// finishMsg ends the session once the daily goal is reached.
type finishMsg struct{ seq int }

// Model is the quiz session screen.
type Model struct {
	game   catalog.Game
	engine *quiz.Engine
	src    problem.Source

	input  components.AnswerInput
	choice components.MultiChoice

	flash      string
	flashGood  bool
	particles  []feedback.Particle
	bestStreak int

	// seq tags delayed messages so a stale tick from a superseded
	// submission is ignored.
	seq int

	ctx context.Context
}

// New builds a session screen for one catalog game.
func New(game catalog.Game, mode quiz.Mode, progress store.ProgressRepo, events store.EventRepo) (*Model, error) {
	cfg, err := catalog.EngineConfig(game)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	eng, err := quiz.New(ctx, cfg, progress, events, nil)
	if err != nil {
		return nil, err
	}

	if mode == quiz.ModeDaily {
		eng.StartDaily(ctx)
	} else {
		eng.StartPractice()
	}

	m := &Model{
		game:   game,
		engine: eng,
		src:    problem.NewSource(),
		input:  components.NewAnswerInput("?", 8),
		ctx:    ctx,
	}
	return m, nil
}

// Init serves the first question.
func (m *Model) Init() tea.Cmd {
	if err := m.nextQuestion(); err != nil {
		return func() tea.Msg { return router.PopMsg{} }
	}
	return m.input.Init()
}

// Title returns the screen name for the header.
func (m *Model) Title() string {
	return m.game.Title
}

// Status renders the header's score segment.
func (m *Model) Status() string {
	st := m.engine.State()
	if st.Mode == quiz.ModeDaily {
		return fmt.Sprintf("Daily %d/%d ⋅ Streak %d", st.DailyDone, st.DailyGoal, st.Streak)
	}
	return fmt.Sprintf("Score %d/%d ⋅ Streak %d", st.Correct, st.Total, st.Streak)
}

// KeyHints lists the footer bindings.
func (m *Model) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "enter", Description: "answer"}}
	if m.game.Kind == "choice" {
		hints = append(hints, layout.KeyHint{Key: "↑/↓", Description: "pick"})
	}
	return append(hints, layout.KeyHint{Key: "esc", Description: "back"})
}

// Update drives the engine from key presses and timed messages.
func (m *Model) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		if msg.seq == m.seq && m.engine.State().Phase == quiz.PhaseCorrect {
			if err := m.nextQuestion(); err != nil {
				return m, func() tea.Msg { return router.PopMsg{} }
			}
		}
		return m, nil

	case retryMsg:
		if msg.seq == m.seq && m.engine.State().Phase == quiz.PhaseIncorrect {
			m.engine.Retry()
			m.input.Reset()
			m.choice.Reset()
			m.flash = ""
		}
		return m, nil

	case finishMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		st := m.engine.State()
		sum := summary.New(m.game.Title, st.Correct, st.Total, m.bestStreak, true)
		return m, func() tea.Msg { return router.ReplaceMsg{Screen: sum} }

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return m, m.submit()
		}
	}

	if m.engine.State().Phase == quiz.PhaseQuestion {
		var cmd tea.Cmd
		if m.game.Kind == "choice" {
			m.choice, cmd = m.choice.Update(msg)
		} else {
			m.input, cmd = m.input.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

// submit checks the current answer and schedules the follow-up.
func (m *Model) submit() tea.Cmd {
	if m.engine.State().Phase != quiz.PhaseQuestion {
		return nil
	}

	var raw string
	if m.game.Kind == "choice" {
		m.choice.Submit()
		raw = strconv.Itoa(m.choice.ChosenIndex)
	} else {
		raw = m.input.Value()
	}

	out := m.engine.Check(m.ctx, raw)
	st := m.engine.State()
	if st.Streak > m.bestStreak {
		m.bestStreak = st.Streak
	}

	m.flash = feedback.Pick(out, st.Streak, m.src)
	m.flashGood = out == quiz.OutcomeCorrect || out == quiz.OutcomeGoalReached
	m.particles = nil

	switch out {
	case quiz.OutcomeInvalid:
		// Nothing was scored; let the learner keep typing.
		m.choice.Reset()
		return nil

	case quiz.OutcomeNegative, quiz.OutcomeIncorrect:
		m.input.Submit(false)
		m.seq++
		seq := m.seq
		return tea.Batch(
			m.bell(out),
			tea.Tick(retryDelay, func(time.Time) tea.Msg { return retryMsg{seq: seq} }),
		)

	case quiz.OutcomeCorrect:
		m.input.Submit(true)
		m.particles = feedback.Burst(8, m.src)
		m.seq++
		seq := m.seq
		return tea.Batch(
			m.bell(out),
			tea.Tick(advanceDelay, func(time.Time) tea.Msg { return advanceMsg{seq: seq} }),
		)

	case quiz.OutcomeGoalReached:
		m.input.Submit(true)
		m.particles = feedback.Burst(12, m.src)
		m.seq++
		seq := m.seq
		return tea.Batch(
			m.bell(out),
			tea.Tick(finishDelay, func(time.Time) tea.Msg { return finishMsg{seq: seq} }),
		)
	}
	return nil
}

// bell rings the terminal bell when sound is on and the outcome has a
// cue. Terminals without audio degrade to nothing.
func (m *Model) bell(out quiz.Outcome) tea.Cmd {
	if !m.engine.State().SoundEnabled || len(feedback.ToneFor(out)) == 0 {
		return nil
	}
	return func() tea.Msg {
		fmt.Print("\a")
		return nil
	}
}

func (m *Model) nextQuestion() error {
	if err := m.engine.NewQuestion(); err != nil {
		return err
	}
	m.flash = ""
	m.particles = nil
	m.input.Reset()
	if m.game.Kind == "choice" {
		p := m.engine.State().Current
		m.choice = components.NewMultiChoice(p.Choices, p.Answer)
	}
	return nil
}

// View renders the question card centered in the content area.
func (m *Model) View(width, height int) string {
	st := m.engine.State()

	var body string

	if m.game.Subtitle != "" {
		body += theme.Subtitle.Render(m.game.Subtitle) + "\n\n"
	}

	if st.Current != nil {
		body += theme.Title.Render(st.Current.Text) + "\n\n"
		if m.game.Kind == "choice" {
			body += m.choice.View() + "\n"
		} else {
			body += m.input.View() + "\n"
		}
	}

	if m.flash != "" {
		style := theme.Bad
		if m.flashGood {
			style = theme.Good
		}
		body += "\n" + style.Render(m.flash) + "\n"
	}

	if len(m.particles) > 0 {
		body += renderBurst(m.particles)
	}

	if st.Mode == quiz.ModeDaily {
		bar := components.NewProgressBar(st.DailyDone, st.DailyGoal, 20)
		body += "\n" + bar.View() + "\n"
	}

	card := theme.Card.Width(46).Align(lipgloss.Center).Render(body)
	return layout.Center(card, width, height)
}

// renderBurst scatters the particles over a three-row canvas around a
// center origin.
func renderBurst(ps []feedback.Particle) string {
	const rowWidth = 30
	rows := [3][]rune{}
	for i := range rows {
		rows[i] = []rune(fmt.Sprintf("%*s", rowWidth, ""))
	}
	for _, p := range ps {
		x := rowWidth/2 + p.DX
		y := 1 + clampRow(p.DY)
		if x >= 0 && x < rowWidth {
			rows[y][x] = []rune(p.Glyph)[0]
		}
	}
	out := "\n"
	for _, r := range rows {
		out += lipgloss.NewStyle().Foreground(theme.Secondary).Render(string(r)) + "\n"
	}
	return out
}

func clampRow(dy int) int {
	switch {
	case dy < 0:
		return -1
	case dy > 0:
		return 1
	}
	return 0
}
