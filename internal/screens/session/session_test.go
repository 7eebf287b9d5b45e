package session

import (
	"context"
	"strconv"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/misaki/drillbox/internal/catalog"
	"github.com/misaki/drillbox/internal/feedback"
	"github.com/misaki/drillbox/internal/quiz"
	"github.com/misaki/drillbox/internal/router"
	"github.com/misaki/drillbox/internal/screens/summary"
	"github.com/misaki/drillbox/internal/store"
)

// fakeProgress implements store.ProgressRepo for testing.
type fakeProgress struct {
	daily map[string]store.DailyRecord
	sound bool
}

func newFakeProgress() *fakeProgress {
	return &fakeProgress{daily: map[string]store.DailyRecord{}, sound: true}
}

func (f *fakeProgress) LoadDaily(_ context.Context, gameID string) store.DailyRecord {
	return f.daily[gameID]
}
func (f *fakeProgress) SaveDaily(_ context.Context, gameID string, rec store.DailyRecord) {
	f.daily[gameID] = rec
}
func (f *fakeProgress) LoadSound(_ context.Context) bool    { return f.sound }
func (f *fakeProgress) SaveSound(_ context.Context, e bool) { f.sound = e }

// fakeEvents implements store.EventRepo for testing.
type fakeEvents struct {
	answers []store.AnswerEventData
}

func (f *fakeEvents) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	f.answers = append(f.answers, data)
	return nil
}
func (f *fakeEvents) AnswerStats(_ context.Context) ([]store.GameStats, error) { return nil, nil }
func (f *fakeEvents) Reset(_ context.Context) error                            { return nil }

func additionGame() catalog.Game {
	return catalog.Game{
		ID:    "addition",
		Title: "Addition",
		Kind:  "arithmetic",
		Op:    "+",
		Tier:  "easy",
	}
}

func shapesGame() catalog.Game {
	return catalog.Game{
		ID:    "shapes",
		Title: "Shapes",
		Kind:  "choice",
		Tier:  "easy",
	}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSession(t *testing.T, game catalog.Game, mode quiz.Mode) (*Model, *fakeProgress, *fakeEvents) {
	t.Helper()
	progress := newFakeProgress()
	events := &fakeEvents{}
	m, err := New(game, mode, progress, events)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.Init()
	return m, progress, events
}

// submitAnswer types a value and presses enter.
func submitAnswer(m *Model, value string) tea.Cmd {
	m.input.Model.SetValue(value)
	_, cmd := m.Update(specialKey(tea.KeyEnter))
	return cmd
}

func TestNew_UnknownKind(t *testing.T) {
	game := additionGame()
	game.Kind = "karaoke"
	if _, err := New(game, quiz.ModePractice, newFakeProgress(), &fakeEvents{}); err == nil {
		t.Fatal("expected error for unknown game kind")
	}
}

func TestTitle(t *testing.T) {
	m, _, _ := testSession(t, additionGame(), quiz.ModePractice)
	if m.Title() != "Addition" {
		t.Errorf("Title = %q, want %q", m.Title(), "Addition")
	}
}

func TestInit_ServesQuestion(t *testing.T) {
	m, _, _ := testSession(t, additionGame(), quiz.ModePractice)

	st := m.engine.State()
	if st.Phase != quiz.PhaseQuestion {
		t.Errorf("phase = %v, want PhaseQuestion", st.Phase)
	}
	if st.Current == nil {
		t.Fatal("expected a problem after Init")
	}
}

func TestSubmit_Correct(t *testing.T) {
	m, _, events := testSession(t, additionGame(), quiz.ModePractice)

	ans := m.engine.State().Current.Answer
	cmd := submitAnswer(m, strconv.Itoa(ans))

	st := m.engine.State()
	if st.Phase != quiz.PhaseCorrect {
		t.Errorf("phase = %v, want PhaseCorrect", st.Phase)
	}
	if st.Correct != 1 || st.Total != 1 || st.Streak != 1 {
		t.Errorf("counters = %d/%d streak %d, want 1/1 streak 1", st.Correct, st.Total, st.Streak)
	}
	if m.flash == "" {
		t.Error("expected a feedback message")
	}
	if len(m.particles) == 0 {
		t.Error("expected a particle burst")
	}
	if cmd == nil {
		t.Error("expected a scheduled advance command")
	}
	if len(events.answers) != 1 || !events.answers[0].Correct {
		t.Errorf("expected one correct answer event, got %+v", events.answers)
	}
}

func TestSubmit_CorrectThenAdvance(t *testing.T) {
	m, _, _ := testSession(t, additionGame(), quiz.ModePractice)

	ans := m.engine.State().Current.Answer
	submitAnswer(m, strconv.Itoa(ans))
	m.Update(advanceMsg{seq: m.seq})

	st := m.engine.State()
	if st.Phase != quiz.PhaseQuestion {
		t.Errorf("phase = %v, want PhaseQuestion after advance", st.Phase)
	}
	if m.input.Value() != "" {
		t.Errorf("expected input cleared, got %q", m.input.Value())
	}
}

func TestSubmit_IncorrectThenRetry(t *testing.T) {
	m, _, _ := testSession(t, additionGame(), quiz.ModePractice)

	before := m.engine.State().Current
	submitAnswer(m, strconv.Itoa(before.Answer+1))

	st := m.engine.State()
	if st.Phase != quiz.PhaseIncorrect {
		t.Errorf("phase = %v, want PhaseIncorrect", st.Phase)
	}
	if st.Total != 1 || st.Correct != 0 {
		t.Errorf("counters = %d/%d, want 0/1", st.Correct, st.Total)
	}

	m.Update(retryMsg{seq: m.seq})

	st = m.engine.State()
	if st.Phase != quiz.PhaseQuestion {
		t.Errorf("phase = %v, want PhaseQuestion after retry", st.Phase)
	}
	if st.Current != before {
		t.Error("expected the same problem retained for retry")
	}
	if m.input.Value() != "" {
		t.Errorf("expected input cleared, got %q", m.input.Value())
	}
}

func TestSubmit_EmptyInput(t *testing.T) {
	m, _, events := testSession(t, additionGame(), quiz.ModePractice)

	submitAnswer(m, "")

	st := m.engine.State()
	if st.Phase != quiz.PhaseQuestion {
		t.Errorf("phase = %v, want PhaseQuestion", st.Phase)
	}
	if st.Total != 0 {
		t.Errorf("total = %d, want 0 for invalid input", st.Total)
	}
	if m.flash != feedback.MsgEnterNumber {
		t.Errorf("flash = %q, want %q", m.flash, feedback.MsgEnterNumber)
	}
	if len(events.answers) != 0 {
		t.Errorf("expected no answer events, got %d", len(events.answers))
	}
}

func TestStaleTickIgnored(t *testing.T) {
	m, _, _ := testSession(t, additionGame(), quiz.ModePractice)

	submitAnswer(m, strconv.Itoa(m.engine.State().Current.Answer+1))

	// A tick from an earlier submission must not re-arm the question.
	m.Update(retryMsg{seq: m.seq - 1})

	if m.engine.State().Phase != quiz.PhaseIncorrect {
		t.Error("expected stale retry tick to be ignored")
	}
}

func TestDaily_GoalFinishesSession(t *testing.T) {
	m, progress, _ := testSession(t, additionGame(), quiz.ModeDaily)

	var lastCmd tea.Cmd
	for i := 0; i < quiz.DefaultDailyGoal; i++ {
		lastCmd = submitAnswer(m, strconv.Itoa(m.engine.State().Current.Answer))
		if i < quiz.DefaultDailyGoal-1 {
			m.Update(advanceMsg{seq: m.seq})
		}
	}

	if got := progress.daily["addition"].Done; got != quiz.DefaultDailyGoal {
		t.Errorf("persisted daily done = %d, want %d", got, quiz.DefaultDailyGoal)
	}
	if lastCmd == nil {
		t.Fatal("expected a finish command after reaching the goal")
	}

	_, cmd := m.Update(finishMsg{seq: m.seq})
	if cmd == nil {
		t.Fatal("expected a replace command from finishMsg")
	}
	msg := cmd()
	rep, ok := msg.(router.ReplaceMsg)
	if !ok {
		t.Fatalf("expected ReplaceMsg, got %T", msg)
	}
	if _, ok := rep.Screen.(*summary.Model); !ok {
		t.Errorf("expected summary screen, got %T", rep.Screen)
	}
}

func TestChoice_SelectCorrect(t *testing.T) {
	m, _, _ := testSession(t, shapesGame(), quiz.ModePractice)

	st := m.engine.State()
	if len(m.choice.Options) != len(st.Current.Choices) {
		t.Fatalf("choice options = %d, want %d", len(m.choice.Options), len(st.Current.Choices))
	}

	m.choice.Selected = st.Current.Answer
	m.Update(specialKey(tea.KeyEnter))

	if m.engine.State().Phase != quiz.PhaseCorrect {
		t.Errorf("phase = %v, want PhaseCorrect", m.engine.State().Phase)
	}
	if !m.choice.IsCorrect() {
		t.Error("expected the locked-in choice to be correct")
	}
}

func TestView_NonEmpty(t *testing.T) {
	m, _, _ := testSession(t, additionGame(), quiz.ModePractice)
	if m.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
}

func TestStatus_DailyShowsProgress(t *testing.T) {
	m, _, _ := testSession(t, additionGame(), quiz.ModeDaily)
	if m.Status() == "" {
		t.Error("expected a status segment in daily mode")
	}
}
