package cli

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/tableside/internal/catalog"
	"github.com/alexanderramin/tableside/internal/domain"
	"github.com/alexanderramin/tableside/internal/judge"
	"github.com/alexanderramin/tableside/internal/progress"
	"github.com/alexanderramin/tableside/internal/teatest"
	"github.com/alexanderramin/tableside/internal/training"
)

func newTUIDriver(t *testing.T, j judge.Judge) (*teatest.Driver, *training.Engine) {
	t.Helper()
	engine := training.NewEngine(catalog.Builtin(), j, progress.NewMemoryStore(),
		training.WithRetryPolicy(training.RetryPolicy{MaxAttempts: 3, InitialWait: time.Millisecond, Multiplier: 1}))
	handle, err := engine.Begin(context.Background(), "dana", domain.CategoryGreeting)
	require.NoError(t, err)

	d := teatest.New(t, newTrainModel(context.Background(), engine, handle))
	d.Send(tea.WindowSizeMsg{Width: 100, Height: 30})
	return d, engine
}

func TestTrainTUI_ShowsScenarioPrompt(t *testing.T) {
	d, _ := newTUIDriver(t, judge.NewScriptedJudge())

	view := d.View()
	assert.Contains(t, view, "Scenario 1")
	assert.Contains(t, view, "ctrl+d submit")
}

func TestTrainTUI_SubmitShowsAssessmentAndAdvances(t *testing.T) {
	d, _ := newTUIDriver(t, judge.NewScriptedJudge(judge.Scored(85)))

	d.Type("Good evening, welcome in! Can I start you with some water?")
	d.Press(tea.KeyCtrlD)

	view := d.View()
	assert.Contains(t, view, "85/100")
	assert.Contains(t, view, "Scenario 2")
	assert.False(t, d.Quit)
}

func TestTrainTUI_EmptySubmitPrompts(t *testing.T) {
	d, _ := newTUIDriver(t, judge.NewScriptedJudge())

	d.Press(tea.KeyCtrlD)

	assert.Contains(t, d.View(), "Type a response first.")
	assert.False(t, d.Quit)
}

func TestTrainTUI_JudgeOutageKeepsSessionAlive(t *testing.T) {
	d, _ := newTUIDriver(t, judge.NewScriptedJudge(
		judge.ScriptedResult{Err: &judge.UnavailableError{}},
		judge.ScriptedResult{Err: &judge.UnavailableError{}},
		judge.ScriptedResult{Err: &judge.UnavailableError{}},
		judge.Scored(70),
	))

	d.Type("We have a lovely corner table available.")
	d.Press(tea.KeyCtrlD)
	assert.Contains(t, d.View(), "Grading is unavailable right now")
	assert.False(t, d.Quit)

	d.Press(tea.KeyCtrlD)
	assert.Contains(t, d.View(), "70/100")
}

func TestTrainTUI_EscEndsWithSummary(t *testing.T) {
	d, engine := newTUIDriver(t, judge.NewScriptedJudge(judge.Scored(90)))

	d.Type("Welcome! Right this way to your table.")
	d.Press(tea.KeyCtrlD)
	d.Press(tea.KeyEsc)

	assert.True(t, d.Quit)
	m, ok := d.Model.(trainModel)
	require.True(t, ok)
	assert.Contains(t, m.summaryText, "Session complete")
	assert.Contains(t, m.summaryText, "90.0")

	// The session is closed; a fresh one can still be started.
	_, err := engine.Begin(context.Background(), "dana", domain.CategoryGreeting)
	assert.NoError(t, err)
}
