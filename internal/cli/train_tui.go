package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/tableside/internal/cli/formatter"
	"github.com/alexanderramin/tableside/internal/domain"
	"github.com/alexanderramin/tableside/internal/training"
)

// judgedMsg carries the outcome of an async Respond call.
type judgedMsg struct {
	result *training.TurnResult
	err    error
}

// endedMsg carries the outcome of an async End call.
type endedMsg struct {
	summary domain.SessionSummary
	err     error
}

// trainModel is the bubbletea model for an interactive training session.
type trainModel struct {
	ctx    context.Context
	engine *training.Engine
	handle *training.SessionHandle

	input textarea.Model
	spin  spinner.Model

	scenario   domain.Scenario
	turn       int
	lastReport string
	tierNote   string
	errText    string

	judging bool
	ending  bool

	summaryText string
	fatalErr    error

	width int
}

func newTrainModel(ctx context.Context, engine *training.Engine, handle *training.SessionHandle) trainModel {
	input := textarea.New()
	input.Placeholder = "How would you respond? (ctrl+d to submit, esc to finish)"
	input.SetHeight(4)
	input.CharLimit = 4000
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = formatter.StyleBlue

	return trainModel{
		ctx:      ctx,
		engine:   engine,
		handle:   handle,
		input:    input,
		spin:     spin,
		scenario: handle.Scenario,
		turn:     1,
	}
}

func (m trainModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m trainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.SetWidth(msg.Width - 4)
		return m, nil

	case tea.KeyMsg:
		if m.judging || m.ending {
			// Only allow bailing out while a call is in flight.
			if msg.Type == tea.KeyCtrlC {
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.ending = true
			return m, tea.Batch(m.spin.Tick, m.endSession())
		case tea.KeyCtrlD:
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				m.errText = "Type a response first."
				return m, nil
			}
			m.judging = true
			m.errText = ""
			return m, tea.Batch(m.spin.Tick, m.submit(text))
		}

	case spinner.TickMsg:
		if m.judging || m.ending {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case judgedMsg:
		m.judging = false
		if msg.err != nil {
			switch {
			case errors.Is(msg.err, training.ErrInvalidResponse):
				m.errText = "Response rejected. Try a fuller answer."
			case errors.Is(msg.err, training.ErrTrainingUnavailable):
				m.errText = "Grading is unavailable right now. Your answer was kept; submit again."
			default:
				m.fatalErr = msg.err
				return m, tea.Quit
			}
			return m, nil
		}

		m.lastReport = formatter.FormatAssessment(msg.result.Assessment)
		m.tierNote = formatter.FormatTierChange(m.scenario.Tier, msg.result.Tier)
		m.scenario = msg.result.NextScenario
		m.turn = msg.result.TurnCount + 1
		m.input.Reset()
		return m, nil

	case endedMsg:
		m.ending = false
		if msg.err != nil {
			m.fatalErr = msg.err
		} else {
			m.summaryText = formatter.FormatSummary(msg.summary)
		}
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m trainModel) View() string {
	if m.summaryText != "" || m.fatalErr != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.FormatScenario(m.scenario, m.turn))
	b.WriteString("\n")

	if m.lastReport != "" {
		b.WriteString(m.lastReport)
		if m.tierNote != "" {
			b.WriteString("\n" + m.tierNote + "\n")
		}
		b.WriteString("\n")
	}

	switch {
	case m.judging:
		b.WriteString(m.spin.View() + formatter.Dim(" grading your response…"))
	case m.ending:
		b.WriteString(m.spin.View() + formatter.Dim(" wrapping up the session…"))
	default:
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(formatter.Dim("ctrl+d submit · esc finish session"))
	}

	if m.errText != "" {
		b.WriteString("\n" + formatter.StyleYellow.Render(m.errText))
	}
	b.WriteString("\n")

	return b.String()
}

func (m trainModel) submit(text string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.engine.Respond(m.ctx, m.handle, text)
		return judgedMsg{result: result, err: err}
	}
}

func (m trainModel) endSession() tea.Cmd {
	return func() tea.Msg {
		summary, err := m.engine.End(m.ctx, m.handle)
		return endedMsg{summary: summary, err: err}
	}
}
