package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/tableside/internal/adaptive"
	"github.com/alexanderramin/tableside/internal/cli/formatter"
	"github.com/alexanderramin/tableside/internal/domain"
	"github.com/alexanderramin/tableside/internal/judge"
	"github.com/alexanderramin/tableside/internal/training"
)

func newTrainCmd(app *App) *cobra.Command {
	var (
		learner     string
		categoryStr string
		judgeName   string
		window      int
		promoteAt   float64
		demoteBelow float64
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Run a training session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if categoryStr == "" {
				picked, err := pickCategory(app)
				if err != nil {
					return err
				}
				categoryStr = picked
			}
			category, err := domain.ParseCategory(categoryStr)
			if err != nil {
				return err
			}

			policy := adaptive.Policy{
				Window:      window,
				PromoteAt:   promoteAt,
				DemoteBelow: demoteBelow,
			}
			if !policy.Valid() {
				return fmt.Errorf("difficulty thresholds are inconsistent: window=%d promote-at=%.0f demote-below=%.0f",
					window, promoteAt, demoteBelow)
			}

			grader := app.Judge
			switch judgeName {
			case "llm":
			case "offline":
				grader = judge.NewOfflineJudge()
			default:
				return fmt.Errorf("unknown judge %q (want llm or offline)", judgeName)
			}

			opts := []training.Option{training.WithPolicy(policy)}
			if verbose && app.LogWriter != nil {
				opts = append(opts, training.WithObserver(training.NewLogObserver(app.LogWriter)))
			}
			engine := training.NewEngine(app.Catalog, grader, app.Store, opts...)

			ctx := cmd.Context()
			handle, err := engine.Begin(ctx, learner, category)
			if err != nil {
				return err
			}

			if app.Interactive {
				return runTrainTUI(ctx, cmd.OutOrStdout(), engine, handle)
			}
			return runTrainPlain(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), engine, handle)
		},
	}

	cmd.Flags().StringVar(&learner, "learner", "", "Learner identifier")
	cmd.Flags().StringVar(&categoryStr, "category", "", "Training category (prompted when omitted)")
	cmd.Flags().StringVar(&judgeName, "judge", "llm", "Grading backend: llm or offline")
	cmd.Flags().IntVar(&window, "window", 3, "Number of recent turns used for difficulty decisions")
	cmd.Flags().Float64Var(&promoteAt, "promote-at", 80, "Average score at which the tier is raised")
	cmd.Flags().Float64Var(&demoteBelow, "demote-below", 50, "Average score below which the tier is lowered")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Log engine telemetry to stderr")
	_ = cmd.MarkFlagRequired("learner")

	return cmd
}

// pickCategory asks for a category: a huh select on a terminal, an error
// otherwise since there is nobody to ask.
func pickCategory(app *App) (string, error) {
	if !app.Interactive {
		return "", fmt.Errorf("--category is required when stdin is not a terminal")
	}

	options := make([]huh.Option[string], 0, len(domain.Categories()))
	for _, c := range domain.Categories() {
		options = append(options, huh.NewOption(c.Description(), string(c)))
	}

	var picked string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What do you want to practice?").
				Options(options...).
				Value(&picked),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", err
	}
	return picked, nil
}

// runTrainTUI drives the full-screen training loop.
func runTrainTUI(ctx context.Context, out io.Writer, engine *training.Engine, handle *training.SessionHandle) error {
	model := newTrainModel(ctx, engine, handle)
	program := tea.NewProgram(model, tea.WithContext(ctx))

	final, err := program.Run()
	if err != nil {
		return err
	}

	m, ok := final.(trainModel)
	if !ok {
		return nil
	}
	if m.summaryText != "" {
		fmt.Fprintln(out, m.summaryText)
	}
	return m.fatalErr
}

// runTrainPlain is the line-based fallback for pipes and dumb terminals.
// One line per response; an empty line or EOF ends the session.
func runTrainPlain(ctx context.Context, in io.Reader, out io.Writer, engine *training.Engine, handle *training.SessionHandle) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 64*1024)

	scenario := handle.Scenario
	turn := 1
	for {
		fmt.Fprintln(out, formatter.FormatScenario(scenario, turn))
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			break
		}

		result, err := engine.Respond(ctx, handle, text)
		if err != nil {
			if errors.Is(err, training.ErrInvalidResponse) {
				fmt.Fprintf(out, "%s\n\n", formatter.StyleYellow.Render("Response rejected: "+err.Error()))
				continue
			}
			return err
		}

		fmt.Fprintln(out, formatter.FormatAssessment(result.Assessment))
		if note := formatter.FormatTierChange(scenario.Tier, result.Tier); note != "" {
			fmt.Fprintln(out, note)
		}
		fmt.Fprintln(out)

		scenario = result.NextScenario
		turn = result.TurnCount + 1
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	summary, err := engine.End(ctx, handle)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, formatter.FormatSummary(summary))
	return nil
}
