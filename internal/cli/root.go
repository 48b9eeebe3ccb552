package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tableside/internal/catalog"
	"github.com/alexanderramin/tableside/internal/judge"
	"github.com/alexanderramin/tableside/internal/progress"
	"github.com/alexanderramin/tableside/internal/repository"
)

// App holds everything CLI commands need. The training engine itself is
// built per invocation so policy flags can shape it.
type App struct {
	Catalog  *catalog.Catalog
	Judge    judge.Judge
	Store    progress.Store
	Sessions repository.SessionRepo

	// LogWriter receives engine telemetry when --verbose is set.
	LogWriter io.Writer

	// Interactive reports whether stdin is a terminal. Non-interactive
	// runs fall back to plain line-based prompts.
	Interactive bool
}

// NewRootCmd creates the top-level "tableside" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tableside",
		Short: "Waiter training simulator with adaptive difficulty",
		Long: "Tableside runs scored restaurant-service training sessions: it presents\n" +
			"scenarios, grades free-text responses, and adapts the difficulty to the\n" +
			"trainee's recent performance.",
	}

	root.AddCommand(
		newTrainCmd(app),
		newScenariosCmd(app),
		newProgressCmd(app),
		newHistoryCmd(app),
	)

	return root
}
