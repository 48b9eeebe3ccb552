package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tableside/internal/cli/formatter"
)

func newHistoryCmd(app *App) *cobra.Command {
	var learner string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List a learner's completed sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.ListByLearner(cmd.Context(), learner, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(sessions) == 0 {
				fmt.Fprintf(out, "No sessions recorded for %s.\n", learner)
				return nil
			}

			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				ended := "-"
				if s.EndedAt != nil {
					ended = s.EndedAt.Format("2006-01-02 15:04")
				}
				rows = append(rows, []string{
					formatter.ShortID(s.ID),
					string(s.Category),
					fmt.Sprintf("%d", len(s.Turns)),
					formatter.ScoreStyle(int(s.AverageScore())).Render(fmt.Sprintf("%.1f", s.AverageScore())),
					formatter.TierBadge(s.Tier),
					ended,
				})
			}
			fmt.Fprint(out, formatter.RenderTable(
				[]string{"SESSION", "CATEGORY", "TURNS", "AVG", "TIER", "ENDED"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&learner, "learner", "", "Learner identifier")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum sessions to show")
	_ = cmd.MarkFlagRequired("learner")

	return cmd
}
