package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tableside/internal/cli/formatter"
	"github.com/alexanderramin/tableside/internal/domain"
)

func newProgressCmd(app *App) *cobra.Command {
	var learner, categoryStr string

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show a learner's progress records",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if categoryStr != "" {
				category, err := domain.ParseCategory(categoryStr)
				if err != nil {
					return err
				}
				rec, err := app.Store.Get(ctx, learner, category)
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.RenderTable(progressHeaders,
					formatter.FormatProgressRows([]domain.ProgressRecord{rec})))
				return nil
			}

			recs, err := app.Store.ListByLearner(ctx, learner)
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Fprintf(out, "No training history for %s yet.\n", learner)
				return nil
			}
			fmt.Fprint(out, formatter.RenderTable(progressHeaders,
				formatter.FormatProgressRows(recs)))
			return nil
		},
	}

	cmd.Flags().StringVar(&learner, "learner", "", "Learner identifier")
	cmd.Flags().StringVar(&categoryStr, "category", "", "Limit to one category")
	_ = cmd.MarkFlagRequired("learner")

	return cmd
}

var progressHeaders = []string{"CATEGORY", "SESSIONS", "AVG SCORE", "RECOMMENDED", "UPDATED"}
