package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/tableside/internal/catalog"
	"github.com/alexanderramin/tableside/internal/cli/formatter"
	"github.com/alexanderramin/tableside/internal/domain"
)

func newScenariosCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Browse the scenario catalog",
	}

	cmd.AddCommand(
		newScenariosListCmd(app),
		newScenariosShowCmd(app),
	)

	return cmd
}

func newScenariosListCmd(app *App) *cobra.Command {
	var categoryStr, tierStr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scenarios, optionally filtered by category and difficulty",
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter catalog.Filter

			if categoryStr != "" {
				category, err := domain.ParseCategory(categoryStr)
				if err != nil {
					return err
				}
				filter.Category = category
			}
			if tierStr != "" {
				tier, err := domain.ParseTier(tierStr)
				if err != nil {
					return err
				}
				filter.Tier = tier
			}

			scenarios := app.Catalog.List(filter)
			if len(scenarios) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No scenarios match.")
				return nil
			}

			rows := make([][]string, 0, len(scenarios))
			for _, s := range scenarios {
				rows = append(rows, []string{
					s.ID,
					string(s.Category),
					formatter.TierBadge(s.Tier),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(),
				formatter.RenderTable([]string{"ID", "CATEGORY", "DIFFICULTY"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryStr, "category", "", "Filter by category")
	cmd.Flags().StringVar(&tierStr, "difficulty", "", "Filter by difficulty tier")

	return cmd
}

func newScenariosShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one scenario in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Catalog.Get(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatScenario(s, 0))
			if len(s.Rubric) > 0 {
				fmt.Fprintln(out, formatter.StyleBold.Render("Graded on:"))
				for _, item := range s.Rubric {
					fmt.Fprintf(out, "  • %s\n", item)
				}
			}
			return nil
		},
	}
}
