package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/rpggio/commissions/internal/app"
	"github.com/rpggio/commissions/internal/form"
	"github.com/spf13/cobra"
)

func summaryCmd(open OpenFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show totals, status counts and income by type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(a *app.App) error {
				summary, err := a.Reports.Summary(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to summarize commissions: %w", err)
				}
				income, err := a.Reports.IncomeByType(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to summarize income: %w", err)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Total commissions: %d\n", summary.Total)
				fmt.Fprintf(out, "  Completed:   %d\n", summary.Completed)
				fmt.Fprintf(out, "  In Progress: %d\n", summary.InProgress)
				fmt.Fprintf(out, "  Not Started: %d\n", summary.NotStarted)
				fmt.Fprintf(out, "Total income: %s\n", color.New(color.FgGreen).Sprint(form.Price(summary.TotalIncome)))

				fmt.Fprintln(out)
				fmt.Fprintln(out, "Income by type:")
				if len(income) == 0 {
					fmt.Fprintln(out, "  (no completed income yet)")
					return nil
				}
				for _, row := range income {
					fmt.Fprintf(out, "  %-12s %s\n", row.Category, form.Price(row.Income))
				}
				return nil
			})
		},
	}
}
