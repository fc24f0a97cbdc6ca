package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/rpggio/commissions/internal/app"
	"github.com/rpggio/commissions/internal/domain/commission"
	"github.com/rpggio/commissions/internal/domain/query"
	"github.com/rpggio/commissions/internal/form"
	"github.com/spf13/cobra"
)

func listCmd(open OpenFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List commissions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")
			sortBy, _ := cmd.Flags().GetString("sort")

			return withApp(cmd, open, func(a *app.App) error {
				list, err := a.Reports.List(cmd.Context(), query.ListRequest{Status: status, SortBy: sortBy})
				if err != nil {
					return fmt.Errorf("failed to list commissions: %w", err)
				}
				printTable(cmd, list)
				return nil
			})
		},
	}
	cmd.Flags().String("status", query.FilterAll, "only show this status (All shows everything)")
	cmd.Flags().String("sort", string(commission.DefaultSortKey), "sort by id, client, title, type, price, deadline or status")
	return cmd
}

func currentCmd(open OpenFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "current",
		Short: "List outstanding commissions by deadline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			return withApp(cmd, open, func(a *app.App) error {
				if limit <= 0 {
					limit = a.CurrentLimit
				}
				list, err := a.Reports.Current(cmd.Context(), limit)
				if err != nil {
					return fmt.Errorf("failed to list current commissions: %w", err)
				}
				printTable(cmd, list)
				return nil
			})
		},
	}
	cmd.Flags().Int("limit", 0, "maximum number of commissions (default from config)")
	return cmd
}

func printTable(cmd *cobra.Command, list []commission.Commission) {
	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "No commissions found")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCLIENT\tTITLE\tTYPE\tPRICE\tDEADLINE\tSTATUS")
	fmt.Fprintln(w, "--\t------\t-----\t----\t-----\t--------\t------")
	for _, c := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Client, c.Title, c.Type, form.Price(c.Price), c.Deadline, statusLabel(c.Status))
	}
	w.Flush()
}

func statusLabel(s commission.Status) string {
	switch s {
	case commission.StatusCompleted:
		return color.New(color.FgGreen).Sprint(s)
	case commission.StatusInProgress:
		return color.New(color.FgYellow).Sprint(s)
	case commission.StatusNotStarted:
		return color.New(color.FgCyan).Sprint(s)
	default:
		return string(s)
	}
}
