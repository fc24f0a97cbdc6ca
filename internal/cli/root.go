// Package cli implements the commissions command tree.
package cli

import (
	"fmt"
	"strconv"

	"github.com/rpggio/commissions/internal/app"
	"github.com/spf13/cobra"
)

// OpenFunc opens the application for a single command invocation. The
// command closes the returned App when it finishes.
type OpenFunc func(cmd *cobra.Command) (*app.App, error)

// NewRootCmd builds the command tree over open.
func NewRootCmd(open OpenFunc) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "commissions",
		Short: "Track art commissions and the income they bring in",
		Long: `commissions keeps a local ledger of art commissions: who ordered what,
for how much, by when, and how far along the work is.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "", "path to a YAML config file")

	rootCmd.AddCommand(addCmd(open))
	rootCmd.AddCommand(showCmd(open))
	rootCmd.AddCommand(editCmd(open))
	rootCmd.AddCommand(deleteCmd(open))
	rootCmd.AddCommand(completeCmd(open))
	rootCmd.AddCommand(listCmd(open))
	rootCmd.AddCommand(currentCmd(open))
	rootCmd.AddCommand(summaryCmd(open))
	rootCmd.AddCommand(serveCmd(open))

	return rootCmd
}

// withApp opens the application, runs fn and closes it again.
func withApp(cmd *cobra.Command, open OpenFunc, fn func(a *app.App) error) error {
	a, err := open(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid commission id %q", raw)
	}
	return id, nil
}
