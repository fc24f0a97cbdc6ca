package cli

import (
	"os"
	"os/signal"
	"syscall"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/commissions/internal/app"
	"github.com/rpggio/commissions/internal/mcp"
	"github.com/spf13/cobra"
)

func serveCmd(open OpenFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the commission tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(a *app.App) error {
				server := mcp.NewServer(mcp.Config{
					Commissions:  a.Commissions,
					Reports:      a.Reports,
					CurrentLimit: a.CurrentLimit,
					Logger:       a.Logger,
				})

				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()

				a.Logger.Info("starting stdio transport")
				// Run blocks until stdin closes or the context is canceled.
				if err := server.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && ctx.Err() == nil {
					return err
				}
				a.Logger.Info("shutting down")
				return nil
			})
		},
	}
}
