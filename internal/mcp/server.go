package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/commissions/internal/domain/commission"
	"github.com/rpggio/commissions/internal/domain/query"
)

// CommissionService defines commission record operations needed by MCP.
type CommissionService interface {
	Create(ctx context.Context, in commission.Input) (*commission.Commission, error)
	Get(ctx context.Context, id int64) (*commission.Commission, error)
	Update(ctx context.Context, id int64, in commission.Input) (*commission.Commission, error)
	Delete(ctx context.Context, id int64) error
	MarkComplete(ctx context.Context, id int64) error
}

// ReportService defines list and aggregate queries needed by MCP.
type ReportService interface {
	List(ctx context.Context, req query.ListRequest) ([]commission.Commission, error)
	Current(ctx context.Context, limit int) ([]commission.Commission, error)
	Summary(ctx context.Context) (query.Summary, error)
	IncomeByType(ctx context.Context) ([]query.CategoryIncome, error)
}

// Config contains server configuration.
type Config struct {
	Commissions  CommissionService
	Reports      ReportService
	CurrentLimit int
	Logger       *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "commissions",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(invocationMiddleware())
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, NewHandler(cfg.Commissions, cfg.Reports, cfg.CurrentLimit, cfg.Logger))

	return server
}
