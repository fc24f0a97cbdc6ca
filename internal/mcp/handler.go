package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/commissions/internal/domain/query"
	"github.com/rpggio/commissions/internal/form"
)

// Handler implements the commission tools over the domain services.
type Handler struct {
	commissions  CommissionService
	reports      ReportService
	currentLimit int
	logger       *slog.Logger
}

// NewHandler creates a new MCP handler.
func NewHandler(commissions CommissionService, reports ReportService, currentLimit int, logger *slog.Logger) *Handler {
	if currentLimit <= 0 {
		currentLimit = query.DefaultCurrentLimit
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		commissions:  commissions,
		reports:      reports,
		currentLimit: currentLimit,
		logger:       logger,
	}
}

func (h *Handler) CreateCommission(ctx context.Context, _ *sdkmcp.CallToolRequest, in CreateCommissionInput) (*sdkmcp.CallToolResult, CommissionResult, error) {
	input, err := in.fields().Input()
	if err != nil {
		return nil, CommissionResult{}, toolError(err)
	}
	c, err := h.commissions.Create(ctx, input)
	if err != nil {
		return nil, CommissionResult{}, h.fail(ctx, "create_commission", err)
	}
	return nil, newCommissionResult(c), nil
}

func (h *Handler) GetCommission(ctx context.Context, _ *sdkmcp.CallToolRequest, in CommissionIDInput) (*sdkmcp.CallToolResult, CommissionResult, error) {
	c, err := h.commissions.Get(ctx, in.ID)
	if err != nil {
		return nil, CommissionResult{}, h.fail(ctx, "get_commission", err)
	}
	return nil, newCommissionResult(c), nil
}

func (h *Handler) UpdateCommission(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdateCommissionInput) (*sdkmcp.CallToolResult, CommissionResult, error) {
	input, err := in.fields().Input()
	if err != nil {
		return nil, CommissionResult{}, toolError(err)
	}
	c, err := h.commissions.Update(ctx, in.ID, input)
	if err != nil {
		return nil, CommissionResult{}, h.fail(ctx, "update_commission", err)
	}
	return nil, newCommissionResult(c), nil
}

func (h *Handler) DeleteCommission(ctx context.Context, _ *sdkmcp.CallToolRequest, in CommissionIDInput) (*sdkmcp.CallToolResult, DeleteResult, error) {
	if err := h.commissions.Delete(ctx, in.ID); err != nil {
		return nil, DeleteResult{}, h.fail(ctx, "delete_commission", err)
	}
	return nil, DeleteResult{ID: in.ID, Deleted: true}, nil
}

func (h *Handler) MarkCommissionComplete(ctx context.Context, _ *sdkmcp.CallToolRequest, in CommissionIDInput) (*sdkmcp.CallToolResult, CommissionResult, error) {
	if err := h.commissions.MarkComplete(ctx, in.ID); err != nil {
		return nil, CommissionResult{}, h.fail(ctx, "mark_commission_complete", err)
	}
	c, err := h.commissions.Get(ctx, in.ID)
	if err != nil {
		return nil, CommissionResult{}, h.fail(ctx, "mark_commission_complete", err)
	}
	return nil, newCommissionResult(c), nil
}

func (h *Handler) ListCommissions(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListCommissionsInput) (*sdkmcp.CallToolResult, CommissionListResult, error) {
	list, err := h.reports.List(ctx, query.ListRequest{Status: in.Status, SortBy: in.SortBy})
	if err != nil {
		return nil, CommissionListResult{}, h.fail(ctx, "list_commissions", err)
	}
	return nil, newCommissionListResult(list), nil
}

func (h *Handler) ListCurrentCommissions(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListCurrentInput) (*sdkmcp.CallToolResult, CommissionListResult, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = h.currentLimit
	}
	list, err := h.reports.Current(ctx, limit)
	if err != nil {
		return nil, CommissionListResult{}, h.fail(ctx, "list_current_commissions", err)
	}
	return nil, newCommissionListResult(list), nil
}

func (h *Handler) GetCommissionSummary(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyInput) (*sdkmcp.CallToolResult, SummaryResult, error) {
	summary, err := h.reports.Summary(ctx)
	if err != nil {
		return nil, SummaryResult{}, h.fail(ctx, "get_commission_summary", err)
	}
	return nil, SummaryResult{Summary: summary, TotalIncomeDisplay: form.Price(summary.TotalIncome)}, nil
}

func (h *Handler) GetIncomeByType(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyInput) (*sdkmcp.CallToolResult, IncomeByTypeResult, error) {
	income, err := h.reports.IncomeByType(ctx)
	if err != nil {
		return nil, IncomeByTypeResult{}, h.fail(ctx, "get_income_by_type", err)
	}
	if income == nil {
		income = []query.CategoryIncome{}
	}
	return nil, IncomeByTypeResult{Categories: income}, nil
}

func (h *Handler) fail(ctx context.Context, tool string, err error) error {
	mapped := toolError(err)
	h.logger.Debug("tool failed", "tool", tool, "invocation_id", getInvocationID(ctx), "error", err)
	return mapped
}
