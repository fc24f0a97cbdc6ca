package mcp

import sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

func registerTools(server *sdkmcp.Server, h *Handler) {
	// Records
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_commission",
		Description: "Create a commission. Client and title are required; price and deadline are text checked before saving.",
	}, h.CreateCommission)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_commission",
		Description: "Get one commission by id",
	}, h.GetCommission)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_commission",
		Description: "Replace every field of an existing commission. Omitted optional fields are cleared.",
	}, h.UpdateCommission)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_commission",
		Description: "Delete a commission. Deleting an id that does not exist succeeds.",
	}, h.DeleteCommission)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "mark_commission_complete",
		Description: "Set a commission's status to Completed, leaving other fields unchanged",
	}, h.MarkCommissionComplete)

	// Queries
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_commissions",
		Description: "List commissions, optionally filtered by exact status, ordered ascending by a sort key",
	}, h.ListCommissions)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_current_commissions",
		Description: "List outstanding (Not Started or In Progress) commissions by deadline",
	}, h.ListCurrentCommissions)

	// Reports
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_commission_summary",
		Description: "Count commissions per status and total the income from completed ones",
	}, h.GetCommissionSummary)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_income_by_type",
		Description: "Completed income per commission type, highest first; types with no positive income are omitted",
	}, h.GetIncomeByType)
}
