package mcp

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/commissions/internal/domain/commission"
)

const serverInstructions = `commissions is a ledger of art commissions.

Each commission has a numeric id, client, title, type, price, deadline (YYYY-MM-DD or empty),
status and notes.

Workflow:
1) Orient with get_commission_summary or list_current_commissions.
2) Browse with list_commissions (status filter, sort_by key).
3) Write with create_commission / update_commission / mark_commission_complete / delete_commission.
   update_commission replaces every field, so read the record with get_commission first.

Vocabulary (statuses, types, sort keys): commissions://docs/vocabulary
`

const vocabularyURI = "commissions://docs/vocabulary"

func vocabularyDoc() string {
	var b strings.Builder
	b.WriteString("# Commission vocabulary\n\n## Statuses\n\n")
	for _, s := range commission.Statuses() {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	b.WriteString("\nNew commissions start as Not Started. Only these statuses count in the summary.\n")

	b.WriteString("\n## Types\n\n")
	for _, t := range commission.Types() {
		fmt.Fprintf(&b, "- %s\n", t)
	}
	b.WriteString("\nIncome from a commission without a type is reported as Other.\n")

	b.WriteString("\n## Sort keys\n\n")
	for _, k := range commission.SortKeys() {
		fmt.Fprintf(&b, "- `%s`\n", k)
	}
	fmt.Fprintf(&b, "\nUnrecognised keys sort by `%s`. Text keys ignore case. Ties keep id order.\n", commission.DefaultSortKey)
	return b.String()
}

func registerDocResources(server *sdkmcp.Server) {
	content := vocabularyDoc()

	server.AddResource(&sdkmcp.Resource{
		URI:         vocabularyURI,
		Name:        "vocabulary",
		Title:       "Commission vocabulary",
		Description: "Recognised statuses, commission types and list sort keys.",
		MIMEType:    "text/markdown",
		Size:        int64(len(content)),
	}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
		uri := vocabularyURI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}
		return &sdkmcp.ReadResourceResult{
			Contents: []*sdkmcp.ResourceContents{{
				URI:      uri,
				MIMEType: "text/markdown",
				Text:     content,
			}},
		}, nil
	})
}
