package mcp

import (
	"github.com/rpggio/commissions/internal/domain/commission"
	"github.com/rpggio/commissions/internal/domain/query"
	"github.com/rpggio/commissions/internal/form"
)

// CreateCommissionInput carries commission fields as entered text.
type CreateCommissionInput struct {
	Client   string `json:"client,omitempty" jsonschema:"client name (required)"`
	Title    string `json:"title,omitempty" jsonschema:"commission title (required)"`
	Type     string `json:"type,omitempty" jsonschema:"commission type, see commissions://docs/vocabulary"`
	Price    string `json:"price,omitempty" jsonschema:"price as decimal text, e.g. 120.50; empty means 0"`
	Deadline string `json:"deadline,omitempty" jsonschema:"deadline as YYYY-MM-DD; may be empty"`
	Status   string `json:"status,omitempty" jsonschema:"status, defaults to Not Started"`
	Notes    string `json:"notes,omitempty" jsonschema:"free-form notes"`
}

func (in CreateCommissionInput) fields() form.Fields {
	return form.Fields{
		Client:   in.Client,
		Title:    in.Title,
		Type:     in.Type,
		Price:    in.Price,
		Deadline: in.Deadline,
		Status:   in.Status,
		Notes:    in.Notes,
	}
}

// UpdateCommissionInput replaces every field of an existing commission.
type UpdateCommissionInput struct {
	ID       int64  `json:"id" jsonschema:"commission id"`
	Client   string `json:"client,omitempty" jsonschema:"client name (required)"`
	Title    string `json:"title,omitempty" jsonschema:"commission title (required)"`
	Type     string `json:"type,omitempty" jsonschema:"commission type"`
	Price    string `json:"price,omitempty" jsonschema:"price as decimal text; empty means 0"`
	Deadline string `json:"deadline,omitempty" jsonschema:"deadline as YYYY-MM-DD; empty clears it"`
	Status   string `json:"status,omitempty" jsonschema:"status"`
	Notes    string `json:"notes,omitempty" jsonschema:"free-form notes; empty clears them"`
}

func (in UpdateCommissionInput) fields() form.Fields {
	return form.Fields{
		Client:   in.Client,
		Title:    in.Title,
		Type:     in.Type,
		Price:    in.Price,
		Deadline: in.Deadline,
		Status:   in.Status,
		Notes:    in.Notes,
	}
}

type CommissionIDInput struct {
	ID int64 `json:"id" jsonschema:"commission id"`
}

type ListCommissionsInput struct {
	Status string `json:"status,omitempty" jsonschema:"exact status to match; empty or All lists everything"`
	SortBy string `json:"sort_by,omitempty" jsonschema:"id, client, title, type, price, deadline or status; anything else sorts by deadline"`
}

type ListCurrentInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of commissions; 0 uses the server default"`
}

type EmptyInput struct{}

// CommissionResult wraps a single commission.
type CommissionResult struct {
	Commission commission.Commission `json:"commission"`
	Price      string                `json:"price_display"`
}

func newCommissionResult(c *commission.Commission) CommissionResult {
	return CommissionResult{Commission: *c, Price: form.Price(c.Price)}
}

type DeleteResult struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

type CommissionListResult struct {
	Commissions []commission.Commission `json:"commissions"`
	Count       int                     `json:"count"`
}

func newCommissionListResult(list []commission.Commission) CommissionListResult {
	if list == nil {
		list = []commission.Commission{}
	}
	return CommissionListResult{Commissions: list, Count: len(list)}
}

type SummaryResult struct {
	Summary            query.Summary `json:"summary"`
	TotalIncomeDisplay string        `json:"total_income_display"`
}

type IncomeByTypeResult struct {
	Categories []query.CategoryIncome `json:"categories"`
}
