// Package query lists commissions and computes the reporting aggregates.
package query

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/rpggio/commissions/internal/domain/commission"
)

// DefaultCurrentLimit caps Current when the caller passes no positive limit.
const DefaultCurrentLimit = 10

// Source lists stored commissions. commission.Repository satisfies it.
type Source interface {
	List(ctx context.Context, opts commission.ListOptions) ([]commission.Commission, error)
}

// Engine answers list and report queries. Callers never reach the storage
// query language: status is matched as a bound value and ordering only ever
// uses a recognised commission.SortKey.
type Engine struct {
	source Source
	logger *slog.Logger
}

// NewEngine creates a new query engine.
func NewEngine(source Source, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{source: source, logger: logger}
}

// List returns commissions matching the status filter, ordered ascending by
// the requested key. Unknown keys order by deadline.
func (e *Engine) List(ctx context.Context, req ListRequest) ([]commission.Commission, error) {
	opts := commission.ListOptions{
		Status: statusFilter(req.Status),
		Sort:   commission.ParseSortKey(req.SortBy),
	}
	if string(opts.Sort) != strings.TrimSpace(req.SortBy) && req.SortBy != "" {
		e.logger.Debug("unrecognised sort key, using default", "requested", req.SortBy, "sort", opts.Sort)
	}

	list, err := e.source.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: listing commissions: %w", commission.ErrStorage, err)
	}
	e.logger.Debug("listed commissions", "status", opts.Status, "sort", opts.Sort, "count", len(list))
	return list, nil
}

// Current returns outstanding (Not Started or In Progress) commissions in
// deadline order, at most limit of them.
func (e *Engine) Current(ctx context.Context, limit int) ([]commission.Commission, error) {
	if limit <= 0 {
		limit = DefaultCurrentLimit
	}

	all, err := e.List(ctx, ListRequest{SortBy: string(commission.SortByDeadline)})
	if err != nil {
		return nil, err
	}

	current := make([]commission.Commission, 0, min(limit, len(all)))
	for _, c := range all {
		if len(current) == limit {
			break
		}
		if c.Status.Active() {
			current = append(current, c)
		}
	}
	return current, nil
}

// Summary counts commissions per canonical status and totals completed income.
// Records whose status is not canonical count towards Total only.
func (e *Engine) Summary(ctx context.Context) (Summary, error) {
	all, err := e.List(ctx, ListRequest{SortBy: string(commission.SortByID)})
	if err != nil {
		return Summary{}, err
	}

	var s Summary
	for _, c := range all {
		s.Total++
		switch c.Status {
		case commission.StatusCompleted:
			s.Completed++
			s.TotalIncome += c.Price
		case commission.StatusInProgress:
			s.InProgress++
		case commission.StatusNotStarted:
			s.NotStarted++
		}
	}
	return s, nil
}

// IncomeByType sums completed income per commission type, with an empty type
// reported as Other. Categories that did not earn a positive total are left
// out. Results are ordered by income, highest first, then by category.
func (e *Engine) IncomeByType(ctx context.Context) ([]CategoryIncome, error) {
	completed, err := e.List(ctx, ListRequest{
		Status: string(commission.StatusCompleted),
		SortBy: string(commission.SortByID),
	})
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	for _, c := range completed {
		totals[category(c.Type)] += c.Price
	}

	result := make([]CategoryIncome, 0, len(totals))
	for name, income := range totals {
		if income > 0 {
			result = append(result, CategoryIncome{Category: name, Income: income})
		}
	}
	slices.SortFunc(result, func(a, b CategoryIncome) int {
		if c := cmp.Compare(b.Income, a.Income); c != 0 {
			return c
		}
		return strings.Compare(a.Category, b.Category)
	})
	return result, nil
}

func statusFilter(raw string) commission.Status {
	if raw == "" || raw == FilterAll {
		return ""
	}
	return commission.Status(raw)
}

func category(t commission.Type) string {
	if strings.TrimSpace(string(t)) == "" {
		return string(commission.TypeOther)
	}
	return string(t)
}
