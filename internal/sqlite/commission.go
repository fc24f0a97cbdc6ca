package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rpggio/commissions/internal/domain/commission"
	"github.com/rpggio/commissions/internal/repository"
)

const commissionColumns = `id, client, title, type, price, deadline, status, notes`

// orderClauses is the complete set of ORDER BY expressions a list may use.
// Nullable columns are coalesced so NULL orders like the zero value.
var orderClauses = map[commission.SortKey]string{
	commission.SortByID:       "id",
	commission.SortByClient:   "client COLLATE NOCASE",
	commission.SortByTitle:    "title COLLATE NOCASE",
	commission.SortByType:     "COALESCE(type, '') COLLATE NOCASE",
	commission.SortByPrice:    "COALESCE(price, 0)",
	commission.SortByDeadline: "COALESCE(deadline, '')",
	commission.SortByStatus:   "COALESCE(status, '') COLLATE NOCASE",
}

// CommissionRepository implements commission.Repository for SQLite
type CommissionRepository struct {
	db *DB
}

// NewCommissionRepository creates a new CommissionRepository
func NewCommissionRepository(db *DB) *CommissionRepository {
	return &CommissionRepository{db: db}
}

// Create inserts a commission and sets its assigned ID
func (r *CommissionRepository) Create(ctx context.Context, c *commission.Commission) error {
	query := `
		INSERT INTO commissions (client, title, type, price, deadline, status, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		c.Client,
		c.Title,
		string(c.Type),
		c.Price,
		c.Deadline,
		string(c.Status),
		c.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to create commission: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get commission id: %w", err)
	}
	c.ID = id

	return nil
}

// Get retrieves a commission by ID
func (r *CommissionRepository) Get(ctx context.Context, id int64) (*commission.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions WHERE id = ?`

	c, err := scanCommission(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get commission: %w", err)
	}

	return c, nil
}

// Update overwrites every column of an existing commission
func (r *CommissionRepository) Update(ctx context.Context, c *commission.Commission) error {
	query := `
		UPDATE commissions
		SET client = ?, title = ?, type = ?, price = ?, deadline = ?, status = ?, notes = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		c.Client,
		c.Title,
		string(c.Type),
		c.Price,
		c.Deadline,
		string(c.Status),
		c.Notes,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update commission: %w", err)
	}

	return requireAffected(result)
}

// Delete removes a commission; a missing ID is not an error
func (r *CommissionRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM commissions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete commission: %w", err)
	}
	return nil
}

// SetStatus changes only the status column
func (r *CommissionRepository) SetStatus(ctx context.Context, id int64, status commission.Status) error {
	result, err := r.db.ExecContext(ctx, `UPDATE commissions SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to set commission status: %w", err)
	}

	return requireAffected(result)
}

// List returns commissions matching the options, fully materialized
func (r *CommissionRepository) List(ctx context.Context, opts commission.ListOptions) ([]commission.Commission, error) {
	order, ok := orderClauses[opts.Sort]
	if !ok {
		order = orderClauses[commission.DefaultSortKey]
	}

	query := `SELECT ` + commissionColumns + ` FROM commissions`
	var args []any
	if opts.Status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(opts.Status))
	}
	query += ` ORDER BY ` + order + ` ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list commissions: %w", err)
	}
	defer rows.Close()

	list := []commission.Commission{}
	for rows.Next() {
		c, err := scanCommission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan commission: %w", err)
		}
		list = append(list, *c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating commission rows: %w", err)
	}

	return list, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCommission(row rowScanner) (*commission.Commission, error) {
	var (
		c                            commission.Commission
		typ, deadline, status, notes sql.NullString
		price                        sql.NullFloat64
	)
	err := row.Scan(
		&c.ID,
		&c.Client,
		&c.Title,
		&typ,
		&price,
		&deadline,
		&status,
		&notes,
	)
	if err != nil {
		return nil, err
	}

	c.Type = commission.Type(typ.String)
	c.Price = price.Float64
	c.Deadline = deadline.String
	c.Status = commission.Status(status.String)
	c.Notes = notes.String
	return &c, nil
}

func requireAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
