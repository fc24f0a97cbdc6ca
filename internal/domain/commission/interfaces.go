package commission

import "context"

// Repository provides persistence for commissions.
// Get, Update and SetStatus return repository.ErrNotFound for unknown ids.
type Repository interface {
	Create(ctx context.Context, c *Commission) error
	Get(ctx context.Context, id int64) (*Commission, error)
	Update(ctx context.Context, c *Commission) error
	Delete(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, status Status) error
	List(ctx context.Context, opts ListOptions) ([]Commission, error)
}
