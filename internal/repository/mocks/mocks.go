package mocks

import (
	"context"

	"github.com/rpggio/commissions/internal/domain/commission"
	"github.com/stretchr/testify/mock"
)

// CommissionRepository is a mock for commission.Repository.
type CommissionRepository struct {
	mock.Mock
}

func (m *CommissionRepository) Create(ctx context.Context, c *commission.Commission) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CommissionRepository) Get(ctx context.Context, id int64) (*commission.Commission, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*commission.Commission); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommissionRepository) Update(ctx context.Context, c *commission.Commission) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CommissionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CommissionRepository) SetStatus(ctx context.Context, id int64, status commission.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *CommissionRepository) List(ctx context.Context, opts commission.ListOptions) ([]commission.Commission, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]commission.Commission); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
