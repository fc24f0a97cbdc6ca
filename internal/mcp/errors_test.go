package mcp

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rpggio/commissions/internal/domain/commission"
	"github.com/rpggio/commissions/internal/domain/query"
	"github.com/rpggio/commissions/internal/form"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		err  error
		code string
	}{
		{form.ErrInvalidPrice, "INVALID_PRICE"},
		{form.ErrInvalidDeadline, "INVALID_DEADLINE"},
		{form.ErrRequired, "VALIDATION_FAILED"},
		{fmt.Errorf("%w: unknown type %q", commission.ErrValidation, "Mural"), "VALIDATION_FAILED"},
		{commission.ErrNotFound, "COMMISSION_NOT_FOUND"},
		{fmt.Errorf("%w: listing: disk full", commission.ErrStorage), "STORAGE_FAILURE"},
	}
	for _, tt := range tests {
		apiErr := MapError(tt.err)
		require.NotNil(t, apiErr, "%v", tt.err)
		require.Equal(t, tt.code, apiErr.Code)
		require.Contains(t, apiErr.Error(), tt.code)
	}

	require.Nil(t, MapError(nil))
	require.Nil(t, MapError(errors.New("boom")))
}

type reportStub struct {
	err error
}

func (r reportStub) List(context.Context, query.ListRequest) ([]commission.Commission, error) {
	return nil, r.err
}
func (r reportStub) Current(context.Context, int) ([]commission.Commission, error) {
	return nil, r.err
}
func (r reportStub) Summary(context.Context) (query.Summary, error) {
	return query.Summary{}, r.err
}
func (r reportStub) IncomeByType(context.Context) ([]query.CategoryIncome, error) {
	return nil, r.err
}

func TestHandler_StorageFailure(t *testing.T) {
	ctx := context.Background()
	h := NewHandler(nil, reportStub{err: fmt.Errorf("%w: listing commissions: database is locked", commission.ErrStorage)}, 0, nil)

	_, _, err := h.ListCommissions(ctx, nil, ListCommissionsInput{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "STORAGE_FAILURE", apiErr.Code)
	require.Contains(t, apiErr.Message, "database is locked")

	_, _, err = h.GetCommissionSummary(ctx, nil, EmptyInput{})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "STORAGE_FAILURE", apiErr.Code)
}

func TestHandler_EmptyResultsAreNotNil(t *testing.T) {
	h := NewHandler(nil, reportStub{}, 0, nil)

	_, list, err := h.ListCurrentCommissions(context.Background(), nil, ListCurrentInput{})
	require.NoError(t, err)
	require.NotNil(t, list.Commissions)
	require.Zero(t, list.Count)

	_, income, err := h.GetIncomeByType(context.Background(), nil, EmptyInput{})
	require.NoError(t, err)
	require.NotNil(t, income.Categories)
}

func TestVocabularyDoc(t *testing.T) {
	doc := vocabularyDoc()
	for _, s := range commission.Statuses() {
		require.Contains(t, doc, string(s))
	}
	for _, k := range commission.SortKeys() {
		require.Contains(t, doc, "`"+string(k)+"`")
	}
}
