package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/commissions/internal/domain/commission"
	"github.com/rpggio/commissions/internal/form"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
}

// MapError maps domain errors to MCP error codes. Errors it does not
// recognise map to nil.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, form.ErrInvalidPrice):
		return &APIError{Code: "INVALID_PRICE", Message: "price must be a number", RecoveryHint: `Send a decimal such as "120.50"`}
	case errors.Is(err, form.ErrInvalidDeadline):
		return &APIError{Code: "INVALID_DEADLINE", Message: "deadline must be in YYYY-MM-DD format", RecoveryHint: "Send an empty deadline to clear it"}
	case errors.Is(err, commission.ErrValidation):
		return &APIError{Code: "VALIDATION_FAILED", Message: err.Error(), RecoveryHint: "See commissions://docs/vocabulary"}
	case errors.Is(err, commission.ErrNotFound):
		return &APIError{Code: "COMMISSION_NOT_FOUND", Message: "commission not found", RecoveryHint: "Check the id with list_commissions"}
	case errors.Is(err, commission.ErrStorage):
		return &APIError{Code: "STORAGE_FAILURE", Message: err.Error()}
	default:
		return nil
	}
}

// toolError converts a service error into the error a tool handler returns.
func toolError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
