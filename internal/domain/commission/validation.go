package commission

import (
	"fmt"
	"strings"
)

// ValidateInput checks the fields a write requires. When strict is set,
// status and type must also come from the closed vocabularies.
func ValidateInput(in Input, strict bool) error {
	if strings.TrimSpace(in.Client) == "" {
		return fmt.Errorf("%w: client is required", ErrValidation)
	}
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if !strict {
		return nil
	}
	if in.Status != "" && !in.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, in.Status)
	}
	if in.Type != "" && !in.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrValidation, in.Type)
	}
	return nil
}
