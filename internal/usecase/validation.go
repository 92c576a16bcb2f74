package usecase

import (
	"fmt"
	"strings"
)

const (
	maxFieldLength = 200
	maxNoteLength  = 5000
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateDraftMessageInput(input DraftMessageInput) []ValidationError {
	var errs []ValidationError

	errs = appendFieldErrors(errs, "name", input.Name)
	errs = appendFieldErrors(errs, "title", input.Title)
	errs = appendFieldErrors(errs, "company", input.Company)

	if strings.TrimSpace(input.PitchType) == "" {
		errs = append(errs, ValidationError{"pitch_type", "is required"})
	}

	return errs
}

func ValidateAddNoteInput(input AddNoteInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.ContactID) == "" {
		errs = append(errs, ValidationError{"contact_id", "is required"})
	}
	if strings.TrimSpace(input.Text) == "" {
		errs = append(errs, ValidationError{"text", "is required"})
	} else if len(input.Text) > maxNoteLength {
		errs = append(errs, ValidationError{"text", fmt.Sprintf("must not exceed %d characters", maxNoteLength)})
	}

	return errs
}

func appendFieldErrors(errs []ValidationError, field, value string) []ValidationError {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return append(errs, ValidationError{field, "is required"})
	}
	if len(trimmed) > maxFieldLength {
		return append(errs, ValidationError{field, fmt.Sprintf("must not exceed %d characters", maxFieldLength)})
	}
	return errs
}

func validationDomainError(errs []ValidationError) *DomainError {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Field+" ("+e.Message+")")
	}
	return &DomainError{
		Code:    CodeValidation,
		Message: "validation failed: " + strings.Join(parts, ", "),
	}
}
