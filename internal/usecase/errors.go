package usecase

import "errors"

const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeInvalidCategory = "INVALID_CATEGORY"
)

// DomainError is a business-rule rejection: bad input, unknown
// category. Handlers map it to a 4xx.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// GenerationError is any failure of the text-generation call: API
// error, timeout, or an empty completion. It always short-circuits the
// CRM write.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func IsGenerationError(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}

// CRMError is any failure talking to the CRM. Op names the operation
// that failed; the underlying integration error is preserved for
// inspection.
type CRMError struct {
	Op  string
	Err error
}

func (e *CRMError) Error() string {
	return "crm " + e.Op + ": " + e.Err.Error()
}

func (e *CRMError) Unwrap() error {
	return e.Err
}

func IsCRMError(err error) bool {
	var ce *CRMError
	return errors.As(err, &ce)
}
