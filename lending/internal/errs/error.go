package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is the base of every guard violation: a precondition was
	// false or a concurrent transaction won the race. Callers must not retry.
	ErrConflict = errors.New("conflict")

	ErrAssetUnavailable  = fmt.Errorf("%w: asset is not available", ErrConflict)
	ErrQuotaExceeded     = fmt.Errorf("%w: borrower already has an active request", ErrConflict)
	ErrNotPending        = fmt.Errorf("%w: request not found or already processed", ErrConflict)
	ErrNotApproved       = fmt.Errorf("%w: request is not approved or return already requested", ErrConflict)
	ErrNotAwaitingReturn = fmt.Errorf("%w: return request not found or already processed", ErrConflict)
	ErrAssetBorrowed     = fmt.Errorf("%w: asset is currently borrowed", ErrConflict)
	ErrAssetInUse        = fmt.Errorf("%w: asset is referenced by requests", ErrConflict)
)

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
