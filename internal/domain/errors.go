package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientBalance indicates a wallet debit larger than the balance.
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
)

// ValidationError carries a single user-facing checkout message. The first
// failing rule wins; callers surface Message verbatim and block submission.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation builds a ValidationError with the given user-facing message.
func Validation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is a checkout validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
