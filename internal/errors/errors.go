package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Expected outcomes of the account lifecycle. Handlers map them to responses,
// services return them as-is or wrapped with %w for extra context.
var (
	ErrEmailTaken         = &ErrorWithStatusCode{Message: "Email already exists", StatusCode: http.StatusBadRequest}
	ErrAccountNotFound    = &ErrorWithStatusCode{Message: "Email not found", StatusCode: http.StatusNotFound}
	ErrInvalidCredentials = &ErrorWithStatusCode{Message: "Password incorrect", StatusCode: http.StatusBadRequest}
	ErrNotVerified        = &ErrorWithStatusCode{Message: "Your email has not been verified. Please click on resend", StatusCode: http.StatusUnauthorized}
	ErrTokenNotFound      = &ErrorWithStatusCode{Message: "Your link may have been expired. Please click on resend email", StatusCode: http.StatusBadRequest}
	ErrAccountMismatch    = &ErrorWithStatusCode{Message: "We're not able to find a valid user for this verification link", StatusCode: http.StatusUnauthorized}
	ErrDelivery           = &ErrorWithStatusCode{Message: "Technical issue! Please click on resend to verify your email", StatusCode: http.StatusInternalServerError}
	ErrValidation         = &ErrorWithStatusCode{Message: "Invalid input", StatusCode: http.StatusBadRequest}
)

// Validation wraps ErrValidation with a field-specific message.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func IsNotFound(err error) bool {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

func IsEmailTaken(err error) bool {
	return errors.Is(err, ErrEmailTaken)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsDelivery reports whether the failure was in email delivery only.
// Delivery failures never unwind already-committed account or token state,
// so callers can treat them as recoverable via resend.
func IsDelivery(err error) bool {
	return errors.Is(err, ErrDelivery)
}
