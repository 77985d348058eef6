package openapi

import (
	"fmt"

	lhttp "github.com/Puiching-Memory/LMT4SwanLab/pkg/http"
)

// AuthenticationError indicates a rejected API key or an unverified account.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// TransportError indicates a network failure, an unexpected HTTP status or a
// body that could not be decoded.
type TransportError struct {
	Status  int
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request failed: %s", e.Err)
	}
	if e.Status != 0 {
		return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("request failed: %s", e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ApplicationError indicates an envelope-level failure reported by the
// backend despite a successful HTTP exchange.
type ApplicationError struct {
	Code   int
	Errmsg string
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Errmsg)
}

// ValidationError indicates a missing or malformed caller parameter. It is
// raised before any network call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// fromHttpError classifies a clientbase failure into a TransportError.
func fromHttpError(herr *lhttp.HttpError) error {
	if herr == nil {
		return nil
	}
	if herr.Err != nil {
		return &TransportError{Err: herr.Err}
	}
	return &TransportError{Status: herr.Code, Message: herr.Message}
}
