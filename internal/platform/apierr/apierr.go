package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Error is a failure that already knows how it should look on the wire.
type Error struct {
	Status int
	Code   string
	Err    error

	// RetryAfter, when positive, is sent as a Retry-After header.
	RetryAfter time.Duration
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// Retry marks e as retryable after d.
func (e *Error) Retry(d time.Duration) *Error {
	e.RetryAfter = d
	return e
}

// From returns the *Error in err's chain, or a 500 wrapping err.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) && ae != nil {
		return ae
	}
	return New(http.StatusInternalServerError, "internal_error", err)
}
