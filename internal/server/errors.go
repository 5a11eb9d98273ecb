package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/liquidfilters/pkg/locale"
	"github.com/dmitrymomot/liquidfilters/pkg/money"
)

// ErrMissingParam is returned when a required query parameter is absent.
var ErrMissingParam = errors.New("server: missing parameter")

// HTTPError carries the status code and message written to the client.
type HTTPError struct {
	Err     error
	Message string
	Code    int
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func badRequest(err error) *HTTPError {
	return &HTTPError{Err: err, Message: err.Error(), Code: http.StatusBadRequest}
}

// PanicError is a recovered handler panic.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// toHTTPError maps domain errors onto response codes: bad input values are 422,
// missing or malformed parameters 400, anything else 500.
func toHTTPError(err error) *HTTPError {
	var he *HTTPError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, ErrMissingParam):
		return badRequest(err)
	case errors.Is(err, money.ErrInvalidAmount),
		errors.Is(err, money.ErrInvalidConventions),
		errors.Is(err, locale.ErrUnknownLocale):
		return &HTTPError{Err: err, Message: err.Error(), Code: http.StatusUnprocessableEntity}
	default:
		return &HTTPError{Err: err, Message: http.StatusText(http.StatusInternalServerError), Code: http.StatusInternalServerError}
	}
}
