package app_error

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
)

// Reasons carried by InvalidState errors.
const (
	ReasonDateNotAvailable         = "date not available"
	ReasonRegistrationWindowClosed = "registration window closed"
	ReasonCompetitionFull          = "competition full"
)

type statusError struct {
	error
	kind   error
	status int
}

func (e statusError) Unwrap() []error {
	return []error{e.error, e.kind}
}

func (e statusError) HTTPStatus() int {
	return e.status
}

// NotFound reports a key that does not resolve in its store.
func NotFound(format string, args ...any) error {
	return statusError{
		error:  fmt.Errorf(format, args...),
		kind:   ErrNotFound,
		status: http.StatusNotFound,
	}
}

// InvalidState reports a business rule rejecting an operation.
func InvalidState(reason string) error {
	return statusError{
		error:  errors.New(reason),
		kind:   ErrInvalidState,
		status: http.StatusConflict,
	}
}

// Reason returns the human readable reason of an InvalidState error.
func Reason(err error) string {
	var se statusError
	if errors.As(err, &se) && se.kind == ErrInvalidState {
		return se.error.Error()
	}
	return ""
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidState(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

// StatusOf returns the HTTP status carried by err, or 500.
func StatusOf(err error) int {
	var se interface{ HTTPStatus() int }
	if errors.As(err, &se) {
		return se.HTTPStatus()
	}
	return http.StatusInternalServerError
}

func WithHTTPStatus(c *gin.Context, err error, status int) {
	c.JSON(status, gin.H{"error": err.Error()})
}

// Respond writes err with the status it carries.
func Respond(c *gin.Context, err error) {
	WithHTTPStatus(c, err, StatusOf(err))
}
