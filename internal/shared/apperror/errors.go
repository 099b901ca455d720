// Package apperror defines the HTTP-facing error taxonomy and renders it as {"detail": "..."} bodies.
package apperror

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// internalDetail is the only detail ever sent for unmapped failures.
const internalDetail = "Internal Server Error"

// FieldError is a single validation failure at a request location such as "body.email".
type FieldError struct {
	Loc string `json:"loc"`
	Msg string `json:"msg"`
}

// ValidationError reports a malformed request (422).
type ValidationError struct {
	Fields []FieldError
}

// NewValidation creates a ValidationError from field errors.
func NewValidation(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Loc+": "+f.Msg)
	}
	return strings.Join(parts, "; ")
}

// ConflictError reports a duplicate unique field (400).
type ConflictError struct {
	Detail string
}

// NewConflict creates a ConflictError.
func NewConflict(detail string) *ConflictError {
	return &ConflictError{Detail: detail}
}

func (e *ConflictError) Error() string { return e.Detail }

// UnauthorizedError reports missing or invalid credentials (401).
// Challenge adds the "WWW-Authenticate: Bearer" header.
type UnauthorizedError struct {
	Detail    string
	Challenge bool
}

// NewUnauthorized creates an UnauthorizedError carrying the bearer challenge.
func NewUnauthorized(detail string) *UnauthorizedError {
	return &UnauthorizedError{Detail: detail, Challenge: true}
}

func (e *UnauthorizedError) Error() string { return e.Detail }

// NotFoundError reports an unknown resource id (404).
type NotFoundError struct {
	Detail string
}

// NewNotFound creates a NotFoundError.
func NewNotFound(detail string) *NotFoundError {
	return &NotFoundError{Detail: detail}
}

func (e *NotFoundError) Error() string { return e.Detail }

// Status returns the HTTP status code for err.
func Status(err error) int {
	var (
		validation   *ValidationError
		conflict     *ConflictError
		unauthorized *UnauthorizedError
		notFound     *NotFoundError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusUnprocessableEntity
	case errors.As(err, &conflict):
		return http.StatusBadRequest
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as a JSON error body and aborts the gin chain.
// Errors outside the taxonomy are logged and rendered as an opaque 500.
func Respond(c *gin.Context, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		slog.Error("unhandled error", "error", err, "method", c.Request.Method, "path", c.FullPath())
		c.AbortWithStatusJSON(status, gin.H{"detail": internalDetail})
		return
	}

	var unauthorized *UnauthorizedError
	if errors.As(err, &unauthorized) && unauthorized.Challenge {
		c.Header("WWW-Authenticate", "Bearer")
	}
	c.AbortWithStatusJSON(status, gin.H{"detail": publicDetail(err)})
}

func publicDetail(err error) string {
	var (
		validation   *ValidationError
		conflict     *ConflictError
		unauthorized *UnauthorizedError
		notFound     *NotFoundError
	)
	switch {
	case errors.As(err, &validation):
		return validation.Error()
	case errors.As(err, &conflict):
		return conflict.Detail
	case errors.As(err, &unauthorized):
		return unauthorized.Detail
	case errors.As(err, &notFound):
		return notFound.Detail
	}
	return internalDetail
}
