// Package apperrors holds the error taxonomy shared by every module. Handlers
// map these onto HTTP responses through response.RespondError.
package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"busline/pkg/money"
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is malformed or incomplete input.
type ValidationError struct {
	Msg    string
	Fields []FieldError
	Err    error
}

func (e ValidationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			parts = append(parts, f.Field+": "+f.Message)
		}
		return "validation failed: " + strings.Join(parts, "; ")
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// InsufficientFundsError aborts a commit before anything is written.
type InsufficientFundsError struct {
	Required  money.Amount
	Available money.Amount
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient wallet balance: required %s, available %s", e.Required, e.Available)
}

// Shortfall is how much the user has to top up.
func (e InsufficientFundsError) Shortfall() money.Amount {
	return e.Required.Sub(e.Available)
}

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// AuthorizationError covers both missing credentials and missing privileges.
type AuthorizationError struct {
	Msg             string
	Unauthenticated bool
}

func (e AuthorizationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Unauthenticated {
		return "authentication required"
	}
	return "insufficient permissions"
}

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// StorageError is a failed read or write against Postgres or Redis. A failed
// commit transaction has already been rolled back when this is returned.
type StorageError struct {
	Op  string
	Err error
}

func (e StorageError) Error() string {
	if e.Err == nil {
		return e.Op + ": storage failure"
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e StorageError) Unwrap() error { return e.Err }

// Storage wraps err as a StorageError unless it already carries a taxonomy type.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsClassified(err) {
		return err
	}
	return StorageError{Op: op, Err: err}
}

func Validation(msg string, fields ...FieldError) error {
	return ValidationError{Msg: msg, Fields: fields}
}

func NotFound(resource string) error {
	return NotFoundError{Resource: resource}
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsInsufficientFunds(err error) bool {
	var target InsufficientFundsError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsAuthorization(err error) bool {
	var target AuthorizationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsStorage(err error) bool {
	var target StorageError
	return errors.As(err, &target)
}

// IsClassified reports whether err already belongs to the taxonomy.
func IsClassified(err error) bool {
	return IsValidation(err) || IsInsufficientFunds(err) || IsNotFound(err) ||
		IsAuthorization(err) || IsConflict(err) || IsStorage(err)
}
