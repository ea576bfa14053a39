// Package apperr defines the typed error taxonomy surfaced to callers.
// Read-path cache failures are absorbed as misses and never reach this
// package; write-path and resolution failures carry a stable code the HTTP
// layer can translate.
package apperr

import (
	"errors"
	"fmt"
)

// Code is a stable, machine-readable error code.
type Code string

const (
	CodeCacheWriteFailed     Code = "cache_write_failed"
	CodeChainNotSupported    Code = "chain_not_supported"
	CodeProviderNotSupported Code = "provider_not_supported"
	CodeInvalidAddress       Code = "invalid_address"
	CodeBalanceFetchFailed   Code = "balance_fetch_failed"
	CodeNotFound             Code = "not_found"
)

// Error is a typed application error with a stable code.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates an Error wrapping an underlying cause.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf extracts the code from err, or "" if err is not an *Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	return CodeOf(err) == code
}
