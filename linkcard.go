// Package linkcard extracts rich preview cards from untrusted message text.
// It classifies raw email, RSS, social or chat bodies as HTML, JSON,
// key-value text, Markdown or plain text, and extracts a normalized
// title, description, URL and image without touching the network.
//
// This package contains domain types, interfaces and the dependency-free
// parts of the engine, following Ben Johnson's Standard Package Layout.
// Implementations backed by third-party parsers live in subdirectories
// named after their primary dependency (e.g., goquery/, gjson/, goldmark/).
package linkcard

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOMATCH  = "no_match"
)

// Error represents an application-specific error.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("linkcard error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
