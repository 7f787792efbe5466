// Package errs defines the closed set of outcomes reported by numser operations.
//
// Every failing operation returns an *Error whose Status is one of the
// constants below. Status itself implements error, so callers can match a
// failure class with errors.Is:
//
//	values, err := codec.Deserialize[int32](r)
//	if errors.Is(err, errs.SignatureError) {
//	    // not a numser stream
//	}
//
// or recover the status value for exhaustive handling:
//
//	switch errs.StatusOf(err) {
//	case errs.OK:
//	case errs.ReadError, errs.WriteError:
//	    // I/O, retry with a fresh source or destination
//	default:
//	    // incompatible data
//	}
package errs

import (
	"errors"
	"fmt"
)

// Status is the outcome of a numser operation.
type Status uint8

const (
	OK                Status = iota // OK means the operation succeeded.
	WriteError                      // WriteError means a write to the sink failed.
	ReadError                       // ReadError means the source was short or a read failed.
	SignatureError                  // SignatureError means the stream does not start with the format signature.
	VersionError                    // VersionError means the header version is not supported.
	SizeMismatchError               // SizeMismatchError means the stored element size differs from the target type.
	UnknownError                    // UnknownError is the fallback for anything outside the taxonomy.
)

var statusText = [...]string{
	OK:                "OK",
	WriteError:        "Write error",
	ReadError:         "Read error",
	SignatureError:    "Signature error",
	VersionError:      "Version error",
	SizeMismatchError: "Element size mismatch",
	UnknownError:      "Unknown error",
}

// String returns the human-readable form of the status.
//
// Values outside the defined range report the UnknownError text.
func (s Status) String() string {
	if int(s) < len(statusText) {
		return statusText[s]
	}

	return statusText[UnknownError]
}

// Error implements the error interface so a Status can be used as an errors.Is target.
func (s Status) Error() string {
	return s.String()
}

// Valid reports whether s is one of the defined statuses.
func (s Status) Valid() bool {
	return s <= UnknownError
}

// Error is the error returned by every failing numser operation.
type Error struct {
	Status Status // Status classifies the failure.
	Op     string // Op names the operation that failed, e.g. "read header".
	Err    error  // Err is the underlying cause, if any.
}

// New returns an *Error for status raised by op with an optional cause.
func New(status Status, op string, cause error) error {
	return &Error{Status: status, Op: op, Err: cause}
}

// Newf returns an *Error for status with a formatted cause.
func Newf(status Status, op string, format string, args ...any) error {
	return &Error{Status: status, Op: op, Err: fmt.Errorf(format, args...)}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("numser: %s: %s", e.Op, e.Status)
	}

	return fmt.Sprintf("numser: %s: %s: %v", e.Op, e.Status, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches a Status target against the error's status.
func (e *Error) Is(target error) bool {
	s, ok := target.(Status)
	return ok && s == e.Status
}

// StatusOf maps err back to the status taxonomy.
//
// A nil error is OK, a numser error reports its own status and anything
// else is UnknownError.
func StatusOf(err error) Status {
	if err == nil {
		return OK
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}

	var s Status
	if errors.As(err, &s) {
		return s
	}

	return UnknownError
}
