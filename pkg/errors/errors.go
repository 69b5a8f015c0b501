// Package errors provides error values which keep a fixed message
// while wrapping an underlying cause, without resorting to
// fmt.Errorf("%w", err) at every call site.
//
// Sentinel errors built with New remain comparable with errors.Is
// after they have wrapped a cause.
package errors

import (
	stderr "errors"
)

var _ error = New("")

// New builds an Error carrying msg.
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Error is an error with a stable message and an optional wrapped cause.
type Error struct {
	msg string
	err error
}

// Error yields the message, without the cause.
func (e *Error) Error() string {
	return e.msg
}

// Unwrap the cause, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Wrap a cause under this error. The receiver is returned to allow
// sentinel.Wrap(err) as an expression.
func (e *Error) Wrap(err error) *Error {
	e.err = err
	return e
}

// Is reports whether target is this error or its wrapped cause.
func (e *Error) Is(target error) bool {
	return e == target || e.err == target
}

// Is reports whether any error in err's chain matches target
// (shortcut to the standard library).
func Is(err, target error) bool {
	return stderr.Is(err, target)
}

// As finds the first error in err's chain matching target
// (shortcut to the standard library).
func As(err error, target interface{}) bool {
	return stderr.As(err, target)
}
