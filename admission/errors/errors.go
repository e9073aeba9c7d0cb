// Package errors defines the two disjoint error channels of transaction
// admission.
//
// A CodedError means the submitted transaction is at fault: the verdict is
// deterministic and safe to report back to the author. A CodedFailure means
// the node broke an invariant while checking; it must never be attributed to
// the transaction, and the caller is expected to treat it as fatal.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// Unwrappable is an error that wraps another one.
type Unwrappable interface {
	Unwrap() error
}

// CodedError is a user input error.
type CodedError interface {
	// Code returns the code for this error.
	Code() ErrorCode

	error
}

// CodedFailure is an internal invariant violation.
type CodedFailure interface {
	// FailureCode returns the failure code for this failure.
	FailureCode() FailureCode

	error
}

// Is is a proxy for the stdlib errors.Is.
func Is(source, target error) bool {
	return stdErrors.Is(source, target)
}

// As is a proxy for the stdlib errors.As.
func As(err error, target interface{}) bool {
	return stdErrors.As(err, target)
}

type codedError struct {
	code ErrorCode
	err  error
}

// NewCodedError constructs a plain CodedError from a format string.
func NewCodedError(code ErrorCode, format string, args ...interface{}) CodedError {
	return codedError{
		code: code,
		err:  fmt.Errorf(format, args...),
	}
}

// WrapCodedError wraps an error into a CodedError under the given code,
// optionally prefixing the message.
func WrapCodedError(code ErrorCode, err error, prefixMsgFormat string, args ...interface{}) CodedError {
	if prefixMsgFormat != "" {
		msg := fmt.Sprintf(prefixMsgFormat, args...)
		err = fmt.Errorf("%s: %w", msg, err)
	}
	return codedError{
		code: code,
		err:  err,
	}
}

func (e codedError) Error() string {
	return fmt.Sprintf("%s %s", e.code, e.err)
}

func (e codedError) Code() ErrorCode {
	return e.code
}

func (e codedError) Unwrap() error {
	return e.err
}

type codedFailure struct {
	code FailureCode
	err  error
}

// NewCodedFailure constructs a plain CodedFailure from a format string.
func NewCodedFailure(code FailureCode, format string, args ...interface{}) CodedFailure {
	return codedFailure{
		code: code,
		err:  fmt.Errorf(format, args...),
	}
}

// WrapCodedFailure wraps an error into a CodedFailure under the given code,
// optionally prefixing the message.
func WrapCodedFailure(code FailureCode, err error, prefixMsgFormat string, args ...interface{}) CodedFailure {
	if prefixMsgFormat != "" {
		msg := fmt.Sprintf(prefixMsgFormat, args...)
		err = fmt.Errorf("%s: %w", msg, err)
	}
	return codedFailure{
		code: code,
		err:  err,
	}
}

func (e codedFailure) Error() string {
	return fmt.Sprintf("%s %s", e.code, e.err)
}

func (e codedFailure) FailureCode() FailureCode {
	return e.code
}

func (e codedFailure) Unwrap() error {
	return e.err
}

// SplitErrorTypes splits an error into a user error and a failure. At most
// one of the two is non-nil. An error that carries neither channel counts as
// an unknown failure: when admission cannot name what went wrong, it must
// not blame the transaction.
func SplitErrorTypes(inp error) (CodedError, CodedFailure) {
	if inp == nil {
		return nil, nil
	}

	var failure CodedFailure
	if As(inp, &failure) {
		// The shallowest failure names the subsystem that gave up.
		return nil, WrapCodedFailure(failure.FailureCode(), inp, "failure caused by")
	}

	if code, ok := rootCauseCode(inp); ok {
		return WrapCodedError(code, inp, "error caused by"), nil
	}

	return nil, NewUnknownFailure(inp)
}

// rootCauseCode walks the unwrap chain and returns the deepest coded error's
// code.
func rootCauseCode(err error) (ErrorCode, bool) {
	var (
		code  ErrorCode
		found bool
	)
	for ; err != nil; err = stdErrors.Unwrap(err) {
		if coded, ok := err.(CodedError); ok {
			code = coded.Code()
			found = true
		}
	}
	return code, found
}

// IsFailure returns true if the error must be treated as fatal: it carries a
// failure code, or it carries no code at all.
func IsFailure(err error) bool {
	if err == nil {
		return false
	}
	var failure CodedFailure
	if As(err, &failure) {
		return true
	}
	var coded CodedError
	return !As(err, &coded)
}

// IsUserError returns true if the error is attributable to the transaction
// and safe to report to its author.
func IsUserError(err error) bool {
	return err != nil && !IsFailure(err)
}

// HasErrorCode returns true if the chain contains a coded error with the
// given code.
func HasErrorCode(err error, code ErrorCode) bool {
	for ; err != nil; err = stdErrors.Unwrap(err) {
		if coded, ok := err.(CodedError); ok && coded.Code() == code {
			return true
		}
	}
	return false
}

// HasFailureCode returns true if the chain contains a coded failure with the
// given code.
func HasFailureCode(err error, code FailureCode) bool {
	for ; err != nil; err = stdErrors.Unwrap(err) {
		if failure, ok := err.(CodedFailure); ok && failure.FailureCode() == code {
			return true
		}
	}
	return false
}
