package errors

import (
	"fmt"

	"github.com/basalt-ledger/basalt-go/model/basalt"
)

// UnsupportedTransactionKindError indicates that a transaction kind is not
// acceptable on the path it was submitted through.
// this error is the result of failure in any of the following conditions:
// - a system kind was submitted for signing or dev-inspect
// - a kind unknown to this build was submitted at all
type UnsupportedTransactionKindError struct {
	kind string
}

// NewUnsupportedTransactionKindError constructs a new
// UnsupportedTransactionKindError
func NewUnsupportedTransactionKindError(kind basalt.TransactionKind) *UnsupportedTransactionKindError {
	return &UnsupportedTransactionKindError{kind: kind.String()}
}

func (e *UnsupportedTransactionKindError) Error() string {
	return fmt.Sprintf("%s transaction kind %s is not supported here", e.Code().String(), e.kind)
}

// Code returns the error code for this error type
func (e *UnsupportedTransactionKindError) Code() ErrorCode {
	return ErrCodeUnsupportedTransactionKind
}

// UnsupportedProtocolVersionError indicates that a transaction declares a
// protocol version outside the range this build can serve.
type UnsupportedProtocolVersionError struct {
	version  basalt.ProtocolVersion
	min, max basalt.ProtocolVersion
}

// NewUnsupportedProtocolVersionError constructs a new
// UnsupportedProtocolVersionError
func NewUnsupportedProtocolVersionError(
	version basalt.ProtocolVersion,
	min basalt.ProtocolVersion,
	max basalt.ProtocolVersion,
) *UnsupportedProtocolVersionError {
	return &UnsupportedProtocolVersionError{version: version, min: min, max: max}
}

func (e *UnsupportedProtocolVersionError) Error() string {
	return fmt.Sprintf(
		"%s protocol version %d outside supported range [%d, %d]",
		e.Code().String(),
		e.version,
		e.min,
		e.max,
	)
}

// Code returns the error code for this error type
func (e *UnsupportedProtocolVersionError) Code() ErrorCode {
	return ErrCodeUnsupportedProtocolVersion
}

func IsUnsupportedProtocolVersionError(err error) bool {
	return HasErrorCode(err, ErrCodeUnsupportedProtocolVersion)
}

// TransactionExpiredError indicates that a transaction's expiration epoch
// has passed.
type TransactionExpiredError struct {
	Expiration basalt.EpochID
	Current    basalt.EpochID
}

func (e TransactionExpiredError) Error() string {
	return fmt.Sprintf(
		"%s transaction expired at epoch %d, current epoch is %d",
		e.Code().String(),
		e.Expiration,
		e.Current,
	)
}

// Code returns the error code for this error type
func (e TransactionExpiredError) Code() ErrorCode {
	return ErrCodeTransactionExpired
}

// TransactionDeniedError indicates that the deny policy refused the
// transaction before any stateful checking.
type TransactionDeniedError struct {
	reason string
}

// NewTransactionDeniedErrorf formats and returns a new TransactionDeniedError
func NewTransactionDeniedErrorf(format string, args ...interface{}) *TransactionDeniedError {
	return &TransactionDeniedError{reason: fmt.Sprintf(format, args...)}
}

func (e *TransactionDeniedError) Error() string {
	return fmt.Sprintf("%s transaction denied: %s", e.Code().String(), e.reason)
}

// Code returns the error code for this error type
func (e *TransactionDeniedError) Code() ErrorCode {
	return ErrCodeTransactionDenied
}

func IsTransactionDeniedError(err error) bool {
	return HasErrorCode(err, ErrCodeTransactionDenied)
}

// SizeLimitExceededError indicates that a countable dimension of the
// transaction exceeds a protocol bound.
// this error is the result of failure in any of the following conditions:
// - declared inputs plus receiving references exceed the input object bound
// - the gas payment lists more coins than allowed
// - a publication carries too many modules, or a module is too large
type SizeLimitExceededError struct {
	What  string
	Value int
	Limit int
}

// NewSizeLimitExceededError constructs a new SizeLimitExceededError
func NewSizeLimitExceededError(what string, value int, limit int) *SizeLimitExceededError {
	return &SizeLimitExceededError{What: what, Value: value, Limit: limit}
}

func (e *SizeLimitExceededError) Error() string {
	return fmt.Sprintf("%s %s count %d exceeds limit %d", e.Code().String(), e.What, e.Value, e.Limit)
}

// Code returns the error code for this error type
func (e *SizeLimitExceededError) Code() ErrorCode {
	return ErrCodeSizeLimitExceeded
}

func IsSizeLimitExceededError(err error) bool {
	return HasErrorCode(err, ErrCodeSizeLimitExceeded)
}

// ObjectInputArityViolationError indicates that a non-genesis transaction
// declares no input objects at all. Every user transaction touches at least
// its gas coin; an empty input set can only be malformed.
type ObjectInputArityViolationError struct{}

// NewObjectInputArityViolationError constructs a new
// ObjectInputArityViolationError
func NewObjectInputArityViolationError() *ObjectInputArityViolationError {
	return &ObjectInputArityViolationError{}
}

func (e *ObjectInputArityViolationError) Error() string {
	return fmt.Sprintf("%s transaction declares no input objects", e.Code().String())
}

// Code returns the error code for this error type
func (e *ObjectInputArityViolationError) Code() ErrorCode {
	return ErrCodeObjectInputArityViolation
}

// DuplicateObjectRefInputError indicates that the same object id appears
// more than once where distinct objects are required.
// this error is the result of failure in any of the following conditions:
// - an object id is declared twice among the object arguments
// - an object id appears both as an input and as a receiving reference
// - a receiving reference is listed twice
type DuplicateObjectRefInputError struct {
	err error
}

// NewDuplicateObjectRefInputError constructs a new
// DuplicateObjectRefInputError wrapping the underlying cause
func NewDuplicateObjectRefInputError(err error) *DuplicateObjectRefInputError {
	return &DuplicateObjectRefInputError{err: err}
}

// NewDuplicateObjectRefInputErrorf formats and returns a new
// DuplicateObjectRefInputError
func NewDuplicateObjectRefInputErrorf(format string, args ...interface{}) *DuplicateObjectRefInputError {
	return &DuplicateObjectRefInputError{err: fmt.Errorf(format, args...)}
}

func (e *DuplicateObjectRefInputError) Error() string {
	return fmt.Sprintf("%s duplicate object reference: %s", e.Code().String(), e.err.Error())
}

// Code returns the error code for this error type
func (e *DuplicateObjectRefInputError) Code() ErrorCode {
	return ErrCodeDuplicateObjectRefInput
}

// Unwrap unwraps the error
func (e *DuplicateObjectRefInputError) Unwrap() error {
	return e.err
}

func IsDuplicateObjectRefInputError(err error) bool {
	return HasErrorCode(err, ErrCodeDuplicateObjectRefInput)
}

// UnsupportedFeatureError indicates that the transaction uses a feature the
// declared protocol version does not enable.
type UnsupportedFeatureError struct {
	feature string
	version basalt.ProtocolVersion
}

// NewUnsupportedFeatureError constructs a new UnsupportedFeatureError
func NewUnsupportedFeatureError(feature string, version basalt.ProtocolVersion) *UnsupportedFeatureError {
	return &UnsupportedFeatureError{feature: feature, version: version}
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("%s %s not enabled at protocol version %d", e.Code().String(), e.feature, e.version)
}

// Code returns the error code for this error type
func (e *UnsupportedFeatureError) Code() ErrorCode {
	return ErrCodeUnsupportedFeature
}

// MissingGasPaymentError indicates that a transaction requiring gas declares
// an empty gas payment.
type MissingGasPaymentError struct{}

// NewMissingGasPaymentError constructs a new MissingGasPaymentError
func NewMissingGasPaymentError() *MissingGasPaymentError {
	return &MissingGasPaymentError{}
}

func (e *MissingGasPaymentError) Error() string {
	return fmt.Sprintf("%s transaction declares no gas payment objects", e.Code().String())
}

// Code returns the error code for this error type
func (e *MissingGasPaymentError) Code() ErrorCode {
	return ErrCodeMissingGasPayment
}

// PackageVerificationTimeoutError indicates that metered bytecode
// verification ran out of its tick budget before finishing.
type PackageVerificationTimeoutError struct {
	err error
}

// NewPackageVerificationTimeoutError constructs a new
// PackageVerificationTimeoutError
func NewPackageVerificationTimeoutError(err error) *PackageVerificationTimeoutError {
	return &PackageVerificationTimeoutError{err: err}
}

func (e *PackageVerificationTimeoutError) Error() string {
	return fmt.Sprintf("%s package verification timed out: %s", e.Code().String(), e.err.Error())
}

// Code returns the error code for this error type
func (e *PackageVerificationTimeoutError) Code() ErrorCode {
	return ErrCodePackageVerificationTimeout
}

// Unwrap unwraps the error
func (e *PackageVerificationTimeoutError) Unwrap() error {
	return e.err
}

func IsPackageVerificationTimeoutError(err error) bool {
	return HasErrorCode(err, ErrCodePackageVerificationTimeout)
}
