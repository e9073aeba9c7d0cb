package errors

import (
	"fmt"

	"github.com/basalt-ledger/basalt-go/model/basalt"
)

// ObjectNotFoundError indicates that a declared input does not exist in the
// snapshot being checked against, or not at a consumable version.
type ObjectNotFoundError struct {
	ObjectID basalt.ObjectID

	// Version is the declared version, when the declaration carried one.
	Version *basalt.SequenceNumber
}

// NewObjectNotFoundError constructs a new ObjectNotFoundError
func NewObjectNotFoundError(objectID basalt.ObjectID) *ObjectNotFoundError {
	return &ObjectNotFoundError{ObjectID: objectID}
}

// NewObjectNotFoundAtVersionError constructs a new ObjectNotFoundError for a
// declaration that named a version
func NewObjectNotFoundAtVersionError(objectID basalt.ObjectID, version basalt.SequenceNumber) *ObjectNotFoundError {
	return &ObjectNotFoundError{ObjectID: objectID, Version: &version}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Version != nil {
		return fmt.Sprintf("%s object %s not found at version %d", e.Code().String(), e.ObjectID, *e.Version)
	}
	return fmt.Sprintf("%s object %s not found", e.Code().String(), e.ObjectID)
}

// Code returns the error code for this error type
func (e *ObjectNotFoundError) Code() ErrorCode {
	return ErrCodeObjectNotFound
}

func IsObjectNotFoundError(err error) bool {
	return HasErrorCode(err, ErrCodeObjectNotFound)
}

// InvalidObjectDigestError indicates that a declared digest disagrees with
// the live object's digest: the author observed a different state of the
// object than the snapshot holds.
type InvalidObjectDigestError struct {
	ObjectID       basalt.ObjectID
	ExpectedDigest basalt.ObjectDigest
}

// NewInvalidObjectDigestError constructs a new InvalidObjectDigestError
func NewInvalidObjectDigestError(objectID basalt.ObjectID, expected basalt.ObjectDigest) *InvalidObjectDigestError {
	return &InvalidObjectDigestError{ObjectID: objectID, ExpectedDigest: expected}
}

func (e *InvalidObjectDigestError) Error() string {
	return fmt.Sprintf("%s object %s digest mismatch, live digest is %s", e.Code().String(), e.ObjectID, e.ExpectedDigest)
}

// Code returns the error code for this error type
func (e *InvalidObjectDigestError) Code() ErrorCode {
	return ErrCodeInvalidObjectDigest
}

func IsInvalidObjectDigestError(err error) bool {
	return HasErrorCode(err, ErrCodeInvalidObjectDigest)
}

// InvalidSequenceNumberError indicates that a declared version is outside
// the representable range for live objects.
type InvalidSequenceNumberError struct {
	ObjectID basalt.ObjectID
	Version  basalt.SequenceNumber
}

// NewInvalidSequenceNumberError constructs a new InvalidSequenceNumberError
func NewInvalidSequenceNumberError(objectID basalt.ObjectID, version basalt.SequenceNumber) *InvalidSequenceNumberError {
	return &InvalidSequenceNumberError{ObjectID: objectID, Version: version}
}

func (e *InvalidSequenceNumberError) Error() string {
	return fmt.Sprintf("%s object %s declares invalid version %d", e.Code().String(), e.ObjectID, e.Version)
}

// Code returns the error code for this error type
func (e *InvalidSequenceNumberError) Code() ErrorCode {
	return ErrCodeInvalidSequenceNumber
}

// ObjectVersionUnavailableError indicates that the object exists but not at
// the declared version: it has moved on, or never reached that version.
type ObjectVersionUnavailableError struct {
	Requested      basalt.ObjectRef
	CurrentVersion basalt.SequenceNumber
}

// NewObjectVersionUnavailableError constructs a new
// ObjectVersionUnavailableError
func NewObjectVersionUnavailableError(requested basalt.ObjectRef, current basalt.SequenceNumber) *ObjectVersionUnavailableError {
	return &ObjectVersionUnavailableError{Requested: requested, CurrentVersion: current}
}

func (e *ObjectVersionUnavailableError) Error() string {
	return fmt.Sprintf(
		"%s object %s unavailable for consumption at version %d, current version is %d",
		e.Code().String(),
		e.Requested.ID,
		e.Requested.Version,
		e.CurrentVersion,
	)
}

// Code returns the error code for this error type
func (e *ObjectVersionUnavailableError) Code() ErrorCode {
	return ErrCodeObjectVersionUnavailableForConsumption
}

func IsObjectVersionUnavailableError(err error) bool {
	return HasErrorCode(err, ErrCodeObjectVersionUnavailableForConsumption)
}

// MutableObjectUsedMoreThanOnceError indicates that a transaction claims
// mutable access to the same object through more than one input.
type MutableObjectUsedMoreThanOnceError struct {
	ObjectID basalt.ObjectID
}

// NewMutableObjectUsedMoreThanOnceError constructs a new
// MutableObjectUsedMoreThanOnceError
func NewMutableObjectUsedMoreThanOnceError(objectID basalt.ObjectID) *MutableObjectUsedMoreThanOnceError {
	return &MutableObjectUsedMoreThanOnceError{ObjectID: objectID}
}

func (e *MutableObjectUsedMoreThanOnceError) Error() string {
	return fmt.Sprintf("%s mutable object %s used more than once", e.Code().String(), e.ObjectID)
}

// Code returns the error code for this error type
func (e *MutableObjectUsedMoreThanOnceError) Code() ErrorCode {
	return ErrCodeMutableObjectUsedMoreThanOnce
}

func IsMutableObjectUsedMoreThanOnceError(err error) bool {
	return HasErrorCode(err, ErrCodeMutableObjectUsedMoreThanOnce)
}

// IncorrectUserSignatureError indicates that an object is controlled by an
// account other than the one the transaction speaks for.
// this error is the result of failure in any of the following conditions:
// - an input object is owned by someone other than the sender
// - a gas payment object is owned by someone other than the gas owner
type IncorrectUserSignatureError struct {
	err error
}

// NewIncorrectUserSignatureErrorf formats and returns a new
// IncorrectUserSignatureError
func NewIncorrectUserSignatureErrorf(format string, args ...interface{}) *IncorrectUserSignatureError {
	return &IncorrectUserSignatureError{err: fmt.Errorf(format, args...)}
}

func (e *IncorrectUserSignatureError) Error() string {
	return fmt.Sprintf("%s incorrect signature claim: %s", e.Code().String(), e.err.Error())
}

// Code returns the error code for this error type
func (e *IncorrectUserSignatureError) Code() ErrorCode {
	return ErrCodeIncorrectUserSignature
}

// Unwrap unwraps the error
func (e *IncorrectUserSignatureError) Unwrap() error {
	return e.err
}

func IsIncorrectUserSignatureError(err error) bool {
	return HasErrorCode(err, ErrCodeIncorrectUserSignature)
}

// InvalidChildObjectArgumentError indicates that a child object was declared
// as a top-level input. Child objects are only reachable through their
// parent.
type InvalidChildObjectArgumentError struct {
	ChildID  basalt.ObjectID
	ParentID basalt.ObjectID
}

// NewInvalidChildObjectArgumentError constructs a new
// InvalidChildObjectArgumentError
func NewInvalidChildObjectArgumentError(childID basalt.ObjectID, parentID basalt.ObjectID) *InvalidChildObjectArgumentError {
	return &InvalidChildObjectArgumentError{ChildID: childID, ParentID: parentID}
}

func (e *InvalidChildObjectArgumentError) Error() string {
	return fmt.Sprintf(
		"%s child object %s of parent %s cannot be used as an input",
		e.Code().String(),
		e.ChildID,
		e.ParentID,
	)
}

// Code returns the error code for this error type
func (e *InvalidChildObjectArgumentError) Code() ErrorCode {
	return ErrCodeInvalidChildObjectArgument
}

// NotSharedObjectError indicates that an object declared as shared is not
// shared.
type NotSharedObjectError struct {
	ObjectID basalt.ObjectID
}

// NewNotSharedObjectError constructs a new NotSharedObjectError
func NewNotSharedObjectError(objectID basalt.ObjectID) *NotSharedObjectError {
	return &NotSharedObjectError{ObjectID: objectID}
}

func (e *NotSharedObjectError) Error() string {
	return fmt.Sprintf("%s object %s is not shared", e.Code().String(), e.ObjectID)
}

// Code returns the error code for this error type
func (e *NotSharedObjectError) Code() ErrorCode {
	return ErrCodeNotSharedObject
}

// SharedVersionMismatchError indicates that a shared input declares an
// initial shared version other than the one the object actually became
// shared at.
type SharedVersionMismatchError struct {
	ObjectID basalt.ObjectID
	Declared basalt.SequenceNumber
	Actual   basalt.SequenceNumber
}

// NewSharedVersionMismatchError constructs a new SharedVersionMismatchError
func NewSharedVersionMismatchError(
	objectID basalt.ObjectID,
	declared basalt.SequenceNumber,
	actual basalt.SequenceNumber,
) *SharedVersionMismatchError {
	return &SharedVersionMismatchError{ObjectID: objectID, Declared: declared, Actual: actual}
}

func (e *SharedVersionMismatchError) Error() string {
	return fmt.Sprintf(
		"%s object %s declares initial shared version %d, actual is %d",
		e.Code().String(),
		e.ObjectID,
		e.Declared,
		e.Actual,
	)
}

// Code returns the error code for this error type
func (e *SharedVersionMismatchError) Code() ErrorCode {
	return ErrCodeSharedObjectStartingVersionMismatch
}

// ImmutableParameterExpectedError indicates that a transaction asks for
// mutable access to an object only readable here.
type ImmutableParameterExpectedError struct {
	ObjectID basalt.ObjectID
}

// NewImmutableParameterExpectedError constructs a new
// ImmutableParameterExpectedError
func NewImmutableParameterExpectedError(objectID basalt.ObjectID) *ImmutableParameterExpectedError {
	return &ImmutableParameterExpectedError{ObjectID: objectID}
}

func (e *ImmutableParameterExpectedError) Error() string {
	return fmt.Sprintf("%s object %s may only be taken immutably", e.Code().String(), e.ObjectID)
}

// Code returns the error code for this error type
func (e *ImmutableParameterExpectedError) Code() ErrorCode {
	return ErrCodeImmutableParameterExpected
}

// MutableParameterExpectedError indicates that an operation requiring a
// mutable object was pointed at an immutable one.
type MutableParameterExpectedError struct {
	ObjectID basalt.ObjectID
}

// NewMutableParameterExpectedError constructs a new
// MutableParameterExpectedError
func NewMutableParameterExpectedError(objectID basalt.ObjectID) *MutableParameterExpectedError {
	return &MutableParameterExpectedError{ObjectID: objectID}
}

func (e *MutableParameterExpectedError) Error() string {
	return fmt.Sprintf("%s object %s is immutable here", e.Code().String(), e.ObjectID)
}

// Code returns the error code for this error type
func (e *MutableParameterExpectedError) Code() ErrorCode {
	return ErrCodeMutableParameterExpected
}

// InaccessibleSystemObjectError indicates that a user transaction declared a
// system object users can never touch.
type InaccessibleSystemObjectError struct {
	ObjectID basalt.ObjectID
}

// NewInaccessibleSystemObjectError constructs a new
// InaccessibleSystemObjectError
func NewInaccessibleSystemObjectError(objectID basalt.ObjectID) *InaccessibleSystemObjectError {
	return &InaccessibleSystemObjectError{ObjectID: objectID}
}

func (e *InaccessibleSystemObjectError) Error() string {
	return fmt.Sprintf("%s system object %s is not accessible to user transactions", e.Code().String(), e.ObjectID)
}

// Code returns the error code for this error type
func (e *InaccessibleSystemObjectError) Code() ErrorCode {
	return ErrCodeInaccessibleSystemObject
}

// MovePackageAsObjectError indicates that a package was declared where a
// plain object is required.
type MovePackageAsObjectError struct {
	ObjectID basalt.ObjectID
}

// NewMovePackageAsObjectError constructs a new MovePackageAsObjectError
func NewMovePackageAsObjectError(objectID basalt.ObjectID) *MovePackageAsObjectError {
	return &MovePackageAsObjectError{ObjectID: objectID}
}

func (e *MovePackageAsObjectError) Error() string {
	return fmt.Sprintf("%s package %s cannot be used as an object", e.Code().String(), e.ObjectID)
}

// Code returns the error code for this error type
func (e *MovePackageAsObjectError) Code() ErrorCode {
	return ErrCodeMovePackageAsObject
}

// MoveObjectAsPackageError indicates that a plain object was declared where
// a package is required.
type MoveObjectAsPackageError struct {
	ObjectID basalt.ObjectID
}

// NewMoveObjectAsPackageError constructs a new MoveObjectAsPackageError
func NewMoveObjectAsPackageError(objectID basalt.ObjectID) *MoveObjectAsPackageError {
	return &MoveObjectAsPackageError{ObjectID: objectID}
}

func (e *MoveObjectAsPackageError) Error() string {
	return fmt.Sprintf("%s object %s is not a package", e.Code().String(), e.ObjectID)
}

// Code returns the error code for this error type
func (e *MoveObjectAsPackageError) Code() ErrorCode {
	return ErrCodeMoveObjectAsPackage
}
