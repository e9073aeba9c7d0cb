package errors

import (
	"fmt"

	"github.com/basalt-ledger/basalt-go/model/basalt"
)

// UnknownFailure captures an error admission cannot classify.
type UnknownFailure struct {
	err error
}

// NewUnknownFailure constructs a new UnknownFailure
func NewUnknownFailure(err error) *UnknownFailure {
	return &UnknownFailure{err: err}
}

func (e *UnknownFailure) Error() string {
	return fmt.Sprintf("%s unknown failure: %s", e.FailureCode().String(), e.err.Error())
}

// FailureCode returns the failure code
func (e *UnknownFailure) FailureCode() FailureCode {
	return FailureCodeUnknownFailure
}

// Unwrap unwraps the error
func (e *UnknownFailure) Unwrap() error {
	return e.err
}

// ObjectVersionInvariantFailure captures a store answering a by-id fetch
// with an object whose version disagrees with the version the transaction
// was admitted against. Only the node can cause this; the transaction's
// claims never reach the store on this path.
type ObjectVersionInvariantFailure struct {
	objectID basalt.ObjectID
	expected basalt.SequenceNumber
	actual   basalt.SequenceNumber
}

// NewObjectVersionInvariantFailure constructs a new
// ObjectVersionInvariantFailure
func NewObjectVersionInvariantFailure(
	objectID basalt.ObjectID,
	expected basalt.SequenceNumber,
	actual basalt.SequenceNumber,
) *ObjectVersionInvariantFailure {
	return &ObjectVersionInvariantFailure{
		objectID: objectID,
		expected: expected,
		actual:   actual,
	}
}

func (e *ObjectVersionInvariantFailure) Error() string {
	return fmt.Sprintf(
		"%s object %s resolved at version %d, expected %d",
		e.FailureCode().String(),
		e.objectID,
		e.actual,
		e.expected,
	)
}

// FailureCode returns the failure code
func (e *ObjectVersionInvariantFailure) FailureCode() FailureCode {
	return FailureCodeObjectVersionInvariantFailure
}

// StorageFailure captures a store breaking its read contract.
type StorageFailure struct {
	err error
}

// NewStorageFailure constructs a new StorageFailure
func NewStorageFailure(err error) *StorageFailure {
	return &StorageFailure{err: err}
}

// NewStorageFailuref formats and returns a new StorageFailure
func NewStorageFailuref(msg string, args ...interface{}) *StorageFailure {
	return &StorageFailure{err: fmt.Errorf(msg, args...)}
}

func (e *StorageFailure) Error() string {
	return fmt.Sprintf("%s storage returned unsuccessful: %s", e.FailureCode().String(), e.err.Error())
}

// FailureCode returns the failure code
func (e *StorageFailure) FailureCode() FailureCode {
	return FailureCodeStorageFailure
}

// Unwrap unwraps the error
func (e *StorageFailure) Unwrap() error {
	return e.err
}

// InvalidCertificateFailure captures a certified transaction failing a check
// it already passed when it was first signed. A quorum admitted it once;
// disagreeing now means this node is broken, not the transaction.
type InvalidCertificateFailure struct {
	err error
}

// NewInvalidCertificateFailure constructs a new InvalidCertificateFailure
func NewInvalidCertificateFailure(err error) *InvalidCertificateFailure {
	return &InvalidCertificateFailure{err: err}
}

func (e *InvalidCertificateFailure) Error() string {
	return fmt.Sprintf("%s certified transaction no longer admissible: %s", e.FailureCode().String(), e.err.Error())
}

// FailureCode returns the failure code
func (e *InvalidCertificateFailure) FailureCode() FailureCode {
	return FailureCodeInvalidCertificateFailure
}

// Unwrap unwraps the error
func (e *InvalidCertificateFailure) Unwrap() error {
	return e.err
}
