package errors

import (
	"fmt"

	"github.com/basalt-ledger/basalt-go/model/basalt"
)

// GasBudgetTooHighError indicates that a transaction declares a gas budget
// above the protocol maximum.
type GasBudgetTooHighError struct {
	Budget  uint64
	Maximum uint64
}

// NewGasBudgetTooHighError constructs a new GasBudgetTooHighError
func NewGasBudgetTooHighError(budget uint64, maximum uint64) *GasBudgetTooHighError {
	return &GasBudgetTooHighError{Budget: budget, Maximum: maximum}
}

func (e *GasBudgetTooHighError) Error() string {
	return fmt.Sprintf("%s gas budget %d exceeds maximum %d", e.Code().String(), e.Budget, e.Maximum)
}

// Code returns the error code for this error type
func (e *GasBudgetTooHighError) Code() ErrorCode {
	return ErrCodeGasBudgetTooHigh
}

// GasBudgetTooLowError indicates that a transaction declares a gas budget
// below the protocol minimum.
type GasBudgetTooLowError struct {
	Budget  uint64
	Minimum uint64
}

// NewGasBudgetTooLowError constructs a new GasBudgetTooLowError
func NewGasBudgetTooLowError(budget uint64, minimum uint64) *GasBudgetTooLowError {
	return &GasBudgetTooLowError{Budget: budget, Minimum: minimum}
}

func (e *GasBudgetTooLowError) Error() string {
	return fmt.Sprintf("%s gas budget %d below minimum %d", e.Code().String(), e.Budget, e.Minimum)
}

// Code returns the error code for this error type
func (e *GasBudgetTooLowError) Code() ErrorCode {
	return ErrCodeGasBudgetTooLow
}

// GasPriceUnderReferencePriceError indicates that a transaction offers a gas
// price under the current reference price.
type GasPriceUnderReferencePriceError struct {
	Price     uint64
	Reference uint64
}

// NewGasPriceUnderReferencePriceError constructs a new
// GasPriceUnderReferencePriceError
func NewGasPriceUnderReferencePriceError(price uint64, reference uint64) *GasPriceUnderReferencePriceError {
	return &GasPriceUnderReferencePriceError{Price: price, Reference: reference}
}

func (e *GasPriceUnderReferencePriceError) Error() string {
	return fmt.Sprintf("%s gas price %d under reference price %d", e.Code().String(), e.Price, e.Reference)
}

// Code returns the error code for this error type
func (e *GasPriceUnderReferencePriceError) Code() ErrorCode {
	return ErrCodeGasPriceUnderReferencePrice
}

// GasPriceTooHighError indicates that a transaction offers a gas price above
// the protocol maximum.
type GasPriceTooHighError struct {
	Price   uint64
	Maximum uint64
}

// NewGasPriceTooHighError constructs a new GasPriceTooHighError
func NewGasPriceTooHighError(price uint64, maximum uint64) *GasPriceTooHighError {
	return &GasPriceTooHighError{Price: price, Maximum: maximum}
}

func (e *GasPriceTooHighError) Error() string {
	return fmt.Sprintf("%s gas price %d exceeds maximum %d", e.Code().String(), e.Price, e.Maximum)
}

// Code returns the error code for this error type
func (e *GasPriceTooHighError) Code() ErrorCode {
	return ErrCodeGasPriceTooHigh
}

// GasBalanceTooLowError indicates that the combined balance of the gas
// payment cannot cover the declared budget.
type GasBalanceTooLowError struct {
	Balance uint64
	Needed  uint64
}

// NewGasBalanceTooLowError constructs a new GasBalanceTooLowError
func NewGasBalanceTooLowError(balance uint64, needed uint64) *GasBalanceTooLowError {
	return &GasBalanceTooLowError{Balance: balance, Needed: needed}
}

func (e *GasBalanceTooLowError) Error() string {
	return fmt.Sprintf("%s gas balance %d lower than needed %d", e.Code().String(), e.Balance, e.Needed)
}

// Code returns the error code for this error type
func (e *GasBalanceTooLowError) Code() ErrorCode {
	return ErrCodeGasBalanceTooLow
}

func IsGasBalanceTooLowError(err error) bool {
	return HasErrorCode(err, ErrCodeGasBalanceTooLow)
}

// InvalidGasObjectError indicates that a declared gas payment object cannot
// pay for gas.
// this error is the result of failure in any of the following conditions:
// - the object is not a gas coin
// - the object is a package
// - the coin's content does not decode
type InvalidGasObjectError struct {
	ObjectID basalt.ObjectID
}

// NewInvalidGasObjectError constructs a new InvalidGasObjectError
func NewInvalidGasObjectError(objectID basalt.ObjectID) *InvalidGasObjectError {
	return &InvalidGasObjectError{ObjectID: objectID}
}

func (e *InvalidGasObjectError) Error() string {
	return fmt.Sprintf("%s object %s cannot be used for gas payment", e.Code().String(), e.ObjectID)
}

// Code returns the error code for this error type
func (e *InvalidGasObjectError) Code() ErrorCode {
	return ErrCodeInvalidGasObject
}

func IsInvalidGasObjectError(err error) bool {
	return HasErrorCode(err, ErrCodeInvalidGasObject)
}
