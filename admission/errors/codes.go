package errors

import "fmt"

// ErrorCode identifies a user input error: the transaction is at fault and
// the verdict is safe to report back to its author.
type ErrorCode uint16

func (ec ErrorCode) String() string {
	return fmt.Sprintf("[Error Code: %d]", ec)
}

// FailureCode identifies an internal failure: the node (or its stores) broke
// an invariant. Failures are never attributable to the transaction and never
// reported as user errors.
type FailureCode uint16

func (fc FailureCode) String() string {
	return fmt.Sprintf("[Failure Code: %d]", fc)
}

const (
	FailureCodeUnknownFailure                FailureCode = 2000
	FailureCodeObjectVersionInvariantFailure FailureCode = 2001
	FailureCodeStorageFailure                FailureCode = 2002
	FailureCodeInvalidCertificateFailure     FailureCode = 2003
)

const (
	// transaction validity errors 1000 - 1049
	ErrCodeUnsupportedTransactionKind ErrorCode = 1001
	ErrCodeUnsupportedProtocolVersion ErrorCode = 1002
	ErrCodeTransactionExpired         ErrorCode = 1003
	ErrCodeTransactionDenied          ErrorCode = 1004
	ErrCodeSizeLimitExceeded          ErrorCode = 1005
	ErrCodeObjectInputArityViolation  ErrorCode = 1006
	ErrCodeDuplicateObjectRefInput    ErrorCode = 1007
	ErrCodeUnsupportedFeature         ErrorCode = 1008
	ErrCodeMissingGasPayment          ErrorCode = 1009

	// gas admission errors 1050 - 1099
	ErrCodeGasBudgetTooHigh            ErrorCode = 1050
	ErrCodeGasBudgetTooLow             ErrorCode = 1051
	ErrCodeGasPriceUnderReferencePrice ErrorCode = 1052
	ErrCodeGasPriceTooHigh             ErrorCode = 1053
	ErrCodeGasBalanceTooLow            ErrorCode = 1054
	ErrCodeInvalidGasObject            ErrorCode = 1055

	// object consistency errors 1100 - 1199
	ErrCodeObjectNotFound                         ErrorCode = 1100
	ErrCodeInvalidObjectDigest                    ErrorCode = 1101
	ErrCodeInvalidSequenceNumber                  ErrorCode = 1102
	ErrCodeObjectVersionUnavailableForConsumption ErrorCode = 1103
	ErrCodeMutableObjectUsedMoreThanOnce          ErrorCode = 1104
	ErrCodeIncorrectUserSignature                 ErrorCode = 1105
	ErrCodeInvalidChildObjectArgument             ErrorCode = 1106
	ErrCodeNotSharedObject                        ErrorCode = 1107
	ErrCodeSharedObjectStartingVersionMismatch    ErrorCode = 1108
	ErrCodeImmutableParameterExpected             ErrorCode = 1109
	ErrCodeMutableParameterExpected               ErrorCode = 1110
	ErrCodeInaccessibleSystemObject               ErrorCode = 1111
	ErrCodeMovePackageAsObject                    ErrorCode = 1112
	ErrCodeMoveObjectAsPackage                    ErrorCode = 1113

	// package publication errors 1200 - 1249
	ErrCodePackageVerificationTimeout ErrorCode = 1200
)
