package admission

import (
	"github.com/basalt-ledger/basalt-go/admission/errors"
	"github.com/basalt-ledger/basalt-go/model/basalt"
	"github.com/basalt-ledger/basalt-go/protocol"
)

// checkVersionSupported rejects transactions built against a protocol
// version this build cannot serve.
func checkVersionSupported(tx *basalt.TransactionData) error {
	if protocol.SupportsVersion(tx.ProtocolVersion) {
		return nil
	}
	return errors.NewUnsupportedProtocolVersionError(
		tx.ProtocolVersion, protocol.MinSupportedVersion, protocol.MaxSupportedVersion)
}

// validityCheck runs the structural checks that need no store access: a
// present, bounded gas payment plus everything validityCheckNoGas covers.
func validityCheck(cfg protocol.Config, tx *basalt.TransactionData, current basalt.EpochID) error {
	if len(tx.Gas()) == 0 {
		return errors.NewMissingGasPaymentError()
	}
	if len(tx.Gas()) > cfg.MaxGasPayments {
		return errors.NewSizeLimitExceededError(
			"maximum gas payment objects in a transaction", len(tx.Gas()), cfg.MaxGasPayments)
	}
	return validityCheckNoGas(cfg, tx, current)
}

// validityCheckNoGas is validityCheck minus the gas payment rules, for the
// path where the caller supplies the gas object out of band.
func validityCheckNoGas(cfg protocol.Config, tx *basalt.TransactionData, current basalt.EpochID) error {
	if tx.IsSystemTx() {
		// System kinds are injected by the protocol itself; one arriving
		// through signing is a user submission of a reserved kind.
		return errors.NewUnsupportedTransactionKindError(tx.Kind)
	}
	if tx.IsExpired(current) {
		return errors.TransactionExpiredError{Expiration: *tx.Expiration, Current: current}
	}
	return kindValidityCheck(cfg, tx.Kind)
}

// kindValidityCheck bounds the structural size of a transaction kind's
// payload.
func kindValidityCheck(cfg protocol.Config, kind basalt.TransactionKind) error {
	pt, ok := kind.(basalt.ProgrammableTransaction)
	if !ok {
		// System kinds carry no user-shaped payload to bound.
		return nil
	}
	if len(pt.Inputs) > cfg.MaxInputObjects {
		return errors.NewSizeLimitExceededError(
			"maximum arguments in a programmable transaction", len(pt.Inputs), cfg.MaxInputObjects)
	}
	for _, command := range pt.Commands {
		var modules [][]byte
		switch c := command.(type) {
		case basalt.PublishCommand:
			modules = c.Modules
		case basalt.UpgradeCommand:
			modules = c.Modules
		default:
			continue
		}
		if len(modules) > cfg.MaxPublishedModules {
			return errors.NewSizeLimitExceededError(
				"maximum modules in a published package", len(modules), cfg.MaxPublishedModules)
		}
		for _, module := range modules {
			if len(module) > cfg.MaxModuleBytes {
				return errors.NewSizeLimitExceededError(
					"maximum bytes in a published module", len(module), cfg.MaxModuleBytes)
			}
		}
	}
	return nil
}

// checkInputArity bounds the number of declared input objects.
func checkInputArity(cfg protocol.Config, count int) error {
	if count > cfg.MaxInputObjects {
		return errors.NewSizeLimitExceededError(
			"maximum input objects in a transaction", count, cfg.MaxInputObjects)
	}
	return nil
}
