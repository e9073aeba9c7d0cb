// Package deny implements the operator controlled admission policy gate.
// The gate runs once per transaction on the signing path, ahead of any state
// access or metered work, so every rule is a pure function of the submitted
// transaction. Certified transactions bypass the gate: their inputs were
// checked when they were signed.
package deny

import (
	"github.com/basalt-ledger/basalt-go/admission/errors"
	"github.com/basalt-ledger/basalt-go/model/basalt"
)

// Config captures the deny policy. The zero value denies nothing.
type Config struct {
	// DisableUserTransactions rejects every user transaction outright. Used
	// to quiesce a node during incident response.
	DisableUserTransactions bool

	// DeniedAddresses may neither send nor sponsor transactions.
	DeniedAddresses []basalt.Address

	// DeniedObjects may not be used as transaction inputs, gas payment, or
	// receiving inputs.
	DeniedObjects []basalt.ObjectID

	// DisablePublishing rejects transactions that publish or upgrade
	// packages.
	DisablePublishing bool

	// DisableReceiving rejects transactions with receiving inputs.
	DisableReceiving bool

	// DisableSharedObjects rejects transactions that use shared object
	// inputs.
	DisableSharedObjects bool
}

// CheckForSigning applies the deny policy to a transaction submitted for
// signing. The input kinds and receiving refs are the ones already derived
// from the transaction, passed in so the gate does not re-derive them. No
// current rule inspects the signatures; they are part of the gate contract.
func CheckForSigning(
	cfg Config,
	tx *basalt.TransactionData,
	signatures []basalt.Signature,
	inputKinds []basalt.InputObjectKind,
	receiving []basalt.ObjectRef,
) error {
	if cfg.DisableUserTransactions {
		return errors.NewTransactionDeniedErrorf("all user transactions are disabled")
	}
	if err := checkAddresses(cfg, tx); err != nil {
		return err
	}
	if err := checkInputKinds(cfg, inputKinds); err != nil {
		return err
	}
	if err := checkReceiving(cfg, receiving); err != nil {
		return err
	}
	if err := checkCommands(cfg, tx); err != nil {
		return err
	}
	return nil
}

func checkAddresses(cfg Config, tx *basalt.TransactionData) error {
	for _, denied := range cfg.DeniedAddresses {
		if tx.Sender == denied {
			return errors.NewTransactionDeniedErrorf("sender address %v is denied", denied)
		}
		if tx.GasOwner() == denied {
			return errors.NewTransactionDeniedErrorf("gas owner address %v is denied", denied)
		}
	}
	return nil
}

func checkInputKinds(cfg Config, inputKinds []basalt.InputObjectKind) error {
	for _, kind := range inputKinds {
		if objectDenied(cfg, kind.ID()) {
			return errors.NewTransactionDeniedErrorf("input object %v is denied", kind.ID())
		}
		if _, shared := kind.(basalt.SharedObjectInput); shared && cfg.DisableSharedObjects {
			return errors.NewTransactionDeniedErrorf("shared object inputs are disabled")
		}
	}
	return nil
}

func checkReceiving(cfg Config, receiving []basalt.ObjectRef) error {
	if len(receiving) == 0 {
		return nil
	}
	if cfg.DisableReceiving {
		return errors.NewTransactionDeniedErrorf("receiving inputs are disabled")
	}
	for _, ref := range receiving {
		if objectDenied(cfg, ref.ID) {
			return errors.NewTransactionDeniedErrorf("receiving object %v is denied", ref.ID)
		}
	}
	return nil
}

func checkCommands(cfg Config, tx *basalt.TransactionData) error {
	if !cfg.DisablePublishing {
		return nil
	}
	pt, ok := tx.Kind.(basalt.ProgrammableTransaction)
	if !ok {
		return nil
	}
	for _, command := range pt.Commands {
		switch command.(type) {
		case basalt.PublishCommand, basalt.UpgradeCommand:
			return errors.NewTransactionDeniedErrorf("package publishing is disabled")
		}
	}
	return nil
}

func objectDenied(cfg Config, id basalt.ObjectID) bool {
	for _, denied := range cfg.DeniedObjects {
		if id == denied {
			return true
		}
	}
	return false
}
