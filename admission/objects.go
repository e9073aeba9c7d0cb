package admission

import (
	"fmt"

	"github.com/basalt-ledger/basalt-go/admission/errors"
	"github.com/basalt-ledger/basalt-go/model/basalt"
)

// checkObjects verifies a transaction's resolved inputs: no mutable input
// appears twice, the input set is non-empty (genesis excepted), and every
// live object satisfies the consistency rules of its declared kind. Deleted
// shared inputs are passed through untouched; execution records the access.
func checkObjects(tx *basalt.TransactionData, inputs *basalt.InputObjects) error {

	used := make(map[basalt.ObjectID]struct{}, inputs.Len())
	for _, result := range inputs.Results() {
		if !result.IsMutable() {
			continue
		}
		id := result.ID()
		if _, ok := used[id]; ok {
			return errors.NewMutableObjectUsedMoreThanOnceError(id)
		}
		used[id] = struct{}{}
	}

	if !tx.IsGenesisTx() && inputs.Len() == 0 {
		return errors.NewObjectInputArityViolationError()
	}

	gasIDs := make(map[basalt.ObjectID]struct{}, len(tx.Gas()))
	for _, ref := range tx.Gas() {
		gasIDs[ref.ID] = struct{}{}
	}

	systemTx := tx.IsSystemTx()
	for _, result := range inputs.Results() {
		if result.IsDeletedShared() {
			continue
		}

		// Gas coins must be owned by the gas owner, everything else by the
		// sender.
		expectedOwner := tx.Sender
		if _, isGas := gasIDs[result.ID()]; isGas {
			expectedOwner = tx.GasOwner()
		}

		err := checkOneObject(expectedOwner, result.InputKind, result.Object, systemTx)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkOneObject verifies one live object against its declared input kind
// and the owner expected to control it.
func checkOneObject(
	owner basalt.Address,
	kind basalt.InputObjectKind,
	object *basalt.Object,
	systemTx bool,
) error {
	switch k := kind.(type) {

	case basalt.MovePackageInput:
		if !object.IsPackage() {
			return errors.NewMoveObjectAsPackageError(k.PackageID)
		}

	case basalt.ImmOrOwnedObjectInput:
		if object.IsPackage() {
			return errors.NewMovePackageAsObjectError(k.Ref.ID)
		}
		if k.Ref.Version >= basalt.SequenceNumberMax {
			return errors.NewInvalidSequenceNumberError(k.Ref.ID, k.Ref.Version)
		}

		// The object was fetched at exactly the declared version. A
		// disagreement means the store broke its contract, not that the user
		// sent a stale reference.
		if object.Version() != k.Ref.Version {
			return errors.NewObjectVersionInvariantFailure(k.Ref.ID, k.Ref.Version, object.Version())
		}

		expectedDigest := object.Digest()
		if expectedDigest != k.Ref.Digest {
			return errors.NewInvalidObjectDigestError(k.Ref.ID, expectedDigest)
		}

		switch actual := object.Owner.(type) {
		case basalt.Immutable:
			// Nothing else to check: immutable objects are readable by
			// anyone.
		case basalt.AddressOwner:
			if actual.Address != owner {
				return errors.NewIncorrectUserSignatureErrorf(
					"object %s is owned by account address %s, but the given owner or signer address is %s",
					k.Ref.ID, actual.Address, owner,
				)
			}
		case basalt.ObjectOwner:
			return errors.NewInvalidChildObjectArgumentError(object.ID(), actual.Parent)
		case basalt.SharedOwner:
			// Declared as owned but actually shared.
			return errors.NewNotSharedObjectError(k.Ref.ID)
		default:
			return errors.NewUnknownFailure(fmt.Errorf("object %s has unknown owner kind %T", k.Ref.ID, object.Owner))
		}

	case basalt.SharedObjectInput:
		// Only system transactions may take the clock mutably; user
		// transactions read it immutably.
		if k.ObjectID == basalt.ClockObjectID &&
			k.InitialSharedVersion == basalt.ClockSharedVersion &&
			k.Mutable {
			if systemTx {
				return nil
			}
			return errors.NewImmutableParameterExpectedError(basalt.ClockObjectID)
		}

		// The authenticator state is reserved to system transactions
		// entirely.
		if k.ObjectID == basalt.AuthenticatorStateObjectID {
			if systemTx {
				return nil
			}
			return errors.NewInaccessibleSystemObjectError(basalt.AuthenticatorStateObjectID)
		}

		if object.Version() >= basalt.SequenceNumberMax {
			return errors.NewInvalidSequenceNumberError(k.ObjectID, object.Version())
		}
		actualInitial, shared := object.InitialSharedVersion()
		if !shared {
			return errors.NewNotSharedObjectError(k.ObjectID)
		}
		if k.InitialSharedVersion != actualInitial {
			return errors.NewSharedVersionMismatchError(k.ObjectID, k.InitialSharedVersion, actualInitial)
		}

	default:
		return errors.NewUnknownFailure(fmt.Errorf("unknown input object kind %T", kind))
	}

	return nil
}
