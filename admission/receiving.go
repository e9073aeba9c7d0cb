package admission

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/basalt-ledger/basalt-go/admission/errors"
	"github.com/basalt-ledger/basalt-go/model/basalt"
	"github.com/basalt-ledger/basalt-go/protocol"
	"github.com/basalt-ledger/basalt-go/storage"
)

// checkReceivingObjects admits the receiving refs of a transaction at
// signing time. Receiving refs count toward the input budget, must not
// collide with any other input, and must either match the live object
// exactly or already be recorded as received this epoch. A ref that was
// already received is accepted on purpose: the receipt happened, and
// execution settles the replay.
func checkReceivingObjects(
	log zerolog.Logger,
	objects ObjectReader,
	markers MarkerReader,
	cfg protocol.Config,
	epoch basalt.EpochID,
	receiving []basalt.ObjectRef,
	inputs *basalt.InputObjects,
) error {
	// Receiving refs are loaded at execution, so they count toward the same
	// budget as declared inputs.
	if len(receiving)+inputs.Len() > cfg.MaxInputObjects {
		return errors.NewSizeLimitExceededError(
			"maximum input and receiving objects in a transaction",
			len(receiving)+inputs.Len(), cfg.MaxInputObjects)
	}

	if len(receiving) == 0 {
		return nil
	}
	if !cfg.ReceivingObjectsEnabled {
		return errors.NewUnsupportedFeatureError("receiving objects", cfg.Version)
	}

	objectsInTxn := make(map[basalt.ObjectID]struct{}, inputs.Len()+len(receiving))
	for _, kind := range inputs.ObjectKinds() {
		objectsInTxn[kind.ID()] = struct{}{}
	}

	for _, ref := range receiving {
		if ref.Version >= basalt.SequenceNumberMax {
			return errors.NewInvalidSequenceNumberError(ref.ID, ref.Version)
		}

		err := checkOneReceivingObject(log, objects, markers, epoch, ref)
		if err != nil {
			return err
		}

		if _, dup := objectsInTxn[ref.ID]; dup {
			return errors.NewDuplicateObjectRefInputErrorf(
				"receiving object %s collides with another input", ref.ID)
		}
		objectsInTxn[ref.ID] = struct{}{}
	}

	return nil
}

// checkOneReceivingObject accepts a receiving ref that matches the live
// object or was already received this epoch, and otherwise classifies the
// rejection.
func checkOneReceivingObject(
	log zerolog.Logger,
	objects ObjectReader,
	markers MarkerReader,
	epoch basalt.EpochID,
	ref basalt.ObjectRef,
) error {
	object, err := objects.ByID(ref.ID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return errors.NewStorageFailure(fmt.Errorf("could not retrieve receiving object %s: %w", ref.ID, err))
	}

	// Fast path: the live object is exactly what the sender claims.
	if err == nil &&
		object.IsAddressOwned() &&
		object.Version() == ref.Version &&
		object.Digest() == ref.Digest {
		return nil
	}

	// The object may already have been received at this version within the
	// epoch. Acceptance here does not depend on the digest: the receipt is
	// a fact regardless of what the sender believes the object looked like.
	received, merr := markers.HaveReceivedAt(epoch, ref.ID, ref.Version)
	if merr != nil {
		return errors.NewStorageFailure(fmt.Errorf("could not query received marker for %s: %w", ref.ID, merr))
	}
	if received {
		return nil
	}

	if err != nil {
		return errors.NewObjectNotFoundAtVersionError(ref.ID, ref.Version)
	}
	if object.Version() != ref.Version {
		return errors.NewObjectVersionUnavailableError(ref, object.Version())
	}
	if object.IsPackage() {
		return errors.NewMovePackageAsObjectError(ref.ID)
	}
	expectedDigest := object.Digest()
	if expectedDigest != ref.Digest {
		return errors.NewInvalidObjectDigestError(ref.ID, expectedDigest)
	}

	switch actual := object.Owner.(type) {
	case basalt.AddressOwner:
		// An address-owned object matching version and digest takes the
		// fast path above; reaching this branch means the two checks
		// disagree. Fail closed.
		log.Error().
			Str("object_id", ref.ID.String()).
			Uint64("version", uint64(ref.Version)).
			Msg("receiving object is address-owned with matching version and digest but failed the fast path")
		return errors.NewObjectNotFoundAtVersionError(ref.ID, ref.Version)
	case basalt.ObjectOwner:
		return errors.NewInvalidChildObjectArgumentError(object.ID(), actual.Parent)
	case basalt.SharedOwner:
		return errors.NewNotSharedObjectError(ref.ID)
	case basalt.Immutable:
		return errors.NewMutableParameterExpectedError(ref.ID)
	default:
		return errors.NewUnknownFailure(fmt.Errorf("object %s has unknown owner kind %T", ref.ID, object.Owner))
	}
}
