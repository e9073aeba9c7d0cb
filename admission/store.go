package admission

import (
	"github.com/basalt-ledger/basalt-go/model/basalt"
)

// ObjectReader is the read capability admission needs from an object store.
type ObjectReader interface {

	// ByID returns the live object with the given id.
	// Returns storage.ErrNotFound if no live object with this id exists.
	ByID(objectID basalt.ObjectID) (*basalt.Object, error)

	// ByIDVersion returns the object at an exact version.
	// Returns storage.ErrNotFound if the object is not available at it.
	ByIDVersion(objectID basalt.ObjectID, version basalt.SequenceNumber) (*basalt.Object, error)

	// TombstoneByID returns the deletion tombstone of a shared object.
	// Returns storage.ErrNotFound if no deletion was recorded for this id.
	TombstoneByID(objectID basalt.ObjectID) (*basalt.DeletedSharedObject, error)
}

// MarkerReader is the received-object marker query capability.
type MarkerReader interface {

	// HaveReceivedAt returns true if a received marker exists for the
	// object and version within the epoch.
	HaveReceivedAt(epoch basalt.EpochID, objectID basalt.ObjectID, version basalt.SequenceNumber) (bool, error)
}

// Snapshot is the read view one admission call runs against. The caller
// serves it from a consistent, epoch-scoped state; admission never writes
// through it.
type Snapshot interface {
	ObjectReader
	MarkerReader
}
