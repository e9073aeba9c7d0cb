package storage

import (
	"github.com/basalt-ledger/basalt-go/model/basalt"
)

// Objects represents persistent storage for ledger objects.
type Objects interface {

	// Store inserts the object, keyed by id and version, and points the
	// live index at it.
	Store(object *basalt.Object) error

	// ByID returns the live object with the given id.
	// Returns ErrNotFound if no live object with this id exists.
	ByID(objectID basalt.ObjectID) (*basalt.Object, error)

	// ByIDVersion returns the object at an exact version.
	// Returns ErrNotFound if the object never existed at that version or
	// is no longer retained at it.
	ByIDVersion(objectID basalt.ObjectID, version basalt.SequenceNumber) (*basalt.Object, error)

	// StoreTombstone records the deletion of a shared object and removes
	// the live index entry.
	StoreTombstone(objectID basalt.ObjectID, tombstone basalt.DeletedSharedObject) error

	// TombstoneByID returns the deletion tombstone of a shared object.
	// Returns ErrNotFound if no deletion was recorded for this id.
	TombstoneByID(objectID basalt.ObjectID) (*basalt.DeletedSharedObject, error)
}
