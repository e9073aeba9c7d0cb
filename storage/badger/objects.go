// Package badger implements persistent storage for ledger objects and
// received-object markers on top of badger.
package badger

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/basalt-ledger/basalt-go/model/basalt"
	"github.com/basalt-ledger/basalt-go/storage"
	"github.com/basalt-ledger/basalt-go/storage/badger/operation"
)

// Objects implements persistent object storage: payloads keyed by id and
// version, a live index per id, and shared deletion tombstones.
type Objects struct {
	db *badger.DB
}

var _ storage.Objects = (*Objects)(nil)

func NewObjects(db *badger.DB) *Objects {
	return &Objects{
		db: db,
	}
}

// Store inserts the object keyed by id and version and points the live index
// at it.
func (o *Objects) Store(object *basalt.Object) error {
	return operation.RetryOnConflict(o.db.Update, func(tx *badger.Txn) error {
		err := operation.InsertObject(object)(tx)
		if err != nil {
			return fmt.Errorf("could not insert object: %w", err)
		}
		err = operation.UpsertLiveVersion(object.ID(), object.Version())(tx)
		if err != nil {
			return fmt.Errorf("could not update live index: %w", err)
		}
		return nil
	})
}

// ByID returns the live object with the given id.
func (o *Objects) ByID(objectID basalt.ObjectID) (*basalt.Object, error) {
	var object basalt.Object
	err := o.db.View(func(tx *badger.Txn) error {
		var version basalt.SequenceNumber
		err := operation.RetrieveLiveVersion(objectID, &version)(tx)
		if err != nil {
			return fmt.Errorf("could not look up live version: %w", err)
		}
		err = operation.RetrieveObject(objectID, version, &object)(tx)
		if err != nil {
			return fmt.Errorf("could not retrieve object: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &object, nil
}

// ByIDVersion returns the object at an exact version.
func (o *Objects) ByIDVersion(objectID basalt.ObjectID, version basalt.SequenceNumber) (*basalt.Object, error) {
	var object basalt.Object
	err := o.db.View(func(tx *badger.Txn) error {
		return operation.RetrieveObject(objectID, version, &object)(tx)
	})
	if err != nil {
		return nil, err
	}
	return &object, nil
}

// StoreTombstone records the deletion of a shared object and removes the
// live index entry if one exists.
func (o *Objects) StoreTombstone(objectID basalt.ObjectID, tombstone basalt.DeletedSharedObject) error {
	return operation.RetryOnConflict(o.db.Update, func(tx *badger.Txn) error {
		err := operation.InsertTombstone(objectID, tombstone)(tx)
		if err != nil {
			return fmt.Errorf("could not insert tombstone: %w", err)
		}
		err = operation.RemoveLiveVersion(objectID)(tx)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("could not remove live index: %w", err)
		}
		return nil
	})
}

// TombstoneByID returns the deletion tombstone of a shared object.
func (o *Objects) TombstoneByID(objectID basalt.ObjectID) (*basalt.DeletedSharedObject, error) {
	var tombstone basalt.DeletedSharedObject
	err := o.db.View(func(tx *badger.Txn) error {
		return operation.RetrieveTombstone(objectID, &tombstone)(tx)
	})
	if err != nil {
		return nil, err
	}
	return &tombstone, nil
}
