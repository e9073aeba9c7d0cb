// Package inmemory provides map-backed implementations of the storage
// interfaces, for tests and simulation. Stores are safe for concurrent use;
// callers must not mutate objects after handing them over.
package inmemory

import (
	"sync"

	"github.com/basalt-ledger/basalt-go/model/basalt"
	"github.com/basalt-ledger/basalt-go/storage"
)

type objectKey struct {
	id      basalt.ObjectID
	version basalt.SequenceNumber
}

// Objects implements object storage over plain maps.
type Objects struct {
	mu         sync.RWMutex
	live       map[basalt.ObjectID]basalt.SequenceNumber
	objects    map[objectKey]*basalt.Object
	tombstones map[basalt.ObjectID]basalt.DeletedSharedObject
}

var _ storage.Objects = (*Objects)(nil)

func NewObjects() *Objects {
	return &Objects{
		live:       make(map[basalt.ObjectID]basalt.SequenceNumber),
		objects:    make(map[objectKey]*basalt.Object),
		tombstones: make(map[basalt.ObjectID]basalt.DeletedSharedObject),
	}
}

// Store inserts the object keyed by id and version and points the live index
// at it.
func (o *Objects) Store(object *basalt.Object) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.objects[objectKey{id: object.ID(), version: object.Version()}] = object
	o.live[object.ID()] = object.Version()
	return nil
}

// ByID returns the live object with the given id.
func (o *Objects) ByID(objectID basalt.ObjectID) (*basalt.Object, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	version, ok := o.live[objectID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	object, ok := o.objects[objectKey{id: objectID, version: version}]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return object, nil
}

// ByIDVersion returns the object at an exact version.
func (o *Objects) ByIDVersion(objectID basalt.ObjectID, version basalt.SequenceNumber) (*basalt.Object, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	object, ok := o.objects[objectKey{id: objectID, version: version}]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return object, nil
}

// StoreTombstone records the deletion of a shared object and removes the
// live index entry.
func (o *Objects) StoreTombstone(objectID basalt.ObjectID, tombstone basalt.DeletedSharedObject) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.tombstones[objectID] = tombstone
	delete(o.live, objectID)
	return nil
}

// TombstoneByID returns the deletion tombstone of a shared object.
func (o *Objects) TombstoneByID(objectID basalt.ObjectID) (*basalt.DeletedSharedObject, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	tombstone, ok := o.tombstones[objectID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &tombstone, nil
}
