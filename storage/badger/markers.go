package badger

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/basalt-ledger/basalt-go/model/basalt"
	"github.com/basalt-ledger/basalt-go/storage"
	"github.com/basalt-ledger/basalt-go/storage/badger/operation"
)

// Markers implements persistent storage for received-object markers, keyed
// by epoch, object id and version.
type Markers struct {
	db *badger.DB
}

var _ storage.Markers = (*Markers)(nil)

func NewMarkers(db *badger.DB) *Markers {
	return &Markers{
		db: db,
	}
}

// StoreReceived records that the object was received at the version within
// the epoch.
func (m *Markers) StoreReceived(epoch basalt.EpochID, objectID basalt.ObjectID, version basalt.SequenceNumber) error {
	return operation.RetryOnConflict(m.db.Update, operation.InsertReceivedMarker(epoch, objectID, version))
}

// HaveReceivedAt returns true if a received marker exists for the object and
// version within the epoch.
func (m *Markers) HaveReceivedAt(epoch basalt.EpochID, objectID basalt.ObjectID, version basalt.SequenceNumber) (bool, error) {
	var exists bool
	err := m.db.View(operation.CheckReceivedMarker(epoch, objectID, version, &exists))
	if err != nil {
		return false, err
	}
	return exists, nil
}
