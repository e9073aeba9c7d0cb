package inmemory

import (
	"sync"

	"github.com/basalt-ledger/basalt-go/model/basalt"
	"github.com/basalt-ledger/basalt-go/storage"
)

type markerKey struct {
	epoch   basalt.EpochID
	id      basalt.ObjectID
	version basalt.SequenceNumber
}

// Markers implements received-object marker storage over a plain map.
type Markers struct {
	mu      sync.RWMutex
	markers map[markerKey]struct{}
}

var _ storage.Markers = (*Markers)(nil)

func NewMarkers() *Markers {
	return &Markers{
		markers: make(map[markerKey]struct{}),
	}
}

// StoreReceived records that the object was received at the version within
// the epoch.
func (m *Markers) StoreReceived(epoch basalt.EpochID, objectID basalt.ObjectID, version basalt.SequenceNumber) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.markers[markerKey{epoch: epoch, id: objectID, version: version}] = struct{}{}
	return nil
}

// HaveReceivedAt returns true if a received marker exists for the object and
// version within the epoch.
func (m *Markers) HaveReceivedAt(epoch basalt.EpochID, objectID basalt.ObjectID, version basalt.SequenceNumber) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.markers[markerKey{epoch: epoch, id: objectID, version: version}]
	return ok, nil
}
