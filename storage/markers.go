package storage

import (
	"github.com/basalt-ledger/basalt-go/model/basalt"
)

// Markers represents persistent storage for received-object markers. A
// marker records that an object was received at a given version during an
// epoch, so a re-submitted receipt stays acceptable after the object moved
// on. Markers are scoped to the epoch they were written in.
type Markers interface {

	// StoreReceived records that the object was received at the version
	// within the epoch.
	//
	// No errors are expected during normal operation.
	StoreReceived(epoch basalt.EpochID, objectID basalt.ObjectID, version basalt.SequenceNumber) error

	// HaveReceivedAt returns true if a received marker exists for the
	// object and version within the epoch.
	//
	// No errors are expected during normal operation.
	HaveReceivedAt(epoch basalt.EpochID, objectID basalt.ObjectID, version basalt.SequenceNumber) (bool, error)
}
