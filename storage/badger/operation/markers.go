package operation

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/basalt-ledger/basalt-go/model/basalt"
)

// InsertReceivedMarker records that the object was received at the version
// within the epoch. Re-inserting an existing marker is a no-op.
func InsertReceivedMarker(epoch basalt.EpochID, objectID basalt.ObjectID, version basalt.SequenceNumber) func(*badger.Txn) error {
	return upsert(makePrefix(codeReceivedMarker, epoch, objectID, version), true)
}

// CheckReceivedMarker checks whether a received marker exists for the object
// and version within the epoch.
func CheckReceivedMarker(epoch basalt.EpochID, objectID basalt.ObjectID, version basalt.SequenceNumber, exists *bool) func(*badger.Txn) error {
	return check(makePrefix(codeReceivedMarker, epoch, objectID, version), exists)
}
