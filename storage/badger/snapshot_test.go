package badger_test

import (
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basalt-ledger/basalt-go/admission"
	"github.com/basalt-ledger/basalt-go/model/basalt"
	badgerstorage "github.com/basalt-ledger/basalt-go/storage/badger"
	"github.com/basalt-ledger/basalt-go/utils/unittest"
)

var _ admission.Snapshot = (*badgerstorage.Snapshot)(nil)

func TestSnapshotReads(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		snap := badgerstorage.NewSnapshot(db)
		epoch := basalt.EpochID(2)

		object := unittest.OwnedObjectFixture(unittest.AddressFixture())
		require.NoError(t, snap.Store(object))
		require.NoError(t, snap.StoreReceived(epoch, object.ID(), object.Version()))

		actual, err := snap.ByID(object.ID())
		require.NoError(t, err)
		assert.Equal(t, object, actual)

		received, err := snap.HaveReceivedAt(epoch, object.ID(), object.Version())
		require.NoError(t, err)
		assert.True(t, received)
	})
}
