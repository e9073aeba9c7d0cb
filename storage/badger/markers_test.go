package badger_test

import (
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basalt-ledger/basalt-go/model/basalt"
	badgerstorage "github.com/basalt-ledger/basalt-go/storage/badger"
	"github.com/basalt-ledger/basalt-go/utils/unittest"
)

func TestReceivedMarkers(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := badgerstorage.NewMarkers(db)
		epoch := basalt.EpochID(7)
		objectID := unittest.ObjectIDFixture()
		version := basalt.SequenceNumber(3)

		received, err := store.HaveReceivedAt(epoch, objectID, version)
		require.NoError(t, err)
		assert.False(t, received)

		require.NoError(t, store.StoreReceived(epoch, objectID, version))

		received, err = store.HaveReceivedAt(epoch, objectID, version)
		require.NoError(t, err)
		assert.True(t, received)

		// Markers are exact: a different version is a different receipt.
		received, err = store.HaveReceivedAt(epoch, objectID, version+1)
		require.NoError(t, err)
		assert.False(t, received)

		// Markers do not carry across epochs.
		received, err = store.HaveReceivedAt(epoch+1, objectID, version)
		require.NoError(t, err)
		assert.False(t, received)
	})
}

func TestReceivedMarkerIdempotent(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := badgerstorage.NewMarkers(db)
		epoch := basalt.EpochID(1)
		objectID := unittest.ObjectIDFixture()

		require.NoError(t, store.StoreReceived(epoch, objectID, 1))
		require.NoError(t, store.StoreReceived(epoch, objectID, 1))

		received, err := store.HaveReceivedAt(epoch, objectID, 1)
		require.NoError(t, err)
		assert.True(t, received)
	})
}
