package inmemory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basalt-ledger/basalt-go/model/basalt"
	"github.com/basalt-ledger/basalt-go/storage"
	"github.com/basalt-ledger/basalt-go/storage/inmemory"
	"github.com/basalt-ledger/basalt-go/utils/unittest"
)

func TestObjects(t *testing.T) {
	owner := unittest.AddressFixture()

	t.Run("store and retrieve", func(t *testing.T) {
		store := inmemory.NewObjects()
		object := unittest.OwnedObjectFixture(owner)

		_, err := store.ByID(object.ID())
		require.ErrorIs(t, err, storage.ErrNotFound)

		require.NoError(t, store.Store(object))

		actual, err := store.ByID(object.ID())
		require.NoError(t, err)
		assert.Equal(t, object, actual)
	})

	t.Run("live head follows the latest store", func(t *testing.T) {
		store := inmemory.NewObjects()
		id := unittest.ObjectIDFixture()

		v1 := unittest.OwnedObjectFixture(owner, unittest.WithObjectID(id))
		v2 := unittest.OwnedObjectFixture(owner, unittest.WithObjectID(id), unittest.WithObjectVersion(2))
		require.NoError(t, store.Store(v1))
		require.NoError(t, store.Store(v2))

		live, err := store.ByID(id)
		require.NoError(t, err)
		assert.Equal(t, basalt.SequenceNumber(2), live.Version())

		old, err := store.ByIDVersion(id, 1)
		require.NoError(t, err)
		assert.Equal(t, v1, old)

		_, err = store.ByIDVersion(id, 3)
		require.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("tombstone retires the live head", func(t *testing.T) {
		store := inmemory.NewObjects()
		shared := unittest.SharedObjectFixture(1)
		require.NoError(t, store.Store(shared))

		tombstone := basalt.DeletedSharedObject{
			Version:   4,
			DeletedBy: unittest.TransactionDigestFixture(),
		}
		require.NoError(t, store.StoreTombstone(shared.ID(), tombstone))

		actual, err := store.TombstoneByID(shared.ID())
		require.NoError(t, err)
		assert.Equal(t, tombstone, *actual)

		_, err = store.ByID(shared.ID())
		require.ErrorIs(t, err, storage.ErrNotFound)

		retained, err := store.ByIDVersion(shared.ID(), shared.Version())
		require.NoError(t, err)
		assert.Equal(t, shared, retained)
	})
}

func TestMarkers(t *testing.T) {
	store := inmemory.NewMarkers()
	epoch := basalt.EpochID(5)
	objectID := unittest.ObjectIDFixture()

	received, err := store.HaveReceivedAt(epoch, objectID, 1)
	require.NoError(t, err)
	assert.False(t, received)

	require.NoError(t, store.StoreReceived(epoch, objectID, 1))

	received, err = store.HaveReceivedAt(epoch, objectID, 1)
	require.NoError(t, err)
	assert.True(t, received)

	received, err = store.HaveReceivedAt(epoch, objectID, 2)
	require.NoError(t, err)
	assert.False(t, received)

	received, err = store.HaveReceivedAt(epoch+1, objectID, 1)
	require.NoError(t, err)
	assert.False(t, received)
}

func TestSnapshot(t *testing.T) {
	snap := inmemory.NewSnapshot()
	epoch := basalt.EpochID(1)

	object := unittest.OwnedObjectFixture(unittest.AddressFixture())
	require.NoError(t, snap.Store(object))
	require.NoError(t, snap.StoreReceived(epoch, object.ID(), object.Version()))

	actual, err := snap.ByID(object.ID())
	require.NoError(t, err)
	assert.Equal(t, object, actual)

	received, err := snap.HaveReceivedAt(epoch, object.ID(), object.Version())
	require.NoError(t, err)
	assert.True(t, received)
}
