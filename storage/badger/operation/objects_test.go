package operation

import (
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basalt-ledger/basalt-go/model/basalt"
	"github.com/basalt-ledger/basalt-go/storage"
	"github.com/basalt-ledger/basalt-go/utils/unittest"
)

func TestObjectInsertRetrieve(t *testing.T) {
	fixtures := map[string]*basalt.Object{
		"address owned": unittest.OwnedObjectFixture(unittest.AddressFixture()),
		"child":         unittest.ChildObjectFixture(unittest.ObjectIDFixture()),
		"shared":        unittest.SharedObjectFixture(3),
		"immutable":     unittest.ImmutableObjectFixture(),
		"package":       unittest.PackageObjectFixture(),
	}
	for name, expected := range fixtures {
		t.Run(name, func(t *testing.T) {
			unittest.RunWithBadgerDB(t, func(db *badger.DB) {
				err := db.Update(InsertObject(expected))
				require.NoError(t, err)

				var actual basalt.Object
				err = db.View(RetrieveObject(expected.ID(), expected.Version(), &actual))
				require.NoError(t, err)
				assert.Equal(t, *expected, actual)
			})
		})
	}
}

func TestLiveVersionIndex(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		objectID := unittest.ObjectIDFixture()

		var version basalt.SequenceNumber
		err := db.View(RetrieveLiveVersion(objectID, &version))
		require.ErrorIs(t, err, storage.ErrNotFound)

		err = db.Update(UpsertLiveVersion(objectID, 1))
		require.NoError(t, err)
		err = db.Update(UpsertLiveVersion(objectID, 2))
		require.NoError(t, err)

		err = db.View(RetrieveLiveVersion(objectID, &version))
		require.NoError(t, err)
		assert.Equal(t, basalt.SequenceNumber(2), version)

		err = db.Update(RemoveLiveVersion(objectID))
		require.NoError(t, err)
		err = db.View(RetrieveLiveVersion(objectID, &version))
		require.ErrorIs(t, err, storage.ErrNotFound)

		err = db.Update(RemoveLiveVersion(objectID))
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestTombstoneInsertRetrieve(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		objectID := unittest.ObjectIDFixture()
		expected := basalt.DeletedSharedObject{
			Version:   9,
			DeletedBy: unittest.TransactionDigestFixture(),
		}

		err := db.Update(InsertTombstone(objectID, expected))
		require.NoError(t, err)

		var actual basalt.DeletedSharedObject
		err = db.View(RetrieveTombstone(objectID, &actual))
		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})
}

func TestReceivedMarker(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		epoch := basalt.EpochID(4)
		objectID := unittest.ObjectIDFixture()

		var exists bool
		err := db.View(CheckReceivedMarker(epoch, objectID, 1, &exists))
		require.NoError(t, err)
		assert.False(t, exists)

		err = db.Update(InsertReceivedMarker(epoch, objectID, 1))
		require.NoError(t, err)

		err = db.View(CheckReceivedMarker(epoch, objectID, 1, &exists))
		require.NoError(t, err)
		assert.True(t, exists)
	})
}
