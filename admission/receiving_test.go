package admission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basalt-ledger/basalt-go/admission/errors"
	"github.com/basalt-ledger/basalt-go/model/basalt"
	"github.com/basalt-ledger/basalt-go/protocol"
	"github.com/basalt-ledger/basalt-go/storage/inmemory"
	"github.com/basalt-ledger/basalt-go/utils/unittest"
)

func checkReceiving(t *testing.T, snap *inmemory.Snapshot, epoch basalt.EpochID, receiving []basalt.ObjectRef, inputs *basalt.InputObjects) error {
	t.Helper()
	return checkReceivingObjects(unittest.Logger(), snap, snap, protocol.Default(), epoch, receiving, inputs)
}

func TestCheckReceivingObjectsAcceptance(t *testing.T) {
	owner := unittest.AddressFixture()
	epoch := basalt.EpochID(7)

	t.Run("live object matching the claim", func(t *testing.T) {
		snap := inmemory.NewSnapshot()
		object := unittest.OwnedObjectFixture(owner)
		require.NoError(t, snap.Store(object))

		err := checkReceiving(t, snap, epoch, []basalt.ObjectRef{object.Reference()}, basalt.NewInputObjects())
		require.NoError(t, err)
	})

	t.Run("already received this epoch", func(t *testing.T) {
		snap := inmemory.NewSnapshot()
		ref := unittest.ObjectRefFixture()
		require.NoError(t, snap.StoreReceived(epoch, ref.ID, ref.Version))

		// The object is gone and the claimed digest matches nothing; the
		// recorded receipt alone carries the acceptance.
		err := checkReceiving(t, snap, epoch, []basalt.ObjectRef{ref}, basalt.NewInputObjects())
		require.NoError(t, err)
	})

	t.Run("receipt from another epoch does not count", func(t *testing.T) {
		snap := inmemory.NewSnapshot()
		ref := unittest.ObjectRefFixture()
		require.NoError(t, snap.StoreReceived(epoch-1, ref.ID, ref.Version))

		err := checkReceiving(t, snap, epoch, []basalt.ObjectRef{ref}, basalt.NewInputObjects())
		require.Error(t, err)
		assert.True(t, errors.HasErrorCode(err, errors.ErrCodeObjectNotFound))
	})

	t.Run("empty receiving set needs no feature gate", func(t *testing.T) {
		snap := inmemory.NewSnapshot()
		cfg, err := protocol.FromVersion(1)
		require.NoError(t, err)
		require.False(t, cfg.ReceivingObjectsEnabled)

		require.NoError(t, checkReceivingObjects(unittest.Logger(), snap, snap, cfg, epoch, nil, basalt.NewInputObjects()))
	})

	t.Run("feature gate", func(t *testing.T) {
		snap := inmemory.NewSnapshot()
		object := unittest.OwnedObjectFixture(owner)
		require.NoError(t, snap.Store(object))

		cfg, err := protocol.FromVersion(1)
		require.NoError(t, err)

		gateErr := checkReceivingObjects(unittest.Logger(), snap, snap, cfg, epoch,
			[]basalt.ObjectRef{object.Reference()}, basalt.NewInputObjects())
		require.Error(t, gateErr)
		assert.True(t, errors.HasErrorCode(gateErr, errors.ErrCodeUnsupportedFeature))
	})
}

func TestCheckReceivingObjectsClassification(t *testing.T) {
	owner := unittest.AddressFixture()
	epoch := basalt.EpochID(1)

	t.Run("unknown object", func(t *testing.T) {
		snap := inmemory.NewSnapshot()
		err := checkReceiving(t, snap, epoch, []basalt.ObjectRef{unittest.ObjectRefFixture()}, basalt.NewInputObjects())
		require.Error(t, err)
		assert.True(t, errors.HasErrorCode(err, errors.ErrCodeObjectNotFound))
	})

	t.Run("version already consumed", func(t *testing.T) {
		snap := inmemory.NewSnapshot()
		object := unittest.OwnedObjectFixture(owner, unittest.WithObjectVersion(4))
		require.NoError(t, snap.Store(object))

		stale := object.Reference()
		stale.Version = 3
		err := checkReceiving(t, snap, epoch, []basalt.ObjectRef{stale}, basalt.NewInputObjects())
		require.Error(t, err)
		assert.True(t, errors.HasErrorCode(err, errors.ErrCodeObjectVersionUnavailableForConsumption))
	})

	t.Run("package cannot be received", func(t *testing.T) {
		snap := inmemory.NewSnapshot()
		pkg := unittest.PackageObjectFixture()
		require.NoError(t, snap.Store(pkg))

		err := checkReceiving(t, snap, epoch, []basalt.ObjectRef{pkg.Reference()}, basalt.NewInputObjects())
		require.Error(t, err)
		assert.True(t, errors.HasErrorCode(err, errors.ErrCodeMovePackageAsObject))
	})

	t.Run("digest mismatch", func(t *testing.T) {
		snap := inmemory.NewSnapshot()
		object := unittest.OwnedObjectFixture(owner)
		require.NoError(t, snap.Store(object))

		wrong := object.Reference()
		wrong.Digest = unittest.ObjectDigestFixture()
		err := checkReceiving(t, snap, epoch, []basalt.ObjectRef{wrong}, basalt.NewInputObjects())
		require.Error(t, err)
		assert.True(t, errors.HasErrorCode(err, errors.ErrCodeInvalidObjectDigest))
	})

	t.Run("child object", func(t *testing.T) {
		snap := inmemory.NewSnapshot()
		child := unittest.ChildObjectFixture(unittest.ObjectIDFixture())
		require.NoError(t, snap.Store(child))

		err := checkReceiving(t, snap, epoch, []basalt.ObjectRef{child.Reference()}, basalt.NewInputObjects())
		require.Error(t, err)
		assert.True(t, errors.HasErrorCode(err, errors.ErrCodeInvalidChildObjectArgument))
	})

	t.Run("shared object", func(t *testing.T) {
		snap := inmemory.NewSnapshot()
		shared := unittest.SharedObjectFixture(1)
		require.NoError(t, snap.Store(shared))

		err := checkReceiving(t, snap, epoch, []basalt.ObjectRef{shared.Reference()}, basalt.NewInputObjects())
		require.Error(t, err)
		assert.True(t, errors.HasErrorCode(err, errors.ErrCodeNotSharedObject))
	})

	t.Run("immutable object", func(t *testing.T) {
		snap := inmemory.NewSnapshot()
		object := unittest.ImmutableObjectFixture()
		require.NoError(t, snap.Store(object))

		err := checkReceiving(t, snap, epoch, []basalt.ObjectRef{object.Reference()}, basalt.NewInputObjects())
		require.Error(t, err)
		assert.True(t, errors.HasErrorCode(err, errors.ErrCodeMutableParameterExpected))
	})

	t.Run("version at the sequence cap", func(t *testing.T) {
		snap := inmemory.NewSnapshot()
		ref := unittest.ObjectRefFixture()
		ref.Version = basalt.SequenceNumberMax
		err := checkReceiving(t, snap, epoch, []basalt.ObjectRef{ref}, basalt.NewInputObjects())
		require.Error(t, err)
		assert.True(t, errors.HasErrorCode(err, errors.ErrCodeInvalidSequenceNumber))
	})
}

func TestCheckReceivingObjectsCollisions(t *testing.T) {
	owner := unittest.AddressFixture()
	epoch := basalt.EpochID(1)

	t.Run("collides with a declared input", func(t *testing.T) {
		snap := inmemory.NewSnapshot()
		object := unittest.OwnedObjectFixture(owner)
		require.NoError(t, snap.Store(object))

		inputs := basalt.NewInputObjects(
			basalt.NewObjectReadResult(basalt.ImmOrOwnedObjectInput{Ref: object.Reference()}, object),
		)
		err := checkReceiving(t, snap, epoch, []basalt.ObjectRef{object.Reference()}, inputs)
		require.Error(t, err)
		assert.True(t, errors.HasErrorCode(err, errors.ErrCodeDuplicateObjectRefInput))
	})

	t.Run("repeated receiving ref", func(t *testing.T) {
		snap := inmemory.NewSnapshot()
		object := unittest.OwnedObjectFixture(owner)
		require.NoError(t, snap.Store(object))

		ref := object.Reference()
		err := checkReceiving(t, snap, epoch, []basalt.ObjectRef{ref, ref}, basalt.NewInputObjects())
		require.Error(t, err)
		assert.True(t, errors.HasErrorCode(err, errors.ErrCodeDuplicateObjectRefInput))
	})

	t.Run("receiving refs count toward the input budget", func(t *testing.T) {
		snap := inmemory.NewSnapshot()
		cfg := protocol.Default()

		inputs := basalt.NewInputObjects()
		for i := 0; i < cfg.MaxInputObjects; i++ {
			inputs.Push(basalt.NewObjectReadResult(basalt.MovePackageInput{PackageID: unittest.ObjectIDFixture()}, nil))
		}
		err := checkReceivingObjects(unittest.Logger(), snap, snap, cfg, epoch,
			[]basalt.ObjectRef{unittest.ObjectRefFixture()}, inputs)
		require.Error(t, err)
		assert.True(t, errors.HasErrorCode(err, errors.ErrCodeSizeLimitExceeded))
	})
}
