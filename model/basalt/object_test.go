package basalt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basalt-ledger/basalt-go/model/basalt"
	"github.com/basalt-ledger/basalt-go/utils/unittest"
)

func TestObjectOwnership(t *testing.T) {
	owner := unittest.AddressFixture()

	t.Run("address owned", func(t *testing.T) {
		object := unittest.OwnedObjectFixture(owner)
		assert.True(t, object.IsAddressOwned())
		assert.False(t, object.IsImmutable())
		assert.False(t, object.IsShared())
		assert.False(t, object.IsPackage())
		_, shared := object.InitialSharedVersion()
		assert.False(t, shared)
	})

	t.Run("immutable", func(t *testing.T) {
		object := unittest.ImmutableObjectFixture()
		assert.True(t, object.IsImmutable())
		assert.False(t, object.IsAddressOwned())
		assert.False(t, object.IsShared())
	})

	t.Run("shared", func(t *testing.T) {
		object := unittest.SharedObjectFixture(7)
		assert.True(t, object.IsShared())
		assert.False(t, object.IsAddressOwned())
		initial, shared := object.InitialSharedVersion()
		require.True(t, shared)
		assert.Equal(t, basalt.SequenceNumber(7), initial)
	})

	t.Run("child", func(t *testing.T) {
		parent := unittest.ObjectIDFixture()
		object := unittest.ChildObjectFixture(parent)
		assert.False(t, object.IsAddressOwned())
		assert.False(t, object.IsShared())
		assert.False(t, object.IsImmutable())
	})

	t.Run("package", func(t *testing.T) {
		object := unittest.PackageObjectFixture()
		assert.True(t, object.IsPackage())
		assert.True(t, object.IsImmutable())
	})
}

func TestObjectDigest(t *testing.T) {
	owner := unittest.AddressFixture()
	object := unittest.OwnedObjectFixture(owner)

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, object.Digest(), object.Digest())
	})

	t.Run("content sensitive", func(t *testing.T) {
		other := unittest.OwnedObjectFixture(owner, unittest.WithObjectID(object.ID()))
		other.Move.Version = object.Move.Version
		other.PreviousTransaction = object.PreviousTransaction
		other.Move.Contents = append([]byte(nil), object.Move.Contents...)
		other.Move.Contents[0]++
		assert.NotEqual(t, object.Digest(), other.Digest())
	})

	t.Run("version sensitive", func(t *testing.T) {
		before := object.Digest()
		object.Move.Version++
		assert.NotEqual(t, before, object.Digest())
	})
}

func TestObjectReference(t *testing.T) {
	object := unittest.OwnedObjectFixture(unittest.AddressFixture(), unittest.WithObjectVersion(42))
	ref := object.Reference()
	assert.Equal(t, object.ID(), ref.ID)
	assert.Equal(t, basalt.SequenceNumber(42), ref.Version)
	assert.Equal(t, object.Digest(), ref.Digest)
}

func TestGasCoin(t *testing.T) {
	owner := unittest.AddressFixture()

	t.Run("decodes to its balance", func(t *testing.T) {
		object := basalt.NewGasCoinObject(unittest.ObjectIDFixture(), 3, owner, 1_000_000)
		require.True(t, object.IsGasCoin())
		assert.True(t, object.IsAddressOwned())
		assert.Equal(t, basalt.SequenceNumber(3), object.Version())

		coin, ok := object.AsCoin()
		require.True(t, ok)
		assert.Equal(t, uint64(1_000_000), coin.Balance)
	})

	t.Run("non-coin object does not decode", func(t *testing.T) {
		object := unittest.OwnedObjectFixture(owner)
		assert.False(t, object.IsGasCoin())
		_, ok := object.AsCoin()
		assert.False(t, ok)
	})

	t.Run("coin type with garbage content does not decode", func(t *testing.T) {
		object := basalt.NewGasCoinObject(unittest.ObjectIDFixture(), 1, owner, 5)
		object.Move.Contents = []byte{0xff, 0xff}
		_, ok := object.AsCoin()
		assert.False(t, ok)
	})
}

func TestLamportIncrement(t *testing.T) {
	assert.Equal(t, basalt.SequenceNumber(1), basalt.LamportIncrement(nil))
	assert.Equal(t, basalt.SequenceNumber(8), basalt.LamportIncrement([]basalt.SequenceNumber{3, 7, 5}))
}
