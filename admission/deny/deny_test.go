package deny_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basalt-ledger/basalt-go/admission/deny"
	"github.com/basalt-ledger/basalt-go/admission/errors"
	"github.com/basalt-ledger/basalt-go/model/basalt"
	"github.com/basalt-ledger/basalt-go/utils/unittest"
)

// check runs the gate over a transaction, deriving the input kinds and
// receiving refs the way the signing pipeline does.
func check(t *testing.T, cfg deny.Config, tx *basalt.TransactionData) error {
	kinds, err := tx.InputObjectKinds()
	require.NoError(t, err)
	return deny.CheckForSigning(cfg, tx, unittest.SignaturesFixture(1), kinds, tx.ReceivingObjects())
}

func requireDenied(t *testing.T, err error) {
	require.Error(t, err)
	assert.True(t, errors.HasErrorCode(err, errors.ErrCodeTransactionDenied))
}

func TestDenyNothingByDefault(t *testing.T) {
	tx := unittest.TransactionDataFixture(unittest.WithKind(basalt.ProgrammableTransaction{
		Inputs: []basalt.CallArg{
			basalt.ObjectArg{Kind: basalt.SharedObjectInput{ObjectID: unittest.ObjectIDFixture(), InitialSharedVersion: 1}},
			basalt.ReceivingArg{Ref: unittest.ObjectRefFixture()},
		},
		Commands: []basalt.Command{
			basalt.PublishCommand{Modules: [][]byte{unittest.ModuleBytesFixture(8)}},
		},
	}))
	require.NoError(t, check(t, deny.Config{}, tx))
}

func TestDisableUserTransactions(t *testing.T) {
	cfg := deny.Config{DisableUserTransactions: true}
	requireDenied(t, check(t, cfg, unittest.TransactionDataFixture()))
}

func TestDeniedAddresses(t *testing.T) {
	denied := unittest.AddressFixture()
	cfg := deny.Config{DeniedAddresses: []basalt.Address{denied}}

	t.Run("sender", func(t *testing.T) {
		requireDenied(t, check(t, cfg, unittest.TransactionDataFixture(unittest.WithSender(denied))))
	})

	t.Run("gas owner", func(t *testing.T) {
		requireDenied(t, check(t, cfg, unittest.TransactionDataFixture(unittest.WithGasOwner(denied))))
	})

	t.Run("unrelated transaction passes", func(t *testing.T) {
		require.NoError(t, check(t, cfg, unittest.TransactionDataFixture()))
	})
}

func TestDeniedObjects(t *testing.T) {
	denied := unittest.ObjectIDFixture()
	cfg := deny.Config{DeniedObjects: []basalt.ObjectID{denied}}

	t.Run("declared input", func(t *testing.T) {
		tx := unittest.TransactionDataFixture(unittest.WithKind(basalt.ProgrammableTransaction{
			Inputs: []basalt.CallArg{
				basalt.ObjectArg{Kind: basalt.SharedObjectInput{ObjectID: denied, InitialSharedVersion: 1}},
			},
		}))
		requireDenied(t, check(t, cfg, tx))
	})

	t.Run("gas payment", func(t *testing.T) {
		// Gas refs surface among the input kinds, so the object rule covers
		// them too.
		ref := unittest.ObjectRefFixture()
		ref.ID = denied
		tx := unittest.TransactionDataFixture(unittest.WithGasPayment(ref))
		requireDenied(t, check(t, cfg, tx))
	})

	t.Run("receiving ref", func(t *testing.T) {
		tx := unittest.TransactionDataFixture(unittest.WithKind(basalt.ProgrammableTransaction{
			Inputs: []basalt.CallArg{
				basalt.ReceivingArg{Ref: basalt.ObjectRef{ID: denied, Version: 1, Digest: unittest.ObjectDigestFixture()}},
			},
		}))
		requireDenied(t, check(t, cfg, tx))
	})
}

func TestDisableSharedObjects(t *testing.T) {
	cfg := deny.Config{DisableSharedObjects: true}

	tx := unittest.TransactionDataFixture(unittest.WithKind(basalt.ProgrammableTransaction{
		Inputs: []basalt.CallArg{
			basalt.ObjectArg{Kind: basalt.SharedObjectInput{ObjectID: unittest.ObjectIDFixture(), InitialSharedVersion: 1}},
		},
	}))
	requireDenied(t, check(t, cfg, tx))

	owned := unittest.TransactionDataFixture(unittest.WithKind(basalt.ProgrammableTransaction{
		Inputs: []basalt.CallArg{
			basalt.ObjectArg{Kind: basalt.ImmOrOwnedObjectInput{Ref: unittest.ObjectRefFixture()}},
		},
	}))
	require.NoError(t, check(t, cfg, owned))
}

func TestDisableReceiving(t *testing.T) {
	cfg := deny.Config{DisableReceiving: true}

	tx := unittest.TransactionDataFixture(unittest.WithKind(basalt.ProgrammableTransaction{
		Inputs: []basalt.CallArg{
			basalt.ReceivingArg{Ref: unittest.ObjectRefFixture()},
		},
	}))
	requireDenied(t, check(t, cfg, tx))

	require.NoError(t, check(t, cfg, unittest.TransactionDataFixture()))
}

func TestDisablePublishing(t *testing.T) {
	cfg := deny.Config{DisablePublishing: true}

	t.Run("publish command", func(t *testing.T) {
		tx := unittest.TransactionDataFixture(unittest.WithKind(basalt.ProgrammableTransaction{
			Commands: []basalt.Command{
				basalt.PublishCommand{Modules: [][]byte{unittest.ModuleBytesFixture(8)}},
			},
		}))
		requireDenied(t, check(t, cfg, tx))
	})

	t.Run("upgrade command", func(t *testing.T) {
		tx := unittest.TransactionDataFixture(unittest.WithKind(basalt.ProgrammableTransaction{
			Commands: []basalt.Command{
				basalt.UpgradeCommand{Modules: [][]byte{unittest.ModuleBytesFixture(8)}, Package: unittest.ObjectIDFixture()},
			},
		}))
		requireDenied(t, check(t, cfg, tx))
	})

	t.Run("other commands pass", func(t *testing.T) {
		tx := unittest.TransactionDataFixture(unittest.WithKind(basalt.ProgrammableTransaction{
			Commands: []basalt.Command{
				basalt.MoveCallCommand{Package: unittest.ObjectIDFixture(), Module: "m", Function: "f"},
			},
		}))
		require.NoError(t, check(t, cfg, tx))
	})
}
