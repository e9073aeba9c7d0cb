package admission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basalt-ledger/basalt-go/admission/errors"
	"github.com/basalt-ledger/basalt-go/model/basalt"
	"github.com/basalt-ledger/basalt-go/protocol"
	"github.com/basalt-ledger/basalt-go/utils/unittest"
)

func TestCheckVersionSupported(t *testing.T) {
	t.Run("supported", func(t *testing.T) {
		tx := unittest.TransactionDataFixture()
		require.NoError(t, checkVersionSupported(tx))
	})

	t.Run("unsupported", func(t *testing.T) {
		for _, version := range []basalt.ProtocolVersion{0, protocol.MaxSupportedVersion + 1} {
			tx := unittest.TransactionDataFixture(unittest.WithProtocolVersion(version))
			err := checkVersionSupported(tx)
			require.Error(t, err)
			assert.True(t, errors.HasErrorCode(err, errors.ErrCodeUnsupportedProtocolVersion))
		}
	})
}

func TestValidityCheck(t *testing.T) {
	cfg := protocol.Default()

	t.Run("well formed transaction passes", func(t *testing.T) {
		tx := unittest.TransactionDataFixture()
		require.NoError(t, validityCheck(cfg, tx, 1))
	})

	t.Run("missing gas payment", func(t *testing.T) {
		tx := unittest.TransactionDataFixture(unittest.WithGasPayment())
		err := validityCheck(cfg, tx, 1)
		require.Error(t, err)
		assert.True(t, errors.HasErrorCode(err, errors.ErrCodeMissingGasPayment))
	})

	t.Run("too many gas payments", func(t *testing.T) {
		payment := make([]basalt.ObjectRef, cfg.MaxGasPayments+1)
		for i := range payment {
			payment[i] = unittest.ObjectRefFixture()
		}
		tx := unittest.TransactionDataFixture(unittest.WithGasPayment(payment...))
		err := validityCheck(cfg, tx, 1)
		require.Error(t, err)
		assert.True(t, errors.HasErrorCode(err, errors.ErrCodeSizeLimitExceeded))
	})

	t.Run("system kind rejected", func(t *testing.T) {
		for _, kind := range []basalt.TransactionKind{
			basalt.GenesisTransaction{},
			basalt.ConsensusCommitPrologue{Round: 1},
			basalt.ChangeEpoch{Epoch: 2},
			basalt.AuthenticatorStateUpdate{Round: 1},
		} {
			tx := unittest.TransactionDataFixture(unittest.WithKind(kind))
			err := validityCheckNoGas(cfg, tx, 1)
			require.Error(t, err, "kind %s", kind)
			assert.True(t, errors.HasErrorCode(err, errors.ErrCodeUnsupportedTransactionKind))
		}
	})

	t.Run("expired transaction", func(t *testing.T) {
		tx := unittest.TransactionDataFixture(unittest.WithExpiration(4))
		require.NoError(t, validityCheck(cfg, tx, 4))

		err := validityCheck(cfg, tx, 5)
		require.Error(t, err)
		assert.True(t, errors.HasErrorCode(err, errors.ErrCodeTransactionExpired))
	})
}

func TestKindValidityCheck(t *testing.T) {
	cfg := protocol.Default()

	t.Run("input arity bounded", func(t *testing.T) {
		inputs := make([]basalt.CallArg, cfg.MaxInputObjects+1)
		for i := range inputs {
			inputs[i] = basalt.PureArg{Bytes: []byte{byte(i)}}
		}
		err := kindValidityCheck(cfg, basalt.ProgrammableTransaction{Inputs: inputs})
		require.Error(t, err)
		assert.True(t, errors.HasErrorCode(err, errors.ErrCodeSizeLimitExceeded))
	})

	t.Run("module count bounded", func(t *testing.T) {
		modules := make([][]byte, cfg.MaxPublishedModules+1)
		for i := range modules {
			modules[i] = unittest.ModuleBytesFixture(8)
		}
		err := kindValidityCheck(cfg, basalt.ProgrammableTransaction{
			Commands: []basalt.Command{basalt.PublishCommand{Modules: modules}},
		})
		require.Error(t, err)
		assert.True(t, errors.HasErrorCode(err, errors.ErrCodeSizeLimitExceeded))
	})

	t.Run("module size bounded", func(t *testing.T) {
		err := kindValidityCheck(cfg, basalt.ProgrammableTransaction{
			Commands: []basalt.Command{basalt.UpgradeCommand{
				Modules: [][]byte{unittest.ModuleBytesFixture(cfg.MaxModuleBytes)},
				Package: unittest.ObjectIDFixture(),
			}},
		})
		require.Error(t, err)
		assert.True(t, errors.HasErrorCode(err, errors.ErrCodeSizeLimitExceeded))
	})

	t.Run("bounds hold exactly at the limit", func(t *testing.T) {
		modules := make([][]byte, cfg.MaxPublishedModules)
		for i := range modules {
			modules[i] = unittest.ModuleBytesFixture(16)
		}
		require.NoError(t, kindValidityCheck(cfg, basalt.ProgrammableTransaction{
			Commands: []basalt.Command{basalt.PublishCommand{Modules: modules}},
		}))
	})
}

func TestCheckInputArity(t *testing.T) {
	cfg := protocol.Default()
	require.NoError(t, checkInputArity(cfg, cfg.MaxInputObjects))

	err := checkInputArity(cfg, cfg.MaxInputObjects+1)
	require.Error(t, err)
	assert.True(t, errors.HasErrorCode(err, errors.ErrCodeSizeLimitExceeded))
}
