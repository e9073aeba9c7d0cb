package admission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basalt-ledger/basalt-go/admission/errors"
	"github.com/basalt-ledger/basalt-go/model/basalt"
	"github.com/basalt-ledger/basalt-go/module/metrics"
	"github.com/basalt-ledger/basalt-go/protocol"
	"github.com/basalt-ledger/basalt-go/utils/unittest"
)

// verifierMetricsRecorder counts verifier observations for assertions.
type verifierMetricsRecorder struct {
	successes int
	timeouts  int
	hits      int
	misses    int
}

func (r *verifierMetricsRecorder) MeterPassSucceeded(time.Duration) { r.successes++ }
func (r *verifierMetricsRecorder) MeterPassTimedOut(time.Duration)  { r.timeouts++ }
func (r *verifierMetricsRecorder) VerifiedModuleCacheHit()          { r.hits++ }
func (r *verifierMetricsRecorder) VerifiedModuleCacheMiss()         { r.misses++ }

func newRecordingChecker(t *testing.T) (*Checker, *verifierMetricsRecorder) {
	t.Helper()
	recorder := &verifierMetricsRecorder{}
	checker, err := New(unittest.Logger(), metrics.NewNoopCollector(), recorder, DefaultVerifiedCacheSize)
	require.NoError(t, err)
	return checker, recorder
}

func publishTx(modules ...[]byte) *basalt.TransactionData {
	return unittest.TransactionDataFixture(unittest.WithKind(basalt.ProgrammableTransaction{
		Commands: []basalt.Command{basalt.PublishCommand{Modules: modules}},
	}))
}

func TestCheckPublishedPackages(t *testing.T) {
	cfg := protocol.Default()

	t.Run("transaction without publications still observes a pass", func(t *testing.T) {
		checker, recorder := newRecordingChecker(t)
		require.NoError(t, checker.checkPublishedPackages(cfg, unittest.TransactionDataFixture()))
		assert.Equal(t, 1, recorder.successes)
		assert.Equal(t, 0, recorder.timeouts)
		assert.Equal(t, 0, recorder.misses)
	})

	t.Run("system kinds skip the verifier entirely", func(t *testing.T) {
		checker, recorder := newRecordingChecker(t)
		tx := unittest.TransactionDataFixture(unittest.WithKind(basalt.ChangeEpoch{Epoch: 2}))
		require.NoError(t, checker.checkPublishedPackages(cfg, tx))
		assert.Equal(t, 0, recorder.successes)
		assert.Equal(t, 0, recorder.timeouts)
	})

	t.Run("publication within budget", func(t *testing.T) {
		checker, recorder := newRecordingChecker(t)
		err := checker.checkPublishedPackages(cfg, publishTx(unittest.ModuleBytesFixture(1024)))
		require.NoError(t, err)
		assert.Equal(t, 1, recorder.successes)
		assert.Equal(t, 1, recorder.misses)
		assert.Equal(t, 0, recorder.hits)
	})

	t.Run("malformed modules cost nothing", func(t *testing.T) {
		checker, recorder := newRecordingChecker(t)
		err := checker.checkPublishedPackages(cfg, publishTx([]byte("not a module")))
		require.NoError(t, err)
		assert.Equal(t, 1, recorder.successes)
	})

	t.Run("budget exhaustion", func(t *testing.T) {
		checker, recorder := newRecordingChecker(t)
		// Two modules whose combined tick cost exceeds the shared budget,
		// while each stays under the per-module byte limit.
		tx := publishTx(
			unittest.ModuleBytesFixture(119_900),
			unittest.ModuleBytesFixture(119_900),
		)
		err := checker.checkPublishedPackages(cfg, tx)
		require.Error(t, err)
		assert.True(t, errors.HasErrorCode(err, errors.ErrCodePackageVerificationTimeout))
		assert.Equal(t, 1, recorder.timeouts)
		assert.Equal(t, 0, recorder.successes)
	})
}

func TestVerifiedPackageCache(t *testing.T) {
	cfg := protocol.Default()
	checker, recorder := newRecordingChecker(t)

	// Each package costs 1.2M ticks against a 2.2M budget: one fits, two
	// do not.
	moduleX := unittest.ModuleBytesFixture(119_900)
	moduleY := unittest.ModuleBytesFixture(119_900)

	overBudget := unittest.TransactionDataFixture(unittest.WithKind(basalt.ProgrammableTransaction{
		Commands: []basalt.Command{
			basalt.PublishCommand{Modules: [][]byte{moduleX}},
			basalt.PublishCommand{Modules: [][]byte{moduleY}},
		},
	}))

	t.Run("cold over-budget publication times out", func(t *testing.T) {
		err := checker.checkPublishedPackages(cfg, overBudget)
		require.Error(t, err)
		assert.True(t, errors.HasErrorCode(err, errors.ErrCodePackageVerificationTimeout))
		assert.Equal(t, 2, recorder.misses)
	})

	t.Run("single package fits and hits the cache", func(t *testing.T) {
		err := checker.checkPublishedPackages(cfg, publishTx(moduleX))
		require.NoError(t, err)
		assert.Equal(t, 1, recorder.hits)
	})

	t.Run("cache hit cannot flip the verdict", func(t *testing.T) {
		// The first package is cached now; its recorded cost is re-charged,
		// so the combination still exceeds the budget.
		err := checker.checkPublishedPackages(cfg, overBudget)
		require.Error(t, err)
		assert.True(t, errors.HasErrorCode(err, errors.ErrCodePackageVerificationTimeout))
		assert.Equal(t, 2, recorder.hits)
	})
}
