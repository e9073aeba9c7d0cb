package admission

import (
	"time"

	"github.com/basalt-ledger/basalt-go/admission/errors"
	"github.com/basalt-ledger/basalt-go/model/basalt"
	"github.com/basalt-ledger/basalt-go/protocol"
	"github.com/basalt-ledger/basalt-go/verifier"
)

// checkPublishedPackages meters the verification cost of every package the
// transaction publishes. All packages share one tick budget, bounding the
// aggregate signing-time cost of the whole publication payload. Verdicts
// depend only on tick counts: a cached package re-charges the ticks its
// verification consumed, so a cache hit can never flip a verdict.
func (c *Checker) checkPublishedPackages(cfg protocol.Config, tx *basalt.TransactionData) error {
	if tx.IsSystemTx() {
		return nil
	}
	if _, ok := tx.Kind.(basalt.ProgrammableTransaction); !ok {
		return nil
	}

	metered := verifier.NewMetered(cfg.MaxVerifierMeterTicks)
	start := time.Now()

	err := c.meterPackages(metered, tx.NonSystemPackagesToPublish())

	// Wall-clock latency is observability only; the verdict above came from
	// the tick count. Success and timeout observations are mutually
	// exclusive.
	elapsed := time.Since(start)
	if err != nil {
		c.log.Warn().
			Err(err).
			Dur("elapsed", elapsed).
			Uint64("ticks_used", metered.Meter().Used()).
			Msg("package verification ran out of ticks")
		c.verifierMetrics.MeterPassTimedOut(elapsed)
		return errors.NewPackageVerificationTimeoutError(err)
	}
	c.verifierMetrics.MeterPassSucceeded(elapsed)
	return nil
}

// meterPackages charges the shared meter for each package, consulting the
// verified package cache by digest. Hits re-charge the recorded cost
// without re-walking the bytes; misses run the verifier and record the
// cost consumed.
func (c *Checker) meterPackages(metered *verifier.MeteredVerifier, packages []basalt.PackageModules) error {
	for _, modules := range packages {
		digest := modules.Digest()

		if ticks, ok := c.verifiedCache.Get(digest); ok {
			c.verifierMetrics.VerifiedModuleCacheHit()
			err := metered.Meter().Charge(ticks)
			if err != nil {
				return err
			}
			continue
		}

		c.verifierMetrics.VerifiedModuleCacheMiss()
		before := metered.Meter().Used()
		err := metered.MeterModuleBytes(modules)
		if err != nil {
			return err
		}
		c.verifiedCache.Add(digest, metered.Meter().Used()-before)
	}
	return nil
}
