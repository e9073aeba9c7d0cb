package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/basalt-ledger/basalt-go/module"
)

var _ module.BytecodeVerifierMetrics = (*BytecodeVerifierCollector)(nil)

// BytecodeVerifierCollector holds the metrics for the metered bytecode
// verifier used during package publication checks.
type BytecodeVerifierCollector struct {
	meterPassSuccessDuration prometheus.Histogram
	meterPassTimeoutDuration prometheus.Histogram

	verifiedModuleCacheHits   prometheus.Counter
	verifiedModuleCacheMisses prometheus.Counter
}

func NewBytecodeVerifierCollector() *BytecodeVerifierCollector {
	meterPassSuccessDuration := promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespaceAdmission,
		Subsystem: subsystemBytecodeVerifier,
		Name:      "meter_pass_success_duration_ms",
		Help:      "the duration of metered verification passes that completed within their tick limit",
		Buckets:   []float64{0.5, 1, 5, 10, 50, 100},
	})

	meterPassTimeoutDuration := promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespaceAdmission,
		Subsystem: subsystemBytecodeVerifier,
		Name:      "meter_pass_timeout_duration_ms",
		Help:      "the duration of metered verification passes that ran out of ticks",
		Buckets:   []float64{0.5, 1, 5, 10, 50, 100},
	})

	verifiedModuleCacheHits := promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespaceAdmission,
		Subsystem: subsystemBytecodeVerifier,
		Name:      "verified_module_cache_hits_total",
		Help:      "number of package verifications answered from the verified module cache",
	})

	verifiedModuleCacheMisses := promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespaceAdmission,
		Subsystem: subsystemBytecodeVerifier,
		Name:      "verified_module_cache_misses_total",
		Help:      "number of package verifications that fell through the verified module cache",
	})

	return &BytecodeVerifierCollector{
		meterPassSuccessDuration:  meterPassSuccessDuration,
		meterPassTimeoutDuration:  meterPassTimeoutDuration,
		verifiedModuleCacheHits:   verifiedModuleCacheHits,
		verifiedModuleCacheMisses: verifiedModuleCacheMisses,
	}
}

// MeterPassSucceeded records the duration of a verification pass that
// completed within its tick limit.
func (vc *BytecodeVerifierCollector) MeterPassSucceeded(duration time.Duration) {
	vc.meterPassSuccessDuration.Observe(float64(duration.Milliseconds()))
}

// MeterPassTimedOut records the duration of a verification pass that
// exhausted its tick limit.
func (vc *BytecodeVerifierCollector) MeterPassTimedOut(duration time.Duration) {
	vc.meterPassTimeoutDuration.Observe(float64(duration.Milliseconds()))
}

// VerifiedModuleCacheHit counts a lookup answered from the verified module
// cache.
func (vc *BytecodeVerifierCollector) VerifiedModuleCacheHit() {
	vc.verifiedModuleCacheHits.Inc()
}

// VerifiedModuleCacheMiss counts a lookup that missed the verified module
// cache.
func (vc *BytecodeVerifierCollector) VerifiedModuleCacheMiss() {
	vc.verifiedModuleCacheMisses.Inc()
}
