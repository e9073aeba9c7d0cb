package module

import "time"

// AdmissionMetrics exposes counters for the outcome of transaction admission
// checks.
type AdmissionMetrics interface {
	// TransactionAdmitted tracks the number of transactions that passed all
	// admission checks.
	TransactionAdmitted()

	// TransactionRejected tracks the number of transactions rejected by an
	// admission check, labelled by the rejection reason.
	TransactionRejected(reason string)
}

// BytecodeVerifierMetrics encapsulates the metrics collected by the metered
// bytecode verifier while checking packages submitted for publication.
type BytecodeVerifierMetrics interface {
	// MeterPassSucceeded reports the duration of a metered verification pass
	// that completed within its tick limit.
	MeterPassSucceeded(duration time.Duration)

	// MeterPassTimedOut reports the duration of a metered verification pass
	// that ran out of ticks.
	MeterPassTimedOut(duration time.Duration)

	// VerifiedModuleCacheHit tracks lookups answered from the verified module
	// cache.
	VerifiedModuleCacheHit()

	// VerifiedModuleCacheMiss tracks lookups that fell through the verified
	// module cache.
	VerifiedModuleCacheMiss()
}
