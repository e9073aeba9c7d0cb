package metrics

import (
	"time"

	"github.com/basalt-ledger/basalt-go/module"
)

type NoopCollector struct{}

func NewNoopCollector() *NoopCollector {
	nc := &NoopCollector{}
	return nc
}

var _ module.AdmissionMetrics = (*NoopCollector)(nil)
var _ module.BytecodeVerifierMetrics = (*NoopCollector)(nil)

func (nc *NoopCollector) TransactionAdmitted()                      {}
func (nc *NoopCollector) TransactionRejected(reason string)         {}
func (nc *NoopCollector) MeterPassSucceeded(duration time.Duration) {}
func (nc *NoopCollector) MeterPassTimedOut(duration time.Duration)  {}
func (nc *NoopCollector) VerifiedModuleCacheHit()                   {}
func (nc *NoopCollector) VerifiedModuleCacheMiss()                  {}
