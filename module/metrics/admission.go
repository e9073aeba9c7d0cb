package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/basalt-ledger/basalt-go/module"
)

// AdmissionCollector holds the metrics for the transaction admission checks
type AdmissionCollector struct {
	transactionAdmitted prometheus.Counter
	transactionRejected *prometheus.CounterVec
}

// interface check
var _ module.AdmissionMetrics = (*AdmissionCollector)(nil)

// NewAdmissionCollector creates a new instance of AdmissionCollector
func NewAdmissionCollector() *AdmissionCollector {
	return &AdmissionCollector{
		transactionAdmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name:      "transaction_admission_successes_total",
			Namespace: namespaceAdmission,
			Subsystem: subsystemTransactionAdmission,
			Help:      "counter for transactions that passed all admission checks",
		}),
		transactionRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:      "transaction_admission_rejections_total",
			Namespace: namespaceAdmission,
			Subsystem: subsystemTransactionAdmission,
			Help:      "counter for transactions rejected by an admission check",
		}, []string{"reason"}),
	}
}

// TransactionAdmitted tracks the number of admitted transactions
func (ac *AdmissionCollector) TransactionAdmitted() {
	ac.transactionAdmitted.Inc()
}

// TransactionRejected tracks the number of rejected transactions with the
// failing check as the reason
func (ac *AdmissionCollector) TransactionRejected(reason string) {
	ac.transactionRejected.WithLabelValues(reason).Inc()
}
