package metrics

// Prometheus metric namespaces
const (
	namespaceAdmission = "admission"
)

// Admission subsystems
const (
	subsystemTransactionAdmission = "transaction_admission"
	subsystemBytecodeVerifier     = "bytecode_verifier"
)
