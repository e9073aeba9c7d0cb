package admission

import (
	"github.com/basalt-ledger/basalt-go/model/basalt"
)

// CheckedInputObjects witnesses that a transaction's inputs passed every
// admission check. Only this package can construct one, so holding it is
// proof the checks ran; execution consumes it without re-validating.
type CheckedInputObjects struct {
	inputs *basalt.InputObjects
}

func newCheckedInputObjects(inputs *basalt.InputObjects) CheckedInputObjects {
	return CheckedInputObjects{inputs: inputs}
}

// Inputs returns the validated input set.
func (c CheckedInputObjects) Inputs() *basalt.InputObjects {
	return c.inputs
}
