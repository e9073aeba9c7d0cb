package admission

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/basalt-ledger/basalt-go/admission/deny"
	"github.com/basalt-ledger/basalt-go/model/basalt"
	"github.com/basalt-ledger/basalt-go/protocol"
)

// BatchRequest is one signing-path admission call: a transaction plus the
// snapshot and parameters to check it against.
type BatchRequest struct {
	Snapshot          Snapshot
	Config            protocol.Config
	Deny              deny.Config
	ReferenceGasPrice uint64
	Epoch             basalt.EpochID
	Transaction       *basalt.TransactionData
	Signatures        []basalt.Signature
}

// BatchResult is the verdict for one request. Err is nil for admitted
// transactions.
type BatchResult struct {
	GasStatus *GasStatus
	Inputs    CheckedInputObjects
	Err       error
}

// CheckBatch admits independent transactions concurrently. Each request
// runs against its own snapshot, so nothing is shared between calls beyond
// the checker itself. Results are index-aligned with the requests. When the
// context is cancelled mid-batch, unstarted requests fail with the context
// error.
func (c *Checker) CheckBatch(ctx context.Context, requests []BatchRequest) []BatchResult {
	results := make([]BatchResult, len(requests))

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, request := range requests {
		i, request := i, request
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			gasStatus, inputs, err := c.CheckTransactionInput(
				request.Snapshot,
				request.Config,
				request.Deny,
				request.ReferenceGasPrice,
				request.Epoch,
				request.Transaction,
				request.Signatures,
			)
			results[i] = BatchResult{GasStatus: gasStatus, Inputs: inputs, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
