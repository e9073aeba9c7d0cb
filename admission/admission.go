// Package admission validates transactions before they enter the ledger:
// once when a user submits them for signing, and again when a certified
// transaction arrives for execution. Every check is deterministic and reads
// the ledger without writing it; on success the pipelines emit the gas
// status to charge against and a CheckedInputObjects witness that
// execution consumes without re-validating.
package admission

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/basalt-ledger/basalt-go/admission/deny"
	"github.com/basalt-ledger/basalt-go/admission/errors"
	"github.com/basalt-ledger/basalt-go/model/basalt"
	"github.com/basalt-ledger/basalt-go/module"
	"github.com/basalt-ledger/basalt-go/protocol"
)

// DefaultVerifiedCacheSize bounds the verified package cache of a checker
// built with it.
const DefaultVerifiedCacheSize = 256

// Checker runs the admission pipelines. A single checker serves concurrent
// calls: per-transaction state lives on the stack and the verified package
// cache is internally synchronized.
type Checker struct {
	log             zerolog.Logger
	metrics         module.AdmissionMetrics
	verifierMetrics module.BytecodeVerifierMetrics
	verifiedCache   *lru.Cache[basalt.PackageDigest, uint64]
}

// New builds a checker. The cache size bounds how many verified package
// digests are remembered across transactions.
func New(
	log zerolog.Logger,
	metrics module.AdmissionMetrics,
	verifierMetrics module.BytecodeVerifierMetrics,
	cacheSize int,
) (*Checker, error) {
	cache, err := lru.New[basalt.PackageDigest, uint64](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("could not create verified package cache: %w", err)
	}
	return &Checker{
		log:             log.With().Str("component", "admission").Logger(),
		metrics:         metrics,
		verifierMetrics: verifierMetrics,
		verifiedCache:   cache,
	}, nil
}

// CheckTransactionInput runs the full signing-path pipeline over a
// submitted transaction: version gate, structural validity, deny policy,
// publication metering, input resolution, gas admission, object consistency
// and receiving freshness, in that order. The first violated check aborts
// the pipeline.
func (c *Checker) CheckTransactionInput(
	snap Snapshot,
	cfg protocol.Config,
	denyCfg deny.Config,
	referenceGasPrice uint64,
	epoch basalt.EpochID,
	tx *basalt.TransactionData,
	signatures []basalt.Signature,
) (*GasStatus, CheckedInputObjects, error) {
	gasStatus, checked, err := c.checkTransactionInput(snap, cfg, denyCfg, referenceGasPrice, epoch, tx, signatures)
	c.observeOutcome(err)
	if err != nil {
		return nil, CheckedInputObjects{}, err
	}
	return gasStatus, checked, nil
}

func (c *Checker) checkTransactionInput(
	snap Snapshot,
	cfg protocol.Config,
	denyCfg deny.Config,
	referenceGasPrice uint64,
	epoch basalt.EpochID,
	tx *basalt.TransactionData,
	signatures []basalt.Signature,
) (*GasStatus, CheckedInputObjects, error) {
	none := CheckedInputObjects{}

	err := checkVersionSupported(tx)
	if err != nil {
		return nil, none, err
	}
	err = validityCheck(cfg, tx, epoch)
	if err != nil {
		return nil, none, err
	}

	kinds, err := tx.InputObjectKinds()
	if err != nil {
		return nil, none, errors.NewDuplicateObjectRefInputError(err)
	}
	receiving := tx.ReceivingObjects()

	err = deny.CheckForSigning(denyCfg, tx, signatures, kinds, receiving)
	if err != nil {
		return nil, none, err
	}

	// The verifier pass can be expensive; it runs after the cheap policy
	// checks and before any store access.
	err = c.checkPublishedPackages(cfg, tx)
	if err != nil {
		return nil, none, err
	}

	err = checkInputArity(cfg, len(kinds))
	if err != nil {
		return nil, none, err
	}
	inputs, err := ResolveInputObjects(snap, kinds)
	if err != nil {
		return nil, none, err
	}

	gasStatus, err := checkGas(cfg, referenceGasPrice, tx, inputs, tx.Gas())
	if err != nil {
		return nil, none, err
	}
	err = checkObjects(tx, inputs)
	if err != nil {
		return nil, none, err
	}
	err = checkReceivingObjects(c.log, snap, snap, cfg, epoch, receiving, inputs)
	if err != nil {
		return nil, none, err
	}

	return gasStatus, newCheckedInputObjects(inputs), nil
}

// CheckTransactionInputWithGivenGas runs the signing-path pipeline with a
// caller-supplied gas object standing in for the declared payment. The gas
// object is appended to the inputs as an ordinary owned object and admission
// charges against it alone.
func (c *Checker) CheckTransactionInputWithGivenGas(
	snap Snapshot,
	cfg protocol.Config,
	referenceGasPrice uint64,
	epoch basalt.EpochID,
	tx *basalt.TransactionData,
	gasObject *basalt.Object,
) (*GasStatus, CheckedInputObjects, error) {
	gasStatus, checked, err := c.checkTransactionInputWithGivenGas(snap, cfg, referenceGasPrice, epoch, tx, gasObject)
	c.observeOutcome(err)
	if err != nil {
		return nil, CheckedInputObjects{}, err
	}
	return gasStatus, checked, nil
}

func (c *Checker) checkTransactionInputWithGivenGas(
	snap Snapshot,
	cfg protocol.Config,
	referenceGasPrice uint64,
	epoch basalt.EpochID,
	tx *basalt.TransactionData,
	gasObject *basalt.Object,
) (*GasStatus, CheckedInputObjects, error) {
	none := CheckedInputObjects{}

	err := checkVersionSupported(tx)
	if err != nil {
		return nil, none, err
	}
	err = validityCheckNoGas(cfg, tx, epoch)
	if err != nil {
		return nil, none, err
	}
	err = c.checkPublishedPackages(cfg, tx)
	if err != nil {
		return nil, none, err
	}

	kinds, err := tx.InputObjectKinds()
	if err != nil {
		return nil, none, errors.NewDuplicateObjectRefInputError(err)
	}
	receiving := tx.ReceivingObjects()

	err = checkInputArity(cfg, len(kinds))
	if err != nil {
		return nil, none, err
	}
	inputs, err := ResolveInputObjects(snap, kinds)
	if err != nil {
		return nil, none, err
	}

	// The supplied gas object joins the inputs as an ordinary owned object,
	// after the arity check: the caller injected it, the user did not
	// declare it.
	gasRef := gasObject.Reference()
	inputs.Push(basalt.NewReadResultFromGasObject(gasObject))

	gasStatus, err := checkGas(cfg, referenceGasPrice, tx, inputs, []basalt.ObjectRef{gasRef})
	if err != nil {
		return nil, none, err
	}
	err = checkObjects(tx, inputs)
	if err != nil {
		return nil, none, err
	}
	err = checkReceivingObjects(c.log, snap, snap, cfg, epoch, receiving, inputs)
	if err != nil {
		return nil, none, err
	}

	return gasStatus, newCheckedInputObjects(inputs), nil
}

// CheckCertificateInput re-checks the inputs of a certified transaction at
// execution time. The transaction was admitted once at signing, so a
// version violation here is an internal invariant failure rather than a
// user error. No deny, metering, or receiving checks run on this path;
// those are signing-time concerns.
func (c *Checker) CheckCertificateInput(
	cert *basalt.CertifiedTransaction,
	inputs *basalt.InputObjects,
	cfg protocol.Config,
	referenceGasPrice uint64,
) (*GasStatus, CheckedInputObjects, error) {
	none := CheckedInputObjects{}
	tx := cert.Transaction()

	err := checkVersionSupported(tx)
	if err != nil {
		return nil, none, errors.NewInvalidCertificateFailure(err)
	}
	err = checkInputArity(cfg, inputs.Len())
	if err != nil {
		return nil, none, err
	}
	gasStatus, err := checkGas(cfg, referenceGasPrice, tx, inputs, tx.Gas())
	if err != nil {
		return nil, none, err
	}
	err = checkObjects(tx, inputs)
	if err != nil {
		return nil, none, err
	}

	return gasStatus, newCheckedInputObjects(inputs), nil
}

// CheckDevInspectInput admits inputs for a simulated execution. Simulation
// bypasses authentication and the deny policy: only the kind's structural
// bounds, the input arity, and mutable-object uniqueness are enforced. The
// caller-supplied gas object is appended last, so it can never mask an
// earlier violation.
func (c *Checker) CheckDevInspectInput(
	cfg protocol.Config,
	kind basalt.TransactionKind,
	inputs *basalt.InputObjects,
	gasObject *basalt.Object,
) (basalt.ObjectRef, CheckedInputObjects, error) {
	none := CheckedInputObjects{}
	gasRef := gasObject.Reference()

	err := kindValidityCheck(cfg, kind)
	if err != nil {
		return basalt.ObjectRef{}, none, err
	}
	if _, user := kind.(basalt.ProgrammableTransaction); !user {
		return basalt.ObjectRef{}, none, errors.NewUnsupportedTransactionKindError(kind)
	}
	err = checkInputArity(cfg, inputs.Len())
	if err != nil {
		return basalt.ObjectRef{}, none, err
	}

	used := make(map[basalt.ObjectID]struct{}, inputs.Len())
	for _, result := range inputs.Results() {
		if result.Object == nil {
			// Deleted shared inputs no longer exist.
			continue
		}
		if result.Object.IsImmutable() {
			continue
		}
		id := result.Object.ID()
		if _, ok := used[id]; ok {
			return basalt.ObjectRef{}, none, errors.NewMutableObjectUsedMoreThanOnceError(id)
		}
		used[id] = struct{}{}
	}

	inputs.Push(basalt.NewReadResultFromGasObject(gasObject))

	return gasRef, newCheckedInputObjects(inputs), nil
}

// observeOutcome feeds the signing-path admission counters.
func (c *Checker) observeOutcome(err error) {
	if err == nil {
		c.metrics.TransactionAdmitted()
		return
	}
	c.metrics.TransactionRejected(rejectionReason(err))
}

// rejectionReason turns an admission error into a bounded metric label.
func rejectionReason(err error) string {
	coded, failure := errors.SplitErrorTypes(err)
	if failure != nil {
		return fmt.Sprintf("failure_%d", failure.FailureCode())
	}
	return fmt.Sprintf("code_%d", coded.Code())
}
