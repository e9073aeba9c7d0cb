package admission

import (
	"math"

	"github.com/basalt-ledger/basalt-go/admission/errors"
	"github.com/basalt-ledger/basalt-go/model/basalt"
	"github.com/basalt-ledger/basalt-go/protocol"
)

// GasStatus is the verdict of gas admission. A transaction either runs
// unmetered (system kinds) or carries a budget and price that passed the
// protocol bounds and a payment that covers the budget.
type GasStatus struct {
	unmetered bool
	budget    uint64
	price     uint64
}

// NewUnmeteredGasStatus returns the gas status of system transactions: no
// budget, no price, no balance requirement.
func NewUnmeteredGasStatus() *GasStatus {
	return &GasStatus{unmetered: true}
}

// NewGasStatus admits a declared budget and price against the protocol
// bounds. The price must lie within [referenceGasPrice, MaxGasPrice] and the
// budget within [MinTxGasBudget, MaxTxGasBudget].
func NewGasStatus(cfg protocol.Config, budget uint64, price uint64, referenceGasPrice uint64) (*GasStatus, error) {
	if price < referenceGasPrice {
		return nil, errors.NewGasPriceUnderReferencePriceError(price, referenceGasPrice)
	}
	if price > cfg.MaxGasPrice {
		return nil, errors.NewGasPriceTooHighError(price, cfg.MaxGasPrice)
	}
	if budget > cfg.MaxTxGasBudget {
		return nil, errors.NewGasBudgetTooHighError(budget, cfg.MaxTxGasBudget)
	}
	if budget < cfg.MinTxGasBudget {
		return nil, errors.NewGasBudgetTooLowError(budget, cfg.MinTxGasBudget)
	}
	return &GasStatus{budget: budget, price: price}, nil
}

// IsUnmetered returns true for the gas status of a system transaction.
func (g *GasStatus) IsUnmetered() bool {
	return g.unmetered
}

// GasBudget returns the admitted budget. Zero when unmetered.
func (g *GasStatus) GasBudget() uint64 {
	return g.budget
}

// GasPrice returns the admitted price. Zero when unmetered.
func (g *GasStatus) GasPrice() uint64 {
	return g.price
}

// CheckGasBalance verifies that every payment object is an address-owned gas
// coin and that the combined balance covers the budget.
func (g *GasStatus) CheckGasBalance(gasObjects []*basalt.Object, budget uint64) error {
	if g.unmetered {
		return nil
	}
	var balance uint64
	for _, object := range gasObjects {
		if !object.IsAddressOwned() {
			return errors.NewInvalidGasObjectError(object.ID())
		}
		coin, ok := object.AsCoin()
		if !ok {
			return errors.NewInvalidGasObjectError(object.ID())
		}
		// The aggregate can exceed 64 bits; saturating keeps the comparison
		// against the budget valid.
		if balance > math.MaxUint64-coin.Balance {
			balance = math.MaxUint64
		} else {
			balance += coin.Balance
		}
	}
	if balance < budget {
		return errors.NewGasBalanceTooLowError(balance, budget)
	}
	return nil
}

// checkGas admits the fee declaration of a transaction. System transactions
// run unmetered and skip every balance check. For user transactions the
// budget and price must satisfy protocol bounds, each declared gas ref must
// resolve among the inputs, and the resolved coins must cover the budget.
func checkGas(
	cfg protocol.Config,
	referenceGasPrice uint64,
	tx *basalt.TransactionData,
	inputs *basalt.InputObjects,
	gas []basalt.ObjectRef,
) (*GasStatus, error) {
	if tx.IsSystemTx() {
		return NewUnmeteredGasStatus(), nil
	}

	gasStatus, err := NewGasStatus(cfg, tx.GasData.Budget, tx.GasData.Price, referenceGasPrice)
	if err != nil {
		return nil, err
	}

	byID := make(map[basalt.ObjectID]*basalt.Object, inputs.Len())
	for _, object := range inputs.Objects() {
		byID[object.ID()] = object
	}
	gasObjects := make([]*basalt.Object, 0, len(gas))
	for _, ref := range gas {
		object, ok := byID[ref.ID]
		if !ok {
			return nil, errors.NewObjectNotFoundAtVersionError(ref.ID, ref.Version)
		}
		gasObjects = append(gasObjects, object)
	}
	err = gasStatus.CheckGasBalance(gasObjects, tx.GasData.Budget)
	if err != nil {
		return nil, err
	}
	return gasStatus, nil
}
