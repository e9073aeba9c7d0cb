// Package protocol provides versioned snapshots of the protocol ruleset.
// Every admission decision reads its limits from one immutable snapshot, so
// nodes on the same version agree on every bound.
package protocol

import (
	"errors"
	"fmt"

	"github.com/basalt-ledger/basalt-go/model/basalt"
)

// Supported protocol version range of this build. Transactions declaring a
// version outside the range are not admissible.
const (
	MinSupportedVersion basalt.ProtocolVersion = 1
	MaxSupportedVersion basalt.ProtocolVersion = 3
)

// ErrUnsupportedVersion signals a protocol version this build cannot serve.
var ErrUnsupportedVersion = errors.New("unsupported protocol version")

// Config is one immutable snapshot of the protocol ruleset. Copy it freely;
// never mutate a snapshot after handing it to a checker.
type Config struct {
	Version basalt.ProtocolVersion

	// MaxInputObjects bounds declared input objects plus receiving
	// references, jointly.
	MaxInputObjects int

	// Gas bounds. Budgets outside [MinTxGasBudget, MaxTxGasBudget] and
	// prices above MaxGasPrice are rejected before any balance math.
	MinTxGasBudget uint64
	MaxTxGasBudget uint64
	MaxGasPrice    uint64

	// MaxGasPayments bounds the number of coins in one gas payment.
	MaxGasPayments int

	// Publication bounds.
	MaxPublishedModules int
	MaxModuleBytes      int

	// MaxVerifierMeterTicks is the total verification budget shared by all
	// modules a transaction publishes.
	MaxVerifierMeterTicks uint64

	// ReceivingObjectsEnabled gates the receiving-object feature.
	ReceivingObjectsEnabled bool
}

// FromVersion resolves the snapshot for a declared protocol version.
func FromVersion(version basalt.ProtocolVersion) (Config, error) {
	if version < MinSupportedVersion || version > MaxSupportedVersion {
		return Config{}, fmt.Errorf("version %d outside [%d, %d]: %w",
			version, MinSupportedVersion, MaxSupportedVersion, ErrUnsupportedVersion)
	}

	cfg := Config{
		Version:               version,
		MaxInputObjects:       1024,
		MinTxGasBudget:        1_000_000,
		MaxTxGasBudget:        50_000_000_000,
		MaxGasPrice:           100_000,
		MaxGasPayments:        256,
		MaxPublishedModules:   64,
		MaxModuleBytes:        131_072,
		MaxVerifierMeterTicks: 2_200_000,
	}
	if version >= 2 {
		cfg.ReceivingObjectsEnabled = true
	}
	if version >= 3 {
		cfg.MaxInputObjects = 2048
		cfg.MaxPublishedModules = 128
	}
	return cfg, nil
}

// SupportsVersion reports whether this build can serve the given version.
func SupportsVersion(version basalt.ProtocolVersion) bool {
	return version >= MinSupportedVersion && version <= MaxSupportedVersion
}

// Default returns the snapshot for the newest supported version.
func Default() Config {
	cfg, err := FromVersion(MaxSupportedVersion)
	if err != nil {
		panic(fmt.Sprintf("could not resolve default protocol config: %v", err))
	}
	return cfg
}
