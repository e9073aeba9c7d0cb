// Package verifier implements the admission-time verification pass over
// compiled module bytes. The pass is metered: all work is charged against a
// fixed tick budget, so a hostile package cannot stall admission no matter
// how it is shaped.
package verifier

import (
	"encoding/binary"
	"fmt"

	"github.com/basalt-ledger/basalt-go/model/basalt"
)

const (
	// ModuleMagic is the four byte big-endian prefix carried by every
	// compiled module blob.
	ModuleMagic uint32 = 0xBA5A1700

	// MaxFormatVersion is the newest module format version the verifier
	// understands.
	MaxFormatVersion uint32 = 2

	// ModuleHeaderSize is the length of the fixed module header: the magic
	// followed by the format version, both big-endian.
	ModuleHeaderSize = 8

	moduleBaseTicks = 1000
	moduleByteTicks = 10
)

// Verifier runs the admission-time verification pass over compiled modules.
type Verifier interface {
	// MeterModuleBytes charges the meter for the verification work the given
	// modules require. Modules that do not parse are skipped rather than
	// rejected: execution fails them later, so the only error admission can
	// surface here is running out of ticks.
	MeterModuleBytes(modules basalt.PackageModules) error
}

// MeteredVerifier charges a shared meter for every module it inspects. The
// same instance is reused for all packages published by one transaction, so
// their combined verification work draws from a single budget.
type MeteredVerifier struct {
	meter *Meter
}

var _ Verifier = (*MeteredVerifier)(nil)

// NewMetered returns a verifier whose passes share one tick budget.
func NewMetered(maxTicks uint64) *MeteredVerifier {
	return &MeteredVerifier{
		meter: NewMeter(maxTicks),
	}
}

// Meter returns the meter charged by this verifier.
func (v *MeteredVerifier) Meter() *Meter {
	return v.meter
}

// MeterModuleBytes walks the given modules and charges the meter a base cost
// per module plus a cost proportional to the module body. The charge depends
// only on the module bytes, never on elapsed time, so every node meters the
// same transaction identically.
func (v *MeteredVerifier) MeterModuleBytes(modules basalt.PackageModules) error {
	for i, module := range modules {
		if !parsesAsModule(module) {
			continue
		}
		if err := v.meter.Charge(moduleBaseTicks); err != nil {
			return fmt.Errorf("could not meter module %d: %w", i, err)
		}
		body := uint64(len(module) - ModuleHeaderSize)
		if err := v.meter.Charge(body * moduleByteTicks); err != nil {
			return fmt.Errorf("could not meter module %d body (%d bytes): %w", i, body, err)
		}
	}
	return nil
}

// parsesAsModule reports whether the blob carries a well-formed module
// header.
func parsesAsModule(module []byte) bool {
	if len(module) < ModuleHeaderSize {
		return false
	}
	if binary.BigEndian.Uint32(module[0:4]) != ModuleMagic {
		return false
	}
	version := binary.BigEndian.Uint32(module[4:8])
	return version >= 1 && version <= MaxFormatVersion
}
