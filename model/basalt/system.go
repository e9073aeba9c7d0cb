package basalt

// Well-known objects and packages reserved by the protocol. Their ids live
// in the low address range and are fixed at genesis.

var (
	// SystemStateObjectID is the shared system state object mutated at
	// epoch boundaries.
	SystemStateObjectID = systemObjectID(0x05)

	// ClockObjectID is the shared clock. User transactions may only read
	// it; only consensus prologues advance it.
	ClockObjectID = systemObjectID(0x06)

	// AuthenticatorStateObjectID holds authenticator material maintained by
	// system transactions. User transactions can never touch it.
	AuthenticatorStateObjectID = systemObjectID(0x07)
)

// Initial shared versions of the system singletons. All of them become
// shared in the genesis transaction.
const (
	SystemStateSharedVersion        SequenceNumber = 1
	ClockSharedVersion              SequenceNumber = 1
	AuthenticatorStateSharedVersion SequenceNumber = 1
)

// SystemPackageIDs are the packages shipped with the protocol. They can only
// change through a protocol upgrade, never through user publication.
var SystemPackageIDs = []ObjectID{
	systemObjectID(0x01),
	systemObjectID(0x02),
	systemObjectID(0x03),
}

// IsSystemPackage returns true if the id names a protocol-shipped package.
func IsSystemPackage(id ObjectID) bool {
	for _, system := range SystemPackageIDs {
		if id == system {
			return true
		}
	}
	return false
}

func systemObjectID(last byte) ObjectID {
	var id ObjectID
	id[ObjectIDLength-1] = last
	return id
}
