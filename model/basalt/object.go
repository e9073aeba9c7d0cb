package basalt

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// SequenceNumber is the version of an object. Versions increase monotonically
// with every transaction that mutates the object.
type SequenceNumber uint64

// SequenceNumberMax is the reserved maximum version. No live object ever
// reaches it; transactions declaring it (or anything above) are malformed.
const SequenceNumberMax SequenceNumber = 0x7fff_ffff_ffff_ffff

func (s SequenceNumber) String() string {
	return fmt.Sprintf("%d", uint64(s))
}

// LamportIncrement computes the version a transaction assigns to the objects
// it writes: one past the highest version among its inputs.
func LamportIncrement(inputs []SequenceNumber) SequenceNumber {
	var highest SequenceNumber
	for _, version := range inputs {
		if version > highest {
			highest = version
		}
	}
	return highest + 1
}

// Owner describes who controls an object and therefore which consistency
// rules apply to it as a transaction input. It is a closed sum: the only
// implementations are AddressOwner, ObjectOwner, SharedOwner and Immutable.
// Every dispatch site must handle all four; an unknown implementation
// reaching a dispatch site is an internal invariant violation, not a user
// error.
type Owner interface {
	isOwner()
	String() string
}

// AddressOwner marks an object exclusively controlled by one account.
type AddressOwner struct {
	Address Address
}

// ObjectOwner marks a child object reachable only through its parent object.
// Child objects can never be used as top-level transaction inputs.
type ObjectOwner struct {
	Parent ObjectID
}

// SharedOwner marks an object that is co-owned by everyone. The version at
// which the object first became shared is part of its identity as an input.
type SharedOwner struct {
	InitialSharedVersion SequenceNumber
}

// Immutable marks an object frozen forever. Immutable objects have no owner
// and may be read by any transaction.
type Immutable struct{}

func (AddressOwner) isOwner() {}
func (ObjectOwner) isOwner()  {}
func (SharedOwner) isOwner()  {}
func (Immutable) isOwner()    {}

func (o AddressOwner) String() string {
	return fmt.Sprintf("AddressOwner(%s)", o.Address)
}

func (o ObjectOwner) String() string {
	return fmt.Sprintf("ObjectOwner(%s)", o.Parent)
}

func (o SharedOwner) String() string {
	return fmt.Sprintf("Shared(%d)", o.InitialSharedVersion)
}

func (Immutable) String() string {
	return "Immutable"
}

// ownerCanonicalForm returns a stable encodable form of an owner, used for
// object digest computation.
func ownerCanonicalForm(owner Owner) interface{} {
	switch o := owner.(type) {
	case AddressOwner:
		return struct {
			Tag     uint8
			Address []byte
		}{0, o.Address.Bytes()}
	case ObjectOwner:
		return struct {
			Tag    uint8
			Parent []byte
		}{1, o.Parent.Bytes()}
	case SharedOwner:
		return struct {
			Tag                  uint8
			InitialSharedVersion uint64
		}{2, uint64(o.InitialSharedVersion)}
	case Immutable:
		return struct {
			Tag uint8
		}{3}
	default:
		panic(fmt.Sprintf("unknown owner kind %T", owner))
	}
}

// MoveObject is the content of a non-package object: a typed value produced
// by the execution engine.
type MoveObject struct {
	ID ObjectID

	// Type is the fully qualified type tag of the value.
	Type string

	Version SequenceNumber

	// HasPublicTransfer records whether the type permits transfer outside
	// its defining module.
	HasPublicTransfer bool

	// Contents is the canonical encoding of the value.
	Contents []byte
}

// MovePackage is the content of a package object: immutable published
// bytecode, keyed by module name.
type MovePackage struct {
	ID      ObjectID
	Version SequenceNumber
	Modules map[string][]byte
}

// Object is a versioned, digest-addressed unit of ledger state. Exactly one
// of Move and Package is set.
type Object struct {
	Owner               Owner
	PreviousTransaction TransactionDigest

	Move    *MoveObject
	Package *MovePackage
}

// ID returns the object's identity.
func (o *Object) ID() ObjectID {
	if o.Package != nil {
		return o.Package.ID
	}
	return o.Move.ID
}

// Version returns the object's current version.
func (o *Object) Version() SequenceNumber {
	if o.Package != nil {
		return o.Package.Version
	}
	return o.Move.Version
}

// IsPackage returns true if the object holds published bytecode.
func (o *Object) IsPackage() bool {
	return o.Package != nil
}

// IsImmutable returns true if the object is frozen.
func (o *Object) IsImmutable() bool {
	_, ok := o.Owner.(Immutable)
	return ok
}

// IsAddressOwned returns true if the object is exclusively controlled by an
// account.
func (o *Object) IsAddressOwned() bool {
	_, ok := o.Owner.(AddressOwner)
	return ok
}

// IsShared returns true if the object is a shared object.
func (o *Object) IsShared() bool {
	_, ok := o.Owner.(SharedOwner)
	return ok
}

// InitialSharedVersion returns the version at which the object became
// shared, and whether the object is shared at all.
func (o *Object) InitialSharedVersion() (SequenceNumber, bool) {
	shared, ok := o.Owner.(SharedOwner)
	if !ok {
		return 0, false
	}
	return shared.InitialSharedVersion, true
}

// Digest computes the content digest of the object.
func (o *Object) Digest() ObjectDigest {
	var move, pkg interface{}
	if o.Move != nil {
		move = struct {
			ID                []byte
			Type              string
			Version           uint64
			HasPublicTransfer bool
			Contents          []byte
		}{
			o.Move.ID.Bytes(),
			o.Move.Type,
			uint64(o.Move.Version),
			o.Move.HasPublicTransfer,
			o.Move.Contents,
		}
	}
	if o.Package != nil {
		// Map encoding is canonically sorted by the encoder.
		pkg = struct {
			ID      []byte
			Version uint64
			Modules map[string][]byte
		}{
			o.Package.ID.Bytes(),
			uint64(o.Package.Version),
			o.Package.Modules,
		}
	}
	return ObjectDigest(canonicalHash(objectDigestDomain, struct {
		Owner               interface{}
		PreviousTransaction []byte
		Move                interface{}
		Package             interface{}
	}{
		ownerCanonicalForm(o.Owner),
		o.PreviousTransaction.Bytes(),
		move,
		pkg,
	}))
}

// Reference returns the (id, version, digest) triple describing the current
// state of the object.
func (o *Object) Reference() ObjectRef {
	return ObjectRef{
		ID:      o.ID(),
		Version: o.Version(),
		Digest:  o.Digest(),
	}
}

// ObjectRef is a claim about an object's state: its id, a version, and the
// content digest the author believes the object has at that version.
type ObjectRef struct {
	ID      ObjectID
	Version SequenceNumber
	Digest  ObjectDigest
}

func (r ObjectRef) String() string {
	return fmt.Sprintf("(%s, %d, %s)", r.ID, r.Version, r.Digest)
}

// GasCoinType is the type tag of the native gas coin.
const GasCoinType = "0x2::coin::Coin<0x2::basalt::BASALT>"

// coinPayload is the canonical content layout of a coin object.
type coinPayload struct {
	Balance uint64
}

// Coin is the decoded content of a coin object.
type Coin struct {
	Balance uint64
}

// IsGasCoin returns true if the object is a native gas coin.
func (o *Object) IsGasCoin() bool {
	return o.Move != nil && o.Move.Type == GasCoinType
}

// AsCoin decodes the object's content as a coin. The second return value is
// false if the object is not a coin or its content does not decode.
func (o *Object) AsCoin() (Coin, bool) {
	if !o.IsGasCoin() {
		return Coin{}, false
	}
	var payload coinPayload
	if err := cbor.Unmarshal(o.Move.Contents, &payload); err != nil {
		return Coin{}, false
	}
	return Coin{Balance: payload.Balance}, true
}

// NewGasCoinObject builds an address-owned gas coin with the given balance.
func NewGasCoinObject(id ObjectID, version SequenceNumber, owner Address, balance uint64) *Object {
	contents, err := cborEnc.Marshal(coinPayload{Balance: balance})
	if err != nil {
		panic(fmt.Sprintf("could not encode coin payload: %v", err))
	}
	return &Object{
		Owner: AddressOwner{Address: owner},
		Move: &MoveObject{
			ID:                id,
			Type:              GasCoinType,
			Version:           version,
			HasPublicTransfer: true,
			Contents:          contents,
		},
	}
}
