package unittest

import (
	crand "crypto/rand"
	"encoding/binary"

	"github.com/basalt-ledger/basalt-go/model/basalt"
	"github.com/basalt-ledger/basalt-go/protocol"
	"github.com/basalt-ledger/basalt-go/verifier"
)

func randomBytes(n int) []byte {
	data := make([]byte, n)
	_, _ = crand.Read(data)
	return data
}

// AddressFixture returns a random account address.
func AddressFixture() basalt.Address {
	return basalt.BytesToAddress(randomBytes(basalt.AddressLength))
}

// ObjectIDFixture returns a random object identifier.
func ObjectIDFixture() basalt.ObjectID {
	return basalt.BytesToObjectID(randomBytes(basalt.ObjectIDLength))
}

// ObjectDigestFixture returns a random object digest.
func ObjectDigestFixture() basalt.ObjectDigest {
	var digest basalt.ObjectDigest
	copy(digest[:], randomBytes(basalt.DigestLength))
	return digest
}

// TransactionDigestFixture returns a random transaction digest.
func TransactionDigestFixture() basalt.TransactionDigest {
	var digest basalt.TransactionDigest
	copy(digest[:], randomBytes(basalt.DigestLength))
	return digest
}

// SignatureFixture returns a random signature blob.
func SignatureFixture() basalt.Signature {
	return basalt.Signature(randomBytes(64))
}

// SignaturesFixture returns n random signatures.
func SignaturesFixture(n int) []basalt.Signature {
	signatures := make([]basalt.Signature, 0, n)
	for i := 0; i < n; i++ {
		signatures = append(signatures, SignatureFixture())
	}
	return signatures
}

// ObjectRefFixture returns a reference to an object that does not exist.
func ObjectRefFixture() basalt.ObjectRef {
	return basalt.ObjectRef{
		ID:      ObjectIDFixture(),
		Version: 1,
		Digest:  ObjectDigestFixture(),
	}
}

// WithObjectID sets the identifier of a fixture object.
func WithObjectID(id basalt.ObjectID) func(*basalt.Object) {
	return func(object *basalt.Object) {
		if object.Package != nil {
			object.Package.ID = id
			return
		}
		object.Move.ID = id
	}
}

// WithObjectVersion sets the version of a fixture object.
func WithObjectVersion(version basalt.SequenceNumber) func(*basalt.Object) {
	return func(object *basalt.Object) {
		if object.Package != nil {
			object.Package.Version = version
			return
		}
		object.Move.Version = version
	}
}

func moveObjectFixture(owner basalt.Owner, opts ...func(*basalt.Object)) *basalt.Object {
	object := &basalt.Object{
		Owner:               owner,
		PreviousTransaction: TransactionDigestFixture(),
		Move: &basalt.MoveObject{
			ID:       ObjectIDFixture(),
			Type:     "0x2::counter::Counter",
			Version:  1,
			Contents: randomBytes(32),
		},
	}
	for _, apply := range opts {
		apply(object)
	}
	return object
}

// OwnedObjectFixture returns an address-owned object at version 1.
func OwnedObjectFixture(owner basalt.Address, opts ...func(*basalt.Object)) *basalt.Object {
	return moveObjectFixture(basalt.AddressOwner{Address: owner}, opts...)
}

// ImmutableObjectFixture returns a frozen object at version 1.
func ImmutableObjectFixture(opts ...func(*basalt.Object)) *basalt.Object {
	return moveObjectFixture(basalt.Immutable{}, opts...)
}

// ChildObjectFixture returns an object owned by another object.
func ChildObjectFixture(parent basalt.ObjectID, opts ...func(*basalt.Object)) *basalt.Object {
	return moveObjectFixture(basalt.ObjectOwner{Parent: parent}, opts...)
}

// SharedObjectFixture returns a shared object whose current version equals
// its initial shared version.
func SharedObjectFixture(initialVersion basalt.SequenceNumber, opts ...func(*basalt.Object)) *basalt.Object {
	object := moveObjectFixture(basalt.SharedOwner{InitialSharedVersion: initialVersion})
	object.Move.Version = initialVersion
	for _, apply := range opts {
		apply(object)
	}
	return object
}

// GasCoinObjectFixture returns an address-owned gas coin at version 1 holding
// the given balance.
func GasCoinObjectFixture(owner basalt.Address, balance uint64, opts ...func(*basalt.Object)) *basalt.Object {
	object := basalt.NewGasCoinObject(ObjectIDFixture(), 1, owner, balance)
	object.PreviousTransaction = TransactionDigestFixture()
	for _, apply := range opts {
		apply(object)
	}
	return object
}

// PackageObjectFixture returns an immutable package object with one module.
func PackageObjectFixture(opts ...func(*basalt.Object)) *basalt.Object {
	object := &basalt.Object{
		Owner:               basalt.Immutable{},
		PreviousTransaction: TransactionDigestFixture(),
		Package: &basalt.MovePackage{
			ID:      ObjectIDFixture(),
			Version: 1,
			Modules: map[string][]byte{"m": ModuleBytesFixture(64)},
		},
	}
	for _, apply := range opts {
		apply(object)
	}
	return object
}

// ModuleBytesFixture returns module bytecode with a well-formed header and a
// random body of the given length.
func ModuleBytesFixture(bodyLength int) []byte {
	module := make([]byte, verifier.ModuleHeaderSize+bodyLength)
	binary.BigEndian.PutUint32(module[0:4], verifier.ModuleMagic)
	binary.BigEndian.PutUint32(module[4:8], 1)
	copy(module[verifier.ModuleHeaderSize:], randomBytes(bodyLength))
	return module
}

// WithSender sets the transaction sender.
func WithSender(sender basalt.Address) func(*basalt.TransactionData) {
	return func(tx *basalt.TransactionData) {
		tx.Sender = sender
	}
}

// WithGasOwner sets the declared owner of the gas payment.
func WithGasOwner(owner basalt.Address) func(*basalt.TransactionData) {
	return func(tx *basalt.TransactionData) {
		tx.GasData.Owner = owner
	}
}

// WithGasPayment sets the gas payment references.
func WithGasPayment(payment ...basalt.ObjectRef) func(*basalt.TransactionData) {
	return func(tx *basalt.TransactionData) {
		tx.GasData.Payment = payment
	}
}

// WithGasBudget sets the declared gas budget.
func WithGasBudget(budget uint64) func(*basalt.TransactionData) {
	return func(tx *basalt.TransactionData) {
		tx.GasData.Budget = budget
	}
}

// WithGasPrice sets the declared gas price.
func WithGasPrice(price uint64) func(*basalt.TransactionData) {
	return func(tx *basalt.TransactionData) {
		tx.GasData.Price = price
	}
}

// WithKind sets the transaction kind.
func WithKind(kind basalt.TransactionKind) func(*basalt.TransactionData) {
	return func(tx *basalt.TransactionData) {
		tx.Kind = kind
	}
}

// WithExpiration sets the last epoch the transaction may execute in.
func WithExpiration(epoch basalt.EpochID) func(*basalt.TransactionData) {
	return func(tx *basalt.TransactionData) {
		tx.Expiration = &epoch
	}
}

// WithProtocolVersion sets the protocol version the transaction claims.
func WithProtocolVersion(version basalt.ProtocolVersion) func(*basalt.TransactionData) {
	return func(tx *basalt.TransactionData) {
		tx.ProtocolVersion = version
	}
}

// TransactionDataFixture returns a programmable transaction with a plausible
// gas declaration. The gas payment reference points nowhere; tests that
// resolve inputs must store a matching coin and override the payment.
func TransactionDataFixture(opts ...func(*basalt.TransactionData)) *basalt.TransactionData {
	sender := AddressFixture()
	tx := &basalt.TransactionData{
		Sender: sender,
		Kind:   basalt.ProgrammableTransaction{},
		GasData: basalt.GasData{
			Payment: []basalt.ObjectRef{ObjectRefFixture()},
			Owner:   sender,
			Price:   1_000,
			Budget:  5_000_000,
		},
		ProtocolVersion: protocol.MaxSupportedVersion,
	}
	for _, apply := range opts {
		apply(tx)
	}
	return tx
}

// CertifiedTransactionFixture wraps a transaction in a certificate formed in
// the given epoch.
func CertifiedTransactionFixture(tx *basalt.TransactionData, epoch basalt.EpochID) *basalt.CertifiedTransaction {
	return &basalt.CertifiedTransaction{
		Data:       *tx,
		Signatures: SignaturesFixture(3),
		Epoch:      epoch,
	}
}
