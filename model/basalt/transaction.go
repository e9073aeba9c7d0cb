package basalt

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// EpochID numbers consecutive protocol epochs.
type EpochID uint64

// ProtocolVersion identifies the protocol ruleset a transaction was built
// against.
type ProtocolVersion uint64

// Signature is an opaque authenticator over a transaction. Verifying it is
// the authentication layer's job; admission only carries signatures through
// to policy checks.
type Signature []byte

func (s Signature) String() string {
	return fmt.Sprintf("%x", []byte(s))
}

// ErrDuplicateObjectRef signals that a transaction declares the same object
// id more than once among its object arguments.
var ErrDuplicateObjectRef = errors.New("duplicate object reference in inputs")

// TransactionKind is the payload of a transaction. It is a closed sum:
// ProgrammableTransaction is the only user kind, the rest are system kinds
// injected by the protocol itself.
type TransactionKind interface {
	isTransactionKind()

	// InputObjectKinds returns the objects the kind declares as inputs.
	InputObjectKinds() ([]InputObjectKind, error)

	String() string
}

// CallArg is one declared input of a programmable transaction: a pure value,
// an object, or an object to be received. Closed sum.
type CallArg interface {
	isCallArg()
}

// PureArg is an inline value passed by encoding.
type PureArg struct {
	Bytes []byte
}

// ObjectArg is an object input declared by kind.
type ObjectArg struct {
	Kind InputObjectKind
}

// ReceivingArg is an object sent to one of the transaction's inputs that the
// transaction intends to receive.
type ReceivingArg struct {
	Ref ObjectRef
}

func (PureArg) isCallArg()      {}
func (ObjectArg) isCallArg()    {}
func (ReceivingArg) isCallArg() {}

// Command is one step of a programmable transaction. Closed sum. Command
// arguments index into the transaction's inputs; admission only inspects the
// package ids and module bytes commands carry.
type Command interface {
	isCommand()
}

// MoveCallCommand invokes a function of a published package.
type MoveCallCommand struct {
	Package       ObjectID
	Module        string
	Function      string
	TypeArguments []string
	Arguments     []uint16
}

// TransferObjectsCommand sends objects to a recipient.
type TransferObjectsCommand struct {
	Objects   []uint16
	Recipient uint16
}

// SplitCoinsCommand splits amounts off a coin.
type SplitCoinsCommand struct {
	Coin    uint16
	Amounts []uint16
}

// MergeCoinsCommand merges source coins into a target coin.
type MergeCoinsCommand struct {
	Target  uint16
	Sources []uint16
}

// PublishCommand publishes a new package from module bytecode.
type PublishCommand struct {
	Modules      [][]byte
	Dependencies []ObjectID
}

// UpgradeCommand publishes a new version of an existing package.
type UpgradeCommand struct {
	Modules      [][]byte
	Dependencies []ObjectID
	Package      ObjectID
}

func (MoveCallCommand) isCommand()        {}
func (TransferObjectsCommand) isCommand() {}
func (SplitCoinsCommand) isCommand()      {}
func (MergeCoinsCommand) isCommand()      {}
func (PublishCommand) isCommand()         {}
func (UpgradeCommand) isCommand()         {}

// packageInputs returns the package objects a command depends on.
func packageInputs(command Command) []InputObjectKind {
	switch c := command.(type) {
	case MoveCallCommand:
		return []InputObjectKind{MovePackageInput{PackageID: c.Package}}
	case PublishCommand:
		kinds := make([]InputObjectKind, 0, len(c.Dependencies))
		for _, dep := range c.Dependencies {
			kinds = append(kinds, MovePackageInput{PackageID: dep})
		}
		return kinds
	case UpgradeCommand:
		kinds := make([]InputObjectKind, 0, len(c.Dependencies)+1)
		for _, dep := range c.Dependencies {
			kinds = append(kinds, MovePackageInput{PackageID: dep})
		}
		kinds = append(kinds, MovePackageInput{PackageID: c.Package})
		return kinds
	default:
		return nil
	}
}

// ProgrammableTransaction is the user transaction kind: declared inputs plus
// a sequence of commands over them.
type ProgrammableTransaction struct {
	Inputs   []CallArg
	Commands []Command
}

// GenesisTransaction creates the initial ledger state. System kind.
type GenesisTransaction struct{}

// ConsensusCommitPrologue advances the shared clock at the start of a
// consensus commit. System kind.
type ConsensusCommitPrologue struct {
	Round             uint64
	CommitTimestampMS uint64
}

// ChangeEpoch ends the current epoch. System kind.
type ChangeEpoch struct {
	Epoch                 EpochID
	ProtocolVersion       ProtocolVersion
	EpochStartTimestampMS uint64
}

// AuthenticatorStateUpdate refreshes the shared authenticator state. System
// kind.
type AuthenticatorStateUpdate struct {
	Round uint64
}

func (ProgrammableTransaction) isTransactionKind()  {}
func (GenesisTransaction) isTransactionKind()       {}
func (ConsensusCommitPrologue) isTransactionKind()  {}
func (ChangeEpoch) isTransactionKind()              {}
func (AuthenticatorStateUpdate) isTransactionKind() {}

func (ProgrammableTransaction) String() string  { return "ProgrammableTransaction" }
func (GenesisTransaction) String() string       { return "GenesisTransaction" }
func (ConsensusCommitPrologue) String() string  { return "ConsensusCommitPrologue" }
func (ChangeEpoch) String() string              { return "ChangeEpoch" }
func (AuthenticatorStateUpdate) String() string { return "AuthenticatorStateUpdate" }

// InputObjectKinds returns the declared object arguments in declaration
// order, followed by the packages referenced by commands, sorted by id and
// deduplicated. Declaring the same object id twice among the arguments is
// rejected with ErrDuplicateObjectRef.
func (t ProgrammableTransaction) InputObjectKinds() ([]InputObjectKind, error) {
	var kinds []InputObjectKind
	seen := make(map[ObjectID]struct{}, len(t.Inputs))
	for _, input := range t.Inputs {
		arg, ok := input.(ObjectArg)
		if !ok {
			continue
		}
		id := arg.Kind.ID()
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("object %s declared twice: %w", id, ErrDuplicateObjectRef)
		}
		seen[id] = struct{}{}
		kinds = append(kinds, arg.Kind)
	}

	packages := make(map[ObjectID]struct{})
	for _, command := range t.Commands {
		for _, kind := range packageInputs(command) {
			packages[kind.ID()] = struct{}{}
		}
	}
	packageIDs := make([]ObjectID, 0, len(packages))
	for id := range packages {
		packageIDs = append(packageIDs, id)
	}
	slices.SortFunc(packageIDs, CompareObjectIDs)
	for _, id := range packageIDs {
		kinds = append(kinds, MovePackageInput{PackageID: id})
	}
	return kinds, nil
}

func (GenesisTransaction) InputObjectKinds() ([]InputObjectKind, error) {
	return nil, nil
}

func (ConsensusCommitPrologue) InputObjectKinds() ([]InputObjectKind, error) {
	return []InputObjectKind{SharedObjectInput{
		ObjectID:             ClockObjectID,
		InitialSharedVersion: ClockSharedVersion,
		Mutable:              true,
	}}, nil
}

func (ChangeEpoch) InputObjectKinds() ([]InputObjectKind, error) {
	return []InputObjectKind{SharedObjectInput{
		ObjectID:             SystemStateObjectID,
		InitialSharedVersion: SystemStateSharedVersion,
		Mutable:              true,
	}}, nil
}

func (AuthenticatorStateUpdate) InputObjectKinds() ([]InputObjectKind, error) {
	return []InputObjectKind{SharedObjectInput{
		ObjectID:             AuthenticatorStateObjectID,
		InitialSharedVersion: AuthenticatorStateSharedVersion,
		Mutable:              true,
	}}, nil
}

// GasData carries a transaction's fee declaration: the coins paying for it,
// who owns them, and the declared price and budget.
type GasData struct {
	Payment []ObjectRef
	Owner   Address
	Price   uint64
	Budget  uint64
}

// TransactionData is a transaction as submitted for admission.
type TransactionData struct {
	Sender          Address
	Kind            TransactionKind
	GasData         GasData
	ProtocolVersion ProtocolVersion

	// Expiration is the last epoch the transaction may execute in, or nil
	// for no expiry.
	Expiration *EpochID
}

// IsSystemTx returns true for kinds only the protocol itself may submit.
func (tx *TransactionData) IsSystemTx() bool {
	_, user := tx.Kind.(ProgrammableTransaction)
	return !user
}

// IsGenesisTx returns true for the genesis kind.
func (tx *TransactionData) IsGenesisTx() bool {
	_, ok := tx.Kind.(GenesisTransaction)
	return ok
}

// IsSponsoredTx returns true if someone other than the sender pays for gas.
func (tx *TransactionData) IsSponsoredTx() bool {
	return tx.GasData.Owner != tx.Sender
}

// GasOwner returns the account expected to own the gas payment.
func (tx *TransactionData) GasOwner() Address {
	return tx.GasData.Owner
}

// Gas returns the declared gas payment references.
func (tx *TransactionData) Gas() []ObjectRef {
	return tx.GasData.Payment
}

// IsExpired returns true if the transaction may no longer execute in the
// given epoch.
func (tx *TransactionData) IsExpired(current EpochID) bool {
	return tx.Expiration != nil && current > *tx.Expiration
}

// ReceivingObjects returns the references the transaction intends to
// receive. Only programmable transactions can receive.
func (tx *TransactionData) ReceivingObjects() []ObjectRef {
	pt, ok := tx.Kind.(ProgrammableTransaction)
	if !ok {
		return nil
	}
	var refs []ObjectRef
	for _, input := range pt.Inputs {
		if arg, ok := input.(ReceivingArg); ok {
			refs = append(refs, arg.Ref)
		}
	}
	return refs
}

// InputObjectKinds returns everything the transaction declares as an object
// input. For user transactions the gas payment references are appended as
// owned-object inputs, so every later pass sees gas coins as ordinary
// inputs.
func (tx *TransactionData) InputObjectKinds() ([]InputObjectKind, error) {
	kinds, err := tx.Kind.InputObjectKinds()
	if err != nil {
		return nil, err
	}
	if !tx.IsSystemTx() {
		for _, ref := range tx.GasData.Payment {
			kinds = append(kinds, ImmOrOwnedObjectInput{Ref: ref})
		}
	}
	return kinds, nil
}

// PackageModules is the bytecode of one package: its modules in declaration
// order.
type PackageModules [][]byte

// NonSystemPackagesToPublish returns the module groups declared for
// publication, one group per publish or upgrade command, in command order.
// Upgrades of system packages are excluded; only the protocol may ship
// those.
func (tx *TransactionData) NonSystemPackagesToPublish() []PackageModules {
	pt, ok := tx.Kind.(ProgrammableTransaction)
	if !ok {
		return nil
	}
	var packages []PackageModules
	for _, command := range pt.Commands {
		switch c := command.(type) {
		case PublishCommand:
			packages = append(packages, PackageModules(c.Modules))
		case UpgradeCommand:
			if IsSystemPackage(c.Package) {
				continue
			}
			packages = append(packages, PackageModules(c.Modules))
		}
	}
	return packages
}

// Digest computes the transaction digest over the canonical encoding.
func (tx *TransactionData) Digest() TransactionDigest {
	var expiration interface{}
	if tx.Expiration != nil {
		expiration = uint64(*tx.Expiration)
	}
	return TransactionDigest(canonicalHash(transactionDigestDomain, struct {
		Sender          []byte
		Kind            interface{}
		Payment         []interface{}
		GasOwner        []byte
		GasPrice        uint64
		GasBudget       uint64
		ProtocolVersion uint64
		Expiration      interface{}
	}{
		tx.Sender.Bytes(),
		kindCanonicalForm(tx.Kind),
		refCanonicalForms(tx.GasData.Payment),
		tx.GasData.Owner.Bytes(),
		tx.GasData.Price,
		tx.GasData.Budget,
		uint64(tx.ProtocolVersion),
		expiration,
	}))
}

// CertifiedTransaction is a transaction that already carries a quorum
// certificate. Authentication and structural validation happened when it was
// first signed; later checks treat violations as internal failures, not user
// errors.
type CertifiedTransaction struct {
	Data TransactionData

	// Signatures under the certificate, opaque to admission.
	Signatures []Signature

	// Epoch the certificate was formed in.
	Epoch EpochID
}

// Transaction returns the underlying transaction data.
func (c *CertifiedTransaction) Transaction() *TransactionData {
	return &c.Data
}

func refCanonicalForm(ref ObjectRef) interface{} {
	return struct {
		ID      []byte
		Version uint64
		Digest  []byte
	}{ref.ID.Bytes(), uint64(ref.Version), ref.Digest.Bytes()}
}

func refCanonicalForms(refs []ObjectRef) []interface{} {
	forms := make([]interface{}, 0, len(refs))
	for _, ref := range refs {
		forms = append(forms, refCanonicalForm(ref))
	}
	return forms
}

func inputKindCanonicalForm(kind InputObjectKind) interface{} {
	switch k := kind.(type) {
	case MovePackageInput:
		return struct {
			Tag uint8
			ID  []byte
		}{0, k.PackageID.Bytes()}
	case ImmOrOwnedObjectInput:
		return struct {
			Tag uint8
			Ref interface{}
		}{1, refCanonicalForm(k.Ref)}
	case SharedObjectInput:
		return struct {
			Tag                  uint8
			ID                   []byte
			InitialSharedVersion uint64
			Mutable              bool
		}{2, k.ObjectID.Bytes(), uint64(k.InitialSharedVersion), k.Mutable}
	default:
		panic(fmt.Sprintf("unknown input object kind %T", kind))
	}
}

func callArgCanonicalForm(arg CallArg) interface{} {
	switch a := arg.(type) {
	case PureArg:
		return struct {
			Tag   uint8
			Bytes []byte
		}{0, a.Bytes}
	case ObjectArg:
		return struct {
			Tag  uint8
			Kind interface{}
		}{1, inputKindCanonicalForm(a.Kind)}
	case ReceivingArg:
		return struct {
			Tag uint8
			Ref interface{}
		}{2, refCanonicalForm(a.Ref)}
	default:
		panic(fmt.Sprintf("unknown call arg %T", arg))
	}
}

func commandCanonicalForm(command Command) interface{} {
	switch c := command.(type) {
	case MoveCallCommand:
		return struct {
			Tag           uint8
			Package       []byte
			Module        string
			Function      string
			TypeArguments []string
			Arguments     []uint16
		}{0, c.Package.Bytes(), c.Module, c.Function, c.TypeArguments, c.Arguments}
	case TransferObjectsCommand:
		return struct {
			Tag       uint8
			Objects   []uint16
			Recipient uint16
		}{1, c.Objects, c.Recipient}
	case SplitCoinsCommand:
		return struct {
			Tag     uint8
			Coin    uint16
			Amounts []uint16
		}{2, c.Coin, c.Amounts}
	case MergeCoinsCommand:
		return struct {
			Tag     uint8
			Target  uint16
			Sources []uint16
		}{3, c.Target, c.Sources}
	case PublishCommand:
		return struct {
			Tag          uint8
			Modules      [][]byte
			Dependencies [][]byte
		}{4, c.Modules, objectIDBytes(c.Dependencies)}
	case UpgradeCommand:
		return struct {
			Tag          uint8
			Modules      [][]byte
			Dependencies [][]byte
			Package      []byte
		}{5, c.Modules, objectIDBytes(c.Dependencies), c.Package.Bytes()}
	default:
		panic(fmt.Sprintf("unknown command %T", command))
	}
}

func kindCanonicalForm(kind TransactionKind) interface{} {
	switch k := kind.(type) {
	case ProgrammableTransaction:
		inputs := make([]interface{}, 0, len(k.Inputs))
		for _, input := range k.Inputs {
			inputs = append(inputs, callArgCanonicalForm(input))
		}
		commands := make([]interface{}, 0, len(k.Commands))
		for _, command := range k.Commands {
			commands = append(commands, commandCanonicalForm(command))
		}
		return struct {
			Tag      uint8
			Inputs   []interface{}
			Commands []interface{}
		}{0, inputs, commands}
	case GenesisTransaction:
		return struct {
			Tag uint8
		}{1}
	case ConsensusCommitPrologue:
		return struct {
			Tag               uint8
			Round             uint64
			CommitTimestampMS uint64
		}{2, k.Round, k.CommitTimestampMS}
	case ChangeEpoch:
		return struct {
			Tag                   uint8
			Epoch                 uint64
			ProtocolVersion       uint64
			EpochStartTimestampMS uint64
		}{3, uint64(k.Epoch), uint64(k.ProtocolVersion), k.EpochStartTimestampMS}
	case AuthenticatorStateUpdate:
		return struct {
			Tag   uint8
			Round uint64
		}{4, k.Round}
	default:
		panic(fmt.Sprintf("unknown transaction kind %T", kind))
	}
}

func objectIDBytes(ids []ObjectID) [][]byte {
	out := make([][]byte, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Bytes())
	}
	return out
}
