package basalt

import (
	"fmt"
)

// InputObjectKind is a transaction's declaration of one object it intends to
// use. It is a closed sum: MovePackageInput, ImmOrOwnedObjectInput and
// SharedObjectInput are the only implementations.
type InputObjectKind interface {
	isInputObjectKind()

	// ID returns the identity of the declared object.
	ID() ObjectID

	String() string
}

// MovePackageInput declares a dependency on a published package. Packages
// are immutable, so no version or digest claim accompanies the id.
type MovePackageInput struct {
	PackageID ObjectID
}

// ImmOrOwnedObjectInput declares an immutable or address-owned object at an
// exact (version, digest) the author observed.
type ImmOrOwnedObjectInput struct {
	Ref ObjectRef
}

// SharedObjectInput declares a shared object by id and initial shared
// version, and whether the transaction wants mutable access to it.
type SharedObjectInput struct {
	ObjectID             ObjectID
	InitialSharedVersion SequenceNumber
	Mutable              bool
}

func (MovePackageInput) isInputObjectKind()      {}
func (ImmOrOwnedObjectInput) isInputObjectKind() {}
func (SharedObjectInput) isInputObjectKind()     {}

func (k MovePackageInput) ID() ObjectID {
	return k.PackageID
}

func (k ImmOrOwnedObjectInput) ID() ObjectID {
	return k.Ref.ID
}

func (k SharedObjectInput) ID() ObjectID {
	return k.ObjectID
}

func (k MovePackageInput) String() string {
	return fmt.Sprintf("MovePackage(%s)", k.PackageID)
}

func (k ImmOrOwnedObjectInput) String() string {
	return fmt.Sprintf("ImmOrOwnedObject%s", k.Ref)
}

func (k SharedObjectInput) String() string {
	return fmt.Sprintf("SharedObject(%s, initial=%d, mutable=%t)", k.ObjectID, k.InitialSharedVersion, k.Mutable)
}

// DeletedSharedObject is the tombstone left behind when a shared object is
// deleted. Transactions referencing the object after deletion still resolve,
// so that execution can record the access deterministically.
type DeletedSharedObject struct {
	// Version the tombstone was written at.
	Version SequenceNumber

	// DeletedBy is the transaction that performed the deletion.
	DeletedBy TransactionDigest
}

// ObjectReadResult pairs one declared input with what the store resolved for
// it. Exactly one of Object and Deleted is set: Deleted is only ever set for
// shared object inputs.
type ObjectReadResult struct {
	InputKind InputObjectKind

	Object  *Object
	Deleted *DeletedSharedObject
}

// NewObjectReadResult builds a read result for an input that resolved to a
// live object.
func NewObjectReadResult(kind InputObjectKind, object *Object) ObjectReadResult {
	return ObjectReadResult{
		InputKind: kind,
		Object:    object,
	}
}

// NewReadResultFromGasObject wraps a caller-supplied gas coin as an owned
// input read result.
func NewReadResultFromGasObject(gas *Object) ObjectReadResult {
	return NewObjectReadResult(ImmOrOwnedObjectInput{Ref: gas.Reference()}, gas)
}

// NewDeletedSharedReadResult builds a read result for a shared input that
// resolved to a deletion tombstone.
func NewDeletedSharedReadResult(kind InputObjectKind, version SequenceNumber, deletedBy TransactionDigest) ObjectReadResult {
	return ObjectReadResult{
		InputKind: kind,
		Deleted: &DeletedSharedObject{
			Version:   version,
			DeletedBy: deletedBy,
		},
	}
}

// ID returns the identity of the resolved input.
func (r *ObjectReadResult) ID() ObjectID {
	return r.InputKind.ID()
}

// IsDeletedShared returns true if the input resolved to a deletion tombstone
// rather than a live object.
func (r *ObjectReadResult) IsDeletedShared() bool {
	return r.Deleted != nil
}

// IsMutable returns true if the transaction could mutate this input:
// an owned (non-immutable) object, or a shared object declared mutable.
// Packages and immutable objects are never mutable.
func (r *ObjectReadResult) IsMutable() bool {
	switch kind := r.InputKind.(type) {
	case MovePackageInput:
		return false
	case ImmOrOwnedObjectInput:
		// Tombstones only ever resolve for shared inputs.
		return r.Object != nil && !r.Object.IsImmutable()
	case SharedObjectInput:
		return kind.Mutable
	default:
		return false
	}
}

// InputObjects is the resolved set of a transaction's declared inputs, in
// declaration order.
type InputObjects struct {
	results []ObjectReadResult
}

// NewInputObjects builds an input set from resolved read results.
func NewInputObjects(results ...ObjectReadResult) *InputObjects {
	return &InputObjects{results: results}
}

// Push appends one resolved input.
func (io *InputObjects) Push(result ObjectReadResult) {
	io.results = append(io.results, result)
}

// Len returns the number of resolved inputs.
func (io *InputObjects) Len() int {
	return len(io.results)
}

// Results returns the resolved inputs in declaration order.
func (io *InputObjects) Results() []ObjectReadResult {
	return io.results
}

// ObjectKinds returns the declared kinds in declaration order.
func (io *InputObjects) ObjectKinds() []InputObjectKind {
	kinds := make([]InputObjectKind, 0, len(io.results))
	for i := range io.results {
		kinds = append(kinds, io.results[i].InputKind)
	}
	return kinds
}

// Objects returns the live objects among the inputs, in declaration order.
// Deleted shared inputs are skipped.
func (io *InputObjects) Objects() []*Object {
	objects := make([]*Object, 0, len(io.results))
	for i := range io.results {
		if io.results[i].Object != nil {
			objects = append(objects, io.results[i].Object)
		}
	}
	return objects
}

// DeletedSharedObjects returns the ids of shared inputs that resolved to
// deletion tombstones, in declaration order.
func (io *InputObjects) DeletedSharedObjects() []ObjectID {
	var deleted []ObjectID
	for i := range io.results {
		if io.results[i].IsDeletedShared() {
			deleted = append(deleted, io.results[i].ID())
		}
	}
	return deleted
}
