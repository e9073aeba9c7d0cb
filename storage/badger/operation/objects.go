package operation

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/basalt-ledger/basalt-go/model/basalt"
)

// storedObject is the storage layout of an object. The owner sum is
// flattened into a tag plus payload fields so the codec never sees an
// interface value.
type storedObject struct {
	OwnerTag             uint8
	OwnerAddress         []byte
	OwnerParent          []byte
	InitialSharedVersion uint64
	PreviousTransaction  []byte

	Move    *storedMoveObject
	Package *storedPackage
}

type storedMoveObject struct {
	ID                []byte
	Type              string
	Version           uint64
	HasPublicTransfer bool
	Contents          []byte
}

type storedPackage struct {
	ID      []byte
	Version uint64
	Modules map[string][]byte
}

type storedTombstone struct {
	Version   uint64
	DeletedBy []byte
}

const (
	ownerTagAddress = iota
	ownerTagObject
	ownerTagShared
	ownerTagImmutable
)

func toStoredObject(object *basalt.Object) (*storedObject, error) {
	stored := &storedObject{
		PreviousTransaction: object.PreviousTransaction.Bytes(),
	}
	switch owner := object.Owner.(type) {
	case basalt.AddressOwner:
		stored.OwnerTag = ownerTagAddress
		stored.OwnerAddress = owner.Address.Bytes()
	case basalt.ObjectOwner:
		stored.OwnerTag = ownerTagObject
		stored.OwnerParent = owner.Parent.Bytes()
	case basalt.SharedOwner:
		stored.OwnerTag = ownerTagShared
		stored.InitialSharedVersion = uint64(owner.InitialSharedVersion)
	case basalt.Immutable:
		stored.OwnerTag = ownerTagImmutable
	default:
		return nil, fmt.Errorf("unsupported owner kind (%T)", object.Owner)
	}
	if object.Move != nil {
		stored.Move = &storedMoveObject{
			ID:                object.Move.ID.Bytes(),
			Type:              object.Move.Type,
			Version:           uint64(object.Move.Version),
			HasPublicTransfer: object.Move.HasPublicTransfer,
			Contents:          object.Move.Contents,
		}
	}
	if object.Package != nil {
		stored.Package = &storedPackage{
			ID:      object.Package.ID.Bytes(),
			Version: uint64(object.Package.Version),
			Modules: object.Package.Modules,
		}
	}
	return stored, nil
}

func (s *storedObject) decode() (*basalt.Object, error) {
	object := &basalt.Object{}
	copy(object.PreviousTransaction[:], s.PreviousTransaction)
	switch s.OwnerTag {
	case ownerTagAddress:
		object.Owner = basalt.AddressOwner{Address: basalt.BytesToAddress(s.OwnerAddress)}
	case ownerTagObject:
		object.Owner = basalt.ObjectOwner{Parent: basalt.BytesToObjectID(s.OwnerParent)}
	case ownerTagShared:
		object.Owner = basalt.SharedOwner{InitialSharedVersion: basalt.SequenceNumber(s.InitialSharedVersion)}
	case ownerTagImmutable:
		object.Owner = basalt.Immutable{}
	default:
		return nil, fmt.Errorf("unsupported owner tag (%d)", s.OwnerTag)
	}
	if s.Move != nil {
		object.Move = &basalt.MoveObject{
			ID:                basalt.BytesToObjectID(s.Move.ID),
			Type:              s.Move.Type,
			Version:           basalt.SequenceNumber(s.Move.Version),
			HasPublicTransfer: s.Move.HasPublicTransfer,
			Contents:          s.Move.Contents,
		}
	}
	if s.Package != nil {
		object.Package = &basalt.MovePackage{
			ID:      basalt.BytesToObjectID(s.Package.ID),
			Version: basalt.SequenceNumber(s.Package.Version),
			Modules: s.Package.Modules,
		}
	}
	return object, nil
}

// InsertObject inserts the object payload, keyed by id and version.
func InsertObject(object *basalt.Object) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {
		stored, err := toStoredObject(object)
		if err != nil {
			return err
		}
		return insert(makePrefix(codeObject, object.ID(), object.Version()), stored)(tx)
	}
}

// RetrieveObject retrieves the object payload at an exact version.
func RetrieveObject(objectID basalt.ObjectID, version basalt.SequenceNumber, object *basalt.Object) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {
		var stored storedObject
		err := retrieve(makePrefix(codeObject, objectID, version), &stored)(tx)
		if err != nil {
			return err
		}
		decoded, err := stored.decode()
		if err != nil {
			return err
		}
		*object = *decoded
		return nil
	}
}

// UpsertLiveVersion points the live index for the object at the version.
func UpsertLiveVersion(objectID basalt.ObjectID, version basalt.SequenceNumber) func(*badger.Txn) error {
	return upsert(makePrefix(codeObjectLive, objectID), uint64(version))
}

// RetrieveLiveVersion retrieves the live version of the object.
func RetrieveLiveVersion(objectID basalt.ObjectID, version *basalt.SequenceNumber) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {
		var raw uint64
		err := retrieve(makePrefix(codeObjectLive, objectID), &raw)(tx)
		if err != nil {
			return err
		}
		*version = basalt.SequenceNumber(raw)
		return nil
	}
}

// RemoveLiveVersion removes the live index entry for the object.
func RemoveLiveVersion(objectID basalt.ObjectID) func(*badger.Txn) error {
	return remove(makePrefix(codeObjectLive, objectID))
}

// InsertTombstone records the shared deletion tombstone for the object.
func InsertTombstone(objectID basalt.ObjectID, tombstone basalt.DeletedSharedObject) func(*badger.Txn) error {
	stored := storedTombstone{
		Version:   uint64(tombstone.Version),
		DeletedBy: tombstone.DeletedBy.Bytes(),
	}
	return insert(makePrefix(codeTombstone, objectID), stored)
}

// RetrieveTombstone retrieves the shared deletion tombstone for the object.
func RetrieveTombstone(objectID basalt.ObjectID, tombstone *basalt.DeletedSharedObject) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {
		var stored storedTombstone
		err := retrieve(makePrefix(codeTombstone, objectID), &stored)(tx)
		if err != nil {
			return err
		}
		tombstone.Version = basalt.SequenceNumber(stored.Version)
		copy(tombstone.DeletedBy[:], stored.DeletedBy)
		return nil
	}
}
