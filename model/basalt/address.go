package basalt

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// AddressLength is the size of an account address in bytes.
	AddressLength = 32

	// ObjectIDLength is the size of an object identifier in bytes.
	// Object identifiers live in the same space as account addresses.
	ObjectIDLength = AddressLength
)

// Address represents the 32 byte address of an account.
type Address [AddressLength]byte

// ObjectID identifies an object on the ledger. Identifiers are derived from
// the digest of the transaction that created the object and are unique for
// the lifetime of the ledger.
type ObjectID [ObjectIDLength]byte

// ZeroAddress is the address that no account controls.
var ZeroAddress = Address{}

// ZeroObjectID is the all-zero object identifier. It never refers to a live
// object.
var ZeroObjectID = ObjectID{}

// HexToAddress converts a hex string to an Address.
func HexToAddress(h string) Address {
	b, _ := hex.DecodeString(strings.TrimPrefix(h, "0x"))
	return BytesToAddress(b)
}

// BytesToAddress returns an Address with value b.
//
// If b is larger than the address length, b will be cropped from the left.
// If b is smaller than the address length, b will be padded with zeroes at
// the front.
func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
	return a
}

// Bytes returns the byte representation of the address.
func (a Address) Bytes() []byte { return a[:] }

// Hex returns the hex string representation of the address.
func (a Address) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

// String returns the string representation of the address.
func (a Address) String() string {
	return a.Hex()
}

// IsZero returns true if this is the zero address.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

func (a Address) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", a.Hex())), nil
}

func (a *Address) UnmarshalJSON(data []byte) error {
	*a = HexToAddress(strings.Trim(string(data), "\""))
	return nil
}

// HexToObjectID converts a hex string to an ObjectID.
func HexToObjectID(h string) ObjectID {
	return ObjectID(HexToAddress(h))
}

// BytesToObjectID returns an ObjectID with value b, cropped or padded the
// same way as BytesToAddress.
func BytesToObjectID(b []byte) ObjectID {
	return ObjectID(BytesToAddress(b))
}

// Bytes returns the byte representation of the object id.
func (id ObjectID) Bytes() []byte { return id[:] }

// Hex returns the hex string representation of the object id.
func (id ObjectID) Hex() string {
	return "0x" + hex.EncodeToString(id[:])
}

// String returns the string representation of the object id.
func (id ObjectID) String() string {
	return id.Hex()
}

// Address reinterprets the object id as an account address. Child objects
// record their parent this way: the parent id doubles as the owning address.
func (id ObjectID) Address() Address {
	return Address(id)
}

func (id ObjectID) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", id.Hex())), nil
}

func (id *ObjectID) UnmarshalJSON(data []byte) error {
	*id = HexToObjectID(strings.Trim(string(data), "\""))
	return nil
}

// ObjectIDFromAddress reinterprets an account address as an object id.
func ObjectIDFromAddress(a Address) ObjectID {
	return ObjectID(a)
}

// CompareObjectIDs provides a total order over object ids, suitable for
// deterministic iteration.
func CompareObjectIDs(a, b ObjectID) int {
	return bytes.Compare(a[:], b[:])
}
