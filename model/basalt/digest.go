package basalt

import (
	"encoding/hex"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

// DigestLength is the size of a content digest in bytes.
const DigestLength = 32

// ObjectDigest is the blake2b-256 digest of an object's canonical encoding.
type ObjectDigest [DigestLength]byte

// TransactionDigest is the blake2b-256 digest of a transaction's canonical
// encoding.
type TransactionDigest [DigestLength]byte

// PackageDigest is the blake2b-256 digest of a package's module bytes.
type PackageDigest [DigestLength]byte

// Domain separation tags for digest computation. Hashing different entity
// kinds under distinct tags keeps their digest spaces disjoint.
const (
	objectDigestDomain         = "basalt.Object"
	transactionDigestDomain    = "basalt.TransactionData"
	packageModulesDigestDomain = "basalt.PackageModules"
)

// cborEnc is the canonical encoder used for all digest computation. Core
// deterministic encoding guarantees every node derives the same bytes for
// the same entity.
var cborEnc cbor.EncMode

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("could not initialize canonical cbor encoder: %v", err))
	}
}

// canonicalHash encodes the entity canonically and hashes it under the given
// domain tag.
func canonicalHash(domain string, entity interface{}) [DigestLength]byte {
	data, err := cborEnc.Marshal(entity)
	if err != nil {
		// All hashed entities are defined in this package and are always
		// encodable; failing to encode one is a programming error.
		panic(fmt.Sprintf("could not encode entity for hashing: %v", err))
	}

	hasher, err := blake2b.New256(nil)
	if err != nil {
		panic(fmt.Sprintf("could not construct hasher: %v", err))
	}
	_, _ = hasher.Write([]byte(domain))
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.Write(data)

	var digest [DigestLength]byte
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// Digest returns the canonical digest of the package's module bytes. It keys
// caches of already verified packages.
func (pm PackageModules) Digest() PackageDigest {
	return canonicalHash(packageModulesDigestDomain, [][]byte(pm))
}

func (d ObjectDigest) String() string {
	return hex.EncodeToString(d[:])
}

func (d TransactionDigest) String() string {
	return hex.EncodeToString(d[:])
}

func (d PackageDigest) String() string {
	return hex.EncodeToString(d[:])
}

// Bytes returns the byte representation of the digest.
func (d ObjectDigest) Bytes() []byte { return d[:] }

// Bytes returns the byte representation of the digest.
func (d TransactionDigest) Bytes() []byte { return d[:] }
