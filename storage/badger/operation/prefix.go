package operation

import (
	"encoding/binary"
	"fmt"

	"github.com/basalt-ledger/basalt-go/model/basalt"
)

const (
	// codes for object storage
	codeObject     = 10 // (object id, version) -> object payload
	codeObjectLive = 11 // object id -> live version
	codeTombstone  = 12 // object id -> shared deletion tombstone

	// codes for received-object markers
	codeReceivedMarker = 20 // (epoch, object id, version) -> marker
)

func makePrefix(code byte, keys ...interface{}) []byte {
	prefix := make([]byte, 1)
	prefix[0] = code
	for _, key := range keys {
		prefix = append(prefix, b(key)...)
	}
	return prefix
}

func b(v interface{}) []byte {
	switch i := v.(type) {
	case uint8:
		return []byte{i}
	case uint64:
		val := make([]byte, 8)
		binary.BigEndian.PutUint64(val, i)
		return val
	case basalt.SequenceNumber:
		return b(uint64(i))
	case basalt.EpochID:
		return b(uint64(i))
	case basalt.ObjectID:
		return i.Bytes()
	case []byte:
		return i
	default:
		panic(fmt.Sprintf("unsupported type to convert (%T)", v))
	}
}
