package badger

import (
	"github.com/dgraph-io/badger/v2"
)

// Snapshot bundles the object and marker stores of one database into a
// single read view, the shape admission checks consume.
type Snapshot struct {
	*Objects
	*Markers
}

func NewSnapshot(db *badger.DB) *Snapshot {
	return &Snapshot{
		Objects: NewObjects(db),
		Markers: NewMarkers(db),
	}
}
