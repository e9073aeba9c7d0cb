package inmemory

// Snapshot bundles in-memory object and marker stores into one state
// snapshot, matching what admission expects to check against.
type Snapshot struct {
	*Objects
	*Markers
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		Objects: NewObjects(),
		Markers: NewMarkers(),
	}
}
