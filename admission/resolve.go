package admission

import (
	"fmt"

	"github.com/basalt-ledger/basalt-go/admission/errors"
	"github.com/basalt-ledger/basalt-go/model/basalt"
	"github.com/basalt-ledger/basalt-go/storage"
)

// ResolveInputObjects resolves declared input kinds against an object store
// snapshot, in declaration order. Owned inputs are fetched at their exact
// declared version, packages and shared objects at their live version. A
// shared input whose object was deleted resolves to its tombstone rather
// than failing, so execution can record the access deterministically.
func ResolveInputObjects(objects ObjectReader, kinds []basalt.InputObjectKind) (*basalt.InputObjects, error) {
	inputs := basalt.NewInputObjects()
	for _, kind := range kinds {
		switch k := kind.(type) {

		case basalt.MovePackageInput:
			object, err := objects.ByID(k.PackageID)
			if errors.Is(err, storage.ErrNotFound) {
				return nil, errors.NewObjectNotFoundError(k.PackageID)
			}
			if err != nil {
				return nil, errors.NewStorageFailure(fmt.Errorf("could not retrieve package %s: %w", k.PackageID, err))
			}
			inputs.Push(basalt.NewObjectReadResult(kind, object))

		case basalt.ImmOrOwnedObjectInput:
			object, err := objects.ByIDVersion(k.Ref.ID, k.Ref.Version)
			if errors.Is(err, storage.ErrNotFound) {
				return nil, errors.NewObjectNotFoundAtVersionError(k.Ref.ID, k.Ref.Version)
			}
			if err != nil {
				return nil, errors.NewStorageFailure(fmt.Errorf("could not retrieve object %s: %w", k.Ref.ID, err))
			}
			inputs.Push(basalt.NewObjectReadResult(kind, object))

		case basalt.SharedObjectInput:
			object, err := objects.ByID(k.ObjectID)
			if err == nil {
				inputs.Push(basalt.NewObjectReadResult(kind, object))
				continue
			}
			if !errors.Is(err, storage.ErrNotFound) {
				return nil, errors.NewStorageFailure(fmt.Errorf("could not retrieve shared object %s: %w", k.ObjectID, err))
			}
			tombstone, terr := objects.TombstoneByID(k.ObjectID)
			if errors.Is(terr, storage.ErrNotFound) {
				return nil, errors.NewObjectNotFoundError(k.ObjectID)
			}
			if terr != nil {
				return nil, errors.NewStorageFailure(fmt.Errorf("could not retrieve tombstone for %s: %w", k.ObjectID, terr))
			}
			inputs.Push(basalt.NewDeletedSharedReadResult(kind, tombstone.Version, tombstone.DeletedBy))

		default:
			return nil, errors.NewUnknownFailure(fmt.Errorf("unknown input object kind %T", kind))
		}
	}
	return inputs, nil
}
