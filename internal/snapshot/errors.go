package snapshot

import "errors"

var (
	ErrSnapshotSchemaMismatch = errors.New("snapshot: no schema matches snapshot hash")
	ErrCustomTypeUnhandled    = errors.New("snapshot: custom type field without a custom handler")
	ErrUnknownType            = errors.New("snapshot: unknown field type")
)
