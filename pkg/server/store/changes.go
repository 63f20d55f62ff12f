package store

import "errors"

var (
	// ErrNotFound indicates the addressed row does not exist or has
	// been soft-deleted.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a natural key collides with a live row.
	ErrDuplicate = errors.New("record already exists")
)

// Change is one column assignment in a create or update statement.
// Handlers translate recognized request fields into Changes so that
// unknown fields never reach SQL.
type Change struct {
	Column string
	Value  interface{}
}
