package repository

import "errors"

// Storage-level sentinel errors. Services translate these into their own
// error vocabulary; handlers never see them directly.
var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint is violated.
	ErrDuplicate = errors.New("duplicate record")
	// ErrReferenced is returned when a row cannot be deleted because other
	// rows still point at it.
	ErrReferenced = errors.New("record is referenced")
)
