package store

import "errors"

// ErrNotFound is returned when a record doesn't exist
var ErrNotFound = errors.New("record not found")

// ErrDuplicateKey is returned when an insert or update violates a unique
// constraint, typically a slug or email collision
var ErrDuplicateKey = errors.New("duplicate key")
