package model

import "github.com/google/uuid"

// IDGen produces the stable identifiers attached to list items. It is an
// interface so tests can substitute a deterministic sequence.
type IDGen interface {
	NewID() string
}

// UUIDGen is the production generator.
type UUIDGen struct{}

func (UUIDGen) NewID() string { return uuid.NewString() }
