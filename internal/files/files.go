// Package files provides opaque identifiers for loaded source files.
//
// IDs are minted by the import loader when a file is read for the first
// time. Everything else (the AST, the transformation stage, the
// evaluator) treats an ID as an immutable handle and never looks inside.
package files

import "github.com/google/uuid"

// ID identifies a single loaded source file.
type ID struct {
	id uuid.UUID
}

// NewID mints a fresh file identifier.
func NewID() ID {
	return ID{id: uuid.New()}
}

func (f ID) String() string {
	return f.id.String()
}

// IsZero reports whether f is the zero value, i.e. refers to no file.
func (f ID) IsZero() bool {
	return f.id == uuid.UUID{}
}
