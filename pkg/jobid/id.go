// Package jobid defines the job identifier type used across the runner,
// registry and RPC layers.
package jobid

import (
	"errors"

	"github.com/google/uuid"
)

// ID is a job identifier: a 128-bit random value rendered canonically as a
// hyphenated hex string (e.g. "3f9e2c1a-...").
type ID struct {
	u uuid.UUID
}

// ErrInvalid is returned by Parse when the given string is not a
// well-formed ID.
var ErrInvalid = errors.New("invalid id")

// New generates a fresh, random ID.
func New() ID {
	return ID{u: uuid.New()}
}

// Parse parses the canonical string form of an ID. It returns ErrInvalid if
// s is not well-formed.
func Parse(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, ErrInvalid
	}
	return ID{u: u}, nil
}

// String returns the canonical hyphenated hex representation.
func (id ID) String() string {
	return id.u.String()
}

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool {
	return id.u == uuid.Nil
}
