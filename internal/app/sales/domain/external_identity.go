package domain

import "github.com/google/uuid"

// ExternalIdentity is a reference to an entity owned by another subsystem
// (customer, branch, product). The core never resolves or validates these;
// callers supply fully-formed values from the boundary.
// Equality is by id.
type ExternalIdentity struct {
	id   uuid.UUID
	name string
}

// NewExternalIdentity constructs an ExternalIdentity. Id and name are passed
// through as-is.
func NewExternalIdentity(id uuid.UUID, name string) ExternalIdentity {
	return ExternalIdentity{id: id, name: name}
}

// ID returns the external id.
func (e ExternalIdentity) ID() uuid.UUID {
	return e.id
}

// Name returns the display name captured at the boundary.
func (e ExternalIdentity) Name() string {
	return e.name
}

// Equals compares identities by id.
func (e ExternalIdentity) Equals(other ExternalIdentity) bool {
	return e.id == other.id
}

// IsZero reports whether the identity was never set.
func (e ExternalIdentity) IsZero() bool {
	return e.id == uuid.Nil && e.name == ""
}
