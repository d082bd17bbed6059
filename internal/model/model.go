// Package model defines the domain entities for SkillHub.
package model

import "github.com/google/uuid"

// Entity is implemented by every record kept in a collection.
type Entity interface {
	// EntityID returns the opaque unique identifier of the record.
	EntityID() string
}

// NewID generates a fresh opaque identifier.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does; fall back to v4.
		return uuid.NewString()
	}
	return id.String()
}
