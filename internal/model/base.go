// Package model holds the persistence entities of the blog backend, their
// status enums and the PagedResult envelope.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Entity carries the identity and audit timestamps shared by every table.
// IDs are generated by the application, never by the store.
type Entity struct {
	ID        uuid.UUID  `bun:"id,pk,type:uuid" json:"id"`
	CreatedAt time.Time  `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt *time.Time `bun:"updated_at,nullzero" json:"updated_at,omitempty"`
}

// SoftDeletableEntity is an Entity that is flagged instead of removed.
type SoftDeletableEntity struct {
	Entity
	Deleted   bool       `bun:"deleted,notnull,default:false" json:"deleted"`
	DeletedAt *time.Time `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
}

// Record is implemented by every soft deletable entity pointer.
type Record interface {
	GetID() uuid.UUID
	SetID(id uuid.UUID)
	Touch(now time.Time)
	Stamp(now time.Time)
	MarkDeleted(now time.Time)
	IsDeleted() bool
}

func (e *Entity) GetID() uuid.UUID { return e.ID }

func (e *Entity) SetID(id uuid.UUID) { e.ID = id }

// Stamp sets CreatedAt once; later calls leave it untouched.
func (e *Entity) Stamp(now time.Time) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
}

// Touch refreshes the last update timestamp.
func (e *Entity) Touch(now time.Time) {
	e.UpdatedAt = &now
}

// LastModified returns UpdatedAt, falling back to CreatedAt.
func (e *Entity) LastModified() time.Time {
	if e.UpdatedAt != nil {
		return *e.UpdatedAt
	}
	return e.CreatedAt
}

func (e *SoftDeletableEntity) MarkDeleted(now time.Time) {
	e.Deleted = true
	e.DeletedAt = &now
}

func (e *SoftDeletableEntity) IsDeleted() bool { return e.Deleted }
