// Package resource defines the owned resource records managed by the API.
//
// Every record carries an immutable owner reference. The owner is stamped
// from the authenticated principal on insert and conjoined to every query,
// so no code path can read or write a record across owner boundaries.
package resource

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Principal is the authenticated actor a request executes on behalf of.
// It is produced by the auth middleware and never persisted here.
type Principal struct {
	ID    uuid.UUID
	Email string
}

// OwnedRecord provides the common persistence fields shared by every
// resource: a store-assigned ID, the owner reference and audit timestamps.
type OwnedRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetID returns the record identifier.
func (r *OwnedRecord) GetID() uuid.UUID { return r.ID }

// GetOwnerID returns the owning principal's identifier.
func (r *OwnedRecord) GetOwnerID() uuid.UUID { return r.OwnerID }

// SetOwnerID binds the record to a principal. The store adapter calls this
// on every insert, overriding anything a client may have supplied.
func (r *OwnedRecord) SetOwnerID(id uuid.UUID) { r.OwnerID = id }

// BeforeCreate assigns a new UUID when the store has not been given one.
func (r *OwnedRecord) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Record is the behaviour every owned resource exposes to the generic
// store adapter and CRUD engine.
type Record interface {
	GetID() uuid.UUID
	GetOwnerID() uuid.UUID
	SetOwnerID(uuid.UUID)
}

// RecordOf constrains a pointer type to be an owned record over T.
// It lets generic code accept *T while still reaching the Record methods.
type RecordOf[T any] interface {
	*T
	Record
}
