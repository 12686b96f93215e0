// Package owner provides ownership scoping for GORM queries.
//
// Every query the store adapter issues is conjoined with
// WHERE owner_id = ? so cross-owner reads and writes are impossible at the
// repository layer. Point lookups additionally conjoin the record id, which
// makes a record owned by someone else indistinguishable from a record that
// does not exist.
package owner

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrOwnerRequired is returned when a query is attempted without an owner id
var ErrOwnerRequired = errors.New("owner_id is required but was not provided")

// Scope conjoins the owner condition to a query.
func Scope(ownerID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if ownerID == uuid.Nil {
			_ = db.AddError(ErrOwnerRequired)
			return db
		}
		return db.Where("owner_id = ?", ownerID)
	}
}

// ByID conjoins id and owner into one predicate for point lookups.
// Both update and delete paths must use this scope, never a bare id match.
func ByID(ownerID, id uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if ownerID == uuid.Nil {
			_ = db.AddError(ErrOwnerRequired)
			return db
		}
		return db.Where("id = ? AND owner_id = ?", id, ownerID)
	}
}
