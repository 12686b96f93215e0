package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/salonsuite/backend/internal/domain/resource"
	"github.com/salonsuite/backend/internal/domain/shared"
	"github.com/salonsuite/backend/internal/infrastructure/persistence/owner"
)

// Store is the generic owner-scoped adapter over one resource table.
// It is the single place where storage naming meets the canonical record
// shape: patches arrive keyed by column name and leave as typed records.
//
// Update and Remove report a zero-row match as shared.ErrNotFound. The
// caller cannot tell whether the id was wrong or the record belongs to a
// different owner, and it must not be able to.
type Store[T any, PT resource.RecordOf[T]] struct {
	db *gorm.DB
}

// NewStore creates a store adapter for one resource type.
func NewStore[T any, PT resource.RecordOf[T]](db *gorm.DB) *Store[T, PT] {
	return &Store[T, PT]{db: db}
}

// List returns all records for the owner, optionally narrowed by equality
// filters (keyed by column name) and ordered by the given clause.
func (s *Store[T, PT]) List(ctx context.Context, ownerID uuid.UUID, filters map[string]any, order string) ([]T, error) {
	query := s.db.WithContext(ctx).Scopes(owner.Scope(ownerID))
	if len(filters) > 0 {
		query = query.Where(filters)
	}
	if order != "" {
		query = query.Order(order)
	}

	// An empty result is an empty list on the wire, never null.
	records := make([]T, 0)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindByID returns the record matching id AND owner, or shared.ErrNotFound.
func (s *Store[T, PT]) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*T, error) {
	var record T
	err := s.db.WithContext(ctx).Scopes(owner.ByID(ownerID, id)).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Insert persists a new record. The owner reference is always stamped from
// the given principal id, overriding any value already on the record.
func (s *Store[T, PT]) Insert(ctx context.Context, ownerID uuid.UUID, record *T) error {
	PT(record).SetOwnerID(ownerID)
	return s.db.WithContext(ctx).Create(record).Error
}

// Update applies a column-keyed patch to the record matching id AND owner
// and returns the post-update record. An empty patch degenerates to a fetch,
// so retrying the same no-op update stays safe.
func (s *Store[T, PT]) Update(ctx context.Context, ownerID, id uuid.UUID, patch map[string]any) (*T, error) {
	// The owner reference and id are immutable once created.
	delete(patch, "owner_id")
	delete(patch, "id")

	if len(patch) == 0 {
		return s.FindByID(ctx, ownerID, id)
	}

	result := s.db.WithContext(ctx).
		Model(new(T)).
		Scopes(owner.ByID(ownerID, id)).
		Updates(patch)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}
	return s.FindByID(ctx, ownerID, id)
}

// Remove deletes the record matching id AND owner. Removing an already
// removed (or foreign) record deterministically yields shared.ErrNotFound.
func (s *Store[T, PT]) Remove(ctx context.Context, ownerID, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Scopes(owner.ByID(ownerID, id)).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
