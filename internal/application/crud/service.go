// Package crud implements the owner-scoped CRUD engine shared by every
// resource type. Each resource is one instantiation of Service with its own
// repository, default ordering and name; there is no per-resource logic
// beyond the configuration passed in here.
package crud

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/salonsuite/backend/internal/domain/resource"
	"github.com/salonsuite/backend/internal/domain/shared"
	"github.com/salonsuite/backend/internal/infrastructure/logger"
)

// Repository is the store adapter contract the engine drives. Every method
// is owner-scoped; implementations must treat a zero-row match on update or
// remove as shared.ErrNotFound.
type Repository[T any] interface {
	List(ctx context.Context, ownerID uuid.UUID, filters map[string]any, order string) ([]T, error)
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*T, error)
	Insert(ctx context.Context, ownerID uuid.UUID, record *T) error
	Update(ctx context.Context, ownerID, id uuid.UUID, patch map[string]any) (*T, error)
	Remove(ctx context.Context, ownerID, id uuid.UUID) error
}

// Config carries the per-resource customization points.
type Config struct {
	// Name identifies the resource in logs and cache keys, e.g. "services".
	Name string
	// Order is the default ordering clause for list queries,
	// e.g. "created_at DESC". Empty means insertion order.
	Order string
}

// Service is the generic engine instantiated once per resource type.
type Service[T any] struct {
	cfg  Config
	repo Repository[T]
	log  *zap.Logger
}

// NewService creates a CRUD service for one resource type.
func NewService[T any](cfg Config, repo Repository[T], log *zap.Logger) *Service[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service[T]{cfg: cfg, repo: repo, log: log.With(zap.String("resource", cfg.Name))}
}

// Name returns the resource name this service was configured with.
func (s *Service[T]) Name() string { return s.cfg.Name }

// List returns the principal's records, ordered by the resource default.
func (s *Service[T]) List(ctx context.Context, p resource.Principal, filters map[string]any) ([]T, error) {
	records, err := s.repo.List(ctx, p.ID, filters, s.cfg.Order)
	if err != nil {
		return nil, s.storeFault(ctx, "list", err)
	}
	return records, nil
}

// Get returns one record by id. A record owned by another principal yields
// shared.ErrNotFound, same as a missing one.
func (s *Service[T]) Get(ctx context.Context, p resource.Principal, id uuid.UUID) (*T, error) {
	record, err := s.repo.FindByID(ctx, p.ID, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, s.storeFault(ctx, "get", err)
	}
	return record, nil
}

// Create persists a new record owned by the principal. The owner reference
// is stamped inside the store adapter regardless of the record's current
// value.
func (s *Service[T]) Create(ctx context.Context, p resource.Principal, record *T) (*T, error) {
	if err := s.repo.Insert(ctx, p.ID, record); err != nil {
		return nil, s.storeFault(ctx, "create", err)
	}
	return record, nil
}

// Update applies a patch to the principal's record and returns the
// post-update state.
func (s *Service[T]) Update(ctx context.Context, p resource.Principal, id uuid.UUID, patch map[string]any) (*T, error) {
	record, err := s.repo.Update(ctx, p.ID, id, patch)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, s.storeFault(ctx, "update", err)
	}
	return record, nil
}

// Delete removes the principal's record. Deleting an already removed record
// returns shared.ErrNotFound, never a fault.
func (s *Service[T]) Delete(ctx context.Context, p resource.Principal, id uuid.UUID) error {
	err := s.repo.Remove(ctx, p.ID, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrNotFound
		}
		return s.storeFault(ctx, "delete", err)
	}
	return nil
}

// storeFault logs the full failure server-side and returns the bare error.
// The transport layer converts anything that is not a DomainError into an
// opaque 500 so storage internals never reach the caller.
func (s *Service[T]) storeFault(ctx context.Context, op string, err error) error {
	s.log.Error("store operation failed",
		zap.String("op", op),
		zap.String("request_id", logger.GetRequestID(ctx)),
		zap.String("owner_id", logger.GetOwnerID(ctx)),
		zap.Error(err),
	)
	return err
}
