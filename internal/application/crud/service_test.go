package crud

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/salonsuite/backend/internal/domain/resource"
	"github.com/salonsuite/backend/internal/domain/shared"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) List(ctx context.Context, ownerID uuid.UUID, filters map[string]any, order string) ([]resource.Service, error) {
	args := m.Called(ctx, ownerID, filters, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]resource.Service), args.Error(1)
}

func (m *mockRepo) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*resource.Service, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resource.Service), args.Error(1)
}

func (m *mockRepo) Insert(ctx context.Context, ownerID uuid.UUID, record *resource.Service) error {
	args := m.Called(ctx, ownerID, record)
	return args.Error(0)
}

func (m *mockRepo) Update(ctx context.Context, ownerID, id uuid.UUID, patch map[string]any) (*resource.Service, error) {
	args := m.Called(ctx, ownerID, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resource.Service), args.Error(1)
}

func (m *mockRepo) Remove(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func newTestService(repo *mockRepo) *Service[resource.Service] {
	return NewService[resource.Service](
		Config{Name: "services", Order: "created_at DESC"},
		repo,
		zap.NewNop(),
	)
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	principal := resource.Principal{ID: uuid.New()}

	t.Run("passes the owner and configured order to the store", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newTestService(repo)

		expected := []resource.Service{{Name: "Corte"}}
		repo.On("List", ctx, principal.ID, map[string]any(nil), "created_at DESC").Return(expected, nil)

		records, err := svc.List(ctx, principal, nil)
		require.NoError(t, err)
		assert.Equal(t, expected, records)
		repo.AssertExpectations(t)
	})

	t.Run("surfaces store failures", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newTestService(repo)

		repo.On("List", ctx, principal.ID, map[string]any(nil), "created_at DESC").
			Return(nil, errors.New("connection reset"))

		_, err := svc.List(ctx, principal, nil)
		assert.Error(t, err)
	})
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()
	principal := resource.Principal{ID: uuid.New()}

	t.Run("returns the record", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newTestService(repo)
		id := uuid.New()

		record := &resource.Service{Name: "Corte"}
		repo.On("FindByID", ctx, principal.ID, id).Return(record, nil)

		found, err := svc.Get(ctx, principal, id)
		require.NoError(t, err)
		assert.Equal(t, record, found)
	})

	t.Run("propagates not found unchanged", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newTestService(repo)
		id := uuid.New()

		repo.On("FindByID", ctx, principal.ID, id).Return(nil, shared.ErrNotFound)

		_, err := svc.Get(ctx, principal, id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	principal := resource.Principal{ID: uuid.New()}

	repo := new(mockRepo)
	svc := newTestService(repo)

	record := &resource.Service{Name: "Corte"}
	repo.On("Insert", ctx, principal.ID, record).Return(nil)

	created, err := svc.Create(ctx, principal, record)
	require.NoError(t, err)
	assert.Same(t, record, created)
	repo.AssertExpectations(t)
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	principal := resource.Principal{ID: uuid.New()}

	t.Run("returns the post-update record", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newTestService(repo)
		id := uuid.New()
		patch := map[string]any{"name": "Barba"}

		updated := &resource.Service{Name: "Barba"}
		repo.On("Update", ctx, principal.ID, id, patch).Return(updated, nil)

		record, err := svc.Update(ctx, principal, id, patch)
		require.NoError(t, err)
		assert.Equal(t, updated, record)
	})

	t.Run("propagates not found unchanged", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newTestService(repo)
		id := uuid.New()

		repo.On("Update", ctx, principal.ID, id, mock.Anything).Return(nil, shared.ErrNotFound)

		_, err := svc.Update(ctx, principal, id, map[string]any{"name": "Barba"})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	principal := resource.Principal{ID: uuid.New()}

	t.Run("deletes through the store", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newTestService(repo)
		id := uuid.New()

		repo.On("Remove", ctx, principal.ID, id).Return(nil)

		require.NoError(t, svc.Delete(ctx, principal, id))
		repo.AssertExpectations(t)
	})

	t.Run("propagates not found unchanged", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newTestService(repo)
		id := uuid.New()

		repo.On("Remove", ctx, principal.ID, id).Return(shared.ErrNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, principal, id), shared.ErrNotFound)
	})
}
