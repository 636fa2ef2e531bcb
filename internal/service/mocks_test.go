package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/repo"
)

// Hand-written test doubles. Each method is a function field; set only the
// ones your test needs.

type mockTripRepo struct {
	create    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID   func(ctx context.Context, ownerID string, id uuid.UUID) (domain.Trip, error)
	listPaged func(ctx context.Context, ownerID string, p domain.PaginationParams) ([]domain.Trip, int64, error)
	delete    func(ctx context.Context, ownerID string, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, ownerID string, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, ownerID, id)
}
func (m *mockTripRepo) ListPaged(ctx context.Context, ownerID string, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, ownerID, p)
}
func (m *mockTripRepo) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	return m.delete(ctx, ownerID, id)
}

type mockDestinationRepo struct {
	getByID func(ctx context.Context, id int64) (domain.Destination, error)
}

func (m *mockDestinationRepo) GetByID(ctx context.Context, id int64) (domain.Destination, error) {
	return m.getByID(ctx, id)
}

type mockActivityRepo struct {
	listByDestination func(ctx context.Context, destinationID int64) ([]domain.Activity, error)
	listTags          func(ctx context.Context, prefix string) ([]string, error)
}

func (m *mockActivityRepo) ListByDestination(ctx context.Context, destinationID int64) ([]domain.Activity, error) {
	return m.listByDestination(ctx, destinationID)
}
func (m *mockActivityRepo) ListTags(ctx context.Context, prefix string) ([]string, error) {
	return m.listTags(ctx, prefix)
}

type mockAccommodationRepo struct {
	listByDestination func(ctx context.Context, destinationID int64) ([]domain.Accommodation, error)
}

func (m *mockAccommodationRepo) ListByDestination(ctx context.Context, destinationID int64) ([]domain.Accommodation, error) {
	return m.listByDestination(ctx, destinationID)
}

// compile-time checks
var (
	_ repo.TripRepo          = (*mockTripRepo)(nil)
	_ repo.DestinationRepo   = (*mockDestinationRepo)(nil)
	_ repo.ActivityRepo      = (*mockActivityRepo)(nil)
	_ repo.AccommodationRepo = (*mockAccommodationRepo)(nil)
)
