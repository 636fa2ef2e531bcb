// Package service contains the business logic of the trip planner API.
// Services validate inputs, enforce ownership, and orchestrate repo calls and
// the planning engine. No SQL lives here; services depend on repo interfaces.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/repo"
)

// TripService reads and deletes the requester's saved trips. Trips are
// created only by PlanService and are never edited.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// GetByID returns one of the requester's trips.
func (s *TripService) GetByID(ctx context.Context, requester domain.Requester, id uuid.UUID) (domain.Trip, error) {
	if err := requireOwner(requester); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	t, err := s.repo.GetByID(ctx, requester.ID, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return t, nil
}

// ListPaged returns one page of the requester's trips, newest first, and
// the requester's total trip count.
func (s *TripService) ListPaged(ctx context.Context, requester domain.Requester, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	if err := requireOwner(requester); err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListPaged: %w", err)
	}
	trips, total, err := s.repo.ListPaged(ctx, requester.ID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListPaged: %w", err)
	}
	return trips, total, nil
}

// Delete removes one of the requester's trips.
func (s *TripService) Delete(ctx context.Context, requester domain.Requester, id uuid.UUID) error {
	if err := requireOwner(requester); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	if err := s.repo.Delete(ctx, requester.ID, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

func requireOwner(r domain.Requester) error {
	if r.ID == "" {
		return fmt.Errorf("%w: requester id is required", domain.ErrValidation)
	}
	return nil
}
