package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/planner"
	"github.com/pkordes/trip-planner/backend/internal/repo"
)

// MaxTripDays bounds the length of a single generated trip.
const MaxTripDays = 30

const tracerName = "github.com/pkordes/trip-planner/backend/internal/service"

// PlanService turns a trip request into a persisted plan: it validates the
// request, loads a read-only snapshot of the destination, runs the engine
// and stores the resulting document as a new trip.
type PlanService struct {
	destinations   repo.DestinationRepo
	activities     repo.ActivityRepo
	accommodations repo.AccommodationRepo
	trips          repo.TripRepo
	engine         *planner.Engine
	logger         *slog.Logger
	tracer         trace.Tracer
}

// PlanOption customizes a PlanService.
type PlanOption func(*PlanService)

// WithLogger sets the logger used for plan summaries. The default discards output.
func WithLogger(l *slog.Logger) PlanOption {
	return func(s *PlanService) { s.logger = l }
}

// WithTracerProvider sets the provider spans are created from. The default
// is the global provider.
func WithTracerProvider(tp trace.TracerProvider) PlanOption {
	return func(s *PlanService) { s.tracer = tp.Tracer(tracerName) }
}

// NewPlanService constructs a PlanService.
func NewPlanService(
	destinations repo.DestinationRepo,
	activities repo.ActivityRepo,
	accommodations repo.AccommodationRepo,
	trips repo.TripRepo,
	engine *planner.Engine,
	opts ...PlanOption,
) *PlanService {
	s := &PlanService{
		destinations:   destinations,
		activities:     activities,
		accommodations: accommodations,
		trips:          trips,
		engine:         engine,
		logger:         slog.New(slog.DiscardHandler),
		tracer:         otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate validates req on behalf of requester, builds a plan and saves it.
// The requester's tier always wins over any tier set on req.
func (s *PlanService) Generate(ctx context.Context, requester domain.Requester, req domain.TripRequest) (domain.Trip, error) {
	ctx, span := s.tracer.Start(ctx, "PlanService.Generate", trace.WithAttributes(
		attribute.Int64("trip.destination_id", req.DestinationID),
		attribute.Int("trip.days", req.Days),
		attribute.Float64("trip.budget", req.TotalBudget),
		attribute.String("trip.accommodation", string(req.Accommodation)),
		attribute.String("requester.tier", string(requester.Tier)),
	))
	defer span.End()

	trip, err := s.generate(ctx, requester, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return domain.Trip{}, fmt.Errorf("service.PlanService.Generate: %w", err)
	}
	span.SetAttributes(attribute.String("trip.id", trip.ID.String()))
	return trip, nil
}

func (s *PlanService) generate(ctx context.Context, requester domain.Requester, req domain.TripRequest) (domain.Trip, error) {
	if err := requireOwner(requester); err != nil {
		return domain.Trip{}, err
	}
	req, err := normalizeRequest(requester, req)
	if err != nil {
		return domain.Trip{}, err
	}

	snap, err := s.loadSnapshot(ctx, req.DestinationID)
	if err != nil {
		return domain.Trip{}, err
	}

	plan, err := s.engine.Generate(snap, req)
	if err != nil {
		return domain.Trip{}, err
	}
	doc, err := json.Marshal(plan)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("encode plan: %w", err)
	}

	s.logger.DebugContext(ctx, "plan generated",
		slog.Int64("destination_id", req.DestinationID),
		slog.Int("days", req.Days),
		slog.String("quality", plan.QualityLevel),
		slog.Bool("accommodation_selected", plan.Accommodation != nil),
		slog.Int("notes", len(plan.Notes)),
		slog.Float64("activities_cost", plan.TotalActivitiesCost),
	)

	return s.trips.Create(ctx, domain.Trip{
		OwnerID:       requester.ID,
		DestinationID: req.DestinationID,
		Days:          req.Days,
		Budget:        req.TotalBudget,
		Interests:     req.Interests,
		Accommodation: req.Accommodation,
		Plan:          doc,
	})
}

// loadSnapshot reads the destination and, concurrently, its activity and
// accommodation inventories.
func (s *PlanService) loadSnapshot(ctx context.Context, destinationID int64) (planner.Snapshot, error) {
	ctx, span := s.tracer.Start(ctx, "PlanService.loadSnapshot")
	defer span.End()

	var snap planner.Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := s.destinations.GetByID(gctx, destinationID)
		snap.Destination = d
		return err
	})
	g.Go(func() error {
		as, err := s.activities.ListByDestination(gctx, destinationID)
		snap.Activities = as
		return err
	})
	g.Go(func() error {
		as, err := s.accommodations.ListByDestination(gctx, destinationID)
		snap.Accommodations = as
		return err
	})
	if err := g.Wait(); err != nil {
		return planner.Snapshot{}, err
	}
	span.SetAttributes(
		attribute.Int("snapshot.activities", len(snap.Activities)),
		attribute.Int("snapshot.accommodations", len(snap.Accommodations)),
	)
	return snap, nil
}

// normalizeRequest applies defaults and checks the business rules a request
// must satisfy before the engine sees it.
func normalizeRequest(requester domain.Requester, req domain.TripRequest) (domain.TripRequest, error) {
	switch {
	case req.Days < 1:
		return req, fmt.Errorf("%w: days must be at least 1", domain.ErrValidation)
	case req.Days > MaxTripDays:
		return req, fmt.Errorf("%w: days must be at most %d", domain.ErrValidation, MaxTripDays)
	case math.IsNaN(req.TotalBudget) || math.IsInf(req.TotalBudget, 0):
		return req, fmt.Errorf("%w: budget must be a finite number", domain.ErrValidation)
	case req.TotalBudget < 0:
		return req, fmt.Errorf("%w: budget must not be negative", domain.ErrValidation)
	}

	if req.Accommodation == "" {
		req.Accommodation = domain.ClassMid
	}
	if !req.Accommodation.Valid() {
		return req, fmt.Errorf("%w: unknown accommodation type %q", domain.ErrValidation, req.Accommodation)
	}

	req.Tier = requester.Tier
	if req.Tier == "" {
		req.Tier = domain.TierFree
	}
	if !req.Tier.Valid() {
		return req, fmt.Errorf("%w: unknown tier %q", domain.ErrValidation, req.Tier)
	}

	req.Interests = NormalizeInterests(req.Interests)
	return req, nil
}
