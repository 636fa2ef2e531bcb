// Package handler implements the HTTP handlers of the trip planner API.
// All handlers are methods on Server. Methods are split into resource files
// (health.go, trip.go, interest.go) but share the Server struct and its
// dependencies. Routes registers them on a chi router.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/middleware"
	"github.com/pkordes/trip-planner/backend/spec"
)

// TripServicer defines the saved-trip operations the handlers depend on.
// Interfaces are declared here, in the consumer package, so handler tests can
// inject mocks without a database.
type TripServicer interface {
	GetByID(ctx context.Context, requester domain.Requester, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, requester domain.Requester, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Delete(ctx context.Context, requester domain.Requester, id uuid.UUID) error
}

// PlanServicer generates and saves a new plan.
type PlanServicer interface {
	Generate(ctx context.Context, requester domain.Requester, req domain.TripRequest) (domain.Trip, error)
}

// InterestServicer lists the interest vocabulary.
type InterestServicer interface {
	List(ctx context.Context, prefix string) ([]string, error)
}

// Server holds the dependencies of every handler.
type Server struct {
	trips     TripServicer
	plans     PlanServicer
	interests InterestServicer
	logger    *slog.Logger
}

// NewServer constructs the Server with all its dependencies. A nil logger
// discards output.
func NewServer(trips TripServicer, plans PlanServicer, interests InterestServicer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{trips: trips, plans: plans, interests: interests, logger: logger}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil)
}

// Routes returns a router serving every API endpoint. Trip routes require a
// requester id; NewRequesterHandler must run earlier in the chain.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)
	r.Get("/interests", s.ListInterests)

	r.Route("/trips", func(r chi.Router) {
		r.Use(middleware.RequireRequester)
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)
		r.Get("/{id}", s.GetTrip)
		r.Delete("/{id}", s.DeleteTrip)
	})
	return r
}

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
