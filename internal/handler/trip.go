package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/middleware"
)

// createTripRequest is the body of POST /trips.
type createTripRequest struct {
	DestinationID     *int64   `json:"destinationId"`
	Days              *int     `json:"days"`
	Budget            *float64 `json:"budget"`
	Interests         []string `json:"interests"`
	AccommodationType string   `json:"accommodationType"`
}

// tripPage is the body of GET /trips.
type tripPage struct {
	Data       []domain.Trip `json:"data"`
	Pagination pagination    `json:"pagination"`
}

type pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", "request body must be a JSON object")
		return
	}
	req, err := requestToTripRequest(body)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	created, err := s.plans.Generate(r.Context(), middleware.RequesterFromContext(r.Context()), req)
	if err != nil {
		s.writeServiceError(w, r, err, "destination not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	var page, limit *int
	if err := runtime.BindQueryParameter("form", true, false, "page", r.URL.Query(), &page); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid page parameter")
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &limit); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid limit parameter")
		return
	}
	params := domain.NewPaginationParams(page, limit)

	trips, total, err := s.trips.ListPaged(r.Context(), middleware.RequesterFromContext(r.Context()), params)
	if err != nil {
		s.writeServiceError(w, r, err, "trips not found")
		return
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	writeJSON(w, http.StatusOK, tripPage{
		Data:       trips,
		Pagination: pagination{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      total,
			TotalPages: params.TotalPages(total),
		},
	})
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := bindTripID(w, r)
	if !ok {
		return
	}
	trip, err := s.trips.GetByID(r.Context(), middleware.RequesterFromContext(r.Context()), id)
	if err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// DeleteTrip handles DELETE /trips/{id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := bindTripID(w, r)
	if !ok {
		return
	}
	if err := s.trips.Delete(r.Context(), middleware.RequesterFromContext(r.Context()), id); err != nil {
		s.writeServiceError(w, r, err, "trip not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// bindTripID parses the {id} path parameter, writing a 400 when it is not a UUID.
func bindTripID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "trip id must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

// requestToTripRequest converts a createTripRequest body into a domain.TripRequest.
// Returns an error if required fields are missing. The tier is filled in
// by the service from the requester.
func requestToTripRequest(body createTripRequest) (domain.TripRequest, error) {
	switch {
	case body.DestinationID == nil:
		return domain.TripRequest{}, errors.New("destinationId is required")
	case body.Days == nil:
		return domain.TripRequest{}, errors.New("days is required")
	case body.Budget == nil:
		return domain.TripRequest{}, errors.New("budget is required")
	}
	return domain.TripRequest{
		DestinationID: *body.DestinationID,
		Days:          *body.Days,
		TotalBudget:   *body.Budget,
		Interests:     body.Interests,
		Accommodation: domain.AccommodationClass(body.AccommodationType),
	}, nil
}
