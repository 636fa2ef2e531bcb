// Package domain contains the core data types for the trip planner.
// This package depends only on google/uuid and is imported by every other
// internal package (planner, repo, service, handler).
package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TripRequest is the validated input for one plan generation.
// It is created by the boundary layer and consumed once.
type TripRequest struct {
	DestinationID int64
	Days          int
	TotalBudget   float64
	Interests     []string
	Accommodation AccommodationClass
	Tier          Tier
}

// Trip is the persisted record of one generated plan.
// Plan is the opaque GeneratedPlan document; it is written once and never
// edited in place. Owners can only delete the whole trip.
type Trip struct {
	ID            uuid.UUID          `json:"id"`
	OwnerID       string             `json:"ownerId"`
	DestinationID int64              `json:"destinationId"`
	Days          int                `json:"days"`
	Budget        float64            `json:"budget"`
	Interests     []string           `json:"interests"`
	Accommodation AccommodationClass `json:"accommodationType"`
	Plan          json.RawMessage    `json:"plan"`
	CreatedAt     time.Time          `json:"createdAt"`
}
