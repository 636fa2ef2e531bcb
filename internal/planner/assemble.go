package planner

import (
	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// AssembleInput gathers the outputs of every stage.
type AssembleInput struct {
	Destination domain.Destination
	Locale      string
	Request     domain.TripRequest
	Allocation  Allocation
	Selection   Selection
	Remaining   float64
	Pool        Pool
	Days        []domain.DayPlan
}

// Assemble builds the plan document. Notes are ordered accommodation first,
// then pool notes in the order the ladder raised them.
func (t *Tables) Assemble(in AssembleInput) domain.GeneratedPlan {
	plan := domain.GeneratedPlan{
		Destination: domain.PlanDestination{
			ID:   in.Destination.ID,
			Name: in.Destination.Name(in.Locale),
		},
		TotalDays:                     in.Request.Days,
		TotalBudget:                   in.Request.TotalBudget,
		Interests:                     in.Request.Interests,
		QualityLevel:                  string(in.Allocation.Quality),
		DailyBudget:                   in.Allocation.DailyBudget,
		BudgetBreakdown:               in.Allocation.Shares,
		AccommodationCostPerNight:     in.Selection.CostPerNight(),
		AccommodationAvgPricePerNight: in.Selection.AvgPricePerNight(),
		RemainingAfterAccommodation:   in.Remaining,
		Notes:                         []string{},
		DailyPlan:                     in.Days,
	}
	if plan.Interests == nil {
		plan.Interests = []string{}
	}

	if a := in.Selection.Accommodation; a != nil {
		plan.Accommodation = &domain.SelectedAccommodation{
			ID:            a.ID,
			Name:          a.Name,
			Class:         a.Class,
			PriceRange:    a.PriceRange,
			PricePerNight: in.Selection.CostPerNight(),
		}
		if in.Selection.Note != "" {
			plan.AccommodationSelectionNote = ptr(in.Selection.Note)
			plan.Notes = append(plan.Notes, in.Selection.Note)
		}
	} else {
		plan.NoAccommodationMessage = ptr(t.Messages.NoAccommodation)
	}

	if in.Pool.BudgetNote != "" {
		plan.BudgetNote = ptr(in.Pool.BudgetNote)
	}
	plan.Notes = append(plan.Notes, in.Pool.Notes...)

	for _, d := range in.Days {
		plan.TotalActivitiesCost += d.DayTotalCost
	}
	return plan
}

func ptr[T any](v T) *T { return &v }
