package planner

import (
	"fmt"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// QualityLevel classifies a trip by its daily budget.
type QualityLevel string

const (
	QualityEconomy QualityLevel = "economy"
	QualityMid     QualityLevel = "mid"
	QualityHigh    QualityLevel = "high"
)

// Allocation is the per-day view of a trip budget.
type Allocation struct {
	DailyBudget float64
	Shares      domain.BudgetBreakdown
	Quality     QualityLevel
}

// Allocate splits totalBudget evenly across days and classifies the result.
// The shares are informational targets only; nothing downstream caps
// spending at them.
func (t *Tables) Allocate(totalBudget float64, days int) (Allocation, error) {
	if days < 1 {
		return Allocation{}, fmt.Errorf("%w: days must be at least 1", domain.ErrValidation)
	}
	if totalBudget < 0 {
		return Allocation{}, fmt.Errorf("%w: budget must not be negative", domain.ErrValidation)
	}
	daily := totalBudget / float64(days)
	return Allocation{
		DailyBudget: daily,
		Shares: domain.BudgetBreakdown{
			Accommodation: daily * t.Shares.Accommodation,
			Activities:    daily * t.Shares.Activities,
			Food:          daily * t.Shares.Food,
		},
		Quality: t.qualityFor(daily),
	}, nil
}

func (t *Tables) qualityFor(daily float64) QualityLevel {
	switch {
	case daily < t.Quality.Economy:
		return QualityEconomy
	case daily < t.Quality.Mid:
		return QualityMid
	default:
		return QualityHigh
	}
}
