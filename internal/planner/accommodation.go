package planner

import (
	"fmt"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// Selection is the outcome of choosing lodging for a trip. Accommodation is
// nil when nothing at the destination is affordable; that is a valid result.
type Selection struct {
	Accommodation *domain.Accommodation
	Price         PriceRange
	// Note explains a downgrade from the requested class. Empty when the
	// requested class was honoured or nothing was selected.
	Note string
}

// CostPerNight is the selected accommodation's minimum price, or 0 when
// nothing was selected or its price is unknown.
func (s Selection) CostPerNight() float64 {
	if s.Accommodation == nil || s.Price.Min == nil {
		return 0
	}
	return *s.Price.Min
}

// AvgPricePerNight is the midpoint of the selected price range, when known.
func (s Selection) AvgPricePerNight() *float64 {
	if s.Accommodation == nil {
		return nil
	}
	mid, ok := s.Price.Mid()
	if !ok {
		return nil
	}
	return &mid
}

// ClassOrder returns the classes to try, starting at preference and rotating
// through luxury → mid → economy. An unknown preference starts at mid.
func ClassOrder(preference domain.AccommodationClass) []domain.AccommodationClass {
	start := 1
	for i, c := range domain.AccommodationCycle {
		if c == preference {
			start = i
			break
		}
	}
	n := len(domain.AccommodationCycle)
	order := make([]domain.AccommodationClass, 0, n)
	for i := range n {
		order = append(order, domain.AccommodationCycle[(start+i)%n])
	}
	return order
}

// SelectAccommodation picks one accommodation for the whole trip. Classes are
// tried in ClassOrder; within a class the first active option (in the order
// given) whose known minimum price does not exceed dailyBudget wins. Options
// with no parseable price are treated as affordable.
func (t *Tables) SelectAccommodation(options []domain.Accommodation, preference domain.AccommodationClass, dailyBudget float64) Selection {
	for _, class := range ClassOrder(preference) {
		for i := range options {
			a := options[i]
			if !a.Active || a.Class != class {
				continue
			}
			price := ParsePriceRange(a.PriceRange)
			if price.Min != nil && *price.Min > dailyBudget {
				continue
			}
			sel := Selection{Accommodation: &a, Price: price}
			if class != preference {
				sel.Note = fmt.Sprintf(t.Messages.AccommodationDowngrade, dailyBudget, preference, class)
			}
			return sel
		}
	}
	return Selection{}
}
