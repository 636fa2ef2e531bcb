package domain

// Period labels the part of the day an activity starts in.
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
)

// ActivitySource tells a real inventory activity apart from a placeholder the
// planner synthesized because inventory or budget ran short.
type ActivitySource string

const (
	SourceInventory ActivitySource = "inventory"
	SourceSynthetic ActivitySource = "synthetic"
)

// GeneratedPlan is the complete, JSON-serializable plan document.
// Field names are consumed verbatim by display, sharing and export clients.
type GeneratedPlan struct {
	Destination                   PlanDestination        `json:"destination"`
	TotalDays                     int                    `json:"totalDays"`
	TotalBudget                   float64                `json:"totalBudget"`
	Interests                     []string               `json:"interests"`
	QualityLevel                  string                 `json:"qualityLevel"`
	DailyBudget                   float64                `json:"dailyBudget"`
	BudgetBreakdown               BudgetBreakdown        `json:"budgetBreakdown"`
	Accommodation                 *SelectedAccommodation `json:"accommodation"`
	AccommodationSelectionNote    *string                `json:"accommodationSelectionNote"`
	NoAccommodationMessage        *string                `json:"noAccommodationMessage"`
	AccommodationCostPerNight     float64                `json:"accommodationCostPerNight"`
	AccommodationAvgPricePerNight *float64               `json:"accommodationAvgPricePerNight"`
	RemainingAfterAccommodation   float64                `json:"remainingAfterAccommodation"`
	BudgetNote                    *string                `json:"budgetNote"`
	Notes                         []string               `json:"notes"`
	TotalActivitiesCost           float64                `json:"totalActivitiesCost"`
	DailyPlan                     []DayPlan              `json:"dailyPlan"`
}

// PlanDestination is the destination reference embedded in a plan.
type PlanDestination struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BudgetBreakdown holds the informational 40/35/25 target shares of the daily
// budget. They are not enforced as caps.
type BudgetBreakdown struct {
	Accommodation float64 `json:"accommodation"`
	Activities    float64 `json:"activities"`
	Food          float64 `json:"food"`
}

// SelectedAccommodation is the lodging chosen for the whole trip.
type SelectedAccommodation struct {
	ID            int64              `json:"id"`
	Name          string             `json:"name"`
	Class         AccommodationClass `json:"type"`
	PriceRange    string             `json:"priceRange"`
	PricePerNight float64            `json:"pricePerNight"`
}

// DayPlan is one day of the itinerary.
type DayPlan struct {
	Day              int                 `json:"day"`
	Title            string              `json:"title"`
	Activities       []ScheduledActivity `json:"activities"`
	DayTotalCost     float64             `json:"dayTotalCost"`
	DayBudgetSummary BudgetSummary       `json:"dayBudgetSummary"`
}

// ScheduledActivity is one committed slot in a day's timeline.
// ActivityID is set only for SourceInventory entries.
type ScheduledActivity struct {
	Source      ActivitySource `json:"source"`
	ActivityID  *int64         `json:"activityId,omitempty"`
	StartTime   string         `json:"startTime"`
	EndTime     string         `json:"endTime"`
	Period      Period         `json:"period"`
	Activity    string         `json:"activity"`
	Description string         `json:"description"`
	Duration    int            `json:"duration"`
	Cost        float64        `json:"cost"`
	Type        string         `json:"type"`
}

// BudgetSummary reports how a day's (or the trip's per-day) budget was spent.
type BudgetSummary struct {
	DailyBudget                 float64 `json:"dailyBudget"`
	AccommodationCostPerNight   float64 `json:"accommodationCostPerNight"`
	RemainingAfterAccommodation float64 `json:"remainingAfterAccommodation"`
	ActivitiesCost              float64 `json:"activitiesCost"`
	RemainingAfterActivities    float64 `json:"remainingAfterActivities"`
}
