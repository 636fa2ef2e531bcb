package domain

// BudgetLevel is a coarse cost class attached to an activity, independent of
// its literal price text.
type BudgetLevel string

const (
	BudgetLow    BudgetLevel = "low"
	BudgetMedium BudgetLevel = "medium"
	BudgetHigh   BudgetLevel = "high"
)

// Activity is read-only reference data describing something to do at a
// destination. CostText and DurationText are free text; empty values are
// legal and resolved by the planner's parsers.
type Activity struct {
	ID            int64       `json:"id" yaml:"id"`
	DestinationID int64       `json:"destinationId" yaml:"destinationId"`
	Name          string      `json:"name" yaml:"name"`
	Description   string      `json:"description,omitempty" yaml:"description"`
	Type          string      `json:"type" yaml:"type"`
	Category      string      `json:"category,omitempty" yaml:"category"`
	Tags          []string    `json:"tags,omitempty" yaml:"tags"`
	CostText      string      `json:"cost,omitempty" yaml:"cost"`
	BudgetLevel   BudgetLevel `json:"budgetLevel,omitempty" yaml:"budgetLevel"`
	MinTier       Tier        `json:"minTier,omitempty" yaml:"minTier"`
	DurationText  string      `json:"duration,omitempty" yaml:"duration"`
	Active        bool        `json:"-" yaml:"active"`
}
