package planner

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// Tables holds every tunable policy constant and string-keyed lookup the
// planner uses. The filter stages and the cost estimator read the same
// tables, so a category added here is seen by both.
//
// Keys:
//   - budgetLevelCosts: cost assumed for an activity with no price text, by level.
//   - flexibleCostModerate / flexibleCostHighRatio: estimates for "0-B" ranges.
//   - categoryCosts / defaultCategoryCost: estimates for activities with
//     neither price text nor budget level.
//   - shares: informational accommodation/activities/food split of the daily budget.
//   - qualityThresholds: daily budget below economy → "economy", below mid → "mid".
//   - remainingThresholds: per-day budget left after lodging below strict keeps
//     only free/low activities; below moderate drops high ones.
//   - relaxedCategories: categories pulled back in when lodging eats the budget.
//   - interestSynonyms: interest slug → extra type/category/tag terms it matches.
//   - tiers: per-tier activity cap per day and empty-inventory density.
//   - schedule / zeroBudget: timeline rules.
//   - freeActivities / fallbackTemplates: synthesized placeholder catalogs.
//   - messages: user-facing note formats.
type Tables struct {
	BudgetLevelCosts      map[domain.BudgetLevel]float64 `yaml:"budgetLevelCosts"`
	FlexibleCostModerate  float64                        `yaml:"flexibleCostModerate"`
	FlexibleCostHighRatio float64                        `yaml:"flexibleCostHighRatio"`
	CategoryCosts         map[string]float64             `yaml:"categoryCosts"`
	DefaultCategoryCost   float64                        `yaml:"defaultCategoryCost"`
	Shares                Shares                         `yaml:"shares"`
	Quality               QualityThresholds              `yaml:"qualityThresholds"`
	Remaining             RemainingThresholds            `yaml:"remainingThresholds"`
	RelaxedCategories     []string                       `yaml:"relaxedCategories"`
	InterestSynonyms      map[string][]string            `yaml:"interestSynonyms"`
	Tiers                 map[domain.Tier]TierLimits     `yaml:"tiers"`
	Schedule              ScheduleRules                  `yaml:"schedule"`
	ZeroBudget            ZeroBudgetRules                `yaml:"zeroBudget"`
	FreeActivities        []Template                     `yaml:"freeActivities"`
	FallbackTemplates     []Template                     `yaml:"fallbackTemplates"`
	Messages              Messages                       `yaml:"messages"`
}

// Shares are fractions of the daily budget.
type Shares struct {
	Accommodation float64 `yaml:"accommodation"`
	Activities    float64 `yaml:"activities"`
	Food          float64 `yaml:"food"`
}

// QualityThresholds are exclusive upper bounds on the daily budget.
type QualityThresholds struct {
	Economy float64 `yaml:"economy"`
	Mid     float64 `yaml:"mid"`
}

// RemainingThresholds are exclusive upper bounds on the per-day budget left
// after paying for lodging.
type RemainingThresholds struct {
	Strict   float64 `yaml:"strict"`
	Moderate float64 `yaml:"moderate"`
}

// TierLimits bound how full a day gets for a subscription tier.
type TierLimits struct {
	MaxPerDay int `yaml:"maxPerDay"`
	Density   int `yaml:"density"`
}

// ScheduleRules describe the daily timeline.
type ScheduleRules struct {
	DayStart           Clock `yaml:"dayStart"`
	DayEnd             Clock `yaml:"dayEnd"`
	BufferMinutes      int   `yaml:"bufferMinutes"`
	MinPerDay          int   `yaml:"minPerDay"`
	UnaffordableStreak int   `yaml:"unaffordableStreak"`
	DefaultDuration    int   `yaml:"defaultDuration"`
}

// ZeroBudgetRules apply when lodging consumes the entire daily budget.
type ZeroBudgetRules struct {
	PerDay          int `yaml:"perDay"`
	DurationMinutes int `yaml:"durationMinutes"`
}

// Template is one synthesized placeholder activity.
type Template struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	Minutes     int    `yaml:"minutes"`
}

// Messages are fmt formats for notes written into the plan.
type Messages struct {
	AccommodationDowngrade string `yaml:"accommodationDowngrade"` // daily budget, requested class, selected class
	NoAccommodation        string `yaml:"noAccommodation"`
	BudgetRestricted       string `yaml:"budgetRestricted"` // remaining after accommodation
	FreeSubstitution       string `yaml:"freeSubstitution"`
	GatedOut               string `yaml:"gatedOut"`
	DayTitle               string `yaml:"dayTitle"` // day number, destination name
	FallbackDescription    string `yaml:"fallbackDescription"` // template description, period
}

// DefaultTables returns the built-in policy tables. Each call returns a fresh
// copy that callers may modify.
func DefaultTables() *Tables {
	return &Tables{
		BudgetLevelCosts: map[domain.BudgetLevel]float64{
			domain.BudgetLow:    25,
			domain.BudgetMedium: 75,
			domain.BudgetHigh:   200,
		},
		FlexibleCostModerate:  150,
		FlexibleCostHighRatio: 0.5,
		CategoryCosts: map[string]float64{
			"restaurants":   80,
			"entertainment": 60,
			"shopping":      100,
			"culture":       30,
			"heritage":      20,
			"nature":        10,
			"adventure":     120,
			"family":        50,
		},
		DefaultCategoryCost: 40,
		Shares:              Shares{Accommodation: 0.40, Activities: 0.35, Food: 0.25},
		Quality:             QualityThresholds{Economy: 500, Mid: 1000},
		Remaining:           RemainingThresholds{Strict: 50, Moderate: 150},
		RelaxedCategories:   []string{"nature", "heritage", "culture"},
		InterestSynonyms: map[string][]string{
			"food":          {"food", "restaurants", "street-food", "dining"},
			"culture":       {"culture", "museum", "art", "heritage"},
			"history":       {"history", "heritage", "museum"},
			"nature":        {"nature", "park", "hiking", "outdoor"},
			"shopping":      {"shopping", "market"},
			"adventure":     {"adventure", "sports", "outdoor"},
			"nightlife":     {"nightlife", "entertainment", "bar"},
			"family":        {"family", "kids", "entertainment"},
			"entertainment": {"entertainment", "show", "nightlife"},
			"relaxation":    {"relaxation", "spa", "wellness"},
		},
		Tiers: map[domain.Tier]TierLimits{
			domain.TierFree:         {MaxPerDay: 4, Density: 4},
			domain.TierSmart:        {MaxPerDay: 5, Density: 5},
			domain.TierProfessional: {MaxPerDay: 6, Density: 6},
		},
		Schedule: ScheduleRules{
			DayStart:           NewClock(9, 0),
			DayEnd:             NewClock(23, 0),
			BufferMinutes:      30,
			MinPerDay:          3,
			UnaffordableStreak: 10,
			DefaultDuration:    90,
		},
		ZeroBudget: ZeroBudgetRules{PerDay: 2, DurationMinutes: 60},
		FreeActivities: []Template{
			{Name: "Self-guided city walk", Description: "Explore the neighbourhoods on foot at your own pace.", Type: "culture", Minutes: 60},
			{Name: "Public park visit", Description: "Relax in a local public park.", Type: "nature", Minutes: 60},
			{Name: "Outdoor photo tour", Description: "Photograph streets, squares and landmarks from outside.", Type: "culture", Minutes: 60},
			{Name: "Traditional market stroll", Description: "Browse a traditional market without buying anything.", Type: "heritage", Minutes: 60},
			{Name: "Scenic viewpoint", Description: "Take in the view from a free public viewpoint.", Type: "nature", Minutes: 60},
			{Name: "Free museum", Description: "Visit a museum with free admission.", Type: "heritage", Minutes: 60},
		},
		FallbackTemplates: []Template{
			{Name: "City sightseeing", Description: "See the main sights of the city", Type: "culture", Minutes: 120},
			{Name: "Local market", Description: "Wander through a local market", Type: "shopping", Minutes: 120},
			{Name: "Museum visit", Description: "Discover local history and art", Type: "culture", Minutes: 120},
			{Name: "Local dinner", Description: "Try the regional cuisine", Type: "food", Minutes: 120},
			{Name: "Historic walk", Description: "Walk through the historic quarter", Type: "heritage", Minutes: 120},
			{Name: "Park and gardens", Description: "Unwind in a park or garden", Type: "nature", Minutes: 120},
			{Name: "Street food tasting", Description: "Sample popular street food", Type: "food", Minutes: 120},
			{Name: "Sunset viewpoint", Description: "Watch the sunset over the city", Type: "nature", Minutes: 120},
		},
		Messages: Messages{
			AccommodationDowngrade: "Your daily budget of %.0f is not enough for %s accommodation, so %s accommodation was selected instead.",
			NoAccommodation:        "No accommodation is available within your daily budget at this destination.",
			BudgetRestricted:       "After accommodation, %.0f per day remains for activities, so higher-priced activities were left out.",
			FreeSubstitution:       "Accommodation takes up your whole daily budget, so free activities were suggested instead.",
			GatedOut:               "No listed activities fit your budget and plan, so general suggestions were added instead.",
			DayTitle:               "Day %d in %s",
			FallbackDescription:    "%s, best in the %s",
		},
	}
}

// LoadTables reads YAML overrides from path and applies them on top of
// DefaultTables. Keys absent from the file keep their defaults; map keys in
// the file are added to or replace the default entries. An empty path
// returns the defaults unchanged.
func LoadTables(path string) (*Tables, error) {
	t := DefaultTables()
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("planner.LoadTables: %w", err)
	}
	if err := yaml.Unmarshal(raw, t); err != nil {
		return nil, fmt.Errorf("planner.LoadTables: decode %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("planner.LoadTables: %w", err)
	}
	return t, nil
}

// Validate checks the invariants the engine relies on to always terminate
// with a non-empty plan.
func (t *Tables) Validate() error {
	var problems []string
	if len(t.FreeActivities) == 0 {
		problems = append(problems, "freeActivities must not be empty")
	}
	if len(t.FallbackTemplates) == 0 {
		problems = append(problems, "fallbackTemplates must not be empty")
	}
	if t.Schedule.DayEnd <= t.Schedule.DayStart {
		problems = append(problems, "schedule.dayEnd must be after schedule.dayStart")
	}
	if t.Schedule.UnaffordableStreak < 1 {
		problems = append(problems, "schedule.unaffordableStreak must be at least 1")
	}
	if t.Schedule.DefaultDuration < 1 {
		problems = append(problems, "schedule.defaultDuration must be positive")
	}
	if t.ZeroBudget.PerDay < 1 || t.ZeroBudget.DurationMinutes < 1 {
		problems = append(problems, "zeroBudget.perDay and zeroBudget.durationMinutes must be positive")
	}
	for _, tier := range []domain.Tier{domain.TierFree, domain.TierSmart, domain.TierProfessional} {
		l, ok := t.Tiers[tier]
		if !ok || l.MaxPerDay < 1 || l.Density < 1 {
			problems = append(problems, fmt.Sprintf("tiers.%s needs positive maxPerDay and density", tier))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid tables: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Marshal renders t as YAML.
func (t *Tables) Marshal() ([]byte, error) {
	return yaml.Marshal(t)
}

// tierLimits returns the limits for tier, falling back to the free tier.
func (t *Tables) tierLimits(tier domain.Tier) TierLimits {
	if l, ok := t.Tiers[tier]; ok {
		return l
	}
	return t.Tiers[domain.TierFree]
}
