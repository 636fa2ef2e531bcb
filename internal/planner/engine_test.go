package planner_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/planner"
)

func destination() domain.Destination {
	return domain.Destination{ID: 1, Names: map[string]string{"en": "Taipei", "zh-TW": "臺北"}}
}

func request(budget float64, days int, class domain.AccommodationClass) domain.TripRequest {
	return domain.TripRequest{
		DestinationID: 1,
		Days:          days,
		TotalBudget:   budget,
		Accommodation: class,
		Tier:          domain.TierFree,
	}
}

func newEngine() *planner.Engine {
	return planner.NewEngine(nil, planner.WithSeed(1))
}

// ---- documented scenarios --------------------------------------------------

func TestEngine_Generate_DowngradedAccommodation(t *testing.T) {
	snap := planner.Snapshot{
		Destination: destination(),
		Accommodations: []domain.Accommodation{
			accommodation(1, domain.ClassLuxury, "3000-5000"),
			accommodation(2, domain.ClassMid, "800-1200"),
			accommodation(3, domain.ClassEconomy, "200"),
		},
		Activities: mixedInventory(10),
	}

	plan, err := newEngine().Generate(snap, request(500, 1, domain.ClassLuxury))

	require.NoError(t, err)
	require.NotNil(t, plan.Accommodation)
	assert.Equal(t, int64(3), plan.Accommodation.ID)
	assert.Equal(t, domain.ClassEconomy, plan.Accommodation.Class)
	require.NotNil(t, plan.AccommodationSelectionNote)
	assert.Contains(t, *plan.AccommodationSelectionNote, "economy")
	assert.Contains(t, plan.Notes, *plan.AccommodationSelectionNote)
	assert.Nil(t, plan.NoAccommodationMessage)
	assert.Equal(t, 200.0, plan.AccommodationCostPerNight)
	assert.Equal(t, 300.0, plan.RemainingAfterAccommodation)
}

func TestEngine_Generate_NoAffordableAccommodation(t *testing.T) {
	museum := activity(1, "free museum", "0", domain.BudgetMedium)
	park := activity(2, "park", "0", domain.BudgetLow)
	temple := activity(3, "temple", "0", domain.BudgetLow)
	show := activity(4, "show", "200", domain.BudgetHigh)
	snap := planner.Snapshot{
		Destination:    destination(),
		Accommodations: []domain.Accommodation{accommodation(1, domain.ClassEconomy, "150")},
		Activities:     []domain.Activity{museum, park, temple, show},
	}

	plan, err := newEngine().Generate(snap, request(100, 1, domain.ClassEconomy))

	require.NoError(t, err)
	assert.Nil(t, plan.Accommodation)
	require.NotNil(t, plan.NoAccommodationMessage)
	assert.Equal(t, 0.0, plan.AccommodationCostPerNight)
	assert.Equal(t, 100.0, plan.RemainingAfterAccommodation)
	require.Len(t, plan.DailyPlan, 1)
	require.NotEmpty(t, plan.DailyPlan[0].Activities)
	for _, a := range plan.DailyPlan[0].Activities {
		assert.Zero(t, a.Cost, a.Activity)
	}
}

func TestEngine_Generate_EmptyInventory(t *testing.T) {
	snap := planner.Snapshot{Destination: destination()}

	for _, tier := range []domain.Tier{domain.TierFree, domain.TierSmart, domain.TierProfessional} {
		req := request(4000, 4, domain.ClassMid)
		req.Tier = tier

		plan, err := newEngine().Generate(snap, req)

		require.NoError(t, err)
		require.Len(t, plan.DailyPlan, 4)
		for _, d := range plan.DailyPlan {
			assert.NotEmpty(t, d.Activities, "tier %s day %d", tier, d.Day)
			for _, a := range d.Activities {
				assert.Equal(t, domain.SourceSynthetic, a.Source)
				assert.Zero(t, a.Cost)
			}
		}
	}
}

func TestEngine_Generate_LodgingConsumesBudget(t *testing.T) {
	snap := planner.Snapshot{
		Destination:    destination(),
		Accommodations: []domain.Accommodation{accommodation(1, domain.ClassEconomy, "200-300")},
		Activities:     mixedInventory(10),
	}

	plan, err := newEngine().Generate(snap, request(600, 3, domain.ClassEconomy))

	require.NoError(t, err)
	assert.Equal(t, 0.0, plan.RemainingAfterAccommodation)
	assert.Contains(t, plan.Notes, planner.DefaultTables().Messages.FreeSubstitution)
	for _, d := range plan.DailyPlan {
		require.NotEmpty(t, d.Activities)
		for _, a := range d.Activities {
			assert.Zero(t, a.Cost)
		}
	}
	assert.Zero(t, plan.TotalActivitiesCost)
}

// ---- general behaviour -----------------------------------------------------

func TestEngine_Generate_RejectsZeroDays(t *testing.T) {
	_, err := newEngine().Generate(planner.Snapshot{Destination: destination()}, request(100, 0, domain.ClassMid))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEngine_Generate_SeededRunsAreReproducible(t *testing.T) {
	snap := planner.Snapshot{
		Destination:    destination(),
		Accommodations: []domain.Accommodation{accommodation(1, domain.ClassMid, "300-500")},
		Activities:     mixedInventory(30),
	}
	req := request(6000, 5, domain.ClassMid)
	req.Tier = domain.TierProfessional

	first, err := newEngine().Generate(snap, req)
	require.NoError(t, err)
	second, err := newEngine().Generate(snap, req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEngine_Generate_TotalsAndBreakdown(t *testing.T) {
	snap := planner.Snapshot{
		Destination:    destination(),
		Accommodations: []domain.Accommodation{accommodation(1, domain.ClassMid, "300-500")},
		Activities:     mixedInventory(30),
	}

	plan, err := newEngine().Generate(snap, request(3000, 3, domain.ClassMid))

	require.NoError(t, err)
	assert.Equal(t, "Taipei", plan.Destination.Name)
	assert.Equal(t, 3, plan.TotalDays)
	assert.InDelta(t, 1000, plan.DailyBudget, 1e-9)
	assert.Equal(t, "high", plan.QualityLevel)
	assert.InDelta(t, 400, plan.BudgetBreakdown.Accommodation, 1e-9)
	require.NotNil(t, plan.AccommodationAvgPricePerNight)
	assert.Equal(t, 400.0, *plan.AccommodationAvgPricePerNight)
	assert.Equal(t, 700.0, plan.RemainingAfterAccommodation)

	var sum float64
	for _, d := range plan.DailyPlan {
		sum += d.DayTotalCost
		assert.LessOrEqual(t, d.DayTotalCost, 700.0)
	}
	assert.InDelta(t, sum, plan.TotalActivitiesCost, 1e-9)
}

func TestEngine_Generate_Locale(t *testing.T) {
	e := planner.NewEngine(nil, planner.WithSeed(1), planner.WithLocale("zh-TW"))

	plan, err := e.Generate(planner.Snapshot{Destination: destination()}, request(1000, 1, domain.ClassMid))

	require.NoError(t, err)
	assert.Equal(t, "臺北", plan.Destination.Name)
}

// The plan document is stored verbatim and read back by display and sharing
// clients, which index into these field names.
func TestEngine_Generate_DocumentFieldNames(t *testing.T) {
	snap := planner.Snapshot{
		Destination:    destination(),
		Accommodations: []domain.Accommodation{accommodation(1, domain.ClassEconomy, "100")},
		Activities:     mixedInventory(8),
	}
	plan, err := newEngine().Generate(snap, request(900, 2, domain.ClassLuxury))
	require.NoError(t, err)

	raw, err := json.Marshal(plan)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	for _, key := range []string{
		"destination", "accommodation", "accommodationSelectionNote", "dailyBudget",
		"accommodationCostPerNight", "remainingAfterAccommodation", "budgetNote",
		"noAccommodationMessage", "dailyPlan", "notes",
	} {
		assert.Contains(t, doc, key)
	}

	days, ok := doc["dailyPlan"].([]any)
	require.True(t, ok)
	require.Len(t, days, 2)
	day := days[0].(map[string]any)
	assert.Contains(t, day, "title")
	assert.Contains(t, day, "dayBudgetSummary")
	acts := day["activities"].([]any)
	require.NotEmpty(t, acts)
	act := acts[0].(map[string]any)
	for _, key := range []string{"startTime", "endTime", "period", "activity", "description", "duration", "cost", "type"} {
		assert.Contains(t, act, key)
	}
}
