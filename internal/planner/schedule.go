package planner

import (
	"fmt"
	"math"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// Rand is the random source the scheduler draws candidates with.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// ScheduleInput carries the trip-level numbers every day is planned against.
type ScheduleInput struct {
	Days              int
	Tier              domain.Tier
	DailyBudget       float64
	AccommodationCost float64
	// Remaining is max(DailyBudget - AccommodationCost, 0). Each day starts
	// with this much to spend; unspent money does not carry over.
	Remaining   float64
	Destination string
}

// Scheduler packs a candidate pool into day plans. One Scheduler serves one
// plan generation; the used set it keeps spans every day of that trip so no
// inventory activity is scheduled twice.
type Scheduler struct {
	tables *Tables
	rng    Rand
	used   map[int]bool
}

// NewScheduler returns a Scheduler drawing from rng.
func NewScheduler(t *Tables, rng Rand) *Scheduler {
	return &Scheduler{tables: t, rng: rng, used: make(map[int]bool)}
}

// Schedule plans every day of the trip in order. A day with fewer activities
// than its target is a valid outcome; a day with none is filled from the
// free catalog at no cost.
func (s *Scheduler) Schedule(pool []Candidate, in ScheduleInput) []domain.DayPlan {
	days := make([]domain.DayPlan, 0, in.Days)
	for day := 1; day <= in.Days; day++ {
		var acts []domain.ScheduledActivity
		var remaining float64
		if in.Remaining <= 0 {
			acts = s.freeDay(day)
		} else {
			acts, remaining = s.packDay(pool, in)
		}
		// Inventory ran out or nothing left is affordable: keep the day
		// from coming back blank.
		if len(acts) == 0 {
			acts = s.freeDay(day)
		}
		days = append(days, s.dayPlan(day, acts, remaining, in))
	}
	return days
}

// Target is how many activities a day aims for: the tier cap or one more
// than an even share of the pool, whichever is smaller, but never below the
// schedule minimum.
func (s *Scheduler) Target(poolSize, days int, tier domain.Tier) int {
	share := int(math.Ceil(float64(poolSize)/float64(max(days, 1)))) + 1
	return max(min(s.tables.tierLimits(tier).MaxPerDay, share), s.tables.Schedule.MinPerDay)
}

// packDay draws unused candidates at random and commits each one that is
// affordable and finishes before the day's cutoff.
func (s *Scheduler) packDay(pool []Candidate, in ScheduleInput) ([]domain.ScheduledActivity, float64) {
	rules := s.tables.Schedule
	target := s.Target(len(pool), in.Days, in.Tier)

	available := make([]int, 0, len(pool))
	for i := range pool {
		if !s.used[i] {
			available = append(available, i)
		}
	}

	var acts []domain.ScheduledActivity
	now := rules.DayStart
	budget := in.Remaining
	misses := 0
	for len(acts) < target && len(available) > 0 {
		k := s.rng.IntN(len(available))
		idx := available[k]
		available[k] = available[len(available)-1]
		available = available[:len(available)-1]

		c := pool[idx]
		cost := s.cost(c)
		if cost > budget {
			misses++
			if misses >= rules.UnaffordableStreak {
				break
			}
			continue
		}

		minutes := s.minutes(c)
		end := now.Add(minutes)
		if end > rules.DayEnd {
			break
		}

		acts = append(acts, scheduled(c, now, end, minutes, cost))
		budget -= cost
		s.used[idx] = true
		now = end.Add(rules.BufferMinutes)
		misses = 0
	}
	return acts, budget
}

// freeDay fills a day whose budget is entirely consumed by lodging with free
// placeholders, rotating through the catalog so consecutive days differ.
func (s *Scheduler) freeDay(day int) []domain.ScheduledActivity {
	rules := s.tables.Schedule
	zb := s.tables.ZeroBudget
	catalog := s.tables.FreeActivities

	acts := make([]domain.ScheduledActivity, 0, zb.PerDay)
	now := rules.DayStart
	for i := range zb.PerDay {
		tpl := catalog[((day-1)*zb.PerDay+i)%len(catalog)]
		end := now.Add(zb.DurationMinutes)
		if end > rules.DayEnd {
			break
		}
		c := synthetic(tpl, tpl.Description, zb.DurationMinutes)
		acts = append(acts, scheduled(c, now, end, zb.DurationMinutes, 0))
		now = end.Add(rules.BufferMinutes)
	}
	return acts
}

func (s *Scheduler) dayPlan(day int, acts []domain.ScheduledActivity, remaining float64, in ScheduleInput) domain.DayPlan {
	if acts == nil {
		acts = []domain.ScheduledActivity{}
	}
	var total float64
	for _, a := range acts {
		total += a.Cost
	}
	return domain.DayPlan{
		Day:          day,
		Title:        fmt.Sprintf(s.tables.Messages.DayTitle, day, in.Destination),
		Activities:   acts,
		DayTotalCost: total,
		DayBudgetSummary: domain.BudgetSummary{
			DailyBudget:                 in.DailyBudget,
			AccommodationCostPerNight:   in.AccommodationCost,
			RemainingAfterAccommodation: in.Remaining,
			ActivitiesCost:              total,
			RemainingAfterActivities:    remaining,
		},
	}
}

func (s *Scheduler) cost(c Candidate) float64 {
	if c.Synthetic() {
		return c.Cost
	}
	return s.tables.ActivityCost(c.Activity)
}

func (s *Scheduler) minutes(c Candidate) int {
	if c.Synthetic() {
		if c.Minutes > 0 {
			return c.Minutes
		}
		return s.tables.Schedule.DefaultDuration
	}
	return s.tables.ParseDuration(c.Activity.DurationText)
}

func scheduled(c Candidate, start, end Clock, minutes int, cost float64) domain.ScheduledActivity {
	sa := domain.ScheduledActivity{
		Source:      c.Source,
		StartTime:   start.String(),
		EndTime:     end.String(),
		Period:      PeriodOf(start),
		Activity:    c.Activity.Name,
		Description: c.Activity.Description,
		Duration:    minutes,
		Cost:        cost,
		Type:        c.Activity.Type,
	}
	if sa.Type == "" {
		sa.Type = c.Activity.Category
	}
	if !c.Synthetic() {
		id := c.Activity.ID
		sa.ActivityID = &id
	}
	return sa
}
