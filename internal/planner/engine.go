package planner

import (
	"fmt"
	"math/rand/v2"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// Snapshot is the read-only reference data for one destination, loaded once
// before a run. The engine never modifies it.
type Snapshot struct {
	Destination    domain.Destination     `yaml:"destination"`
	Activities     []domain.Activity      `yaml:"activities"`
	Accommodations []domain.Accommodation `yaml:"accommodations"`
}

// Engine runs the full planning pipeline. It holds no per-run state and is
// safe for concurrent use; every Generate call gets its own random source
// and used-activity set.
type Engine struct {
	tables  *Tables
	locale  string
	newRand func() Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithLocale selects which localized destination name plans carry.
func WithLocale(locale string) Option {
	return func(e *Engine) { e.locale = locale }
}

// WithRandSource replaces the random source factory. Tests pass a factory
// returning a seeded generator to get reproducible plans.
func WithRandSource(newRand func() Rand) Option {
	return func(e *Engine) { e.newRand = newRand }
}

// WithSeed makes every run draw from a PCG generator seeded with seed.
func WithSeed(seed uint64) Option {
	return WithRandSource(func() Rand { return rand.New(rand.NewPCG(seed, seed)) })
}

// NewEngine returns an Engine using tables. A nil tables uses DefaultTables.
func NewEngine(tables *Tables, opts ...Option) *Engine {
	if tables == nil {
		tables = DefaultTables()
	}
	e := &Engine{
		tables: tables,
		locale: "en",
		newRand: func() Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Tables returns the policy tables the engine runs with.
func (e *Engine) Tables() *Tables { return e.tables }

// Generate plans req against snap. Budget and inventory shortfalls never
// fail; they are absorbed by fallbacks and reported as notes in the plan.
// Returns domain.ErrValidation only for structurally invalid requests.
func (e *Engine) Generate(snap Snapshot, req domain.TripRequest) (domain.GeneratedPlan, error) {
	t := e.tables

	alloc, err := t.Allocate(req.TotalBudget, req.Days)
	if err != nil {
		return domain.GeneratedPlan{}, fmt.Errorf("planner.Engine.Generate: %w", err)
	}

	sel := t.SelectAccommodation(snap.Accommodations, req.Accommodation, alloc.DailyBudget)
	remaining := max(alloc.DailyBudget-sel.CostPerNight(), 0)

	destName := snap.Destination.Name(e.locale)
	pool := t.BuildPool(PoolInput{
		Activities:  snap.Activities,
		Days:        req.Days,
		Interests:   req.Interests,
		Tier:        req.Tier,
		Quality:     alloc.Quality,
		Remaining:   remaining,
		Destination: destName,
	})

	days := NewScheduler(t, e.newRand()).Schedule(pool.Candidates, ScheduleInput{
		Days:              req.Days,
		Tier:              req.Tier,
		DailyBudget:       alloc.DailyBudget,
		AccommodationCost: sel.CostPerNight(),
		Remaining:         remaining,
		Destination:       destName,
	})

	return t.Assemble(AssembleInput{
		Destination: snap.Destination,
		Locale:      e.locale,
		Request:     req,
		Allocation:  alloc,
		Selection:   sel,
		Remaining:   remaining,
		Pool:        pool,
		Days:        days,
	}), nil
}
