package planner

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// Candidate is one entry of the activity pool. Inventory candidates wrap a
// real activity; synthetic candidates are placeholders with a fixed cost and
// duration and no activity id.
type Candidate struct {
	Source   domain.ActivitySource
	Activity domain.Activity
	// Cost and Minutes are authoritative for synthetic candidates only.
	Cost    float64
	Minutes int
}

// Synthetic reports whether c was made up by the planner.
func (c Candidate) Synthetic() bool { return c.Source == domain.SourceSynthetic }

// Fallback records which rung of the pool ladder produced the pool.
type Fallback string

const (
	FallbackNone           Fallback = ""
	FallbackRelaxed        Fallback = "relaxed"
	FallbackFreeCatalog    Fallback = "free_catalog"
	FallbackEmptyInventory Fallback = "empty_inventory"
	FallbackGatedOut       Fallback = "gated_out"
)

// PoolInput is everything the pool builder needs.
type PoolInput struct {
	Activities  []domain.Activity
	Days        int
	Interests   []string
	Tier        domain.Tier
	Quality     QualityLevel
	Remaining   float64 // per-day budget left after lodging, computed once per trip
	Destination string
}

// Pool is the candidate set handed to the scheduler. Candidates is never
// empty.
type Pool struct {
	Candidates []Candidate
	Fallback   Fallback
	// BudgetNote is set when the remaining-budget gate removed anything.
	BudgetNote string
	Notes      []string
}

// BuildPool runs the filter ladder: tier gate, quality gate, soft interest
// gate, hard remaining-budget gate, then the zero-budget and empty-inventory
// safety nets. Each gate sees only what the previous one kept.
func (t *Tables) BuildPool(in PoolInput) Pool {
	var p Pool
	if in.Remaining <= 0 {
		p.Notes = append(p.Notes, t.Messages.FreeSubstitution)
	}

	active := make([]domain.Activity, 0, len(in.Activities))
	for _, a := range in.Activities {
		if a.Active {
			active = append(active, a)
		}
	}
	if len(active) == 0 {
		p.Candidates = t.fallbackCandidates(in)
		p.Fallback = FallbackEmptyInventory
		return p
	}

	visible := filter(active, func(a domain.Activity) bool { return in.Tier.Allows(a.MinTier) })

	affordable := filter(visible, func(a domain.Activity) bool { return t.fitsQuality(a, in.Quality) })

	pool := affordable
	if len(in.Interests) > 0 {
		matched := filter(affordable, func(a domain.Activity) bool { return t.matchesInterests(a, in.Interests) })
		if len(matched) >= in.Days*2 {
			pool = matched
		}
	}

	gated := filter(pool, func(a domain.Activity) bool { return t.fitsRemaining(a, in.Remaining) })
	if len(gated) < len(pool) {
		p.BudgetNote = fmt.Sprintf(t.Messages.BudgetRestricted, in.Remaining)
		p.Notes = append(p.Notes, p.BudgetNote)
	}
	p.Candidates = inventory(gated)

	if len(p.Candidates) > 0 {
		return p
	}

	if in.Remaining <= 0 {
		relaxed := filter(visible, t.isRelaxedPick)
		if len(relaxed) > 0 {
			p.Candidates = inventory(relaxed)
			p.Fallback = FallbackRelaxed
			return p
		}
		p.Candidates = t.freeCatalog()
		p.Fallback = FallbackFreeCatalog
		return p
	}

	p.Candidates = t.fallbackCandidates(in)
	p.Fallback = FallbackGatedOut
	p.Notes = append(p.Notes, t.Messages.GatedOut)
	return p
}

// fitsQuality keeps free or low-level activities on economy trips and drops
// expensive high-level ones on mid trips.
func (t *Tables) fitsQuality(a domain.Activity, q QualityLevel) bool {
	level := normalizeLevel(a.BudgetLevel)
	switch q {
	case QualityEconomy:
		return t.ActivityCost(a) == 0 || level == domain.BudgetLow
	case QualityMid:
		return t.ActivityCost(a) <= 100 || level != domain.BudgetHigh
	default:
		return true
	}
}

func (t *Tables) fitsRemaining(a domain.Activity, remaining float64) bool {
	level := normalizeLevel(a.BudgetLevel)
	switch {
	case remaining < t.Remaining.Strict:
		return t.ActivityCost(a) == 0 || level == domain.BudgetLow
	case remaining < t.Remaining.Moderate:
		return level != domain.BudgetHigh
	default:
		return true
	}
}

func (t *Tables) isRelaxedPick(a domain.Activity) bool {
	for _, c := range t.RelaxedCategories {
		if hasTerm(a, c) {
			return true
		}
	}
	return t.ActivityCost(a) == 0 || normalizeLevel(a.BudgetLevel) == domain.BudgetLow
}

// matchesInterests reports whether the activity's type, category or tags hit
// any interest or one of its synonyms.
func (t *Tables) matchesInterests(a domain.Activity, interests []string) bool {
	for _, interest := range interests {
		key := strings.ToLower(strings.TrimSpace(interest))
		if key == "" {
			continue
		}
		if hasTerm(a, key) {
			return true
		}
		for _, syn := range t.InterestSynonyms[key] {
			if hasTerm(a, syn) {
				return true
			}
		}
	}
	return false
}

func hasTerm(a domain.Activity, term string) bool {
	term = strings.ToLower(term)
	if strings.ToLower(a.Type) == term || strings.ToLower(a.Category) == term {
		return true
	}
	return slices.ContainsFunc(a.Tags, func(tag string) bool { return strings.ToLower(tag) == term })
}

// ActivityCost is the single cost estimate used by every gate and by the
// scheduler. Activities with neither price text nor budget level are priced
// by category: EstimateActivityCost maps an empty level to the medium cost,
// so that path never yields zero for them.
func (t *Tables) ActivityCost(a domain.Activity) float64 {
	if strings.TrimSpace(a.CostText) == "" && a.BudgetLevel == "" {
		return t.categoryCost(a)
	}
	return t.EstimateActivityCost(a.CostText, a.BudgetLevel)
}

func (t *Tables) categoryCost(a domain.Activity) float64 {
	keys := append([]string{a.Category, a.Type}, a.Tags...)
	for _, k := range keys {
		if c, ok := t.CategoryCosts[strings.ToLower(k)]; ok {
			return c
		}
	}
	return t.DefaultCategoryCost
}

// freeCatalog returns the fixed list of free placeholder activities.
func (t *Tables) freeCatalog() []Candidate {
	out := make([]Candidate, 0, len(t.FreeActivities))
	for _, tpl := range t.FreeActivities {
		out = append(out, synthetic(tpl, tpl.Description, tpl.Minutes))
	}
	return out
}

// fallbackCandidates cycles the generic templates to produce days × tier
// density placeholders, labelling each with a rotating part of the day.
func (t *Tables) fallbackCandidates(in PoolInput) []Candidate {
	days := max(in.Days, 1)
	n := days * t.tierLimits(in.Tier).Density
	periods := []domain.Period{domain.PeriodMorning, domain.PeriodAfternoon, domain.PeriodEvening}
	out := make([]Candidate, 0, n)
	for i := range n {
		tpl := t.FallbackTemplates[i%len(t.FallbackTemplates)]
		desc := fmt.Sprintf(t.Messages.FallbackDescription, tpl.Description, periods[i%len(periods)])
		if in.Destination != "" {
			tpl.Name = tpl.Name + " in " + in.Destination
		}
		out = append(out, synthetic(tpl, desc, tpl.Minutes))
	}
	return out
}

func synthetic(tpl Template, description string, minutes int) Candidate {
	return Candidate{
		Source: domain.SourceSynthetic,
		Activity: domain.Activity{
			Name:        tpl.Name,
			Description: description,
			Type:        tpl.Type,
		},
		Cost:    0,
		Minutes: minutes,
	}
}

func inventory(as []domain.Activity) []Candidate {
	out := make([]Candidate, 0, len(as))
	for _, a := range as {
		out = append(out, Candidate{Source: domain.SourceInventory, Activity: a})
	}
	return out
}

func filter(as []domain.Activity, keep func(domain.Activity) bool) []domain.Activity {
	out := make([]domain.Activity, 0, len(as))
	for _, a := range as {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
