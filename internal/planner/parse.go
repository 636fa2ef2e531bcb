// Package planner is the itinerary generation engine. Given a read-only
// snapshot of a destination's inventory and a trip request it allocates the
// budget, picks lodging, builds a gated pool of candidate activities and packs
// them into daily timelines. It performs no I/O.
package planner

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

var (
	// Hour units are listed before minute units and longer spellings before
	// their prefixes because Go alternation is leftmost-first.
	durationPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(hours?|hrs?|h|小時|小时|minutes?|mins?|m|分鐘|分钟)`)
	rangePattern    = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*[-–—~～]\s*(\d+(?:\.\d+)?)`)
	numberPattern   = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// PriceRange is a parsed price. Either bound may be unknown.
type PriceRange struct {
	Min *float64
	Max *float64
}

// Mid returns the midpoint when both bounds are known.
func (p PriceRange) Mid() (float64, bool) {
	if p.Min == nil || p.Max == nil {
		return 0, false
	}
	return (*p.Min + *p.Max) / 2, true
}

// ParseDuration returns the number of minutes described by text such as
// "2 hours", "1.5 hrs", "45 min" or "2小時". It falls back to the tables'
// default duration when no number followed by a unit is found.
func (t *Tables) ParseDuration(text string) int {
	m := durationPattern.FindStringSubmatch(text)
	if m == nil {
		return t.Schedule.DefaultDuration
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return t.Schedule.DefaultDuration
	}
	minutes := v
	if isHourUnit(m[2]) {
		minutes = v * 60
	}
	if n := int(math.Round(minutes)); n > 0 {
		return n
	}
	return t.Schedule.DefaultDuration
}

func isHourUnit(unit string) bool {
	u := strings.ToLower(unit)
	return strings.HasPrefix(u, "h") || u == "小時" || u == "小时"
}

// ParsePriceRange parses "A-B" / "A–B" into both bounds, or a single number
// into Min == Max. Thousands separators are ignored. Unparseable or empty
// text yields an empty PriceRange.
func ParsePriceRange(text string) PriceRange {
	lo, hi, _, ok := parsePrice(text)
	if !ok {
		return PriceRange{}
	}
	return PriceRange{Min: &lo, Max: &hi}
}

// parsePrice reports the bounds of text and whether it was written as a range.
func parsePrice(text string) (lo, hi float64, isRange, ok bool) {
	s := strings.ReplaceAll(text, ",", "")
	if m := rangePattern.FindStringSubmatch(s); m != nil {
		a, errA := strconv.ParseFloat(m[1], 64)
		b, errB := strconv.ParseFloat(m[2], 64)
		if errA == nil && errB == nil {
			return a, b, true, true
		}
	}
	if m := numberPattern.FindString(s); m != "" {
		v, err := strconv.ParseFloat(m, 64)
		if err == nil {
			return v, v, false, true
		}
	}
	return 0, 0, false, false
}

// EstimateActivityCost turns an activity's price text into a single number.
//
// Empty or unparseable text costs the level's default. A range starting at 0
// is a "spend what you like" cost (shopping, markets): low-level activities
// cost the low default, high-level ones half the upper bound, anything else a
// fixed moderate figure. Other ranges cost their rounded midpoint; a single
// number is taken verbatim.
func (t *Tables) EstimateActivityCost(costText string, level domain.BudgetLevel) float64 {
	if strings.TrimSpace(costText) == "" {
		return t.levelCost(level)
	}
	lo, hi, isRange, ok := parsePrice(costText)
	if !ok {
		return t.levelCost(level)
	}
	if !isRange {
		return lo
	}
	if lo == 0 {
		switch normalizeLevel(level) {
		case domain.BudgetLow:
			return t.levelCost(domain.BudgetLow)
		case domain.BudgetHigh:
			return hi * t.FlexibleCostHighRatio
		default:
			return t.FlexibleCostModerate
		}
	}
	return math.Round((lo + hi) / 2)
}

func (t *Tables) levelCost(level domain.BudgetLevel) float64 {
	return t.BudgetLevelCosts[normalizeLevel(level)]
}

// normalizeLevel maps empty or unknown levels to medium.
func normalizeLevel(level domain.BudgetLevel) domain.BudgetLevel {
	switch level {
	case domain.BudgetLow, domain.BudgetHigh:
		return level
	default:
		return domain.BudgetMedium
	}
}
