package planner

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// Clock is a time of day in minutes since midnight. Values past 24:00 are
// legal intermediate results (an activity that would run past midnight) but
// never appear in a committed schedule.
type Clock int

// NewClock returns the Clock for hour:minute.
func NewClock(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// ParseClock parses a 24h "HH:MM" string.
func ParseClock(s string) (Clock, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("planner.ParseClock: %q: %w", s, err)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 {
		return 0, fmt.Errorf("planner.ParseClock: %q out of range", s)
	}
	return NewClock(h, m), nil
}

// Hour returns the hour component.
func (c Clock) Hour() int { return int(c) / 60 }

// String formats c as "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Add returns c advanced by minutes.
func (c Clock) Add(minutes int) Clock { return c + Clock(minutes) }

// PeriodOf labels a start time: before 12:00 is morning, before 16:00 is
// afternoon, anything later is evening.
func PeriodOf(c Clock) domain.Period {
	switch h := c.Hour(); {
	case h < 12:
		return domain.PeriodMorning
	case h < 16:
		return domain.PeriodAfternoon
	default:
		return domain.PeriodEvening
	}
}

// MarshalYAML writes c as "HH:MM".
func (c Clock) MarshalYAML() (any, error) {
	return c.String(), nil
}

// UnmarshalYAML accepts "HH:MM".
func (c *Clock) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseClock(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
