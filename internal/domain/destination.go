package domain

import (
	"maps"
	"slices"
)

// Destination is read-only reference data: a place trips can be planned for.
// Names holds localized display names keyed by locale ("en", "zh-TW", ...).
type Destination struct {
	ID    int64             `json:"id" yaml:"id"`
	Names map[string]string `json:"names" yaml:"names"`
}

// Name returns the display name for locale, falling back to "en" and then to
// the alphabetically first locale that has a name. Returns "" when the
// destination has no names at all.
func (d Destination) Name(locale string) string {
	if n, ok := d.Names[locale]; ok && n != "" {
		return n
	}
	if n, ok := d.Names["en"]; ok && n != "" {
		return n
	}
	locales := slices.Sorted(maps.Keys(d.Names))
	for _, l := range locales {
		if n := d.Names[l]; n != "" {
			return n
		}
	}
	return ""
}
