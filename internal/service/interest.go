package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/pkordes/trip-planner/backend/internal/repo"
)

// InterestService exposes the interest vocabulary. Interest identity is the
// slug: lowercase, words joined by single hyphens.
type InterestService struct {
	activities repo.ActivityRepo
}

// NewInterestService constructs an InterestService backed by the activity inventory.
func NewInterestService(activities repo.ActivityRepo) *InterestService {
	return &InterestService{activities: activities}
}

// List returns the known interest tags starting with prefix. The prefix is
// slug-normalized first so "Street F" finds "street-food".
func (s *InterestService) List(ctx context.Context, prefix string) ([]string, error) {
	tags, err := s.activities.ListTags(ctx, slugPrefix(prefix))
	if err != nil {
		return nil, fmt.Errorf("service.InterestService.List: %w", err)
	}
	return tags, nil
}

// NormalizeInterests slugifies each interest and drops empties and duplicates,
// keeping first-seen order. The result is never nil.
func NormalizeInterests(interests []string) []string {
	out := make([]string, 0, len(interests))
	seen := make(map[string]bool, len(interests))
	for _, in := range interests {
		slug := Slugify(in)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		out = append(out, slug)
	}
	return out
}

// Slugify lowercases s and collapses every run of characters that are not
// letters or digits into a single hyphen. Non-Latin letters are kept.
func Slugify(s string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}

// slugPrefix is Slugify that keeps a trailing separator, so the prefix
// "street " still narrows to "street-...".
func slugPrefix(s string) string {
	slug := Slugify(s)
	if slug != "" && strings.TrimRightFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) != s {
		slug += "-"
	}
	return slug
}
