package main

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/repo"
)

// catalog is an in-memory stand-in for the reference tables, loaded from a
// YAML file with top-level destinations, activities and accommodations lists.
type catalog struct {
	Destinations   []domain.Destination   `yaml:"destinations"`
	Activities     []domain.Activity      `yaml:"activities"`
	Accommodations []domain.Accommodation `yaml:"accommodations"`
}

var (
	_ repo.DestinationRepo   = (*catalog)(nil)
	_ repo.ActivityRepo      = (*activityCatalog)(nil)
	_ repo.AccommodationRepo = (*accommodationCatalog)(nil)
	_ repo.TripRepo          = (*scratchTrips)(nil)
)

func loadCatalog(path string) (*catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var c catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return &c, nil
}

func (c *catalog) GetByID(_ context.Context, id int64) (domain.Destination, error) {
	for _, d := range c.Destinations {
		if d.ID == id {
			return d, nil
		}
	}
	return domain.Destination{}, fmt.Errorf("destination %d: %w", id, domain.ErrNotFound)
}

type activityCatalog struct{ c *catalog }

func (a activityCatalog) ListByDestination(_ context.Context, destinationID int64) ([]domain.Activity, error) {
	out := []domain.Activity{}
	for _, act := range a.c.Activities {
		if act.DestinationID == destinationID {
			out = append(out, act)
		}
	}
	slices.SortStableFunc(out, func(x, y domain.Activity) int { return cmp.Compare(x.ID, y.ID) })
	return out, nil
}

func (a activityCatalog) ListTags(_ context.Context, prefix string) ([]string, error) {
	seen := map[string]bool{}
	out := []string{}
	for _, act := range a.c.Activities {
		if !act.Active {
			continue
		}
		for _, tag := range act.Tags {
			if strings.HasPrefix(tag, prefix) && !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	slices.Sort(out)
	return out, nil
}

type accommodationCatalog struct{ c *catalog }

func (a accommodationCatalog) ListByDestination(_ context.Context, destinationID int64) ([]domain.Accommodation, error) {
	out := []domain.Accommodation{}
	for _, acc := range a.c.Accommodations {
		if acc.DestinationID == destinationID {
			out = append(out, acc)
		}
	}
	slices.SortStableFunc(out, func(x, y domain.Accommodation) int { return cmp.Compare(x.ID, y.ID) })
	return out, nil
}

// scratchTrips accepts the generated trip without storing it anywhere.
type scratchTrips struct{}

func (scratchTrips) Create(_ context.Context, t domain.Trip) (domain.Trip, error) {
	t.ID = uuid.New()
	t.CreatedAt = time.Now().UTC()
	return t, nil
}

func (scratchTrips) GetByID(context.Context, string, uuid.UUID) (domain.Trip, error) {
	return domain.Trip{}, domain.ErrNotFound
}

func (scratchTrips) ListPaged(context.Context, string, domain.PaginationParams) ([]domain.Trip, int64, error) {
	return []domain.Trip{}, 0, nil
}

func (scratchTrips) Delete(context.Context, string, uuid.UUID) error {
	return domain.ErrNotFound
}
