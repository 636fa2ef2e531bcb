package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// ActivityRepo reads the activity inventory of a destination.
type ActivityRepo interface {
	// ListByDestination returns every activity at the destination, inactive
	// ones included, in id order.
	ListByDestination(ctx context.Context, destinationID int64) ([]domain.Activity, error)

	// ListTags returns the distinct tags of active activities that start
	// with prefix, ordered alphabetically. An empty prefix returns all tags.
	ListTags(ctx context.Context, prefix string) ([]string, error)
}

type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

func (r *pgActivityRepo) ListByDestination(ctx context.Context, destinationID int64) ([]domain.Activity, error) {
	const q = `
		SELECT id, destination_id, name, description, type, category, tags,
		       cost_text, budget_level, min_tier, duration_text, active
		FROM activities
		WHERE destination_id = @destination_id
		ORDER BY id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"destination_id": destinationID})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByDestination: %w", err)
	}
	defer rows.Close()

	out := []domain.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.ListByDestination: scan: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByDestination: rows: %w", err)
	}
	return out, nil
}

func (r *pgActivityRepo) ListTags(ctx context.Context, prefix string) ([]string, error) {
	const q = `
		SELECT DISTINCT tag
		FROM activities, unnest(tags) AS tag
		WHERE active AND tag LIKE @prefix || '%'
		ORDER BY tag`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"prefix": prefix})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListTags: %w", err)
	}
	tags, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListTags: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

// scanActivity maps a single database row into a domain.Activity.
func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a           domain.Activity
		level, tier string
	)
	err := s.Scan(&a.ID, &a.DestinationID, &a.Name, &a.Description, &a.Type, &a.Category, &a.Tags,
		&a.CostText, &level, &tier, &a.DurationText, &a.Active)
	if err != nil {
		return domain.Activity{}, err
	}
	a.BudgetLevel = domain.BudgetLevel(level)
	a.MinTier = domain.Tier(tier)
	return a, nil
}
