package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// AccommodationRepo reads the accommodation inventory of a destination.
type AccommodationRepo interface {
	// ListByDestination returns every accommodation at the destination,
	// inactive ones included, in id order. The planner relies on this order
	// when it picks the first affordable option within a class.
	ListByDestination(ctx context.Context, destinationID int64) ([]domain.Accommodation, error)
}

type pgAccommodationRepo struct {
	db db
}

// NewAccommodationRepo constructs an AccommodationRepo backed by the provided db connection.
func NewAccommodationRepo(db db) AccommodationRepo {
	return &pgAccommodationRepo{db: db}
}

func (r *pgAccommodationRepo) ListByDestination(ctx context.Context, destinationID int64) ([]domain.Accommodation, error) {
	const q = `
		SELECT id, destination_id, name, class, price_range, active
		FROM accommodations
		WHERE destination_id = @destination_id
		ORDER BY id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"destination_id": destinationID})
	if err != nil {
		return nil, fmt.Errorf("repo.AccommodationRepo.ListByDestination: %w", err)
	}
	defer rows.Close()

	out := []domain.Accommodation{}
	for rows.Next() {
		var (
			a     domain.Accommodation
			class string
		)
		if err := rows.Scan(&a.ID, &a.DestinationID, &a.Name, &class, &a.PriceRange, &a.Active); err != nil {
			return nil, fmt.Errorf("repo.AccommodationRepo.ListByDestination: scan: %w", err)
		}
		a.Class = domain.AccommodationClass(class)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.AccommodationRepo.ListByDestination: rows: %w", err)
	}
	return out, nil
}
