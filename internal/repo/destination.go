package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// DestinationRepo reads destination reference data.
type DestinationRepo interface {
	// GetByID retrieves a destination with all of its localized names.
	// Returns domain.ErrNotFound if no destination with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Destination, error)
}

type pgDestinationRepo struct {
	db db
}

// NewDestinationRepo constructs a DestinationRepo backed by the provided db connection.
func NewDestinationRepo(db db) DestinationRepo {
	return &pgDestinationRepo{db: db}
}

func (r *pgDestinationRepo) GetByID(ctx context.Context, id int64) (domain.Destination, error) {
	const q = `SELECT id, names FROM destinations WHERE id = @id`

	var d domain.Destination
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&d.ID, &d.Names)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetByID: %w", domain.ErrNotFound)
		}
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetByID: %w", err)
	}
	if d.Names == nil {
		d.Names = map[string]string{}
	}
	return d, nil
}
