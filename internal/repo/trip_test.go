package repo_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/repo"
	"github.com/pkordes/trip-planner/backend/testutil"
)

// mustCreateDestination inserts a destination row and returns its id.
func mustCreateDestination(t *testing.T, tx pgx.Tx, names map[string]string) int64 {
	t.Helper()
	var id int64
	err := tx.QueryRow(context.Background(),
		`INSERT INTO destinations (names) VALUES ($1) RETURNING id`, names).Scan(&id)
	require.NoError(t, err, "insert destination")
	return id
}

// tripFixture returns a domain.Trip with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func tripFixture(destinationID int64) domain.Trip {
	return domain.Trip{
		OwnerID:       "owner-1",
		DestinationID: destinationID,
		Days:          3,
		Budget:        3000,
		Interests:     []string{"food", "culture"},
		Accommodation: domain.ClassMid,
		Plan:          json.RawMessage(`{"totalDays":3,"dailyPlan":[]}`),
	}
}

func TestTripRepo_Create(t *testing.T) {
	tx := testutil.BeginTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()
	input := tripFixture(mustCreateDestination(t, tx, map[string]string{"en": "Taipei"}))

	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, input.OwnerID, got.OwnerID)
	assert.Equal(t, input.DestinationID, got.DestinationID)
	assert.Equal(t, 3, got.Days)
	assert.Equal(t, 3000.0, got.Budget)
	assert.Equal(t, []string{"food", "culture"}, got.Interests)
	assert.Equal(t, domain.ClassMid, got.Accommodation)
	assert.JSONEq(t, string(input.Plan), string(got.Plan))
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
}

func TestTripRepo_Create_NilInterests(t *testing.T) {
	tx := testutil.BeginTx(t)
	r := repo.NewTripRepo(tx)
	input := tripFixture(mustCreateDestination(t, tx, map[string]string{"en": "Taipei"}))
	input.Interests = nil

	got, err := r.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Empty(t, got.Interests)
}

func TestTripRepo_GetByID(t *testing.T) {
	tx := testutil.BeginTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()
	created, err := r.Create(ctx, tripFixture(mustCreateDestination(t, tx, map[string]string{"en": "Taipei"})))
	require.NoError(t, err)

	got, err := r.GetByID(ctx, "owner-1", created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.JSONEq(t, string(created.Plan), string(got.Plan))
}

func TestTripRepo_GetByID_OtherOwner(t *testing.T) {
	tx := testutil.BeginTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()
	created, err := r.Create(ctx, tripFixture(mustCreateDestination(t, tx, map[string]string{"en": "Taipei"})))
	require.NoError(t, err)

	_, err = r.GetByID(ctx, "owner-2", created.ID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	r := repo.NewTripRepo(testutil.BeginTx(t))

	_, err := r.GetByID(context.Background(), "owner-1", uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_ListPaged(t *testing.T) {
	tx := testutil.BeginTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()
	dest := mustCreateDestination(t, tx, map[string]string{"en": "Taipei"})
	for range 3 {
		_, err := r.Create(ctx, tripFixture(dest))
		require.NoError(t, err)
	}
	other := tripFixture(dest)
	other.OwnerID = "owner-2"
	_, err := r.Create(ctx, other)
	require.NoError(t, err)

	page1, total, err := r.ListPaged(ctx, "owner-1", domain.PaginationParams{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page1, 2)
	assert.Equal(t, int64(3), total)

	page2, total, err := r.ListPaged(ctx, "owner-1", domain.PaginationParams{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, int64(3), total)
	for _, tr := range append(page1, page2...) {
		assert.Equal(t, "owner-1", tr.OwnerID)
	}
	assert.NotContains(t, []uuid.UUID{page1[0].ID, page1[1].ID}, page2[0].ID)
}

func TestTripRepo_ListPaged_PastLastPage(t *testing.T) {
	tx := testutil.BeginTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()
	_, err := r.Create(ctx, tripFixture(mustCreateDestination(t, tx, map[string]string{"en": "Taipei"})))
	require.NoError(t, err)

	trips, total, err := r.ListPaged(ctx, "owner-1", domain.PaginationParams{Page: 5, Limit: 10})

	require.NoError(t, err)
	assert.Empty(t, trips)
	assert.NotNil(t, trips)
	assert.Equal(t, int64(1), total)
}

func TestTripRepo_ListPaged_Empty(t *testing.T) {
	r := repo.NewTripRepo(testutil.BeginTx(t))

	trips, total, err := r.ListPaged(context.Background(), "nobody", domain.PaginationParams{Page: 1, Limit: 20})

	require.NoError(t, err)
	assert.Empty(t, trips)
	assert.Zero(t, total)
}

func TestTripRepo_Delete(t *testing.T) {
	tx := testutil.BeginTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()
	created, err := r.Create(ctx, tripFixture(mustCreateDestination(t, tx, map[string]string{"en": "Taipei"})))
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, "owner-1", created.ID))

	_, err = r.GetByID(ctx, "owner-1", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "trip should be gone after delete")
}

func TestTripRepo_Delete_OtherOwner(t *testing.T) {
	tx := testutil.BeginTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()
	created, err := r.Create(ctx, tripFixture(mustCreateDestination(t, tx, map[string]string{"en": "Taipei"})))
	require.NoError(t, err)

	err = r.Delete(ctx, "owner-2", created.ID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = r.GetByID(ctx, "owner-1", created.ID)
	assert.NoError(t, err, "another owner's delete must not remove the trip")
}
