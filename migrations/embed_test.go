package migrations_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/migrations"
	"github.com/pkordes/trip-planner/backend/testutil"
)

var schemaTables = []string{"destinations", "accommodations", "activities", "trips"}

// TestMigrations_RoundTrip applies the whole schema to an empty database and
// rolls it back again. Other test binaries share the database, so it starts
// by resetting to version 0.
func TestMigrations_RoundTrip(t *testing.T) {
	db := testutil.NewSQLDB(t)
	ctx := context.Background()

	p, err := migrations.NewProvider(db)
	require.NoError(t, err)
	_, err = p.DownTo(ctx, 0)
	require.NoError(t, err, "initial reset")

	applied, err := migrations.Up(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, len(p.ListSources()), applied)
	assert.ElementsMatch(t, schemaTables, publicTables(t, db))

	again, err := migrations.Up(ctx, db)
	require.NoError(t, err)
	assert.Zero(t, again, "second run has nothing left to apply")

	_, err = p.DownTo(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, publicTables(t, db))

	// Leave the schema in place for packages that run after this one.
	_, err = migrations.Up(ctx, db)
	require.NoError(t, err)
}

func TestMigrations_TripsRejectZeroDays(t *testing.T) {
	db := testutil.NewSQLDB(t)
	ctx := context.Background()
	_, err := migrations.Up(ctx, db)
	require.NoError(t, err)

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	var destID int64
	require.NoError(t, tx.QueryRowContext(ctx,
		`INSERT INTO destinations (names) VALUES ('{"en":"Nowhere"}') RETURNING id`).Scan(&destID))

	_, err = tx.ExecContext(ctx, `
		INSERT INTO trips (owner_id, destination_id, days, budget, interests, accommodation_type, plan)
		VALUES ('o', $1, 0, 0, '{}', 'mid', '{}')`, destID)
	assert.ErrorContains(t, err, "check")
}

// publicTables lists the schema's own tables, ignoring goose bookkeeping.
func publicTables(t *testing.T, db *sql.DB) []string {
	t.Helper()
	rows, err := db.QueryContext(context.Background(), `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = 'public' AND table_name <> 'goose_db_version'`)
	require.NoError(t, err)
	defer rows.Close()

	tables := []string{}
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		tables = append(tables, name)
	}
	require.NoError(t, rows.Err())
	return tables
}
