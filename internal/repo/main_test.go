package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pkordes/trip-planner/backend/testutil"
)

// TestMain migrates the shared database once per binary. Without
// TEST_DATABASE_URL every test skips itself via testutil.
func TestMain(m *testing.M) {
	if err := testutil.MigrateFromEnv(context.Background()); err != nil {
		log.Fatalf("TestMain: %v", err)
	}
	os.Exit(m.Run())
}
