package testutil

import (
	"path/filepath"
	"testing"

	bolt "go.etcd.io/bbolt"

	"github.com/moosflix/catalog/internal/db"
)

// SetupTestDB creates a bbolt database in a per-test temp directory with
// all entity buckets bootstrapped. The connection is closed automatically
// when the test completes.
func SetupTestDB(t *testing.T) *bolt.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.db")
	database, err := db.Init(path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}
