// A shared test server setup utility, which simplifies all API tests.

package testutil

import (
	"testing"

	bolt "go.etcd.io/bbolt"

	"github.com/moosflix/catalog/internal/api"
	"github.com/moosflix/catalog/internal/config"
	"github.com/moosflix/catalog/internal/core"
)

// SetupTestApp initializes a core.App backed by a temp database.
func SetupTestApp(t *testing.T) *core.App {
	t.Helper()

	return &core.App{
		Config: &config.Config{},
		DB:     SetupTestDB(t),
	}
}

// SetupTestServer initializes a full core.App and api.Server for
// integration testing.
func SetupTestServer(t *testing.T) (*api.Server, *bolt.DB) {
	t.Helper()

	app := SetupTestApp(t)
	return api.NewServer(app), app.DB
}
