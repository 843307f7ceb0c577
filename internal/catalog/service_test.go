// Shared helpers for the catalog tests: a service on a temp database with
// deterministic ids and a canned hierarchy fixture.

package catalog

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/moosflix/catalog/internal/db"
	"github.com/moosflix/catalog/internal/models"
	"github.com/moosflix/catalog/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	database, err := db.Init(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})

	svc := New(store.New(database))
	var n int
	svc.newID = func() string {
		n++
		return fmt.Sprintf("id-%04d", n)
	}
	svc.now = func() int64 { return 1700000000000 }
	return svc
}

// setupHierarchy creates a collection with one season and one episode.
func setupHierarchy(t *testing.T, svc *Service) (*models.Collection, *models.Season, *models.Episode) {
	t.Helper()

	collection, err := svc.CreateCollection(CreateCollectionOptions{
		Name:       "Test Collection",
		Visibility: models.VisibilityPrivate,
		Owner:      "u1",
	})
	if err != nil {
		t.Fatalf("Setup: CreateCollection failed: %v", err)
	}
	season, err := svc.CreateSeason(CreateSeasonOptions{CollectionID: collection.ID, Index: 0})
	if err != nil {
		t.Fatalf("Setup: CreateSeason failed: %v", err)
	}
	episode, err := svc.CreateEpisode(CreateEpisodeOptions{SeasonID: season.ID, Index: 0, Name: "Episode 1"})
	if err != nil {
		t.Fatalf("Setup: CreateEpisode failed: %v", err)
	}
	return collection, season, episode
}

func languagePtr(l models.Language) *models.Language {
	return &l
}

func strPtr(s string) *string {
	return &s
}
