// This test file covers the key-value data access layer. It uses a bbolt
// database in a temp directory to keep tests fast and isolated.

package store_test

import (
	"errors"
	"testing"

	"github.com/moosflix/catalog/internal/models"
	"github.com/moosflix/catalog/internal/store"
	"github.com/moosflix/catalog/internal/testutil"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(testutil.SetupTestDB(t))
}

func TestGetPutDeleteCollection(t *testing.T) {
	s := newTestStore(t)

	collection := &models.Collection{
		ID:         "c1",
		Name:       "Test Collection",
		Visibility: models.VisibilityPublic,
		Owner:      "u1",
		Seasons:    []string{},
	}
	err := s.Update(func(tx *store.Tx) error {
		return tx.PutCollection(collection)
	})
	if err != nil {
		t.Fatalf("PutCollection failed: %v", err)
	}

	err = s.View(func(tx *store.Tx) error {
		got, err := tx.GetCollection("c1")
		if err != nil {
			return err
		}
		if got.Name != "Test Collection" || got.Owner != "u1" {
			t.Errorf("Unexpected collection record: %+v", got)
		}
		if got.Thumbnail != nil {
			t.Errorf("Expected nil thumbnail, got %v", *got.Thumbnail)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("GetCollection failed: %v", err)
	}

	err = s.Update(func(tx *store.Tx) error {
		return tx.DeleteCollection("c1")
	})
	if err != nil {
		t.Fatalf("DeleteCollection failed: %v", err)
	}

	err = s.View(func(tx *store.Tx) error {
		_, err := tx.GetCollection("c1")
		return err
	})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}

func TestGetMissingRecordIsNotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.View(func(tx *store.Tx) error {
		_, err := tx.GetSeason("nope")
		return err
	})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	// The error names the full key path so "never existed" is
	// distinguishable from an I/O failure.
	if err.Error() != "seasons/nope: record not found" {
		t.Errorf("Unexpected error message: %q", err.Error())
	}
}

func TestPatchFieldLeavesSiblingsUntouched(t *testing.T) {
	s := newTestStore(t)

	season := &models.Season{
		ID:           "s1",
		CollectionID: "c1",
		Index:        0,
		Episodes:     []string{"e1", "e2"},
		Languages:    []models.Language{models.LanguageEnglish},
		Subtitles:    []models.Language{},
	}
	err := s.Update(func(tx *store.Tx) error {
		if err := tx.PutSeason(season); err != nil {
			return err
		}
		return tx.PatchSeasonField("s1", "index", 3)
	})
	if err != nil {
		t.Fatalf("PatchSeasonField failed: %v", err)
	}

	err = s.View(func(tx *store.Tx) error {
		got, err := tx.GetSeason("s1")
		if err != nil {
			return err
		}
		if got.Index != 3 {
			t.Errorf("Expected patched index 3, got %d", got.Index)
		}
		if len(got.Episodes) != 2 || got.Episodes[0] != "e1" {
			t.Errorf("Sibling field episodes was disturbed: %v", got.Episodes)
		}
		if len(got.Languages) != 1 || got.Languages[0] != models.LanguageEnglish {
			t.Errorf("Sibling field languages was disturbed: %v", got.Languages)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("GetSeason failed: %v", err)
	}
}

func TestPatchFieldOnMissingRecord(t *testing.T) {
	s := newTestStore(t)

	err := s.Update(func(tx *store.Tx) error {
		return tx.PatchCollectionField("ghost", "name", "x")
	})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestEpisodesAreNamespacedBySeason(t *testing.T) {
	s := newTestStore(t)

	err := s.Update(func(tx *store.Tx) error {
		if err := tx.PutEpisode(&models.Episode{ID: "e1", SeasonID: "s1", Name: "One"}); err != nil {
			return err
		}
		return tx.PutEpisode(&models.Episode{ID: "e1", SeasonID: "s2", Name: "Other"})
	})
	if err != nil {
		t.Fatalf("PutEpisode failed: %v", err)
	}

	err = s.View(func(tx *store.Tx) error {
		first, err := tx.GetEpisode("s1", "e1")
		if err != nil {
			return err
		}
		second, err := tx.GetEpisode("s2", "e1")
		if err != nil {
			return err
		}
		if first.Name != "One" || second.Name != "Other" {
			t.Errorf("Episodes not isolated per season: %q / %q", first.Name, second.Name)
		}
		// Same id under a different season must not resolve.
		if _, err := tx.GetEpisode("s3", "e1"); !errors.Is(err, store.ErrNotFound) {
			t.Errorf("Expected ErrNotFound for wrong season, got %v", err)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("GetEpisode failed: %v", err)
	}
}

func TestDeleteSeasonEpisodesDropsSubtree(t *testing.T) {
	s := newTestStore(t)

	err := s.Update(func(tx *store.Tx) error {
		for _, id := range []string{"e1", "e2", "e3"} {
			if err := tx.PutEpisode(&models.Episode{ID: id, SeasonID: "s1"}); err != nil {
				return err
			}
		}
		return tx.DeleteSeasonEpisodes("s1")
	})
	if err != nil {
		t.Fatalf("DeleteSeasonEpisodes failed: %v", err)
	}

	err = s.View(func(tx *store.Tx) error {
		for _, id := range []string{"e1", "e2", "e3"} {
			if _, err := tx.GetEpisode("s1", id); !errors.Is(err, store.ErrNotFound) {
				t.Errorf("Episode %s survived subtree removal: %v", id, err)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}

	// Dropping an absent season bucket is a no-op, not an error.
	err = s.Update(func(tx *store.Tx) error {
		return tx.DeleteSeasonEpisodes("never-existed")
	})
	if err != nil {
		t.Errorf("Expected no error for absent season bucket, got %v", err)
	}
}

func TestForEachCollection(t *testing.T) {
	s := newTestStore(t)

	err := s.Update(func(tx *store.Tx) error {
		for _, id := range []string{"a", "b", "c"} {
			collection := &models.Collection{ID: id, Name: id, Visibility: models.VisibilityPublic, Owner: "u1"}
			if err := tx.PutCollection(collection); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	var seen []string
	err = s.View(func(tx *store.Tx) error {
		return tx.ForEachCollection(func(collection *models.Collection) error {
			seen = append(seen, collection.ID)
			return nil
		})
	})
	if err != nil {
		t.Fatalf("ForEachCollection failed: %v", err)
	}
	if len(seen) != 3 {
		t.Errorf("Expected 3 collections, got %v", seen)
	}
}

func TestUpdateRollsBackOnError(t *testing.T) {
	s := newTestStore(t)

	sentinel := errors.New("boom")
	err := s.Update(func(tx *store.Tx) error {
		if err := tx.PutFile(&models.File{ID: "f1", Name: "clip", Owner: "u1"}); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("Expected sentinel error, got %v", err)
	}

	err = s.View(func(tx *store.Tx) error {
		_, err := tx.GetFile("f1")
		return err
	})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected rollback to discard the write, got %v", err)
	}
}
