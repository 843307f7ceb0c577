package catalog

import (
	"errors"
	"testing"

	"github.com/moosflix/catalog/internal/models"
	"github.com/moosflix/catalog/internal/store"
)

func TestCreateRegistersChildInParentList(t *testing.T) {
	svc := newTestService(t)
	collection, season, episode := setupHierarchy(t, svc)

	gotCollection, err := svc.FindCollection(collection.ID)
	if err != nil {
		t.Fatalf("FindCollection failed: %v", err)
	}
	if len(gotCollection.Seasons) != 1 || gotCollection.Seasons[0] != season.ID {
		t.Errorf("Expected collection seasons [%s], got %v", season.ID, gotCollection.Seasons)
	}

	gotSeason, err := svc.FindSeason(season.ID)
	if err != nil {
		t.Fatalf("FindSeason failed: %v", err)
	}
	if len(gotSeason.Episodes) != 1 || gotSeason.Episodes[0] != episode.ID {
		t.Errorf("Expected season episodes [%s], got %v", episode.ID, gotSeason.Episodes)
	}
}

func TestMembershipListKeepsInsertionOrder(t *testing.T) {
	svc := newTestService(t)
	collection, _, _ := setupHierarchy(t, svc)

	var created []string
	for i := 0; i < 3; i++ {
		season, err := svc.CreateSeason(CreateSeasonOptions{CollectionID: collection.ID, Index: i + 1})
		if err != nil {
			t.Fatalf("CreateSeason failed: %v", err)
		}
		created = append(created, season.ID)
	}

	// Delete the middle one; the survivors keep their relative order.
	if err := svc.DeleteSeason(created[1]); err != nil {
		t.Fatalf("DeleteSeason failed: %v", err)
	}

	gotCollection, err := svc.FindCollection(collection.ID)
	if err != nil {
		t.Fatalf("FindCollection failed: %v", err)
	}
	// The fixture season plus the first and third created here.
	if len(gotCollection.Seasons) != 3 {
		t.Fatalf("Expected 3 seasons, got %v", gotCollection.Seasons)
	}
	if gotCollection.Seasons[1] != created[0] || gotCollection.Seasons[2] != created[2] {
		t.Errorf("Surviving seasons out of order: %v", gotCollection.Seasons)
	}
}

func TestDeleteCollectionCascades(t *testing.T) {
	svc := newTestService(t)
	collection, season, episode := setupHierarchy(t, svc)

	source, err := svc.CreateSource(CreateSourceOptions{
		SeasonID:  season.ID,
		EpisodeID: episode.ID,
		Language:  models.LanguageEnglish,
		Key:       "f1",
	})
	if err != nil {
		t.Fatalf("CreateSource failed: %v", err)
	}
	subtitle, err := svc.CreateSubtitle(CreateSubtitleOptions{
		SeasonID:  season.ID,
		EpisodeID: episode.ID,
		Language:  models.LanguageGerman,
		Key:       "f2",
	})
	if err != nil {
		t.Fatalf("CreateSubtitle failed: %v", err)
	}

	if err := svc.DeleteCollection(collection.ID); err != nil {
		t.Fatalf("DeleteCollection failed: %v", err)
	}

	if _, err := svc.FindCollection(collection.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Collection survived its own deletion: %v", err)
	}
	if _, err := svc.FindSeason(season.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Season survived collection deletion: %v", err)
	}
	if _, err := svc.FindEpisode(season.ID, episode.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Episode survived collection deletion: %v", err)
	}
	if _, err := svc.FindSource(source.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Source survived collection deletion: %v", err)
	}
	if _, err := svc.FindSubtitle(subtitle.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Subtitle survived collection deletion: %v", err)
	}
}

func TestDeleteSeasonPrunesCollectionList(t *testing.T) {
	svc := newTestService(t)
	collection, season, episode := setupHierarchy(t, svc)

	if err := svc.DeleteSeason(season.ID); err != nil {
		t.Fatalf("DeleteSeason failed: %v", err)
	}

	gotCollection, err := svc.FindCollection(collection.ID)
	if err != nil {
		t.Fatalf("FindCollection failed: %v", err)
	}
	if len(gotCollection.Seasons) != 0 {
		t.Errorf("Expected empty season list, got %v", gotCollection.Seasons)
	}
	if _, err := svc.FindEpisode(season.ID, episode.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Episode survived season deletion: %v", err)
	}
}

func TestDeleteEpisodeCascadesSourcesAndSubtitles(t *testing.T) {
	svc := newTestService(t)
	_, season, episode := setupHierarchy(t, svc)

	source, err := svc.CreateSource(CreateSourceOptions{
		SeasonID:  season.ID,
		EpisodeID: episode.ID,
		Language:  models.LanguageEnglish,
		Key:       "f1",
	})
	if err != nil {
		t.Fatalf("CreateSource failed: %v", err)
	}
	subtitle, err := svc.CreateSubtitle(CreateSubtitleOptions{
		SeasonID:  season.ID,
		EpisodeID: episode.ID,
		Language:  models.LanguageJapanese,
		Key:       "f2",
	})
	if err != nil {
		t.Fatalf("CreateSubtitle failed: %v", err)
	}

	if err := svc.DeleteEpisode(season.ID, episode.ID); err != nil {
		t.Fatalf("DeleteEpisode failed: %v", err)
	}

	gotSeason, err := svc.FindSeason(season.ID)
	if err != nil {
		t.Fatalf("FindSeason failed: %v", err)
	}
	if len(gotSeason.Episodes) != 0 {
		t.Errorf("Expected empty episode list, got %v", gotSeason.Episodes)
	}
	if len(gotSeason.Languages) != 0 {
		t.Errorf("Expected empty languages after cascade, got %v", gotSeason.Languages)
	}
	if len(gotSeason.Subtitles) != 0 {
		t.Errorf("Expected empty subtitles after cascade, got %v", gotSeason.Subtitles)
	}
	if _, err := svc.FindSource(source.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Source survived episode deletion: %v", err)
	}
	if _, err := svc.FindSubtitle(subtitle.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Subtitle survived episode deletion: %v", err)
	}
}

func TestDeleteSourcePrunesEpisodeList(t *testing.T) {
	svc := newTestService(t)
	_, season, episode := setupHierarchy(t, svc)

	source, err := svc.CreateSource(CreateSourceOptions{
		SeasonID:  season.ID,
		EpisodeID: episode.ID,
		Language:  models.LanguageEnglish,
		Key:       "f1",
	})
	if err != nil {
		t.Fatalf("CreateSource failed: %v", err)
	}

	if err := svc.DeleteSource(source.ID); err != nil {
		t.Fatalf("DeleteSource failed: %v", err)
	}

	gotEpisode, err := svc.FindEpisode(season.ID, episode.ID)
	if err != nil {
		t.Fatalf("FindEpisode failed: %v", err)
	}
	if len(gotEpisode.Sources) != 0 {
		t.Errorf("Expected empty source list, got %v", gotEpisode.Sources)
	}
}

func TestDeleteAbsentIsNotFoundWithoutSideEffects(t *testing.T) {
	svc := newTestService(t)
	collection, season, _ := setupHierarchy(t, svc)

	if err := svc.DeleteCollection("ghost"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound deleting absent collection, got %v", err)
	}
	if err := svc.DeleteSeason("ghost"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound deleting absent season, got %v", err)
	}
	if err := svc.DeleteEpisode(season.ID, "ghost"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound deleting absent episode, got %v", err)
	}
	if err := svc.DeleteSource("ghost"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound deleting absent source, got %v", err)
	}
	if err := svc.DeleteSubtitle("ghost"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound deleting absent subtitle, got %v", err)
	}

	// Nothing was disturbed.
	gotCollection, err := svc.FindCollection(collection.ID)
	if err != nil {
		t.Fatalf("FindCollection failed: %v", err)
	}
	if len(gotCollection.Seasons) != 1 {
		t.Errorf("Season list changed by failed deletes: %v", gotCollection.Seasons)
	}
}

func TestCascadeToleratesMissingChildRecord(t *testing.T) {
	svc := newTestService(t)
	collection, season, episode := setupHierarchy(t, svc)

	// Sever the episode record behind the season's back; the id stays
	// listed.
	err := svc.store.Update(func(tx *store.Tx) error {
		return tx.DeleteEpisode(season.ID, episode.ID)
	})
	if err != nil {
		t.Fatalf("Failed to break the hierarchy: %v", err)
	}

	// The cascade treats the listed-but-missing child as already deleted
	// and still completes.
	if err := svc.DeleteCollection(collection.ID); err != nil {
		t.Fatalf("DeleteCollection failed on dangling child: %v", err)
	}
	if _, err := svc.FindSeason(season.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Season survived cascade: %v", err)
	}
}

func TestCreateConflictOnDuplicateID(t *testing.T) {
	svc := newTestService(t)
	svc.newID = func() string { return "fixed-id" }

	_, err := svc.CreateCollection(CreateCollectionOptions{
		Name:       "First",
		Visibility: models.VisibilityPublic,
		Owner:      "u1",
	})
	if err != nil {
		t.Fatalf("First create failed: %v", err)
	}
	_, err = svc.CreateCollection(CreateCollectionOptions{
		Name:       "Second",
		Visibility: models.VisibilityPublic,
		Owner:      "u1",
	})
	if !errors.Is(err, store.ErrConflict) {
		t.Errorf("Expected ErrConflict on duplicate id, got %v", err)
	}
}
