package catalog

import (
	"fmt"

	"github.com/moosflix/catalog/internal/models"
	"github.com/moosflix/catalog/internal/store"
)

// CreateSeasonOptions holds the caller-supplied fields for a new season.
type CreateSeasonOptions struct {
	CollectionID string
	Index        int
}

// PatchSeasonOptions carries field-level updates for a season. Only the
// ordering index is patchable; the derived aggregates are maintained by
// the catalog itself.
type PatchSeasonOptions struct {
	Index *int
}

// FindSeason fetches a season by id.
func (s *Service) FindSeason(id string) (*models.Season, error) {
	var season *models.Season
	err := s.store.View(func(tx *store.Tx) error {
		var err error
		season, err = tx.GetSeason(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return season, nil
}

// CreateSeason stores a new season and registers it in its collection's
// season list, both in one transaction.
func (s *Service) CreateSeason(opts CreateSeasonOptions) (*models.Season, error) {
	if opts.CollectionID == "" {
		return nil, fmt.Errorf("%w: collection id is required", ErrValidation)
	}

	season := &models.Season{
		ID:           s.newID(),
		CollectionID: opts.CollectionID,
		Index:        opts.Index,
		Episodes:     []string{},
		Languages:    []models.Language{},
		Subtitles:    []models.Language{},
	}
	err := s.store.Update(func(tx *store.Tx) error {
		collection, err := tx.GetCollection(opts.CollectionID)
		if err != nil {
			return err
		}
		if tx.SeasonExists(season.ID) {
			return fmt.Errorf("season %s: %w", season.ID, store.ErrConflict)
		}
		if err := tx.PutSeason(season); err != nil {
			return err
		}
		return tx.PatchCollectionField(collection.ID, "seasons", appendID(collection.Seasons, season.ID))
	})
	if err != nil {
		return nil, err
	}
	return season, nil
}

// PatchSeason updates the supplied fields of an existing season.
func (s *Service) PatchSeason(id string, opts PatchSeasonOptions) error {
	return s.store.Update(func(tx *store.Tx) error {
		if _, err := tx.GetSeason(id); err != nil {
			return err
		}
		if opts.Index != nil {
			if err := tx.PatchSeasonField(id, "index", *opts.Index); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteSeason removes a season, cascades over its episodes and prunes the
// season id from the owning collection's list.
func (s *Service) DeleteSeason(id string) error {
	return s.store.Update(func(tx *store.Tx) error {
		return s.deleteSeasonTx(tx, id, true)
	})
}

// deleteSeasonTx is the season step of the cascade engine. updateParent is
// false when the collection above is being deleted as well, in which case
// its season list dies with it.
func (s *Service) deleteSeasonTx(tx *store.Tx, id string, updateParent bool) error {
	season, err := tx.GetSeason(id)
	if err != nil {
		return err
	}

	for _, episodeID := range season.Episodes {
		if err := ignoreNotFound(s.deleteEpisodeTx(tx, id, episodeID, false)); err != nil {
			return err
		}
	}
	// The per-season episode bucket is empty now; drop it in one go.
	if err := tx.DeleteSeasonEpisodes(id); err != nil {
		return err
	}
	if err := tx.DeleteSeason(id); err != nil {
		return err
	}

	if updateParent {
		collection, err := tx.GetCollection(season.CollectionID)
		if err != nil {
			return ignoreNotFound(err)
		}
		// Write the pruned list back under the collection's own id.
		return tx.PatchCollectionField(collection.ID, "seasons", removeID(collection.Seasons, id))
	}
	return nil
}
