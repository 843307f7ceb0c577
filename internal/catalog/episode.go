package catalog

import (
	"fmt"

	"github.com/moosflix/catalog/internal/models"
	"github.com/moosflix/catalog/internal/store"
)

// CreateEpisodeOptions holds the caller-supplied fields for a new episode.
type CreateEpisodeOptions struct {
	SeasonID string
	Index    int
	Name     string
}

// PatchEpisodeOptions carries field-level updates for an episode.
type PatchEpisodeOptions struct {
	Index *int
	Name  *string
}

// FindEpisode fetches an episode by its season and episode ids. Episodes
// are stored under their season, so both ids are part of the key.
func (s *Service) FindEpisode(seasonID, id string) (*models.Episode, error) {
	var episode *models.Episode
	err := s.store.View(func(tx *store.Tx) error {
		var err error
		episode, err = tx.GetEpisode(seasonID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return episode, nil
}

// CreateEpisode stores a new episode and registers it in its season's
// episode list, both in one transaction.
func (s *Service) CreateEpisode(opts CreateEpisodeOptions) (*models.Episode, error) {
	if opts.SeasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", ErrValidation)
	}
	if opts.Name == "" {
		return nil, fmt.Errorf("%w: episode name is required", ErrValidation)
	}

	episode := &models.Episode{
		ID:           s.newID(),
		SeasonID:     opts.SeasonID,
		Index:        opts.Index,
		Name:         opts.Name,
		Sources:      []string{},
		Subtitles:    []string{},
		CreationDate: s.now(),
	}
	err := s.store.Update(func(tx *store.Tx) error {
		season, err := tx.GetSeason(opts.SeasonID)
		if err != nil {
			return err
		}
		if tx.EpisodeExists(opts.SeasonID, episode.ID) {
			return fmt.Errorf("episode %s: %w", episode.ID, store.ErrConflict)
		}
		if err := tx.PutEpisode(episode); err != nil {
			return err
		}
		return tx.PatchSeasonField(season.ID, "episodes", appendID(season.Episodes, episode.ID))
	})
	if err != nil {
		return nil, err
	}
	return episode, nil
}

// PatchEpisode updates the supplied fields of an existing episode.
func (s *Service) PatchEpisode(seasonID, id string, opts PatchEpisodeOptions) error {
	return s.store.Update(func(tx *store.Tx) error {
		if _, err := tx.GetEpisode(seasonID, id); err != nil {
			return err
		}
		if opts.Index != nil {
			if err := tx.PatchEpisodeField(seasonID, id, "index", *opts.Index); err != nil {
				return err
			}
		}
		if opts.Name != nil {
			if err := tx.PatchEpisodeField(seasonID, id, "name", *opts.Name); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteEpisode removes an episode, cascades over its sources and
// subtitles, prunes the episode from its season's list and recomputes the
// season aggregates once the cascade is done.
func (s *Service) DeleteEpisode(seasonID, id string) error {
	return s.store.Update(func(tx *store.Tx) error {
		if err := s.deleteEpisodeTx(tx, seasonID, id, true); err != nil {
			return err
		}
		return s.recomputeSeasonAggregates(tx, seasonID)
	})
}

// deleteEpisodeTx is the episode step of the cascade engine. updateParent
// is false when the season above is being deleted as well. The caller is
// responsible for recomputing aggregates when the season survives.
func (s *Service) deleteEpisodeTx(tx *store.Tx, seasonID, id string, updateParent bool) error {
	episode, err := tx.GetEpisode(seasonID, id)
	if err != nil {
		return err
	}

	// Sources and subtitles are leaves; their records go, and the
	// episode's membership lists go with the episode record itself.
	for _, sourceID := range episode.Sources {
		if err := tx.DeleteSource(sourceID); err != nil {
			return err
		}
	}
	for _, subtitleID := range episode.Subtitles {
		if err := tx.DeleteSubtitle(subtitleID); err != nil {
			return err
		}
	}
	if err := tx.DeleteEpisode(seasonID, id); err != nil {
		return err
	}

	if updateParent {
		season, err := tx.GetSeason(seasonID)
		if err != nil {
			return ignoreNotFound(err)
		}
		return tx.PatchSeasonField(season.ID, "episodes", removeID(season.Episodes, id))
	}
	return nil
}
