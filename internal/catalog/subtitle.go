package catalog

import (
	"fmt"

	"github.com/moosflix/catalog/internal/models"
	"github.com/moosflix/catalog/internal/store"
)

// CreateSubtitleOptions holds the caller-supplied fields for a new
// standalone subtitle. Key is the file id of the subtitle blob.
type CreateSubtitleOptions struct {
	SeasonID  string
	EpisodeID string
	Language  models.Language
	Key       string
}

// PatchSubtitleOptions carries field-level updates for a subtitle.
type PatchSubtitleOptions struct {
	Language *models.Language
	Key      *string
}

// FindSubtitle fetches a standalone subtitle by id.
func (s *Service) FindSubtitle(id string) (*models.Subtitle, error) {
	var subtitle *models.Subtitle
	err := s.store.View(func(tx *store.Tx) error {
		var err error
		subtitle, err = tx.GetSubtitle(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return subtitle, nil
}

// CreateSubtitle stores a new subtitle, registers it in its episode's
// subtitle list and recomputes the owning season's aggregates.
func (s *Service) CreateSubtitle(opts CreateSubtitleOptions) (*models.Subtitle, error) {
	if opts.SeasonID == "" || opts.EpisodeID == "" {
		return nil, fmt.Errorf("%w: season and episode ids are required", ErrValidation)
	}
	if !opts.Language.Valid() {
		return nil, fmt.Errorf("%w: unknown language %q", ErrValidation, opts.Language)
	}
	if opts.Key == "" {
		return nil, fmt.Errorf("%w: subtitle key is required", ErrValidation)
	}

	subtitle := &models.Subtitle{
		ID:           s.newID(),
		SeasonID:     opts.SeasonID,
		EpisodeID:    opts.EpisodeID,
		Language:     opts.Language,
		Key:          opts.Key,
		CreationDate: s.now(),
	}
	err := s.store.Update(func(tx *store.Tx) error {
		episode, err := tx.GetEpisode(opts.SeasonID, opts.EpisodeID)
		if err != nil {
			return err
		}
		if tx.SubtitleExists(subtitle.ID) {
			return fmt.Errorf("subtitle %s: %w", subtitle.ID, store.ErrConflict)
		}
		if err := tx.PutSubtitle(subtitle); err != nil {
			return err
		}
		if err := tx.PatchEpisodeField(opts.SeasonID, episode.ID, "subtitles", appendID(episode.Subtitles, subtitle.ID)); err != nil {
			return err
		}
		return s.recomputeSeasonAggregates(tx, opts.SeasonID)
	})
	if err != nil {
		return nil, err
	}
	return subtitle, nil
}

// PatchSubtitle updates the supplied fields of an existing subtitle. A
// language change recomputes the season aggregates before returning.
func (s *Service) PatchSubtitle(id string, opts PatchSubtitleOptions) error {
	if opts.Language != nil && !opts.Language.Valid() {
		return fmt.Errorf("%w: unknown language %q", ErrValidation, *opts.Language)
	}
	return s.store.Update(func(tx *store.Tx) error {
		subtitle, err := tx.GetSubtitle(id)
		if err != nil {
			return err
		}
		if opts.Language != nil {
			if err := tx.PatchSubtitleField(id, "language", *opts.Language); err != nil {
				return err
			}
		}
		if opts.Key != nil {
			if err := tx.PatchSubtitleField(id, "key", *opts.Key); err != nil {
				return err
			}
		}
		if opts.Language != nil {
			return s.recomputeSeasonAggregates(tx, subtitle.SeasonID)
		}
		return nil
	})
}

// DeleteSubtitle removes a subtitle, prunes it from its episode's list and
// recomputes the owning season's aggregates.
func (s *Service) DeleteSubtitle(id string) error {
	return s.store.Update(func(tx *store.Tx) error {
		subtitle, err := tx.GetSubtitle(id)
		if err != nil {
			return err
		}
		if err := tx.DeleteSubtitle(id); err != nil {
			return err
		}
		episode, err := tx.GetEpisode(subtitle.SeasonID, subtitle.EpisodeID)
		if err == nil {
			err = tx.PatchEpisodeField(subtitle.SeasonID, episode.ID, "subtitles", removeID(episode.Subtitles, id))
		}
		if err := ignoreNotFound(err); err != nil {
			return err
		}
		return ignoreNotFound(s.recomputeSeasonAggregates(tx, subtitle.SeasonID))
	})
}
