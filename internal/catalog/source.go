package catalog

import (
	"fmt"

	"github.com/moosflix/catalog/internal/models"
	"github.com/moosflix/catalog/internal/store"
)

// CreateSourceOptions holds the caller-supplied fields for a new source.
// Key is the file id of the media blob. Subtitles names the embedded
// subtitle language and may be nil.
type CreateSourceOptions struct {
	SeasonID  string
	EpisodeID string
	Language  models.Language
	Key       string
	Subtitles *models.Language
}

// PatchSourceOptions carries field-level updates for a source. An embedded
// subtitle track can be set but not cleared, matching the patch surface of
// the upstream API.
type PatchSourceOptions struct {
	Language  *models.Language
	Key       *string
	Subtitles *models.Language
}

// FindSource fetches a source by id.
func (s *Service) FindSource(id string) (*models.Source, error) {
	var source *models.Source
	err := s.store.View(func(tx *store.Tx) error {
		var err error
		source, err = tx.GetSource(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return source, nil
}

// CreateSource stores a new source, registers it in its episode's source
// list and recomputes the owning season's aggregates, all in one
// transaction.
func (s *Service) CreateSource(opts CreateSourceOptions) (*models.Source, error) {
	if opts.SeasonID == "" || opts.EpisodeID == "" {
		return nil, fmt.Errorf("%w: season and episode ids are required", ErrValidation)
	}
	if !opts.Language.Valid() {
		return nil, fmt.Errorf("%w: unknown language %q", ErrValidation, opts.Language)
	}
	if opts.Key == "" {
		return nil, fmt.Errorf("%w: source key is required", ErrValidation)
	}
	if opts.Subtitles != nil && !opts.Subtitles.Valid() {
		return nil, fmt.Errorf("%w: unknown subtitle language %q", ErrValidation, *opts.Subtitles)
	}

	source := &models.Source{
		ID:           s.newID(),
		SeasonID:     opts.SeasonID,
		EpisodeID:    opts.EpisodeID,
		Language:     opts.Language,
		Key:          opts.Key,
		Subtitles:    opts.Subtitles,
		CreationDate: s.now(),
	}
	err := s.store.Update(func(tx *store.Tx) error {
		episode, err := tx.GetEpisode(opts.SeasonID, opts.EpisodeID)
		if err != nil {
			return err
		}
		if tx.SourceExists(source.ID) {
			return fmt.Errorf("source %s: %w", source.ID, store.ErrConflict)
		}
		if err := tx.PutSource(source); err != nil {
			return err
		}
		if err := tx.PatchEpisodeField(opts.SeasonID, episode.ID, "sources", appendID(episode.Sources, source.ID)); err != nil {
			return err
		}
		return s.recomputeSeasonAggregates(tx, opts.SeasonID)
	})
	if err != nil {
		return nil, err
	}
	return source, nil
}

// PatchSource updates the supplied fields of an existing source. Changing
// the language or the embedded subtitle track recomputes the season
// aggregates before the call returns.
func (s *Service) PatchSource(id string, opts PatchSourceOptions) error {
	if opts.Language != nil && !opts.Language.Valid() {
		return fmt.Errorf("%w: unknown language %q", ErrValidation, *opts.Language)
	}
	if opts.Subtitles != nil && !opts.Subtitles.Valid() {
		return fmt.Errorf("%w: unknown subtitle language %q", ErrValidation, *opts.Subtitles)
	}
	return s.store.Update(func(tx *store.Tx) error {
		source, err := tx.GetSource(id)
		if err != nil {
			return err
		}
		if opts.Language != nil {
			if err := tx.PatchSourceField(id, "language", *opts.Language); err != nil {
				return err
			}
		}
		if opts.Key != nil {
			if err := tx.PatchSourceField(id, "key", *opts.Key); err != nil {
				return err
			}
		}
		if opts.Subtitles != nil {
			if err := tx.PatchSourceField(id, "subtitles", *opts.Subtitles); err != nil {
				return err
			}
		}
		if opts.Language != nil || opts.Subtitles != nil {
			return s.recomputeSeasonAggregates(tx, source.SeasonID)
		}
		return nil
	})
}

// DeleteSource removes a source, prunes it from its episode's list and
// recomputes the owning season's aggregates. The parent references come
// from the source record itself.
func (s *Service) DeleteSource(id string) error {
	return s.store.Update(func(tx *store.Tx) error {
		source, err := tx.GetSource(id)
		if err != nil {
			return err
		}
		if err := tx.DeleteSource(id); err != nil {
			return err
		}
		episode, err := tx.GetEpisode(source.SeasonID, source.EpisodeID)
		if err == nil {
			err = tx.PatchEpisodeField(source.SeasonID, episode.ID, "sources", removeID(episode.Sources, id))
		}
		if err := ignoreNotFound(err); err != nil {
			return err
		}
		return ignoreNotFound(s.recomputeSeasonAggregates(tx, source.SeasonID))
	})
}
