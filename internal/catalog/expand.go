// Expanded reads: a collection with the whole tree below it resolved into
// one response shape, for callers that would otherwise chase four levels
// of id lists.

package catalog

import (
	"github.com/moosflix/catalog/internal/models"
	"github.com/moosflix/catalog/internal/store"
)

// ExpandedCollection is a collection with its seasons resolved.
type ExpandedCollection struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Visibility   models.Visibility  `json:"visibility"`
	Owner        string             `json:"owner"`
	Thumbnail    *string            `json:"thumbnail"`
	Seasons      []*ExpandedSeason  `json:"seasons"`
	CreationDate int64              `json:"creationDate"`
}

// ExpandedSeason is a season with its episodes resolved.
type ExpandedSeason struct {
	ID        string             `json:"id"`
	Index     int                `json:"index"`
	Languages []models.Language  `json:"languages"`
	Subtitles []models.Language  `json:"subtitles"`
	Episodes  []*ExpandedEpisode `json:"episodes"`
}

// ExpandedEpisode is an episode with its sources and subtitles resolved.
type ExpandedEpisode struct {
	ID           string             `json:"id"`
	Index        int                `json:"index"`
	Name         string             `json:"name"`
	Sources      []*models.Source   `json:"sources"`
	Subtitles    []*models.Subtitle `json:"subtitles"`
	CreationDate int64              `json:"creationDate"`
}

// ExpandCollection loads a collection and resolves every season, episode,
// source and subtitle below it in one read transaction. Listed children
// whose records are missing are skipped, mirroring the cascade engine's
// tolerance.
func (s *Service) ExpandCollection(id string) (*ExpandedCollection, error) {
	var expanded *ExpandedCollection
	err := s.store.View(func(tx *store.Tx) error {
		collection, err := tx.GetCollection(id)
		if err != nil {
			return err
		}

		expanded = &ExpandedCollection{
			ID:           collection.ID,
			Name:         collection.Name,
			Visibility:   collection.Visibility,
			Owner:        collection.Owner,
			Thumbnail:    collection.Thumbnail,
			Seasons:      []*ExpandedSeason{},
			CreationDate: collection.CreationDate,
		}
		for _, seasonID := range collection.Seasons {
			season, err := tx.GetSeason(seasonID)
			if err != nil {
				if ignoreNotFound(err) == nil {
					continue
				}
				return err
			}
			expandedSeason, err := expandSeason(tx, season)
			if err != nil {
				return err
			}
			expanded.Seasons = append(expanded.Seasons, expandedSeason)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return expanded, nil
}

func expandSeason(tx *store.Tx, season *models.Season) (*ExpandedSeason, error) {
	expanded := &ExpandedSeason{
		ID:        season.ID,
		Index:     season.Index,
		Languages: season.Languages,
		Subtitles: season.Subtitles,
		Episodes:  []*ExpandedEpisode{},
	}
	for _, episodeID := range season.Episodes {
		episode, err := tx.GetEpisode(season.ID, episodeID)
		if err != nil {
			if ignoreNotFound(err) == nil {
				continue
			}
			return nil, err
		}
		expandedEpisode, err := expandEpisode(tx, episode)
		if err != nil {
			return nil, err
		}
		expanded.Episodes = append(expanded.Episodes, expandedEpisode)
	}
	return expanded, nil
}

func expandEpisode(tx *store.Tx, episode *models.Episode) (*ExpandedEpisode, error) {
	expanded := &ExpandedEpisode{
		ID:           episode.ID,
		Index:        episode.Index,
		Name:         episode.Name,
		Sources:      []*models.Source{},
		Subtitles:    []*models.Subtitle{},
		CreationDate: episode.CreationDate,
	}
	for _, sourceID := range episode.Sources {
		source, err := tx.GetSource(sourceID)
		if err != nil {
			if ignoreNotFound(err) == nil {
				continue
			}
			return nil, err
		}
		expanded.Sources = append(expanded.Sources, source)
	}
	for _, subtitleID := range episode.Subtitles {
		subtitle, err := tx.GetSubtitle(subtitleID)
		if err != nil {
			if ignoreNotFound(err) == nil {
				continue
			}
			return nil, err
		}
		expanded.Subtitles = append(expanded.Subtitles, subtitle)
	}
	return expanded, nil
}
