// Derived aggregate maintenance for seasons. Season.Languages and
// Season.Subtitles are recomputed from scratch on every triggering
// mutation instead of being updated incrementally. Catalogs are small;
// correctness wins over efficiency here.

package catalog

import (
	"github.com/moosflix/catalog/internal/models"
	"github.com/moosflix/catalog/internal/store"
)

// languageSet accumulates distinct languages in first-seen order.
type languageSet struct {
	seen  map[models.Language]bool
	items []models.Language
}

func newLanguageSet() *languageSet {
	return &languageSet{seen: make(map[models.Language]bool), items: []models.Language{}}
}

func (ls *languageSet) add(language models.Language) {
	if ls.seen[language] {
		return
	}
	ls.seen[language] = true
	ls.items = append(ls.items, language)
}

// recomputeSeasonAggregates reloads the season, walks every episode below
// it and rewrites the derived languages and subtitles fields. It runs
// inside the transaction of the mutation that triggered it, so the new
// aggregates commit together with the change they reflect.
//
// Children listed on a parent but missing from the store are skipped; the
// membership lists are pruned by the cascade engine, not here.
func (s *Service) recomputeSeasonAggregates(tx *store.Tx, seasonID string) error {
	season, err := tx.GetSeason(seasonID)
	if err != nil {
		return err
	}

	languages := newLanguageSet()
	subtitles := newLanguageSet()

	for _, episodeID := range season.Episodes {
		episode, err := tx.GetEpisode(seasonID, episodeID)
		if err != nil {
			if ignoreNotFound(err) == nil {
				continue
			}
			return err
		}

		for _, sourceID := range episode.Sources {
			source, err := tx.GetSource(sourceID)
			if err != nil {
				if ignoreNotFound(err) == nil {
					continue
				}
				return err
			}
			languages.add(source.Language)
			if source.Subtitles != nil {
				subtitles.add(*source.Subtitles)
			}
		}

		for _, subtitleID := range episode.Subtitles {
			subtitle, err := tx.GetSubtitle(subtitleID)
			if err != nil {
				if ignoreNotFound(err) == nil {
					continue
				}
				return err
			}
			subtitles.add(subtitle.Language)
		}
	}

	if err := tx.PatchSeasonField(seasonID, "languages", languages.items); err != nil {
		return err
	}
	return tx.PatchSeasonField(seasonID, "subtitles", subtitles.items)
}
