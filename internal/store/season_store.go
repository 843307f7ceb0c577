package store

import "github.com/moosflix/catalog/internal/models"

// GetSeason fetches a season by id.
func (tx *Tx) GetSeason(id string) (*models.Season, error) {
	var season models.Season
	if err := tx.get([][]byte{bucketSeasons}, id, &season); err != nil {
		return nil, err
	}
	return &season, nil
}

// PutSeason writes a full season record.
func (tx *Tx) PutSeason(season *models.Season) error {
	return tx.put([][]byte{bucketSeasons}, season.ID, season)
}

// SeasonExists reports whether a season record exists for id.
func (tx *Tx) SeasonExists(id string) bool {
	return tx.exists([][]byte{bucketSeasons}, id)
}

// PatchSeasonField rewrites one field of a season record.
func (tx *Tx) PatchSeasonField(id, field string, value any) error {
	return tx.patchField([][]byte{bucketSeasons}, id, field, value)
}

// DeleteSeason removes a season record. The per-season episode bucket is
// dropped by DeleteSeasonEpisodes during cascade.
func (tx *Tx) DeleteSeason(id string) error {
	return tx.delete([][]byte{bucketSeasons}, id)
}
