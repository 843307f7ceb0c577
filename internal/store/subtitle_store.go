package store

import "github.com/moosflix/catalog/internal/models"

// GetSubtitle fetches a standalone subtitle by id.
func (tx *Tx) GetSubtitle(id string) (*models.Subtitle, error) {
	var subtitle models.Subtitle
	if err := tx.get([][]byte{bucketSubtitles}, id, &subtitle); err != nil {
		return nil, err
	}
	return &subtitle, nil
}

// PutSubtitle writes a full subtitle record.
func (tx *Tx) PutSubtitle(subtitle *models.Subtitle) error {
	return tx.put([][]byte{bucketSubtitles}, subtitle.ID, subtitle)
}

// SubtitleExists reports whether a subtitle record exists for id.
func (tx *Tx) SubtitleExists(id string) bool {
	return tx.exists([][]byte{bucketSubtitles}, id)
}

// PatchSubtitleField rewrites one field of a subtitle record.
func (tx *Tx) PatchSubtitleField(id, field string, value any) error {
	return tx.patchField([][]byte{bucketSubtitles}, id, field, value)
}

// DeleteSubtitle removes a subtitle record.
func (tx *Tx) DeleteSubtitle(id string) error {
	return tx.delete([][]byte{bucketSubtitles}, id)
}
