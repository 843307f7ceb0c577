package store

import "github.com/moosflix/catalog/internal/models"

// GetSource fetches a source by id.
func (tx *Tx) GetSource(id string) (*models.Source, error) {
	var source models.Source
	if err := tx.get([][]byte{bucketSources}, id, &source); err != nil {
		return nil, err
	}
	return &source, nil
}

// PutSource writes a full source record.
func (tx *Tx) PutSource(source *models.Source) error {
	return tx.put([][]byte{bucketSources}, source.ID, source)
}

// SourceExists reports whether a source record exists for id.
func (tx *Tx) SourceExists(id string) bool {
	return tx.exists([][]byte{bucketSources}, id)
}

// PatchSourceField rewrites one field of a source record.
func (tx *Tx) PatchSourceField(id, field string, value any) error {
	return tx.patchField([][]byte{bucketSources}, id, field, value)
}

// DeleteSource removes a source record.
func (tx *Tx) DeleteSource(id string) error {
	return tx.delete([][]byte{bucketSources}, id)
}
