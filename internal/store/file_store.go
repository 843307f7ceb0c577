package store

import "github.com/moosflix/catalog/internal/models"

// GetFile fetches file metadata by id.
func (tx *Tx) GetFile(id string) (*models.File, error) {
	var file models.File
	if err := tx.get([][]byte{bucketFiles}, id, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// PutFile writes a full file record.
func (tx *Tx) PutFile(file *models.File) error {
	return tx.put([][]byte{bucketFiles}, file.ID, file)
}

// FileExists reports whether a file record exists for id.
func (tx *Tx) FileExists(id string) bool {
	return tx.exists([][]byte{bucketFiles}, id)
}

// PatchFileField rewrites one field of a file record.
func (tx *Tx) PatchFileField(id, field string, value any) error {
	return tx.patchField([][]byte{bucketFiles}, id, field, value)
}

// DeleteFile removes a file record.
func (tx *Tx) DeleteFile(id string) error {
	return tx.delete([][]byte{bucketFiles}, id)
}
