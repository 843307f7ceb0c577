package store

import (
	"encoding/json"
	"fmt"

	"github.com/moosflix/catalog/internal/models"
)

// GetCollection fetches a collection by id.
func (tx *Tx) GetCollection(id string) (*models.Collection, error) {
	var collection models.Collection
	if err := tx.get([][]byte{bucketCollections}, id, &collection); err != nil {
		return nil, err
	}
	return &collection, nil
}

// PutCollection writes a full collection record.
func (tx *Tx) PutCollection(collection *models.Collection) error {
	return tx.put([][]byte{bucketCollections}, collection.ID, collection)
}

// CollectionExists reports whether a collection record exists for id.
func (tx *Tx) CollectionExists(id string) bool {
	return tx.exists([][]byte{bucketCollections}, id)
}

// PatchCollectionField rewrites one field of a collection record.
func (tx *Tx) PatchCollectionField(id, field string, value any) error {
	return tx.patchField([][]byte{bucketCollections}, id, field, value)
}

// DeleteCollection removes a collection record.
func (tx *Tx) DeleteCollection(id string) error {
	return tx.delete([][]byte{bucketCollections}, id)
}

// ForEachCollection invokes fn for every stored collection, in key order.
// The listing endpoint filters these through the visibility predicate.
func (tx *Tx) ForEachCollection(fn func(collection *models.Collection) error) error {
	b := tx.bucket(bucketCollections)
	if b == nil {
		return nil
	}
	return b.ForEach(func(k, v []byte) error {
		var collection models.Collection
		if err := json.Unmarshal(v, &collection); err != nil {
			return fmt.Errorf("decode collections/%s: %w", k, err)
		}
		return fn(&collection)
	})
}
