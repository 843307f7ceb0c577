package db

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/moosflix/catalog/internal/store"
)

// Init opens the bbolt database at the specified path and ensures every
// entity bucket exists. The open timeout bounds waiting on the file lock
// so a second process fails fast instead of blocking forever.
func Init(path string) (*bolt.DB, error) {
	database, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", store.ErrUnavailable, path, err)
	}

	err = database.Update(func(tx *bolt.Tx) error {
		for _, bucket := range store.Buckets() {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create entity buckets: %w", err)
	}

	return database, nil
}
