package db

import (
	"path/filepath"
	"testing"

	bolt "go.etcd.io/bbolt"

	"github.com/moosflix/catalog/internal/store"
)

func TestInitCreatesBuckets(t *testing.T) {
	database, err := Init(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Init() returned an error: %v", err)
	}
	defer database.Close()

	err = database.View(func(tx *bolt.Tx) error {
		for _, bucket := range store.Buckets() {
			if tx.Bucket(bucket) == nil {
				t.Errorf("Expected bucket %q to exist", bucket)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	database, err := Init(path)
	if err != nil {
		t.Fatalf("Init() returned an error: %v", err)
	}
	database.Close()

	database, err = Init(path)
	if err != nil {
		t.Fatalf("Second Init() returned an error: %v", err)
	}
	database.Close()
}
