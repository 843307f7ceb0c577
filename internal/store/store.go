// To handle all persistence for the catalog. This is our data access
// layer: a key-value store over bbolt, keyed by entity type and id, with
// episodes additionally namespaced under their season.

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	bolt "go.etcd.io/bbolt"
)

// Bucket names, one per entity type. Episode records live in nested
// per-season buckets below bucketEpisodes.
var (
	bucketProfiles    = []byte("profiles")
	bucketFiles       = []byte("files")
	bucketCollections = []byte("collections")
	bucketSeasons     = []byte("seasons")
	bucketEpisodes    = []byte("episodes")
	bucketSources     = []byte("sources")
	bucketSubtitles   = []byte("subtitles")
)

// Buckets lists every top-level bucket; db.Init creates them on startup.
func Buckets() [][]byte {
	return [][]byte{
		bucketProfiles, bucketFiles, bucketCollections,
		bucketSeasons, bucketEpisodes, bucketSources, bucketSubtitles,
	}
}

var (
	// ErrNotFound marks a lookup of an id that does not exist. It is
	// distinct from ErrUnavailable so callers can tell "never existed"
	// from an I/O failure.
	ErrNotFound = errors.New("record not found")

	// ErrConflict marks a write that raced with a concurrent structural
	// change, such as creating over an id that already exists.
	ErrConflict = errors.New("record already exists")

	// ErrUnavailable wraps failures of the underlying bbolt database.
	ErrUnavailable = errors.New("store unavailable")
)

// Store provides all functions to interact with the catalog database.
type Store struct {
	db *bolt.DB
}

// New creates a new Store instance on top of an opened bbolt database.
func New(db *bolt.DB) *Store {
	return &Store{db: db}
}

// Tx is a single store transaction. Every catalog operation runs inside
// exactly one Tx, so a cascade step (remove child record + update parent
// list) commits atomically or not at all.
type Tx struct {
	btx *bolt.Tx
}

// View runs fn in a read-only transaction.
func (s *Store) View(fn func(tx *Tx) error) error {
	var opErr error
	err := s.db.View(func(btx *bolt.Tx) error {
		opErr = fn(&Tx{btx: btx})
		return opErr
	})
	if opErr != nil {
		return opErr
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Update runs fn in a read-write transaction. bbolt serializes writers, so
// concurrent structural mutations of the same parent cannot lose updates.
// If fn returns an error the transaction rolls back.
func (s *Store) Update(fn func(tx *Tx) error) error {
	var opErr error
	err := s.db.Update(func(btx *bolt.Tx) error {
		opErr = fn(&Tx{btx: btx})
		return opErr
	})
	if opErr != nil {
		return opErr
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// bucket walks the bucket path without creating anything. Returns nil when
// any segment is missing.
func (tx *Tx) bucket(path ...[]byte) *bolt.Bucket {
	b := tx.btx.Bucket(path[0])
	for _, name := range path[1:] {
		if b == nil {
			return nil
		}
		b = b.Bucket(name)
	}
	return b
}

// ensureBucket walks the bucket path, creating missing segments.
func (tx *Tx) ensureBucket(path ...[]byte) (*bolt.Bucket, error) {
	b, err := tx.btx.CreateBucketIfNotExists(path[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	for _, name := range path[1:] {
		b, err = b.CreateBucketIfNotExists(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}
	return b, nil
}

func keyPath(path [][]byte, key string) string {
	parts := make([]string, 0, len(path)+1)
	for _, p := range path {
		parts = append(parts, string(p))
	}
	return strings.Join(append(parts, key), "/")
}

// get unmarshals the record at path/key into dest. A missing bucket or key
// fails with ErrNotFound naming the full key path.
func (tx *Tx) get(path [][]byte, key string, dest any) error {
	b := tx.bucket(path...)
	if b == nil {
		return fmt.Errorf("%s: %w", keyPath(path, key), ErrNotFound)
	}
	data := b.Get([]byte(key))
	if data == nil {
		return fmt.Errorf("%s: %w", keyPath(path, key), ErrNotFound)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode %s: %w", keyPath(path, key), err)
	}
	return nil
}

// put writes the record at path/key, overwriting any previous value.
func (tx *Tx) put(path [][]byte, key string, value any) error {
	b, err := tx.ensureBucket(path...)
	if err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", keyPath(path, key), err)
	}
	if err := b.Put([]byte(key), data); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// exists reports whether a record is present at path/key.
func (tx *Tx) exists(path [][]byte, key string) bool {
	b := tx.bucket(path...)
	return b != nil && b.Get([]byte(key)) != nil
}

// delete removes the record at path/key. Deleting an absent key is a
// no-op; existence checks belong to the caller.
func (tx *Tx) delete(path [][]byte, key string) error {
	b := tx.bucket(path...)
	if b == nil {
		return nil
	}
	if err := b.Delete([]byte(key)); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// patchField rewrites a single field of the record at path/key, leaving
// sibling fields untouched.
func (tx *Tx) patchField(path [][]byte, key, field string, value any) error {
	var record map[string]json.RawMessage
	if err := tx.get(path, key, &record); err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s.%s: %w", keyPath(path, key), field, err)
	}
	record[field] = data
	return tx.put(path, key, record)
}
