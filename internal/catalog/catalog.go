// Package catalog implements the catalog operation surface: one
// find/create/patch/delete per entity type, plus the visibility-filtered
// collection listing. It composes the entity store with the hierarchy
// bookkeeping, cascade deletion and aggregate recomputation.
//
// Every operation runs in a single store transaction. A create commits the
// child record and its registration in the parent's membership list
// together; a delete commits the full cascade or rolls it back.

package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/moosflix/catalog/internal/store"
)

// ErrValidation marks malformed input to a create or patch operation.
// Validation happens before any store mutation.
var ErrValidation = errors.New("invalid input")

// Service is the public catalog API. Route handlers call into it and never
// touch the store directly.
type Service struct {
	store *store.Store

	// newID supplies globally-unique ids at create time. Uniqueness is
	// assumed, not checked beyond the conflict guard on create.
	newID func() string
	// now returns the creation timestamp in Unix milliseconds.
	now func() int64
}

// New creates a catalog service backed by st.
func New(st *store.Store) *Service {
	return &Service{
		store: st,
		newID: uuid.NewString,
		now:   func() int64 { return time.Now().UnixMilli() },
	}
}

// appendID appends id to an ordered membership list, treating a nil list
// as empty and keeping existing order untouched.
func appendID(list []string, id string) []string {
	return append(list, id)
}

// removeID filters id out of a membership list, preserving the relative
// order of the surviving entries.
func removeID(list []string, id string) []string {
	filtered := make([]string, 0, len(list))
	for _, existing := range list {
		if existing != id {
			filtered = append(filtered, existing)
		}
	}
	return filtered
}

// ignoreNotFound swallows store.ErrNotFound. Cascade steps use it so that
// a listed child whose record is already gone counts as deleted instead of
// aborting the rest of the cascade.
func ignoreNotFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}
