package catalog

import (
	"fmt"

	"github.com/moosflix/catalog/internal/models"
	"github.com/moosflix/catalog/internal/store"
)

// CreateCollectionOptions holds the caller-supplied fields for a new
// collection. Thumbnail is a file id and may be nil.
type CreateCollectionOptions struct {
	Name       string
	Visibility models.Visibility
	Owner      string
	Thumbnail  *string
}

// PatchCollectionOptions carries field-level updates; nil means leave the
// field unchanged.
type PatchCollectionOptions struct {
	Name       *string
	Visibility *models.Visibility
	Thumbnail  *string
}

// Collections returns every collection visible to a caller holding the
// given scopes. The predicate runs per call and is never cached.
func (s *Service) Collections(scopes []models.Scope) ([]*models.Collection, error) {
	collections := []*models.Collection{}
	err := s.store.View(func(tx *store.Tx) error {
		return tx.ForEachCollection(func(collection *models.Collection) error {
			if collection.Visibility.VisibleTo(scopes) {
				collections = append(collections, collection)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return collections, nil
}

// FindCollection fetches a collection by id.
func (s *Service) FindCollection(id string) (*models.Collection, error) {
	var collection *models.Collection
	err := s.store.View(func(tx *store.Tx) error {
		var err error
		collection, err = tx.GetCollection(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return collection, nil
}

// CreateCollection stores a new collection with an empty season list.
func (s *Service) CreateCollection(opts CreateCollectionOptions) (*models.Collection, error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("%w: collection name is required", ErrValidation)
	}
	if !opts.Visibility.Valid() {
		return nil, fmt.Errorf("%w: unknown visibility %q", ErrValidation, opts.Visibility)
	}
	if opts.Owner == "" {
		return nil, fmt.Errorf("%w: collection owner is required", ErrValidation)
	}

	collection := &models.Collection{
		ID:           s.newID(),
		Name:         opts.Name,
		Visibility:   opts.Visibility,
		Owner:        opts.Owner,
		Thumbnail:    opts.Thumbnail,
		Seasons:      []string{},
		CreationDate: s.now(),
	}
	err := s.store.Update(func(tx *store.Tx) error {
		if tx.CollectionExists(collection.ID) {
			return fmt.Errorf("collection %s: %w", collection.ID, store.ErrConflict)
		}
		return tx.PutCollection(collection)
	})
	if err != nil {
		return nil, err
	}
	return collection, nil
}

// PatchCollection updates the supplied fields of an existing collection.
// Identity, owner and the season list are never patchable.
func (s *Service) PatchCollection(id string, opts PatchCollectionOptions) error {
	if opts.Visibility != nil && !opts.Visibility.Valid() {
		return fmt.Errorf("%w: unknown visibility %q", ErrValidation, *opts.Visibility)
	}
	return s.store.Update(func(tx *store.Tx) error {
		if _, err := tx.GetCollection(id); err != nil {
			return err
		}
		if opts.Name != nil {
			if err := tx.PatchCollectionField(id, "name", *opts.Name); err != nil {
				return err
			}
		}
		if opts.Visibility != nil {
			if err := tx.PatchCollectionField(id, "visibility", *opts.Visibility); err != nil {
				return err
			}
		}
		if opts.Thumbnail != nil {
			if err := tx.PatchCollectionField(id, "thumbnail", *opts.Thumbnail); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteCollection removes a collection and cascades over every season
// below it. The whole cascade commits in one transaction; deleting an
// absent id fails with ErrNotFound and has no side effect.
func (s *Service) DeleteCollection(id string) error {
	return s.store.Update(func(tx *store.Tx) error {
		collection, err := tx.GetCollection(id)
		if err != nil {
			return err
		}
		for _, seasonID := range collection.Seasons {
			if err := ignoreNotFound(s.deleteSeasonTx(tx, seasonID, false)); err != nil {
				return err
			}
		}
		return tx.DeleteCollection(id)
	})
}
