package catalog

import (
	"fmt"

	"github.com/moosflix/catalog/internal/models"
	"github.com/moosflix/catalog/internal/store"
)

// CreateFileOptions holds the caller-supplied fields for new file
// metadata. Files default to private unless stated otherwise.
type CreateFileOptions struct {
	Name    string
	Owner   string
	Private *bool
}

// PatchFileOptions carries field-level updates for a file record.
type PatchFileOptions struct {
	Name    *string
	Private *bool
}

// FindFile fetches file metadata by id. The catalog never resolves the
// blob behind it; signed URLs are the blob service's business.
func (s *Service) FindFile(id string) (*models.File, error) {
	var file *models.File
	err := s.store.View(func(tx *store.Tx) error {
		var err error
		file, err = tx.GetFile(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return file, nil
}

// CreateFile stores new file metadata.
func (s *Service) CreateFile(opts CreateFileOptions) (*models.File, error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("%w: file name is required", ErrValidation)
	}
	if opts.Owner == "" {
		return nil, fmt.Errorf("%w: file owner is required", ErrValidation)
	}

	private := true
	if opts.Private != nil {
		private = *opts.Private
	}
	file := &models.File{
		ID:           s.newID(),
		Name:         opts.Name,
		Owner:        opts.Owner,
		Private:      private,
		CreationDate: s.now(),
	}
	err := s.store.Update(func(tx *store.Tx) error {
		if tx.FileExists(file.ID) {
			return fmt.Errorf("file %s: %w", file.ID, store.ErrConflict)
		}
		return tx.PutFile(file)
	})
	if err != nil {
		return nil, err
	}
	return file, nil
}

// PatchFile updates the supplied fields of an existing file record.
func (s *Service) PatchFile(id string, opts PatchFileOptions) error {
	return s.store.Update(func(tx *store.Tx) error {
		if _, err := tx.GetFile(id); err != nil {
			return err
		}
		if opts.Name != nil {
			if err := tx.PatchFileField(id, "name", *opts.Name); err != nil {
				return err
			}
		}
		if opts.Private != nil {
			if err := tx.PatchFileField(id, "private", *opts.Private); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteFile removes a file record. Entities referencing the file id keep
// their foreign keys; resolving those is up to the blob service.
func (s *Service) DeleteFile(id string) error {
	return s.store.Update(func(tx *store.Tx) error {
		if _, err := tx.GetFile(id); err != nil {
			return err
		}
		return tx.DeleteFile(id)
	})
}
