package catalog

import (
	"fmt"

	"github.com/moosflix/catalog/internal/models"
	"github.com/moosflix/catalog/internal/store"
)

// UpsertProfileOptions carries a profile update. Patching an unknown uid
// creates the profile.
type UpsertProfileOptions struct {
	UID      string
	Username string
	Avatar   *string
	Scopes   []models.Scope
}

// FindProfile fetches a profile by uid.
func (s *Service) FindProfile(uid string) (*models.Profile, error) {
	var profile *models.Profile
	err := s.store.View(func(tx *store.Tx) error {
		var err error
		profile, err = tx.GetProfile(uid)
		return err
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// UpsertProfile creates or updates a profile. A freshly created profile
// with no explicit scopes gets the default "user" scope; an existing
// profile keeps its scopes and creation date unless new scopes are given.
func (s *Service) UpsertProfile(opts UpsertProfileOptions) (*models.Profile, error) {
	if opts.UID == "" {
		return nil, fmt.Errorf("%w: profile uid is required", ErrValidation)
	}
	if opts.Username == "" {
		return nil, fmt.Errorf("%w: profile username is required", ErrValidation)
	}

	var profile *models.Profile
	err := s.store.Update(func(tx *store.Tx) error {
		existing, err := tx.GetProfile(opts.UID)
		if err := ignoreNotFound(err); err != nil {
			return err
		}

		profile = &models.Profile{
			UID:      opts.UID,
			Username: opts.Username,
			Avatar:   opts.Avatar,
			Scopes:   opts.Scopes,
		}
		if existing != nil {
			profile.CreationDate = existing.CreationDate
			if profile.Scopes == nil {
				profile.Scopes = existing.Scopes
			}
		} else {
			profile.CreationDate = s.now()
			if profile.Scopes == nil {
				profile.Scopes = []models.Scope{models.ScopeUser}
			}
		}
		return tx.PutProfile(profile)
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}
