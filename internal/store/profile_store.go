package store

import "github.com/moosflix/catalog/internal/models"

// GetProfile fetches a profile by uid.
func (tx *Tx) GetProfile(uid string) (*models.Profile, error) {
	var profile models.Profile
	if err := tx.get([][]byte{bucketProfiles}, uid, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// PutProfile writes a full profile record.
func (tx *Tx) PutProfile(profile *models.Profile) error {
	return tx.put([][]byte{bucketProfiles}, profile.UID, profile)
}

// ProfileExists reports whether a profile record exists for uid.
func (tx *Tx) ProfileExists(uid string) bool {
	return tx.exists([][]byte{bucketProfiles}, uid)
}
