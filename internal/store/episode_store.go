package store

import (
	"errors"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/moosflix/catalog/internal/models"
)

// Episode records are namespaced under their season so that deleting a
// season drops the whole sub-tree in one bucket removal.

// GetEpisode fetches an episode by (season id, episode id).
func (tx *Tx) GetEpisode(seasonID, id string) (*models.Episode, error) {
	var episode models.Episode
	if err := tx.get([][]byte{bucketEpisodes, []byte(seasonID)}, id, &episode); err != nil {
		return nil, err
	}
	return &episode, nil
}

// PutEpisode writes a full episode record under its season.
func (tx *Tx) PutEpisode(episode *models.Episode) error {
	return tx.put([][]byte{bucketEpisodes, []byte(episode.SeasonID)}, episode.ID, episode)
}

// EpisodeExists reports whether an episode record exists.
func (tx *Tx) EpisodeExists(seasonID, id string) bool {
	return tx.exists([][]byte{bucketEpisodes, []byte(seasonID)}, id)
}

// PatchEpisodeField rewrites one field of an episode record.
func (tx *Tx) PatchEpisodeField(seasonID, id, field string, value any) error {
	return tx.patchField([][]byte{bucketEpisodes, []byte(seasonID)}, id, field, value)
}

// DeleteEpisode removes an episode record.
func (tx *Tx) DeleteEpisode(seasonID, id string) error {
	return tx.delete([][]byte{bucketEpisodes, []byte(seasonID)}, id)
}

// DeleteSeasonEpisodes drops the per-season episode bucket. An absent
// bucket means the season never had episodes and is not an error.
func (tx *Tx) DeleteSeasonEpisodes(seasonID string) error {
	b := tx.bucket(bucketEpisodes)
	if b == nil {
		return nil
	}
	err := b.DeleteBucket([]byte(seasonID))
	if err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
