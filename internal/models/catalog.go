// This file defines the core data structures (models) for the catalog.
// These structs are the persisted records of the Collection -> Season ->
// Episode -> (Source | Subtitle) hierarchy.

package models

// Profile represents a user account known to the catalog.
type Profile struct {
	UID          string  `json:"uid"`
	Username     string  `json:"username"`
	Avatar       *string `json:"avatar"`
	Scopes       []Scope `json:"scopes"`
	CreationDate int64   `json:"creationDate"`
}

// File holds metadata for a stored blob. The catalog only stores file ids
// as foreign keys; the bytes themselves live in the blob service.
type File struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Owner        string `json:"owner"`
	Private      bool   `json:"private"`
	CreationDate int64  `json:"creationDate"`
}

// Collection is the root of the hierarchy. Seasons is the authoritative,
// ordered membership list of its child season ids.
type Collection struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Visibility   Visibility `json:"visibility"`
	Owner        string     `json:"owner"`
	Thumbnail    *string    `json:"thumbnail"`
	Seasons      []string   `json:"seasons"`
	CreationDate int64      `json:"creationDate"`
}

// Season groups episodes. Languages and Subtitles are derived aggregate
// fields, recomputed from the sources and subtitles below this season;
// they are never set directly by a caller.
type Season struct {
	ID           string     `json:"id"`
	CollectionID string     `json:"collectionId"`
	Index        int        `json:"index"`
	Episodes     []string   `json:"episodes"`
	Languages    []Language `json:"languages"`
	Subtitles    []Language `json:"subtitles"`
}

// Episode owns sources and standalone subtitles, both as ordered id lists.
type Episode struct {
	ID           string   `json:"id"`
	SeasonID     string   `json:"seasonId"`
	Index        int      `json:"index"`
	Name         string   `json:"name"`
	Sources      []string `json:"sources"`
	Subtitles    []string `json:"subtitles"`
	CreationDate int64    `json:"creationDate"`
}

// Source is a playable rendition of an episode. Subtitles names the
// language of an embedded subtitle track, nil when the source has none.
type Source struct {
	ID           string    `json:"id"`
	SeasonID     string    `json:"seasonId"`
	EpisodeID    string    `json:"episodeId"`
	Language     Language  `json:"language"`
	Key          string    `json:"key"`
	Subtitles    *Language `json:"subtitles"`
	CreationDate int64     `json:"creationDate"`
}

// Subtitle is a standalone subtitle track for an episode.
type Subtitle struct {
	ID           string   `json:"id"`
	SeasonID     string   `json:"seasonId"`
	EpisodeID    string   `json:"episodeId"`
	Language     Language `json:"language"`
	Key          string   `json:"key"`
	CreationDate int64    `json:"creationDate"`
}
