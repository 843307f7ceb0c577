package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moosflix/catalog/internal/catalog"
	"github.com/moosflix/catalog/internal/models"
)

func (s *Server) handleListCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := s.catalog.Collections(callerScopes(r))
	if err != nil {
		respondWithCatalogError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, collections)
}

func (s *Server) handleCreateCollection(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name       string  `json:"name"`
		Visibility string  `json:"visibility"`
		Thumbnail  *string `json:"thumbnail"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	profile := getProfileFromContext(r)
	collection, err := s.catalog.CreateCollection(catalog.CreateCollectionOptions{
		Name:       payload.Name,
		Visibility: models.Visibility(payload.Visibility),
		Owner:      profile.UID,
		Thumbnail:  payload.Thumbnail,
	})
	if err != nil {
		respondWithCatalogError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, collection)
}

func (s *Server) handleGetCollection(w http.ResponseWriter, r *http.Request) {
	collectionID := chi.URLParam(r, "collectionID")

	collection, err := s.catalog.FindCollection(collectionID)
	if err != nil {
		respondWithCatalogError(w, err)
		return
	}
	// Private collections are served to their owner and admins only.
	profile := getProfileFromContext(r)
	if collection.Visibility == models.VisibilityPrivate && !mayMutate(profile, collection.Owner) {
		RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	expanded, err := s.catalog.ExpandCollection(collectionID)
	if err != nil {
		respondWithCatalogError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, expanded)
}

func (s *Server) handlePatchCollection(w http.ResponseWriter, r *http.Request) {
	collectionID := chi.URLParam(r, "collectionID")

	var payload struct {
		Name       *string `json:"name"`
		Visibility *string `json:"visibility"`
		Thumbnail  *string `json:"thumbnail"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !s.authorizeCollectionMutation(w, r, collectionID) {
		return
	}

	opts := catalog.PatchCollectionOptions{Name: payload.Name, Thumbnail: payload.Thumbnail}
	if payload.Visibility != nil {
		visibility := models.Visibility(*payload.Visibility)
		opts.Visibility = &visibility
	}
	if err := s.catalog.PatchCollection(collectionID, opts); err != nil {
		respondWithCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteCollection(w http.ResponseWriter, r *http.Request) {
	collectionID := chi.URLParam(r, "collectionID")

	if !s.authorizeCollectionMutation(w, r, collectionID) {
		return
	}
	if err := s.catalog.DeleteCollection(collectionID); err != nil {
		respondWithCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// authorizeCollectionMutation loads the collection and enforces the
// owner-or-admin rule. It writes the error response itself and reports
// whether the caller may proceed.
func (s *Server) authorizeCollectionMutation(w http.ResponseWriter, r *http.Request, collectionID string) bool {
	collection, err := s.catalog.FindCollection(collectionID)
	if err != nil {
		respondWithCatalogError(w, err)
		return false
	}
	if !mayMutate(getProfileFromContext(r), collection.Owner) {
		RespondWithError(w, http.StatusForbidden, "Forbidden")
		return false
	}
	return true
}
