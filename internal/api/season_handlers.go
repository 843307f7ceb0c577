package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moosflix/catalog/internal/catalog"
)

func (s *Server) handleCreateSeason(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		CollectionID string `json:"collectionId"`
		Index        int    `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if payload.CollectionID == "" {
		RespondWithError(w, http.StatusBadRequest, "collectionId is required")
		return
	}
	if !s.authorizeCollectionMutation(w, r, payload.CollectionID) {
		return
	}

	season, err := s.catalog.CreateSeason(catalog.CreateSeasonOptions{
		CollectionID: payload.CollectionID,
		Index:        payload.Index,
	})
	if err != nil {
		respondWithCatalogError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, season)
}

func (s *Server) handleGetSeason(w http.ResponseWriter, r *http.Request) {
	season, err := s.catalog.FindSeason(chi.URLParam(r, "seasonID"))
	if err != nil {
		respondWithCatalogError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, season)
}

func (s *Server) handlePatchSeason(w http.ResponseWriter, r *http.Request) {
	seasonID := chi.URLParam(r, "seasonID")

	var payload struct {
		Index *int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !s.authorizeSeasonMutation(w, r, seasonID) {
		return
	}
	if err := s.catalog.PatchSeason(seasonID, catalog.PatchSeasonOptions{Index: payload.Index}); err != nil {
		respondWithCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteSeason(w http.ResponseWriter, r *http.Request) {
	seasonID := chi.URLParam(r, "seasonID")

	if !s.authorizeSeasonMutation(w, r, seasonID) {
		return
	}
	if err := s.catalog.DeleteSeason(seasonID); err != nil {
		respondWithCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// authorizeSeasonMutation walks up to the owning collection and applies
// the owner-or-admin rule there; seasons carry no owner of their own.
func (s *Server) authorizeSeasonMutation(w http.ResponseWriter, r *http.Request, seasonID string) bool {
	season, err := s.catalog.FindSeason(seasonID)
	if err != nil {
		respondWithCatalogError(w, err)
		return false
	}
	return s.authorizeCollectionMutation(w, r, season.CollectionID)
}
