package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moosflix/catalog/internal/catalog"
)

func (s *Server) handleCreateEpisode(w http.ResponseWriter, r *http.Request) {
	seasonID := chi.URLParam(r, "seasonID")

	var payload struct {
		Index int    `json:"index"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !s.authorizeSeasonMutation(w, r, seasonID) {
		return
	}
	episode, err := s.catalog.CreateEpisode(catalog.CreateEpisodeOptions{
		SeasonID: seasonID,
		Index:    payload.Index,
		Name:     payload.Name,
	})
	if err != nil {
		respondWithCatalogError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, episode)
}

func (s *Server) handleGetEpisode(w http.ResponseWriter, r *http.Request) {
	episode, err := s.catalog.FindEpisode(chi.URLParam(r, "seasonID"), chi.URLParam(r, "episodeID"))
	if err != nil {
		respondWithCatalogError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, episode)
}

func (s *Server) handlePatchEpisode(w http.ResponseWriter, r *http.Request) {
	seasonID := chi.URLParam(r, "seasonID")
	episodeID := chi.URLParam(r, "episodeID")

	var payload struct {
		Index *int    `json:"index"`
		Name  *string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !s.authorizeSeasonMutation(w, r, seasonID) {
		return
	}
	err := s.catalog.PatchEpisode(seasonID, episodeID, catalog.PatchEpisodeOptions{
		Index: payload.Index,
		Name:  payload.Name,
	})
	if err != nil {
		respondWithCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteEpisode(w http.ResponseWriter, r *http.Request) {
	seasonID := chi.URLParam(r, "seasonID")
	episodeID := chi.URLParam(r, "episodeID")

	if !s.authorizeSeasonMutation(w, r, seasonID) {
		return
	}
	if err := s.catalog.DeleteEpisode(seasonID, episodeID); err != nil {
		respondWithCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
