package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moosflix/catalog/internal/catalog"
	"github.com/moosflix/catalog/internal/models"
)

func (s *Server) handleCreateSubtitle(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SeasonID  string `json:"seasonId"`
		EpisodeID string `json:"episodeId"`
		Language  string `json:"language"`
		Key       string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if payload.SeasonID == "" {
		RespondWithError(w, http.StatusBadRequest, "seasonId is required")
		return
	}
	if !s.authorizeSeasonMutation(w, r, payload.SeasonID) {
		return
	}

	subtitle, err := s.catalog.CreateSubtitle(catalog.CreateSubtitleOptions{
		SeasonID:  payload.SeasonID,
		EpisodeID: payload.EpisodeID,
		Language:  models.Language(payload.Language),
		Key:       payload.Key,
	})
	if err != nil {
		respondWithCatalogError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, subtitle)
}

func (s *Server) handleGetSubtitle(w http.ResponseWriter, r *http.Request) {
	subtitle, err := s.catalog.FindSubtitle(chi.URLParam(r, "subtitleID"))
	if err != nil {
		respondWithCatalogError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, subtitle)
}

func (s *Server) handlePatchSubtitle(w http.ResponseWriter, r *http.Request) {
	subtitleID := chi.URLParam(r, "subtitleID")

	var payload struct {
		Language *string `json:"language"`
		Key      *string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	subtitle, err := s.catalog.FindSubtitle(subtitleID)
	if err != nil {
		respondWithCatalogError(w, err)
		return
	}
	if !s.authorizeSeasonMutation(w, r, subtitle.SeasonID) {
		return
	}

	opts := catalog.PatchSubtitleOptions{Key: payload.Key}
	if payload.Language != nil {
		language := models.Language(*payload.Language)
		opts.Language = &language
	}
	if err := s.catalog.PatchSubtitle(subtitleID, opts); err != nil {
		respondWithCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteSubtitle(w http.ResponseWriter, r *http.Request) {
	subtitleID := chi.URLParam(r, "subtitleID")

	subtitle, err := s.catalog.FindSubtitle(subtitleID)
	if err != nil {
		respondWithCatalogError(w, err)
		return
	}
	if !s.authorizeSeasonMutation(w, r, subtitle.SeasonID) {
		return
	}
	if err := s.catalog.DeleteSubtitle(subtitleID); err != nil {
		respondWithCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
