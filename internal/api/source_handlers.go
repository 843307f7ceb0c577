package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moosflix/catalog/internal/catalog"
	"github.com/moosflix/catalog/internal/models"
)

func (s *Server) handleCreateSource(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SeasonID  string  `json:"seasonId"`
		EpisodeID string  `json:"episodeId"`
		Language  string  `json:"language"`
		Key       string  `json:"key"`
		Subtitles *string `json:"subtitles"`
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

	opts := catalog.CreateSourceOptions{
		SeasonID:  payload.SeasonID,
		EpisodeID: payload.EpisodeID,
		Language:  models.Language(payload.Language),
		Key:       payload.Key,
	}
	if payload.Subtitles != nil {
		subtitles := models.Language(*payload.Subtitles)
		opts.Subtitles = &subtitles
	}
	source, err := s.catalog.CreateSource(opts)
	if err != nil {
		respondWithCatalogError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, source)
}

func (s *Server) handleGetSource(w http.ResponseWriter, r *http.Request) {
	source, err := s.catalog.FindSource(chi.URLParam(r, "sourceID"))
	if err != nil {
		respondWithCatalogError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, source)
}

func (s *Server) handlePatchSource(w http.ResponseWriter, r *http.Request) {
	sourceID := chi.URLParam(r, "sourceID")

	var payload struct {
		Language  *string `json:"language"`
		Key       *string `json:"key"`
		Subtitles *string `json:"subtitles"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	source, err := s.catalog.FindSource(sourceID)
	if err != nil {
		respondWithCatalogError(w, err)
		return
	}
	if !s.authorizeSeasonMutation(w, r, source.SeasonID) {
		return
	}

	opts := catalog.PatchSourceOptions{Key: payload.Key}
	if payload.Language != nil {
		language := models.Language(*payload.Language)
		opts.Language = &language
	}
	if payload.Subtitles != nil {
		subtitles := models.Language(*payload.Subtitles)
		opts.Subtitles = &subtitles
	}
	if err := s.catalog.PatchSource(sourceID, opts); err != nil {
		respondWithCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteSource(w http.ResponseWriter, r *http.Request) {
	sourceID := chi.URLParam(r, "sourceID")

	source, err := s.catalog.FindSource(sourceID)
	if err != nil {
		respondWithCatalogError(w, err)
		return
	}
	if !s.authorizeSeasonMutation(w, r, source.SeasonID) {
		return
	}
	if err := s.catalog.DeleteSource(sourceID); err != nil {
		respondWithCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
