package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moosflix/catalog/internal/catalog"
)

func (s *Server) handleCreateFile(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name    string `json:"name"`
		Private *bool  `json:"private"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	profile := getProfileFromContext(r)
	file, err := s.catalog.CreateFile(catalog.CreateFileOptions{
		Name:    payload.Name,
		Owner:   profile.UID,
		Private: payload.Private,
	})
	if err != nil {
		respondWithCatalogError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, file)
}

func (s *Server) handleGetFile(w http.ResponseWriter, r *http.Request) {
	file, err := s.catalog.FindFile(chi.URLParam(r, "fileID"))
	if err != nil {
		respondWithCatalogError(w, err)
		return
	}
	// Private files are served to their owner and admins only.
	if file.Private && !mayMutate(getProfileFromContext(r), file.Owner) {
		RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}
	RespondWithJSON(w, http.StatusOK, file)
}

func (s *Server) handlePatchFile(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, "fileID")

	var payload struct {
		Name    *string `json:"name"`
		Private *bool   `json:"private"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !s.authorizeFileMutation(w, r, fileID) {
		return
	}
	err := s.catalog.PatchFile(fileID, catalog.PatchFileOptions{
		Name:    payload.Name,
		Private: payload.Private,
	})
	if err != nil {
		respondWithCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteFile(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, "fileID")

	if !s.authorizeFileMutation(w, r, fileID) {
		return
	}
	if err := s.catalog.DeleteFile(fileID); err != nil {
		respondWithCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) authorizeFileMutation(w http.ResponseWriter, r *http.Request, fileID string) bool {
	file, err := s.catalog.FindFile(fileID)
	if err != nil {
		respondWithCatalogError(w, err)
		return false
	}
	if !mayMutate(getProfileFromContext(r), file.Owner) {
		RespondWithError(w, http.StatusForbidden, "Forbidden")
		return false
	}
	return true
}
