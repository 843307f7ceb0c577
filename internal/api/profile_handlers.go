package api

import (
	"encoding/json"
	"net/http"

	"github.com/moosflix/catalog/internal/catalog"
	"github.com/moosflix/catalog/internal/models"
)

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, getProfileFromContext(r))
}

// handleUpsertProfile creates or updates the caller's own profile. It sits
// outside the profile-required group so that a first-time caller with a
// verified uid can provision themselves. Scope escalation is reserved for
// admins; everyone else keeps whatever scopes they already hold.
func (s *Server) handleUpsertProfile(w http.ResponseWriter, r *http.Request) {
	uid := getUIDFromContext(r)
	if uid == "" {
		RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload struct {
		Username string        `json:"username"`
		Avatar   *string       `json:"avatar"`
		Scopes   []models.Scope `json:"scopes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	opts := catalog.UpsertProfileOptions{
		UID:      uid,
		Username: payload.Username,
		Avatar:   payload.Avatar,
	}
	caller := getProfileFromContext(r)
	if payload.Scopes != nil && caller != nil &&
		(models.HasScope(caller.Scopes, models.ScopeAdmin) || models.HasScope(caller.Scopes, models.ScopeWildcard)) {
		opts.Scopes = payload.Scopes
	}

	profile, err := s.catalog.UpsertProfile(opts)
	if err != nil {
		respondWithCatalogError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, profile)
}
