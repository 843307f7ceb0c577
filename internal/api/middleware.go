package api

// The service performs no authentication itself: an upstream gateway
// terminates the session and forwards the verified subject in the
// X-Auth-Uid header. The middleware here only resolves that identity to a
// stored profile and enforces the "who may mutate" floor.

import (
	"context"
	"errors"
	"net/http"

	"github.com/moosflix/catalog/internal/models"
	"github.com/moosflix/catalog/internal/store"
)

// contextKey is a private type to prevent collisions with other context keys.
type contextKey string

const (
	uidContextKey     = contextKey("uid")
	profileContextKey = contextKey("profile")
)

// IdentityMiddleware records the verified X-Auth-Uid and resolves it to a
// stored profile when one exists. A uid without a profile is a first-time
// caller: the uid is kept so the profile upsert can provision them, but no
// profile lands in the context. Requests without the header pass through
// anonymously.
func (s *Server) IdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid := r.Header.Get("X-Auth-Uid")
		if uid == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), uidContextKey, uid)
		profile, err := s.catalog.FindProfile(uid)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			respondWithCatalogError(w, err)
			return
		}
		if profile != nil {
			ctx = context.WithValue(ctx, profileContextKey, profile)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireProfileMiddleware rejects requests that carry no resolved
// profile. It must be chained after IdentityMiddleware.
func (s *Server) RequireProfileMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if getProfileFromContext(r) == nil {
			RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// getUIDFromContext returns the verified caller uid, or "" for anonymous
// requests.
func getUIDFromContext(r *http.Request) string {
	uid, ok := r.Context().Value(uidContextKey).(string)
	if !ok {
		return ""
	}
	return uid
}

// getProfileFromContext safely retrieves the caller's profile from the
// request context. It returns nil when the caller has no profile yet.
func getProfileFromContext(r *http.Request) *models.Profile {
	profile, ok := r.Context().Value(profileContextKey).(*models.Profile)
	if !ok {
		return nil
	}
	return profile
}

// callerScopes returns the caller's scopes, empty for anonymous requests.
func callerScopes(r *http.Request) []models.Scope {
	profile := getProfileFromContext(r)
	if profile == nil {
		return nil
	}
	return profile.Scopes
}

// mayMutate reports whether the caller owns the resource or holds an
// admin-equivalent scope.
func mayMutate(profile *models.Profile, owner string) bool {
	if profile == nil {
		return false
	}
	if profile.UID == owner {
		return true
	}
	return models.HasScope(profile.Scopes, models.ScopeAdmin) || models.HasScope(profile.Scopes, models.ScopeWildcard)
}
