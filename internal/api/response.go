// Helper functions for sending standardized JSON responses and for
// translating catalog errors into HTTP status codes.

package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/moosflix/catalog/internal/catalog"
	"github.com/moosflix/catalog/internal/store"
)

// RespondWithJSON writes a JSON response with the given status code and payload.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		// If marshaling fails, return an error response
		RespondWithError(w, http.StatusInternalServerError, "Failed to marshal response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondWithError writes a standardized JSON error response.
func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithCatalogError maps the catalog's error kinds onto HTTP status
// codes: unknown id -> 404, malformed input -> 400, conflicting write ->
// 409, anything else -> 500.
func respondWithCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, catalog.ErrValidation):
		RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrConflict):
		RespondWithError(w, http.StatusConflict, err.Error())
	default:
		log.Printf("catalog error: %v", err)
		RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
