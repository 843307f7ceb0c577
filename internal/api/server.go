// It defines the API server, sets up the routes (endpoints)
// using chi, and links them to the handler functions. The handlers are
// thin transport glue: they validate the request shape, consult the
// caller's identity and delegate everything else to the catalog service.

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/moosflix/catalog/internal/catalog"
	"github.com/moosflix/catalog/internal/core"
	"github.com/moosflix/catalog/internal/store"
)

// Server holds the dependencies for our API.
type Server struct {
	app     *core.App
	catalog *catalog.Service
}

// Catalog returns the catalog service instance.
func (s *Server) Catalog() *catalog.Service {
	return s.catalog
}

// NewServer creates a new Server instance.
func NewServer(app *core.App) *Server {
	return &Server{
		app:     app,
		catalog: catalog.New(store.New(app.DB)),
	}
}

// Router sets up and returns the main router for the application.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)    // Logs requests to the console
	r.Use(middleware.Recoverer) // Recovers from panics
	r.Use(middleware.Timeout(60 * time.Second))

	r.Group(func(r chi.Router) {
		r.Use(s.IdentityMiddleware)

		// Listing applies the visibility predicate to whatever scopes the
		// caller holds; anonymous callers see public collections only.
		r.Get("/api/collections", s.handleListCollections)

		// The upsert provisions first-time callers, who have a verified
		// uid but no profile yet; it cannot sit behind the profile gate.
		r.Put("/api/profile", s.handleUpsertProfile)

		r.Route("/api", func(r chi.Router) {
			r.Use(s.RequireProfileMiddleware)

			r.Get("/profile", s.handleGetProfile)

			r.Post("/collection", s.handleCreateCollection)
			r.Get("/collection/{collectionID}", s.handleGetCollection)
			r.Patch("/collection/{collectionID}", s.handlePatchCollection)
			r.Delete("/collection/{collectionID}", s.handleDeleteCollection)

			r.Post("/season", s.handleCreateSeason)
			r.Get("/season/{seasonID}", s.handleGetSeason)
			r.Patch("/season/{seasonID}", s.handlePatchSeason)
			r.Delete("/season/{seasonID}", s.handleDeleteSeason)

			// Episodes are keyed by their season on disk, so the season id
			// is part of the route.
			r.Post("/season/{seasonID}/episode", s.handleCreateEpisode)
			r.Get("/season/{seasonID}/episode/{episodeID}", s.handleGetEpisode)
			r.Patch("/season/{seasonID}/episode/{episodeID}", s.handlePatchEpisode)
			r.Delete("/season/{seasonID}/episode/{episodeID}", s.handleDeleteEpisode)

			r.Post("/source", s.handleCreateSource)
			r.Get("/source/{sourceID}", s.handleGetSource)
			r.Patch("/source/{sourceID}", s.handlePatchSource)
			r.Delete("/source/{sourceID}", s.handleDeleteSource)

			r.Post("/subtitle", s.handleCreateSubtitle)
			r.Get("/subtitle/{subtitleID}", s.handleGetSubtitle)
			r.Patch("/subtitle/{subtitleID}", s.handlePatchSubtitle)
			r.Delete("/subtitle/{subtitleID}", s.handleDeleteSubtitle)

			r.Post("/file", s.handleCreateFile)
			r.Get("/file/{fileID}", s.handleGetFile)
			r.Patch("/file/{fileID}", s.handlePatchFile)
			r.Delete("/file/{fileID}", s.handleDeleteFile)
		})
	})

	return r
}
