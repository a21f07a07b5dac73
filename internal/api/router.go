package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/notura/notura/internal/noteservice"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *noteservice.Service, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Notes.
	r.Get("/notes", h.ListNotes)
	r.Post("/notes", h.CreateNote)
	r.Get("/notes/{id}", h.GetNote)
	r.Put("/notes/{id}", h.UpdateNote)
	r.Delete("/notes/{id}", h.DeleteNote)
	r.Put("/notes/{id}/move", h.MoveNote)
	r.Get("/notes/{id}/images", h.NoteImages)

	// Collections.
	r.Get("/collections", h.ListCollections)
	r.Post("/collections", h.CreateCollection)
	r.Get("/collections/{id}", h.GetCollection)
	r.Put("/collections/{id}", h.UpdateCollection)
	r.Delete("/collections/{id}", h.DeleteCollection)

	// Search.
	r.Get("/search", h.Search)
	r.Get("/search/recent", h.RecentSearches)
	r.Post("/search/rebuild", h.RebuildSearchIndex)

	// Export / import.
	r.Post("/export", h.ExportNotes)
	r.Post("/import", h.ImportNotes)

	// Images.
	r.Get("/images", h.ListImages)
	r.Post("/images", h.SaveImage)
	r.Get("/images/{id}", h.GetImage)
	r.Delete("/images/{id}", h.DeleteImage)
	r.Put("/images/{id}/association", h.SetImageAssociation)

	// Storage diagnostics.
	r.Get("/storage/info", h.StorageInfo)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
