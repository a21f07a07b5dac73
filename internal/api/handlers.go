package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/notura/notura/internal/models"
	"github.com/notura/notura/internal/noteservice"
)

// Handler holds API route handlers.
type Handler struct {
	svc *noteservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *noteservice.Service) *Handler {
	return &Handler{svc: svc}
}

// maxBodyBytes caps JSON request bodies. Image payloads are base64 in JSON,
// so this also bounds uploads.
const maxBodyBytes = 50 << 20

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return false
	}
	return true
}

// ListNotes handles GET /api/notes.
//
//	@Summary		List all active notes, most recently updated first
//	@Tags			notes
//	@Produce		json
//	@Success		200	{object}	NoteListResponse
//	@Security		BearerAuth
//	@Router			/notes [get]
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.ListNotes(r.Context())
	if err != nil {
		writeError(w, "list notes", err)
		return
	}
	writeJSON(w, http.StatusOK, NoteListResponse{Notes: notes, Total: len(notes)})
}

// GetNote handles GET /api/notes/{id}.
//
//	@Summary		Get a single note by id
//	@Tags			notes
//	@Produce		json
//	@Param			id	path		string	true	"Note id"
//	@Success		200	{object}	models.Note
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/notes/{id} [get]
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	note, err := h.svc.GetNote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "get note", err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// CreateNote handles POST /api/notes.
//
//	@Summary		Create a new note
//	@Tags			notes
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateNoteRequest	true	"Note to create"
//	@Success		201		{object}	models.Note
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/notes [post]
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req CreateNoteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Title == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("title is required"))
		return
	}
	note, err := h.svc.CreateNote(r.Context(), req.Title, req.Content, req.CollectionID, req.Tags)
	if err != nil {
		writeError(w, "create note", err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

// UpdateNote handles PUT /api/notes/{id}.
//
//	@Summary		Replace a note's content
//	@Tags			notes
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Note id"
//	@Param			body	body		UpdateNoteRequest	true	"Updated content"
//	@Success		200		{object}	models.Note
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/notes/{id} [put]
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	var req UpdateNoteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	note, err := h.svc.UpdateNote(r.Context(), chi.URLParam(r, "id"), req.Content)
	if err != nil {
		writeError(w, "update note", err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// MoveNote handles PUT /api/notes/{id}/move.
//
//	@Summary		Move a note to a collection (null moves to root)
//	@Tags			notes
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Note id"
//	@Param			body	body		MoveNoteRequest	true	"Target collection"
//	@Success		200		{object}	models.Note
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/notes/{id}/move [put]
func (h *Handler) MoveNote(w http.ResponseWriter, r *http.Request) {
	var req MoveNoteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	note, err := h.svc.MoveNote(r.Context(), chi.URLParam(r, "id"), req.CollectionID)
	if err != nil {
		writeError(w, "move note", err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// DeleteNote handles DELETE /api/notes/{id}.
//
//	@Summary		Delete a note
//	@Tags			notes
//	@Param			id	path	string	true	"Note id"
//	@Success		204	"Note deleted"
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/notes/{id} [delete]
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteNote(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, "delete note", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCollections handles GET /api/collections.
//
//	@Summary		List collections grouped by parent, in sibling order
//	@Tags			collections
//	@Produce		json
//	@Success		200	{object}	CollectionListResponse
//	@Security		BearerAuth
//	@Router			/collections [get]
func (h *Handler) ListCollections(w http.ResponseWriter, r *http.Request) {
	colls, err := h.svc.ListCollections(r.Context())
	if err != nil {
		writeError(w, "list collections", err)
		return
	}
	writeJSON(w, http.StatusOK, CollectionListResponse{Collections: colls})
}

// GetCollection handles GET /api/collections/{id}.
func (h *Handler) GetCollection(w http.ResponseWriter, r *http.Request) {
	coll, err := h.svc.GetCollection(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "get collection", err)
		return
	}
	writeJSON(w, http.StatusOK, coll)
}

// CreateCollection handles POST /api/collections.
//
//	@Summary		Create a collection; sort order is assigned among siblings
//	@Tags			collections
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateCollectionRequest	true	"Collection to create"
//	@Success		201		{object}	models.Collection
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/collections [post]
func (h *Handler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	var req CreateCollectionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("name is required"))
		return
	}
	coll, err := h.svc.CreateCollection(r.Context(), req.Name, req.Description, req.ParentID, req.Color, req.Icon)
	if err != nil {
		writeError(w, "create collection", err)
		return
	}
	writeJSON(w, http.StatusCreated, coll)
}

// UpdateCollection handles PUT /api/collections/{id}.
func (h *Handler) UpdateCollection(w http.ResponseWriter, r *http.Request) {
	var req UpdateCollectionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("name is required"))
		return
	}
	coll, err := h.svc.UpdateCollection(r.Context(), chi.URLParam(r, "id"), req.Name, req.Description)
	if err != nil {
		writeError(w, "update collection", err)
		return
	}
	writeJSON(w, http.StatusOK, coll)
}

// DeleteCollection handles DELETE /api/collections/{id}.
//
//	@Summary		Delete an empty collection; its notes are detached
//	@Tags			collections
//	@Param			id	path	string	true	"Collection id"
//	@Success		204	"Collection deleted"
//	@Failure		404	{object}	errResponse
//	@Failure		409	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/collections/{id} [delete]
func (h *Handler) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCollection(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, "delete collection", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Search handles GET /api/search.
//
//	@Summary		Full-text search across active notes
//	@Tags			search
//	@Produce		json
//	@Param			q	query		string	true	"Search query"
//	@Success		200	{object}	SearchResponse
//	@Security		BearerAuth
//	@Router			/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	var filters *models.SearchFilters
	if raw := r.URL.Query().Get("filters"); raw != "" {
		filters = &models.SearchFilters{}
		if err := json.Unmarshal([]byte(raw), filters); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid filters"))
			return
		}
	}
	results, err := h.svc.Search(r.Context(), q, filters)
	if err != nil {
		writeError(w, "search", err)
		return
	}
	writeJSON(w, http.StatusOK, SearchResponse{Results: results})
}

// RecentSearches handles GET /api/search/recent.
func (h *Handler) RecentSearches(w http.ResponseWriter, r *http.Request) {
	queries, err := h.svc.RecentSearches(r.Context())
	if err != nil {
		writeError(w, "recent searches", err)
		return
	}
	writeJSON(w, http.StatusOK, RecentSearchesResponse{Queries: queries})
}

// RebuildSearchIndex handles POST /api/search/rebuild.
func (h *Handler) RebuildSearchIndex(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RebuildSearchIndex(r.Context()); err != nil {
		writeError(w, "rebuild search index", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExportNotes handles POST /api/export.
//
//	@Summary		Export selected notes as markdown or json
//	@Tags			export
//	@Accept			json
//	@Produce		json
//	@Param			body	body		ExportRequest	true	"Notes and format"
//	@Success		200		{object}	ExportResponse
//	@Failure		400		{object}	errResponse
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/export [post]
func (h *Handler) ExportNotes(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if !decodeBody(w, r, &req) {
		return
	}
	data, err := h.svc.ExportNotes(r.Context(), req.NoteIDs, req.Format)
	if err != nil {
		writeError(w, "export notes", err)
		return
	}
	writeJSON(w, http.StatusOK, ExportResponse{Format: req.Format, Data: data})
}

// ImportNotes handles POST /api/import.
//
//	@Summary		Import notes from a JSON or Markdown document
//	@Tags			export
//	@Accept			json
//	@Produce		json
//	@Param			body	body		ImportRequest	true	"Import source"
//	@Success		201		{object}	ImportResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/import [post]
func (h *Handler) ImportNotes(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if !decodeBody(w, r, &req) {
		return
	}
	count, err := h.svc.ImportNotes(r.Context(), req.Source)
	if err != nil {
		writeError(w, "import notes", err)
		return
	}
	writeJSON(w, http.StatusCreated, ImportResponse{Imported: count})
}

// SaveImage handles POST /api/images.
//
//	@Summary		Store an image, optionally associated with a note
//	@Tags			images
//	@Accept			json
//	@Produce		json
//	@Param			body	body		SaveImageRequest	true	"Image payload (base64)"
//	@Success		201		{object}	models.Image
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/images [post]
func (h *Handler) SaveImage(w http.ResponseWriter, r *http.Request) {
	var req SaveImageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("data is not valid base64"))
		return
	}
	img, err := h.svc.SaveImage(r.Context(), data, req.OriginalName, req.MimeType, req.NoteID)
	if err != nil {
		writeError(w, "save image", err)
		return
	}
	writeJSON(w, http.StatusCreated, img)
}

// ListImages handles GET /api/images.
func (h *Handler) ListImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.svc.ListImages(r.Context())
	if err != nil {
		writeError(w, "list images", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"images": images})
}

// GetImage handles GET /api/images/{id}. The payload is returned inline as a
// data URL.
func (h *Handler) GetImage(w http.ResponseWriter, r *http.Request) {
	img, err := h.svc.GetImage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "get image", err)
		return
	}
	writeJSON(w, http.StatusOK, img)
}

// DeleteImage handles DELETE /api/images/{id}.
func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteImage(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, "delete image", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// NoteImages handles GET /api/notes/{id}/images.
func (h *Handler) NoteImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.svc.ListImagesForNote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "list note images", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"images": images})
}

// SetImageAssociation handles PUT /api/images/{id}/association.
func (h *Handler) SetImageAssociation(w http.ResponseWriter, r *http.Request) {
	var req AssociationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.NoteID == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("note_id is required"))
		return
	}
	if err := h.svc.SetImageAssociation(r.Context(), chi.URLParam(r, "id"), req.NoteID, req.IsUsed); err != nil {
		writeError(w, "set image association", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// StorageInfo handles GET /api/storage/info.
//
//	@Summary		Datastore diagnostics: entity counts and database size
//	@Tags			storage
//	@Produce		json
//	@Success		200	{object}	models.StorageInfo
//	@Security		BearerAuth
//	@Router			/storage/info [get]
func (h *Handler) StorageInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.StorageInfo(r.Context())
	if err != nil {
		writeError(w, "storage info", err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}
