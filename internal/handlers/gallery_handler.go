package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hairshop/admin/internal/gallery"
	"github.com/hairshop/admin/internal/middleware"
	"github.com/hairshop/admin/internal/models"
	"github.com/hairshop/admin/internal/services"
)

// GalleryHandler exposes the open image gallery of the current session
type GalleryHandler struct {
	galleries *gallery.Registry
	cdnBase   string
}

// NewGalleryHandler creates a new GalleryHandler
func NewGalleryHandler(galleries *gallery.Registry, cdnBase string) *GalleryHandler {
	return &GalleryHandler{
		galleries: galleries,
		cdnBase:   cdnBase,
	}
}

// Open loads a variant's images and makes it the session's open gallery
// @Summary Open gallery
// @Description Fetches the variant's images and replaces any gallery open in this session.
// @Tags gallery
// @Produce json
// @Param variantID path string true "Variant ID"
// @Success 200 {object} models.GalleryResponse
// @Failure 502 {object} models.ErrorResponse
// @Security SessionAuth
// @Router /api/gallery/{variantID} [post]
func (h *GalleryHandler) Open(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSessionFromContext(r.Context())
	if session == nil {
		respondError(w, http.StatusUnauthorized, "Session required.")
		return
	}

	store, err := h.galleries.Open(r.Context(), session.ID, session.UserID, chi.URLParam(r, "variantID"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	h.respondSnapshot(w, store)
}

// Get returns the open gallery
// @Summary Get gallery
// @Tags gallery
// @Produce json
// @Param variantID path string true "Variant ID"
// @Success 200 {object} models.GalleryResponse
// @Failure 409 {object} models.ErrorResponse "Gallery not open"
// @Security SessionAuth
// @Router /api/gallery/{variantID} [get]
func (h *GalleryHandler) Get(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}
	h.respondSnapshot(w, store)
}

// Move moves one image within the working order
// @Summary Move image
// @Description Moves the image at index from to index to. Nothing is saved until save.
// @Tags gallery
// @Accept json
// @Produce json
// @Param variantID path string true "Variant ID"
// @Param request body models.MoveImageRequest true "Indices"
// @Success 200 {object} models.GalleryResponse
// @Failure 400 {object} models.ErrorResponse
// @Security SessionAuth
// @Router /api/gallery/{variantID}/move [post]
func (h *GalleryHandler) Move(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	var req models.MoveImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.From == nil || req.To == nil {
		respondError(w, http.StatusBadRequest, "from and to are required.")
		return
	}

	if err := store.MoveImage(*req.From, *req.To); err != nil {
		respondServiceError(w, r, err)
		return
	}
	h.respondSnapshot(w, store)
}

// Save commits the working order to the catalog API
// @Summary Save image order
// @Description On failure the working order is rolled back to the last saved order.
// @Tags gallery
// @Produce json
// @Param variantID path string true "Variant ID"
// @Success 200 {object} models.GalleryResponse
// @Failure 409 {object} models.ErrorResponse "Save already in progress"
// @Failure 502 {object} models.ErrorResponse
// @Security SessionAuth
// @Router /api/gallery/{variantID}/save [post]
func (h *GalleryHandler) Save(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	// A commit runs to completion even if the browser goes away
	if err := store.CommitOrder(context.WithoutCancel(r.Context())); err != nil {
		respondServiceError(w, r, err)
		return
	}
	h.respondSnapshot(w, store)
}

// Discard drops unsaved changes
// @Summary Discard image order
// @Tags gallery
// @Produce json
// @Param variantID path string true "Variant ID"
// @Success 200 {object} models.GalleryResponse
// @Security SessionAuth
// @Router /api/gallery/{variantID}/discard [post]
func (h *GalleryHandler) Discard(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}
	store.DiscardOrder()
	h.respondSnapshot(w, store)
}

// DeleteImage deletes an image immediately
// @Summary Delete image
// @Tags gallery
// @Produce json
// @Param variantID path string true "Variant ID"
// @Param imageID path string true "Image ID"
// @Success 200 {object} models.GalleryResponse
// @Failure 404 {object} models.ErrorResponse
// @Security SessionAuth
// @Router /api/gallery/{variantID}/images/{imageID} [delete]
func (h *GalleryHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	if err := store.DeleteImage(context.WithoutCancel(r.Context()), chi.URLParam(r, "imageID")); err != nil {
		respondServiceError(w, r, err)
		return
	}
	h.respondSnapshot(w, store)
}

// Close closes the session's gallery. Unsaved changes are dropped.
// @Summary Close gallery
// @Tags gallery
// @Param variantID path string true "Variant ID"
// @Success 204
// @Security SessionAuth
// @Router /api/gallery/{variantID} [delete]
func (h *GalleryHandler) Close(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSessionFromContext(r.Context())
	if session == nil {
		respondError(w, http.StatusUnauthorized, "Session required.")
		return
	}
	if _, err := h.galleries.Get(session.ID, chi.URLParam(r, "variantID")); err == nil {
		h.galleries.Close(session.ID)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GalleryHandler) store(w http.ResponseWriter, r *http.Request) (*gallery.Store, bool) {
	session := middleware.GetSessionFromContext(r.Context())
	if session == nil {
		respondError(w, http.StatusUnauthorized, "Session required.")
		return nil, false
	}
	store, err := h.galleries.Get(session.ID, chi.URLParam(r, "variantID"))
	if err != nil {
		respondServiceError(w, r, err)
		return nil, false
	}
	return store, true
}

func (h *GalleryHandler) respondSnapshot(w http.ResponseWriter, store *gallery.Store) {
	respondJSON(w, http.StatusOK, services.GalleryView(h.cdnBase, store.Snapshot()))
}
