package handlers

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/hairshop/admin/internal/gallery"
	"github.com/hairshop/admin/internal/middleware"
	"github.com/hairshop/admin/internal/models"
	"github.com/hairshop/admin/internal/observability"
	"github.com/hairshop/admin/internal/services"
)

// maxMultipartMemory is how much of a multipart form is kept in memory;
// the rest spills to temp files.
const maxMultipartMemory = 32 << 20

// VariantHandler handles variant endpoints, including image uploads
type VariantHandler struct {
	catalog   *services.CatalogClient
	uploads   *services.UploadService
	galleries *gallery.Registry
	activity  *services.ActivityService
	metrics   *observability.ConsoleMetrics
}

// NewVariantHandler creates a new VariantHandler
func NewVariantHandler(
	catalog *services.CatalogClient,
	uploads *services.UploadService,
	galleries *gallery.Registry,
	activity *services.ActivityService,
	metrics *observability.ConsoleMetrics,
) *VariantHandler {
	return &VariantHandler{
		catalog:   catalog,
		uploads:   uploads,
		galleries: galleries,
		activity:  activity,
		metrics:   metrics,
	}
}

// Get returns a variant with its images in display order
// @Summary Get variant
// @Tags variants
// @Produce json
// @Param id path string true "Variant ID"
// @Success 200 {object} models.Variant
// @Failure 404 {object} models.ErrorResponse
// @Router /api/variants/{id} [get]
func (h *VariantHandler) Get(w http.ResponseWriter, r *http.Request) {
	variant, err := h.catalog.GetVariant(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	variant.Images = models.SortImages(variant.Images)
	respondJSON(w, http.StatusOK, variant)
}

// Create creates a variant together with its first images
// @Summary Create variant
// @Description Multipart form. Images are checked, turned upright, downsized and re-encoded as JPEG before upload.
// @Tags variants
// @Accept multipart/form-data
// @Produce json
// @Param product_id formData string true "Product ID"
// @Param sku formData string true "SKU"
// @Param price formData number true "Price"
// @Param promo_price formData number false "Promo price"
// @Param color formData string true "Color"
// @Param stock_quantity formData integer true "Stock quantity"
// @Param images formData file true "Images"
// @Success 201 {object} models.Variant
// @Failure 400 {object} models.ErrorResponse
// @Router /api/variants [post]
func (h *VariantHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		respondError(w, http.StatusBadRequest, "Request must be multipart/form-data.")
		return
	}

	req := models.CreateVariantRequest{
		ProductID: r.FormValue("product_id"),
		SKU:       r.FormValue("sku"),
		Color:     r.FormValue("color"),
	}

	var err error
	if req.Price, err = parseFloatField(r, "price"); err != nil {
		respondError(w, http.StatusBadRequest, "Price must be a number.")
		return
	}
	if v := strings.TrimSpace(r.FormValue("promo_price")); v != "" {
		promo, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Promo price must be a number.")
			return
		}
		req.PromoPrice = &promo
	}
	if v := strings.TrimSpace(r.FormValue("stock_quantity")); v != "" {
		if req.StockQuantity, err = strconv.Atoi(v); err != nil {
			respondError(w, http.StatusBadRequest, "Stock quantity must be a whole number.")
			return
		}
	}

	req.Images, err = h.prepareImages(r, r.MultipartForm.File["images"])
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		respondServiceError(w, r, err)
		return
	}

	variant, err := h.catalog.CreateVariant(r.Context(), req)
	h.recordUploads(r, req.Images, err)
	if err != nil {
		record(h.activity, r, models.ActionVariantCreate, models.SubjectVariant, "", err)
		respondServiceError(w, r, err)
		return
	}
	record(h.activity, r, models.ActionVariantCreate, models.SubjectVariant, variant.ID, nil)
	variant.Images = models.SortImages(variant.Images)
	respondJSON(w, http.StatusCreated, variant)
}

// Update changes a variant's price, color and stock
// @Summary Update variant
// @Tags variants
// @Accept json
// @Produce json
// @Param id path string true "Variant ID"
// @Param request body models.UpdateVariantRequest true "Variant"
// @Success 200 {object} models.Variant
// @Failure 400 {object} models.ErrorResponse
// @Router /api/variants/{id} [put]
func (h *VariantHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req models.UpdateVariantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := req.Validate(); err != nil {
		respondServiceError(w, r, err)
		return
	}

	variant, err := h.catalog.UpdateVariant(r.Context(), id, req)
	record(h.activity, r, models.ActionVariantUpdate, models.SubjectVariant, id, err)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	variant.Images = models.SortImages(variant.Images)
	respondJSON(w, http.StatusOK, variant)
}

// UpdateSKU changes only a variant's SKU
// @Summary Update variant SKU
// @Tags variants
// @Accept json
// @Param id path string true "Variant ID"
// @Param request body models.UpdateSKURequest true "SKU"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Router /api/variants/{id}/sku [put]
func (h *VariantHandler) UpdateSKU(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req models.UpdateSKURequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	req.SKU = strings.TrimSpace(req.SKU)
	if req.SKU == "" {
		respondServiceError(w, r, models.ErrSKURequired)
		return
	}

	err := h.catalog.UpdateVariantSKU(r.Context(), id, req.SKU)
	record(h.activity, r, models.ActionVariantSKU, models.SubjectVariant, id, err)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a variant and closes it if it is the open gallery
// @Summary Delete variant
// @Tags variants
// @Param id path string true "Variant ID"
// @Success 204
// @Router /api/variants/{id} [delete]
func (h *VariantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := h.catalog.DeleteVariant(r.Context(), id)
	record(h.activity, r, models.ActionVariantDelete, models.SubjectVariant, id, err)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if session := middleware.GetSessionFromContext(r.Context()); session != nil {
		if _, err := h.galleries.Get(session.ID, id); err == nil {
			h.galleries.Close(session.ID)
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// UploadImages adds images to an existing variant. An open gallery for the
// variant without unsaved changes is reloaded.
// @Summary Upload variant images
// @Tags variants
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Variant ID"
// @Param images formData file true "Images"
// @Success 201 {array} models.Image
// @Failure 400 {object} models.ErrorResponse
// @Router /api/variants/{id}/images [post]
func (h *VariantHandler) UploadImages(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		respondError(w, http.StatusBadRequest, "Request must be multipart/form-data.")
		return
	}

	images, err := h.prepareImages(r, r.MultipartForm.File["images"])
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if len(images) == 0 {
		respondServiceError(w, r, models.ErrImagesRequired)
		return
	}

	added, err := h.catalog.AddVariantImages(r.Context(), id, images)
	h.recordUploads(r, images, err)
	record(h.activity, r, models.ActionImageUpload, models.SubjectVariant, id, err)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	if session := middleware.GetSessionFromContext(r.Context()); session != nil {
		if store, err := h.galleries.Get(session.ID, id); err == nil && !store.Snapshot().PendingSave {
			if err := store.Load(r.Context()); err != nil {
				observability.WithContext(r.Context()).Warnf("Gallery reload after upload failed: %v", err)
			}
		}
	}

	if added == nil {
		added = []models.Image{}
	}
	respondJSON(w, http.StatusCreated, models.SortImages(added))
}

// prepareImages reads and prepares every uploaded file. The first bad file
// fails the whole request.
func (h *VariantHandler) prepareImages(r *http.Request, headers []*multipart.FileHeader) ([]models.UploadFile, error) {
	prepared := make([]models.UploadFile, 0, len(headers))
	seen := make(map[string]bool, len(headers))
	for _, header := range headers {
		if header.Size >= h.uploads.MaxBytes() {
			h.metrics.RecordImageUpload(r.Context(), header.Size, false)
			return nil, models.ErrImageTooLarge
		}

		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}

		upload, err := h.uploads.Prepare(header.Filename, header.Header.Get("Content-Type"), data)
		if err != nil {
			h.metrics.RecordImageUpload(r.Context(), header.Size, false)
			return nil, err
		}
		if seen[upload.Hash] {
			observability.WithContext(r.Context()).WithField("filename", header.Filename).Debug("Skipping duplicate upload")
			continue
		}
		seen[upload.Hash] = true
		prepared = append(prepared, upload)
	}
	return prepared, nil
}

func (h *VariantHandler) recordUploads(r *http.Request, images []models.UploadFile, err error) {
	for _, img := range images {
		h.metrics.RecordImageUpload(r.Context(), int64(len(img.Data)), err == nil)
	}
}

func parseFloatField(r *http.Request, name string) (float64, error) {
	v := strings.TrimSpace(r.FormValue(name))
	if v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}
