package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hairshop/admin/internal/models"
	"github.com/hairshop/admin/internal/services"
)

// ProductHandler handles product endpoints
type ProductHandler struct {
	catalog  *services.CatalogClient
	activity *services.ActivityService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(catalog *services.CatalogClient, activity *services.ActivityService) *ProductHandler {
	return &ProductHandler{catalog: catalog, activity: activity}
}

// List returns all products
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 502 {object} models.ErrorResponse
// @Router /api/products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	for i := range products {
		fillCategory(&products[i])
	}
	if products == nil {
		products = []models.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}

// Get returns a product with its variants
// @Summary Get product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [get]
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	fillCategory(product)
	for i := range product.Variants {
		product.Variants[i].Images = models.SortImages(product.Variants[i].Images)
	}
	respondJSON(w, http.StatusOK, product)
}

// Create creates a product
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param request body models.ProductRequest true "Product"
// @Success 201 {object} models.Product
// @Failure 400 {object} models.ErrorResponse
// @Router /api/products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := req.Validate(); err != nil {
		respondServiceError(w, r, err)
		return
	}

	product, err := h.catalog.CreateProduct(r.Context(), req)
	if err != nil {
		record(h.activity, r, models.ActionProductCreate, models.SubjectProduct, "", err)
		respondServiceError(w, r, err)
		return
	}
	record(h.activity, r, models.ActionProductCreate, models.SubjectProduct, product.ID, nil)
	fillCategory(product)
	respondJSON(w, http.StatusCreated, product)
}

// Update replaces a product's fields
// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.ProductRequest true "Product"
// @Success 200 {object} models.Product
// @Failure 400 {object} models.ErrorResponse
// @Router /api/products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req models.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := req.Validate(); err != nil {
		respondServiceError(w, r, err)
		return
	}

	product, err := h.catalog.UpdateProduct(r.Context(), id, req)
	record(h.activity, r, models.ActionProductUpdate, models.SubjectProduct, id, err)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	fillCategory(product)
	respondJSON(w, http.StatusOK, product)
}

// Delete removes a product
// @Summary Delete product
// @Tags products
// @Param id path string true "Product ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := h.catalog.DeleteProduct(r.Context(), id)
	record(h.activity, r, models.ActionProductDelete, models.SubjectProduct, id, err)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// fillCategory sets the category name from the category id when the API omits it
func fillCategory(p *models.Product) {
	if p == nil || p.Category != "" {
		return
	}
	if id, err := strconv.Atoi(p.CategoryID); err == nil {
		p.Category = models.CategoryNames[id]
	}
}
