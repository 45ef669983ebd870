package models

import (
	"sort"
	"strings"
)

// Product categories as the catalog API numbers them
const (
	CategoryWigs    = 1
	CategoryTails   = 2
	CategoryToppers = 3
)

// CategoryNames are the storefront names of each category
var CategoryNames = map[int]string{
	CategoryWigs:    "Перуки",
	CategoryTails:   "Хвости",
	CategoryToppers: "Топпера",
}

// Hair types accepted by the catalog API
const (
	HairTypeNatural   = "natural"
	HairTypeSynthetic = "synthetic"
)

// Color categories
const (
	ColorCategoryLight = 1
	ColorCategoryDark  = 2
)

// Color is a named hair color variants can reference
type Color struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DisplayName   string `json:"display_name"`
	ColorCategory int    `json:"color_category"`
}

// Product is a catalog product. Variants are only populated by GetProduct.
type Product struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	DisplayName      string    `json:"display_name,omitempty"`
	Description      string    `json:"description,omitempty"`
	ShortDescription string    `json:"short_description,omitempty"`
	Type             string    `json:"type,omitempty"`
	Length           *float64  `json:"length,omitempty"`
	BasePrice        *float64  `json:"base_price,omitempty"`
	BasePromoPrice   *float64  `json:"base_promo_price,omitempty"`
	CategoryID       string    `json:"category_id"`
	Category         string    `json:"category,omitempty"`
	Variants         []Variant `json:"variants,omitempty"`
}

// Variant is a SKU-level color/price/stock combination of a product
type Variant struct {
	ID            string   `json:"id"`
	ProductID     string   `json:"product_id"`
	SKU           string   `json:"sku"`
	Price         float64  `json:"price"`
	PromoPrice    *float64 `json:"promo_price,omitempty"`
	Color         string   `json:"color"`
	StockQuantity int      `json:"stock_quantity"`
	Images        []Image  `json:"images"`
}

// Image is one uploaded picture attached to a variant. ID and URL are
// assigned by the catalog API and never change; SortOrder is 1-based.
type Image struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	SortOrder int    `json:"sort_order"`
}

// ImageOrder is one entry of a reorder request
type ImageOrder struct {
	ID        string `json:"id"`
	SortOrder int    `json:"sort_order"`
}

// SortImages returns a copy of images ordered by ascending SortOrder.
// Equal positions keep their input order.
func SortImages(images []Image) []Image {
	out := make([]Image, len(images))
	copy(out, images)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortOrder < out[j].SortOrder
	})
	return out
}

// RenumberImages sets each image's SortOrder to its 1-based index in place
func RenumberImages(images []Image) {
	for i := range images {
		images[i].SortOrder = i + 1
	}
}

// CreateColorRequest is the body for creating a color
type CreateColorRequest struct {
	Name          string `json:"name"`
	DisplayName   string `json:"display_name,omitempty"`
	ColorCategory int    `json:"color_category,omitempty"`
}

// Validate checks a CreateColorRequest
func (r *CreateColorRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.DisplayName = strings.TrimSpace(r.DisplayName)
	if r.Name == "" {
		return ErrColorNameRequired
	}
	if r.ColorCategory != 0 && r.ColorCategory != ColorCategoryLight && r.ColorCategory != ColorCategoryDark {
		return ErrInvalidColorCategory
	}
	return nil
}

// ProductRequest is the body for creating or updating a product
type ProductRequest struct {
	Name             string   `json:"name"`
	DisplayName      string   `json:"display_name,omitempty"`
	Description      string   `json:"description,omitempty"`
	ShortDescription string   `json:"short_description,omitempty"`
	Type             string   `json:"type,omitempty"`
	Length           *float64 `json:"length,omitempty"`
	BasePrice        *float64 `json:"base_price,omitempty"`
	BasePromoPrice   *float64 `json:"base_promo_price,omitempty"`
	CategoryID       string   `json:"category_id"`
}

// Validate checks a ProductRequest
func (r *ProductRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.CategoryID = strings.TrimSpace(r.CategoryID)
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))

	if r.Name == "" {
		return ErrProductNameRequired
	}
	if r.CategoryID == "" {
		return ErrCategoryRequired
	}
	if r.Type != "" && r.Type != HairTypeNatural && r.Type != HairTypeSynthetic {
		return ErrInvalidHairType
	}
	if isNegative(r.Length) {
		return ErrNegativeLength
	}
	if isNegative(r.BasePrice) || isNegative(r.BasePromoPrice) {
		return ErrNegativePrice
	}
	return nil
}

// UploadFile is a prepared image ready to be sent to the catalog API
type UploadFile struct {
	Filename    string
	ContentType string
	Data        []byte
	// Hash is the SHA-256 of the file as uploaded, before re-encoding
	Hash string
}

// CreateVariantRequest is the form for creating a variant with its images
type CreateVariantRequest struct {
	ProductID     string
	SKU           string
	Price         float64
	PromoPrice    *float64
	Color         string
	StockQuantity int
	Images        []UploadFile
}

// Validate checks a CreateVariantRequest
func (r *CreateVariantRequest) Validate() error {
	r.ProductID = strings.TrimSpace(r.ProductID)
	r.SKU = strings.TrimSpace(r.SKU)
	r.Color = strings.TrimSpace(r.Color)

	if r.ProductID == "" {
		return ErrProductRequired
	}
	if r.SKU == "" {
		return ErrSKURequired
	}
	if r.Color == "" {
		return ErrColorRequired
	}
	if r.Price < 0 || isNegative(r.PromoPrice) {
		return ErrNegativePrice
	}
	if r.StockQuantity < 0 {
		return ErrNegativeStock
	}
	if len(r.Images) == 0 {
		return ErrImagesRequired
	}
	return nil
}

// UpdateVariantRequest is the body for updating a variant
type UpdateVariantRequest struct {
	SKU           string   `json:"sku,omitempty"`
	Price         float64  `json:"price"`
	PromoPrice    *float64 `json:"promo_price,omitempty"`
	Color         string   `json:"color"`
	StockQuantity int      `json:"stock_quantity"`
}

// Validate checks an UpdateVariantRequest
func (r *UpdateVariantRequest) Validate() error {
	r.SKU = strings.TrimSpace(r.SKU)
	r.Color = strings.TrimSpace(r.Color)

	if r.Color == "" {
		return ErrColorRequired
	}
	if r.Price < 0 || isNegative(r.PromoPrice) {
		return ErrNegativePrice
	}
	if r.StockQuantity < 0 {
		return ErrNegativeStock
	}
	return nil
}

// UpdateSKURequest is the body for changing only a variant's SKU
type UpdateSKURequest struct {
	SKU string `json:"sku"`
}

func isNegative(v *float64) bool {
	return v != nil && *v < 0
}

// CatalogError is a validation failure of a catalog request
type CatalogError struct {
	Message string
}

func (e CatalogError) Error() string {
	return e.Message
}

// Catalog validation errors
var (
	ErrColorNameRequired    = CatalogError{"color name is required"}
	ErrInvalidColorCategory = CatalogError{"color category must be light or dark"}
	ErrProductNameRequired  = CatalogError{"product name is required"}
	ErrCategoryRequired     = CatalogError{"category is required"}
	ErrInvalidHairType      = CatalogError{"hair type must be natural or synthetic"}
	ErrNegativeLength       = CatalogError{"length cannot be negative"}
	ErrNegativePrice        = CatalogError{"price cannot be negative"}
	ErrNegativeStock        = CatalogError{"stock quantity cannot be negative"}
	ErrProductRequired      = CatalogError{"product is required"}
	ErrSKURequired          = CatalogError{"SKU is required"}
	ErrColorRequired        = CatalogError{"color is required"}
	ErrImagesRequired       = CatalogError{"at least one image is required"}
	ErrImageTooLarge        = CatalogError{"image must be smaller than the upload limit"}
	ErrNotAnImage           = CatalogError{"only image files can be uploaded"}
)
