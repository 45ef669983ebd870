package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestSortImages(t *testing.T) {
	t.Run("orders by sort order without touching input", func(t *testing.T) {
		in := []Image{
			{ID: "c", SortOrder: 3},
			{ID: "a", SortOrder: 1},
			{ID: "b", SortOrder: 2},
		}

		out := SortImages(in)

		assert.Equal(t, []string{"a", "b", "c"}, imageIDs(out))
		assert.Equal(t, "c", in[0].ID)
	})

	t.Run("keeps input order for equal positions", func(t *testing.T) {
		out := SortImages([]Image{
			{ID: "x", SortOrder: 1},
			{ID: "y", SortOrder: 1},
			{ID: "z", SortOrder: 0},
		})
		assert.Equal(t, []string{"z", "x", "y"}, imageIDs(out))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, SortImages(nil))
	})
}

func TestRenumberImages(t *testing.T) {
	images := []Image{{ID: "a", SortOrder: 7}, {ID: "b", SortOrder: 2}, {ID: "c", SortOrder: 9}}
	RenumberImages(images)

	for i, img := range images {
		assert.Equal(t, i+1, img.SortOrder)
	}
}

func TestCreateColorRequest_Validate(t *testing.T) {
	t.Run("trims and accepts", func(t *testing.T) {
		req := CreateColorRequest{Name: "  blonde ", ColorCategory: ColorCategoryLight}
		require.NoError(t, req.Validate())
		assert.Equal(t, "blonde", req.Name)
	})

	t.Run("requires a name", func(t *testing.T) {
		req := CreateColorRequest{Name: "   "}
		assert.ErrorIs(t, req.Validate(), ErrColorNameRequired)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		req := CreateColorRequest{Name: "teal", ColorCategory: 5}
		assert.ErrorIs(t, req.Validate(), ErrInvalidColorCategory)
	})
}

func TestProductRequest_Validate(t *testing.T) {
	valid := func() ProductRequest {
		return ProductRequest{Name: "Bob", CategoryID: "1", Type: "Natural", Length: floatPtr(30)}
	}

	t.Run("accepts and normalizes type", func(t *testing.T) {
		req := valid()
		require.NoError(t, req.Validate())
		assert.Equal(t, HairTypeNatural, req.Type)
	})

	tests := []struct {
		name   string
		modify func(*ProductRequest)
		want   error
	}{
		{"missing name", func(r *ProductRequest) { r.Name = "" }, ErrProductNameRequired},
		{"missing category", func(r *ProductRequest) { r.CategoryID = " " }, ErrCategoryRequired},
		{"unknown hair type", func(r *ProductRequest) { r.Type = "wool" }, ErrInvalidHairType},
		{"negative length", func(r *ProductRequest) { r.Length = floatPtr(-1) }, ErrNegativeLength},
		{"negative base price", func(r *ProductRequest) { r.BasePrice = floatPtr(-0.5) }, ErrNegativePrice},
		{"negative promo price", func(r *ProductRequest) { r.BasePromoPrice = floatPtr(-2) }, ErrNegativePrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.modify(&req)
			assert.ErrorIs(t, req.Validate(), tt.want)
		})
	}
}

func TestCreateVariantRequest_Validate(t *testing.T) {
	valid := func() CreateVariantRequest {
		return CreateVariantRequest{
			ProductID:     "p1",
			SKU:           "WIG-001",
			Price:         120,
			Color:         "black",
			StockQuantity: 3,
			Images:        []UploadFile{{Filename: "a.jpg", ContentType: "image/jpeg", Data: []byte{1}}},
		}
	}

	t.Run("accepts a complete request", func(t *testing.T) {
		req := valid()
		assert.NoError(t, req.Validate())
	})

	tests := []struct {
		name   string
		modify func(*CreateVariantRequest)
		want   error
	}{
		{"missing product", func(r *CreateVariantRequest) { r.ProductID = "" }, ErrProductRequired},
		{"missing sku", func(r *CreateVariantRequest) { r.SKU = "  " }, ErrSKURequired},
		{"missing color", func(r *CreateVariantRequest) { r.Color = "" }, ErrColorRequired},
		{"negative price", func(r *CreateVariantRequest) { r.Price = -1 }, ErrNegativePrice},
		{"negative promo", func(r *CreateVariantRequest) { r.PromoPrice = floatPtr(-1) }, ErrNegativePrice},
		{"negative stock", func(r *CreateVariantRequest) { r.StockQuantity = -1 }, ErrNegativeStock},
		{"no images", func(r *CreateVariantRequest) { r.Images = nil }, ErrImagesRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.modify(&req)
			assert.ErrorIs(t, req.Validate(), tt.want)
		})
	}
}

func TestUpdateVariantRequest_Validate(t *testing.T) {
	t.Run("requires color", func(t *testing.T) {
		req := UpdateVariantRequest{Price: 10}
		assert.ErrorIs(t, req.Validate(), ErrColorRequired)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		req := UpdateVariantRequest{Color: "red", StockQuantity: -4}
		assert.ErrorIs(t, req.Validate(), ErrNegativeStock)
	})

	t.Run("zero values are allowed", func(t *testing.T) {
		req := UpdateVariantRequest{Color: "red"}
		assert.NoError(t, req.Validate())
	})
}

func imageIDs(images []Image) []string {
	ids := make([]string, len(images))
	for i, img := range images {
		ids[i] = img.ID
	}
	return ids
}
