package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hairshop/admin/internal/config"
	"github.com/hairshop/admin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T, token string, handler http.HandlerFunc) *CatalogClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewCatalogClient(config.CatalogAPI{
		BaseURL:        srv.URL,
		Token:          token,
		TimeoutSeconds: 5,
	}, nil)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestCatalogClient_Auth(t *testing.T) {
	t.Run("sends bearer token", func(t *testing.T) {
		var auth string
		c := newTestCatalog(t, "tok123", func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			writeJSON(w, http.StatusOK, map[string]interface{}{"colors": []models.Color{}})
		})

		_, err := c.ListColors(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer tok123", auth)
	})

	t.Run("no token no header", func(t *testing.T) {
		var auth string
		c := newTestCatalog(t, "", func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			writeJSON(w, http.StatusOK, map[string]interface{}{"colors": []models.Color{}})
		})

		_, err := c.ListColors(context.Background())
		require.NoError(t, err)
		assert.Empty(t, auth)
	})

	t.Run("client credentials fetch a token", func(t *testing.T) {
		tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"access_token": "issued",
				"token_type":   "bearer",
				"expires_in":   3600,
			})
		}))
		defer tokenSrv.Close()

		var auth string
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusNoContent)
		}))
		defer api.Close()

		c := NewCatalogClient(config.CatalogAPI{
			BaseURL:        api.URL,
			TimeoutSeconds: 5,
			ClientID:       "console",
			ClientSecret:   "secret",
			TokenURL:       tokenSrv.URL,
		}, nil)

		require.NoError(t, c.DeleteColor(context.Background(), "c1"))
		assert.Equal(t, "Bearer issued", auth)
	})
}

func TestCatalogClient_Errors(t *testing.T) {
	t.Run("non-2xx becomes TransportError with API message", func(t *testing.T) {
		c := newTestCatalog(t, "", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "sku already exists"})
		})

		err := c.UpdateVariantSKU(context.Background(), "v1", "DUP")

		var terr *TransportError
		require.True(t, errors.As(err, &terr))
		assert.Equal(t, http.StatusConflict, terr.StatusCode)
		assert.Equal(t, "sku already exists", terr.Message)
		assert.Equal(t, "update variant sku", terr.Op)
	})

	t.Run("non-JSON error body keeps status", func(t *testing.T) {
		c := newTestCatalog(t, "", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream down", http.StatusBadGateway)
		})

		_, err := c.GetProduct(context.Background(), "p1")

		var terr *TransportError
		require.True(t, errors.As(err, &terr))
		assert.Equal(t, http.StatusBadGateway, terr.StatusCode)
		assert.Contains(t, terr.Error(), "502")
	})

	t.Run("network failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()
		c := NewCatalogClient(config.CatalogAPI{BaseURL: url, TimeoutSeconds: 1}, nil)

		_, err := c.ListProducts(context.Background())

		var terr *TransportError
		require.True(t, errors.As(err, &terr))
		assert.Zero(t, terr.StatusCode)
		assert.NotNil(t, terr.Unwrap())
	})

	t.Run("invalid JSON", func(t *testing.T) {
		c := newTestCatalog(t, "", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		})

		_, err := c.ListProducts(context.Background())

		var terr *TransportError
		assert.True(t, errors.As(err, &terr))
	})
}

func TestCatalogClient_Products(t *testing.T) {
	t.Run("create sends JSON and unwraps envelope", func(t *testing.T) {
		var got models.ProductRequest
		c := newTestCatalog(t, "", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/products", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			writeJSON(w, http.StatusCreated, map[string]interface{}{
				"product": models.Product{ID: "p1", Name: got.Name, CategoryID: got.CategoryID},
			})
		})

		p, err := c.CreateProduct(context.Background(), models.ProductRequest{Name: "Bob", CategoryID: "1"})

		require.NoError(t, err)
		assert.Equal(t, "p1", p.ID)
		assert.Equal(t, "Bob", got.Name)
	})

	t.Run("list", func(t *testing.T) {
		c := newTestCatalog(t, "", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"products": []models.Product{{ID: "p1"}, {ID: "p2"}},
			})
		})

		products, err := c.ListProducts(context.Background())
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("delete escapes id", func(t *testing.T) {
		var path string
		c := newTestCatalog(t, "", func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.EscapedPath()
			w.WriteHeader(http.StatusNoContent)
		})

		require.NoError(t, c.DeleteProduct(context.Background(), "a/b"))
		assert.Equal(t, "/v1/products/a%2Fb", path)
	})
}

func TestCatalogClient_CreateVariant(t *testing.T) {
	promo := 80.5
	c := newTestCatalog(t, "", func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		assert.Equal(t, "p1", r.FormValue("product_id"))
		assert.Equal(t, "SKU-1", r.FormValue("sku"))
		assert.Equal(t, "100", r.FormValue("price"))
		assert.Equal(t, "80.5", r.FormValue("promo_price"))
		assert.Equal(t, "black", r.FormValue("color"))
		assert.Equal(t, "4", r.FormValue("stock_quantity"))

		files := r.MultipartForm.File["images"]
		if assert.Len(t, files, 2) {
			assert.Equal(t, "a.jpg", files[0].Filename)
			f, err := files[1].Open()
			if assert.NoError(t, err) {
				data, _ := io.ReadAll(f)
				f.Close()
				assert.Equal(t, []byte("second"), data)
			}
		}

		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"variant": models.Variant{ID: "v1", ProductID: "p1", Images: []models.Image{{ID: "i1", SortOrder: 1}}},
		})
	})

	v, err := c.CreateVariant(context.Background(), models.CreateVariantRequest{
		ProductID:     "p1",
		SKU:           "SKU-1",
		Price:         100,
		PromoPrice:    &promo,
		Color:         "black",
		StockQuantity: 4,
		Images: []models.UploadFile{
			{Filename: "a.jpg", ContentType: "image/jpeg", Data: []byte("first")},
			{Filename: "b.jpg", ContentType: "image/jpeg", Data: []byte("second")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "v1", v.ID)
	assert.Len(t, v.Images, 1)
}

func TestCatalogClient_Gateway(t *testing.T) {
	ctx := context.Background()

	t.Run("fetch images reads the variant", func(t *testing.T) {
		c := newTestCatalog(t, "", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/variants/v1", r.URL.Path)
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"variant": models.Variant{ID: "v1", Images: []models.Image{{ID: "b", SortOrder: 2}, {ID: "a", SortOrder: 1}}},
			})
		})

		images, err := c.FetchImages(ctx, "v1")
		require.NoError(t, err)
		assert.Len(t, images, 2)
	})

	t.Run("commit order sends pairs and returns server order", func(t *testing.T) {
		var body struct {
			Images []models.ImageOrder `json:"images"`
		}
		c := newTestCatalog(t, "", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/v1/variants/v1/images/order", r.URL.Path)
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"images": []models.Image{{ID: "b", SortOrder: 1}, {ID: "a", SortOrder: 2}},
			})
		})

		images, err := c.CommitOrder(ctx, "v1", []models.ImageOrder{{ID: "b", SortOrder: 1}, {ID: "a", SortOrder: 2}})

		require.NoError(t, err)
		assert.Equal(t, []models.ImageOrder{{ID: "b", SortOrder: 1}, {ID: "a", SortOrder: 2}}, body.Images)
		assert.Equal(t, "b", images[0].ID)
	})

	t.Run("commit order with empty acknowledgement refetches", func(t *testing.T) {
		calls := 0
		c := newTestCatalog(t, "", func(w http.ResponseWriter, r *http.Request) {
			calls++
			if r.Method == http.MethodPut {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"variant": models.Variant{ID: "v1", Images: []models.Image{{ID: "a", SortOrder: 1}}},
			})
		})

		images, err := c.CommitOrder(ctx, "v1", []models.ImageOrder{{ID: "a", SortOrder: 1}})

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.Len(t, images, 1)
	})

	t.Run("delete image", func(t *testing.T) {
		var method, path string
		c := newTestCatalog(t, "", func(w http.ResponseWriter, r *http.Request) {
			method, path = r.Method, r.URL.Path
			w.WriteHeader(http.StatusOK)
		})

		require.NoError(t, c.DeleteImage(ctx, "i9"))
		assert.Equal(t, http.MethodDelete, method)
		assert.Equal(t, "/v1/images/i9", path)
	})
}
