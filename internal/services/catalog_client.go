package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"

	"github.com/hairshop/admin/internal/config"
	"github.com/hairshop/admin/internal/models"
	"github.com/hairshop/admin/internal/observability"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// maxErrorBody caps how much of an error response is read for its message
const maxErrorBody = 64 * 1024

// TransportError is any failed call to the catalog API: network failure,
// timeout or a non-2xx response.
type TransportError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("catalog API %s: %d %s", e.Op, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("catalog API %s: status %d", e.Op, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("catalog API %s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("catalog API %s failed", e.Op)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// CatalogClient talks to the remote catalog REST API. It is the gallery's
// Gateway and backs every catalog form of the console.
type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
	metrics    *observability.ConsoleMetrics
}

// NewCatalogClient creates a client for cfg. Requests carry a bearer token
// from the client-credentials flow when configured, else the static token.
func NewCatalogClient(cfg config.CatalogAPI, metrics *observability.ConsoleMetrics) *CatalogClient {
	var transport http.RoundTripper = http.DefaultTransport

	var source oauth2.TokenSource
	switch {
	case cfg.UsesClientCredentials():
		cc := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
		}
		source = cc.TokenSource(context.Background())
	case cfg.Token != "":
		source = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token, TokenType: "Bearer"})
	}
	if source != nil {
		transport = &oauth2.Transport{Source: source, Base: transport}
	}

	return &CatalogClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout(),
			Transport: transport,
		},
		metrics: metrics,
	}
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do sends a request and decodes a JSON response into out when non-nil
func (c *CatalogClient) do(ctx context.Context, op, method, path string, body io.Reader, contentType string, out interface{}) error {
	ctx, span := observability.StartClientSpan(ctx, method, path)
	defer span.End()
	span.SetAttributes(attribute.String("catalog.operation", op))

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		observability.RecordError(span, err)
		return &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordCatalogCall(ctx, method, 0)
		observability.RecordError(span, err)
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.metrics.RecordCatalogCall(ctx, method, resp.StatusCode)
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		terr := &TransportError{Op: op, StatusCode: resp.StatusCode}
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil {
			terr.Message = apiErr.Error
			if terr.Message == "" {
				terr.Message = apiErr.Message
			}
		}
		observability.RecordError(span, terr)
		return terr
	}

	if out == nil {
		observability.SetSuccess(span)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		observability.RecordError(span, err)
		return &TransportError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		observability.SetSuccess(span)
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		observability.RecordError(span, err)
		return &TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("invalid response body: %w", err)}
	}

	observability.SetSuccess(span)
	return nil
}

func (c *CatalogClient) doJSON(ctx context.Context, op, method, path string, in, out interface{}) error {
	if in == nil {
		return c.do(ctx, op, method, path, nil, "", out)
	}
	data, err := json.Marshal(in)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	return c.do(ctx, op, method, path, bytes.NewReader(data), "application/json", out)
}

func escape(id string) string {
	return url.PathEscape(id)
}

// Colors

func (c *CatalogClient) ListColors(ctx context.Context) ([]models.Color, error) {
	var resp struct {
		Colors []models.Color `json:"colors"`
	}
	if err := c.doJSON(ctx, "list colors", http.MethodGet, "/v1/colors", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Colors, nil
}

func (c *CatalogClient) CreateColor(ctx context.Context, req models.CreateColorRequest) (*models.Color, error) {
	var resp struct {
		Color models.Color `json:"color"`
	}
	if err := c.doJSON(ctx, "create color", http.MethodPost, "/v1/colors", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Color, nil
}

func (c *CatalogClient) DeleteColor(ctx context.Context, id string) error {
	return c.doJSON(ctx, "delete color", http.MethodDelete, "/v1/colors/"+escape(id), nil, nil)
}

// Products

func (c *CatalogClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	var resp struct {
		Products []models.Product `json:"products"`
	}
	if err := c.doJSON(ctx, "list products", http.MethodGet, "/v1/products", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *CatalogClient) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var resp struct {
		Product models.Product `json:"product"`
	}
	if err := c.doJSON(ctx, "get product", http.MethodGet, "/v1/products/"+escape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Product, nil
}

func (c *CatalogClient) CreateProduct(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	var resp struct {
		Product models.Product `json:"product"`
	}
	if err := c.doJSON(ctx, "create product", http.MethodPost, "/v1/products", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Product, nil
}

func (c *CatalogClient) UpdateProduct(ctx context.Context, id string, req models.ProductRequest) (*models.Product, error) {
	var resp struct {
		Product models.Product `json:"product"`
	}
	if err := c.doJSON(ctx, "update product", http.MethodPut, "/v1/products/"+escape(id), req, &resp); err != nil {
		return nil, err
	}
	return &resp.Product, nil
}

func (c *CatalogClient) DeleteProduct(ctx context.Context, id string) error {
	return c.doJSON(ctx, "delete product", http.MethodDelete, "/v1/products/"+escape(id), nil, nil)
}

// Variants

func (c *CatalogClient) GetVariant(ctx context.Context, id string) (*models.Variant, error) {
	var resp struct {
		Variant models.Variant `json:"variant"`
	}
	if err := c.doJSON(ctx, "get variant", http.MethodGet, "/v1/variants/"+escape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Variant, nil
}

// CreateVariant posts the variant and its images as one multipart form
func (c *CatalogClient) CreateVariant(ctx context.Context, req models.CreateVariantRequest) (*models.Variant, error) {
	fields := [][2]string{
		{"product_id", req.ProductID},
		{"sku", req.SKU},
		{"price", strconv.FormatFloat(req.Price, 'f', -1, 64)},
	}
	if req.PromoPrice != nil {
		fields = append(fields, [2]string{"promo_price", strconv.FormatFloat(*req.PromoPrice, 'f', -1, 64)})
	}
	fields = append(fields,
		[2]string{"color", req.Color},
		[2]string{"stock_quantity", strconv.Itoa(req.StockQuantity)},
	)

	body, contentType, err := multipartBody(fields, req.Images)
	if err != nil {
		return nil, &TransportError{Op: "create variant", Err: err}
	}

	var resp struct {
		Variant models.Variant `json:"variant"`
	}
	if err := c.do(ctx, "create variant", http.MethodPost, "/v1/variants", body, contentType, &resp); err != nil {
		return nil, err
	}
	return &resp.Variant, nil
}

func (c *CatalogClient) UpdateVariant(ctx context.Context, id string, req models.UpdateVariantRequest) (*models.Variant, error) {
	var resp struct {
		Variant models.Variant `json:"variant"`
	}
	if err := c.doJSON(ctx, "update variant", http.MethodPut, "/v1/variants/"+escape(id), req, &resp); err != nil {
		return nil, err
	}
	return &resp.Variant, nil
}

func (c *CatalogClient) UpdateVariantSKU(ctx context.Context, id, sku string) error {
	return c.doJSON(ctx, "update variant sku", http.MethodPut, "/v1/variants/"+escape(id)+"/sku",
		models.UpdateSKURequest{SKU: sku}, nil)
}

func (c *CatalogClient) DeleteVariant(ctx context.Context, id string) error {
	return c.doJSON(ctx, "delete variant", http.MethodDelete, "/v1/variants/"+escape(id), nil, nil)
}

// AddVariantImages uploads images to an existing variant
func (c *CatalogClient) AddVariantImages(ctx context.Context, variantID string, images []models.UploadFile) ([]models.Image, error) {
	body, contentType, err := multipartBody(nil, images)
	if err != nil {
		return nil, &TransportError{Op: "add variant images", Err: err}
	}

	var resp struct {
		Images []models.Image `json:"images"`
	}
	path := "/v1/variants/" + escape(variantID) + "/images"
	if err := c.do(ctx, "add variant images", http.MethodPost, path, body, contentType, &resp); err != nil {
		return nil, err
	}
	return resp.Images, nil
}

// Gallery gateway

// FetchImages returns a variant's images as the catalog API stores them
func (c *CatalogClient) FetchImages(ctx context.Context, variantID string) ([]models.Image, error) {
	v, err := c.GetVariant(ctx, variantID)
	if err != nil {
		return nil, err
	}
	return v.Images, nil
}

func (c *CatalogClient) DeleteImage(ctx context.Context, imageID string) error {
	return c.doJSON(ctx, "delete image", http.MethodDelete, "/v1/images/"+escape(imageID), nil, nil)
}

// CommitOrder stores a full image order and returns the order the server
// kept. An empty acknowledgement is followed by a fetch so the caller always
// gets the server's view.
func (c *CatalogClient) CommitOrder(ctx context.Context, variantID string, order []models.ImageOrder) ([]models.Image, error) {
	req := struct {
		Images []models.ImageOrder `json:"images"`
	}{Images: order}

	var resp struct {
		Images []models.Image `json:"images"`
	}
	path := "/v1/variants/" + escape(variantID) + "/images/order"
	if err := c.doJSON(ctx, "reorder images", http.MethodPut, path, req, &resp); err != nil {
		return nil, err
	}
	if resp.Images == nil {
		return c.FetchImages(ctx, variantID)
	}
	return resp.Images, nil
}

func multipartBody(fields [][2]string, files []models.UploadFile) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", err
		}
	}
	for _, file := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename=%q`, file.Filename))
		h.Set("Content-Type", file.ContentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
