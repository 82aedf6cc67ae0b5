package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// fallbackErrMessage mirrors the storefront's generic toast when the API
// error body carries no usable message.
const fallbackErrMessage = "the marketplace API returned an unexpected error"

// APIError is a non-2xx response from the marketplace API, carrying the
// server's message when the body had one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("marketplace api: %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with a 404 status.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// Client talks to the upstream marketplace HTTP API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// BaseURLFromEnv resolves the API base URL from MARKETPLACE_API_URL with a
// local default.
func BaseURLFromEnv() string {
	if v := os.Getenv("MARKETPLACE_API_URL"); v != "" {
		return v
	}
	return "http://localhost:5000/api"
}

// NewClient returns a client bound to the given base URL.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 12 * time.Second,
		},
		baseURL: baseURL,
		logger:  logger,
	}
}

// GetProducts fetches a catalog page.
func (c *Client) GetProducts(ctx context.Context, params ListParams) (*ProductList, error) {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Category != "" {
		q.Set("category", params.Category)
	}
	if params.Boutique != "" {
		q.Set("boutique", params.Boutique)
	}

	endpoint := c.baseURL + "/products"
	if encoded := q.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var out ProductList
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	return &out, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var out struct {
		Data Product `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/products/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	return &out.Data, nil
}

// CreateOrder places a single-product order.
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	var out struct {
		Data Order `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/orders", req, &out); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &out.Data, nil
}

// ListReviews fetches reviews, optionally filtered to one product.
func (c *Client) ListReviews(ctx context.Context, productID string) ([]Review, error) {
	endpoint := c.baseURL + "/avis"
	if productID != "" {
		endpoint += "?product=" + url.QueryEscape(productID)
	}
	var out struct {
		Data []Review `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return out.Data, nil
}

// CreateReview submits a product review.
func (c *Client) CreateReview(ctx context.Context, req ReviewRequest) (*Review, error) {
	var out struct {
		Data Review `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/avis", req, &out); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return &out.Data, nil
}

// do runs one request/response cycle. Non-2xx responses become an *APIError
// carrying the server's message when the body has one.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call marketplace api: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("marketplace request",
		zap.String("method", method),
		zap.String("url", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errMessageFromBody(raw),
		}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}

// errMessageFromBody extracts `message` or `error` from a JSON error body,
// falling back to a generic string.
func errMessageFromBody(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return fallbackErrMessage
}
