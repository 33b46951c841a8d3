package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/caffeinepub/glass-bottle-water/models"
)

// HTTPActor talks to a remote actor over JSON/HTTP. The mapping is one
// endpoint per actor call; all numeric fields travel as JSON integers
// (cents, milliliters, nanoseconds).
type HTTPActor struct {
	baseURL string
	client  *http.Client
}

// NewHTTPActor creates an actor client for the given base URL. A nil
// httpClient falls back to http.DefaultClient.
func NewHTTPActor(baseURL string, httpClient *http.Client) *HTTPActor {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPActor{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
	}
}

func (a *HTTPActor) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		text := strings.TrimSpace(string(msg))
		if text == "" {
			text = resp.Status
		}
		return fmt.Errorf("%s %s: %s", method, path, text)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

type productPayload struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Volume        int64  `json:"volume"`
	PricePerUnit  int64  `json:"pricePerUnit"`
	StockQuantity int64  `json:"stockQuantity"`
	IsAvailable   bool   `json:"isAvailable"`
}

// ListProducts fetches the full catalog.
func (a *HTTPActor) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := a.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// AddProduct creates a new catalog entry with a caller-supplied identifier.
func (a *HTTPActor) AddProduct(ctx context.Context, id, name, description string, volume, pricePerUnit, stockQuantity int64, isAvailable bool) error {
	return a.do(ctx, http.MethodPost, "/products", productPayload{
		ID:            id,
		Name:          name,
		Description:   description,
		Volume:        volume,
		PricePerUnit:  pricePerUnit,
		StockQuantity: stockQuantity,
		IsAvailable:   isAvailable,
	}, nil)
}

// UpdateProduct replaces the catalog entry for id. The identifier is
// immutable: it names the entry and travels unchanged in the payload.
func (a *HTTPActor) UpdateProduct(ctx context.Context, id, name, description string, volume, pricePerUnit, stockQuantity int64, isAvailable bool) error {
	return a.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), productPayload{
		ID:            id,
		Name:          name,
		Description:   description,
		Volume:        volume,
		PricePerUnit:  pricePerUnit,
		StockQuantity: stockQuantity,
		IsAvailable:   isAvailable,
	}, nil)
}

// DeleteProduct removes the catalog entry for id.
func (a *HTTPActor) DeleteProduct(ctx context.Context, id string) error {
	return a.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil)
}

// ListOrders fetches all orders.
func (a *HTTPActor) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := a.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// PlaceOrder submits a new order with a client-generated identifier.
func (a *HTTPActor) PlaceOrder(ctx context.Context, orderID, customerName, customerContact string, items []models.OrderItem) error {
	return a.do(ctx, http.MethodPost, "/orders", struct {
		OrderID         string             `json:"orderId"`
		CustomerName    string             `json:"customerName"`
		CustomerContact string             `json:"customerContact"`
		Items           []models.OrderItem `json:"items"`
	}{orderID, customerName, customerContact, items}, nil)
}

// UpdateOrderStatus sets the status of an existing order.
func (a *HTTPActor) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	return a.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(orderID)+"/status", struct {
		Status models.OrderStatus `json:"status"`
	}{status}, nil)
}
