package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/caffeinepub/glass-bottle-water/backend"
	"github.com/caffeinepub/glass-bottle-water/models"
	"github.com/caffeinepub/glass-bottle-water/query"
)

// CatalogController handles catalog and order list requests.
type CatalogController struct {
	Client *query.Client
}

// NewCatalogController creates a new CatalogController.
func NewCatalogController(client *query.Client) *CatalogController {
	return &CatalogController{Client: client}
}

// writeError sends a JSON error body so a failed fetch is never mistaken
// for an empty list.
func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func remoteStatus(err error) int {
	if errors.Is(err, backend.ErrNotReady) {
		return http.StatusServiceUnavailable
	}
	return http.StatusBadGateway
}

// cacheHeader tells the caller whether the list was served from a fresh
// snapshot or fetched during this request, so the UI can distinguish a
// loading pass from settled data.
func cacheHeader(w http.ResponseWriter, cached bool) {
	if cached {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
}

// GetProducts retrieves the product catalog through the query cache.
func (cc *CatalogController) GetProducts(w http.ResponseWriter, r *http.Request) {
	cacheHeader(w, cc.Client.Cached(query.KeyProducts))

	products, err := cc.Client.Products(r.Context())
	if err != nil {
		writeError(w, remoteStatus(err), err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// GetOrders retrieves all orders (admin only).
func (cc *CatalogController) GetOrders(w http.ResponseWriter, r *http.Request) {
	cacheHeader(w, cc.Client.Cached(query.KeyOrders))

	orders, err := cc.Client.Orders(r.Context())
	if err != nil {
		writeError(w, remoteStatus(err), err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}
