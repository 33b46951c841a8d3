package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/caffeinepub/glass-bottle-water/models"
	"github.com/stretchr/testify/require"
)

func TestHTTPActorListProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/products", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Product{
			{ID: "bottle-500", Name: "Still Glass 500ml", PricePerUnit: 199, StockQuantity: 180, Volume: 500, IsAvailable: true},
		})
	}))
	defer server.Close()

	actor := NewHTTPActor(server.URL, nil)
	products, err := actor.ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, int64(199), products[0].PricePerUnit)
}

func TestHTTPActorPlaceOrderPayload(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	}))
	defer server.Close()

	actor := NewHTTPActor(server.URL, nil)
	err := actor.PlaceOrder(context.Background(), "ORD-XYZ-1234", "Jane Doe", "jane@x.com", []models.OrderItem{
		{ProductID: "bottle-500", Quantity: 3},
	})

	require.NoError(t, err)
	require.Equal(t, "ORD-XYZ-1234", body["orderId"])
	require.Equal(t, "Jane Doe", body["customerName"])
	require.Equal(t, "jane@x.com", body["customerContact"])
}

func TestHTTPActorUpdateOrderStatusPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/orders/ORD-1/status", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "delivered", body["status"])
	}))
	defer server.Close()

	actor := NewHTTPActor(server.URL, nil)
	require.NoError(t, actor.UpdateOrderStatus(context.Background(), "ORD-1", models.OrderStatusDelivered))
}

func TestHTTPActorSurfacesRemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "insufficient stock for product: bottle-500", http.StatusConflict)
	}))
	defer server.Close()

	actor := NewHTTPActor(server.URL, nil)
	err := actor.PlaceOrder(context.Background(), "ORD-1", "Jane", "jane@x.com", nil)

	require.Error(t, err)
	require.Contains(t, err.Error(), "insufficient stock for product: bottle-500")
}

func TestHTTPActorDeleteProductEscapesID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/products/bottle%2F500", r.URL.EscapedPath())
	}))
	defer server.Close()

	actor := NewHTTPActor(server.URL, nil)
	require.NoError(t, actor.DeleteProduct(context.Background(), "bottle/500"))
}
