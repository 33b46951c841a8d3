// routes/routes.go
package routes

import (
	"github.com/caffeinepub/glass-bottle-water/controllers"
	"github.com/caffeinepub/glass-bottle-water/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, catalogController *controllers.CatalogController, cartController *controllers.CartController, checkoutController *controllers.CheckoutController, adminController *controllers.AdminController) {
	// Catalog routes
	router.HandleFunc("/products", catalogController.GetProducts).Methods("GET")

	// Cart routes
	router.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	router.HandleFunc("/cart/items", cartController.AddToCart).Methods("POST")
	router.HandleFunc("/cart/items/{product_id}", cartController.UpdateQuantity).Methods("PUT")
	router.HandleFunc("/cart/items/{product_id}", cartController.RemoveFromCart).Methods("DELETE")

	// Checkout routes
	router.HandleFunc("/checkout", checkoutController.Submit).Methods("POST")
	router.HandleFunc("/checkout/confirmation", checkoutController.GetConfirmation).Methods("GET")

	// Admin mode toggle stays public: it is a UI mode, not a login
	router.HandleFunc("/admin/toggle", adminController.ToggleAdmin).Methods("POST")

	// Admin routes
	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminMiddleware)
	admin.HandleFunc("/orders", catalogController.GetOrders).Methods("GET")
	admin.HandleFunc("/products", adminController.CreateProduct).Methods("POST")
	admin.HandleFunc("/products/{id}", adminController.UpdateProduct).Methods("PUT")
	admin.HandleFunc("/products/{id}", adminController.DeleteProduct).Methods("DELETE")
	admin.HandleFunc("/orders/{id}/status", adminController.UpdateOrderStatus).Methods("PUT")
}
