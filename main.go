// main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/caffeinepub/glass-bottle-water/backend"
	"github.com/caffeinepub/glass-bottle-water/controllers"
	"github.com/caffeinepub/glass-bottle-water/middleware"
	"github.com/caffeinepub/glass-bottle-water/models"
	"github.com/caffeinepub/glass-bottle-water/query"
	"github.com/caffeinepub/glass-bottle-water/routes"
	"github.com/caffeinepub/glass-bottle-water/session"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

// sessionTTL is how long an idle browsing session survives before the
// sweeper tears it down.
const sessionTTL = 30 * time.Minute

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Connect to the remote actor; without BACKEND_URL the in-memory demo
	// actor serves a seeded catalog.
	var actor backend.Actor
	if url := os.Getenv("BACKEND_URL"); url != "" {
		actor = backend.NewHTTPActor(url, nil)
		log.Printf("Using remote actor at %s", url)
	} else {
		memory := backend.NewMemoryActor()
		memory.Seed(demoCatalog()...)
		actor = memory
		log.Println("BACKEND_URL not set. Using in-memory demo actor.")
	}

	// Initialize the query layer and session store
	client := query.NewClient(actor)
	store := session.NewStore()

	// Evict sessions that have been idle for too long
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if n := store.Sweep(sessionTTL); n > 0 {
				log.Printf("Swept %d idle sessions", n)
			}
		}
	}()

	// Initialize controllers
	catalogController := controllers.NewCatalogController(client)
	cartController := controllers.NewCartController(client)
	checkoutController := controllers.NewCheckoutController(client)
	adminController := controllers.NewAdminController(client)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.SessionMiddleware(store))

	// Register routes
	routes.RegisterRoutes(router, catalogController, cartController, checkoutController, adminController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

func demoCatalog() []models.Product {
	return []models.Product{
		{ID: "bottle-330", Name: "Still Glass 330ml", Description: "Still spring water in a returnable glass bottle.", Volume: 330, PricePerUnit: 149, StockQuantity: 240, IsAvailable: true},
		{ID: "bottle-500", Name: "Still Glass 500ml", Description: "Still spring water, half-liter glass bottle.", Volume: 500, PricePerUnit: 199, StockQuantity: 180, IsAvailable: true},
		{ID: "bottle-750", Name: "Sparkling Glass 750ml", Description: "Naturally carbonated, table-size glass bottle.", Volume: 750, PricePerUnit: 299, StockQuantity: 96, IsAvailable: true},
		{ID: "bottle-1000", Name: "Still Glass 1L", Description: "One liter of still spring water.", Volume: 1000, PricePerUnit: 349, StockQuantity: 0, IsAvailable: true},
	}
}
