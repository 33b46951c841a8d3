package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/caffeinepub/glass-bottle-water/middleware"
	"github.com/caffeinepub/glass-bottle-water/models"
	"github.com/caffeinepub/glass-bottle-water/query"
	"github.com/caffeinepub/glass-bottle-water/session"
	"github.com/caffeinepub/glass-bottle-water/utils"
	"github.com/gorilla/mux"
)

// CartController handles cart-related requests. All cart state lives on the
// session; the only network traffic here is the catalog read needed to
// snapshot the product being added.
type CartController struct {
	Client *query.Client
}

// NewCartController creates a new CartController.
func NewCartController(client *query.Client) *CartController {
	return &CartController{Client: client}
}

type cartView struct {
	Lines               []models.CartLine `json:"lines"`
	TotalItems          int               `json:"totalItems"`
	TotalPrice          int64             `json:"totalPrice"`
	TotalPriceFormatted string            `json:"totalPriceFormatted"`
}

// AddToCart adds one unit of a product to the session cart.
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.SessionFromRequest(r)
	if !ok {
		http.Error(w, "No session", http.StatusInternalServerError)
		return
	}

	var body struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ProductID == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	products, err := cc.Client.Products(r.Context())
	if err != nil {
		writeError(w, remoteStatus(err), err)
		return
	}

	for _, p := range products {
		if p.ID == body.ProductID {
			s.Cart.AddItem(p)
			cc.writeCart(w, s)
			return
		}
	}
	http.Error(w, "Product not found", http.StatusNotFound)
}

// UpdateQuantity sets the quantity of a cart line; zero or negative removes
// the line.
func (cc *CartController) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.SessionFromRequest(r)
	if !ok {
		http.Error(w, "No session", http.StatusInternalServerError)
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	params := mux.Vars(r)
	s.Cart.UpdateQuantity(params["product_id"], body.Quantity)
	cc.writeCart(w, s)
}

// RemoveFromCart deletes a cart line entirely.
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.SessionFromRequest(r)
	if !ok {
		http.Error(w, "No session", http.StatusInternalServerError)
		return
	}

	params := mux.Vars(r)
	s.Cart.RemoveItem(params["product_id"])
	cc.writeCart(w, s)
}

// GetCart retrieves the session cart with its derived totals.
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.SessionFromRequest(r)
	if !ok {
		http.Error(w, "No session", http.StatusInternalServerError)
		return
	}
	cc.writeCart(w, s)
}

func (cc *CartController) writeCart(w http.ResponseWriter, s *session.Session) {
	lines := s.Cart.Lines()
	if lines == nil {
		lines = []models.CartLine{}
	}
	total := s.Cart.TotalPrice()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartView{
		Lines:               lines,
		TotalItems:          s.Cart.TotalItems(),
		TotalPrice:          total,
		TotalPriceFormatted: utils.FormatPrice(total),
	})
}
