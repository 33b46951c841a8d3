package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/caffeinepub/glass-bottle-water/admin"
	"github.com/caffeinepub/glass-bottle-water/middleware"
	"github.com/caffeinepub/glass-bottle-water/models"
	"github.com/caffeinepub/glass-bottle-water/query"
	"github.com/gorilla/mux"
)

// AdminController handles the dashboard's mutator requests.
type AdminController struct {
	Client *query.Client
}

// NewAdminController creates a new AdminController.
func NewAdminController(client *query.Client) *AdminController {
	return &AdminController{Client: client}
}

// ToggleAdmin flips the session's admin mode. This is a local UI toggle;
// there is no credential involved.
func (ac *AdminController) ToggleAdmin(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.SessionFromRequest(r)
	if !ok {
		http.Error(w, "No session", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"isAdmin": s.ToggleAdmin()})
}

func (ac *AdminController) submitProductForm(w http.ResponseWriter, r *http.Request, form *admin.ProductForm, draft models.ProductDraft) {
	form.SetDraft(draft)

	err := form.Submit(r.Context())
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Product saved"})
	case errors.Is(err, admin.ErrValidation):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{
			"error":       err.Error(),
			"fieldErrors": form.FieldErrors(),
		})
	case errors.Is(err, admin.ErrPending), errors.Is(err, admin.ErrClosed):
		writeError(w, http.StatusConflict, err)
	default:
		// Remote failure: the form stays open with the draft intact.
		writeError(w, remoteStatus(err), err)
	}
}

// CreateProduct handles adding a new product.
func (ac *AdminController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.SessionFromRequest(r)
	if !ok {
		http.Error(w, "No session", http.StatusInternalServerError)
		return
	}

	var draft models.ProductDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ac.submitProductForm(w, r, s.ProductForm(ac.Client), draft)
}

// UpdateProduct handles editing an existing product. The path identifier is
// the one that counts: a draft carrying a different id is pinned back to it.
func (ac *AdminController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.SessionFromRequest(r)
	if !ok {
		http.Error(w, "No session", http.StatusInternalServerError)
		return
	}

	params := mux.Vars(r)
	id := params["id"]

	products, err := ac.Client.Products(r.Context())
	if err != nil {
		writeError(w, remoteStatus(err), err)
		return
	}
	var original *models.Product
	for i := range products {
		if products[i].ID == id {
			original = &products[i]
			break
		}
	}
	if original == nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	var draft models.ProductDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	form := s.SetProductForm(admin.EditProductForm(ac.Client, *original))
	ac.submitProductForm(w, r, form, draft)
}

// DeleteProduct handles removing a product. On remote failure the product
// cache stays valid, so the product remains visible in the list.
func (ac *AdminController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.SessionFromRequest(r)
	if !ok {
		http.Error(w, "No session", http.StatusInternalServerError)
		return
	}

	params := mux.Vars(r)
	deleter := s.Deleter(ac.Client)

	err := deleter.Delete(r.Context(), params["id"])
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Product deleted"})
	case errors.Is(err, admin.ErrPending):
		writeError(w, http.StatusConflict, err)
	default:
		writeError(w, remoteStatus(err), err)
	}
}

// UpdateOrderStatus handles the status change on an order.
func (ac *AdminController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.SessionFromRequest(r)
	if !ok {
		http.Error(w, "No session", http.StatusInternalServerError)
		return
	}

	var body struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	params := mux.Vars(r)
	form := s.StatusForm(ac.Client)

	err := form.Update(r.Context(), params["id"], body.Status)
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Order status updated"})
	case errors.Is(err, admin.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, admin.ErrPending):
		writeError(w, http.StatusConflict, err)
	default:
		writeError(w, remoteStatus(err), err)
	}
}
