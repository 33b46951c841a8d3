package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/caffeinepub/glass-bottle-water/checkout"
	"github.com/caffeinepub/glass-bottle-water/middleware"
	"github.com/caffeinepub/glass-bottle-water/query"
	"github.com/caffeinepub/glass-bottle-water/utils"
)

// CheckoutController handles checkout submission.
type CheckoutController struct {
	Client *query.Client
}

// NewCheckoutController creates a new CheckoutController.
func NewCheckoutController(client *query.Client) *CheckoutController {
	return &CheckoutController{Client: client}
}

type confirmationView struct {
	OrderID             string `json:"orderId"`
	CustomerName        string `json:"customerName"`
	CustomerContact     string `json:"customerContact"`
	Status              string `json:"status"`
	TotalPrice          int64  `json:"totalPrice"`
	TotalPriceFormatted string `json:"totalPriceFormatted"`
}

// Submit places the order built from the session cart. Validation failures
// and an empty cart are rejected before any remote call; a remote failure
// leaves the cart and form intact for a retry.
func (cc *CheckoutController) Submit(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.SessionFromRequest(r)
	if !ok {
		http.Error(w, "No session", http.StatusInternalServerError)
		return
	}

	var body struct {
		Name    string `json:"name"`
		Contact string `json:"contact"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	co := s.Checkout(cc.Client)
	co.SetCustomer(body.Name, body.Contact)

	confirmation, err := co.Submit(r.Context())
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(confirmationView{
			OrderID:             confirmation.OrderID,
			CustomerName:        confirmation.CustomerName,
			CustomerContact:     confirmation.CustomerContact,
			Status:              string(confirmation.Status),
			TotalPrice:          confirmation.TotalPrice,
			TotalPriceFormatted: utils.FormatPrice(confirmation.TotalPrice),
		})
	case errors.Is(err, checkout.ErrValidation):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{
			"error":       err.Error(),
			"fieldErrors": co.FieldErrors(),
		})
	case errors.Is(err, checkout.ErrEmptyCart):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, checkout.ErrSubmitting), errors.Is(err, checkout.ErrConfirmed):
		writeError(w, http.StatusConflict, err)
	default:
		writeError(w, remoteStatus(err), err)
	}
}

// GetConfirmation retrieves the confirmation of the last successful
// checkout in this session.
func (cc *CheckoutController) GetConfirmation(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.SessionFromRequest(r)
	if !ok {
		http.Error(w, "No session", http.StatusInternalServerError)
		return
	}

	confirmation := s.LastConfirmation()
	if confirmation == nil {
		http.Error(w, "No confirmed order", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(confirmationView{
		OrderID:             confirmation.OrderID,
		CustomerName:        confirmation.CustomerName,
		CustomerContact:     confirmation.CustomerContact,
		Status:              string(confirmation.Status),
		TotalPrice:          confirmation.TotalPrice,
		TotalPriceFormatted: utils.FormatPrice(confirmation.TotalPrice),
	})
}
