// Package session scopes all mutable storefront state to one browsing
// session: the cart, the admin-mode flag, the active checkout attempt, and
// any open admin forms. Nothing in this module lives in package-level
// variables; a session is created at first contact and torn down explicitly.
package session

import (
	"sync"
	"time"

	"github.com/caffeinepub/glass-bottle-water/admin"
	"github.com/caffeinepub/glass-bottle-water/cart"
	"github.com/caffeinepub/glass-bottle-water/checkout"
	"github.com/caffeinepub/glass-bottle-water/query"
	"github.com/google/uuid"
)

// Session is the per-visitor state container.
type Session struct {
	ID        string
	CreatedAt time.Time
	Cart      *cart.Cart

	mu          sync.Mutex
	adminMode   bool
	lastSeen    time.Time
	checkout    *checkout.Checkout
	productForm *admin.ProductForm
	deleter     *admin.ProductDeleter
	statusForm  *admin.OrderStatusForm
}

// NewSession creates a session with a fresh cart and admin mode off.
func NewSession() *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Cart:      cart.New(),
		lastSeen:  now,
	}
}

// Touch records activity on the session, deferring idle eviction.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
}

// LastSeen returns the time of the most recent activity.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// IsAdmin reports whether the local admin toggle is on. This is a UI mode,
// not access control.
func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adminMode
}

// ToggleAdmin flips the admin toggle and returns the new value.
func (s *Session) ToggleAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adminMode = !s.adminMode
	return s.adminMode
}

// Checkout returns the active checkout attempt, starting one if needed. A
// confirmed attempt is replaced by a fresh one so the visitor can shop
// again.
func (s *Session) Checkout(client *query.Client) *checkout.Checkout {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkout == nil || s.checkout.Phase() == checkout.PhaseConfirmed {
		s.checkout = checkout.New(client, s.Cart)
	}
	return s.checkout
}

// LastConfirmation returns the confirmation of the most recent checkout, or
// nil when none succeeded yet.
func (s *Session) LastConfirmation() *checkout.Confirmation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkout == nil {
		return nil
	}
	return s.checkout.Confirmation()
}

// ProductForm returns the open create-mode product form, starting one when
// the previous form is closed or absent.
func (s *Session) ProductForm(client *query.Client) *admin.ProductForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.productForm == nil || !s.productForm.Open() {
		s.productForm = admin.NewProductForm(client)
	}
	return s.productForm
}

// SetProductForm installs a form opened elsewhere, such as an edit form
// prefilled from an existing product, as the session's active form.
func (s *Session) SetProductForm(form *admin.ProductForm) *admin.ProductForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.productForm = form
	return s.productForm
}

// Deleter returns the session's product deleter.
func (s *Session) Deleter(client *query.Client) *admin.ProductDeleter {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleter == nil {
		s.deleter = admin.NewProductDeleter(client)
	}
	return s.deleter
}

// StatusForm returns the session's order-status form.
func (s *Session) StatusForm(client *query.Client) *admin.OrderStatusForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.statusForm == nil {
		s.statusForm = admin.NewOrderStatusForm(client)
	}
	return s.statusForm
}

// Teardown discards any in-flight form work so stale completions are
// dropped, then clears the cart. Called when the session is dropped.
func (s *Session) Teardown() {
	s.mu.Lock()
	co := s.checkout
	productForm, deleter, statusForm := s.productForm, s.deleter, s.statusForm
	s.mu.Unlock()

	if co != nil {
		co.Discard()
	}
	if productForm != nil {
		productForm.Discard()
	}
	if deleter != nil {
		deleter.Discard()
	}
	if statusForm != nil {
		statusForm.Discard()
	}
	s.Cart.Clear()
}
