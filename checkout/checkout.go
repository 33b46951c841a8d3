// Package checkout turns a cart snapshot into a single order submission and
// tracks the state of that one attempt.
package checkout

import (
	"context"
	"errors"
	"sync"

	"github.com/caffeinepub/glass-bottle-water/cart"
	"github.com/caffeinepub/glass-bottle-water/models"
	"github.com/caffeinepub/glass-bottle-water/query"
	"github.com/caffeinepub/glass-bottle-water/task"
	"github.com/caffeinepub/glass-bottle-water/utils"
)

// Phase is the state of a checkout attempt.
type Phase string

const (
	PhaseEditing    Phase = "editing"
	PhaseSubmitting Phase = "submitting"
	PhaseConfirmed  Phase = "confirmed"
)

var (
	// ErrEmptyCart blocks submission before any network call when the cart
	// has no lines; a zero-item order is never placed.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrValidation blocks submission when the customer draft has field
	// errors; see FieldErrors for the per-field messages.
	ErrValidation = errors.New("customer details are invalid")
	// ErrSubmitting rejects a re-entrant submit while one is in flight.
	ErrSubmitting = errors.New("submission already in progress")
	// ErrConfirmed rejects a submit after the attempt already succeeded.
	ErrConfirmed = errors.New("order already placed")
	// ErrDiscarded reports that the checkout was torn down while the
	// submission was in flight; the completion was dropped, not applied.
	ErrDiscarded = errors.New("checkout discarded")
)

// Confirmation is the read-only view shown after a successful submission.
type Confirmation struct {
	OrderID         string             `json:"orderId"`
	CustomerName    string             `json:"customerName"`
	CustomerContact string             `json:"customerContact"`
	TotalPrice      int64              `json:"totalPrice"`
	Status          models.OrderStatus `json:"status"`
}

// Checkout orchestrates one order submission over a cart. On failure the
// cart and the entered details are left untouched so the user can retry
// without re-entering anything; the cart is cleared exactly once, after
// success.
type Checkout struct {
	client *query.Client
	cart   *cart.Cart

	mu           sync.Mutex
	phase        Phase
	draft        models.CustomerDraft
	fieldErrs    models.FieldErrors
	submitErr    error
	confirmation *Confirmation
	call         task.Task
}

// New starts a checkout attempt in the editing phase.
func New(client *query.Client, c *cart.Cart) *Checkout {
	return &Checkout{client: client, cart: c, phase: PhaseEditing}
}

// SetCustomer records the customer details being edited.
func (co *Checkout) SetCustomer(name, contact string) {
	co.mu.Lock()
	defer co.mu.Unlock()
	co.draft = models.CustomerDraft{Name: name, Contact: contact}
}

// Phase returns the current phase.
func (co *Checkout) Phase() Phase {
	co.mu.Lock()
	defer co.mu.Unlock()
	return co.phase
}

// FieldErrors returns the field errors from the last submit attempt.
func (co *Checkout) FieldErrors() models.FieldErrors {
	co.mu.Lock()
	defer co.mu.Unlock()
	return co.fieldErrs
}

// Err returns the remote error from the last failed submission, if any.
func (co *Checkout) Err() error {
	co.mu.Lock()
	defer co.mu.Unlock()
	return co.submitErr
}

// Discard tears the attempt down. A submission still in flight settles on
// the remote side either way, but its completion is dropped locally: the
// cart is not cleared and no confirmation is recorded.
func (co *Checkout) Discard() {
	co.call.Discard()
	co.mu.Lock()
	defer co.mu.Unlock()
	if co.phase == PhaseSubmitting {
		co.phase = PhaseEditing
	}
}

// Confirmation returns the confirmation view, or nil before success.
func (co *Checkout) Confirmation() *Confirmation {
	co.mu.Lock()
	defer co.mu.Unlock()
	return co.confirmation
}

// Submit validates the draft and the cart, generates an order identifier,
// and issues exactly one placeOrder call. Validation failures and an empty
// cart return before any network traffic.
func (co *Checkout) Submit(ctx context.Context) (*Confirmation, error) {
	co.mu.Lock()
	switch co.phase {
	case PhaseSubmitting:
		co.mu.Unlock()
		return nil, ErrSubmitting
	case PhaseConfirmed:
		co.mu.Unlock()
		return nil, ErrConfirmed
	}

	draft := co.draft.Trimmed()
	co.fieldErrs = draft.Validate()
	if !co.fieldErrs.Empty() {
		co.mu.Unlock()
		return nil, ErrValidation
	}

	lines := co.cart.Lines()
	if len(lines) == 0 {
		co.mu.Unlock()
		return nil, ErrEmptyCart
	}

	orderID := utils.GenerateOrderID()
	items := make([]models.OrderItem, 0, len(lines))
	var total int64
	for _, line := range lines {
		items = append(items, models.OrderItem{
			ProductID: line.Product.ID,
			Quantity:  int64(line.Quantity),
		})
		total += line.LineTotal()
	}

	token, ok := co.call.Begin()
	if !ok {
		co.mu.Unlock()
		return nil, ErrSubmitting
	}
	co.phase = PhaseSubmitting
	co.submitErr = nil
	co.mu.Unlock()

	err := co.client.PlaceOrder(ctx, orderID, draft.Name, draft.Contact, items)

	applied := co.call.Finish(token, err)

	co.mu.Lock()
	defer co.mu.Unlock()
	if !applied {
		// Discarded while in flight; the cart stays untouched and no
		// confirmation appears.
		if co.phase == PhaseSubmitting {
			co.phase = PhaseEditing
		}
		return nil, ErrDiscarded
	}
	if err != nil {
		// Back to editing; the cart and draft survive for a retry.
		co.phase = PhaseEditing
		co.submitErr = err
		return nil, err
	}

	co.cart.Clear()
	co.phase = PhaseConfirmed
	co.confirmation = &Confirmation{
		OrderID:         orderID,
		CustomerName:    draft.Name,
		CustomerContact: draft.Contact,
		TotalPrice:      total,
		Status:          models.OrderStatusPending,
	}
	return co.confirmation, nil
}
