// Package admin implements the dashboard's mutator forms. Each mutation is
// a single-shot call with three observable outcomes: pending blocks repeat
// submission, success closes the form, failure keeps the form open with the
// entered data intact.
package admin

import (
	"context"
	"errors"
	"sync"

	"github.com/caffeinepub/glass-bottle-water/models"
	"github.com/caffeinepub/glass-bottle-water/query"
	"github.com/caffeinepub/glass-bottle-water/task"
)

var (
	// ErrPending rejects a submit while the previous one is still in flight.
	ErrPending = errors.New("submission already in progress")
	// ErrValidation blocks a submit with field errors before any network call.
	ErrValidation = errors.New("form is invalid")
	// ErrClosed rejects a submit on a form that already completed.
	ErrClosed = errors.New("form is closed")
	// ErrInvalidStatus rejects an order-status value outside the enum.
	ErrInvalidStatus = errors.New("invalid order status")
)

// ProductForm drives the add/edit product dialog. In edit mode the product
// identifier is immutable: whatever the draft says, the original ID is what
// crosses the actor boundary.
type ProductForm struct {
	client *query.Client

	mu         sync.Mutex
	editing    bool
	originalID string
	draft      models.ProductDraft
	fieldErrs  models.FieldErrors
	open       bool
	call       task.Task
}

// NewProductForm opens a form for creating a product.
func NewProductForm(client *query.Client) *ProductForm {
	return &ProductForm{client: client, open: true}
}

// EditProductForm opens a form prefilled from an existing product.
func EditProductForm(client *query.Client, p models.Product) *ProductForm {
	return &ProductForm{
		client:     client,
		editing:    true,
		originalID: p.ID,
		open:       true,
		draft: models.ProductDraft{
			ID:            p.ID,
			Name:          p.Name,
			Description:   p.Description,
			Volume:        p.Volume,
			PricePerUnit:  p.PricePerUnit,
			StockQuantity: p.StockQuantity,
			IsAvailable:   p.IsAvailable,
		},
	}
}

// SetDraft replaces the form contents. Edit mode pins the ID back to the
// original.
func (f *ProductForm) SetDraft(d models.ProductDraft) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.editing {
		d.ID = f.originalID
	}
	f.draft = d
}

// Draft returns the current form contents.
func (f *ProductForm) Draft() models.ProductDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Open reports whether the form is still open. Success closes it; failure
// leaves it open so the entered data is not lost.
func (f *ProductForm) Open() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

// Editing reports whether the form edits an existing product.
func (f *ProductForm) Editing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.editing
}

// FieldErrors returns the field errors from the last submit.
func (f *ProductForm) FieldErrors() models.FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fieldErrs
}

// Err returns the remote error from the last failed submit, if any.
func (f *ProductForm) Err() error { return f.call.Err() }

// Pending reports whether a submit is in flight.
func (f *ProductForm) Pending() bool { return f.call.Pending() }

// Discard tears the form down; a submit still in flight will not apply.
func (f *ProductForm) Discard() {
	f.mu.Lock()
	f.open = false
	f.mu.Unlock()
	f.call.Discard()
}

// Submit validates the draft and issues the add or update call. Validation
// failures never reach the network; a remote failure keeps the form open.
func (f *ProductForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if !f.open {
		f.mu.Unlock()
		return ErrClosed
	}
	draft := f.draft.Trimmed()
	f.fieldErrs = draft.Validate()
	if !f.fieldErrs.Empty() {
		f.mu.Unlock()
		return ErrValidation
	}
	editing := f.editing
	f.mu.Unlock()

	token, ok := f.call.Begin()
	if !ok {
		return ErrPending
	}

	var err error
	if editing {
		err = f.client.UpdateProduct(ctx, draft)
	} else {
		err = f.client.AddProduct(ctx, draft)
	}
	if !f.call.Finish(token, err) {
		// Discarded while in flight; do not touch the form.
		return err
	}
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.open = false
	f.mu.Unlock()
	return nil
}

// ProductDeleter drives the single-shot delete action for one product. A
// failed delete leaves the product cache valid, so the product stays in the
// list.
type ProductDeleter struct {
	client *query.Client
	call   task.Task
}

// NewProductDeleter returns a deleter bound to the query client.
func NewProductDeleter(client *query.Client) *ProductDeleter {
	return &ProductDeleter{client: client}
}

// Pending reports whether a delete is in flight.
func (d *ProductDeleter) Pending() bool { return d.call.Pending() }

// Err returns the error of the last failed delete, or nil.
func (d *ProductDeleter) Err() error { return d.call.Err() }

// Discard invalidates any in-flight delete.
func (d *ProductDeleter) Discard() { d.call.Discard() }

// Delete removes the product with the given id.
func (d *ProductDeleter) Delete(ctx context.Context, id string) error {
	token, ok := d.call.Begin()
	if !ok {
		return ErrPending
	}
	err := d.client.DeleteProduct(ctx, id)
	d.call.Finish(token, err)
	return err
}

// OrderStatusForm drives the status dropdown on the order management view.
type OrderStatusForm struct {
	client *query.Client
	call   task.Task
}

// NewOrderStatusForm returns a status form bound to the query client.
func NewOrderStatusForm(client *query.Client) *OrderStatusForm {
	return &OrderStatusForm{client: client}
}

// Pending reports whether an update is in flight.
func (f *OrderStatusForm) Pending() bool { return f.call.Pending() }

// Err returns the error of the last failed update, or nil.
func (f *OrderStatusForm) Err() error { return f.call.Err() }

// Discard invalidates any in-flight update.
func (f *OrderStatusForm) Discard() { f.call.Discard() }

// Update sets the status of an order. Membership in the enum is checked
// locally; which transitions the remote side accepts is its own business.
func (f *OrderStatusForm) Update(ctx context.Context, orderID string, status models.OrderStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	token, ok := f.call.Begin()
	if !ok {
		return ErrPending
	}
	err := f.client.UpdateOrderStatus(ctx, orderID, status)
	f.call.Finish(token, err)
	return err
}
