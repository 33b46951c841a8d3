package checkout

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/caffeinepub/glass-bottle-water/cart"
	"github.com/caffeinepub/glass-bottle-water/models"
	"github.com/caffeinepub/glass-bottle-water/query"
	"github.com/caffeinepub/glass-bottle-water/utils"
	"github.com/stretchr/testify/require"
)

type placeCall struct {
	orderID string
	name    string
	contact string
	items   []models.OrderItem
}

// stubActor records placeOrder calls; it can be told to fail them or to
// hold them until released.
type stubActor struct {
	placeErr error
	block    chan struct{}
	placed   []placeCall
}

func (a *stubActor) ListProducts(ctx context.Context) ([]models.Product, error) { return nil, nil }
func (a *stubActor) AddProduct(ctx context.Context, id, name, description string, volume, pricePerUnit, stockQuantity int64, isAvailable bool) error {
	return nil
}
func (a *stubActor) UpdateProduct(ctx context.Context, id, name, description string, volume, pricePerUnit, stockQuantity int64, isAvailable bool) error {
	return nil
}
func (a *stubActor) DeleteProduct(ctx context.Context, id string) error     { return nil }
func (a *stubActor) ListOrders(ctx context.Context) ([]models.Order, error) { return nil, nil }
func (a *stubActor) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	return nil
}
func (a *stubActor) PlaceOrder(ctx context.Context, orderID, customerName, customerContact string, items []models.OrderItem) error {
	if a.block != nil {
		<-a.block
	}
	if a.placeErr != nil {
		return a.placeErr
	}
	a.placed = append(a.placed, placeCall{orderID, customerName, customerContact, items})
	return nil
}

func cartWith(p models.Product, quantity int) *cart.Cart {
	c := cart.New()
	c.AddItem(p)
	c.UpdateQuantity(p.ID, quantity)
	return c
}

func TestSubmitRefusesEmptyCart(t *testing.T) {
	actor := &stubActor{}
	co := New(query.NewClient(actor), cart.New())
	co.SetCustomer("Jane Doe", "jane@x.com")

	_, err := co.Submit(context.Background())

	require.ErrorIs(t, err, ErrEmptyCart)
	require.Empty(t, actor.placed, "placeOrder must never be issued for an empty cart")
	require.Equal(t, PhaseEditing, co.Phase())
}

func TestSubmitBlocksOnMissingFields(t *testing.T) {
	actor := &stubActor{}
	c := cartWith(models.Product{ID: "bottle-500", PricePerUnit: 199}, 3)
	co := New(query.NewClient(actor), c)
	co.SetCustomer("   ", "")

	_, err := co.Submit(context.Background())

	require.ErrorIs(t, err, ErrValidation)
	require.Equal(t, "Name is required", co.FieldErrors()["name"])
	require.Equal(t, "Contact is required", co.FieldErrors()["contact"])
	require.Empty(t, actor.placed, "validation failures must not reach the network")
}

func TestSubmitPlacesOrderAndClearsCart(t *testing.T) {
	actor := &stubActor{}
	c := cartWith(models.Product{ID: "bottle-500", PricePerUnit: 199}, 3)
	co := New(query.NewClient(actor), c)
	co.SetCustomer("Jane Doe", "jane@x.com")

	confirmation, err := co.Submit(context.Background())

	require.NoError(t, err)
	require.Len(t, actor.placed, 1)
	call := actor.placed[0]
	require.Equal(t, "Jane Doe", call.name)
	require.Equal(t, "jane@x.com", call.contact)
	require.Equal(t, []models.OrderItem{{ProductID: "bottle-500", Quantity: 3}}, call.items)

	require.True(t, c.IsEmpty(), "cart is cleared after a successful submission")
	require.Equal(t, PhaseConfirmed, co.Phase())
	require.Equal(t, call.orderID, confirmation.OrderID)
	require.Equal(t, models.OrderStatusPending, confirmation.Status)
	require.Equal(t, int64(597), confirmation.TotalPrice)
	require.Equal(t, "$5.97", utils.FormatPrice(confirmation.TotalPrice))
}

func TestSubmitTrimsCustomerFields(t *testing.T) {
	actor := &stubActor{}
	c := cartWith(models.Product{ID: "bottle-500", PricePerUnit: 199}, 1)
	co := New(query.NewClient(actor), c)
	co.SetCustomer("  Jane Doe  ", " jane@x.com ")

	_, err := co.Submit(context.Background())

	require.NoError(t, err)
	require.Equal(t, "Jane Doe", actor.placed[0].name)
	require.Equal(t, "jane@x.com", actor.placed[0].contact)
}

func TestSubmitGeneratesOrderIDFormat(t *testing.T) {
	actor := &stubActor{}
	c := cartWith(models.Product{ID: "bottle-500", PricePerUnit: 199}, 1)
	co := New(query.NewClient(actor), c)
	co.SetCustomer("Jane Doe", "jane@x.com")

	confirmation, err := co.Submit(context.Background())

	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^ORD-[0-9A-Z]+-[0-9A-Z]{4}$`), confirmation.OrderID)
}

func TestSubmitFailureKeepsCartAndDraft(t *testing.T) {
	actor := &stubActor{placeErr: errors.New("canister rejected the call")}
	c := cartWith(models.Product{ID: "bottle-500", PricePerUnit: 199}, 3)
	co := New(query.NewClient(actor), c)
	co.SetCustomer("Jane Doe", "jane@x.com")

	_, err := co.Submit(context.Background())
	require.Error(t, err)
	require.Equal(t, PhaseEditing, co.Phase())
	require.EqualError(t, co.Err(), "canister rejected the call")
	require.Equal(t, 3, c.TotalItems(), "cart survives a failed submission")
	require.Nil(t, co.Confirmation())

	// Retry succeeds without re-entering anything.
	actor.placeErr = nil
	confirmation, err := co.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", confirmation.CustomerName)
	require.True(t, c.IsEmpty())
}

func TestSubmitAfterConfirmationIsRejected(t *testing.T) {
	actor := &stubActor{}
	c := cartWith(models.Product{ID: "bottle-500", PricePerUnit: 199}, 1)
	co := New(query.NewClient(actor), c)
	co.SetCustomer("Jane Doe", "jane@x.com")

	_, err := co.Submit(context.Background())
	require.NoError(t, err)

	_, err = co.Submit(context.Background())
	require.ErrorIs(t, err, ErrConfirmed)
	require.Len(t, actor.placed, 1)
}

func TestDiscardDropsInFlightSubmission(t *testing.T) {
	actor := &stubActor{block: make(chan struct{})}
	c := cartWith(models.Product{ID: "bottle-500", PricePerUnit: 199}, 3)
	co := New(query.NewClient(actor), c)
	co.SetCustomer("Jane Doe", "jane@x.com")

	result := make(chan error)
	go func() {
		_, err := co.Submit(context.Background())
		result <- err
	}()

	// Wait for the submission to be in flight, then tear the attempt down
	// before the remote call resolves.
	require.Eventually(t, func() bool { return co.Phase() == PhaseSubmitting },
		time.Second, time.Millisecond)
	co.Discard()
	close(actor.block)

	require.ErrorIs(t, <-result, ErrDiscarded)
	require.Equal(t, 3, c.TotalItems(), "a discarded completion must not clear the cart")
	require.Nil(t, co.Confirmation())
	require.Equal(t, PhaseEditing, co.Phase())
}

func TestSubmitNotReadyFailsFast(t *testing.T) {
	c := cartWith(models.Product{ID: "bottle-500", PricePerUnit: 199}, 1)
	co := New(query.NewClient(nil), c)
	co.SetCustomer("Jane Doe", "jane@x.com")

	_, err := co.Submit(context.Background())

	require.Error(t, err)
	require.Equal(t, PhaseEditing, co.Phase())
	require.Equal(t, 1, c.TotalItems())
}
