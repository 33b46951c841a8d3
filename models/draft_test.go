package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCustomerDraftValidation(t *testing.T) {
	tests := []struct {
		name  string
		draft CustomerDraft
		want  FieldErrors
	}{
		{"valid", CustomerDraft{Name: "Jane Doe", Contact: "jane@x.com"}, FieldErrors{}},
		{"both empty", CustomerDraft{}, FieldErrors{"name": "Name is required", "contact": "Contact is required"}},
		{"whitespace only", CustomerDraft{Name: "   ", Contact: "\t"}, FieldErrors{"name": "Name is required", "contact": "Contact is required"}},
		{"missing contact", CustomerDraft{Name: "Jane Doe"}, FieldErrors{"contact": "Contact is required"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.draft.Validate())
		})
	}
}

func TestProductDraftValidation(t *testing.T) {
	valid := ProductDraft{ID: "bottle-500", Name: "Still Glass 500ml", Volume: 500, PricePerUnit: 199, StockQuantity: 180, IsAvailable: true}
	require.True(t, valid.Validate().Empty())

	t.Run("zero price is a valid price", func(t *testing.T) {
		d := valid
		d.PricePerUnit = 0
		require.True(t, d.Validate().Empty())
	})

	t.Run("zero volume rejected", func(t *testing.T) {
		d := valid
		d.Volume = 0
		require.Equal(t, "Must be a positive number", d.Validate()["volume"])
	})

	t.Run("negative stock rejected", func(t *testing.T) {
		d := valid
		d.StockQuantity = -1
		require.Equal(t, "Must be a non-negative number", d.Validate()["stockQuantity"])
	})

	t.Run("blank id and name rejected", func(t *testing.T) {
		d := valid
		d.ID = " "
		d.Name = ""
		errs := d.Validate()
		require.Equal(t, "Required", errs["id"])
		require.Equal(t, "Required", errs["name"])
	})
}

func TestDraftTrimming(t *testing.T) {
	d := ProductDraft{ID: " bottle-500 ", Name: " Still Glass ", Description: " nice "}
	trimmed := d.Trimmed()
	require.Equal(t, "bottle-500", trimmed.ID)
	require.Equal(t, "Still Glass", trimmed.Name)
	require.Equal(t, "nice", trimmed.Description)

	c := CustomerDraft{Name: " Jane Doe ", Contact: " jane@x.com "}
	require.Equal(t, CustomerDraft{Name: "Jane Doe", Contact: "jane@x.com"}, c.Trimmed())
}

func TestProductPurchasable(t *testing.T) {
	require.True(t, Product{IsAvailable: true, StockQuantity: 1}.Purchasable())
	require.False(t, Product{IsAvailable: true, StockQuantity: 0}.Purchasable())
	require.False(t, Product{IsAvailable: false, StockQuantity: 5}.Purchasable())
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered, OrderStatusCancelled} {
		require.True(t, s.Valid())
	}
	require.False(t, OrderStatus("shipped").Valid())
	require.False(t, OrderStatus("").Valid())
}
