package cart

import (
	"testing"

	"github.com/caffeinepub/glass-bottle-water/models"
	"github.com/stretchr/testify/require"
)

func bottle(id string, price int64) models.Product {
	return models.Product{
		ID:            id,
		Name:          "Still Glass 500ml",
		Volume:        500,
		PricePerUnit:  price,
		StockQuantity: 10,
		IsAvailable:   true,
	}
}

func TestAddItemAggregatesSameProduct(t *testing.T) {
	c := New()
	p := bottle("bottle-500", 199)

	for i := 0; i < 7; i++ {
		c.AddItem(p)
	}

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, "bottle-500", lines[0].Product.ID)
	require.Equal(t, 7, lines[0].Quantity)
	require.Equal(t, 7, c.TotalItems())
}

func TestAddItemSeparateProducts(t *testing.T) {
	c := New()
	c.AddItem(bottle("bottle-330", 149))
	c.AddItem(bottle("bottle-750", 299))
	c.AddItem(bottle("bottle-330", 149))

	require.Len(t, c.Lines(), 2)
	require.Equal(t, 3, c.TotalItems())
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	c := New()
	p := bottle("bottle-500", 199)
	c.AddItem(p)
	c.AddItem(p)

	c.UpdateQuantity("bottle-500", 9)

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, 9, lines[0].Quantity)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	c := New()
	c.AddItem(bottle("bottle-500", 199))
	c.UpdateQuantity("bottle-500", 5)

	c.UpdateQuantity("bottle-500", 0)

	require.Empty(t, c.Lines())
	require.True(t, c.IsEmpty())
}

func TestUpdateQuantityNegativeRemovesLine(t *testing.T) {
	c := New()
	c.AddItem(bottle("bottle-500", 199))

	c.UpdateQuantity("bottle-500", -1)

	require.Empty(t, c.Lines())
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	c := New()
	c.AddItem(bottle("bottle-500", 199))

	c.UpdateQuantity("bottle-999", 3)

	require.Equal(t, 1, c.TotalItems())
}

func TestRemoveItemDropsLineRegardlessOfQuantity(t *testing.T) {
	c := New()
	c.AddItem(bottle("bottle-500", 199))
	c.UpdateQuantity("bottle-500", 40)
	c.AddItem(bottle("bottle-330", 149))

	c.RemoveItem("bottle-500")

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, "bottle-330", lines[0].Product.ID)
}

func TestTotalPriceExactIntegerArithmetic(t *testing.T) {
	// 199 * 333333 would drift under float64 cents-as-dollars math.
	c := New()
	c.AddItem(bottle("bottle-500", 199))
	c.UpdateQuantity("bottle-500", 333333)

	require.Equal(t, int64(66333267), c.TotalPrice())
}

func TestTotalPriceSumsAcrossLines(t *testing.T) {
	c := New()
	c.AddItem(bottle("bottle-330", 149))
	c.AddItem(bottle("bottle-750", 299))
	c.UpdateQuantity("bottle-750", 3)

	require.Equal(t, int64(149+3*299), c.TotalPrice())
}

func TestClearEmptiesCart(t *testing.T) {
	c := New()
	c.AddItem(bottle("bottle-500", 199))
	c.AddItem(bottle("bottle-330", 149))

	c.Clear()

	require.True(t, c.IsEmpty())
	require.Equal(t, 0, c.TotalItems())
	require.Equal(t, int64(0), c.TotalPrice())
}

func TestLinesReturnsSnapshotCopy(t *testing.T) {
	c := New()
	c.AddItem(bottle("bottle-500", 199))

	lines := c.Lines()
	lines[0].Quantity = 100

	require.Equal(t, 1, c.TotalItems())
}
