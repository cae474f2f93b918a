package commands_test

import (
	"testing"
	"time"

	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/core/domain/model/product"
	"cogs/internal/core/domain/model/purchaseorder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// storedOrder is tax 10, shipping 20, A is 5 × 2.00 and B is 5 × 4.00, with
// both items linked to catalog products.
type storedOrder struct {
	po       *purchaseorder.PurchaseOrder
	productA *product.Product
	productB *product.Product
}

func newStoredOrder(t *testing.T) storedOrder {
	t.Helper()
	productA, err := product.NewProduct(kernel.NewUUID(), "SKU-A", "B00A", "Item A")
	require.NoError(t, err)
	productB, err := product.NewProduct(kernel.NewUUID(), "SKU-B", "B00B", "Item B")
	require.NoError(t, err)

	a, err := purchaseorder.NewItem(kernel.NewUUID(), "B00A", "Item A", 5, decimal.RequireFromString("2.00"), purchaseorder.Charges{})
	require.NoError(t, err)
	require.NoError(t, a.LinkProduct(productA.ID()))
	b, err := purchaseorder.NewItem(kernel.NewUUID(), "B00B", "Item B", 5, decimal.RequireFromString("4.00"), purchaseorder.Charges{})
	require.NoError(t, err)
	require.NoError(t, b.LinkProduct(productB.ID()))

	charges := purchaseorder.Charges{SalesTax: decimal.NewFromInt(10), Shipping: decimal.NewFromInt(20)}
	po, err := purchaseorder.NewPurchaseOrder(kernel.NewUUID(), "PO-1", time.Now(), charges, []*purchaseorder.Item{a, b})
	require.NoError(t, err)

	return storedOrder{po: po, productA: productA, productB: productB}
}
