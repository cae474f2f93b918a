package queries_test

import (
	"context"
	"testing"
	"time"

	"cogs/internal/adapters/out/postgres/productrepo"
	"cogs/internal/adapters/out/postgres/purchaseorderrepo"
	"cogs/internal/adapters/out/postgres/supplierrepo"
	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/core/domain/model/product"
	"cogs/internal/core/domain/model/purchaseorder"
	"cogs/internal/core/domain/model/supplier"
	"cogs/internal/core/domain/services"
	"cogs/internal/pkg/testdb"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testdb.Open(t)
}

type seeder struct {
	t  *testing.T
	db *gorm.DB
}

func (s seeder) supplier(name string) *supplier.Supplier {
	s.t.Helper()
	sup, err := supplier.NewSupplier(kernel.NewUUID(), name)
	require.NoError(s.t, err)
	require.NoError(s.t, supplierrepo.NewGormSupplierRepository(s.db).Add(context.Background(), sup))
	return sup
}

func (s seeder) product(sku, asin string, supplierID *kernel.UUID, cost string, source product.CostSource) *product.Product {
	s.t.Helper()
	p, err := product.RestoreProduct(kernel.NewUUID(), sku, asin, "Title "+asin, supplierID, decimal.RequireFromString(cost), source)
	require.NoError(s.t, err)
	require.NoError(s.t, productrepo.NewGormProductRepository(s.db).Add(context.Background(), p))
	return p
}

// order stores an allocated order dated date with one 5 × 2.00 item per ASIN
// and tax 10.
func (s seeder) order(name string, date time.Time, supplierID *kernel.UUID, asins ...string) *purchaseorder.PurchaseOrder {
	s.t.Helper()
	items := make([]*purchaseorder.Item, 0, len(asins))
	for _, asin := range asins {
		item, err := purchaseorder.NewItem(kernel.NewUUID(), asin, "Title "+asin, 5, decimal.RequireFromString("2.00"), purchaseorder.Charges{})
		require.NoError(s.t, err)
		items = append(items, item)
	}

	po, err := purchaseorder.NewPurchaseOrder(kernel.NewUUID(), name, date, purchaseorder.Charges{SalesTax: decimal.NewFromInt(10)}, items)
	require.NoError(s.t, err)
	if supplierID != nil {
		require.NoError(s.t, po.SetSupplier(*supplierID))
	}
	_, err = services.NewCostAllocator().Recalculate(po)
	require.NoError(s.t, err)

	require.NoError(s.t, purchaseorderrepo.NewGormPurchaseOrderRepository(s.db).Add(context.Background(), po))
	return po
}
