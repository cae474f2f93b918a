package queries_test

import (
	"context"
	"testing"
	"time"

	"cogs/internal/adapters/out/postgres/purchaseorderrepo"
	"cogs/internal/core/application/usecases/queries"
	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPurchaseOrderQuery(t *testing.T) {
	id := kernel.NewUUID()

	query, err := queries.NewGetPurchaseOrderQuery(id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, id, query.OrderID())

	_, err = queries.NewGetPurchaseOrderQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	require.ErrorIs(t, queries.GetPurchaseOrderQuery{}.Validate(), queries.ErrGetPurchaseOrderQueryIsNotConstructed)
}

func TestGetPurchaseOrderQueryHandler_Handle(t *testing.T) {
	db := newTestDB(t)
	seed := seeder{t: t, db: db}
	handler := queries.NewGetPurchaseOrderQueryHandler(purchaseorderrepo.NewGormPurchaseOrderRepository(db))

	t.Run("returns items and labeling costs", func(t *testing.T) {
		po := seed.order("PO-1", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), nil, "B001", "B002")
		first := po.Items()[0]
		_, err := po.AddLabelingCost(kernel.NewUUID(), first.ID(), "labels", decimal.NewFromInt(5))
		require.NoError(t, err)
		repo := purchaseorderrepo.NewGormPurchaseOrderRepository(db)
		require.NoError(t, repo.Update(context.Background(), po))

		query, err := queries.NewGetPurchaseOrderQuery(po.ID())
		require.NoError(t, err)

		result, err := handler.Handle(context.Background(), query)

		require.NoError(t, err)
		assert.Equal(t, po.ID(), result.ID)
		assert.Equal(t, "PO-1", result.Name)
		assert.Nil(t, result.SupplierID)
		require.Len(t, result.Items, 2)
		assert.Equal(t, "B001", result.Items[0].ASIN)
		assert.Equal(t, "B002", result.Items[1].ASIN)
		assert.Equal(t, 5, result.Items[0].Quantity)
		require.Len(t, result.Items[0].LabelingCosts, 1)
		assert.Equal(t, "labels", result.Items[0].LabelingCosts[0].Note)
		assert.True(t, decimal.NewFromInt(5).Equal(result.Items[0].LabelingTotal))
		assert.Empty(t, result.Items[1].LabelingCosts)
		assert.True(t, decimal.NewFromInt(10).Equal(result.SalesTax))
	})

	t.Run("not found", func(t *testing.T) {
		query, err := queries.NewGetPurchaseOrderQuery(kernel.NewUUID())
		require.NoError(t, err)

		_, err = handler.Handle(context.Background(), query)

		assert.True(t, errs.IsNotFound(err))
	})
}

func TestNewPurchaseOrderResponse(t *testing.T) {
	seed := seeder{t: t, db: newTestDB(t)}
	po := seed.order("PO-1", time.Now(), nil, "B001")

	response := queries.NewPurchaseOrderResponse(po)

	assert.True(t, decimal.NewFromInt(10).Equal(response.Subtotal))
	assert.True(t, decimal.NewFromInt(20).Equal(response.TotalExpense))
	require.Len(t, response.Items, 1)
	assert.True(t, decimal.NewFromInt(4).Equal(response.Items[0].UnitCOGS), "2.00 plus 10 tax over 5 units")
	assert.True(t, decimal.NewFromInt(20).Equal(response.Items[0].ExtendedTotal))
	assert.NotNil(t, response.Items[0].LabelingCosts)
}
