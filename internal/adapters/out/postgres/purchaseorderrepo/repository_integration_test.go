package purchaseorderrepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "cogs/internal/adapters/out/postgres"
	"cogs/internal/adapters/out/postgres/purchaseorderrepo"
	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/core/domain/model/purchaseorder"
	"cogs/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PurchaseOrderRepositoryIntegrationTestSuite verifies persistence of the
// purchase order aggregate using a PostgreSQL container.
type PurchaseOrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *purchaseorderrepo.GormPurchaseOrderRepository
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE labeling_costs, purchase_order_items, purchase_orders").Error)
	suite.repository = purchaseorderrepo.NewGormPurchaseOrderRepository(suite.db)
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TestAdd_Get_RoundTrip() {
	ctx := context.Background()
	po := suite.createTestOrder()
	a := po.Items()[0]
	_, err := po.AddLabelingCost(kernel.NewUUID(), a.ID(), "first", decimal.NewFromInt(3))
	suite.Require().NoError(err)
	_, err = po.AddLabelingCost(kernel.NewUUID(), a.ID(), "second", decimal.RequireFromString("1.25"))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, po))

	got, err := suite.repository.Get(ctx, po.ID())
	suite.Require().NoError(err)
	suite.True(po.ID().IsEqual(got.ID()))
	suite.Equal("PO-1", got.Name())
	suite.Equal("INV-7", got.InvoiceNumber())
	suite.Equal(purchaseorder.New, got.Status())
	suite.True(po.OrderDate().Equal(got.OrderDate()))
	suite.True(decimal.NewFromInt(10).Equal(got.Charges().SalesTax))
	suite.True(decimal.RequireFromString("26.5").Equal(got.Subtotal()))

	items := got.Items()
	suite.Require().Len(items, 3)
	for n, item := range po.Items() {
		suite.True(item.ID().IsEqual(items[n].ID()), "items keep creation order")
	}
	suite.Equal("https://example.test/B00A", items[0].AmazonLink())
	suite.True(decimal.RequireFromString("0.5").Equal(items[1].Charges().SalesTax))

	labeling := items[0].LabelingCosts()
	suite.Require().Len(labeling, 2)
	suite.Equal("first", labeling[0].Note())
	suite.Equal("second", labeling[1].Note())
	suite.True(decimal.RequireFromString("4.25").Equal(items[0].LabelingTotal()))
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TestAdd_InvalidAggregate() {
	err := suite.repository.Add(context.Background(), &purchaseorder.PurchaseOrder{})

	suite.Require().ErrorIs(err, purchaseorder.ErrPurchaseOrderIsNotConstructed)
	suite.assertCount("purchase_orders", 0)
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TestUpdate_WritesDerivedFieldsAndNewLabelingCosts() {
	ctx := context.Background()
	po := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, po))
	a := po.Items()[0]

	_, err := po.AddLabelingCost(kernel.NewUUID(), a.ID(), "prep", decimal.NewFromInt(10))
	suite.Require().NoError(err)
	allocation := purchaseorder.Allocation{LabelingTotal: decimal.NewFromInt(10), TotalExpense: decimal.NewFromInt(70)}
	for _, item := range po.Items() {
		allocation.Items = append(allocation.Items, purchaseorder.ItemAllocation{
			ItemID:        item.ID(),
			UnitCOGS:      decimal.RequireFromString("7.123456"),
			ExtendedTotal: decimal.RequireFromString("35.61728"),
		})
	}
	suite.Require().NoError(po.ApplyAllocation(allocation))
	suite.Require().NoError(po.SetStatus(purchaseorder.Closed))

	suite.Require().NoError(suite.repository.Update(ctx, po))
	suite.Require().NoError(suite.repository.Update(ctx, po), "second update must not duplicate labeling costs")

	got, err := suite.repository.Get(ctx, po.ID())
	suite.Require().NoError(err)
	suite.Equal(purchaseorder.Closed, got.Status())
	suite.True(decimal.NewFromInt(70).Equal(got.TotalExpense()))
	suite.True(decimal.NewFromInt(10).Equal(got.LabelingTotal()))
	suite.True(decimal.RequireFromString("7.123456").Equal(got.Items()[2].UnitCOGS()))
	suite.Len(got.Items()[0].LabelingCosts(), 1)
	suite.assertCount("labeling_costs", 1)
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	err := suite.repository.Update(context.Background(), suite.createTestOrder())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TestGetByItemIDForUpdate() {
	ctx := context.Background()
	po := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, po))

	suite.Run("owner is found", func() {
		tx := suite.db.Begin()
		defer tx.Rollback()

		got, err := purchaseorderrepo.NewGormPurchaseOrderRepository(tx).GetByItemIDForUpdate(ctx, po.Items()[1].ID())

		suite.Require().NoError(err)
		suite.True(po.ID().IsEqual(got.ID()))
	})

	suite.Run("unknown item", func() {
		_, err := suite.repository.GetByItemIDForUpdate(ctx, kernel.NewUUID())

		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
		suite.Contains(err.Error(), "object not found")
	})
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TestDelete_Cascades() {
	ctx := context.Background()
	po := suite.createTestOrder()
	_, err := po.AddLabelingCost(kernel.NewUUID(), po.Items()[0].ID(), "", decimal.NewFromInt(1))
	suite.Require().NoError(err)
	other := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, po))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	suite.Require().NoError(suite.repository.Delete(ctx, po.ID()))

	_, err = suite.repository.Get(ctx, po.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.assertCount("purchase_orders", 1)
	suite.assertCount("purchase_order_items", 3)
	suite.assertCount("labeling_costs", 0)

	suite.Require().ErrorIs(suite.repository.Delete(ctx, po.ID()), errs.ErrObjectNotFound)
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TestListIDsByStatus() {
	ctx := context.Background()
	first := suite.createTestOrder()
	closed := suite.createTestOrder()
	suite.Require().NoError(closed.SetStatus(purchaseorder.Closed))
	last := suite.createTestOrder()
	for _, po := range []*purchaseorder.PurchaseOrder{last, closed, first} {
		suite.Require().NoError(suite.repository.Add(ctx, po))
	}

	ids, err := suite.repository.ListIDsByStatus(ctx, purchaseorder.New)

	suite.Require().NoError(err)
	suite.Require().Len(ids, 2)
	suite.True(first.ID().IsEqual(ids[0]))
	suite.True(last.ID().IsEqual(ids[1]))
}

// createTestOrder builds an order with three items: A 5 × 2.00, B 3 × 4.00 with
// 0.5 item sales tax, C 2 × 2.25.
func (suite *PurchaseOrderRepositoryIntegrationTestSuite) createTestOrder() *purchaseorder.PurchaseOrder {
	a, err := purchaseorder.NewItem(kernel.NewUUID(), "B00A", "Item A", 5, decimal.NewFromInt(2), purchaseorder.Charges{})
	suite.Require().NoError(err)
	a.SetListing("https://example.test/B00A", "MFR-A")

	b, err := purchaseorder.NewItem(kernel.NewUUID(), "B00B", "Item B", 3, decimal.NewFromInt(4), purchaseorder.Charges{
		SalesTax: decimal.RequireFromString("0.5"),
	})
	suite.Require().NoError(err)

	c, err := purchaseorder.NewItem(kernel.NewUUID(), "B00C", "Item C", 2, decimal.RequireFromString("2.25"), purchaseorder.Charges{})
	suite.Require().NoError(err)

	po, err := purchaseorder.NewPurchaseOrder(
		kernel.NewUUID(),
		"PO-1",
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		purchaseorder.Charges{SalesTax: decimal.NewFromInt(10), Shipping: decimal.NewFromInt(20)},
		[]*purchaseorder.Item{a, b, c},
	)
	suite.Require().NoError(err)
	po.SetInvoiceNumber("INV-7")
	return po
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) assertCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count, "rows in %s", table)
}

func TestPurchaseOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseOrderRepositoryIntegrationTestSuite))
}
