package postgres_test

import (
	"context"
	"encoding/json"
	"log/slog"

	"cogs/cmd"
	"cogs/internal/core/application/usecases/commands"
	"cogs/internal/core/domain/model/kernel"
)

// TestCreateThenRecalculate_IsStable feeds amounts finer than the numeric(18,6)
// columns and checks that a recalculation from stored state changes nothing.
func (suite *UnitOfWorkIntegrationTestSuite) TestCreateThenRecalculate_IsStable() {
	ctx := context.Background()
	root := cmd.NewCompositionRoot(cmd.Config{}, suite.db, slog.New(slog.DiscardHandler))

	create, err := commands.NewCreatePurchaseOrderCommand(kernel.NewUUID(), commands.CreatePurchaseOrderInput{
		Name:     "PO-precise",
		SalesTax: "1,0000004",
		Shipping: json.Number("3.3333333"),
		Discount: 0.12345678,
		Items: []commands.CreatePurchaseOrderItemInput{
			{ASIN: "B00P", ListingTitle: "Precise", Quantity: 3, PurchasePrice: "2.1234567"},
			{ASIN: "B00Q", ListingTitle: "Other", Quantity: 7, PurchasePrice: json.Number("0.3333337"), Shipping: "0.0000009"},
		},
	})
	suite.Require().NoError(err)

	createHandler := root.CreateCreatePurchaseOrderCommandHandler()
	created, err := createHandler.Handle(ctx, create)
	suite.Require().NoError(err)
	suite.Equal("2.123457", created.Items()[0].PurchasePrice().String())

	recalc, err := commands.NewRecalculatePurchaseOrderCommand(created.ID())
	suite.Require().NoError(err)
	recalcHandler := root.CreateRecalculatePurchaseOrderCommandHandler()
	recalculated, err := recalcHandler.Handle(ctx, recalc)
	suite.Require().NoError(err)

	suite.True(created.Subtotal().Equal(recalculated.Subtotal()),
		"subtotal %s != %s", created.Subtotal(), recalculated.Subtotal())
	suite.True(created.TotalExpense().Equal(recalculated.TotalExpense()),
		"total expense %s != %s", created.TotalExpense(), recalculated.TotalExpense())
	for _, want := range created.Items() {
		got, itemErr := recalculated.Item(want.ID())
		suite.Require().NoError(itemErr)
		suite.True(want.UnitCOGS().Equal(got.UnitCOGS()),
			"%s unit cogs %s != %s", want.ASIN(), want.UnitCOGS(), got.UnitCOGS())
		suite.True(want.ExtendedTotal().Equal(got.ExtendedTotal()),
			"%s extended total %s != %s", want.ASIN(), want.ExtendedTotal(), got.ExtendedTotal())
	}
}
