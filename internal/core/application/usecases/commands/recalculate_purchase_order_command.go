package commands

import (
	"errors"

	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/pkg/guard"
)

var (
	ErrRecalculatePurchaseOrderCommandIsNotConstructed = errors.New(
		"RecalculatePurchaseOrderCommand must be created via NewRecalculatePurchaseOrderCommand constructor",
	)
	ErrRecalculateOpenPurchaseOrdersCommandIsNotConstructed = errors.New(
		"RecalculateOpenPurchaseOrdersCommand must be created via NewRecalculateOpenPurchaseOrdersCommand constructor",
	)
)

// RecalculatePurchaseOrderCommand reruns the cost allocation of one order.
type RecalculatePurchaseOrderCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRecalculatePurchaseOrderCommand(orderID kernel.UUID) (RecalculatePurchaseOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RecalculatePurchaseOrderCommand{}, err
	}

	return RecalculatePurchaseOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RecalculatePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrRecalculatePurchaseOrderCommandIsNotConstructed)
}

func (c RecalculatePurchaseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RecalculateOpenPurchaseOrdersCommand reruns the allocation of every order in
// NEW status. It is issued by the reconciliation job.
type RecalculateOpenPurchaseOrdersCommand struct {
	guard guard.ConstructorGuard
}

func NewRecalculateOpenPurchaseOrdersCommand() RecalculateOpenPurchaseOrdersCommand {
	return RecalculateOpenPurchaseOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c RecalculateOpenPurchaseOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRecalculateOpenPurchaseOrdersCommandIsNotConstructed)
}
