package commands

import (
	"errors"

	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/pkg/guard"
)

var ErrDeletePurchaseOrderCommandIsNotConstructed = errors.New(
	"DeletePurchaseOrderCommand must be created via NewDeletePurchaseOrderCommand constructor",
)

// DeletePurchaseOrderCommand removes an order with its items and labeling
// costs. Product costs derived from it are kept.
type DeletePurchaseOrderCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeletePurchaseOrderCommand(orderID kernel.UUID) (DeletePurchaseOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeletePurchaseOrderCommand{}, err
	}

	return DeletePurchaseOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeletePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeletePurchaseOrderCommandIsNotConstructed)
}

func (c DeletePurchaseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
