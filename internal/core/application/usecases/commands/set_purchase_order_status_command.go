package commands

import (
	"errors"

	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/core/domain/model/purchaseorder"
	"cogs/internal/pkg/guard"
)

var ErrSetPurchaseOrderStatusCommandIsNotConstructed = errors.New(
	"SetPurchaseOrderStatusCommand must be created via NewSetPurchaseOrderStatusCommand constructor",
)

// SetPurchaseOrderStatusCommand moves an order between NEW and CLOSED.
type SetPurchaseOrderStatusCommand struct {
	orderID kernel.UUID
	status  purchaseorder.Status

	guard guard.ConstructorGuard
}

// NewSetPurchaseOrderStatusCommand parses status case-insensitively.
// Anything but NEW or CLOSED is a validation error.
func NewSetPurchaseOrderStatusCommand(orderID kernel.UUID, status string) (SetPurchaseOrderStatusCommand, error) {
	parsed, statusErr := purchaseorder.ParseStatus(status)
	if err := errors.Join(orderID.Validate(), statusErr); err != nil {
		return SetPurchaseOrderStatusCommand{}, err
	}

	return SetPurchaseOrderStatusCommand{
		orderID: orderID,
		status:  parsed,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SetPurchaseOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetPurchaseOrderStatusCommandIsNotConstructed)
}

func (c SetPurchaseOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SetPurchaseOrderStatusCommand) Status() purchaseorder.Status {
	return c.status
}
