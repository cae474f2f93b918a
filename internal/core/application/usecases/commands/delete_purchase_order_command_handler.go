package commands

import (
	"context"
)

type DeletePurchaseOrderCommandHandler struct {
	uowFactory PurchaseOrderUoWFactory
}

func NewDeletePurchaseOrderCommandHandler(uowFactory PurchaseOrderUoWFactory) DeletePurchaseOrderCommandHandler {
	return DeletePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the order in one transaction. An unknown order is an
// ObjectNotFoundError.
func (h *DeletePurchaseOrderCommandHandler) Handle(ctx context.Context, cmd DeletePurchaseOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.PurchaseOrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
