package commands

import (
	"context"

	"cogs/internal/core/domain/model/purchaseorder"
)

// SetPurchaseOrderStatusCommandHandler changes the status of an order. Costs are
// not recomputed.
type SetPurchaseOrderStatusCommandHandler struct {
	uowFactory PurchaseOrderUoWFactory
}

func NewSetPurchaseOrderStatusCommandHandler(uowFactory PurchaseOrderUoWFactory) SetPurchaseOrderStatusCommandHandler {
	return SetPurchaseOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns an ObjectNotFoundError when the order does not exist.
func (h *SetPurchaseOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd SetPurchaseOrderStatusCommand,
) (*purchaseorder.PurchaseOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PurchaseOrderRepository()
	po, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = po.SetStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, po); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return po, nil
}
