package commands

import (
	"context"

	"cogs/internal/core/domain/model/purchaseorder"
	"cogs/internal/core/domain/services"
)

// AddLabelingCostCommandHandler appends a labeling cost and recomputes the whole
// allocation of the owning order. The order row stays locked for the duration
// of the transaction, so concurrent additions to one order apply one after the
// other.
type AddLabelingCostCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.CostAllocator
}

func NewAddLabelingCostCommandHandler(uowFactory UoWFactory) AddLabelingCostCommandHandler {
	return AddLabelingCostCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewCostAllocator(),
	}
}

// Handle returns the owning order with refreshed costs. An unknown item is an
// ObjectNotFoundError.
func (h *AddLabelingCostCommandHandler) Handle(
	ctx context.Context,
	cmd AddLabelingCostCommand,
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

	po, err := uow.PurchaseOrderRepository().GetByItemIDForUpdate(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	if _, err = po.AddLabelingCost(cmd.LabelingCostID(), cmd.ItemID(), cmd.Note(), cmd.CostTotal()); err != nil {
		return nil, err
	}

	if err = applyCosts(ctx, uow, h.allocator, po, nil); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return po, nil
}
