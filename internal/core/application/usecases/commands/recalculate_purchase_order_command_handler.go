package commands

import (
	"context"
	"errors"
	"fmt"

	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/core/domain/model/purchaseorder"
	"cogs/internal/core/domain/services"
)

// RecalculatePurchaseOrderCommandHandler recomputes the derived costs of one
// order from its currently stored inputs.
type RecalculatePurchaseOrderCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.CostAllocator
}

func NewRecalculatePurchaseOrderCommandHandler(uowFactory UoWFactory) RecalculatePurchaseOrderCommandHandler {
	return RecalculatePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewCostAllocator(),
	}
}

func (h *RecalculatePurchaseOrderCommandHandler) Handle(
	ctx context.Context,
	cmd RecalculatePurchaseOrderCommand,
) (*purchaseorder.PurchaseOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return recalculateOne(ctx, h.uowFactory, h.allocator, cmd.OrderID())
}

// RecalculateOpenPurchaseOrdersCommandHandler recomputes every NEW order. Each
// order gets its own transaction; a failure on one order does not stop the
// others.
type RecalculateOpenPurchaseOrdersCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.CostAllocator
}

func NewRecalculateOpenPurchaseOrdersCommandHandler(uowFactory UoWFactory) RecalculateOpenPurchaseOrdersCommandHandler {
	return RecalculateOpenPurchaseOrdersCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewCostAllocator(),
	}
}

// Handle returns how many orders were recalculated and the joined errors of
// those that failed.
func (h *RecalculateOpenPurchaseOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd RecalculateOpenPurchaseOrdersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	ids, err := h.uowFactory.Create().PurchaseOrderRepository().ListIDsByStatus(ctx, purchaseorder.New)
	if err != nil {
		return 0, err
	}

	recalculated := 0
	var failures []error
	for _, id := range ids {
		if ctxErr := ctx.Err(); ctxErr != nil {
			failures = append(failures, ctxErr)
			break
		}

		if _, err = recalculateOne(ctx, h.uowFactory, h.allocator, id); err != nil {
			failures = append(failures, fmt.Errorf("purchase order %s: %w", id, err))
			continue
		}
		recalculated++
	}

	return recalculated, errors.Join(failures...)
}

func recalculateOne(
	ctx context.Context,
	uowFactory UoWFactory,
	allocator services.CostAllocator,
	orderID kernel.UUID,
) (*purchaseorder.PurchaseOrder, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	po, err := uow.PurchaseOrderRepository().GetForUpdate(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err = applyCosts(ctx, uow, allocator, po, nil); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return po, nil
}
