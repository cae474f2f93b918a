package commands

import (
	"context"
	"fmt"

	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/core/domain/model/product"
	"cogs/internal/core/domain/model/purchaseorder"
	"cogs/internal/core/domain/services"
)

// applyCosts runs the allocation for po, copies every item's unit cost to its
// linked product and stores the order. It must run inside the caller's
// transaction, after po was loaded or added through uow. Products already
// loaded in that transaction can be passed in loaded; others are fetched.
func applyCosts(
	ctx context.Context,
	uow UoW,
	allocator services.CostAllocator,
	po *purchaseorder.PurchaseOrder,
	loaded map[kernel.UUID]*product.Product,
) error {
	if _, err := allocator.Recalculate(po); err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	for _, item := range po.Items() {
		if item.ProductID() == nil {
			continue
		}

		p, ok := loaded[*item.ProductID()]
		if !ok {
			var err error
			if p, err = productRepo.Get(ctx, *item.ProductID()); err != nil {
				return fmt.Errorf("product of item %s: %w", item.ID(), err)
			}
		}

		if err := p.RecordCost(item.UnitCOGS(), product.CostSourcePurchaseOrder); err != nil {
			return err
		}
		if err := productRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	return uow.PurchaseOrderRepository().Update(ctx, po)
}
