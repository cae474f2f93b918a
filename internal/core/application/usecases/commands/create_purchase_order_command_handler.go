package commands

import (
	"context"

	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/core/domain/model/product"
	"cogs/internal/core/domain/model/purchaseorder"
	"cogs/internal/core/domain/model/supplier"
	"cogs/internal/core/domain/services"
)

// CreatePurchaseOrderCommandHandler stores a new purchase order and runs the
// first cost allocation. Supplier and products are upserted on the way, all in
// one transaction, so a failure leaves no partial order behind.
//
// Example:
//
//	handler := NewCreatePurchaseOrderCommandHandler(uowFactory)
//	po, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("purchase order creation failed: %w", err)
//	}
//	fmt.Println(po.TotalExpense())
type CreatePurchaseOrderCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.CostAllocator
}

func NewCreatePurchaseOrderCommandHandler(uowFactory UoWFactory) CreatePurchaseOrderCommandHandler {
	return CreatePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewCostAllocator(),
	}
}

// Handle processes the creation command and returns the stored order with its
// derived costs.
func (h *CreatePurchaseOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePurchaseOrderCommand,
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

	supplierID, err := h.upsertSupplier(ctx, uow, cmd.SupplierName())
	if err != nil {
		return nil, err
	}

	products := make(map[kernel.UUID]*product.Product)
	items := make([]*purchaseorder.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		item, itemErr := line.newItem()
		if itemErr != nil {
			return nil, itemErr
		}

		p, productErr := h.upsertProduct(ctx, uow, line, supplierID)
		if productErr != nil {
			return nil, productErr
		}
		products[p.ID()] = p
		if err = item.LinkProduct(p.ID()); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	po, err := purchaseorder.NewPurchaseOrder(cmd.OrderID(), cmd.Name(), cmd.OrderDate(), cmd.Charges(), items)
	if err != nil {
		return nil, err
	}
	po.SetInvoiceNumber(cmd.InvoiceNumber())
	if supplierID != nil {
		if err = po.SetSupplier(*supplierID); err != nil {
			return nil, err
		}
	}

	if err = uow.PurchaseOrderRepository().Add(ctx, po); err != nil {
		return nil, err
	}

	if err = applyCosts(ctx, uow, h.allocator, po, products); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return po, nil
}

// upsertSupplier returns the id of the supplier called name, creating it when
// it is new. An empty name means no supplier.
func (h *CreatePurchaseOrderCommandHandler) upsertSupplier(
	ctx context.Context,
	uow UoW,
	name string,
) (*kernel.UUID, error) {
	if name == "" {
		return nil, nil
	}

	repo := uow.SupplierRepository()
	existing, err := repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		id := existing.ID()
		return &id, nil
	}

	created, err := supplier.NewSupplier(kernel.NewUUID(), name)
	if err != nil {
		return nil, err
	}
	if err = repo.Add(ctx, created); err != nil {
		return nil, err
	}

	id := created.ID()
	return &id, nil
}

// upsertProduct returns the catalog product for the line's ASIN. Unseen ASINs
// get an AUTO-<ASIN> product priced with the purchase price as a hint. Refreshed
// existing products are stored later, together with their new cost.
func (h *CreatePurchaseOrderCommandHandler) upsertProduct(
	ctx context.Context,
	uow UoW,
	line CreatePurchaseOrderLine,
	supplierID *kernel.UUID,
) (*product.Product, error) {
	repo := uow.ProductRepository()
	existing, err := repo.GetByASIN(ctx, line.ASIN)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.RefreshFromPurchase(line.Title, supplierID, line.PurchasePrice)
		return existing, nil
	}

	created, err := product.NewProductFromPurchase(kernel.NewUUID(), line.ASIN, line.Title, supplierID, line.PurchasePrice)
	if err != nil {
		return nil, err
	}
	if err = repo.Add(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}
