package queries

import (
	"context"

	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/core/domain/model/purchaseorder"
)

// PurchaseOrderGetter loads a purchase order aggregate. A missing order is an
// errs.ObjectNotFoundError.
type PurchaseOrderGetter interface {
	Get(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error)
}

// GetPurchaseOrderQueryHandler reads a full order through the repository, so
// items and labeling costs come back in their stored order.
type GetPurchaseOrderQueryHandler struct {
	orders PurchaseOrderGetter
}

func NewGetPurchaseOrderQueryHandler(orders PurchaseOrderGetter) GetPurchaseOrderQueryHandler {
	return GetPurchaseOrderQueryHandler{orders: orders}
}

func (h GetPurchaseOrderQueryHandler) Handle(
	ctx context.Context,
	query GetPurchaseOrderQuery,
) (PurchaseOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return PurchaseOrderResponse{}, err
	}

	po, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return PurchaseOrderResponse{}, err
	}

	return NewPurchaseOrderResponse(po), nil
}
