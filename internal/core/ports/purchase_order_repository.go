// Package ports defines repository interfaces for the purchase order domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/core/domain/model/purchaseorder"
)

// PurchaseOrderRepository defines the persistence contract for purchase order
// aggregates. Items and labeling costs are always loaded and stored together
// with their order.
type PurchaseOrderRepository interface {
	// Add persists a new order with all of its items in the current transaction.
	Add(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error

	// Update persists the header, the derived item costs and any labeling
	// costs not yet stored. Items are never inserted or removed by Update.
	Update(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error

	// Get retrieves an order with items and labeling costs eagerly loaded.
	// Returns an ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error)

	// GetForUpdate is Get with a row lock on the order header held until the
	// transaction ends. Concurrent recalculations of one order serialize on it.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error)

	// GetByItemIDForUpdate locks and loads the order owning the given item.
	// Returns an ObjectNotFoundError if the item does not exist.
	GetByItemIDForUpdate(ctx context.Context, itemID kernel.UUID) (*purchaseorder.PurchaseOrder, error)

	// Delete removes the order together with its items and labeling costs.
	// Returns an ObjectNotFoundError if the order does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	// ListIDsByStatus returns the ids of all orders in the given status,
	// oldest first.
	ListIDsByStatus(ctx context.Context, status purchaseorder.Status) ([]kernel.UUID, error)
}
