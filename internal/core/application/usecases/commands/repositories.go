// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"cogs/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PurchaseOrderRepoFactory provides access to the purchase order repository within a transaction.
	PurchaseOrderRepoFactory interface {
		PurchaseOrderRepository() ports.PurchaseOrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// SupplierRepoFactory provides access to the supplier repository within a transaction.
	SupplierRepoFactory interface {
		SupplierRepository() ports.SupplierRepository
	}

	// PurchaseOrderUoW manages transactions for commands that touch only purchase orders.
	PurchaseOrderUoW interface {
		TxManager
		PurchaseOrderRepoFactory
	}

	// PurchaseOrderUoWFactory creates new purchase order unit of work instances.
	PurchaseOrderUoWFactory interface {
		Create() PurchaseOrderUoW
	}

	// UoW manages transactions across purchase orders, products and suppliers.
	// Every command that runs the cost allocation needs it, because unit costs
	// are copied to the linked products.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   po, err := uow.PurchaseOrderRepository().GetForUpdate(ctx, id)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		PurchaseOrderRepoFactory
		ProductRepoFactory
		SupplierRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
