package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails. Handlers defer
	// it and ignore the error after a successful Commit.
	Rollback(ctx context.Context) error

	// PurchaseOrderRepository returns a repository bound to the current transaction.
	PurchaseOrderRepository() PurchaseOrderRepository

	// ProductRepository returns a repository bound to the current transaction.
	ProductRepository() ProductRepository

	// SupplierRepository returns a repository bound to the current transaction.
	SupplierRepository() SupplierRepository
}
