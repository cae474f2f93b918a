package ports

import (
	"context"

	"cogs/internal/core/domain/model/supplier"
)

// SupplierRepository defines the persistence contract for suppliers.
// Supplier names are unique.
type SupplierRepository interface {
	Add(ctx context.Context, aggregate *supplier.Supplier) error

	// GetByName returns the supplier with exactly this name, or nil and no
	// error when there is none.
	GetByName(ctx context.Context, name string) (*supplier.Supplier, error)
}
