package ports

import (
	"context"

	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists title, supplier, cost and cost source.
	Update(ctx context.Context, aggregate *product.Product) error

	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByASIN returns the product with the given ASIN, or nil and no error
	// when the ASIN has not been seen yet.
	GetByASIN(ctx context.Context, asin string) (*product.Product, error)
}
