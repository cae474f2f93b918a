package queries

import (
	"errors"

	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/core/domain/model/product"
	"cogs/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
)

// ListProductsQuery retrieves the catalog with the current unit cost of every
// product and where that cost came from.
type ListProductsQuery struct {
	guard guard.ConstructorGuard
}

func NewListProductsQuery() ListProductsQuery {
	return ListProductsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

type ProductResponse struct {
	ID           kernel.UUID
	SKU          string
	ASIN         string
	Title        string
	SupplierName string
	Cost         decimal.Decimal
	CostSource   product.CostSource
}
