package queries

import (
	"context"

	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/core/domain/model/product"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

// Handle returns all products sorted by SKU.
func (h ListProductsQueryHandler) Handle(
	ctx context.Context,
	query ListProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]ProductResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.sku,
			p.asin,
			p.title,
			COALESCE(s.name, '') AS supplier_name,
			p.cost,
			p.cost_source
		FROM products p
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		ORDER BY p.sku
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row ProductResponse
		var id uuid.UUID
		var costSource int

		if err = rows.Scan(
			&id,
			&row.SKU,
			&row.ASIN,
			&row.Title,
			&row.SupplierName,
			&row.Cost,
			&costSource,
		); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromGoogle(id)
		if idErr != nil {
			return nil, idErr
		}
		row.ID = productID
		row.CostSource = product.CostSource(costSource)

		products = append(products, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
