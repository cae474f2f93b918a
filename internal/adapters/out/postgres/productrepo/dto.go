// Package productrepo persists catalog products.
package productrepo

import (
	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure of a product. ASIN and SKU are unique.
type ProductDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SKU        string          `gorm:"column:sku;type:varchar(64);not null;uniqueIndex"`
	ASIN       string          `gorm:"column:asin;type:varchar(32);not null;uniqueIndex"`
	Title      string          `gorm:"type:varchar(512);not null"`
	SupplierID *uuid.UUID      `gorm:"type:uuid;index"`
	Cost       decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	CostSource int             `gorm:"type:smallint;not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	var supplierID *uuid.UUID
	if id := p.SupplierID(); id != nil {
		raw := id.Bytes()
		supplierID = &raw
	}

	return ProductDTO{
		ID:         p.ID().Bytes(),
		SKU:        p.SKU(),
		ASIN:       p.ASIN(),
		Title:      p.Title(),
		SupplierID: supplierID,
		Cost:       p.Cost(),
		CostSource: int(p.CostSource()),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	var supplierID *kernel.UUID
	if dto.SupplierID != nil {
		sID, supplierErr := kernel.UUIDFromGoogle(*dto.SupplierID)
		if supplierErr != nil {
			return nil, supplierErr
		}
		supplierID = &sID
	}

	return product.RestoreProduct(id, dto.SKU, dto.ASIN, dto.Title, supplierID, dto.Cost, product.CostSource(dto.CostSource))
}
