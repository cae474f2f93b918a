package supplierrepo

import (
	"context"

	"cogs/internal/core/domain/model/supplier"

	"gorm.io/gorm"
)

// GormSupplierRepository implements SupplierRepository using GORM.
type GormSupplierRepository struct {
	db *gorm.DB
}

func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

func (r *GormSupplierRepository) Add(ctx context.Context, aggregate *supplier.Supplier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByName returns nil, nil when there is no supplier with the name.
func (r *GormSupplierRepository) GetByName(ctx context.Context, name string) (*supplier.Supplier, error) {
	var dtos []SupplierDTO
	if err := r.db.WithContext(ctx).Where("name = ?", name).Limit(1).Find(&dtos).Error; err != nil {
		return nil, err
	}
	if len(dtos) == 0 {
		return nil, nil
	}

	return toDomain(dtos[0])
}
