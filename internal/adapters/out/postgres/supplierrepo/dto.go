// Package supplierrepo persists suppliers.
package supplierrepo

import (
	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/core/domain/model/supplier"

	"github.com/google/uuid"
)

// SupplierDTO represents the database structure of a supplier.
type SupplierDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Email string    `gorm:"type:varchar(255)"`
	Phone string    `gorm:"type:varchar(64)"`
}

func (SupplierDTO) TableName() string {
	return "suppliers"
}

func fromDomain(s *supplier.Supplier) SupplierDTO {
	return SupplierDTO{
		ID:    s.ID().Bytes(),
		Name:  s.Name(),
		Email: s.Email(),
		Phone: s.Phone(),
	}
}

func toDomain(dto SupplierDTO) (*supplier.Supplier, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	return supplier.RestoreSupplier(id, dto.Name, dto.Email, dto.Phone)
}
