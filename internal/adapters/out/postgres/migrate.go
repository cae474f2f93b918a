package postgres

import (
	"fmt"

	"cogs/internal/adapters/out/postgres/productrepo"
	"cogs/internal/adapters/out/postgres/purchaseorderrepo"
	"cogs/internal/adapters/out/postgres/supplierrepo"

	"gorm.io/gorm"
)

// Models lists every persisted table in dependency order.
func Models() []any {
	return []any{
		&supplierrepo.SupplierDTO{},
		&productrepo.ProductDTO{},
		&purchaseorderrepo.PurchaseOrderDTO{},
		&purchaseorderrepo.ItemDTO{},
		&purchaseorderrepo.LabelingCostDTO{},
	}
}

// Migrate creates or updates the schema of all tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
