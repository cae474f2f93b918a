package purchaseorderrepo

import (
	"context"
	"errors"
	"fmt"

	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/core/domain/model/purchaseorder"
	"cogs/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPurchaseOrderRepository implements PurchaseOrderRepository using GORM.
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GORM purchase order repository.
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{
		db: db,
	}
}

// Add saves a new order with its items and labeling costs.
func (r *GormPurchaseOrderRepository) Add(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes the header, the derived item fields and inserts labeling costs
// that are not stored yet. Existing labeling cost rows are left untouched.
func (r *GormPurchaseOrderRepository) Update(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&PurchaseOrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"supplier_id":    dto.SupplierID,
		"name":           dto.Name,
		"invoice_number": dto.InvoiceNumber,
		"order_date":     dto.OrderDate,
		"status":         dto.Status,
		"sales_tax":      dto.SalesTax,
		"shipping":       dto.Shipping,
		"discount":       dto.Discount,
		"subtotal":       dto.Subtotal,
		"labeling_total": dto.LabelingTotal,
		"total_expense":  dto.TotalExpense,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("purchase order", aggregate.ID().String())
	}

	labelingCosts := make([]LabelingCostDTO, 0)
	for _, item := range dto.Items {
		if err := db.Model(&ItemDTO{}).
			Where("id = ? AND purchase_order_id = ?", item.ID, dto.ID).
			Updates(map[string]any{
				"product_id":     item.ProductID,
				"unit_cogs":      item.UnitCOGS,
				"extended_total": item.ExtendedTotal,
			}).Error; err != nil {
			return fmt.Errorf("update item %s: %w", item.ID, err)
		}
		labelingCosts = append(labelingCosts, item.LabelingCosts...)
	}

	if len(labelingCosts) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&labelingCosts).Error
}

// Get retrieves an order by ID with items and labeling costs.
func (r *GormPurchaseOrderRepository) Get(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves an order and locks its header row until the
// transaction ends.
func (r *GormPurchaseOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// GetByItemIDForUpdate locks and retrieves the order that owns itemID.
func (r *GormPurchaseOrderRepository) GetByItemIDForUpdate(ctx context.Context, itemID kernel.UUID) (*purchaseorder.PurchaseOrder, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	var item ItemDTO
	if err := r.db.WithContext(ctx).
		Select("id", "purchase_order_id").
		Take(&item, "id = ?", itemID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("purchase order item", itemID.String())
		}
		return nil, err
	}

	orderID, err := kernel.UUIDFromGoogle(item.PurchaseOrderID)
	if err != nil {
		return nil, err
	}
	return r.GetForUpdate(ctx, orderID)
}

// Delete removes the order, its items and their labeling costs.
func (r *GormPurchaseOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	items := db.Model(&ItemDTO{}).Select("id").Where("purchase_order_id = ?", id.Bytes())
	if err := db.Where("item_id IN (?)", items).Delete(&LabelingCostDTO{}).Error; err != nil {
		return err
	}
	if err := db.Where("purchase_order_id = ?", id.Bytes()).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}

	result := db.Where("id = ?", id.Bytes()).Delete(&PurchaseOrderDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("purchase order", id.String())
	}
	return nil
}

// ListIDsByStatus returns ids of orders in status, oldest first.
func (r *GormPurchaseOrderRepository) ListIDsByStatus(ctx context.Context, status purchaseorder.Status) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&PurchaseOrderDTO{}).
		Where("status = ?", int(status)).
		Order("id").
		Pluck("id", &raw).Error; err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, id := range raw {
		kID, err := kernel.UUIDFromGoogle(id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, kID)
	}
	return ids, nil
}

func (r *GormPurchaseOrderRepository) get(db *gorm.DB, id kernel.UUID) (*purchaseorder.PurchaseOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PurchaseOrderDTO
	if err := db.
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position")
		}).
		Preload("Items.LabelingCosts", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("id")
		}).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("purchase order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
