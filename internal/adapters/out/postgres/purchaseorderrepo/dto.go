// Package purchaseorderrepo provides data transfer objects and mapping functions for
// purchase order persistence. The aggregate spans three tables: the order header,
// its items and the labeling costs of each item.
package purchaseorderrepo

import (
	"time"

	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/core/domain/model/purchaseorder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrderDTO represents the database structure of the order header.
type PurchaseOrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SupplierID    *uuid.UUID      `gorm:"type:uuid;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	InvoiceNumber string          `gorm:"type:varchar(128)"`
	OrderDate     time.Time       `gorm:"not null;index"`
	Status        int             `gorm:"type:smallint;not null;index"`
	SalesTax      decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	Shipping      decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	Discount      decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	LabelingTotal decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	TotalExpense  decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	Items         []ItemDTO       `gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE"`
}

func (PurchaseOrderDTO) TableName() string {
	return "purchase_orders"
}

// ItemDTO represents one order line. Position keeps the creation order.
type ItemDTO struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey"`
	PurchaseOrderID uuid.UUID         `gorm:"type:uuid;not null;index"`
	Position        int               `gorm:"type:int;not null"`
	ProductID       *uuid.UUID        `gorm:"type:uuid;index"`
	ASIN            string            `gorm:"column:asin;type:varchar(32);not null;index"`
	Title           string            `gorm:"type:varchar(512);not null"`
	AmazonLink      string            `gorm:"type:varchar(1024)"`
	SupplierMfrCode string            `gorm:"type:varchar(128)"`
	Quantity        int               `gorm:"type:int;not null"`
	PurchasePrice   decimal.Decimal   `gorm:"type:numeric(18,6);not null"`
	SalesTax        decimal.Decimal   `gorm:"type:numeric(18,6);not null"`
	Shipping        decimal.Decimal   `gorm:"type:numeric(18,6);not null"`
	Discount        decimal.Decimal   `gorm:"type:numeric(18,6);not null"`
	UnitCOGS        decimal.Decimal   `gorm:"column:unit_cogs;type:numeric(18,6);not null"`
	ExtendedTotal   decimal.Decimal   `gorm:"type:numeric(18,6);not null"`
	LabelingCosts   []LabelingCostDTO `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

func (ItemDTO) TableName() string {
	return "purchase_order_items"
}

// LabelingCostDTO represents a labeling cost row. Rows are only ever inserted.
type LabelingCostDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Note      string          `gorm:"type:varchar(512)"`
	CostTotal decimal.Decimal `gorm:"type:numeric(18,6);not null"`
}

func (LabelingCostDTO) TableName() string {
	return "labeling_costs"
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	kID, err := kernel.UUIDFromGoogle(*id)
	if err != nil {
		return nil, err
	}
	return &kID, nil
}

// fromDomain converts the aggregate into its header, items and labeling cost rows.
func fromDomain(po *purchaseorder.PurchaseOrder) PurchaseOrderDTO {
	orderID := po.ID().Bytes()
	charges := po.Charges()
	items := make([]ItemDTO, 0, len(po.Items()))

	for n, item := range po.Items() {
		items = append(items, itemFromDomain(orderID, n, item))
	}

	return PurchaseOrderDTO{
		ID:            orderID,
		SupplierID:    uuidPtr(po.SupplierID()),
		Name:          po.Name(),
		InvoiceNumber: po.InvoiceNumber(),
		OrderDate:     po.OrderDate(),
		Status:        int(po.Status()),
		SalesTax:      charges.SalesTax,
		Shipping:      charges.Shipping,
		Discount:      charges.Discount,
		Subtotal:      po.Subtotal(),
		LabelingTotal: po.LabelingTotal(),
		TotalExpense:  po.TotalExpense(),
		Items:         items,
	}
}

func itemFromDomain(orderID uuid.UUID, position int, item *purchaseorder.Item) ItemDTO {
	itemID := item.ID().Bytes()
	charges := item.Charges()
	labelingCosts := make([]LabelingCostDTO, 0, len(item.LabelingCosts()))

	for _, lc := range item.LabelingCosts() {
		labelingCosts = append(labelingCosts, LabelingCostDTO{
			ID:        lc.ID().Bytes(),
			ItemID:    itemID,
			Note:      lc.Note(),
			CostTotal: lc.CostTotal(),
		})
	}

	return ItemDTO{
		ID:              itemID,
		PurchaseOrderID: orderID,
		Position:        position,
		ProductID:       uuidPtr(item.ProductID()),
		ASIN:            item.ASIN(),
		Title:           item.Title(),
		AmazonLink:      item.AmazonLink(),
		SupplierMfrCode: item.SupplierMfrCode(),
		Quantity:        item.Quantity(),
		PurchasePrice:   item.PurchasePrice(),
		SalesTax:        charges.SalesTax,
		Shipping:        charges.Shipping,
		Discount:        charges.Discount,
		UnitCOGS:        item.UnitCOGS(),
		ExtendedTotal:   item.ExtendedTotal(),
		LabelingCosts:   labelingCosts,
	}
}

// toDomain rebuilds the aggregate with RestorePurchaseOrder. Items must already
// be sorted by position and labeling costs by id.
func toDomain(dto PurchaseOrderDTO) (*purchaseorder.PurchaseOrder, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	supplierID, err := kernelPtr(dto.SupplierID)
	if err != nil {
		return nil, err
	}

	items := make([]*purchaseorder.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status := purchaseorder.Status(dto.Status)
	return purchaseorder.RestorePurchaseOrder(purchaseorder.PurchaseOrderState{
		ID:            id,
		SupplierID:    supplierID,
		Name:          dto.Name,
		InvoiceNumber: dto.InvoiceNumber,
		OrderDate:     dto.OrderDate,
		Status:        status,
		Charges: purchaseorder.Charges{
			SalesTax: dto.SalesTax,
			Shipping: dto.Shipping,
			Discount: dto.Discount,
		},
		Subtotal:      dto.Subtotal,
		LabelingTotal: dto.LabelingTotal,
		TotalExpense:  dto.TotalExpense,
		Items:         items,
	})
}

func itemToDomain(dto ItemDTO) (*purchaseorder.Item, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	productID, err := kernelPtr(dto.ProductID)
	if err != nil {
		return nil, err
	}

	labelingCosts := make([]*purchaseorder.LabelingCost, 0, len(dto.LabelingCosts))
	for _, lcDto := range dto.LabelingCosts {
		lcID, lcErr := kernel.UUIDFromGoogle(lcDto.ID)
		if lcErr != nil {
			return nil, lcErr
		}
		lc, lcErr := purchaseorder.NewLabelingCost(lcID, id, lcDto.Note, lcDto.CostTotal)
		if lcErr != nil {
			return nil, lcErr
		}
		labelingCosts = append(labelingCosts, lc)
	}

	return purchaseorder.RestoreItem(purchaseorder.ItemState{
		ID:              id,
		ProductID:       productID,
		ASIN:            dto.ASIN,
		Title:           dto.Title,
		AmazonLink:      dto.AmazonLink,
		SupplierMfrCode: dto.SupplierMfrCode,
		Quantity:        dto.Quantity,
		PurchasePrice:   dto.PurchasePrice,
		Charges: purchaseorder.Charges{
			SalesTax: dto.SalesTax,
			Shipping: dto.Shipping,
			Discount: dto.Discount,
		},
		UnitCOGS:      dto.UnitCOGS,
		ExtendedTotal: dto.ExtendedTotal,
		LabelingCosts: labelingCosts,
	})
}
