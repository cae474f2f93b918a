package http

import (
	"time"

	"cogs/internal/core/application/usecases/commands"
	"cogs/internal/core/application/usecases/queries"
	"cogs/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Error is the body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Health struct {
	OK        bool      `json:"ok"`
	Timestamp time.Time `json:"ts"`
}

// NewPurchaseOrder is the create payload. Monetary fields accept JSON numbers
// or strings with either decimal separator.
type NewPurchaseOrder struct {
	SupplierName  string                 `json:"supplier_name" validate:"max=255"`
	Name          string                 `json:"po_name" validate:"max=255"`
	InvoiceNumber string                 `json:"invoice_number" validate:"max=128"`
	OrderDate     string                 `json:"order_date"`
	SalesTax      any                    `json:"sales_tax"`
	Shipping      any                    `json:"shipping"`
	Discount      any                    `json:"discount"`
	Items         []NewPurchaseOrderItem `json:"items" validate:"dive"`
}

type NewPurchaseOrderItem struct {
	ASIN            string `json:"asin" validate:"max=32"`
	ListingTitle    string `json:"listing_title" validate:"max=512"`
	AmazonLink      string `json:"amazon_link" validate:"max=1024"`
	SupplierMfrCode string `json:"supplier_mfr_code" validate:"max=128"`
	Quantity        any    `json:"quantity"`
	PurchasePrice   any    `json:"purchase_price"`
	SalesTax        any    `json:"sales_tax"`
	Shipping        any    `json:"shipping"`
	Discount        any    `json:"discount"`
}

func (b NewPurchaseOrder) toInput() commands.CreatePurchaseOrderInput {
	input := commands.CreatePurchaseOrderInput{
		SupplierName:  b.SupplierName,
		Name:          b.Name,
		InvoiceNumber: b.InvoiceNumber,
		OrderDate:     b.OrderDate,
		SalesTax:      b.SalesTax,
		Shipping:      b.Shipping,
		Discount:      b.Discount,
		Items:         make([]commands.CreatePurchaseOrderItemInput, 0, len(b.Items)),
	}
	for _, item := range b.Items {
		input.Items = append(input.Items, commands.CreatePurchaseOrderItemInput{
			ASIN:            item.ASIN,
			ListingTitle:    item.ListingTitle,
			AmazonLink:      item.AmazonLink,
			SupplierMfrCode: item.SupplierMfrCode,
			Quantity:        item.Quantity,
			PurchasePrice:   item.PurchasePrice,
			SalesTax:        item.SalesTax,
			Shipping:        item.Shipping,
			Discount:        item.Discount,
		})
	}
	return input
}

type StatusChange struct {
	Status string `json:"status" validate:"required"`
}

type NewLabelingCost struct {
	Note      string `json:"note" validate:"max=512"`
	CostTotal any    `json:"cost_total" validate:"required"`
}

type PurchaseOrderSummary struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"po_name"`
	InvoiceNumber string          `json:"invoice_number"`
	Supplier      *string         `json:"supplier"`
	OrderDate     time.Time       `json:"order_date"`
	Status        string          `json:"status"`
	ItemCount     int             `json:"item_count"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	SalesTax      decimal.Decimal `json:"sales_tax"`
	Shipping      decimal.Decimal `json:"shipping"`
	Discount      decimal.Decimal `json:"discount"`
	LabelingTotal decimal.Decimal `json:"labeling_total"`
	TotalExpense  decimal.Decimal `json:"total_expense"`
}

func newPurchaseOrderSummary(s queries.PurchaseOrderSummary) PurchaseOrderSummary {
	return PurchaseOrderSummary{
		ID:            s.ID.Bytes(),
		Name:          s.Name,
		InvoiceNumber: s.InvoiceNumber,
		Supplier:      optional(s.SupplierName),
		OrderDate:     s.OrderDate,
		Status:        s.Status.String(),
		ItemCount:     s.ItemCount,
		Subtotal:      s.Subtotal,
		SalesTax:      s.SalesTax,
		Shipping:      s.Shipping,
		Discount:      s.Discount,
		LabelingTotal: s.LabelingTotal,
		TotalExpense:  s.TotalExpense,
	}
}

type PurchaseOrder struct {
	ID            uuid.UUID           `json:"id"`
	SupplierID    *uuid.UUID          `json:"supplier_id"`
	Name          string              `json:"po_name"`
	InvoiceNumber string              `json:"invoice_number"`
	OrderDate     time.Time           `json:"order_date"`
	Status        string              `json:"status"`
	SalesTax      decimal.Decimal     `json:"sales_tax"`
	Shipping      decimal.Decimal     `json:"shipping"`
	Discount      decimal.Decimal     `json:"discount"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	LabelingTotal decimal.Decimal     `json:"labeling_total"`
	TotalExpense  decimal.Decimal     `json:"total_expense"`
	Items         []PurchaseOrderItem `json:"items"`
}

type PurchaseOrderItem struct {
	ID              uuid.UUID       `json:"id"`
	ProductID       *uuid.UUID      `json:"product_id"`
	ASIN            string          `json:"asin"`
	ListingTitle    string          `json:"listing_title"`
	AmazonLink      string          `json:"amazon_link"`
	SupplierMfrCode string          `json:"supplier_mfr_code"`
	Quantity        int             `json:"quantity"`
	PurchasePrice   decimal.Decimal `json:"purchase_price"`
	SalesTax        decimal.Decimal `json:"sales_tax"`
	Shipping        decimal.Decimal `json:"shipping"`
	Discount        decimal.Decimal `json:"discount"`
	LabelingTotal   decimal.Decimal `json:"labeling_total"`
	UnitCOGS        decimal.Decimal `json:"unit_cogs"`
	ExtendedTotal   decimal.Decimal `json:"extended_total"`
	LabelingCosts   []LabelingCost  `json:"labeling_costs"`
}

type LabelingCost struct {
	ID        uuid.UUID       `json:"id"`
	Note      string          `json:"note"`
	CostTotal decimal.Decimal `json:"cost_total"`
}

func newPurchaseOrder(po queries.PurchaseOrderResponse) PurchaseOrder {
	response := PurchaseOrder{
		ID:            po.ID.Bytes(),
		SupplierID:    googleUUID(po.SupplierID),
		Name:          po.Name,
		InvoiceNumber: po.InvoiceNumber,
		OrderDate:     po.OrderDate,
		Status:        po.Status.String(),
		SalesTax:      po.SalesTax,
		Shipping:      po.Shipping,
		Discount:      po.Discount,
		Subtotal:      po.Subtotal,
		LabelingTotal: po.LabelingTotal,
		TotalExpense:  po.TotalExpense,
		Items:         make([]PurchaseOrderItem, len(po.Items)),
	}

	for i, item := range po.Items {
		labelingCosts := make([]LabelingCost, len(item.LabelingCosts))
		for j, lc := range item.LabelingCosts {
			labelingCosts[j] = LabelingCost{
				ID:        lc.ID.Bytes(),
				Note:      lc.Note,
				CostTotal: lc.CostTotal,
			}
		}

		response.Items[i] = PurchaseOrderItem{
			ID:              item.ID.Bytes(),
			ProductID:       googleUUID(item.ProductID),
			ASIN:            item.ASIN,
			ListingTitle:    item.Title,
			AmazonLink:      item.AmazonLink,
			SupplierMfrCode: item.SupplierMfrCode,
			Quantity:        item.Quantity,
			PurchasePrice:   item.PurchasePrice,
			SalesTax:        item.SalesTax,
			Shipping:        item.Shipping,
			Discount:        item.Discount,
			LabelingTotal:   item.LabelingTotal,
			UnitCOGS:        item.UnitCOGS,
			ExtendedTotal:   item.ExtendedTotal,
			LabelingCosts:   labelingCosts,
		}
	}

	return response
}

type Product struct {
	ID         uuid.UUID       `json:"id"`
	SKU        string          `json:"sku"`
	ASIN       string          `json:"asin"`
	Title      string          `json:"title"`
	Supplier   *string         `json:"supplier"`
	Cost       decimal.Decimal `json:"cost"`
	CostSource string          `json:"cost_source"`
}

func newProduct(p queries.ProductResponse) Product {
	return Product{
		ID:         p.ID.Bytes(),
		SKU:        p.SKU,
		ASIN:       p.ASIN,
		Title:      p.Title,
		Supplier:   optional(p.SupplierName),
		Cost:       p.Cost,
		CostSource: p.CostSource.String(),
	}
}

func googleUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
