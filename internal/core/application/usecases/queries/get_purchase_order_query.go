package queries

import (
	"errors"
	"time"

	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/core/domain/model/purchaseorder"
	"cogs/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetPurchaseOrderQueryIsNotConstructed = errors.New(
		"GetPurchaseOrderQuery must be created via NewGetPurchaseOrderQuery constructor",
	)
)

// GetPurchaseOrderQuery retrieves one purchase order with its items and
// labeling costs.
type GetPurchaseOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPurchaseOrderQuery(orderID kernel.UUID) (GetPurchaseOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetPurchaseOrderQuery{}, err
	}

	return GetPurchaseOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetPurchaseOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetPurchaseOrderQueryIsNotConstructed)
}

func (q GetPurchaseOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// PurchaseOrderResponse is the full read model of a purchase order.
type PurchaseOrderResponse struct {
	ID            kernel.UUID
	SupplierID    *kernel.UUID
	Name          string
	InvoiceNumber string
	OrderDate     time.Time
	Status        purchaseorder.Status
	SalesTax      decimal.Decimal
	Shipping      decimal.Decimal
	Discount      decimal.Decimal
	Subtotal      decimal.Decimal
	LabelingTotal decimal.Decimal
	TotalExpense  decimal.Decimal
	Items         []ItemResponse
}

// ItemResponse is one order line. Charge fields are the item level overrides.
type ItemResponse struct {
	ID              kernel.UUID
	ProductID       *kernel.UUID
	ASIN            string
	Title           string
	AmazonLink      string
	SupplierMfrCode string
	Quantity        int
	PurchasePrice   decimal.Decimal
	SalesTax        decimal.Decimal
	Shipping        decimal.Decimal
	Discount        decimal.Decimal
	LabelingTotal   decimal.Decimal
	UnitCOGS        decimal.Decimal
	ExtendedTotal   decimal.Decimal
	LabelingCosts   []LabelingCostResponse
}

type LabelingCostResponse struct {
	ID        kernel.UUID
	Note      string
	CostTotal decimal.Decimal
}

// NewPurchaseOrderResponse maps an aggregate to its read model. Command
// results are rendered through it as well.
func NewPurchaseOrderResponse(po *purchaseorder.PurchaseOrder) PurchaseOrderResponse {
	charges := po.Charges()
	response := PurchaseOrderResponse{
		ID:            po.ID(),
		SupplierID:    po.SupplierID(),
		Name:          po.Name(),
		InvoiceNumber: po.InvoiceNumber(),
		OrderDate:     po.OrderDate(),
		Status:        po.Status(),
		SalesTax:      charges.SalesTax,
		Shipping:      charges.Shipping,
		Discount:      charges.Discount,
		Subtotal:      po.Subtotal(),
		LabelingTotal: po.LabelingTotal(),
		TotalExpense:  po.TotalExpense(),
		Items:         make([]ItemResponse, 0, len(po.Items())),
	}

	for _, item := range po.Items() {
		itemCharges := item.Charges()
		itemResponse := ItemResponse{
			ID:              item.ID(),
			ProductID:       item.ProductID(),
			ASIN:            item.ASIN(),
			Title:           item.Title(),
			AmazonLink:      item.AmazonLink(),
			SupplierMfrCode: item.SupplierMfrCode(),
			Quantity:        item.Quantity(),
			PurchasePrice:   item.PurchasePrice(),
			SalesTax:        itemCharges.SalesTax,
			Shipping:        itemCharges.Shipping,
			Discount:        itemCharges.Discount,
			LabelingTotal:   item.LabelingTotal(),
			UnitCOGS:        item.UnitCOGS(),
			ExtendedTotal:   item.ExtendedTotal(),
			LabelingCosts:   make([]LabelingCostResponse, 0, len(item.LabelingCosts())),
		}
		for _, lc := range item.LabelingCosts() {
			itemResponse.LabelingCosts = append(itemResponse.LabelingCosts, LabelingCostResponse{
				ID:        lc.ID(),
				Note:      lc.Note(),
				CostTotal: lc.CostTotal(),
			})
		}
		response.Items = append(response.Items, itemResponse)
	}

	return response
}
