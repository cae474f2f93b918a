package services

import (
	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/core/domain/model/purchaseorder"
	"cogs/internal/pkg/money"

	"github.com/shopspring/decimal"
)

// ItemCostInput is the allocation input of one order item.
type ItemCostInput struct {
	ItemID        kernel.UUID
	Quantity      int
	PurchasePrice decimal.Decimal
	// Charges are the item-level overrides. A zero value means the item only
	// takes its share of the order pool.
	Charges purchaseorder.Charges
	// LabelingTotal is the sum of all labeling costs of the item.
	LabelingTotal decimal.Decimal
}

// OrderCostInput is everything Allocate needs to price one order.
type OrderCostInput struct {
	Charges  purchaseorder.Charges
	Subtotal decimal.Decimal
	Items    []ItemCostInput
}

// InputFromOrder builds the allocation input from the current state of po.
func InputFromOrder(po *purchaseorder.PurchaseOrder) OrderCostInput {
	items := po.Items()
	in := OrderCostInput{
		Charges:  po.Charges(),
		Subtotal: po.Subtotal(),
		Items:    make([]ItemCostInput, 0, len(items)),
	}
	for _, item := range items {
		in.Items = append(in.Items, ItemCostInput{
			ItemID:        item.ID(),
			Quantity:      item.Quantity(),
			PurchasePrice: item.PurchasePrice(),
			Charges:       item.Charges(),
			LabelingTotal: item.LabelingTotal(),
		})
	}
	return in
}

// Allocate distributes the unallocated part of the order's sales tax, shipping
// and discount evenly per unit across all items, adds each item's own tax and
// shipping and its labeling costs, and derives the order totals.
//
// Per item:
//
//	unit_cogs      = round6(price + tax/qty + taxPool/units + shipping/qty + shippingPool/units
//	                        + labeling/qty − discountPool/units)
//	extended_total = round6(unit_cogs × qty)
//
// where each pool is the order charge minus the sum of the item overrides for
// that charge. Item discount overrides only shrink the discount pool.
//
// Per order:
//
//	labeling_total = Σ item labeling
//	total_expense  = subtotal + sales_tax + shipping − discount + labeling_total
//
// Allocate never fails. Zero total units is treated as one unit and a zero item
// quantity contributes nothing per unit.
func Allocate(in OrderCostInput) purchaseorder.Allocation {
	totalUnits := int64(0)
	var itemTax, itemShipping, itemDiscount decimal.Decimal
	for _, item := range in.Items {
		totalUnits += int64(item.Quantity)
		itemTax = itemTax.Add(item.Charges.SalesTax)
		itemShipping = itemShipping.Add(item.Charges.Shipping)
		itemDiscount = itemDiscount.Add(item.Charges.Discount)
	}
	if totalUnits == 0 {
		totalUnits = 1
	}
	units := decimal.NewFromInt(totalUnits)

	poolTax := perUnit(in.Charges.SalesTax.Sub(itemTax), units)
	poolShipping := perUnit(in.Charges.Shipping.Sub(itemShipping), units)
	poolDiscount := perUnit(in.Charges.Discount.Sub(itemDiscount), units).Neg()

	result := purchaseorder.Allocation{
		Items:         make([]purchaseorder.ItemAllocation, 0, len(in.Items)),
		LabelingTotal: decimal.Zero,
	}
	for _, item := range in.Items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		var ownTax, ownShipping, labeling decimal.Decimal
		if item.Quantity != 0 {
			ownTax = item.Charges.SalesTax.Div(qty)
			ownShipping = item.Charges.Shipping.Div(qty)
			labeling = item.LabelingTotal.Div(qty)
		}

		unitCOGS := money.Round(item.PurchasePrice.
			Add(ownTax).Add(poolTax).
			Add(ownShipping).Add(poolShipping).
			Add(labeling).
			Add(poolDiscount))

		result.Items = append(result.Items, purchaseorder.ItemAllocation{
			ItemID:        item.ItemID,
			UnitCOGS:      unitCOGS,
			ExtendedTotal: money.Round(unitCOGS.Mul(qty)),
		})
		result.LabelingTotal = result.LabelingTotal.Add(item.LabelingTotal)
	}

	result.TotalExpense = money.Round(in.Subtotal.
		Add(in.Charges.SalesTax).
		Add(in.Charges.Shipping).
		Sub(in.Charges.Discount).
		Add(result.LabelingTotal))
	return result
}

func perUnit(pool, units decimal.Decimal) decimal.Decimal {
	if pool.IsZero() {
		return decimal.Zero
	}
	return pool.Div(units)
}

// CostAllocator recomputes the derived costs of a purchase order aggregate.
//
// Example usage:
//
//	allocator := services.NewCostAllocator()
//	if _, err := allocator.Recalculate(po); err != nil {
//	    return err
//	}
//	for _, item := range po.Items() {
//	    fmt.Println(item.ASIN(), item.UnitCOGS())
//	}
type CostAllocator struct{}

func NewCostAllocator() CostAllocator {
	return CostAllocator{}
}

// Recalculate runs Allocate over the current state of po and writes the result
// back to the order and its items. Running it twice on unchanged data yields the
// same values. The returned allocation lets callers propagate unit costs to
// linked products.
func (CostAllocator) Recalculate(po *purchaseorder.PurchaseOrder) (purchaseorder.Allocation, error) {
	if err := po.Validate(); err != nil {
		return purchaseorder.Allocation{}, err
	}
	allocation := Allocate(InputFromOrder(po))
	if err := po.ApplyAllocation(allocation); err != nil {
		return purchaseorder.Allocation{}, err
	}
	return allocation, nil
}
