package purchaseorder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrPurchaseOrderIsNotConstructed is returned when a PurchaseOrder was not created
	// through NewPurchaseOrder or RestorePurchaseOrder. This ensures all orders are
	// properly validated.
	ErrPurchaseOrderIsNotConstructed = errors.New("PurchaseOrder must be created via NewPurchaseOrder constructor")

	// ErrAllocationMismatch is returned when an allocation does not cover exactly the order's items.
	ErrAllocationMismatch = errors.New("allocation does not match purchase order items")
)

// PurchaseOrder is the aggregate root for one wholesale order placed with a
// supplier. It owns its items and their labeling costs and carries the derived
// costs computed by the cost allocator.
//
// PurchaseOrder follows these invariants:
//   - Must have a valid identifier and a non-blank name
//   - Items are fixed at creation and keep their creation order
//   - Subtotal is the sum of quantity × purchase price, computed at creation
//   - Sales tax, shipping and discount are stored verbatim as entered for the whole order
//   - Labeling total, total expense and item costs change only via ApplyAllocation
//
// The struct uses private fields so that every change goes through a
// validated method.
type PurchaseOrder struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// supplierID is the supplier the order was placed with (nil if unknown)
	supplierID *kernel.UUID

	// name is the buyer's display name for the order, such as "PO-2024-07"
	name string

	// invoiceNumber is the supplier's invoice reference (may be empty)
	invoiceNumber string

	// orderDate is the date the order was placed, in UTC
	orderDate time.Time

	// status is the current lifecycle state
	status Status

	// charges are the order-level tax, shipping and discount totals
	charges Charges

	// subtotal is Σ quantity × purchase price, fixed at creation
	subtotal decimal.Decimal

	// labelingTotal is the sum of all labeling costs as of the last allocation
	labelingTotal decimal.Decimal

	// totalExpense is the payable amount as of the last allocation
	totalExpense decimal.Decimal

	// items are the order lines in creation order
	items []*Item

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewPurchaseOrder creates an order in New status and computes its subtotal.
// This is the only way to create a valid PurchaseOrder.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - name: Display name of the order (required, trimmed)
//   - orderDate: Date the order was placed; stored in UTC
//   - charges: Order-level sales tax, shipping and discount totals
//   - items: The order lines, each built by NewItem; ids must be unique
//
// Returns:
//   - *PurchaseOrder: The created order if all validations pass
//   - error: Joined validation errors if any parameter is invalid
//
// Example:
//
//	item, _ := NewItem(kernel.NewUUID(), "B000123", "Widget", 5, decimal.NewFromInt(2), Charges{})
//	po, err := NewPurchaseOrder(kernel.NewUUID(), "PO-2024-07", time.Now(), Charges{
//	    SalesTax: decimal.NewFromInt(10),
//	}, []*Item{item})
//	if err != nil {
//	    // Handle validation error
//	}
//
// Derived costs stay zero until the first allocation is applied.
func NewPurchaseOrder(
	id kernel.UUID,
	name string,
	orderDate time.Time,
	charges Charges,
	items []*Item,
) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		status:        New,
		orderDate:     orderDate.UTC(),
		charges:       charges,
		subtotal:      decimal.Zero,
		labelingTotal: decimal.Zero,
		totalExpense:  decimal.Zero,
		isConstructed: true,
	}
	if err := errors.Join(
		po.setID(id),
		po.setName(name),
		po.setItems(items),
	); err != nil {
		return nil, err
	}
	for _, item := range po.items {
		po.subtotal = po.subtotal.Add(item.LineSubtotal())
	}
	return po, nil
}

// PurchaseOrderState is the persisted form of a PurchaseOrder used by RestorePurchaseOrder.
type PurchaseOrderState struct {
	ID            kernel.UUID
	SupplierID    *kernel.UUID
	Name          string
	InvoiceNumber string
	OrderDate     time.Time
	Status        Status
	Charges       Charges
	Subtotal      decimal.Decimal
	LabelingTotal decimal.Decimal
	TotalExpense  decimal.Decimal
	Items         []*Item
}

// RestorePurchaseOrder rebuilds an order from persisted state.
//
// The same validations as NewPurchaseOrder apply, and the stored status must
// be New or Closed. Stored subtotal and derived totals are kept as they are
// rather than recomputed.
//
// Returns:
//   - *PurchaseOrder: The restored order
//   - error: Validation error if the stored state is inconsistent
func RestorePurchaseOrder(state PurchaseOrderState) (*PurchaseOrder, error) {
	po, err := NewPurchaseOrder(state.ID, state.Name, state.OrderDate, state.Charges, state.Items)
	if err != nil {
		return nil, err
	}
	if err = state.Status.Validate(); err != nil {
		return nil, err
	}
	po.status = state.Status
	po.supplierID = state.SupplierID
	po.invoiceNumber = state.InvoiceNumber
	po.subtotal = state.Subtotal
	po.labelingTotal = state.LabelingTotal
	po.totalExpense = state.TotalExpense
	return po, nil
}

// Validate ensures the order was built by NewPurchaseOrder or RestorePurchaseOrder.
//
// Returns:
//   - nil if the order is valid
//   - ErrPurchaseOrderIsNotConstructed if the order is nil or was instantiated directly
func (po *PurchaseOrder) Validate() error {
	if po == nil || !po.isConstructed {
		return ErrPurchaseOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (po *PurchaseOrder) ID() kernel.UUID {
	return po.id
}

// SupplierID returns the supplier the order was placed with, or nil.
func (po *PurchaseOrder) SupplierID() *kernel.UUID {
	return po.supplierID
}

// Name returns the display name of the order.
func (po *PurchaseOrder) Name() string {
	return po.name
}

// InvoiceNumber returns the supplier's invoice reference, possibly empty.
func (po *PurchaseOrder) InvoiceNumber() string {
	return po.invoiceNumber
}

// OrderDate returns the date the order was placed, in UTC.
func (po *PurchaseOrder) OrderDate() time.Time {
	return po.orderDate
}

// Status returns the current status of the order.
func (po *PurchaseOrder) Status() Status {
	return po.status
}

// Charges returns the order-level sales tax, shipping and discount totals.
func (po *PurchaseOrder) Charges() Charges {
	return po.charges
}

// Subtotal returns Σ quantity × purchase price as computed at creation.
func (po *PurchaseOrder) Subtotal() decimal.Decimal {
	return po.subtotal
}

// LabelingTotal returns the sum of all labeling costs as of the last allocation.
func (po *PurchaseOrder) LabelingTotal() decimal.Decimal {
	return po.labelingTotal
}

// TotalExpense is the payable amount: subtotal + sales tax + shipping − discount + labeling total.
func (po *PurchaseOrder) TotalExpense() decimal.Decimal {
	return po.totalExpense
}

// Items returns a copy of the order lines in creation order.
func (po *PurchaseOrder) Items() []*Item {
	out := make([]*Item, len(po.items))
	copy(out, po.items)
	return out
}

// Item returns the line with the given id.
//
// Returns:
//   - *Item: The matching line
//   - error: ObjectNotFoundError if no line of this order has the id
func (po *PurchaseOrder) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range po.items {
		if item.id.IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("purchase order item", itemID.String())
}

// SetSupplier links the order to a supplier.
//
// Parameters:
//   - supplierID: Identifier of an existing supplier (must be a valid UUID)
//
// Returns:
//   - nil on success
//   - error if the id is not valid
func (po *PurchaseOrder) SetSupplier(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	po.supplierID = &supplierID
	return nil
}

// SetInvoiceNumber records the supplier's invoice reference. Surrounding
// whitespace is dropped and an empty value clears it.
func (po *PurchaseOrder) SetInvoiceNumber(invoiceNumber string) {
	po.invoiceNumber = strings.TrimSpace(invoiceNumber)
}

// SetStatus moves the order to status.
//
// This method enforces the following business rules:
//   - The status must be New or Closed
//   - Both directions between New and Closed are allowed
//   - Costs are not affected
//
// Example:
//
//	if err := po.SetStatus(Closed); err != nil {
//	    // Unknown status
//	}
func (po *PurchaseOrder) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	po.status = status
	return nil
}

// AddLabelingCost appends a labeling cost to one of the order's items.
//
// Parameters:
//   - id: Identifier of the new labeling cost
//   - itemID: The order line the cost applies to
//   - note: Free-text description, such as "FNSKU labels"
//   - costTotal: Cost for the item's whole quantity (must not be negative)
//
// Returns:
//   - *LabelingCost: The appended cost
//   - error: ObjectNotFoundError for an unknown item, or a validation error
//
// Example:
//
//	if _, err := po.AddLabelingCost(kernel.NewUUID(), itemID, "prep", decimal.NewFromInt(10)); err != nil {
//	    return err
//	}
//	_, err := services.NewCostAllocator().Recalculate(po)
//
// Derived costs are stale until the next allocation is applied.
func (po *PurchaseOrder) AddLabelingCost(
	id, itemID kernel.UUID,
	note string,
	costTotal decimal.Decimal,
) (*LabelingCost, error) {
	item, err := po.Item(itemID)
	if err != nil {
		return nil, err
	}
	lc, err := NewLabelingCost(id, itemID, note, costTotal)
	if err != nil {
		return nil, err
	}
	item.addLabelingCost(lc)
	return lc, nil
}

// ItemAllocation is the derived cost of one item.
type ItemAllocation struct {
	ItemID        kernel.UUID
	UnitCOGS      decimal.Decimal
	ExtendedTotal decimal.Decimal
}

// Allocation is the full result of a cost allocation run for one order.
type Allocation struct {
	Items         []ItemAllocation
	LabelingTotal decimal.Decimal
	TotalExpense  decimal.Decimal
}

// ApplyAllocation overwrites the derived fields of the order and its items.
//
// Parameters:
//   - a: An allocation naming every item of the order exactly once
//
// Returns:
//   - nil when the derived fields were replaced
//   - ErrAllocationMismatch if the allocation misses an item or has the wrong
//     length; nothing is changed in that case
//
// Stored inputs (prices, charges, labeling costs) are never touched.
func (po *PurchaseOrder) ApplyAllocation(a Allocation) error {
	if len(a.Items) != len(po.items) {
		return fmt.Errorf("%w: %d allocations for %d items", ErrAllocationMismatch, len(a.Items), len(po.items))
	}
	byItem := make(map[kernel.UUID]ItemAllocation, len(a.Items))
	for _, ia := range a.Items {
		byItem[ia.ItemID] = ia
	}
	for _, item := range po.items {
		if _, ok := byItem[item.id]; !ok {
			return fmt.Errorf("%w: item %s is missing", ErrAllocationMismatch, item.id)
		}
	}
	for _, item := range po.items {
		ia := byItem[item.id]
		item.unitCOGS = ia.UnitCOGS
		item.extendedTotal = ia.ExtendedTotal
	}
	po.labelingTotal = a.LabelingTotal
	po.totalExpense = a.TotalExpense
	return nil
}

func (po *PurchaseOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	po.id = id
	return nil
}

func (po *PurchaseOrder) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("purchase order name")
	}
	po.name = name
	return nil
}

func (po *PurchaseOrder) setItems(items []*Item) error {
	po.items = make([]*Item, 0, len(items))
	seen := make(map[kernel.UUID]struct{}, len(items))
	for n, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", n+1, err)
		}
		if _, dup := seen[item.id]; dup {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("item %s appears twice", item.id))
		}
		seen[item.id] = struct{}{}
		po.items = append(po.items, item)
	}
	return nil
}
