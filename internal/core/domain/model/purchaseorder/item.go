package purchaseorder

import (
	"errors"
	"fmt"
	"strings"

	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrItemIsNotConstructed is returned when an Item was not created through
	// NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Charges holds the tax, shipping and discount amounts of an order or an item.
// On an order they are totals for the whole order; on an item they are
// overrides for that line, where zero means "take a share of the order pool".
type Charges struct {
	SalesTax decimal.Decimal
	Shipping decimal.Decimal
	Discount decimal.Decimal
}

// Item is one line of a purchase order. It is an entity inside the
// PurchaseOrder aggregate and is only changed through its order.
//
// Item follows these invariants:
//   - Must have a valid identifier, a non-blank ASIN and a non-blank title
//   - Quantity must be positive
//   - Purchase price must not be negative
//   - Unit COGS and extended total are derived and set only by an allocation
type Item struct {
	// id is the unique identifier for the line
	id kernel.UUID

	// productID is the catalog product sharing the line's ASIN (nil until linked)
	productID *kernel.UUID

	// asin is the marketplace identifier of the listing
	asin string

	// title is the listing title at the time of purchase
	title string

	// amazonLink and supplierMfrCode are optional references for the buyer
	amazonLink      string
	supplierMfrCode string

	// quantity is the number of units ordered (must be positive)
	quantity int

	// purchasePrice is the price of one unit before any charges
	purchasePrice decimal.Decimal

	// charges are line-level overrides that shrink the order pools
	charges Charges

	// unitCOGS and extendedTotal are the derived costs of the last allocation
	unitCOGS      decimal.Decimal
	extendedTotal decimal.Decimal

	// labelingCosts are the prep charges in insertion order
	labelingCosts []*LabelingCost

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewItem validates and creates an order line. All validation failures are
// reported together.
//
// Parameters:
//   - id: Unique identifier for the line (must be a valid UUID)
//   - asin: Marketplace identifier (required, trimmed)
//   - title: Listing title (required, trimmed)
//   - quantity: Units ordered (must be greater than 0)
//   - purchasePrice: Price of one unit (must not be negative)
//   - charges: Line-level tax, shipping and discount overrides; zero values
//     leave the whole share to the order pools
//
// Returns:
//   - *Item: The created line with zero derived costs
//   - error: Joined validation errors if any parameter is invalid
//
// Example:
//
//	item, err := NewItem(kernel.NewUUID(), "B000123", "Widget", 5, decimal.RequireFromString("2.00"), Charges{})
//	if err != nil {
//	    // Handle validation error
//	}
func NewItem(
	id kernel.UUID,
	asin, title string,
	quantity int,
	purchasePrice decimal.Decimal,
	charges Charges,
) (*Item, error) {
	item := &Item{
		charges:       charges,
		unitCOGS:      decimal.Zero,
		extendedTotal: decimal.Zero,
		labelingCosts: make([]*LabelingCost, 0),
		isConstructed: true,
	}
	if err := errors.Join(
		item.setID(id),
		item.setASIN(asin),
		item.setTitle(title),
		item.setQuantity(quantity),
		item.setPurchasePrice(purchasePrice),
	); err != nil {
		return nil, err
	}
	return item, nil
}

// ItemState is the persisted form of an Item used by RestoreItem.
type ItemState struct {
	ID              kernel.UUID
	ProductID       *kernel.UUID
	ASIN            string
	Title           string
	AmazonLink      string
	SupplierMfrCode string
	Quantity        int
	PurchasePrice   decimal.Decimal
	Charges         Charges
	UnitCOGS        decimal.Decimal
	ExtendedTotal   decimal.Decimal
	LabelingCosts   []*LabelingCost
}

// RestoreItem rebuilds an item, including its derived costs, from persisted state.
//
// The same validations as NewItem apply. Every labeling cost must belong to
// the item; a cost for another item is an error.
func RestoreItem(state ItemState) (*Item, error) {
	item, err := NewItem(state.ID, state.ASIN, state.Title, state.Quantity, state.PurchasePrice, state.Charges)
	if err != nil {
		return nil, err
	}
	item.SetListing(state.AmazonLink, state.SupplierMfrCode)
	if state.ProductID != nil {
		if err = item.LinkProduct(*state.ProductID); err != nil {
			return nil, err
		}
	}
	for _, lc := range state.LabelingCosts {
		if !lc.ItemID().IsEqual(item.id) {
			return nil, fmt.Errorf("labeling cost %s belongs to item %s, not %s", lc.ID(), lc.ItemID(), item.id)
		}
		item.labelingCosts = append(item.labelingCosts, lc)
	}
	item.unitCOGS = state.UnitCOGS
	item.extendedTotal = state.ExtendedTotal
	return item, nil
}

// Validate ensures the item was built by NewItem or RestoreItem.
//
// Returns:
//   - nil if the item is valid
//   - ErrItemIsNotConstructed if the item is nil or was instantiated directly
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// SetListing records the optional marketplace link and supplier part number.
func (i *Item) SetListing(amazonLink, supplierMfrCode string) {
	i.amazonLink = strings.TrimSpace(amazonLink)
	i.supplierMfrCode = strings.TrimSpace(supplierMfrCode)
}

// LinkProduct associates the item with the catalog product for its ASIN.
// Allocations write the item's unit COGS to that product.
//
// Parameters:
//   - productID: Identifier of the product (must be a valid UUID)
//
// Returns:
//   - nil on success
//   - error if the id is not valid
func (i *Item) LinkProduct(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = &productID
	return nil
}

// ID returns the line's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the linked product, or nil.
func (i *Item) ProductID() *kernel.UUID {
	return i.productID
}

// ASIN returns the marketplace identifier of the line.
func (i *Item) ASIN() string {
	return i.asin
}

// Title returns the listing title.
func (i *Item) Title() string {
	return i.title
}

// AmazonLink returns the listing link, possibly empty.
func (i *Item) AmazonLink() string {
	return i.amazonLink
}

// SupplierMfrCode returns the supplier's part number, possibly empty.
func (i *Item) SupplierMfrCode() string {
	return i.supplierMfrCode
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// PurchasePrice returns the price of one unit before charges.
func (i *Item) PurchasePrice() decimal.Decimal {
	return i.purchasePrice
}

// Charges returns the item-level tax, shipping and discount overrides.
func (i *Item) Charges() Charges {
	return i.charges
}

// UnitCOGS returns the landed cost of one unit as of the last allocation.
func (i *Item) UnitCOGS() decimal.Decimal {
	return i.unitCOGS
}

// ExtendedTotal returns UnitCOGS multiplied by Quantity as of the last allocation.
func (i *Item) ExtendedTotal() decimal.Decimal {
	return i.extendedTotal
}

// LabelingCosts returns the labeling costs in insertion order.
func (i *Item) LabelingCosts() []*LabelingCost {
	out := make([]*LabelingCost, len(i.labelingCosts))
	copy(out, i.labelingCosts)
	return out
}

// LabelingTotal sums the cost totals of all labeling costs on the item.
func (i *Item) LabelingTotal() decimal.Decimal {
	total := decimal.Zero
	for _, lc := range i.labelingCosts {
		total = total.Add(lc.CostTotal())
	}
	return total
}

// LineSubtotal returns quantity multiplied by purchase price.
func (i *Item) LineSubtotal() decimal.Decimal {
	return i.purchasePrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) addLabelingCost(lc *LabelingCost) {
	i.labelingCosts = append(i.labelingCosts, lc)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setASIN(asin string) error {
	asin = strings.TrimSpace(asin)
	if asin == "" {
		return errs.NewValueIsRequiredError("asin")
	}
	i.asin = asin
	return nil
}

func (i *Item) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("listing title")
	}
	i.title = title
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPurchasePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("purchase price", fmt.Errorf("%s is negative", price))
	}
	i.purchasePrice = price
	return nil
}
