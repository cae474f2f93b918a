package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/core/domain/model/purchaseorder"
	"cogs/internal/pkg/errs"
	"cogs/internal/pkg/guard"
	"cogs/internal/pkg/money"

	"github.com/shopspring/decimal"
)

var ErrCreatePurchaseOrderCommandIsNotConstructed = errors.New(
	"CreatePurchaseOrderCommand must be created via NewCreatePurchaseOrderCommand constructor",
)

// CreatePurchaseOrderInput is the raw payload of a new purchase order as it
// arrives from the presentation layer. Monetary fields accept anything
// money.Parse understands: numbers, decimals and strings with '.' or ','.
type CreatePurchaseOrderInput struct {
	SupplierName  string
	Name          string
	InvoiceNumber string
	OrderDate     string
	SalesTax      any
	Shipping      any
	Discount      any
	Items         []CreatePurchaseOrderItemInput
}

// CreatePurchaseOrderItemInput is the raw payload of one order line. Quantity
// is a whole number given as an int, a JSON number or a numeric string.
type CreatePurchaseOrderItemInput struct {
	ASIN            string
	ListingTitle    string
	AmazonLink      string
	SupplierMfrCode string
	Quantity        any
	PurchasePrice   any
	SalesTax        any
	Shipping        any
	Discount        any
}

// CreatePurchaseOrderLine is a validated order line.
type CreatePurchaseOrderLine struct {
	ID              kernel.UUID
	ASIN            string
	Title           string
	AmazonLink      string
	SupplierMfrCode string
	Quantity        int
	PurchasePrice   decimal.Decimal
	Charges         purchaseorder.Charges
}

// CreatePurchaseOrderCommand represents a request to store a new purchase order
// and compute its costs.
//
// Example:
//
//	cmd, err := NewCreatePurchaseOrderCommand(kernel.NewUUID(), CreatePurchaseOrderInput{
//	    Name:     "PO-2024-07",
//	    SalesTax: "10,00",
//	    Items: []CreatePurchaseOrderItemInput{
//	        {ASIN: "B000123", ListingTitle: "Widget", Quantity: 5, PurchasePrice: 2},
//	    },
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid purchase order: %w", err)
//	}
//	po, err := handler.Handle(ctx, cmd)
type CreatePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	supplierName  string
	name          string
	invoiceNumber string
	orderDate     time.Time
	charges       purchaseorder.Charges
	lines         []CreatePurchaseOrderLine

	guard guard.ConstructorGuard
}

// NewCreatePurchaseOrderCommand validates the whole payload before anything is
// persisted. Every problem found is returned, joined. Missing order-level
// charges and item overrides default to zero; a missing or unparseable
// purchase price is an error. A blank order date means now.
func NewCreatePurchaseOrderCommand(orderID kernel.UUID, input CreatePurchaseOrderInput) (CreatePurchaseOrderCommand, error) {
	cmd := CreatePurchaseOrderCommand{
		supplierName:  strings.TrimSpace(input.SupplierName),
		invoiceNumber: strings.TrimSpace(input.InvoiceNumber),
		charges: purchaseorder.Charges{
			SalesTax: money.Coerce(input.SalesTax),
			Shipping: money.Coerce(input.Shipping),
			Discount: money.Coerce(input.Discount),
		},
		guard: guard.NewConstructorGuard(),
	}

	validationErrs := []error{
		cmd.setOrderID(orderID),
		cmd.setName(input.Name),
		cmd.setOrderDate(input.OrderDate),
	}
	for n, item := range input.Items {
		if err := cmd.addLine(item); err != nil {
			validationErrs = append(validationErrs, fmt.Errorf("item %d: %w", n+1, err))
		}
	}

	if err := errors.Join(validationErrs...); err != nil {
		return CreatePurchaseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseOrderCommandIsNotConstructed)
}

func (c CreatePurchaseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SupplierName is empty when the order has no supplier.
func (c CreatePurchaseOrderCommand) SupplierName() string {
	return c.supplierName
}

func (c CreatePurchaseOrderCommand) Name() string {
	return c.name
}

func (c CreatePurchaseOrderCommand) InvoiceNumber() string {
	return c.invoiceNumber
}

func (c CreatePurchaseOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

// Charges returns the order-level sales tax, shipping and discount totals.
func (c CreatePurchaseOrderCommand) Charges() purchaseorder.Charges {
	return c.charges
}

// Lines returns the validated order lines in payload order.
func (c CreatePurchaseOrderCommand) Lines() []CreatePurchaseOrderLine {
	out := make([]CreatePurchaseOrderLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *CreatePurchaseOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreatePurchaseOrderCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("purchase order name")
	}

	c.name = name
	return nil
}

func (c *CreatePurchaseOrderCommand) setOrderDate(orderDate string) error {
	parsed, err := kernel.ParseOrderDate(orderDate, time.Now())
	if err != nil {
		return err
	}

	c.orderDate = parsed
	return nil
}

func (c *CreatePurchaseOrderCommand) addLine(input CreatePurchaseOrderItemInput) error {
	price, priceErr := parsePurchasePrice(input.PurchasePrice)
	quantity, quantityErr := parseQuantity(input.Quantity)

	line := CreatePurchaseOrderLine{
		ID:              kernel.NewUUID(),
		ASIN:            strings.TrimSpace(input.ASIN),
		Title:           strings.TrimSpace(input.ListingTitle),
		AmazonLink:      strings.TrimSpace(input.AmazonLink),
		SupplierMfrCode: strings.TrimSpace(input.SupplierMfrCode),
		Quantity:        quantity,
		PurchasePrice:   price,
		Charges: purchaseorder.Charges{
			SalesTax: money.Coerce(input.SalesTax),
			Shipping: money.Coerce(input.Shipping),
			Discount: money.Coerce(input.Discount),
		},
	}

	// NewItem owns the line invariants; the built item is discarded.
	check := line
	if quantityErr != nil {
		check.Quantity = 1
	}
	_, itemErr := check.newItem()
	if err := errors.Join(quantityErr, priceErr, itemErr); err != nil {
		return err
	}

	c.lines = append(c.lines, line)
	return nil
}

func (l CreatePurchaseOrderLine) newItem() (*purchaseorder.Item, error) {
	item, err := purchaseorder.NewItem(l.ID, l.ASIN, l.Title, l.Quantity, l.PurchasePrice, l.Charges)
	if err != nil {
		return nil, err
	}
	item.SetListing(l.AmazonLink, l.SupplierMfrCode)
	return item, nil
}

func parsePurchasePrice(v any) (decimal.Decimal, error) {
	price, err := money.Parse(v)
	switch {
	case errors.Is(err, money.ErrEmpty):
		return decimal.Zero, errs.NewValueIsRequiredError("purchase price")
	case err != nil:
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause("purchase price", err)
	}
	return price, nil
}

// parseQuantity reads a whole quantity. A missing or blank quantity is zero and
// fails item validation; fractions and non-numeric text are invalid.
func parseQuantity(v any) (int, error) {
	var (
		n   int64
		err error
	)
	switch x := v.(type) {
	case nil:
		return 0, nil
	case int:
		return x, nil
	case int64:
		n = x
	case float64:
		n, err = wholeFloat(x)
	case json.Number:
		n, err = x.Int64()
		if err != nil {
			var f float64
			if f, err = x.Float64(); err == nil {
				n, err = wholeFloat(f)
			}
		}
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, nil
		}
		n, err = strconv.ParseInt(s, 10, 32)
	default:
		err = fmt.Errorf("%T is not a number", v)
	}
	if err == nil && (n > math.MaxInt32 || n < math.MinInt32) {
		err = fmt.Errorf("%d is out of range", n)
	}
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("quantity", err)
	}
	return int(n), nil
}

func wholeFloat(f float64) (int64, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%v is not a whole number", f)
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("%v is out of range", f)
	}
	return int64(f), nil
}
