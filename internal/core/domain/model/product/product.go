// Package product holds the Product aggregate: a marketplace catalog entry keyed by
// ASIN whose cost tracks the most recent landed unit cost.
package product

import (
	"errors"
	"strings"

	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via a Product constructor")

// AutoSKUPrefix prefixes the SKU of products created on first sight in a purchase order.
const AutoSKUPrefix = "AUTO-"

// Product is a catalog item. Cost is overwritten by whichever pipeline writes last;
// CostSource tells which one that was.
type Product struct {
	id            kernel.UUID
	sku           string
	asin          string
	title         string
	supplierID    *kernel.UUID
	cost          decimal.Decimal
	costSource    CostSource
	isConstructed bool
}

// NewProduct creates a product with no recorded cost.
func NewProduct(id kernel.UUID, sku, asin, title string) (*Product, error) {
	p := &Product{
		cost:          decimal.Zero,
		costSource:    CostSourceNone,
		isConstructed: true,
	}
	if err := errors.Join(
		p.setID(id),
		p.setSKU(sku),
		p.setASIN(asin),
	); err != nil {
		return nil, err
	}
	p.title = strings.TrimSpace(title)
	if p.title == "" {
		p.title = p.asin
	}
	return p, nil
}

// NewProductFromPurchase creates the product for an ASIN first seen on a purchase
// order. The purchase price becomes a provisional cost.
func NewProductFromPurchase(id kernel.UUID, asin, title string, supplierID *kernel.UUID, costHint decimal.Decimal) (*Product, error) {
	asin = strings.TrimSpace(asin)
	p, err := NewProduct(id, AutoSKUPrefix+asin, asin, title)
	if err != nil {
		return nil, err
	}
	p.supplierID = supplierID
	if !costHint.IsZero() {
		p.cost = costHint
		p.costSource = CostSourcePurchaseHint
	}
	return p, nil
}

// RestoreProduct rebuilds a product from persisted state.
func RestoreProduct(
	id kernel.UUID,
	sku, asin, title string,
	supplierID *kernel.UUID,
	cost decimal.Decimal,
	costSource CostSource,
) (*Product, error) {
	p, err := NewProduct(id, sku, asin, title)
	if err != nil {
		return nil, err
	}
	if err = costSource.Validate(); err != nil {
		return nil, err
	}
	p.supplierID = supplierID
	p.cost = cost
	p.costSource = costSource
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) SKU() string {
	return p.sku
}

func (p *Product) ASIN() string {
	return p.asin
}

func (p *Product) Title() string {
	return p.title
}

func (p *Product) SupplierID() *kernel.UUID {
	return p.supplierID
}

func (p *Product) Cost() decimal.Decimal {
	return p.cost
}

func (p *Product) CostSource() CostSource {
	return p.costSource
}

// RefreshFromPurchase applies the listing details of a new purchase order line.
// A non-blank title and a supplier replace the current ones; the cost hint is
// only taken when the product has no cost yet.
func (p *Product) RefreshFromPurchase(title string, supplierID *kernel.UUID, costHint decimal.Decimal) {
	if t := strings.TrimSpace(title); t != "" {
		p.title = t
	}
	if supplierID != nil {
		p.supplierID = supplierID
	}
	if !costHint.IsZero() && p.cost.IsZero() {
		p.cost = costHint
		p.costSource = CostSourcePurchaseHint
	}
}

// RecordCost overwrites the cost. There is no history; the last write wins.
func (p *Product) RecordCost(cost decimal.Decimal, source CostSource) error {
	if err := source.Validate(); err != nil {
		return err
	}
	p.cost = cost
	p.costSource = source
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	p.sku = sku
	return nil
}

func (p *Product) setASIN(asin string) error {
	asin = strings.TrimSpace(asin)
	if asin == "" {
		return errs.NewValueIsRequiredError("asin")
	}
	p.asin = asin
	return nil
}
