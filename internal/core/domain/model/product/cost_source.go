package product

import (
	"fmt"

	"cogs/internal/pkg/errs"
)

// CostSource records which pipeline last wrote a product's cost.
// Writes stay last-writer-wins; the tag makes the winner visible.
type CostSource int

const (
	// CostSourceNone means no cost has been recorded yet.
	CostSourceNone CostSource = iota
	// CostSourcePurchaseHint is the raw purchase price seen when the product was first referenced.
	CostSourcePurchaseHint
	// CostSourcePurchaseOrder is the allocated unit COGS from the latest purchase order recalculation.
	CostSourcePurchaseOrder
	// CostSourceCatalogSync is a cost written by the catalog ingestion pipeline.
	CostSourceCatalogSync
)

var costSourceStrings = map[CostSource]string{
	CostSourceNone:          "NONE",
	CostSourcePurchaseHint:  "PURCHASE_HINT",
	CostSourcePurchaseOrder: "PURCHASE_ORDER",
	CostSourceCatalogSync:   "CATALOG_SYNC",
}

func (s CostSource) String() string {
	if str, ok := costSourceStrings[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func (s CostSource) Validate() error {
	if _, ok := costSourceStrings[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("cost source", fmt.Errorf("%d is not a valid cost source", s))
	}
	return nil
}

// ParseCostSource converts the persisted name back to a CostSource.
func ParseCostSource(s string) (CostSource, error) {
	for source, str := range costSourceStrings {
		if str == s {
			return source, nil
		}
	}
	return CostSourceNone, errs.NewValueIsInvalidErrorWithCause("cost source", fmt.Errorf("%q is not a valid cost source", s))
}
