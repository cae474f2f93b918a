// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for the HTTP adapter and reports.
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
	ErrListPurchaseOrdersQueryIsNotConstructed = errors.New(
		"ListPurchaseOrdersQuery must be created via NewListPurchaseOrdersQuery constructor",
	)
)

// ListPurchaseOrdersQuery retrieves a summary row for every purchase order,
// newest order date first.
//
// Example:
//
//	query := NewListPurchaseOrdersQuery()
//	handler := NewListPurchaseOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list purchase orders: %w", err)
//	}
//
//	for _, po := range orders {
//	    fmt.Printf("%s %s %s\n", po.Name, po.SupplierName, po.TotalExpense)
//	}
type ListPurchaseOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListPurchaseOrdersQuery() ListPurchaseOrdersQuery {
	return ListPurchaseOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListPurchaseOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListPurchaseOrdersQueryIsNotConstructed)
}

// PurchaseOrderSummary is one row of the purchase order list. SupplierName is
// empty for orders without a supplier.
type PurchaseOrderSummary struct {
	ID            kernel.UUID
	Name          string
	InvoiceNumber string
	SupplierName  string
	OrderDate     time.Time
	Status        purchaseorder.Status
	ItemCount     int
	Subtotal      decimal.Decimal
	SalesTax      decimal.Decimal
	Shipping      decimal.Decimal
	Discount      decimal.Decimal
	LabelingTotal decimal.Decimal
	TotalExpense  decimal.Decimal
}
