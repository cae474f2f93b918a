package queries

import (
	"context"

	"cogs/internal/core/domain/model/kernel"
	"cogs/internal/core/domain/model/purchaseorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListPurchaseOrdersQueryHandler reads purchase order summaries with direct SQL.
type ListPurchaseOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListPurchaseOrdersQueryHandler(db *gorm.DB) ListPurchaseOrdersQueryHandler {
	return ListPurchaseOrdersQueryHandler{db: db}
}

// Handle returns all orders sorted by order date, then id, both descending.
// Ids are time ordered, so orders from the same day list newest first.
func (h ListPurchaseOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListPurchaseOrdersQuery,
) ([]PurchaseOrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]PurchaseOrderSummary, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			po.id,
			po.name,
			po.invoice_number,
			COALESCE(s.name, '') AS supplier_name,
			po.order_date,
			po.status,
			(SELECT COUNT(*) FROM purchase_order_items i WHERE i.purchase_order_id = po.id) AS item_count,
			po.subtotal,
			po.sales_tax,
			po.shipping,
			po.discount,
			po.labeling_total,
			po.total_expense
		FROM purchase_orders po
		LEFT JOIN suppliers s ON s.id = po.supplier_id
		ORDER BY po.order_date DESC, po.id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row PurchaseOrderSummary
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&row.Name,
			&row.InvoiceNumber,
			&row.SupplierName,
			&row.OrderDate,
			&status,
			&row.ItemCount,
			&row.Subtotal,
			&row.SalesTax,
			&row.Shipping,
			&row.Discount,
			&row.LabelingTotal,
			&row.TotalExpense,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromGoogle(id)
		if idErr != nil {
			return nil, idErr
		}
		row.ID = orderID
		row.Status = purchaseorder.Status(status)
		row.OrderDate = row.OrderDate.UTC()

		orders = append(orders, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
