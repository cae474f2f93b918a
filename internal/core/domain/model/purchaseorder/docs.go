// Package purchaseorder provides the PurchaseOrder aggregate: one wholesale order placed
// with a supplier, its fixed list of line items and the labeling costs attached to them.
//
// The package includes:
//   - PurchaseOrder: the aggregate root holding the order-level charge pools and derived totals
//   - Item: one ordered line with its optional item-level charge overrides and derived unit COGS
//   - LabelingCost: a prep or labeling charge for the full quantity of one item
//   - Status: the closed NEW/CLOSED status set
//
// Key business rules:
//   - A purchase order must have a name; every item must have an ASIN, a title,
//     a positive quantity and a non-negative purchase price
//   - The item list is fixed when the order is created
//   - Subtotal is computed once at creation from quantity and purchase price
//   - Unit COGS, extended totals, labeling total and total expense are derived
//     values written only through ApplyAllocation
package purchaseorder
