// Package services provides domain services that work across the purchase order
// aggregate and its entities.
//
// The package includes:
//   - Allocate: a pure function that spreads order-level charges over items
//   - CostAllocator: applies an allocation to a PurchaseOrder aggregate
//
// Allocation pools are transient. They are recomputed from the stored order
// charges and item overrides on every run and are never persisted.
package services
