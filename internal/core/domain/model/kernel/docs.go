// Package kernel provides core domain primitives shared by the purchase order,
// product and supplier aggregates.
//
// The package includes:
//   - UUID: a value object for identifiers. New identifiers are UUIDv7, so ordering
//     by identifier follows creation order.
//   - ParseOrderDate: the accepted textual formats for a purchase order date.
package kernel
