// Package order provides the Order aggregate of the seller-operations service.
//
// The package includes:
//   - Order: the aggregate root holding customer, payment and item data plus its status
//   - Item: an immutable order line (sku, quantity, unit and total price)
//   - Cancellation: the record created when an order is cancelled
//   - Status and CancelledBy: closed enumerations persisted as text
//
// Key business rules:
//   - Status changes are permissive: any status may move to READY_TO_DISPATCH or CANCELLED
//   - Cancelling creates exactly one cancellation with id "CANC-<order_id>"; a second
//     cancel of the same order is rejected with an already-exists error
//   - The refund amount of a cancellation defaults to the order total, the actor to SELLER
//   - Every status change refreshes the updated-at timestamp
package order
