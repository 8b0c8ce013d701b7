// Package kernel provides the shared domain primitives used by every seller-operations
// aggregate.
//
// The package includes:
//   - ID: a natural, display-facing string identifier (order_id, shipment_id, ...)
//   - Clock: the time source injected into command handlers and jobs
//   - Money and percentage checks built on shopspring/decimal
//   - Aggregate and LifecycleEvent: the contract the Unit of Work uses to announce
//     status changes after a successful commit
//
// Identifiers are referenced across entities by value, so they are never opaque
// handles and never regenerated once stored.
package kernel
