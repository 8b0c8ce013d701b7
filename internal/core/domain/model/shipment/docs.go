// Package shipment provides the Shipment aggregate: the physical movement of an order,
// its append-only tracking log and its shipping label.
//
// Dispatching and delivering a shipment always append a new tracking event, even when
// the shipment is already in the target status. Events are never rewritten or removed.
package shipment
