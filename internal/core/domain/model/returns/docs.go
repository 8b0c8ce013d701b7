// Package returns provides the after-sales aggregates: Return, Replacement and Refund.
//
// A Return references one order and one of its items. A return owns at most one
// Replacement and any number of Refund transactions. Status transitions are set
// unconditionally; a replacement does not require its return to be approved and refunds
// are not capped by the return's refund amount.
package returns
