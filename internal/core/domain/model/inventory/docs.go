// Package inventory holds the catalogue side of the seller account: products keyed by sku,
// the stock record of each product and the marketplace listings that sell it.
//
// Stock quantities are never negative. A stock patch writes only the quantities it carries
// and is applied atomically: either every present field is accepted or nothing changes.
package inventory
