// Package pricing provides the Price aggregate and the pure calculator functions used on
// every selling-price change.
//
//	discount% = (listing - selling) / listing × 100   (unchanged when listing is zero)
//	margin    = selling - cost - selling × commission% / 100 - shipping fee
//
// All arithmetic is decimal. The margin is not floored and may be negative.
package pricing
