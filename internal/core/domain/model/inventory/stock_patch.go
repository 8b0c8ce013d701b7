package inventory

// StockPatch carries the quantities of a partial stock update. Nil fields are left as they are.
type StockPatch struct {
	Available *int
	Reserved  *int
	Damaged   *int
}

// IsEmpty reports whether the patch changes nothing.
func (p StockPatch) IsEmpty() bool {
	return p.Available == nil && p.Reserved == nil && p.Damaged == nil
}
