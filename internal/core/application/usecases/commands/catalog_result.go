package commands

import (
	"time"

	"sellerops/internal/core/domain/model/inventory"
)

// RecordResult identifies a written record together with its resulting status.
type RecordResult struct {
	ID       string
	Status   string
	IsActive bool
}

// StockResult is the stock of a product after a write.
type StockResult struct {
	SKU               string
	Available         int
	Reserved          int
	Damaged           int
	Total             int
	WarehouseLocation string
	ProcurementSLA    int
	LastUpdated       time.Time
}

func newStockResult(s *inventory.Stock) StockResult {
	q := s.Quantities()
	return StockResult{
		SKU:               s.SKU().String(),
		Available:         q.Available,
		Reserved:          q.Reserved,
		Damaged:           q.Damaged,
		Total:             s.TotalQuantity(),
		WarehouseLocation: s.WarehouseLocation(),
		ProcurementSLA:    s.ProcurementSLA(),
		LastUpdated:       s.LastUpdated(),
	}
}
