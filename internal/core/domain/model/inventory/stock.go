package inventory

import (
	"errors"
	"math"
	"strings"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"
)

const StockAggregateType = "inventory"

var ErrStockIsNotConstructed = errors.New("Stock must be created via NewStock constructor")

// Quantities splits the units held for a product.
type Quantities struct {
	Available int
	Reserved  int
	Damaged   int
}

// Total is available + reserved + damaged.
func (q Quantities) Total() int {
	return q.Available + q.Reserved + q.Damaged
}

func (q Quantities) validate() error {
	return errors.Join(
		validateQuantity("available_quantity", q.Available),
		validateQuantity("reserved_quantity", q.Reserved),
		validateQuantity("damaged_quantity", q.Damaged),
	)
}

func validateQuantity(paramName string, quantity int) error {
	if quantity < 0 || quantity > math.MaxInt32 {
		return errs.NewValueIsOutOfRangeError(paramName, quantity, 0, math.MaxInt32)
	}
	return nil
}

// Stock is the inventory record of one product. A product has at most one.
type Stock struct {
	sku               kernel.ID
	quantities        Quantities
	warehouseLocation string
	procurementSLA    int
	lastUpdated       time.Time

	isConstructed bool
}

func NewStock(
	sku kernel.ID,
	quantities Quantities,
	warehouseLocation string,
	procurementSLA int,
	now time.Time,
) (*Stock, error) {
	return RestoreStock(sku, quantities, warehouseLocation, procurementSLA, now)
}

func RestoreStock(
	sku kernel.ID,
	quantities Quantities,
	warehouseLocation string,
	procurementSLA int,
	lastUpdated time.Time,
) (*Stock, error) {
	var slaErr error
	if procurementSLA < 0 || procurementSLA > math.MaxInt32 {
		slaErr = errs.NewValueIsOutOfRangeError("procurement_sla", procurementSLA, 0, math.MaxInt32)
	}
	if err := errors.Join(sku.Validate(), quantities.validate(), slaErr); err != nil {
		return nil, err
	}

	return &Stock{
		sku:               sku,
		quantities:        quantities,
		warehouseLocation: strings.TrimSpace(warehouseLocation),
		procurementSLA:    procurementSLA,
		lastUpdated:       lastUpdated,
		isConstructed:     true,
	}, nil
}

func (s *Stock) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStockIsNotConstructed
	}
	return nil
}

func (s *Stock) SKU() kernel.ID            { return s.sku }
func (s *Stock) Quantities() Quantities    { return s.quantities }
func (s *Stock) TotalQuantity() int        { return s.quantities.Total() }
func (s *Stock) WarehouseLocation() string { return s.warehouseLocation }
func (s *Stock) ProcurementSLA() int       { return s.procurementSLA }
func (s *Stock) LastUpdated() time.Time    { return s.lastUpdated }
func (s *Stock) AggregateType() string     { return StockAggregateType }

func (s *Stock) LifecycleStatus() string {
	if s.quantities.Available > 0 {
		return "IN_STOCK"
	}
	return "OUT_OF_STOCK"
}

// ApplyPatch writes only the quantities present in patch.
// On validation failure the stock is left unchanged.
func (s *Stock) ApplyPatch(patch StockPatch, now time.Time) error {
	if patch.IsEmpty() {
		return errs.NewValueIsRequiredError("stock quantities")
	}

	next := s.quantities
	assign := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	assign(&next.Available, patch.Available)
	assign(&next.Reserved, patch.Reserved)
	assign(&next.Damaged, patch.Damaged)

	if err := next.validate(); err != nil {
		return err
	}

	s.quantities = next
	s.lastUpdated = now
	return nil
}
