package inventoryrepo

import (
	"time"

	"sellerops/internal/core/domain/model/inventory"
	"sellerops/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ProductDTO is a row of the products table. fsn is unique across products.
type ProductDTO struct {
	SKU           string          `gorm:"column:sku;primaryKey;size:100"`
	FSN           string          `gorm:"column:fsn;size:100;uniqueIndex;not null"`
	ProductName   string          `gorm:"column:product_name;not null"`
	Description   string          `gorm:"column:description;not null;default:''"`
	Brand         string          `gorm:"column:brand;size:100;not null"`
	Category      string          `gorm:"column:category;size:100;not null"`
	Subcategory   string          `gorm:"column:subcategory;size:100;not null;default:''"`
	MRP           decimal.Decimal `gorm:"column:mrp;type:numeric(12,2);not null"`
	HSNCode       string          `gorm:"column:hsn_code;size:20;not null"`
	TaxPercentage decimal.Decimal `gorm:"column:tax_percentage;type:numeric(5,2);not null"`
	IsActive      bool            `gorm:"column:is_active;not null"`
	CreatedAt     time.Time       `gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;not null;autoUpdateTime:false"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// StockDTO is a row of the inventory table, one per product.
type StockDTO struct {
	SKU               string    `gorm:"column:sku;primaryKey;size:100"`
	AvailableQuantity int       `gorm:"column:available_quantity;not null"`
	ReservedQuantity  int       `gorm:"column:reserved_quantity;not null"`
	DamagedQuantity   int       `gorm:"column:damaged_quantity;not null"`
	WarehouseLocation string    `gorm:"column:warehouse_location;size:100;not null;default:''"`
	ProcurementSLA    int       `gorm:"column:procurement_sla;not null"`
	LastUpdated       time.Time `gorm:"column:last_updated;not null"`
}

func (StockDTO) TableName() string {
	return "inventory"
}

type ListingDTO struct {
	ListingID       string          `gorm:"column:listing_id;primaryKey;size:100"`
	SKU             string          `gorm:"column:sku;size:100;index;not null"`
	Marketplace     string          `gorm:"column:marketplace;size:50;not null"`
	ListingStatus   string          `gorm:"column:listing_status;size:20;not null"`
	FulfillmentType string          `gorm:"column:fulfillment_type;size:50;not null"`
	ShippingCharges decimal.Decimal `gorm:"column:shipping_charges;type:numeric(12,2);not null"`
	IsCODAvailable  bool            `gorm:"column:is_cod_available;not null"`
	CreatedAt       time.Time       `gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;not null;autoUpdateTime:false"`
}

func (ListingDTO) TableName() string {
	return "listings"
}

func Models() []any {
	return []any{&ProductDTO{}, &StockDTO{}, &ListingDTO{}}
}

func productFromDomain(p *inventory.Product) ProductDTO {
	d := p.Details()
	return ProductDTO{
		SKU:           p.SKU().String(),
		FSN:           d.FSN,
		ProductName:   d.Name,
		Description:   d.Description,
		Brand:         d.Brand,
		Category:      d.Category,
		Subcategory:   d.Subcategory,
		MRP:           d.MRP,
		HSNCode:       d.HSNCode,
		TaxPercentage: d.TaxPercentage,
		IsActive:      p.IsActive(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func productToDomain(dto ProductDTO) (*inventory.Product, error) {
	sku, err := kernel.NewID(dto.SKU)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreProduct(sku, inventory.ProductDetails{
		FSN:           dto.FSN,
		Name:          dto.ProductName,
		Description:   dto.Description,
		Brand:         dto.Brand,
		Category:      dto.Category,
		Subcategory:   dto.Subcategory,
		MRP:           dto.MRP,
		HSNCode:       dto.HSNCode,
		TaxPercentage: dto.TaxPercentage,
	}, dto.IsActive, dto.CreatedAt, dto.UpdatedAt)
}

func stockFromDomain(s *inventory.Stock) StockDTO {
	q := s.Quantities()
	return StockDTO{
		SKU:               s.SKU().String(),
		AvailableQuantity: q.Available,
		ReservedQuantity:  q.Reserved,
		DamagedQuantity:   q.Damaged,
		WarehouseLocation: s.WarehouseLocation(),
		ProcurementSLA:    s.ProcurementSLA(),
		LastUpdated:       s.LastUpdated(),
	}
}

func stockToDomain(dto StockDTO) (*inventory.Stock, error) {
	sku, err := kernel.NewID(dto.SKU)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreStock(sku, inventory.Quantities{
		Available: dto.AvailableQuantity,
		Reserved:  dto.ReservedQuantity,
		Damaged:   dto.DamagedQuantity,
	}, dto.WarehouseLocation, dto.ProcurementSLA, dto.LastUpdated)
}

func listingFromDomain(l *inventory.Listing) ListingDTO {
	terms := l.Terms()
	return ListingDTO{
		ListingID:       l.ID().String(),
		SKU:             l.SKU().String(),
		Marketplace:     terms.Marketplace,
		ListingStatus:   l.Status().String(),
		FulfillmentType: terms.FulfillmentType,
		ShippingCharges: terms.ShippingCharges,
		IsCODAvailable:  terms.CODAvailable,
		CreatedAt:       l.CreatedAt(),
		UpdatedAt:       l.UpdatedAt(),
	}
}

func listingToDomain(dto ListingDTO) (*inventory.Listing, error) {
	id, err := kernel.NewID(dto.ListingID)
	if err != nil {
		return nil, err
	}
	sku, err := kernel.NewID(dto.SKU)
	if err != nil {
		return nil, err
	}
	status, err := inventory.ParseListingStatus(dto.ListingStatus)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreListing(id, sku, inventory.ListingTerms{
		Marketplace:     dto.Marketplace,
		FulfillmentType: dto.FulfillmentType,
		ShippingCharges: dto.ShippingCharges,
		CODAvailable:    dto.IsCODAvailable,
	}, status, dto.CreatedAt, dto.UpdatedAt)
}
