package inventory

import (
	"errors"
	"strings"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const ProductAggregateType = "product"

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// ProductDetails is the descriptive part of a product. Description and Subcategory are optional.
type ProductDetails struct {
	FSN           string
	Name          string
	Description   string
	Brand         string
	Category      string
	Subcategory   string
	MRP           decimal.Decimal
	HSNCode       string
	TaxPercentage decimal.Decimal
}

func (d ProductDetails) normalize() ProductDetails {
	d.FSN = strings.TrimSpace(d.FSN)
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	d.Brand = strings.TrimSpace(d.Brand)
	d.Category = strings.TrimSpace(d.Category)
	d.Subcategory = strings.TrimSpace(d.Subcategory)
	d.HSNCode = strings.TrimSpace(d.HSNCode)
	return d
}

func (d ProductDetails) validate() error {
	required := func(paramName, value string) error {
		if value == "" {
			return errs.NewValueIsRequiredError(paramName)
		}
		return nil
	}
	return errors.Join(
		required("fsn", d.FSN),
		required("product_name", d.Name),
		required("brand", d.Brand),
		required("category", d.Category),
		required("hsn_code", d.HSNCode),
		kernel.ValidateAmount("mrp", d.MRP),
		kernel.ValidatePercentage("tax_percentage", d.TaxPercentage),
	)
}

// Product is a catalogue entry identified by its sku.
type Product struct {
	sku       kernel.ID
	details   ProductDetails
	isActive  bool
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewProduct creates an active product.
func NewProduct(sku kernel.ID, details ProductDetails, now time.Time) (*Product, error) {
	return RestoreProduct(sku, details, true, now, now)
}

func RestoreProduct(
	sku kernel.ID,
	details ProductDetails,
	isActive bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Product, error) {
	details = details.normalize()
	if err := errors.Join(sku.Validate(), details.validate()); err != nil {
		return nil, err
	}

	return &Product{
		sku:           sku,
		details:       details,
		isActive:      isActive,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) SKU() kernel.ID          { return p.sku }
func (p *Product) Details() ProductDetails { return p.details }
func (p *Product) IsActive() bool          { return p.isActive }
func (p *Product) CreatedAt() time.Time    { return p.createdAt }
func (p *Product) UpdatedAt() time.Time    { return p.updatedAt }
func (p *Product) AggregateType() string   { return ProductAggregateType }

func (p *Product) LifecycleStatus() string {
	if p.isActive {
		return "ACTIVE"
	}
	return "INACTIVE"
}

func (p *Product) Activate(now time.Time) {
	p.isActive = true
	p.updatedAt = now
}

func (p *Product) Deactivate(now time.Time) {
	p.isActive = false
	p.updatedAt = now
}
