package inventory

import (
	"errors"
	"strings"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	ListingAggregateType = "listing"
	DefaultMarketplace   = "Flipkart"
)

var ErrListingIsNotConstructed = errors.New("Listing must be created via NewListing constructor")

// ListingTerms describes how a listing is sold. An empty Marketplace means DefaultMarketplace.
type ListingTerms struct {
	Marketplace     string
	FulfillmentType string
	ShippingCharges decimal.Decimal
	CODAvailable    bool
}

// Listing offers a product on a marketplace.
type Listing struct {
	id        kernel.ID
	sku       kernel.ID
	terms     ListingTerms
	status    ListingStatus
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewListing creates an ACTIVE listing.
func NewListing(id kernel.ID, sku kernel.ID, terms ListingTerms, now time.Time) (*Listing, error) {
	return RestoreListing(id, sku, terms, ListingActive, now, now)
}

func RestoreListing(
	id kernel.ID,
	sku kernel.ID,
	terms ListingTerms,
	status ListingStatus,
	createdAt time.Time,
	updatedAt time.Time,
) (*Listing, error) {
	terms.Marketplace = strings.TrimSpace(terms.Marketplace)
	if terms.Marketplace == "" {
		terms.Marketplace = DefaultMarketplace
	}
	terms.FulfillmentType = strings.TrimSpace(terms.FulfillmentType)

	var fulfillmentErr error
	if terms.FulfillmentType == "" {
		fulfillmentErr = errs.NewValueIsRequiredError("fulfillment_type")
	}
	if err := errors.Join(
		id.Validate(),
		sku.Validate(),
		status.Validate(),
		fulfillmentErr,
		kernel.ValidateAmount("shipping_charges", terms.ShippingCharges),
	); err != nil {
		return nil, err
	}

	return &Listing{
		id:            id,
		sku:           sku,
		terms:         terms,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

func (l *Listing) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrListingIsNotConstructed
	}
	return nil
}

func (l *Listing) ID() kernel.ID           { return l.id }
func (l *Listing) SKU() kernel.ID          { return l.sku }
func (l *Listing) Terms() ListingTerms     { return l.terms }
func (l *Listing) Status() ListingStatus   { return l.status }
func (l *Listing) IsActive() bool          { return l.status == ListingActive }
func (l *Listing) CreatedAt() time.Time    { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time    { return l.updatedAt }
func (l *Listing) AggregateType() string   { return ListingAggregateType }
func (l *Listing) LifecycleStatus() string { return l.status.String() }

// Activate moves the listing to ACTIVE from any status, DELISTED included.
func (l *Listing) Activate(now time.Time) {
	l.status = ListingActive
	l.updatedAt = now
}

// Deactivate moves the listing to INACTIVE from any status.
func (l *Listing) Deactivate(now time.Time) {
	l.status = ListingInactive
	l.updatedAt = now
}
