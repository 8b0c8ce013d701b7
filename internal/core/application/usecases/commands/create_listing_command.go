package commands

import (
	"errors"

	"sellerops/internal/core/domain/model/inventory"
	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/guard"
)

var ErrCreateListingCommandIsNotConstructed = errors.New(
	"CreateListingCommand must be created via NewCreateListingCommand constructor",
)

type CreateListingCommand struct { //nolint:recvcheck //using for validation
	listingID kernel.ID
	sku       kernel.ID
	terms     inventory.ListingTerms

	guard guard.ConstructorGuard
}

func NewCreateListingCommand(listingID, sku string, terms inventory.ListingTerms) (CreateListingCommand, error) {
	id, idErr := parseID("listing_id", listingID)
	productSKU, skuErr := parseID("sku", sku)
	if err := errors.Join(idErr, skuErr); err != nil {
		return CreateListingCommand{}, err
	}

	return CreateListingCommand{
		listingID: id,
		sku:       productSKU,
		terms:     terms,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateListingCommand) Validate() error {
	return c.guard.Validate(ErrCreateListingCommandIsNotConstructed)
}

func (c CreateListingCommand) ListingID() kernel.ID          { return c.listingID }
func (c CreateListingCommand) SKU() kernel.ID                { return c.sku }
func (c CreateListingCommand) Terms() inventory.ListingTerms { return c.terms }
