package shipment

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/errs"
)

const CourierPartnerAggregateType = "courier_partner"

var ErrCourierPartnerIsNotConstructed = errors.New("CourierPartner must be created via NewCourierPartner constructor")

// CourierContact is the directory entry of a courier partner.
type CourierContact struct {
	Name          string
	ContactNumber string
	Email         string
	ServiceType   string
}

func (c CourierContact) normalize() CourierContact {
	c.Name = strings.TrimSpace(c.Name)
	c.ContactNumber = strings.TrimSpace(c.ContactNumber)
	c.Email = strings.TrimSpace(c.Email)
	c.ServiceType = strings.TrimSpace(c.ServiceType)
	return c
}

func (c CourierContact) validate() error {
	var nameErr, numberErr, emailErr, serviceErr error
	if c.Name == "" {
		nameErr = errs.NewValueIsRequiredError("partner_name")
	}
	if c.ContactNumber == "" {
		numberErr = errs.NewValueIsRequiredError("contact_number")
	}
	if c.ServiceType == "" {
		serviceErr = errs.NewValueIsRequiredError("service_type")
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		emailErr = errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	return errors.Join(nameErr, numberErr, emailErr, serviceErr)
}

// CourierPartner is a carrier the seller can hand shipments to, identified by its partner code.
type CourierPartner struct {
	code      kernel.ID
	contact   CourierContact
	isActive  bool
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewCourierPartner creates an active partner.
func NewCourierPartner(code kernel.ID, contact CourierContact, now time.Time) (*CourierPartner, error) {
	return RestoreCourierPartner(code, contact, true, now, now)
}

func RestoreCourierPartner(
	code kernel.ID,
	contact CourierContact,
	isActive bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*CourierPartner, error) {
	contact = contact.normalize()
	if err := errors.Join(code.Validate(), contact.validate()); err != nil {
		return nil, err
	}

	return &CourierPartner{
		code:          code,
		contact:       contact,
		isActive:      isActive,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

func (c *CourierPartner) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierPartnerIsNotConstructed
	}
	return nil
}

func (c *CourierPartner) Code() kernel.ID         { return c.code }
func (c *CourierPartner) Contact() CourierContact { return c.contact }
func (c *CourierPartner) IsActive() bool          { return c.isActive }
func (c *CourierPartner) CreatedAt() time.Time    { return c.createdAt }
func (c *CourierPartner) UpdatedAt() time.Time    { return c.updatedAt }
func (c *CourierPartner) AggregateType() string   { return CourierPartnerAggregateType }

func (c *CourierPartner) LifecycleStatus() string {
	if c.isActive {
		return "ACTIVE"
	}
	return "INACTIVE"
}

func (c *CourierPartner) Activate(now time.Time) {
	c.isActive = true
	c.updatedAt = now
}

func (c *CourierPartner) Deactivate(now time.Time) {
	c.isActive = false
	c.updatedAt = now
}
