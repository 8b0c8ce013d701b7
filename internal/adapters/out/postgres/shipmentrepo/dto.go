// Package shipmentrepo persists shipments with their tracking log and shipping label.
package shipmentrepo

import (
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

type ShipmentDTO struct {
	ShipmentID           string          `gorm:"column:shipment_id;primaryKey;size:100"`
	OrderID              string          `gorm:"column:order_id;size:100;index;not null"`
	TrackingNumber       string          `gorm:"column:tracking_number;size:100;uniqueIndex;not null"`
	CourierPartner       string          `gorm:"column:courier_partner;not null"`
	ShipmentDate         time.Time       `gorm:"column:shipment_date;not null"`
	ExpectedDeliveryDate time.Time       `gorm:"column:expected_delivery_date;not null"`
	ActualDeliveryDate   *time.Time      `gorm:"column:actual_delivery_date"`
	PickupAddress        string          `gorm:"column:pickup_address;not null"`
	DeliveryAddress      string          `gorm:"column:delivery_address;not null"`
	Weight               decimal.Decimal `gorm:"column:weight;type:numeric(10,3);not null"`
	Dimensions           string          `gorm:"column:dimensions"`
	ShippingCharges      decimal.Decimal `gorm:"column:shipping_charges;type:numeric(12,2);not null"`
	Status               string          `gorm:"column:status;size:32;not null"`
	CreatedAt            time.Time       `gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt            time.Time       `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

type TrackingEventDTO struct {
	EventID     string    `gorm:"column:event_id;primaryKey;size:100"`
	ShipmentID  string    `gorm:"column:shipment_id;size:100;index;not null"`
	EventDate   time.Time `gorm:"column:event_date;not null"`
	Location    string    `gorm:"column:location;not null"`
	Description string    `gorm:"column:description;not null"`
	StatusCode  string    `gorm:"column:status_code;size:32;not null"`
}

func (TrackingEventDTO) TableName() string {
	return "shipment_tracking_events"
}

// LabelDTO is keyed by shipment_id, which limits a shipment to one label.
type LabelDTO struct {
	ShipmentID  string    `gorm:"column:shipment_id;primaryKey;size:100"`
	LabelURL    string    `gorm:"column:label_url;not null"`
	LabelFormat string    `gorm:"column:label_format;size:16;not null"`
	Barcode     string    `gorm:"column:barcode;not null"`
	GeneratedAt time.Time `gorm:"column:generated_at;not null"`
}

func (LabelDTO) TableName() string {
	return "shipping_labels"
}

// CourierPartnerDTO is keyed by partner_code; partner_name is unique as well.
type CourierPartnerDTO struct {
	PartnerCode   string    `gorm:"column:partner_code;primaryKey;size:100"`
	PartnerName   string    `gorm:"column:partner_name;size:100;uniqueIndex;not null"`
	ContactNumber string    `gorm:"column:contact_number;size:20;not null"`
	Email         string    `gorm:"column:email;not null"`
	ServiceType   string    `gorm:"column:service_type;size:50;not null"`
	IsActive      bool      `gorm:"column:is_active;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (CourierPartnerDTO) TableName() string {
	return "courier_partners"
}

func Models() []any {
	return []any{&ShipmentDTO{}, &TrackingEventDTO{}, &LabelDTO{}, &CourierPartnerDTO{}}
}

func partnerFromDomain(p *shipment.CourierPartner) CourierPartnerDTO {
	contact := p.Contact()
	return CourierPartnerDTO{
		PartnerCode:   p.Code().String(),
		PartnerName:   contact.Name,
		ContactNumber: contact.ContactNumber,
		Email:         contact.Email,
		ServiceType:   contact.ServiceType,
		IsActive:      p.IsActive(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func partnerToDomain(dto CourierPartnerDTO) (*shipment.CourierPartner, error) {
	code, err := kernel.NewID(dto.PartnerCode)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreCourierPartner(code, shipment.CourierContact{
		Name:          dto.PartnerName,
		ContactNumber: dto.ContactNumber,
		Email:         dto.Email,
		ServiceType:   dto.ServiceType,
	}, dto.IsActive, dto.CreatedAt, dto.UpdatedAt)
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	details := s.Details()
	return ShipmentDTO{
		ShipmentID:           s.ID().String(),
		OrderID:              s.OrderID().String(),
		TrackingNumber:       s.TrackingNumber(),
		CourierPartner:       details.CourierPartner,
		ShipmentDate:         details.ShipmentDate,
		ExpectedDeliveryDate: details.ExpectedDeliveryDate,
		ActualDeliveryDate:   s.ActualDeliveryDate(),
		PickupAddress:        details.PickupAddress.String(),
		DeliveryAddress:      details.DeliveryAddress.String(),
		Weight:               details.Weight,
		Dimensions:           details.Dimensions,
		ShippingCharges:      details.ShippingCharges,
		Status:               s.Status().String(),
		CreatedAt:            s.CreatedAt(),
		UpdatedAt:            s.UpdatedAt(),
	}
}

func eventFromDomain(e shipment.TrackingEvent) TrackingEventDTO {
	return TrackingEventDTO{
		EventID:     e.ID().String(),
		ShipmentID:  e.ShipmentID().String(),
		EventDate:   e.EventDate(),
		Location:    e.Location(),
		Description: e.Description(),
		StatusCode:  e.StatusCode(),
	}
}

func labelFromDomain(shipmentID string, l *shipment.Label) LabelDTO {
	return LabelDTO{
		ShipmentID:  shipmentID,
		LabelURL:    l.URL(),
		LabelFormat: l.Format(),
		Barcode:     l.Barcode(),
		GeneratedAt: l.GeneratedAt(),
	}
}

// toDomain expects eventDTOs in chronological order.
func toDomain(dto ShipmentDTO, eventDTOs []TrackingEventDTO, labelDTO *LabelDTO) (*shipment.Shipment, error) {
	id, err := kernel.NewID(dto.ShipmentID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.NewID(dto.OrderID)
	if err != nil {
		return nil, err
	}
	pickup, err := kernel.NewAddress(dto.PickupAddress)
	if err != nil {
		return nil, err
	}
	delivery, err := kernel.NewAddress(dto.DeliveryAddress)
	if err != nil {
		return nil, err
	}
	status, err := shipment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	events := make([]shipment.TrackingEvent, 0, len(eventDTOs))
	for _, e := range eventDTOs {
		eventID, idErr := kernel.NewID(e.EventID)
		if idErr != nil {
			return nil, idErr
		}
		event, eventErr := shipment.RestoreTrackingEvent(eventID, id, e.EventDate, e.Location, e.Description, e.StatusCode)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	var label *shipment.Label
	if labelDTO != nil {
		restored, labelErr := shipment.NewLabel(labelDTO.LabelURL, labelDTO.LabelFormat, labelDTO.Barcode, labelDTO.GeneratedAt)
		if labelErr != nil {
			return nil, labelErr
		}
		label = &restored
	}

	return shipment.RestoreShipment(
		id,
		orderID,
		dto.TrackingNumber,
		shipment.Details{
			CourierPartner:       dto.CourierPartner,
			ShipmentDate:         dto.ShipmentDate,
			ExpectedDeliveryDate: dto.ExpectedDeliveryDate,
			PickupAddress:        pickup,
			DeliveryAddress:      delivery,
			Weight:               dto.Weight,
			Dimensions:           dto.Dimensions,
			ShippingCharges:      dto.ShippingCharges,
		},
		status,
		dto.ActualDeliveryDate,
		events,
		label,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
