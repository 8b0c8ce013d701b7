package http

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type OrderItemRequest struct {
	SKU         string           `json:"sku"          validate:"required"`
	ProductName string           `json:"product_name" validate:"required"`
	Quantity    int              `json:"quantity"     validate:"required,gt=0"`
	UnitPrice   *decimal.Decimal `json:"unit_price"   validate:"required"`
	TotalPrice  *decimal.Decimal `json:"total_price,omitempty"`
	HSNCode     string           `json:"hsn_code,omitempty"`
}

type CreateOrderRequest struct {
	OrderID         string             `json:"order_id"         validate:"required"`
	OrderDate       time.Time          `json:"order_date"       validate:"required"`
	CustomerName    string             `json:"customer_name"    validate:"required"`
	CustomerEmail   string             `json:"customer_email"   validate:"omitempty,email"`
	CustomerPhone   string             `json:"customer_phone"`
	ShippingAddress string             `json:"shipping_address" validate:"required"`
	BillingAddress  string             `json:"billing_address"`
	PaymentMethod   string             `json:"payment_method"   validate:"required"`
	TotalAmount     *decimal.Decimal   `json:"total_amount,omitempty"`
	Items           []OrderItemRequest `json:"items"            validate:"required,min=1,dive"`
}

type CancelOrderRequest struct {
	Reason       string           `json:"reason"       validate:"required"`
	CancelledBy  string           `json:"cancelled_by"`
	RefundAmount *decimal.Decimal `json:"refund_amount,omitempty"`
}

type CreateShipmentRequest struct {
	ShipmentID           string           `json:"shipment_id"            validate:"required"`
	OrderID              string           `json:"order_id"               validate:"required"`
	TrackingNumber       string           `json:"tracking_number"        validate:"required"`
	CourierPartner       string           `json:"courier_partner"        validate:"required"`
	ShipmentDate         time.Time        `json:"shipment_date"          validate:"required"`
	ExpectedDeliveryDate time.Time        `json:"expected_delivery_date" validate:"required"`
	PickupAddress        string           `json:"pickup_address"         validate:"required"`
	DeliveryAddress      string           `json:"delivery_address"       validate:"required"`
	Weight               *decimal.Decimal `json:"weight"                 validate:"required"`
	Dimensions           string           `json:"dimensions"`
	ShippingCharges      *decimal.Decimal `json:"shipping_charges"       validate:"required"`
}

// LocationRequest is the optional body of shipment dispatch and deliver.
type LocationRequest struct {
	Location string `json:"location"`
}

type GenerateLabelRequest struct {
	LabelURL string `json:"label_url" validate:"required,url"`
	Format   string `json:"format"`
	Barcode  string `json:"barcode"`
}

type CreateReturnRequest struct {
	ReturnID      string           `json:"return_id"      validate:"required"`
	OrderID       string           `json:"order_id"       validate:"required"`
	OrderItemID   int64            `json:"order_item_id"  validate:"required,gt=0"`
	Reason        string           `json:"reason"         validate:"required"`
	Description   string           `json:"description"`
	RefundAmount  *decimal.Decimal `json:"refund_amount"  validate:"required"`
	PickupAddress string           `json:"pickup_address" validate:"required"`
}

type CreateReplacementRequest struct {
	ReplacementID   string `json:"replacement_id"   validate:"required"`
	ReturnID        string `json:"return_id"        validate:"required"`
	DeliveryAddress string `json:"delivery_address" validate:"required"`
}

// TrackingIDRequest carries the courier tracking id of a dispatched replacement.
// A missing tracking id is reported by the command as a required value.
type TrackingIDRequest struct {
	TrackingID string `json:"tracking_id"`
}

type CreateRefundRequest struct {
	TransactionID string           `json:"transaction_id" validate:"required"`
	ReturnID      string           `json:"return_id"      validate:"required"`
	RefundAmount  *decimal.Decimal `json:"refund_amount"  validate:"required"`
	RefundMethod  string           `json:"refund_method"  validate:"required"`
}

type CreatePriceRequest struct {
	PriceID              string           `json:"price_id"      validate:"required"`
	SKU                  string           `json:"sku"           validate:"required"`
	ListingPrice         *decimal.Decimal `json:"listing_price" validate:"required"`
	SellingPrice         *decimal.Decimal `json:"selling_price" validate:"required"`
	CostPrice            *decimal.Decimal `json:"cost_price"`
	CommissionPercentage *decimal.Decimal `json:"commission_percentage"`
	ShippingFee          *decimal.Decimal `json:"shipping_fee"`
}

// PatchPriceRequest applies only the fields present in the body.
type PatchPriceRequest struct {
	ListingPrice         *decimal.Decimal `json:"listing_price,omitempty"`
	SellingPrice         *decimal.Decimal `json:"selling_price,omitempty"`
	DiscountPercentage   *decimal.Decimal `json:"discount_percentage,omitempty"`
	CostPrice            *decimal.Decimal `json:"cost_price,omitempty"`
	CommissionPercentage *decimal.Decimal `json:"commission_percentage,omitempty"`
	ShippingFee          *decimal.Decimal `json:"shipping_fee,omitempty"`
}

type UpdateSellingPriceRequest struct {
	SellingPrice *decimal.Decimal `json:"selling_price"`
}

type GenerateReportRequest struct {
	ReportType  string `json:"report_type"  validate:"required"`
	ReportName  string `json:"report_name"`
	Format      string `json:"format"       validate:"required"`
	RequestedBy string `json:"requested_by" validate:"required"`
}

type CompleteReportRequest struct {
	FileURL  string `json:"file_url"  validate:"required,url"`
	FileSize int64  `json:"file_size" validate:"gte=0"`
}

type CreateScheduledReportRequest struct {
	ScheduleID      string    `json:"schedule_id"      validate:"required"`
	ReportType      string    `json:"report_type"      validate:"required"`
	ReportName      string    `json:"report_name"      validate:"required"`
	Format          string    `json:"format"           validate:"required"`
	Frequency       string    `json:"frequency"        validate:"required"`
	NextRunDate     time.Time `json:"next_run_date"    validate:"required"`
	EmailRecipients []string  `json:"email_recipients" validate:"omitempty,dive,email"`
}

type CreateProductRequest struct {
	SKU           string           `json:"sku"            validate:"required"`
	FSN           string           `json:"fsn"            validate:"required"`
	ProductName   string           `json:"product_name"   validate:"required"`
	Description   string           `json:"description"`
	Brand         string           `json:"brand"          validate:"required"`
	Category      string           `json:"category"       validate:"required"`
	Subcategory   string           `json:"subcategory"`
	MRP           *decimal.Decimal `json:"mrp"            validate:"required"`
	HSNCode       string           `json:"hsn_code"       validate:"required"`
	TaxPercentage *decimal.Decimal `json:"tax_percentage"`
}

type CreateStockRequest struct {
	SKU               string `json:"sku"                validate:"required"`
	AvailableQuantity int    `json:"available_quantity" validate:"gte=0"`
	ReservedQuantity  int    `json:"reserved_quantity"  validate:"gte=0"`
	DamagedQuantity   int    `json:"damaged_quantity"   validate:"gte=0"`
	WarehouseLocation string `json:"warehouse_location"`
	ProcurementSLA    int    `json:"procurement_sla"    validate:"gte=0"`
}

// UpdateStockRequest applies only the quantities present in the body.
type UpdateStockRequest struct {
	AvailableQuantity *int `json:"available_quantity,omitempty"`
	ReservedQuantity  *int `json:"reserved_quantity,omitempty"`
	DamagedQuantity   *int `json:"damaged_quantity,omitempty"`
}

type CreateListingRequest struct {
	ListingID       string           `json:"listing_id"       validate:"required"`
	SKU             string           `json:"sku"              validate:"required"`
	Marketplace     string           `json:"marketplace"`
	FulfillmentType string           `json:"fulfillment_type" validate:"required"`
	ShippingCharges *decimal.Decimal `json:"shipping_charges"`
	CODAvailable    bool             `json:"cod_available"`
}

type CreateCourierPartnerRequest struct {
	PartnerCode   string `json:"partner_code"   validate:"required"`
	PartnerName   string `json:"partner_name"   validate:"required"`
	ContactNumber string `json:"contact_number" validate:"required"`
	Email         string `json:"email"          validate:"required,email"`
	ServiceType   string `json:"service_type"   validate:"required"`
}

type CreatePricingRuleRequest struct {
	RuleID     string           `json:"rule_id"    validate:"required"`
	SKU        string           `json:"sku"        validate:"required"`
	RuleName   string           `json:"rule_name"  validate:"required"`
	RuleType   string           `json:"rule_type"  validate:"required"`
	Value      *decimal.Decimal `json:"value"      validate:"required"`
	Percentage *decimal.Decimal `json:"percentage"`
	StartDate  time.Time        `json:"start_date" validate:"required"`
	EndDate    time.Time        `json:"end_date"   validate:"required"`
}

type CreateSpecialPriceRequest struct {
	SpecialPriceID string           `json:"special_price_id" validate:"required"`
	SKU            string           `json:"sku"              validate:"required"`
	SpecialPrice   *decimal.Decimal `json:"special_price"    validate:"required"`
	PromotionName  string           `json:"promotion_name"   validate:"required"`
	StartDate      time.Time        `json:"start_date"       validate:"required"`
	EndDate        time.Time        `json:"end_date"         validate:"required"`
}

type RecordReportMetricsRequest struct {
	TotalRecords   int64            `json:"total_records"    validate:"gte=0"`
	ProcessingTime *decimal.Decimal `json:"processing_time"`
	DataRangeStart time.Time        `json:"data_range_start" validate:"required"`
	DataRangeEnd   time.Time        `json:"data_range_end"   validate:"required"`
	FiltersApplied map[string]any   `json:"filters_applied"`
}

// StatusResponse is returned by every transition endpoint.
type StatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type CancelOrderResponse struct {
	OrderID        string `json:"order_id"`
	CancellationID string `json:"cancellation_id"`
	Status         string `json:"status"`
}

type OrderTrackingResponse struct {
	OrderID     string    `json:"order_id"`
	Status      string    `json:"status"`
	OrderDate   time.Time `json:"order_date"`
	LastUpdated time.Time `json:"last_updated"`
}

type TrackingEvent struct {
	EventDate   time.Time `json:"event_date"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	StatusCode  string    `json:"status_code"`
}

type ShipmentMoveResponse struct {
	ShipmentID         string        `json:"shipment_id"`
	Status             string        `json:"status"`
	Event              TrackingEvent `json:"event"`
	ActualDeliveryDate *time.Time    `json:"actual_delivery_date,omitempty"`
}

type ShipmentTrackingResponse struct {
	ShipmentID           string          `json:"shipment_id"`
	OrderID              string          `json:"order_id"`
	TrackingNumber       string          `json:"tracking_number"`
	CourierPartner       string          `json:"courier_partner"`
	Status               string          `json:"status"`
	Weight               decimal.Decimal `json:"weight"`
	ExpectedDeliveryDate time.Time       `json:"expected_delivery_date"`
	ActualDeliveryDate   *time.Time      `json:"actual_delivery_date,omitempty"`
	Events               []TrackingEvent `json:"tracking_events"`
}

type LabelResponse struct {
	ShipmentID  string    `json:"shipment_id"`
	LabelURL    string    `json:"label_url"`
	Format      string    `json:"format"`
	Barcode     string    `json:"barcode"`
	GeneratedAt time.Time `json:"generated_at"`
}

type PriceResponse struct {
	PriceID            string          `json:"price_id"`
	SKU                string          `json:"sku"`
	ListingPrice       decimal.Decimal `json:"listing_price"`
	SellingPrice       decimal.Decimal `json:"selling_price"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	ProfitMargin       decimal.Decimal `json:"profit_margin"`
}

type ProfitMarginResponse struct {
	PriceID              string          `json:"price_id"`
	SKU                  string          `json:"sku"`
	SellingPrice         decimal.Decimal `json:"selling_price"`
	CostPrice            decimal.Decimal `json:"cost_price"`
	CommissionPercentage decimal.Decimal `json:"commission_percentage"`
	ShippingFee          decimal.Decimal `json:"shipping_fee"`
	ProfitMargin         decimal.Decimal `json:"profit_margin"`
}

type ReportResponse struct {
	ReportID string `json:"report_id"`
	Status   string `json:"status"`
}

type DownloadResponse struct {
	ReportID string `json:"report_id"`
	FileURL  string `json:"file_url"`
	FileSize *int64 `json:"file_size,omitempty"`
	Format   string `json:"format"`
}

type ScheduleActivationResponse struct {
	ScheduleID string `json:"schedule_id"`
	IsActive   bool   `json:"is_active"`
}

// RecordResponse is returned by the catalog create and activation endpoints.
type RecordResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	IsActive bool   `json:"is_active"`
}

type StockResponse struct {
	SKU               string    `json:"sku"`
	ProductName       string    `json:"product_name,omitempty"`
	AvailableQuantity int       `json:"available_quantity"`
	ReservedQuantity  int       `json:"reserved_quantity"`
	DamagedQuantity   int       `json:"damaged_quantity"`
	TotalQuantity     int       `json:"total_quantity"`
	WarehouseLocation string    `json:"warehouse_location"`
	ProcurementSLA    int       `json:"procurement_sla"`
	LastUpdated       time.Time `json:"last_updated"`
}

type ReportMetricsResponse struct {
	ReportID       string          `json:"report_id"`
	TotalRecords   int64           `json:"total_records"`
	ProcessingTime decimal.Decimal `json:"processing_time"`
	DataRangeStart time.Time       `json:"data_range_start"`
	DataRangeEnd   time.Time       `json:"data_range_end"`
	FiltersApplied json.RawMessage `json:"filters_applied"`
	CreatedAt      time.Time       `json:"created_at"`
}
