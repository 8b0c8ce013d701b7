// Package returnsrepo persists returns, replacements and refund transactions.
package returnsrepo

import (
	"time"

	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/core/domain/model/returns"

	"github.com/shopspring/decimal"
)

type ReturnDTO struct {
	ReturnID      string          `gorm:"column:return_id;primaryKey;size:100"`
	OrderID       string          `gorm:"column:order_id;size:100;index;not null"`
	OrderItemID   int64           `gorm:"column:order_item_id;not null"`
	Reason        string          `gorm:"column:reason;size:32;not null"`
	Description   string          `gorm:"column:description"`
	Status        string          `gorm:"column:status;size:32;not null"`
	RefundAmount  decimal.Decimal `gorm:"column:refund_amount;type:numeric(12,2);not null"`
	PickupAddress string          `gorm:"column:pickup_address;not null"`
	ReturnDate    time.Time       `gorm:"column:return_date;not null"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (ReturnDTO) TableName() string {
	return "returns"
}

type ReplacementDTO struct {
	ReplacementID   string    `gorm:"column:replacement_id;primaryKey;size:100"`
	ReturnID        string    `gorm:"column:return_id;size:100;uniqueIndex;not null"`
	OrderID         string    `gorm:"column:order_id;size:100;not null"`
	OrderItemID     int64     `gorm:"column:order_item_id;not null"`
	Status          string    `gorm:"column:status;size:32;not null"`
	TrackingID      string    `gorm:"column:tracking_id;size:100"`
	DeliveryAddress string    `gorm:"column:delivery_address;not null"`
	ReplacementDate time.Time `gorm:"column:replacement_date;not null"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (ReplacementDTO) TableName() string {
	return "replacements"
}

type RefundDTO struct {
	TransactionID   string          `gorm:"column:transaction_id;primaryKey;size:100"`
	ReturnID        string          `gorm:"column:return_id;size:100;index;not null"`
	RefundAmount    decimal.Decimal `gorm:"column:refund_amount;type:numeric(12,2);not null"`
	RefundMethod    string          `gorm:"column:refund_method;size:32;not null"`
	Status          string          `gorm:"column:status;size:32;not null"`
	TransactionDate time.Time       `gorm:"column:transaction_date;not null"`
	CompletedDate   *time.Time      `gorm:"column:completed_date"`
}

func (RefundDTO) TableName() string {
	return "refund_transactions"
}

func Models() []any {
	return []any{&ReturnDTO{}, &ReplacementDTO{}, &RefundDTO{}}
}

func returnFromDomain(r *returns.Return) ReturnDTO {
	return ReturnDTO{
		ReturnID:      r.ID().String(),
		OrderID:       r.OrderID().String(),
		OrderItemID:   r.OrderItemID(),
		Reason:        r.Reason().String(),
		Description:   r.Description(),
		Status:        r.Status().String(),
		RefundAmount:  r.RefundAmount(),
		PickupAddress: r.PickupAddress().String(),
		ReturnDate:    r.ReturnDate(),
		UpdatedAt:     r.UpdatedAt(),
	}
}

func returnToDomain(dto ReturnDTO) (*returns.Return, error) {
	id, err := kernel.NewID(dto.ReturnID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.NewID(dto.OrderID)
	if err != nil {
		return nil, err
	}
	reason, err := returns.ParseReason(dto.Reason)
	if err != nil {
		return nil, err
	}
	status, err := returns.ParseReturnStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	pickup, err := kernel.NewAddress(dto.PickupAddress)
	if err != nil {
		return nil, err
	}

	return returns.RestoreReturn(id, orderID, dto.OrderItemID, reason, dto.Description, status,
		dto.RefundAmount, pickup, dto.ReturnDate, dto.UpdatedAt)
}

func replacementFromDomain(r *returns.Replacement) ReplacementDTO {
	return ReplacementDTO{
		ReplacementID:   r.ID().String(),
		ReturnID:        r.ReturnID().String(),
		OrderID:         r.OrderID().String(),
		OrderItemID:     r.OrderItemID(),
		Status:          r.Status().String(),
		TrackingID:      r.TrackingID(),
		DeliveryAddress: r.DeliveryAddress().String(),
		ReplacementDate: r.ReplacementDate(),
		UpdatedAt:       r.UpdatedAt(),
	}
}

func replacementToDomain(dto ReplacementDTO) (*returns.Replacement, error) {
	id, err := kernel.NewID(dto.ReplacementID)
	if err != nil {
		return nil, err
	}
	returnID, err := kernel.NewID(dto.ReturnID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.NewID(dto.OrderID)
	if err != nil {
		return nil, err
	}
	status, err := returns.ParseReplacementStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	address, err := kernel.NewAddress(dto.DeliveryAddress)
	if err != nil {
		return nil, err
	}

	return returns.RestoreReplacement(id, returnID, orderID, dto.OrderItemID, status, dto.TrackingID,
		address, dto.ReplacementDate, dto.UpdatedAt)
}

func refundFromDomain(r *returns.Refund) RefundDTO {
	return RefundDTO{
		TransactionID:   r.TransactionID().String(),
		ReturnID:        r.ReturnID().String(),
		RefundAmount:    r.Amount(),
		RefundMethod:    r.Method().String(),
		Status:          r.Status().String(),
		TransactionDate: r.TransactionDate(),
		CompletedDate:   r.CompletedDate(),
	}
}

func refundToDomain(dto RefundDTO) (*returns.Refund, error) {
	id, err := kernel.NewID(dto.TransactionID)
	if err != nil {
		return nil, err
	}
	returnID, err := kernel.NewID(dto.ReturnID)
	if err != nil {
		return nil, err
	}
	method, err := returns.ParseRefundMethod(dto.RefundMethod)
	if err != nil {
		return nil, err
	}
	status, err := returns.ParseRefundStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return returns.RestoreRefund(id, returnID, dto.RefundAmount, method, status, dto.TransactionDate, dto.CompletedDate)
}
