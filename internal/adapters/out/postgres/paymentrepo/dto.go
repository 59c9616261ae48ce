// Package paymentrepo provides data transfer objects and mapping functions
// for payment persistence. Placeholder payments are display-only and are
// rejected on every write path.
package paymentrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payment
// records. Status carries an index for the expiry job's stale-pending scan.
type PaymentDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	CustomerID      uuid.UUID `gorm:"type:uuid"`
	AmountMinor     int64
	Method          string `gorm:"size:16"`
	Status          string `gorm:"size:16;index"`
	TransactionID   string
	ReferenceNumber string
	CreatedAt       time.Time
}

// TableName specifies the database table name for payment records.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment record to its database representation.
func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:              p.ID().Bytes(),
		OrderID:         p.OrderID().Bytes(),
		CustomerID:      p.CustomerID().Bytes(),
		AmountMinor:     p.Amount().MinorUnits(),
		Method:          p.Method().String(),
		Status:          p.Status().String(),
		TransactionID:   p.TransactionID(),
		ReferenceNumber: p.ReferenceNumber(),
		CreatedAt:       p.CreatedAt(),
	}
}

// toDomain converts a database DTO to a payment record.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(dto.AmountMinor)
	if err != nil {
		return nil, err
	}
	method, err := payment.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}
	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id, orderID, customerID, amount, method, status,
		dto.TransactionID, dto.ReferenceNumber, dto.CreatedAt)
}
