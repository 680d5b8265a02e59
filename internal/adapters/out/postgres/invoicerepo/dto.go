// Package invoicerepo provides data transfer objects and mapping functions
// for invoice persistence. A unique index on order_id backs the one invoice
// per order rule.
package invoicerepo

import (
	"time"

	"lastmile/internal/core/domain/model/invoice"
	"lastmile/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceDTO represents the database structure for persisting invoices.
type InvoiceDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CustomerTaxID string    `gorm:"size:20"`

	Subtotal    decimal.Decimal `gorm:"type:numeric(12,2)"`
	TaxAmount   decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2)"`

	Status   string `gorm:"index"`
	IssuedAt *time.Time

	// XMLData is reserved for the signed fiscal document.
	XMLData *string `gorm:"column:xml_data"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for invoices.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

func fromDomain(aggregate *invoice.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		CustomerTaxID: aggregate.CustomerTaxID(),
		Subtotal:      aggregate.Subtotal(),
		TaxAmount:     aggregate.TaxAmount(),
		TotalAmount:   aggregate.Total(),
		Status:        aggregate.Status().String(),
		IssuedAt:      aggregate.IssuedAt(),
		XMLData:       aggregate.XMLData(),
	}
}

func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := invoice.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return invoice.RestoreInvoice(
		id, orderID, dto.CustomerTaxID,
		dto.Subtotal, dto.TaxAmount, dto.TotalAmount,
		status, dto.IssuedAt, dto.XMLData,
	)
}
