package models

import (
	"time"

	"bitbucket.org/wilckenslagers/brewery_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Payment struct {
	ID          string          `gorm:"primaryKey;size:64" json:"id" binding:"required"`
	InvoiceID   string          `gorm:"size:64;index;not null" json:"invoice_id" binding:"required"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount" binding:"required"`
	PaymentDate time.Time       `gorm:"not null" json:"payment_date"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewPayment struct {
	ID        string          `json:"id" binding:"required" validate:"required"`
	InvoiceID string          `json:"invoice_id" binding:"required" validate:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required" validate:"required"`
}

func (p Payment) Validate(db *gorm.DB) error {
	if p.ID == "" {
		return utils.NewValidationError("payment id is required")
	}
	if p.InvoiceID == "" {
		return utils.NewValidationError("payment invoice id is required")
	}
	if !p.Amount.IsPositive() {
		return utils.NewValidationError("payment amount must be a positive number")
	}
	if err := utils.ValidateResourceId[Invoice](db, p.InvoiceID); err != nil {
		if utils.IsClass(err, utils.ErrorClassNotFound) {
			return utils.NewReferenceError("invoice %q does not exist", p.InvoiceID)
		}
		return err
	}
	return nil
}
