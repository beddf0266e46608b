package models

import (
	"time"

	"bitbucket.org/wilckenslagers/brewery_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Invoice struct {
	ID        string          `gorm:"primaryKey;size:64" json:"id" binding:"required"`
	ClientID  string          `gorm:"size:64;index;not null" json:"client_id" binding:"required"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount" binding:"required"`
	Status    InvoiceStatus   `gorm:"size:20;not null" json:"status"`
	IssueDate time.Time       `gorm:"not null" json:"issue_date"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// NewInvoice carries the operator's invoice entry. Status is operator-
// chosen at creation, not derived; Overdue exists only as a settable value.
type NewInvoice struct {
	ID       string          `json:"id" binding:"required" validate:"required"`
	ClientID string          `json:"client_id" binding:"required" validate:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required" validate:"required"`
	Status   InvoiceStatus   `json:"status"`
}

func (i Invoice) Validate(db *gorm.DB) error {
	if i.ID == "" {
		return utils.NewValidationError("invoice id is required")
	}
	if i.ClientID == "" {
		return utils.NewValidationError("invoice client id is required")
	}
	if !i.Amount.IsPositive() {
		return utils.NewValidationError("invoice amount must be a positive number")
	}
	if !i.Status.Valid() {
		return utils.NewValidationError("unknown invoice status %q", string(i.Status))
	}
	if err := utils.ValidateResourceId[Client](db, i.ClientID); err != nil {
		if utils.IsClass(err, utils.ErrorClassNotFound) {
			return utils.NewReferenceError("client %q does not exist", i.ClientID)
		}
		return err
	}
	return nil
}
