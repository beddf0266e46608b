package models

import (
	"time"

	"bitbucket.org/wilckenslagers/brewery_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Batch struct {
	ID          string          `gorm:"primaryKey;size:64" json:"id" binding:"required"`
	ProductName string          `gorm:"size:100;not null" json:"product_name" binding:"required"`
	Volume      decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"volume" binding:"required"`
	Status      BatchStatus     `gorm:"size:20;not null" json:"status"`
	StartDate   time.Time       `gorm:"not null" json:"start_date"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewBatch struct {
	ID          string          `json:"id" binding:"required"`
	ProductName string          `json:"product_name" binding:"required"`
	Volume      decimal.Decimal `json:"volume" binding:"required"`
	Status      BatchStatus     `json:"status"`
}

// Model stamps the batch with its production start instant.
func (input *NewBatch) Model(now time.Time) Batch {
	status := input.Status
	if status == "" {
		status = BatchStatusInProgress
	}
	return Batch{
		ID:          input.ID,
		ProductName: input.ProductName,
		Volume:      input.Volume,
		Status:      status,
		StartDate:   now,
	}
}

func (b Batch) Validate(db *gorm.DB) error {
	if b.ID == "" {
		return utils.NewValidationError("batch id is required")
	}
	if b.ProductName == "" {
		return utils.NewValidationError("batch product name is required")
	}
	if !b.Volume.IsPositive() {
		return utils.NewValidationError("batch volume must be a positive number")
	}
	if !b.Status.Valid() {
		return utils.NewValidationError("unknown batch status %q", string(b.Status))
	}
	return nil
}
