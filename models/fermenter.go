package models

import (
	"time"

	"bitbucket.org/wilckenslagers/brewery_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Fermenter struct {
	ID        string          `gorm:"primaryKey;size:64" json:"id" binding:"required"`
	Capacity  decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"capacity" binding:"required"`
	Status    VesselStatus    `gorm:"size:20;not null" json:"status"`
	BatchID   string          `gorm:"size:64;index" json:"batch_id"`
	StartDate *time.Time      `json:"start_date"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewFermenter struct {
	ID       string          `json:"id" validate:"required"`
	Capacity decimal.Decimal `json:"capacity" binding:"required" validate:"required"`
	Status   VesselStatus    `json:"status"`
	BatchID  string          `json:"batch_id"`
}

func (f Fermenter) Validate(db *gorm.DB) error {
	if f.ID == "" {
		return utils.NewValidationError("fermenter id is required")
	}
	if !f.Capacity.IsPositive() {
		return utils.NewValidationError("fermenter capacity must be a positive number")
	}
	if !f.Status.Valid() {
		return utils.NewValidationError("unknown fermenter status %q", string(f.Status))
	}
	if f.BatchID != "" {
		if err := utils.ValidateResourceId[Batch](db, f.BatchID); err != nil {
			if utils.IsClass(err, utils.ErrorClassNotFound) {
				return utils.NewReferenceError("batch %q does not exist", f.BatchID)
			}
			return err
		}
	}
	return nil
}
