package models

import (
	"time"

	"bitbucket.org/wilckenslagers/brewery_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Barrel struct {
	ID        string          `gorm:"primaryKey;size:64" json:"id" binding:"required"`
	Capacity  decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"capacity" binding:"required"`
	Status    VesselStatus    `gorm:"size:20;not null" json:"status"`
	ClientID  string          `gorm:"size:64;index" json:"client_id"`
	StartDate *time.Time      `json:"start_date"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// NewBarrel is the data-entry payload for registering or replacing a
// barrel. StartDate is never supplied by the operator; the vessel manager
// derives it from Status.
type NewBarrel struct {
	// Creates require an id in the body; replaces take it from the URL
	// path, so the required check runs at the workflow boundary instead
	// of at bind time.
	ID       string          `json:"id" validate:"required"`
	Capacity decimal.Decimal `json:"capacity" binding:"required" validate:"required"`
	Status   VesselStatus    `json:"status"`
	ClientID string          `json:"client_id"`
}

func (b Barrel) Validate(db *gorm.DB) error {
	if b.ID == "" {
		return utils.NewValidationError("barrel id is required")
	}
	if !b.Capacity.IsPositive() {
		return utils.NewValidationError("barrel capacity must be a positive number")
	}
	if !b.Status.Valid() {
		return utils.NewValidationError("unknown barrel status %q", string(b.Status))
	}
	if b.ClientID != "" {
		if err := utils.ValidateResourceId[Client](db, b.ClientID); err != nil {
			if utils.IsClass(err, utils.ErrorClassNotFound) {
				return utils.NewReferenceError("client %q does not exist", b.ClientID)
			}
			return err
		}
	}
	return nil
}
