package models

import (
	"gorm.io/gorm"
)

// VesselStatus is shared by barrels and fermenters. Any status is reachable
// from any other via a full-record replace; the only coupled rule is that
// StartDate is set exactly when a record is written with StatusOccupied.
type VesselStatus string

const (
	VesselStatusFree     VesselStatus = "Free"
	VesselStatusOccupied VesselStatus = "Occupied"
	VesselStatusCleaning VesselStatus = "Cleaning"
)

func (s VesselStatus) Valid() bool {
	switch s {
	case VesselStatusFree, VesselStatusOccupied, VesselStatusCleaning:
		return true
	}
	return false
}

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "Pending"
	InvoiceStatusPaid    InvoiceStatus = "Paid"
	InvoiceStatusOverdue InvoiceStatus = "Overdue"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

type BatchStatus string

const (
	BatchStatusInProgress BatchStatus = "InProgress"
	BatchStatusFinished   BatchStatus = "Finished"
	BatchStatusOnHold     BatchStatus = "OnHold"
)

func (s BatchStatus) Valid() bool {
	switch s {
	case BatchStatusInProgress, BatchStatusFinished, BatchStatusOnHold:
		return true
	}
	return false
}

// Resource is implemented by every persisted kind. Validate enforces the
// application-level invariants (required fields, positive numerics,
// foreign-key resolution) before any write reaches the store.
type Resource interface {
	ResourceID() string
	ResourceKind() string
	Validate(db *gorm.DB) error
}

// MigrateTable creates or upgrades the six entity tables.
func MigrateTable(db *gorm.DB) error {
	return db.AutoMigrate(
		&Client{}, &Barrel{}, &Fermenter{},
		&Batch{}, &Invoice{}, &Payment{},
	)
}

// DisplayDate renders nullable timestamps the way exports and QR lookups
// show them.
const DisplayDateLayout = "2006-01-02 15:04:05"
