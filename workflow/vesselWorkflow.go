package workflow

import (
	"strings"
	"time"

	"bitbucket.org/wilckenslagers/brewery_backend/config"
	"bitbucket.org/wilckenslagers/brewery_backend/models"
	"bitbucket.org/wilckenslagers/brewery_backend/store"
	"bitbucket.org/wilckenslagers/brewery_backend/utils"
	"github.com/sirupsen/logrus"
)

// VesselManager owns the occupancy rules shared by barrels and fermenters:
// a vessel written with StatusOccupied gets StartDate stamped at that
// write, any other status clears it, and a non-empty assignee (client for
// barrels, batch for fermenters) must resolve before the write is accepted.
// The manager holds no state of its own; every read goes back to the store.
type VesselManager struct {
	store *store.Store
	log   *logrus.Logger
}

func NewVesselManager(s *store.Store, logger *logrus.Logger) *VesselManager {
	return &VesselManager{store: s, log: logger}
}

// occupancyStart implements the point-in-time rule: the timestamp reflects
// the moment this record entered Occupied, decided once per write and never
// retroactively.
func occupancyStart(status models.VesselStatus) *time.Time {
	if status != models.VesselStatusOccupied {
		return nil
	}
	now := time.Now()
	return &now
}

func defaultVesselStatus(status models.VesselStatus) models.VesselStatus {
	if status == "" {
		return models.VesselStatusFree
	}
	return status
}

func (m *VesselManager) barrelFromInput(input *models.NewBarrel) models.Barrel {
	status := defaultVesselStatus(input.Status)
	return models.Barrel{
		ID:        strings.TrimSpace(input.ID),
		Capacity:  input.Capacity,
		Status:    status,
		ClientID:  strings.TrimSpace(input.ClientID),
		StartDate: occupancyStart(status),
	}
}

func (m *VesselManager) RegisterBarrel(input *models.NewBarrel) (*models.Barrel, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	barrel := m.barrelFromInput(input)
	if err := store.Create(m.store, barrel); err != nil {
		config.LogError(m.log, "vesselWorkflow.go", "RegisterBarrel", "store.Create", input.ID, err)
		return nil, err
	}
	return &barrel, nil
}

// ReplaceBarrel applies the same occupancy rules to a full-record edit:
// the replacement's status alone decides the new StartDate.
func (m *VesselManager) ReplaceBarrel(input *models.NewBarrel) (*models.Barrel, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	barrel := m.barrelFromInput(input)
	if err := store.Replace(m.store, barrel); err != nil {
		config.LogError(m.log, "vesselWorkflow.go", "ReplaceBarrel", "store.Replace", input.ID, err)
		return nil, err
	}
	return &barrel, nil
}

func (m *VesselManager) RemoveBarrel(id string) error {
	return store.Delete[models.Barrel](m.store, id)
}

func (m *VesselManager) GetBarrel(id string) (*models.Barrel, error) {
	return store.FindByID[models.Barrel](m.store, id)
}

func (m *VesselManager) fermenterFromInput(input *models.NewFermenter) models.Fermenter {
	status := defaultVesselStatus(input.Status)
	return models.Fermenter{
		ID:        strings.TrimSpace(input.ID),
		Capacity:  input.Capacity,
		Status:    status,
		BatchID:   strings.TrimSpace(input.BatchID),
		StartDate: occupancyStart(status),
	}
}

func (m *VesselManager) RegisterFermenter(input *models.NewFermenter) (*models.Fermenter, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	fermenter := m.fermenterFromInput(input)
	if err := store.Create(m.store, fermenter); err != nil {
		config.LogError(m.log, "vesselWorkflow.go", "RegisterFermenter", "store.Create", input.ID, err)
		return nil, err
	}
	return &fermenter, nil
}

func (m *VesselManager) ReplaceFermenter(input *models.NewFermenter) (*models.Fermenter, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	fermenter := m.fermenterFromInput(input)
	if err := store.Replace(m.store, fermenter); err != nil {
		config.LogError(m.log, "vesselWorkflow.go", "ReplaceFermenter", "store.Replace", input.ID, err)
		return nil, err
	}
	return &fermenter, nil
}

func (m *VesselManager) RemoveFermenter(id string) error {
	return store.Delete[models.Fermenter](m.store, id)
}

func (m *VesselManager) GetFermenter(id string) (*models.Fermenter, error) {
	return store.FindByID[models.Fermenter](m.store, id)
}
