package workflow_test

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"bitbucket.org/wilckenslagers/brewery_backend/config"
	"bitbucket.org/wilckenslagers/brewery_backend/models"
	"bitbucket.org/wilckenslagers/brewery_backend/store"
	"bitbucket.org/wilckenslagers/brewery_backend/utils"
	"bitbucket.org/wilckenslagers/brewery_backend/workflow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s, err := store.Open(config.Config{DatabasePath: filepath.Join(t.TempDir(), "brewery.db")}, logger)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestRegisterBarrelOccupiedStampsStartDate(t *testing.T) {
	s := newTestStore(t)
	m := workflow.NewVesselManager(s, testLogger())

	before := time.Now()
	barrel, err := m.RegisterBarrel(&models.NewBarrel{
		ID:       "B-1",
		Capacity: decimal.NewFromInt(50),
		Status:   models.VesselStatusOccupied,
	})
	if err != nil {
		t.Fatalf("RegisterBarrel: %v", err)
	}
	if barrel.StartDate == nil {
		t.Fatal("Occupied barrel has nil start date")
	}
	if barrel.StartDate.Before(before) || barrel.StartDate.After(time.Now()) {
		t.Fatalf("start date %v not within registration window", barrel.StartDate)
	}

	got, err := m.GetBarrel("B-1")
	if err != nil {
		t.Fatalf("GetBarrel: %v", err)
	}
	if got.StartDate == nil {
		t.Fatal("persisted Occupied barrel has nil start date")
	}
}

func TestRegisterBarrelNonOccupiedHasNilStartDate(t *testing.T) {
	s := newTestStore(t)
	m := workflow.NewVesselManager(s, testLogger())

	for _, status := range []models.VesselStatus{models.VesselStatusFree, models.VesselStatusCleaning} {
		barrel, err := m.RegisterBarrel(&models.NewBarrel{
			ID:       "B-" + string(status),
			Capacity: decimal.NewFromInt(30),
			Status:   status,
		})
		if err != nil {
			t.Fatalf("RegisterBarrel(%s): %v", status, err)
		}
		if barrel.StartDate != nil {
			t.Fatalf("%s barrel got start date %v, want nil", status, barrel.StartDate)
		}
	}
}

func TestRegisterBarrelDefaultsToFree(t *testing.T) {
	s := newTestStore(t)
	m := workflow.NewVesselManager(s, testLogger())

	barrel, err := m.RegisterBarrel(&models.NewBarrel{ID: "B-1", Capacity: decimal.NewFromInt(20)})
	if err != nil {
		t.Fatalf("RegisterBarrel: %v", err)
	}
	if barrel.Status != models.VesselStatusFree {
		t.Fatalf("status = %s, want Free", barrel.Status)
	}
}

func TestRegisterBarrelUnresolvedClientRejected(t *testing.T) {
	s := newTestStore(t)
	m := workflow.NewVesselManager(s, testLogger())

	_, err := m.RegisterBarrel(&models.NewBarrel{
		ID:       "B-1",
		Capacity: decimal.NewFromInt(50),
		Status:   models.VesselStatusOccupied,
		ClientID: "CL-missing",
	})
	if !utils.IsClass(err, utils.ErrorClassReference) {
		t.Fatalf("got %v, want reference error", err)
	}
}

func TestRegisterBarrelWithExistingClient(t *testing.T) {
	s := newTestStore(t)
	m := workflow.NewVesselManager(s, testLogger())

	if err := store.Create(s, models.Client{ID: "CL-1", Name: "Bar El Galeon"}); err != nil {
		t.Fatalf("create client: %v", err)
	}
	barrel, err := m.RegisterBarrel(&models.NewBarrel{
		ID:       "B-1",
		Capacity: decimal.NewFromInt(50),
		Status:   models.VesselStatusOccupied,
		ClientID: "CL-1",
	})
	if err != nil {
		t.Fatalf("RegisterBarrel: %v", err)
	}
	if barrel.ClientID != "CL-1" {
		t.Fatalf("client id = %q, want CL-1", barrel.ClientID)
	}
}

func TestReplaceBarrelRecomputesStartDate(t *testing.T) {
	s := newTestStore(t)
	m := workflow.NewVesselManager(s, testLogger())

	if _, err := m.RegisterBarrel(&models.NewBarrel{
		ID:       "B-1",
		Capacity: decimal.NewFromInt(50),
		Status:   models.VesselStatusOccupied,
	}); err != nil {
		t.Fatalf("RegisterBarrel: %v", err)
	}

	// Editing to a non-occupied status clears the timestamp.
	if _, err := m.ReplaceBarrel(&models.NewBarrel{
		ID:       "B-1",
		Capacity: decimal.NewFromInt(50),
		Status:   models.VesselStatusCleaning,
	}); err != nil {
		t.Fatalf("ReplaceBarrel: %v", err)
	}
	got, err := m.GetBarrel("B-1")
	if err != nil {
		t.Fatalf("GetBarrel: %v", err)
	}
	if got.StartDate != nil {
		t.Fatalf("Cleaning barrel kept start date %v", got.StartDate)
	}

	// Editing back to Occupied stamps a fresh timestamp.
	if _, err := m.ReplaceBarrel(&models.NewBarrel{
		ID:       "B-1",
		Capacity: decimal.NewFromInt(50),
		Status:   models.VesselStatusOccupied,
	}); err != nil {
		t.Fatalf("ReplaceBarrel: %v", err)
	}
	got, err = m.GetBarrel("B-1")
	if err != nil {
		t.Fatalf("GetBarrel: %v", err)
	}
	if got.StartDate == nil {
		t.Fatal("re-occupied barrel has nil start date")
	}
}

func TestRemoveBarrelNotFound(t *testing.T) {
	s := newTestStore(t)
	m := workflow.NewVesselManager(s, testLogger())

	if err := m.RemoveBarrel("B-404"); !utils.IsClass(err, utils.ErrorClassNotFound) {
		t.Fatalf("got %v, want not found", err)
	}
}

func TestRegisterFermenterBatchRule(t *testing.T) {
	s := newTestStore(t)
	m := workflow.NewVesselManager(s, testLogger())

	_, err := m.RegisterFermenter(&models.NewFermenter{
		ID:       "F-1",
		Capacity: decimal.NewFromInt(1000),
		Status:   models.VesselStatusOccupied,
		BatchID:  "L-missing",
	})
	if !utils.IsClass(err, utils.ErrorClassReference) {
		t.Fatalf("got %v, want reference error", err)
	}

	if err := store.Create(s, models.Batch{
		ID:          "L-1",
		ProductName: "Wilckens Pale Lager",
		Volume:      decimal.NewFromInt(900),
		Status:      models.BatchStatusInProgress,
		StartDate:   time.Now(),
	}); err != nil {
		t.Fatalf("create batch: %v", err)
	}

	fermenter, err := m.RegisterFermenter(&models.NewFermenter{
		ID:       "F-1",
		Capacity: decimal.NewFromInt(1000),
		Status:   models.VesselStatusOccupied,
		BatchID:  "L-1",
	})
	if err != nil {
		t.Fatalf("RegisterFermenter: %v", err)
	}
	if fermenter.StartDate == nil {
		t.Fatal("Occupied fermenter has nil start date")
	}
}
