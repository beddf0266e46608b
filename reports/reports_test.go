package reports_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bitbucket.org/wilckenslagers/brewery_backend/config"
	"bitbucket.org/wilckenslagers/brewery_backend/models"
	"bitbucket.org/wilckenslagers/brewery_backend/reports"
	"bitbucket.org/wilckenslagers/brewery_backend/store"
	"bitbucket.org/wilckenslagers/brewery_backend/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

func newTestFacade(t *testing.T) (*store.Store, *reports.Facade) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s, err := store.Open(config.Config{DatabasePath: filepath.Join(t.TempDir(), "brewery.db")}, logger)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, reports.NewFacade(s)
}

func seedBarrels(t *testing.T, s *store.Store) {
	t.Helper()
	if err := store.Create(s, models.Client{ID: "CL-oculto", Name: "Bar Oculto"}); err != nil {
		t.Fatalf("create client: %v", err)
	}
	now := time.Now()
	barrels := []models.Barrel{
		{ID: "B-1", Capacity: decimal.NewFromInt(50), Status: models.VesselStatusOccupied, StartDate: &now},
		{ID: "B-2", Capacity: decimal.NewFromInt(30), Status: models.VesselStatusFree},
		{ID: "B-3", Capacity: decimal.NewFromInt(20), Status: models.VesselStatusCleaning, ClientID: "CL-oculto"},
	}
	for _, b := range barrels {
		if err := store.Create(s, b); err != nil {
			t.Fatalf("create barrel %s: %v", b.ID, err)
		}
	}
}

func TestFilterBarrelsSubstring(t *testing.T) {
	s, facade := newTestFacade(t)
	seedBarrels(t, s)

	// "ocu" hits only B-3 via client CL-oculto; no status string
	// contains it.
	rows, err := facade.Filter(reports.KindBarrel, "ocu")
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	barrels, ok := rows.([]models.Barrel)
	if !ok {
		t.Fatalf("Filter returned %T, want []models.Barrel", rows)
	}
	got := map[string]bool{}
	for _, b := range barrels {
		got[b.ID] = true
	}
	if len(got) != 1 || !got["B-3"] {
		t.Fatalf("Filter(barrel, ocu) matched %v, want only B-3", got)
	}

	// "cup" hits only B-1 via status Occupied.
	rows, err = facade.Filter(reports.KindBarrel, "cup")
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	barrels = rows.([]models.Barrel)
	got = map[string]bool{}
	for _, b := range barrels {
		got[b.ID] = true
	}
	if len(got) != 1 || !got["B-1"] {
		t.Fatalf("Filter(barrel, cup) matched %v, want only B-1", got)
	}
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	s, facade := newTestFacade(t)
	seedBarrels(t, s)

	rows, err := facade.Filter(reports.KindBarrel, "OCCUPIED")
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	barrels := rows.([]models.Barrel)
	if len(barrels) != 1 || barrels[0].ID != "B-1" {
		t.Fatalf("Filter(barrel, OCCUPIED) = %+v, want only B-1", barrels)
	}
}

func TestFilterClientsByName(t *testing.T) {
	s, facade := newTestFacade(t)
	if err := store.Create(s, models.Client{ID: "CL-1", Name: "Bar El Galeon"}); err != nil {
		t.Fatalf("create client: %v", err)
	}
	if err := store.Create(s, models.Client{ID: "CL-2", Name: "Hotel Austral"}); err != nil {
		t.Fatalf("create client: %v", err)
	}

	rows, err := facade.Filter(reports.KindClient, "galeon")
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	clients := rows.([]models.Client)
	if len(clients) != 1 || clients[0].ID != "CL-1" {
		t.Fatalf("Filter(client, galeon) = %+v, want only CL-1", clients)
	}
}

func TestFilterUnsupportedKind(t *testing.T) {
	_, facade := newTestFacade(t)
	if _, err := facade.Filter(reports.KindPayment, "x"); !utils.IsClass(err, utils.ErrorClassValidation) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestParseKind(t *testing.T) {
	kind, err := reports.ParseKind(" Barrel ")
	if err != nil || kind != reports.KindBarrel {
		t.Fatalf("ParseKind(Barrel) = %v, %v", kind, err)
	}
	if _, err := reports.ParseKind("warehouse"); !utils.IsClass(err, utils.ErrorClassValidation) {
		t.Fatalf("ParseKind(warehouse): got %v, want validation error", err)
	}
}

func TestTableProjection(t *testing.T) {
	s, facade := newTestFacade(t)
	seedBarrels(t, s)

	table, err := facade.Table(reports.KindBarrel)
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	wantHeaders := []string{"ID", "Capacidad (L)", "Estado", "ID del Cliente", "Fecha de Inicio"}
	if len(table.Headers) != len(wantHeaders) {
		t.Fatalf("headers = %v, want %v", table.Headers, wantHeaders)
	}
	for i := range wantHeaders {
		if table.Headers[i] != wantHeaders[i] {
			t.Fatalf("headers = %v, want %v", table.Headers, wantHeaders)
		}
	}
	if len(table.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(table.Rows))
	}
	for _, row := range table.Rows {
		if len(row) != len(wantHeaders) {
			t.Fatalf("row %v has %d cells, want %d", row, len(row), len(wantHeaders))
		}
		if row[0] == "B-2" && row[4] != "" {
			t.Fatalf("free barrel exported start date %q, want empty", row[4])
		}
	}
}

func TestExportCSVWritesTimestampedFile(t *testing.T) {
	s, facade := newTestFacade(t)
	seedBarrels(t, s)

	dir := t.TempDir()
	path, err := facade.ExportCSV(reports.KindBarrel, dir)
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	name := filepath.Base(path)
	if !strings.HasPrefix(name, "barrels_") || !strings.HasSuffix(name, ".csv") {
		t.Fatalf("export file name %q, want barrels_<timestamp>.csv", name)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("csv has %d lines, want header + 3 rows", len(lines))
	}
	if lines[0] != "ID,Capacidad (L),Estado,ID del Cliente,Fecha de Inicio" {
		t.Fatalf("csv header = %q", lines[0])
	}
}

func TestExportFilenamePluralizesKinds(t *testing.T) {
	cases := []struct {
		kind   reports.Kind
		prefix string
	}{
		{reports.KindBarrel, "barrels_"},
		{reports.KindBatch, "batches_"},
		{reports.KindClient, "clients_"},
	}
	for _, tc := range cases {
		name := reports.ExportFilename(tc.kind, "csv")
		if !strings.HasPrefix(name, tc.prefix) || !strings.HasSuffix(name, ".csv") {
			t.Fatalf("ExportFilename(%s) = %q, want %s<timestamp>.csv", tc.kind, name, tc.prefix)
		}
	}
}

func TestExportXLSXCarriesSameProjection(t *testing.T) {
	s, facade := newTestFacade(t)
	seedBarrels(t, s)

	dir := t.TempDir()
	path, err := facade.ExportXLSX(reports.KindBarrel, dir)
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}
	name := filepath.Base(path)
	if !strings.HasPrefix(name, "barrels_") || !strings.HasSuffix(name, ".xlsx") {
		t.Fatalf("export file name %q, want barrels_<timestamp>.xlsx", name)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()
	a1, err := f.GetCellValue("Sheet1", "A1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if a1 != "ID" {
		t.Fatalf("A1 = %q, want ID", a1)
	}
	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("sheet has %d rows, want header + 3", len(rows))
	}
}

func TestListStoreDefinedOrder(t *testing.T) {
	s, facade := newTestFacade(t)
	seedBarrels(t, s)

	rows, err := facade.List(reports.KindBarrel)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	barrels := rows.([]models.Barrel)
	if len(barrels) != 3 {
		t.Fatalf("List returned %d barrels, want 3", len(barrels))
	}
}
