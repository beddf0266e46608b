package reports

import (
	"strings"
	"time"

	"bitbucket.org/wilckenslagers/brewery_backend/models"
	"bitbucket.org/wilckenslagers/brewery_backend/store"
	"bitbucket.org/wilckenslagers/brewery_backend/utils"
)

// Kind names an entity kind on the read side.
type Kind string

const (
	KindBarrel    Kind = "barrel"
	KindClient    Kind = "client"
	KindInvoice   Kind = "invoice"
	KindBatch     Kind = "batch"
	KindFermenter Kind = "fermenter"
	KindPayment   Kind = "payment"
)

// ParseKind accepts singular kind names case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindBarrel:
		return KindBarrel, nil
	case KindClient:
		return KindClient, nil
	case KindInvoice:
		return KindInvoice, nil
	case KindBatch:
		return KindBatch, nil
	case KindFermenter:
		return KindFermenter, nil
	case KindPayment:
		return KindPayment, nil
	}
	return "", utils.NewValidationError("unknown entity kind %q", s)
}

// Table is the flat projection consumed by the export writers and the
// data-entry grid. Headers keep the localized display names the operators
// know from the desktop exports.
type Table struct {
	Kind    Kind
	Headers []string
	Rows    [][]string
}

// Facade is the read side: listing, substring filtering and tabular
// projection. It never mutates the store.
type Facade struct {
	store *store.Store
}

func NewFacade(s *store.Store) *Facade {
	return &Facade{store: s}
}

// List returns all rows of a kind in store-defined order.
func (f *Facade) List(kind Kind) (any, error) {
	switch kind {
	case KindBarrel:
		return store.ListAll[models.Barrel](f.store)
	case KindClient:
		return store.ListAll[models.Client](f.store)
	case KindInvoice:
		return store.ListAll[models.Invoice](f.store)
	case KindBatch:
		return store.ListAll[models.Batch](f.store)
	case KindFermenter:
		return store.ListAll[models.Fermenter](f.store)
	case KindPayment:
		return store.ListAll[models.Payment](f.store)
	}
	return nil, utils.NewValidationError("unknown entity kind %q", string(kind))
}

// Filter returns the rows of a kind whose kind-specific search fields
// case-insensitively contain term. The field subsets mirror the desktop
// search boxes: id/status/assignee for vessels, id/name for clients,
// id/client for invoices, id/product for batches.
func (f *Facade) Filter(kind Kind, term string) (any, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	switch kind {
	case KindBarrel:
		rows, err := store.ListAll[models.Barrel](f.store)
		if err != nil {
			return nil, err
		}
		out := make([]models.Barrel, 0, len(rows))
		for _, r := range rows {
			if matchAny(term, r.ID, string(r.Status), r.ClientID) {
				out = append(out, r)
			}
		}
		return out, nil
	case KindFermenter:
		rows, err := store.ListAll[models.Fermenter](f.store)
		if err != nil {
			return nil, err
		}
		out := make([]models.Fermenter, 0, len(rows))
		for _, r := range rows {
			if matchAny(term, r.ID, string(r.Status), r.BatchID) {
				out = append(out, r)
			}
		}
		return out, nil
	case KindClient:
		rows, err := store.ListAll[models.Client](f.store)
		if err != nil {
			return nil, err
		}
		out := make([]models.Client, 0, len(rows))
		for _, r := range rows {
			if matchAny(term, r.ID, r.Name) {
				out = append(out, r)
			}
		}
		return out, nil
	case KindInvoice:
		rows, err := store.ListAll[models.Invoice](f.store)
		if err != nil {
			return nil, err
		}
		out := make([]models.Invoice, 0, len(rows))
		for _, r := range rows {
			if matchAny(term, r.ID, r.ClientID) {
				out = append(out, r)
			}
		}
		return out, nil
	case KindBatch:
		rows, err := store.ListAll[models.Batch](f.store)
		if err != nil {
			return nil, err
		}
		out := make([]models.Batch, 0, len(rows))
		for _, r := range rows {
			if matchAny(term, r.ID, r.ProductName) {
				out = append(out, r)
			}
		}
		return out, nil
	}
	return nil, utils.NewValidationError("filtering is not supported for kind %q", string(kind))
}

func matchAny(term string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Table builds the full export projection for a kind.
func (f *Facade) Table(kind Kind) (*Table, error) {
	t := &Table{Kind: kind}
	switch kind {
	case KindBarrel:
		rows, err := store.ListAll[models.Barrel](f.store)
		if err != nil {
			return nil, err
		}
		t.Headers = []string{"ID", "Capacidad (L)", "Estado", "ID del Cliente", "Fecha de Inicio"}
		for _, r := range rows {
			t.Rows = append(t.Rows, []string{r.ID, r.Capacity.String(), string(r.Status), r.ClientID, formatNullableDate(r.StartDate)})
		}
	case KindClient:
		rows, err := store.ListAll[models.Client](f.store)
		if err != nil {
			return nil, err
		}
		t.Headers = []string{"ID", "Nombre", "Contacto", "Dirección"}
		for _, r := range rows {
			t.Rows = append(t.Rows, []string{r.ID, r.Name, r.Contact, r.Address})
		}
	case KindInvoice:
		rows, err := store.ListAll[models.Invoice](f.store)
		if err != nil {
			return nil, err
		}
		t.Headers = []string{"ID", "ID del Cliente", "Monto", "Estado", "Fecha de Emisión"}
		for _, r := range rows {
			t.Rows = append(t.Rows, []string{r.ID, r.ClientID, r.Amount.String(), string(r.Status), formatDate(r.IssueDate)})
		}
	case KindBatch:
		rows, err := store.ListAll[models.Batch](f.store)
		if err != nil {
			return nil, err
		}
		t.Headers = []string{"ID", "Nombre del Producto", "Volumen (L)", "Estado", "Fecha de Inicio"}
		for _, r := range rows {
			t.Rows = append(t.Rows, []string{r.ID, r.ProductName, r.Volume.String(), string(r.Status), formatDate(r.StartDate)})
		}
	case KindFermenter:
		rows, err := store.ListAll[models.Fermenter](f.store)
		if err != nil {
			return nil, err
		}
		t.Headers = []string{"ID", "Capacidad (L)", "Estado", "ID de Lote", "Fecha de Inicio"}
		for _, r := range rows {
			t.Rows = append(t.Rows, []string{r.ID, r.Capacity.String(), string(r.Status), r.BatchID, formatNullableDate(r.StartDate)})
		}
	case KindPayment:
		rows, err := store.ListAll[models.Payment](f.store)
		if err != nil {
			return nil, err
		}
		t.Headers = []string{"ID", "ID de Factura", "Monto", "Fecha de Pago"}
		for _, r := range rows {
			t.Rows = append(t.Rows, []string{r.ID, r.InvoiceID, r.Amount.String(), formatDate(r.PaymentDate)})
		}
	default:
		return nil, utils.NewValidationError("unknown entity kind %q", string(kind))
	}
	return t, nil
}

func formatDate(ts time.Time) string {
	return ts.Format(models.DisplayDateLayout)
}

func formatNullableDate(ts *time.Time) string {
	if ts == nil {
		return ""
	}
	return ts.Format(models.DisplayDateLayout)
}
