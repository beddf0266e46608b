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

// BillingLedger maintains invoices and payments and derives invoice status
// from payment activity. Like the vessel manager it holds no state; the
// store owns every row.
type BillingLedger struct {
	store *store.Store
	log   *logrus.Logger
}

func NewBillingLedger(s *store.Store, logger *logrus.Logger) *BillingLedger {
	return &BillingLedger{store: s, log: logger}
}

// IssueInvoice creates an invoice stamped with the creation instant.
// Status is whatever the operator chose; nothing ever derives Overdue.
func (l *BillingLedger) IssueInvoice(input *models.NewInvoice) (*models.Invoice, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	status := input.Status
	if status == "" {
		status = models.InvoiceStatusPending
	}
	invoice := models.Invoice{
		ID:        strings.TrimSpace(input.ID),
		ClientID:  strings.TrimSpace(input.ClientID),
		Amount:    input.Amount,
		Status:    status,
		IssueDate: time.Now(),
	}
	if err := store.Create(l.store, invoice); err != nil {
		config.LogError(l.log, "billingWorkflow.go", "IssueInvoice", "store.Create", input.ID, err)
		return nil, err
	}
	return &invoice, nil
}

// RecordPayment persists a payment and reconciles its invoice.
//
// Reconciliation compares only the payment being recorded against the
// invoice amount: at or above it the invoice becomes Paid, below it
// Pending. Earlier payments against the same invoice are not summed; a run
// of small payments never marks an invoice Paid. The payment insert and
// the status update are two separate writes with no shared transaction, so
// a failed update leaves the payment recorded and the status stale.
func (l *BillingLedger) RecordPayment(input *models.NewPayment) (*models.Payment, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	payment := models.Payment{
		ID:          strings.TrimSpace(input.ID),
		InvoiceID:   strings.TrimSpace(input.InvoiceID),
		Amount:      input.Amount,
		PaymentDate: time.Now(),
	}
	if err := store.Create(l.store, payment); err != nil {
		config.LogError(l.log, "billingWorkflow.go", "RecordPayment", "store.Create", input.ID, err)
		return nil, err
	}

	invoice, err := store.FindByID[models.Invoice](l.store, payment.InvoiceID)
	if err != nil {
		config.LogError(l.log, "billingWorkflow.go", "RecordPayment", "reconcile fetch", payment.InvoiceID, err)
		return nil, err
	}
	status := models.InvoiceStatusPending
	if payment.Amount.GreaterThanOrEqual(invoice.Amount) {
		status = models.InvoiceStatusPaid
	}
	err = l.store.DB().Model(&models.Invoice{}).
		Where("id = ?", invoice.ID).
		Update("status", status).Error
	if err != nil {
		config.LogError(l.log, "billingWorkflow.go", "RecordPayment", "reconcile update", invoice.ID, err)
		return nil, err
	}
	return &payment, nil
}

func (l *BillingLedger) RemoveInvoice(id string) error {
	return store.Delete[models.Invoice](l.store, id)
}

func (l *BillingLedger) RemovePayment(id string) error {
	return store.Delete[models.Payment](l.store, id)
}

func (l *BillingLedger) GetInvoice(id string) (*models.Invoice, error) {
	return store.FindByID[models.Invoice](l.store, id)
}
