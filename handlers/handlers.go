package handlers

import (
	"net/http"
	"path/filepath"

	"bitbucket.org/wilckenslagers/brewery_backend/reports"
	"bitbucket.org/wilckenslagers/brewery_backend/store"
	"bitbucket.org/wilckenslagers/brewery_backend/utils"
	"bitbucket.org/wilckenslagers/brewery_backend/workflow"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler wires the data-entry surface onto the domain components. The
// visual layer (whatever renders the forms) talks to these endpoints; all
// failures come back synchronously as a classified message for the
// operator.
type Handler struct {
	store     *store.Store
	vessels   *workflow.VesselManager
	billing   *workflow.BillingLedger
	reports   *reports.Facade
	log       *logrus.Logger
	exportDir string
}

func New(s *store.Store, vessels *workflow.VesselManager, billing *workflow.BillingLedger, facade *reports.Facade, logger *logrus.Logger, exportDir string) *Handler {
	return &Handler{
		store:     s,
		vessels:   vessels,
		billing:   billing,
		reports:   facade,
		log:       logger,
		exportDir: exportDir,
	}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	api := r.Group("/api/v1")

	api.POST("/clients", h.createClient)
	api.DELETE("/clients/:id", h.deleteClient)
	api.GET("/clients", h.listKind(reports.KindClient))
	api.GET("/clients/export", h.exportKind(reports.KindClient))

	api.POST("/barrels", h.createBarrel)
	api.PUT("/barrels/:id", h.replaceBarrel)
	api.DELETE("/barrels/:id", h.deleteBarrel)
	api.GET("/barrels", h.listKind(reports.KindBarrel))
	api.GET("/barrels/export", h.exportKind(reports.KindBarrel))
	api.GET("/barrels/:id", h.getBarrel)
	api.GET("/barrels/:id/qr", h.barrelQR)

	api.POST("/fermenters", h.createFermenter)
	api.PUT("/fermenters/:id", h.replaceFermenter)
	api.DELETE("/fermenters/:id", h.deleteFermenter)
	api.GET("/fermenters", h.listKind(reports.KindFermenter))
	api.GET("/fermenters/export", h.exportKind(reports.KindFermenter))
	api.GET("/fermenters/:id", h.getFermenter)
	api.GET("/fermenters/:id/qr", h.fermenterQR)

	api.POST("/batches", h.createBatch)
	api.DELETE("/batches/:id", h.deleteBatch)
	api.GET("/batches", h.listKind(reports.KindBatch))
	api.GET("/batches/export", h.exportKind(reports.KindBatch))

	api.POST("/invoices", h.createInvoice)
	api.DELETE("/invoices/:id", h.deleteInvoice)
	api.GET("/invoices", h.listKind(reports.KindInvoice))
	api.GET("/invoices/export", h.exportKind(reports.KindInvoice))

	api.POST("/payments", h.createPayment)
	api.DELETE("/payments/:id", h.deletePayment)
	api.GET("/payments", h.listKind(reports.KindPayment))
	api.GET("/payments/export", h.exportKind(reports.KindPayment))
}

func statusForError(err error) int {
	class, ok := utils.ClassOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch class {
	case utils.ErrorClassValidation:
		return http.StatusBadRequest
	case utils.ErrorClassDuplicateKey:
		return http.StatusConflict
	case utils.ErrorClassReference:
		return http.StatusUnprocessableEntity
	case utils.ErrorClassNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// abortWithError surfaces the classified message verbatim; the operator's
// in-progress input stays untouched on their side.
func abortWithError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusForError(err), gin.H{"error": err.Error()})
}

func bindError(err error) error {
	return utils.NewValidationError("invalid request body: %s", err.Error())
}

// listKind serves GET /<kind>s, applying the substring filter when ?q= is
// present.
func (h *Handler) listKind(kind reports.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			rows any
			err  error
		)
		if term, ok := c.GetQuery("q"); ok {
			rows, err = h.reports.Filter(kind, term)
		} else {
			rows, err = h.reports.List(kind)
		}
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// exportKind writes a timestamped export file into the configured export
// directory and serves it back as an attachment.
func (h *Handler) exportKind(kind reports.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			path string
			err  error
		)
		switch format := c.DefaultQuery("format", "csv"); format {
		case "csv":
			path, err = h.reports.ExportCSV(kind, h.exportDir)
		case "xlsx":
			path, err = h.reports.ExportXLSX(kind, h.exportDir)
		default:
			abortWithError(c, utils.NewValidationError("unknown export format %q", format))
			return
		}
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.FileAttachment(path, filepath.Base(path))
	}
}
