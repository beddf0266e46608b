package handlers

import (
	"net/http"

	"bitbucket.org/wilckenslagers/brewery_backend/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) createInvoice(c *gin.Context) {
	var input models.NewInvoice
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, bindError(err))
		return
	}
	invoice, err := h.billing.IssueInvoice(&input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

func (h *Handler) deleteInvoice(c *gin.Context) {
	if err := h.billing.RemoveInvoice(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) createPayment(c *gin.Context) {
	var input models.NewPayment
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, bindError(err))
		return
	}
	payment, err := h.billing.RecordPayment(&input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *Handler) deletePayment(c *gin.Context) {
	if err := h.billing.RemovePayment(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
