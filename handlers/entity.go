package handlers

import (
	"net/http"
	"time"

	"bitbucket.org/wilckenslagers/brewery_backend/models"
	"bitbucket.org/wilckenslagers/brewery_backend/store"
	"github.com/gin-gonic/gin"
)

// Clients and batches have no occupancy or reconciliation rules; their
// data entry goes straight to the entity store.

func (h *Handler) createClient(c *gin.Context) {
	var input models.NewClient
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, bindError(err))
		return
	}
	client := input.Model()
	if err := store.Create(h.store, client); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *Handler) deleteClient(c *gin.Context) {
	if err := store.Delete[models.Client](h.store, c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) createBatch(c *gin.Context) {
	var input models.NewBatch
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, bindError(err))
		return
	}
	batch := input.Model(time.Now())
	if err := store.Create(h.store, batch); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, batch)
}

func (h *Handler) deleteBatch(c *gin.Context) {
	if err := store.Delete[models.Batch](h.store, c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
