package handlers

import (
	"net/http"

	"bitbucket.org/wilckenslagers/brewery_backend/models"
	"bitbucket.org/wilckenslagers/brewery_backend/utils"
	"github.com/gin-gonic/gin"
)

func (h *Handler) createBarrel(c *gin.Context) {
	var input models.NewBarrel
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, bindError(err))
		return
	}
	barrel, err := h.vessels.RegisterBarrel(&input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, barrel)
}

// replaceBarrel takes the id from the URL path; a body id is optional
// but must agree with it.
func (h *Handler) replaceBarrel(c *gin.Context) {
	var input models.NewBarrel
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, bindError(err))
		return
	}
	if input.ID != "" && input.ID != c.Param("id") {
		abortWithError(c, utils.NewValidationError("body id %q does not match path id %q", input.ID, c.Param("id")))
		return
	}
	input.ID = c.Param("id")
	barrel, err := h.vessels.ReplaceBarrel(&input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, barrel)
}

func (h *Handler) deleteBarrel(c *gin.Context) {
	if err := h.vessels.RemoveBarrel(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) getBarrel(c *gin.Context) {
	barrel, err := h.vessels.GetBarrel(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, barrel)
}

// barrelQR serves a printable QR label carrying exactly the barrel id.
func (h *Handler) barrelQR(c *gin.Context) {
	barrel, err := h.vessels.GetBarrel(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	img, err := utils.EncodeVesselQR(barrel.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", img)
}

func (h *Handler) createFermenter(c *gin.Context) {
	var input models.NewFermenter
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, bindError(err))
		return
	}
	fermenter, err := h.vessels.RegisterFermenter(&input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fermenter)
}

func (h *Handler) replaceFermenter(c *gin.Context) {
	var input models.NewFermenter
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, bindError(err))
		return
	}
	if input.ID != "" && input.ID != c.Param("id") {
		abortWithError(c, utils.NewValidationError("body id %q does not match path id %q", input.ID, c.Param("id")))
		return
	}
	input.ID = c.Param("id")
	fermenter, err := h.vessels.ReplaceFermenter(&input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, fermenter)
}

func (h *Handler) deleteFermenter(c *gin.Context) {
	if err := h.vessels.RemoveFermenter(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) getFermenter(c *gin.Context) {
	fermenter, err := h.vessels.GetFermenter(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, fermenter)
}

func (h *Handler) fermenterQR(c *gin.Context) {
	fermenter, err := h.vessels.GetFermenter(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	img, err := utils.EncodeVesselQR(fermenter.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", img)
}
