package handlers

import (
	"net/http"

	"travel/internal/services"

	"github.com/gin-gonic/gin"
)

// CatalogHandler lists the seeded reference data.
type CatalogHandler struct {
	Catalog services.CatalogService
}

func (h CatalogHandler) Hotels(c *gin.Context) {
	out, err := h.Catalog.Hotels(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h CatalogHandler) Activities(c *gin.Context) {
	out, err := h.Catalog.Activities(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h CatalogHandler) Transfers(c *gin.Context) {
	out, err := h.Catalog.Transfers(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
