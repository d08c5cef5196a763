package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/proxypanel/internal/api/models"
)

// AddFilter godoc
// @Summary Add a blocked domain
// @Description Adds a domain to the proxy's block list; the filter view re-renders from the service's response
// @Tags filter
// @Accept json
// @Produce json
// @Param body body models.DomainRequest true "Domain to block"
// @Success 200 {object} models.StatusResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /filter [post]
func (h *Handler) AddFilter(c *gin.Context) {
	var req models.DomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	domain := strings.TrimSpace(req.Domain)
	if domain == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "domain required"})
		return
	}

	if err := h.engine.AddDomain(c.Request.Context(), domain); err != nil {
		serviceError(c, err)
		return
	}

	h.logger.Info("domain blocked", "domain", domain)
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// RemoveFilter godoc
// @Summary Remove a blocked domain
// @Description Removes a domain from the block list. The request must carry confirm=true, the UI's explicit confirmation naming the domain; without it nothing is sent to the service.
// @Tags filter
// @Accept json
// @Produce json
// @Param body body models.RemoveDomainRequest true "Domain and confirmation"
// @Success 200 {object} models.RemoveDomainResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /filter [delete]
func (h *Handler) RemoveFilter(c *gin.Context) {
	var req models.RemoveDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	domain := strings.TrimSpace(req.Domain)
	removed, err := h.engine.RemoveDomain(c.Request.Context(), domain, func(string) bool {
		return req.Confirm
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	if !removed {
		c.JSON(http.StatusOK, models.RemoveDomainResponse{Status: "cancelled", Removed: false})
		return
	}

	h.logger.Info("domain unblocked", "domain", domain)
	c.JSON(http.StatusOK, models.RemoveDomainResponse{Status: "ok", Removed: true})
}
