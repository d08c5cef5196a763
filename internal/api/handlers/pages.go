package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/proxypanel/internal/api/models"
	"github.com/jroosing/proxypanel/internal/panel"
)

// ActivatePage godoc
// @Summary Activate a panel page
// @Description Tears down the previous page's pollers and wires the named page's views and cadences
// @Tags panel
// @Produce json
// @Param page path string true "Page key" Enums(dashboard, logs, cache, filter)
// @Success 200 {object} models.PageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /pages/{page} [post]
func (h *Handler) ActivatePage(c *gin.Context) {
	page, ok := panel.ParsePage(c.Param("page"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "unknown page: " + c.Param("page")})
		return
	}

	h.engine.SetPage(page)
	c.JSON(http.StatusOK, models.PageResponse{Page: string(page)})
}

// GetView godoc
// @Summary Rendered view state
// @Description Returns a view's rendered rows (or the status panel), its render sequence, and toggle state
// @Tags panel
// @Produce json
// @Param view path string true "View key" Enums(status, logs, cache, filters, visits)
// @Success 200 {object} models.ViewResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /views/{view} [get]
func (h *Handler) GetView(c *gin.Context) {
	view, ok := panel.ParseView(c.Param("view"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "unknown view: " + c.Param("view")})
		return
	}

	if view == panel.ViewStatus {
		c.JSON(http.StatusOK, models.StatusViewResponse{StatusState: h.engine.Status()})
		return
	}

	state, _ := h.engine.ViewState(view)
	c.JSON(http.StatusOK, models.ViewResponse{ViewState: state})
}

// SetViewLive godoc
// @Summary Flip a live toggle
// @Description Enables or disables periodic refresh for the logs or cache view
// @Tags panel
// @Accept json
// @Produce json
// @Param view path string true "View key" Enums(logs, cache)
// @Param body body models.LiveRequest true "Toggle state"
// @Success 200 {object} models.LiveResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /views/{view}/live [put]
func (h *Handler) SetViewLive(c *gin.Context) {
	view, ok := panel.ParseView(c.Param("view"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "unknown view: " + c.Param("view")})
		return
	}

	var req models.LiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.engine.SetLive(c.Request.Context(), view, *req.Enabled); err != nil {
		serviceError(c, err)
		return
	}

	h.logger.Info("live toggle changed", "view", string(view), "enabled", *req.Enabled)
	c.JSON(http.StatusOK, models.LiveResponse{View: string(view), Enabled: *req.Enabled})
}

// RefreshView godoc
// @Summary Manual refresh
// @Description Fetches a view's data once, independent of its timer
// @Tags panel
// @Produce json
// @Param view path string true "View key" Enums(status, logs, cache, filters, visits)
// @Success 200 {object} models.StatusResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /views/{view}/refresh [post]
func (h *Handler) RefreshView(c *gin.Context) {
	view, ok := panel.ParseView(c.Param("view"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "unknown view: " + c.Param("view")})
		return
	}

	if err := h.engine.Refresh(c.Request.Context(), view); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Notices godoc
// @Summary Active notifications
// @Description Returns the notices that have not yet expired
// @Tags panel
// @Produce json
// @Success 200 {object} models.NoticesResponse
// @Router /notices [get]
func (h *Handler) Notices(c *gin.Context) {
	c.JSON(http.StatusOK, models.NoticesResponse{Notices: h.notices.Active()})
}
