package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/proxypanel/internal/api/models"
)

// StartProxy godoc
// @Summary Start the proxy
// @Description Asks the proxy-control service to start the proxy listener and refreshes the status panel
// @Tags control
// @Produce json
// @Success 200 {object} models.ControlResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /proxy/start [post]
func (h *Handler) StartProxy(c *gin.Context) {
	res, err := h.engine.StartProxy(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}

	h.logger.Info("proxy started", "port", res.Port, "message", res.Message)
	c.JSON(http.StatusOK, models.ControlResponse{Message: res.Message, Running: res.Running, Port: res.Port})
}

// StopProxy godoc
// @Summary Stop the proxy
// @Description Asks the proxy-control service to stop the proxy listener and refreshes the status panel
// @Tags control
// @Produce json
// @Success 200 {object} models.ControlResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /proxy/stop [post]
func (h *Handler) StopProxy(c *gin.Context) {
	res, err := h.engine.StopProxy(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}

	h.logger.Info("proxy stopped", "message", res.Message)
	c.JSON(http.StatusOK, models.ControlResponse{Message: res.Message, Running: res.Running, Port: res.Port})
}

// ClearLogs godoc
// @Summary Clear the request log
// @Description Clears the proxy's request log and re-fetches the log view; on failure the rendered table is left in place
// @Tags control
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /logs/clear [post]
func (h *Handler) ClearLogs(c *gin.Context) {
	if err := h.engine.ClearLogs(c.Request.Context()); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// ClearCache godoc
// @Summary Clear the response cache
// @Description Clears the proxy's response cache and re-fetches the cache view
// @Tags control
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /cache/clear [post]
func (h *Handler) ClearCache(c *gin.Context) {
	if err := h.engine.ClearCache(c.Request.Context()); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}
