// Package handlers implements the REST API endpoint handlers for ProxyPanel.
//
// REST API Endpoints:
//
// System:
//   - GET /api/v1/health - Panel health check
//   - GET /api/v1/stats - Panel process statistics (uptime, memory, goroutines)
//
// Panel state:
//   - POST /api/v1/pages/:page - Activate a page (dashboard, logs, cache, filter)
//   - GET /api/v1/views/:view - Rendered state of a view
//   - PUT /api/v1/views/:view/live - Flip a view's live-refresh toggle
//   - POST /api/v1/views/:view/refresh - Manual refresh, independent of timers
//   - GET /api/v1/notices - Currently visible notifications
//
// Proxy control (forwarded to the proxy-control service):
//   - POST /api/v1/proxy/start - Start the proxy listener
//   - POST /api/v1/proxy/stop - Stop the proxy listener
//   - POST /api/v1/logs/clear - Clear the request log
//   - POST /api/v1/cache/clear - Clear the response cache
//   - POST /api/v1/filter - Add a blocked domain
//   - DELETE /api/v1/filter - Remove a blocked domain (requires confirmation)
//
// Failures reaching the proxy-control service answer 502 and are also
// pushed onto the notices feed by the transport layer.
//
// @title ProxyPanel API
// @version 1.0
// @description REST API for the proxy control panel: page activation, live view state, and proxy control passthrough.
//
// @contact.name ProxyPanel Support
// @contact.url https://github.com/jroosing/proxypanel
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8090
// @BasePath /api/v1
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/proxypanel/internal/api/models"
	"github.com/jroosing/proxypanel/internal/notify"
	"github.com/jroosing/proxypanel/internal/panel"
	"github.com/jroosing/proxypanel/internal/service"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	engine    *panel.Engine
	notices   *notify.Center
	logger    *slog.Logger
	startTime time.Time
}

// New creates a new Handler around the sync engine and notice center.
func New(engine *panel.Engine, notices *notify.Center, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		engine:    engine,
		notices:   notices,
		logger:    logger,
		startTime: time.Now(),
	}
}

// Engine returns the sync engine, for handlers and tests that need it.
func (h *Handler) Engine() *panel.Engine {
	return h.engine
}

// serviceError maps an engine/service failure onto an API response. The
// message has already been notified; here it only has to reach the
// direct caller.
func serviceError(c *gin.Context, err error) {
	status := http.StatusBadGateway
	if errors.Is(err, panel.ErrNotToggleable) {
		status = http.StatusBadRequest
	} else if !errors.Is(err, service.ErrService) {
		status = http.StatusInternalServerError
	}
	c.JSON(status, models.ErrorResponse{Error: err.Error()})
}
