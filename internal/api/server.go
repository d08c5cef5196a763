// Package api provides the HTTP surface of the proxy control panel: the
// JSON API the pages talk to, the swagger UI, and the embedded page
// markup, served through a Gin-based HTTP server.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/proxypanel/internal/api/handlers"
	"github.com/jroosing/proxypanel/internal/api/middleware"
	"github.com/jroosing/proxypanel/internal/config"
	"github.com/jroosing/proxypanel/internal/notify"
	"github.com/jroosing/proxypanel/internal/panel"
)

// Server is the panel's HTTP server.
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	engine     *gin.Engine
	httpServer *http.Server
}

// New builds the panel server around the sync engine and notice center.
func New(cfg *config.Config, eng *panel.Engine, notices *notify.Center, logger *slog.Logger) *Server {
	if cfg == nil {
		panic("api.New: cfg is nil")
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.SlogRequestLogger(logger))

	h := handlers.New(eng, notices, logger)
	RegisterRoutes(engine, h)
	MountUI(engine, logger)

	addr := net.JoinHostPort(cfg.Panel.Host, strconv.Itoa(cfg.Panel.Port))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{cfg: cfg, logger: logger, engine: engine, httpServer: httpServer}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s.httpServer == nil {
		return ""
	}
	return s.httpServer.Addr
}

// Engine returns the underlying Gin engine, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
