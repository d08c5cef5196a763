package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jroosing/proxypanel/internal/api/handlers"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jroosing/proxypanel/internal/api/docs" // swagger docs
)

// RegisterRoutes wires the panel API onto the Gin engine.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)

	api.POST("/pages/:page", h.ActivatePage)
	api.GET("/views/:view", h.GetView)
	api.PUT("/views/:view/live", h.SetViewLive)
	api.POST("/views/:view/refresh", h.RefreshView)
	api.GET("/notices", h.Notices)

	api.POST("/proxy/start", h.StartProxy)
	api.POST("/proxy/stop", h.StopProxy)
	api.POST("/logs/clear", h.ClearLogs)
	api.POST("/cache/clear", h.ClearCache)
	api.POST("/filter", h.AddFilter)
	api.DELETE("/filter", h.RemoveFilter)
}
