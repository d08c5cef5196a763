package handlers

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/proxypanel/internal/api/models"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// Health godoc
// @Summary Health check
// @Description Returns panel health status
// @Tags system
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Stats godoc
// @Summary Panel statistics
// @Description Returns panel process statistics including memory, goroutines, and scheduler state
// @Tags system
// @Produce json
// @Success 200 {object} models.PanelStatsResponse
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)

	resp := models.PanelStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		NumCPU:        runtime.NumCPU(),
		MemoryAllocMB: float64(m.Alloc) / 1024 / 1024,
	}

	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if mi, err := proc.MemoryInfo(); err == nil && mi != nil {
			resp.ProcessRSSMB = float64(mi.RSS) / 1024 / 1024
		}
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		resp.SystemMemUsedPct = vm.UsedPercent
	}

	if h.engine != nil {
		resp.ActivePage = string(h.engine.Page())
		resp.ActiveTimers = h.engine.Scheduler().ActiveTimers()
	}

	c.JSON(http.StatusOK, resp)
}
