package models

import "time"

// PanelStatsResponse contains panel process runtime statistics.
type PanelStatsResponse struct {
	Uptime           string    `json:"uptime"`
	UptimeSeconds    int64     `json:"uptime_seconds"`
	StartTime        time.Time `json:"start_time"`
	GoRoutines       int       `json:"goroutines"`
	NumCPU           int       `json:"num_cpu"`
	MemoryAllocMB    float64   `json:"memory_alloc_mb"`
	ProcessRSSMB     float64   `json:"process_rss_mb"`
	SystemMemUsedPct float64   `json:"system_mem_used_pct"`
	ActivePage       string    `json:"active_page"`
	ActiveTimers     int       `json:"active_timers"`
}
