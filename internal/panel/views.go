package panel

import (
	"strconv"

	"github.com/jroosing/proxypanel/internal/service"
	"github.com/jroosing/proxypanel/internal/visits"
)

// View identifies one pollable panel view.
type View string

const (
	ViewStatus  View = "status"
	ViewLogs    View = "logs"
	ViewCache   View = "cache"
	ViewFilters View = "filters"
	ViewVisits  View = "visits"
)

// Page identifies one of the panel's pages.
type Page string

const (
	PageDashboard Page = "dashboard"
	PageLogs      Page = "logs"
	PageCache     Page = "cache"
	PageFilter    Page = "filter"
)

// ParsePage validates a page key from the UI.
func ParsePage(s string) (Page, bool) {
	switch Page(s) {
	case PageDashboard, PageLogs, PageCache, PageFilter:
		return Page(s), true
	}
	return "", false
}

// ParseView validates a view key from the UI.
func ParseView(s string) (View, bool) {
	switch View(s) {
	case ViewStatus, ViewLogs, ViewCache, ViewFilters, ViewVisits:
		return View(s), true
	}
	return "", false
}

// Container identifiers: the page elements views render into. A page
// registers only the containers its markup carries; rendering into an
// unregistered container is a silent no-op.
const (
	containerLogTable     = "log-table"
	containerCacheTable   = "cache-table"
	containerFilterList   = "filter-list"
	containerRecentVisits = "recent-visits"
)

// Row is one rendered table row. Key carries the removal key for rows
// that have a removal affordance (the filter list's domain).
type Row struct {
	Key   string   `json:"key,omitempty"`
	Cells []string `json:"cells"`
}

// logRow maps a request log entry to its rendered cells. Zero values
// decode to ""/0, so missing fields render as empty cells.
func logRow(e service.LogEntry) Row {
	return Row{Cells: []string{e.Timestamp, e.ClientIP, e.URL, e.Action}}
}

// cacheRow maps a cache entry to its rendered cells.
func cacheRow(e service.CacheEntry) Row {
	return Row{Cells: []string{e.Timestamp, e.URL, strconv.FormatInt(e.SizeBytes, 10)}}
}

// filterRow maps a blocked domain to a row keyed for removal.
func filterRow(domain string) Row {
	return Row{Key: domain, Cells: []string{domain}}
}

// visitRow maps a recent-visit projection to its rendered cells.
func visitRow(v visits.Visit) Row {
	return Row{Cells: []string{v.Domain, v.Action, v.Timestamp}}
}

// reverseRows flips service order so the most recent entry renders first.
func reverseRows(rows []Row) []Row {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows
}

// StatusSlot identifies one of the status panel's independent hooks.
// A page may carry any subset; each registered slot updates on its own.
type StatusSlot string

const (
	SlotIndicator    StatusSlot = "indicator"
	SlotThreads      StatusSlot = "threads"
	SlotCacheEntries StatusSlot = "cache_entries"
	SlotBlocked      StatusSlot = "blocked"
)

// StatusState is the rendered status panel.
type StatusState struct {
	IndicatorClass string `json:"indicator_class"`
	IndicatorLabel string `json:"indicator_label"`
	ListeningPort  int    `json:"listening_port"`
	ActiveThreads  int    `json:"active_threads"`
	CacheEntries   int    `json:"cache_entries"`
	BlockedCount   int    `json:"blocked_count"`
}

// indicator maps the running flag to its style class and human label.
func indicator(running bool) (class, label string) {
	if running {
		return "running", "Running"
	}
	return "stopped", "Stopped"
}

// pageContainers lists the row containers each page's markup carries.
var pageContainers = map[Page][]string{
	PageDashboard: {containerRecentVisits},
	PageLogs:      {containerLogTable},
	PageCache:     {containerCacheTable},
	PageFilter:    {containerFilterList},
}

// pageStatusSlots lists the status hooks each page's markup carries.
var pageStatusSlots = map[Page][]StatusSlot{
	PageDashboard: {SlotIndicator, SlotThreads, SlotCacheEntries, SlotBlocked},
}
