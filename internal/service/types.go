package service

// Status is the proxy service's self-reported state. It is transient:
// refetched on every poll tick and never mutated locally between fetches.
type Status struct {
	Running       bool `json:"running"`
	ActiveThreads int  `json:"active_threads"`
	CacheEntries  int  `json:"cache_entries"`
	BlockedCount  int  `json:"blocked_count"`
	ListeningPort int  `json:"listening_port"`
}

// LogEntry is one intercepted request, as logged by the proxy.
// The service returns entries oldest first.
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	ClientIP  string `json:"client_ip"`
	URL       string `json:"url"`
	Action    string `json:"action"`
}

// CacheEntry is one cached response held by the proxy.
type CacheEntry struct {
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	SizeBytes int64  `json:"size_bytes"`
}

// ControlResult is the response to a start/stop control action.
// Message may describe a fallback port if the default was busy.
type ControlResult struct {
	Message string `json:"message"`
	Running bool   `json:"running"`
	Port    int    `json:"port"`
}

type logsResponse struct {
	Logs []LogEntry `json:"logs"`
}

type cacheResponse struct {
	Cache []CacheEntry `json:"cache"`
}

type blockedResponse struct {
	Blocked []string `json:"blocked"`
}

type domainRequest struct {
	Domain string `json:"domain"`
}
