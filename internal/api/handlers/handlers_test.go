// Package handlers_test provides behavior tests for the API handlers package.
package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/proxypanel/internal/api/handlers"
	"github.com/jroosing/proxypanel/internal/api/models"
	"github.com/jroosing/proxypanel/internal/notify"
	"github.com/jroosing/proxypanel/internal/panel"
	"github.com/jroosing/proxypanel/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeControlAPI stands in for the proxy-control service. It answers the
// control API's endpoints from in-memory state.
type fakeControlAPI struct {
	mu      sync.Mutex
	running bool
	logs    []service.LogEntry
	cache   []service.CacheEntry
	blocked []string

	// logDelay stalls /logs/view responses; set before serving starts.
	logDelay time.Duration

	removeCalls int
}

func newFakeControlAPI() *fakeControlAPI {
	return &fakeControlAPI{
		running: true,
		logs: []service.LogEntry{
			{Timestamp: "2024-05-01 10:00:00", ClientIP: "10.0.0.5", URL: "http://a.com/x", Action: "ALLOWED"},
			{Timestamp: "2024-05-01 10:00:05", ClientIP: "10.0.0.5", URL: "http://b.com/y", Action: "BLOCKED"},
		},
		cache: []service.CacheEntry{
			{Timestamp: "2024-05-01 10:00:01", URL: "http://a.com/x", SizeBytes: 512},
		},
		blocked: []string{"ads.example.com"},
	}
}

func (f *fakeControlAPI) removals() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.removeCalls
}

func (f *fakeControlAPI) server(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(v); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}

	mux.HandleFunc("/control/start", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		f.running = true
		f.mu.Unlock()
		writeJSON(w, map[string]any{"message": "proxy started", "running": true, "port": 8888})
	})
	mux.HandleFunc("/control/stop", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		f.running = false
		f.mu.Unlock()
		writeJSON(w, map[string]any{"message": "proxy stopped", "running": false})
	})
	mux.HandleFunc("/status", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, map[string]any{
			"running":        f.running,
			"active_threads": 3,
			"cache_entries":  len(f.cache),
			"blocked_count":  len(f.blocked),
			"listening_port": 8888,
		})
	})
	mux.HandleFunc("/logs/view", func(w http.ResponseWriter, _ *http.Request) {
		if f.logDelay > 0 {
			time.Sleep(f.logDelay)
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, map[string]any{"logs": f.logs})
	})
	mux.HandleFunc("/logs/clear", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		f.logs = nil
		f.mu.Unlock()
		writeJSON(w, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/cache/view", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, map[string]any{"cache": f.cache})
	})
	mux.HandleFunc("/cache/clear", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		f.cache = nil
		f.mu.Unlock()
		writeJSON(w, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/filter/view", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, map[string]any{"blocked": f.blocked})
	})
	mux.HandleFunc("/filter/add", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Domain string `json:"domain"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Domain == "" {
			w.WriteHeader(http.StatusBadRequest)
			writeJSON(w, map[string]string{"error": "domain required"})
			return
		}
		f.mu.Lock()
		f.blocked = append(f.blocked, req.Domain)
		blocked := append([]string(nil), f.blocked...)
		f.mu.Unlock()
		writeJSON(w, map[string]any{"status": "ok", "blocked": blocked})
	})
	mux.HandleFunc("/filter/remove", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Domain string `json:"domain"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			writeJSON(w, map[string]string{"error": "bad request"})
			return
		}
		f.mu.Lock()
		f.removeCalls++
		kept := f.blocked[:0]
		for _, d := range f.blocked {
			if d != req.Domain {
				kept = append(kept, d)
			}
		}
		f.blocked = kept
		f.mu.Unlock()
		writeJSON(w, map[string]string{"status": "ok"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// createTestHandler wires a real engine against the fake control service.
// Cadences are long enough that no timer fires during a test.
func createTestHandler(t *testing.T, f *fakeControlAPI) *handlers.Handler {
	t.Helper()

	srv := f.server(t)
	notices := notify.NewCenter()
	client := service.NewClient(srv.URL, 5*time.Second, notices, nil)
	eng := panel.NewEngine(client, panel.Options{
		StatusInterval:  time.Hour,
		LogsInterval:    time.Hour,
		CacheInterval:   time.Hour,
		FiltersInterval: time.Hour,
		VisitsInterval:  time.Hour,
	}, nil)
	t.Cleanup(eng.Close)

	return handlers.New(eng, notices, nil)
}

func performRequest(r http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// waitForRows polls a view endpoint until its rendered rows are non-empty.
// Page activation fetches in the background, so tests wait for the render.
func waitForRows(t *testing.T, router http.Handler, path string) models.ViewResponse {
	t.Helper()

	var resp models.ViewResponse
	require.Eventually(t, func() bool {
		w := performRequest(router, "GET", path, "")
		if w.Code != http.StatusOK {
			return false
		}
		resp = models.ViewResponse{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			return false
		}
		return len(resp.Rows) > 0
	}, 2*time.Second, 10*time.Millisecond)
	return resp
}

// ============================================================================
// Health Endpoint Tests
// ============================================================================

func TestHealth_ReturnsOK(t *testing.T) {
	h := createTestHandler(t, newFakeControlAPI())
	router := gin.New()
	router.GET("/health", h.Health)

	w := performRequest(router, "GET", "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.StatusResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
}

// ============================================================================
// Stats Endpoint Tests
// ============================================================================

func TestStats_ReturnsPanelStats(t *testing.T) {
	h := createTestHandler(t, newFakeControlAPI())
	router := gin.New()
	router.GET("/stats", h.Stats)

	w := performRequest(router, "GET", "/stats", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.PanelStatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Uptime)
	assert.GreaterOrEqual(t, resp.GoRoutines, 1)
	assert.Positive(t, resp.NumCPU)
}

// ============================================================================
// Page Activation Tests
// ============================================================================

func TestActivatePage_Dashboard(t *testing.T) {
	h := createTestHandler(t, newFakeControlAPI())
	router := gin.New()
	router.POST("/pages/:page", h.ActivatePage)

	w := performRequest(router, "POST", "/pages/dashboard", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.PageResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "dashboard", resp.Page)
	assert.Equal(t, panel.PageDashboard, h.Engine().Page())
}

func TestActivatePage_InitialFetchOutlivesRequest(t *testing.T) {
	f := newFakeControlAPI()
	f.logDelay = 150 * time.Millisecond
	h := createTestHandler(t, f)
	router := gin.New()
	router.POST("/pages/:page", h.ActivatePage)
	router.GET("/views/:view", h.GetView)
	router.GET("/notices", h.Notices)

	// An HTTP server cancels the request context as soon as the
	// activation response is written; the initial fetch is slower than
	// the request and must survive that cancellation.
	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodPost, "/pages/logs", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	cancel()
	require.Equal(t, http.StatusOK, w.Code)

	resp := waitForRows(t, router, "/views/logs")
	assert.Len(t, resp.Rows, 2)

	// No phantom failure on the notices feed.
	nw := performRequest(router, "GET", "/notices", "")
	var notices models.NoticesResponse
	require.NoError(t, json.Unmarshal(nw.Body.Bytes(), &notices))
	assert.Empty(t, notices.Notices)
}

func TestActivatePage_Unknown(t *testing.T) {
	h := createTestHandler(t, newFakeControlAPI())
	router := gin.New()
	router.POST("/pages/:page", h.ActivatePage)

	w := performRequest(router, "POST", "/pages/settings", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ============================================================================
// View State Tests
// ============================================================================

func TestGetView_LogsAfterActivation(t *testing.T) {
	h := createTestHandler(t, newFakeControlAPI())
	router := gin.New()
	router.POST("/pages/:page", h.ActivatePage)
	router.GET("/views/:view", h.GetView)

	performRequest(router, "POST", "/pages/logs", "")
	resp := waitForRows(t, router, "/views/logs")

	// Newest entry first.
	require.Len(t, resp.Rows, 2)
	assert.Contains(t, resp.Rows[0].Cells[2], "b.com")
	assert.Contains(t, resp.Rows[1].Cells[2], "a.com")
	require.NotNil(t, resp.Live)
	assert.False(t, *resp.Live)
}

func TestGetView_Status(t *testing.T) {
	h := createTestHandler(t, newFakeControlAPI())
	router := gin.New()
	router.POST("/pages/:page", h.ActivatePage)
	router.GET("/views/:view", h.GetView)
	router.POST("/views/:view/refresh", h.RefreshView)

	performRequest(router, "POST", "/pages/dashboard", "")
	w := performRequest(router, "POST", "/views/status/refresh", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, "GET", "/views/status", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.StatusViewResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Running", resp.IndicatorLabel)
	assert.Equal(t, "running", resp.IndicatorClass)
	assert.Equal(t, 3, resp.ActiveThreads)
}

func TestGetView_Unknown(t *testing.T) {
	h := createTestHandler(t, newFakeControlAPI())
	router := gin.New()
	router.GET("/views/:view", h.GetView)

	w := performRequest(router, "GET", "/views/nonexistent", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ============================================================================
// Live Toggle Tests
// ============================================================================

func TestSetViewLive_EnableLogs(t *testing.T) {
	h := createTestHandler(t, newFakeControlAPI())
	router := gin.New()
	router.POST("/pages/:page", h.ActivatePage)
	router.PUT("/views/:view/live", h.SetViewLive)

	performRequest(router, "POST", "/pages/logs", "")
	w := performRequest(router, "PUT", "/views/logs/live", `{"enabled":true}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.LiveResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "logs", resp.View)
	assert.True(t, resp.Enabled)
	assert.True(t, h.Engine().IsLive(panel.ViewLogs))
}

func TestSetViewLive_FixedCadenceView(t *testing.T) {
	h := createTestHandler(t, newFakeControlAPI())
	router := gin.New()
	router.PUT("/views/:view/live", h.SetViewLive)

	w := performRequest(router, "PUT", "/views/filters/live", `{"enabled":true}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetViewLive_MissingBody(t *testing.T) {
	h := createTestHandler(t, newFakeControlAPI())
	router := gin.New()
	router.PUT("/views/:view/live", h.SetViewLive)

	w := performRequest(router, "PUT", "/views/logs/live", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ============================================================================
// Manual Refresh Tests
// ============================================================================

func TestRefreshView_Unknown(t *testing.T) {
	h := createTestHandler(t, newFakeControlAPI())
	router := gin.New()
	router.POST("/views/:view/refresh", h.RefreshView)

	w := performRequest(router, "POST", "/views/nonexistent/refresh", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRefreshView_ServiceDown(t *testing.T) {
	notices := notify.NewCenter()
	client := service.NewClient("http://127.0.0.1:1", time.Second, notices, nil)
	eng := panel.NewEngine(client, panel.Options{StatusInterval: time.Hour}, nil)
	t.Cleanup(eng.Close)
	h := handlers.New(eng, notices, nil)

	router := gin.New()
	router.POST("/views/:view/refresh", h.RefreshView)
	router.GET("/notices", h.Notices)

	w := performRequest(router, "POST", "/views/status/refresh", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)

	// The failure is also on the notices feed.
	w = performRequest(router, "GET", "/notices", "")
	var resp models.NoticesResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Notices)
	assert.Equal(t, "proxy service unreachable", resp.Notices[0].Text)
}

// ============================================================================
// Proxy Control Tests
// ============================================================================

func TestStartProxy_Success(t *testing.T) {
	h := createTestHandler(t, newFakeControlAPI())
	router := gin.New()
	router.POST("/proxy/start", h.StartProxy)

	w := performRequest(router, "POST", "/proxy/start", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ControlResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Running)
	assert.Equal(t, 8888, resp.Port)
}

func TestStopProxy_UpdatesStatusPanel(t *testing.T) {
	f := newFakeControlAPI()
	h := createTestHandler(t, f)
	router := gin.New()
	router.POST("/pages/:page", h.ActivatePage)
	router.POST("/proxy/stop", h.StopProxy)
	router.GET("/views/:view", h.GetView)

	performRequest(router, "POST", "/pages/dashboard", "")
	w := performRequest(router, "POST", "/proxy/stop", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, "GET", "/views/status", "")
	var resp models.StatusViewResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Stopped", resp.IndicatorLabel)
	assert.Equal(t, "stopped", resp.IndicatorClass)
}

func TestClearLogs_Success(t *testing.T) {
	h := createTestHandler(t, newFakeControlAPI())
	router := gin.New()
	router.POST("/pages/:page", h.ActivatePage)
	router.POST("/logs/clear", h.ClearLogs)
	router.GET("/views/:view", h.GetView)

	performRequest(router, "POST", "/pages/logs", "")
	waitForRows(t, router, "/views/logs")

	w := performRequest(router, "POST", "/logs/clear", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, "GET", "/views/logs", "")
	var resp models.ViewResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Empty(t, resp.Rows)
}

func TestClearCache_Success(t *testing.T) {
	h := createTestHandler(t, newFakeControlAPI())
	router := gin.New()
	router.POST("/cache/clear", h.ClearCache)

	w := performRequest(router, "POST", "/cache/clear", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

// ============================================================================
// Filter Tests
// ============================================================================

func TestAddFilter_RendersResponseList(t *testing.T) {
	h := createTestHandler(t, newFakeControlAPI())
	router := gin.New()
	router.POST("/pages/:page", h.ActivatePage)
	router.POST("/filter", h.AddFilter)
	router.GET("/views/:view", h.GetView)

	performRequest(router, "POST", "/pages/filter", "")
	waitForRows(t, router, "/views/filters")

	w := performRequest(router, "POST", "/filter", `{"domain":"tracker.example.net"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, "GET", "/views/filters", "")
	var resp models.ViewResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "tracker.example.net", resp.Rows[1].Key)
}

func TestAddFilter_EmptyDomain(t *testing.T) {
	h := createTestHandler(t, newFakeControlAPI())
	router := gin.New()
	router.POST("/filter", h.AddFilter)

	w := performRequest(router, "POST", "/filter", `{"domain":"   "}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddFilter_InvalidJSON(t *testing.T) {
	h := createTestHandler(t, newFakeControlAPI())
	router := gin.New()
	router.POST("/filter", h.AddFilter)

	w := performRequest(router, "POST", "/filter", `invalid json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveFilter_Confirmed(t *testing.T) {
	f := newFakeControlAPI()
	h := createTestHandler(t, f)
	router := gin.New()
	router.DELETE("/filter", h.RemoveFilter)

	w := performRequest(router, "DELETE", "/filter", `{"domain":"ads.example.com","confirm":true}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.RemoveDomainResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Removed)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1, f.removals())
}

func TestRemoveFilter_Declined(t *testing.T) {
	f := newFakeControlAPI()
	h := createTestHandler(t, f)
	router := gin.New()
	router.DELETE("/filter", h.RemoveFilter)

	w := performRequest(router, "DELETE", "/filter", `{"domain":"ads.example.com","confirm":false}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.RemoveDomainResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.False(t, resp.Removed)
	assert.Equal(t, "cancelled", resp.Status)

	// Declined confirmation must not reach the service.
	assert.Equal(t, 0, f.removals())
}

// ============================================================================
// Notices Tests
// ============================================================================

func TestNotices_EmptyByDefault(t *testing.T) {
	h := createTestHandler(t, newFakeControlAPI())
	router := gin.New()
	router.GET("/notices", h.Notices)

	w := performRequest(router, "GET", "/notices", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.NoticesResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Empty(t, resp.Notices)
}

// ============================================================================
// Handler Initialization Tests
// ============================================================================

func TestHandler_New(t *testing.T) {
	h := handlers.New(nil, notify.NewCenter(), nil)

	assert.NotNil(t, h)
}
