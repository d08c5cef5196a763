// Package panel implements the live-synchronization engine behind the
// control panel: per-view polling on independent cadences, reconciliation
// of fetched service state into rendered view state, a stale-response
// sequence guard, and the derived recent-visits projection.
//
// The engine tracks one active page at a time. Activating a page tears
// down the previous page's timers and containers before wiring its own,
// so repeated page initialization never stacks pollers.
package panel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jroosing/proxypanel/internal/service"
	"github.com/jroosing/proxypanel/internal/visits"
)

// Service is the slice of the proxy-control client the engine consumes.
// *service.Client satisfies it.
type Service interface {
	Start(ctx context.Context) (service.ControlResult, error)
	Stop(ctx context.Context) (service.ControlResult, error)
	Status(ctx context.Context) (service.Status, error)
	Logs(ctx context.Context) ([]service.LogEntry, error)
	ClearLogs(ctx context.Context) error
	Cache(ctx context.Context) ([]service.CacheEntry, error)
	ClearCache(ctx context.Context) error
	Blocked(ctx context.Context) ([]string, error)
	AddDomain(ctx context.Context, domain string) ([]string, error)
	RemoveDomain(ctx context.Context, domain string) error
}

// Confirmer answers whether the user confirmed an action naming the given
// domain. Returning false must leave the service untouched.
type Confirmer func(domain string) bool

// ErrNotToggleable is returned when a live toggle targets a view that
// polls unconditionally.
var ErrNotToggleable = errors.New("view has no live toggle")

// Options carries the per-view cadences and initial toggle states.
type Options struct {
	StatusInterval  time.Duration
	LogsInterval    time.Duration
	CacheInterval   time.Duration
	FiltersInterval time.Duration
	VisitsInterval  time.Duration

	// Initial checked state of the logs/cache live toggles.
	LogsLive  bool
	CacheLive bool
}

// withDefaults fills unset cadences with the panel's stock values.
func (o Options) withDefaults() Options {
	if o.StatusInterval <= 0 {
		o.StatusInterval = 3 * time.Second
	}
	if o.LogsInterval <= 0 {
		o.LogsInterval = 2 * time.Second
	}
	if o.CacheInterval <= 0 {
		o.CacheInterval = 3 * time.Second
	}
	if o.FiltersInterval <= 0 {
		o.FiltersInterval = 5 * time.Second
	}
	if o.VisitsInterval <= 0 {
		o.VisitsInterval = 3 * time.Second
	}
	return o
}

// ViewState is a view's rendered state as served to the UI.
type ViewState struct {
	View View   `json:"view"`
	Rows []Row  `json:"rows"`
	Seq  uint64 `json:"seq"`
	Live *bool  `json:"live,omitempty"`
}

// Engine reconciles fetched service state into rendered view state.
type Engine struct {
	svc    Service
	sched  *Scheduler
	opts   Options
	logger *slog.Logger

	// ctx spans the engine's lifetime and backs work that must outlive
	// the request that triggered it, such as a page's initial fetches.
	ctx    context.Context
	cancel context.CancelFunc

	seqs map[View]*sequencer

	// pageMu serializes page transitions: teardown and wiring of a
	// page's timers happen as one step.
	pageMu sync.Mutex

	mu         sync.Mutex
	page       Page
	containers map[string][]Row
	slots      map[StatusSlot]bool
	status     StatusState
	live       map[View]bool
}

// NewEngine creates an engine polling svc. No page is active until
// SetPage is called.
func NewEngine(svc Service, opts Options, logger *slog.Logger) *Engine {
	opts = opts.withDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Engine{
		svc:    svc,
		sched:  NewScheduler(),
		opts:   opts,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
		seqs: map[View]*sequencer{
			ViewStatus:  {},
			ViewLogs:    {},
			ViewCache:   {},
			ViewFilters: {},
			ViewVisits:  {},
		},
		containers: make(map[string][]Row),
		slots:      make(map[StatusSlot]bool),
		live: map[View]bool{
			ViewLogs:  opts.LogsLive,
			ViewCache: opts.CacheLive,
		},
	}
}

// Scheduler exposes the timer slots, mainly for tests and diagnostics.
func (e *Engine) Scheduler() *Scheduler {
	return e.sched
}

// Page returns the active page key.
func (e *Engine) Page() Page {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.page
}

// SetPage activates a page: the previous page's pollers and containers
// are torn down, the page's containers and status hooks are registered,
// its pollers start on their cadences, and each wired view fetches once
// immediately so the page is not blank until the first tick.
//
// The initial fetches run on the engine's lifecycle context, not the
// activation caller's: an HTTP server cancels the request context as
// soon as the activation response is written, and a fetch killed that
// way would blank the page and push a phantom unreachable notice.
func (e *Engine) SetPage(page Page) {
	e.pageMu.Lock()
	defer e.pageMu.Unlock()

	e.sched.StopAll()

	e.mu.Lock()
	e.page = page
	e.containers = make(map[string][]Row)
	for _, id := range pageContainers[page] {
		e.containers[id] = nil
	}
	e.slots = make(map[StatusSlot]bool)
	for _, s := range pageStatusSlots[page] {
		e.slots[s] = true
	}
	e.mu.Unlock()

	views := e.wirePollers(page)

	e.logger.Info("page activated", "page", string(page))

	for _, v := range views {
		v := v
		go func() {
			if err := e.Refresh(e.ctx, v); err != nil {
				e.logger.Debug("initial fetch failed", "view", string(v), "err", err)
			}
		}()
	}
}

// wirePollers starts the page's timers and returns the views it wired.
func (e *Engine) wirePollers(page Page) []View {
	var wired []View

	start := func(v View, period time.Duration) {
		e.sched.Enable(v, period, func(ctx context.Context) {
			if err := e.Refresh(ctx, v); err != nil {
				// Already notified; the tick after this one still runs.
				e.logger.Debug("poll tick failed", "view", string(v), "err", err)
			}
		})
		wired = append(wired, v)
	}

	switch page {
	case PageDashboard:
		start(ViewStatus, e.opts.StatusInterval)
		start(ViewVisits, e.opts.VisitsInterval)
	case PageLogs:
		if e.IsLive(ViewLogs) {
			start(ViewLogs, e.opts.LogsInterval)
		} else {
			wired = append(wired, ViewLogs)
		}
	case PageCache:
		if e.IsLive(ViewCache) {
			start(ViewCache, e.opts.CacheInterval)
		} else {
			wired = append(wired, ViewCache)
		}
	case PageFilter:
		start(ViewFilters, e.opts.FiltersInterval)
	}

	return wired
}

// SetLive flips a view's live toggle. Only the logs and cache views are
// toggleable; the rest poll unconditionally while their page is active.
// Enabling replaces any existing timer, so repeated enables stay at one.
func (e *Engine) SetLive(ctx context.Context, view View, enabled bool) error {
	if view != ViewLogs && view != ViewCache {
		return fmt.Errorf("%w: %s", ErrNotToggleable, view)
	}

	if !e.applyLive(view, enabled) {
		return nil
	}

	// Reflect the current state right away instead of waiting a period.
	// The toggle stands even if this first fetch fails; the failure is
	// already on the notices feed.
	if err := e.Refresh(ctx, view); err != nil {
		e.logger.Debug("refresh after enable failed", "view", string(view), "err", err)
	}
	return nil
}

// applyLive records the toggle and adjusts the view's timer under the
// page-transition lock, so it cannot interleave with SetPage. It reports
// whether an immediate refresh is due.
func (e *Engine) applyLive(view View, enabled bool) bool {
	e.pageMu.Lock()
	defer e.pageMu.Unlock()

	e.mu.Lock()
	e.live[view] = enabled
	page := e.page
	e.mu.Unlock()

	hosted := (view == ViewLogs && page == PageLogs) || (view == ViewCache && page == PageCache)
	if !hosted {
		return false
	}

	if !enabled {
		e.sched.Disable(view)
		return false
	}

	period := e.opts.LogsInterval
	if view == ViewCache {
		period = e.opts.CacheInterval
	}
	e.sched.Enable(view, period, func(ctx context.Context) {
		if err := e.Refresh(ctx, view); err != nil {
			e.logger.Debug("poll tick failed", "view", string(view), "err", err)
		}
	})
	return true
}

// IsLive reports a toggleable view's current toggle state.
func (e *Engine) IsLive(view View) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.live[view]
}

// Refresh fetches a view's data once, independent of its timer. Failed
// fetches are surfaced by the transport layer and skip the render,
// leaving the previously rendered state in place.
func (e *Engine) Refresh(ctx context.Context, view View) error {
	switch view {
	case ViewStatus:
		return e.refreshStatus(ctx)
	case ViewLogs:
		return e.refreshLogs(ctx)
	case ViewCache:
		return e.refreshCache(ctx)
	case ViewFilters:
		return e.refreshFilters(ctx)
	case ViewVisits:
		return e.refreshVisits(ctx)
	}
	return fmt.Errorf("unknown view: %s", view)
}

func (e *Engine) refreshStatus(ctx context.Context) error {
	seq := e.seqs[ViewStatus].next()
	st, err := e.svc.Status(ctx)
	if err != nil {
		return err
	}
	e.renderStatus(seq, st)
	return nil
}

func (e *Engine) refreshLogs(ctx context.Context) error {
	seq := e.seqs[ViewLogs].next()
	entries, err := e.svc.Logs(ctx)
	if err != nil {
		return err
	}
	rows := make([]Row, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, logRow(entry))
	}
	e.renderRows(ViewLogs, containerLogTable, seq, reverseRows(rows))
	return nil
}

func (e *Engine) refreshCache(ctx context.Context) error {
	seq := e.seqs[ViewCache].next()
	entries, err := e.svc.Cache(ctx)
	if err != nil {
		return err
	}
	rows := make([]Row, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, cacheRow(entry))
	}
	e.renderRows(ViewCache, containerCacheTable, seq, reverseRows(rows))
	return nil
}

func (e *Engine) refreshFilters(ctx context.Context) error {
	seq := e.seqs[ViewFilters].next()
	blocked, err := e.svc.Blocked(ctx)
	if err != nil {
		return err
	}
	e.renderRows(ViewFilters, containerFilterList, seq, filterRows(blocked))
	return nil
}

// refreshVisits derives the recent-visits feed from a fresh log snapshot;
// it is never merged with a previous feed.
func (e *Engine) refreshVisits(ctx context.Context) error {
	seq := e.seqs[ViewVisits].next()
	entries, err := e.svc.Logs(ctx)
	if err != nil {
		return err
	}
	feed := make([]visits.LogEntry, 0, len(entries))
	for _, entry := range entries {
		feed = append(feed, visits.LogEntry{
			Timestamp: entry.Timestamp,
			URL:       entry.URL,
			Action:    entry.Action,
		})
	}
	recent := visits.BuildRecent(feed)
	rows := make([]Row, 0, len(recent))
	for _, v := range recent {
		rows = append(rows, visitRow(v))
	}
	e.renderRows(ViewVisits, containerRecentVisits, seq, rows)
	return nil
}

func filterRows(blocked []string) []Row {
	rows := make([]Row, 0, len(blocked))
	for _, domain := range blocked {
		rows = append(rows, filterRow(domain))
	}
	return rows
}

// renderRows replaces a container's rendered rows, provided the result is
// not stale and the active page carries the container.
func (e *Engine) renderRows(view View, containerID string, seq uint64, rows []Row) bool {
	if !e.seqs[view].apply(seq) {
		e.logger.Debug("stale response discarded", "view", string(view), "seq", seq)
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.containers[containerID]; !ok {
		return false
	}
	e.containers[containerID] = rows
	return true
}

// renderStatus updates the registered status hooks independently; hooks
// the active page lacks are skipped.
func (e *Engine) renderStatus(seq uint64, st service.Status) bool {
	if !e.seqs[ViewStatus].apply(seq) {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	rendered := false
	if e.slots[SlotIndicator] {
		e.status.IndicatorClass, e.status.IndicatorLabel = indicator(st.Running)
		e.status.ListeningPort = st.ListeningPort
		rendered = true
	}
	if e.slots[SlotThreads] {
		e.status.ActiveThreads = st.ActiveThreads
		rendered = true
	}
	if e.slots[SlotCacheEntries] {
		e.status.CacheEntries = st.CacheEntries
		rendered = true
	}
	if e.slots[SlotBlocked] {
		e.status.BlockedCount = st.BlockedCount
		rendered = true
	}
	return rendered
}

// ViewState returns a view's rendered rows and toggle state. The status
// view is served by Status instead.
func (e *Engine) ViewState(view View) (ViewState, bool) {
	var containerID string
	switch view {
	case ViewLogs:
		containerID = containerLogTable
	case ViewCache:
		containerID = containerCacheTable
	case ViewFilters:
		containerID = containerFilterList
	case ViewVisits:
		containerID = containerRecentVisits
	default:
		return ViewState{}, false
	}

	e.mu.Lock()
	rows := append([]Row(nil), e.containers[containerID]...)
	var live *bool
	if view == ViewLogs || view == ViewCache {
		v := e.live[view]
		live = &v
	}
	e.mu.Unlock()

	return ViewState{
		View: view,
		Rows: rows,
		Seq:  e.seqs[view].lastApplied(),
		Live: live,
	}, true
}

// Status returns the rendered status panel.
func (e *Engine) Status() StatusState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// StartProxy starts the proxy listener and refreshes the status panel
// without waiting for the next tick.
func (e *Engine) StartProxy(ctx context.Context) (service.ControlResult, error) {
	res, err := e.svc.Start(ctx)
	if err != nil {
		return service.ControlResult{}, err
	}
	if err := e.refreshStatus(ctx); err != nil {
		e.logger.Debug("status refresh after start failed", "err", err)
	}
	return res, nil
}

// StopProxy stops the proxy listener and refreshes the status panel.
func (e *Engine) StopProxy(ctx context.Context) (service.ControlResult, error) {
	res, err := e.svc.Stop(ctx)
	if err != nil {
		return service.ControlResult{}, err
	}
	if err := e.refreshStatus(ctx); err != nil {
		e.logger.Debug("status refresh after stop failed", "err", err)
	}
	return res, nil
}

// ClearLogs empties the request log and re-fetches the log view. On
// failure the rendered table is left untouched.
func (e *Engine) ClearLogs(ctx context.Context) error {
	if err := e.svc.ClearLogs(ctx); err != nil {
		return err
	}
	return e.refreshLogs(ctx)
}

// ClearCache empties the response cache and re-fetches the cache view.
func (e *Engine) ClearCache(ctx context.Context) error {
	if err := e.svc.ClearCache(ctx); err != nil {
		return err
	}
	return e.refreshCache(ctx)
}

// AddDomain adds a blocked domain. The service answers with the updated
// list, so the filter view re-renders immediately from the response.
func (e *Engine) AddDomain(ctx context.Context, domain string) error {
	blocked, err := e.svc.AddDomain(ctx, domain)
	if err != nil {
		return err
	}
	seq := e.seqs[ViewFilters].next()
	e.renderRows(ViewFilters, containerFilterList, seq, filterRows(blocked))
	return nil
}

// RemoveDomain removes a blocked domain after explicit confirmation.
// A declined confirmation issues no request and reports removed=false.
func (e *Engine) RemoveDomain(ctx context.Context, domain string, confirm Confirmer) (bool, error) {
	if confirm == nil || !confirm(domain) {
		return false, nil
	}
	if err := e.svc.RemoveDomain(ctx, domain); err != nil {
		return false, err
	}
	if err := e.refreshFilters(ctx); err != nil {
		e.logger.Debug("filter refresh after removal failed", "err", err)
	}
	return true, nil
}

// Close tears down all pollers and cancels any in-flight initial fetch.
func (e *Engine) Close() {
	e.cancel()
	e.sched.StopAll()
}
