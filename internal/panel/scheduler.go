package panel

import (
	"context"
	"sync"
	"time"
)

// timer is one view's recurring fetch loop.
type timer struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Scheduler owns the per-view timer slots. A view has at most one active
// timer at any time: enabling an already-enabled view first clears the
// prior handle, so toggling and page re-initialization never accumulate
// loops. Slot mutation happens under one lock.
type Scheduler struct {
	mu     sync.Mutex
	timers map[View]*timer
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[View]*timer)}
}

// Enable starts a recurring task for view on the given period, replacing
// any timer the view already owns. The task receives a context that is
// cancelled when the view is disabled or replaced.
func (s *Scheduler) Enable(view View, period time.Duration, task func(ctx context.Context)) {
	ctx, cancel := context.WithCancel(context.Background())
	t := &timer{cancel: cancel, done: make(chan struct{})}

	s.mu.Lock()
	if prev, ok := s.timers[view]; ok {
		prev.cancel()
	}
	s.timers[view] = t
	s.mu.Unlock()

	go func() {
		defer close(t.done)
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				task(ctx)
			}
		}
	}()
}

// Disable clears the view's timer slot. Future ticks stop; a fetch already
// in flight is not interrupted (its late result is handled by the
// per-view sequence guard). Disabling an idle view is a no-op.
func (s *Scheduler) Disable(view View) {
	s.mu.Lock()
	t, ok := s.timers[view]
	if ok {
		delete(s.timers, view)
	}
	s.mu.Unlock()

	if ok {
		t.cancel()
	}
}

// Enabled reports whether the view currently owns a timer.
func (s *Scheduler) Enabled(view View) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[view]
	return ok
}

// ActiveTimers returns the number of views with a live timer.
func (s *Scheduler) ActiveTimers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// StopAll clears every timer slot. Used on page changes and shutdown.
func (s *Scheduler) StopAll() {
	s.mu.Lock()
	timers := s.timers
	s.timers = make(map[View]*timer)
	s.mu.Unlock()

	for _, t := range timers {
		t.cancel()
	}
}
