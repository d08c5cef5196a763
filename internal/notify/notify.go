// Package notify implements the panel's transient notification sink.
//
// Every failure surfaced by the service client ends up here, so the sink
// must never fail itself: a nil *Center is safe to call, and Notify never
// blocks or panics. Notices are not queued or deduplicated; each one
// expires independently after a fixed lifetime.
package notify

import (
	"sync"
	"time"
)

// Lifetime is how long a notice stays visible.
const Lifetime = 2500 * time.Millisecond

// Notice is a single transient message.
type Notice struct {
	ID      int64     `json:"id"`
	Text    string    `json:"text"`
	Expires time.Time `json:"expires"`
}

// Center collects notices and prunes them as they expire.
// All methods are safe for concurrent use.
type Center struct {
	mu      sync.Mutex
	nextID  int64
	notices []Notice
	now     func() time.Time
}

// NewCenter creates an empty notification center.
func NewCenter() *Center {
	return &Center{now: time.Now}
}

// NewCenterWithClock creates a center with a custom clock, for tests.
func NewCenterWithClock(now func() time.Time) *Center {
	return &Center{now: now}
}

// Notify records a transient notice. Safe on a nil receiver.
func (c *Center) Notify(text string) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	c.notices = append(c.notices, Notice{
		ID:      c.nextID,
		Text:    text,
		Expires: c.now().Add(Lifetime),
	})
}

// Active returns the notices that have not yet expired, oldest first.
// Expired notices are dropped as a side effect.
func (c *Center) Active() []Notice {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	live := c.notices[:0]
	for _, n := range c.notices {
		if n.Expires.After(now) {
			live = append(live, n)
		}
	}
	c.notices = live

	out := make([]Notice, len(live))
	copy(out, live)
	return out
}
