package notify_test

import (
	"sync"
	"testing"
	"time"

	"github.com/jroosing/proxypanel/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify_StacksIndependently(t *testing.T) {
	c := notify.NewCenter()

	c.Notify("first")
	c.Notify("second")

	active := c.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "first", active[0].Text)
	assert.Equal(t, "second", active[1].Text)
	assert.NotEqual(t, active[0].ID, active[1].ID)
}

func TestActive_PrunesExpired(t *testing.T) {
	current := time.Unix(1000, 0)
	c := notify.NewCenterWithClock(func() time.Time { return current })

	c.Notify("early")
	current = current.Add(notify.Lifetime / 2)
	c.Notify("late")

	// Past the first notice's lifetime but not the second's.
	current = current.Add(notify.Lifetime/2 + time.Millisecond)

	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "late", active[0].Text)

	current = current.Add(notify.Lifetime)
	assert.Empty(t, c.Active())
}

func TestNotify_NilCenterIsSafe(t *testing.T) {
	var c *notify.Center

	assert.NotPanics(t, func() {
		c.Notify("into the void")
		assert.Nil(t, c.Active())
	})
}

func TestNotify_ConcurrentUse(t *testing.T) {
	c := notify.NewCenter()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				c.Notify("msg")
				c.Active()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, c.Active(), 16*50)
}
