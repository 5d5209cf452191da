// Package mainloop marshals work onto the GTK main loop.
package mainloop

import (
	"sync"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
)

// PostFunc schedules fn on the main loop.
type PostFunc func(fn func())

// IdlePost schedules fn with glib.IdleAdd. Safe to call from any goroutine.
func IdlePost(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}

// Coalescer merges bursts of same-key tasks into one main-loop callback.
// The latest function posted for a key wins.
type Coalescer struct {
	post PostFunc

	mu     sync.Mutex
	queued map[string]func()
	closed bool
}

// NewCoalescer creates a coalescer scheduling through post.
func NewCoalescer(post PostFunc) *Coalescer {
	if post == nil {
		panic("mainloop: nil PostFunc")
	}
	return &Coalescer{post: post, queued: make(map[string]func())}
}

// NewIdleCoalescer creates a coalescer backed by glib.IdleAdd.
func NewIdleCoalescer() *Coalescer {
	return NewCoalescer(IdlePost)
}

// Post replaces the queued task for key, scheduling a run if none is queued.
func (c *Coalescer) Post(key string, fn func()) {
	if key == "" || fn == nil {
		return
	}

	c.mu.Lock()
	_, scheduled := c.queued[key]
	if !c.closed {
		c.queued[key] = fn
	}
	schedule := !c.closed && !scheduled
	c.mu.Unlock()

	if schedule {
		c.post(func() { c.flush(key) })
	}
}

func (c *Coalescer) flush(key string) {
	c.mu.Lock()
	fn := c.queued[key]
	delete(c.queued, key)
	c.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Pending reports whether key has a scheduled run.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.queued[key]
	return ok
}

// Destroy drops queued work. Later posts are ignored.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.closed = true
	clear(c.queued)
	c.mu.Unlock()
}
