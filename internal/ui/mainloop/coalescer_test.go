package mainloop

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoop struct {
	mu    sync.Mutex
	queue []func()
}

func (l *fakeLoop) post(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.queue = append(l.queue, fn)
}

func (l *fakeLoop) runAll() {
	l.mu.Lock()
	queue := l.queue
	l.queue = nil
	l.mu.Unlock()
	for _, fn := range queue {
		fn()
	}
}

func (l *fakeLoop) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

func TestCoalescer_MergesBurstIntoSingleRun(t *testing.T) {
	loop := &fakeLoop{}
	c := NewCoalescer(loop.post)

	value := 0
	for i := 1; i <= 5; i++ {
		v := i
		c.Post("preferences", func() { value = v })
	}

	require.Equal(t, 1, loop.len())
	assert.True(t, c.Pending("preferences"))

	loop.runAll()

	assert.Equal(t, 5, value)
	assert.False(t, c.Pending("preferences"))
}

func TestCoalescer_KeysAreIndependent(t *testing.T) {
	loop := &fakeLoop{}
	c := NewCoalescer(loop.post)

	var ran []string
	c.Post("preferences", func() { ran = append(ran, "preferences") })
	c.Post("history", func() { ran = append(ran, "history") })

	require.Equal(t, 2, loop.len())
	loop.runAll()

	assert.ElementsMatch(t, []string{"preferences", "history"}, ran)
}

func TestCoalescer_SchedulesAgainAfterRun(t *testing.T) {
	loop := &fakeLoop{}
	c := NewCoalescer(loop.post)

	runs := 0
	c.Post("preferences", func() { runs++ })
	loop.runAll()
	c.Post("preferences", func() { runs++ })
	loop.runAll()

	assert.Equal(t, 2, runs)
}

func TestCoalescer_ConcurrentPostsRunOnce(t *testing.T) {
	loop := &fakeLoop{}
	c := NewCoalescer(loop.post)

	runs := 0
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Post("preferences", func() { runs++ })
		}()
	}
	wg.Wait()

	require.Equal(t, 1, loop.len())
	loop.runAll()
	assert.Equal(t, 1, runs)
}

func TestCoalescer_DropsWorkAfterDestroy(t *testing.T) {
	loop := &fakeLoop{}
	c := NewCoalescer(loop.post)

	ran := false
	c.Post("preferences", func() { ran = true })
	c.Destroy()

	require.Equal(t, 1, loop.len())
	loop.runAll()
	assert.False(t, ran)

	c.Post("preferences", func() { ran = true })
	assert.Equal(t, 0, loop.len())
}

func TestCoalescer_IgnoresEmptyKeyAndNilFunc(t *testing.T) {
	loop := &fakeLoop{}
	c := NewCoalescer(loop.post)

	c.Post("", func() {})
	c.Post("preferences", nil)

	assert.Equal(t, 0, loop.len())
}

func TestNewCoalescer_PanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { _ = NewCoalescer(nil) })
}
