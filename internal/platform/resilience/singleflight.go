package resilience

import (
	"context"
	"fmt"
	"sync"
)

// SingleFlight coalesces concurrent calls that share a key. Callers that
// join an in-flight call receive its result and shared=true.
type SingleFlight struct {
	mu    sync.Mutex
	calls map[string]*flightCall
}

type flightCall struct {
	done    chan struct{}
	val     any
	err     error
	waiters int
}

func (g *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*flightCall)
	}
	if c, ok := g.calls[key]; ok {
		c.waiters++
		g.mu.Unlock()
		<-c.done
		return c.val, c.err, true
	}

	c := &flightCall{done: make(chan struct{})}
	g.calls[key] = c
	g.mu.Unlock()

	g.run(key, c, fn)
	return c.val, c.err, c.waiters > 0
}

// DoContext is Do for calls whose callers may give up independently. fn runs
// in its own goroutine under a context detached from ctx's cancellation, so
// one caller cancelling never fails the others. Each caller returns early
// with its own ctx.Err() once ctx is done. fn must bound its own runtime.
func (g *SingleFlight) DoContext(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error, bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*flightCall)
	}
	c, joined := g.calls[key]
	if joined {
		c.waiters++
	} else {
		c = &flightCall{done: make(chan struct{})}
		g.calls[key] = c
		detached := context.WithoutCancel(ctx)
		go g.run(key, c, func() (any, error) { return fn(detached) })
	}
	g.mu.Unlock()

	select {
	case <-c.done:
		// waiters is only written under mu before the call leaves the map.
		return c.val, c.err, joined || c.waiters > 0
	case <-ctx.Done():
		return nil, ctx.Err(), joined
	}
}

// InFlight reports the number of keys currently executing.
func (g *SingleFlight) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

func (g *SingleFlight) run(key string, c *flightCall, fn func() (any, error)) {
	defer func() {
		if r := recover(); r != nil {
			c.err = fmt.Errorf("singleflight %q panicked: %v", key, r)
		}
		g.mu.Lock()
		delete(g.calls, key)
		g.mu.Unlock()
		close(c.done)
	}()
	c.val, c.err = fn()
}
