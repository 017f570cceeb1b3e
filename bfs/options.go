package bfs

import (
	"context"
	"fmt"
)

// Option configures a BFS call. An invalid value is recorded and reported
// as ErrOptionViolation when BFS starts.
type Option func(*config)

type config struct {
	ctx       context.Context
	onEnqueue func(id string, depth int)
	onVisit   func(id string, depth int) error
	maxDepth  int
	skip      map[string]bool
	err       error
}

func newConfig(opts []Option) config {
	c := config{
		ctx:       context.Background(),
		onEnqueue: func(string, int) {},
		onVisit:   func(string, int) error { return nil },
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithContext checks ctx before every dequeue.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithOnEnqueue calls fn once per vertex, when it is discovered. The start
// vertex is discovered first, at depth 0.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(c *config) {
		if fn != nil {
			c.onEnqueue = fn
		}
	}
}

// WithOnVisit calls fn when a vertex leaves the queue; an error stops the
// search and is returned wrapped.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(c *config) {
		if fn != nil {
			c.onVisit = fn
		}
	}
}

// WithMaxDepth stops discovery below depth d; 0 means unlimited.
func WithMaxDepth(d int) Option {
	return func(c *config) {
		if d < 0 {
			c.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		c.maxDepth = d
	}
}

// WithSkip searches G − ids: skipped vertices are never discovered and
// cannot be the start. Repeated calls accumulate.
func WithSkip(ids ...string) Option {
	return func(c *config) {
		if len(ids) == 0 {
			return
		}
		if c.skip == nil {
			c.skip = make(map[string]bool, len(ids))
		}
		for _, id := range ids {
			c.skip[id] = true
		}
	}
}
