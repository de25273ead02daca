package track

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rkotla/subcue/internal/cue"
	"github.com/rkotla/subcue/internal/logging"
	"github.com/rkotla/subcue/internal/provider"
)

// lookup attempted before a successful Initialize
var ErrNotInitialized = errors.New("subtitle track not initialized")

// controller lifecycle states
type State int

const (
	StateUninitialized State = iota
	StateInitializing
	StateInitialized
)

// Controller owns one subtitle track: it fetches the raw payload from its
// provider, runs extraction and reconciliation as a single unit of work on
// its own goroutine, and serves time lookups over the finished sequence.
type Controller struct {
	provider  provider.Provider
	parser    cue.Parser
	flattener *cue.Flattener
	logger    *logging.Logger

	mu       sync.Mutex
	state    State
	inflight chan struct{}
	initErr  error
	cues     []cue.Cue
	index    *cue.Index
}

type Option func(*Controller)

// WithParser installs a custom parser, bypassing the catalog lookup that
// otherwise selects one from the source's declared format.
func WithParser(p cue.Parser) Option {
	return func(c *Controller) { c.parser = p }
}

func WithFlattener(f *cue.Flattener) Option {
	return func(c *Controller) { c.flattener = f }
}

func WithLogger(l *logging.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

func New(p provider.Provider, opts ...Option) *Controller {
	c := &Controller{
		provider:  p,
		flattener: cue.NewFlattener(),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize runs the fetch-parse-flatten pipeline exactly once. It is a
// no-op once initialized; a call that arrives while a dispatch is in
// flight waits for that same dispatch rather than starting another. On
// failure the controller returns to Uninitialized so the caller can
// retry. ctx bounds only the wait: once dispatched, the pipeline itself
// runs to completion.
func (c *Controller) Initialize(ctx context.Context) error {
	c.mu.Lock()
	switch c.state {
	case StateInitialized:
		c.mu.Unlock()
		return nil
	case StateInitializing:
		done := c.inflight
		c.mu.Unlock()
		return c.await(ctx, done)
	}

	c.state = StateInitializing
	done := make(chan struct{})
	c.inflight = done
	c.mu.Unlock()

	go c.dispatch(ctx, done)
	return c.await(ctx, done)
}

// dispatch is the single atomic unit of work per initialization.
func (c *Controller) dispatch(ctx context.Context, done chan struct{}) {
	cues, err := c.pipeline(ctx)

	c.mu.Lock()
	if err != nil {
		c.state = StateUninitialized
		c.initErr = err
	} else {
		c.cues = cues
		c.index = cue.NewIndex(cues)
		c.initErr = nil
		c.state = StateInitialized
	}
	c.mu.Unlock()
	close(done)
}

func (c *Controller) await(ctx context.Context, done chan struct{}) error {
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErr
}

func (c *Controller) pipeline(ctx context.Context) ([]cue.Cue, error) {
	src, err := c.provider.Fetch(ctx)
	if err != nil {
		// provider failures propagate unchanged
		return nil, err
	}

	parser := c.parser
	if parser == nil {
		parser, err = cue.NewParser(src.Format)
		if err != nil {
			return nil, err
		}
	}

	raw, err := parser.Parse(*src)
	if err != nil {
		return nil, err
	}

	flat := c.flattener.Flatten(raw)
	c.logger.Debugw("subtitle track decoded",
		"format", src.Format,
		"raw_cues", len(raw),
		"cues", len(flat),
	)
	return flat, nil
}

// LookupAt returns the cue active at t, or ok=false when t falls in a
// gap or the sequence is empty.
func (c *Controller) LookupAt(t time.Duration) (cue.Cue, bool, error) {
	index, err := c.readyIndex()
	if err != nil {
		return cue.Cue{}, false, err
	}
	found, ok := index.At(t)
	return found, ok, nil
}

// RangeAt returns every cue whose interval contains t.
func (c *Controller) RangeAt(t time.Duration) ([]cue.Cue, error) {
	index, err := c.readyIndex()
	if err != nil {
		return nil, err
	}
	return index.Range(t), nil
}

// Joined concatenates every cue text with the given separator.
func (c *Controller) Joined(sep string) (string, error) {
	index, err := c.readyIndex()
	if err != nil {
		return "", err
	}
	texts := make([]string, 0, index.Len())
	for _, cu := range index.Cues() {
		texts = append(texts, cu.Text)
	}
	return strings.Join(texts, sep), nil
}

// Cues returns the finalized sequence; callers must not modify it.
func (c *Controller) Cues() ([]cue.Cue, error) {
	index, err := c.readyIndex()
	if err != nil {
		return nil, err
	}
	return index.Cues(), nil
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// readyIndex hands out the index once initialized. The index is immutable
// from then on, so the search itself runs outside the lock.
func (c *Controller) readyIndex() (*cue.Index, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateInitialized {
		return nil, ErrNotInitialized
	}
	return c.index, nil
}
