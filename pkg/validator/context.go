package validator

import (
	"fmt"
	"io"
	"log/slog"
)

// Frame is the view of a form instance whose validation is in progress.
// Conditional validators read sibling values through it.
type Frame interface {
	Name() string
	Get(field string) (any, bool)
}

type emptyFrame struct{}

func (emptyFrame) Name() string           { return "" }
func (emptyFrame) Get(string) (any, bool) { return nil, false }

// EmptyFrame is returned by Context.Current when no form is validating.
var EmptyFrame Frame = emptyFrame{}

// Context tracks the chain of form instances currently validating.
// One Context belongs to one validation run; it is never shared across goroutines.
// Nesting is last-in-first-out and mirrors the call structure of form validation.
type Context struct {
	frames   []Frame
	maxDepth int
	err      error
	logger   *slog.Logger
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithMaxDepth limits form nesting. Zero means unlimited.
func WithMaxDepth(depth int) ContextOption {
	return func(c *Context) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// WithLogger sets the logger used by forms during the run. Nil is ignored.
func WithLogger(l *slog.Logger) ContextOption {
	return func(c *Context) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewContext creates an empty validation context.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Push makes f the current frame. The returned release function restores the
// previous frame; call it with defer so it runs on every exit path.
// Releasing twice is a no-op.
func (c *Context) Push(f Frame) (release func(), err error) {
	if f == nil {
		return func() {}, ErrNilFrame
	}
	if c.maxDepth > 0 && len(c.frames) >= c.maxDepth {
		return func() {}, fmt.Errorf("%w: limit %d reached at %q", ErrMaxDepthExceeded, c.maxDepth, f.Name())
	}

	mark := len(c.frames)
	c.frames = append(c.frames, f)
	released := false
	return func() {
		if released {
			return
		}
		released = true
		for i := mark; i < len(c.frames); i++ {
			c.frames[i] = nil
		}
		c.frames = c.frames[:mark]
	}, nil
}

// Current returns the innermost validating frame, or EmptyFrame. It never fails.
func (c *Context) Current() Frame {
	if c == nil || len(c.frames) == 0 {
		return EmptyFrame
	}
	return c.frames[len(c.frames)-1]
}

// Depth returns the number of frames on the stack.
func (c *Context) Depth() int {
	if c == nil {
		return 0
	}
	return len(c.frames)
}

// Abort records a fatal, non-data error. The first recorded error wins and
// stops further validator execution in the run.
func (c *Context) Abort(err error) {
	if c == nil || err == nil || c.err != nil {
		return
	}
	c.err = err
}

// Err returns the fatal error recorded by Abort, if any.
func (c *Context) Err() error {
	if c == nil {
		return nil
	}
	return c.err
}

// Logger returns the run's logger; it discards output unless configured.
func (c *Context) Logger() *slog.Logger {
	if c == nil || c.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.logger
}
