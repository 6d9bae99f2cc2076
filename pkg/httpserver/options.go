package httpserver

import (
	"fmt"
	"log/slog"
	"time"
)

// Option configures a Server.
type Option func(*config)

// Timeouts bounds each phase of serving a request. Zero fields keep the
// server defaults: 10s to read headers, 5s to shut down, no other limit.
type Timeouts struct {
	Read       time.Duration
	ReadHeader time.Duration
	Write      time.Duration
	Idle       time.Duration
	Shutdown   time.Duration
}

// Hook observes a server lifecycle event. addr is the bound listen address.
type Hook func(addr string, log *slog.Logger)

// WithAddr sets the listen address. An empty addr keeps ":8080".
func WithAddr(addr string) Option {
	return func(c *config) {
		if addr != "" {
			c.addr = addr
		}
	}
}

// WithTimeouts overrides every non-zero field of t. A negative field panics.
func WithTimeouts(t Timeouts) Option {
	for name, d := range map[string]time.Duration{
		"read": t.Read, "read header": t.ReadHeader, "write": t.Write,
		"idle": t.Idle, "shutdown": t.Shutdown,
	} {
		if d < 0 {
			panic(fmt.Sprintf("httpserver: negative %s timeout %s", name, d))
		}
	}
	return func(c *config) {
		set := func(dst *time.Duration, d time.Duration) {
			if d > 0 {
				*dst = d
			}
		}
		set(&c.timeouts.Read, t.Read)
		set(&c.timeouts.ReadHeader, t.ReadHeader)
		set(&c.timeouts.Write, t.Write)
		set(&c.timeouts.Idle, t.Idle)
		set(&c.timeouts.Shutdown, t.Shutdown)
	}
}

// WithLogger sets the lifecycle logger. Nil keeps a discarding one.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// OnStart registers fn to run once the server is listening.
func OnStart(fn Hook) Option {
	if fn == nil {
		panic("httpserver: nil start hook")
	}
	return func(c *config) { c.onStart = append(c.onStart, fn) }
}

// OnStop registers fn to run after a graceful shutdown.
func OnStop(fn Hook) Option {
	if fn == nil {
		panic("httpserver: nil stop hook")
	}
	return func(c *config) { c.onStop = append(c.onStop, fn) }
}
