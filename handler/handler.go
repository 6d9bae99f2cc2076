package handler

import (
	"net/http"
)

// HandlerFunc handles a request whose input was bound to R.
type HandlerFunc[R any] func(r *http.Request, req R) Response

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind extracts R from a request.
type Bind[R any] func(r *http.Request) (R, error)

// ErrorHandler renders errors from binding or rendering.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Decorator wraps a HandlerFunc. The first decorator given to Wrap is the outermost.
type Decorator[R any] func(HandlerFunc[R]) HandlerFunc[R]

// WrapOption configures Wrap.
type WrapOption[R any] func(*wrapConfig[R])

type wrapConfig[R any] struct {
	binder       Bind[R]
	errorHandler ErrorHandler
	decorators   []Decorator[R]
}

// WithBinder sets the request binder. Without one the handler receives the zero R.
func WithBinder[R any](b Bind[R]) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		if b != nil {
			c.binder = b
		}
	}
}

// WithErrorHandler sets the error handler.
func WithErrorHandler[R any](h ErrorHandler) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithDecorators adds decorators around the handler.
func WithDecorators[R any](decorators ...Decorator[R]) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	_ = JSONError(err).Render(w, r)
}

// Wrap converts a typed HandlerFunc to an http.HandlerFunc.
//
//	r.Post("/schemas/{name}/validate", handler.Wrap(api.validate,
//		handler.WithBinder(handler.Bind[map[string]any](binder.Request())),
//	))
func Wrap[R any](h HandlerFunc[R], opts ...WrapOption[R]) http.HandlerFunc {
	cfg := &wrapConfig[R]{errorHandler: defaultErrorHandler}
	for _, opt := range opts {
		opt(cfg)
	}

	final := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		final = cfg.decorators[i](final)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req R
		if cfg.binder != nil {
			var err error
			if req, err = cfg.binder(r); err != nil {
				cfg.errorHandler(w, r, err)
				return
			}
		}

		resp := final(r, req)
		if resp == nil {
			cfg.errorHandler(w, r, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(w, r, err)
		}
	}
}
