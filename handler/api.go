package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formkit/pkg/binder"
	"github.com/dmitrymomot/formkit/pkg/clientip"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/requestid"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// LangParam is the query parameter that selects the message language.
const LangParam = "lang"

// API serves the schemas of a registry over HTTP:
//
//	GET  /health                  readiness: every schema reference resolves
//	GET  /schemas                 schema names and fields in registration order
//	GET  /schemas/{name}          one schema
//	POST /schemas/{name}/validate 200 {"data": ...} or 422 {"errors": ...}
type API struct {
	registry   *form.Registry
	translator *i18n.Translator
	log        *slog.Logger
	timeout    time.Duration
	ipHeaders  []string
}

// APIOption configures an API.
type APIOption func(*API)

// WithTranslator localises error messages by the request language.
func WithTranslator(t *i18n.Translator) APIOption {
	return func(a *API) {
		a.translator = t
	}
}

// WithLogger sets the logger. A discard logger is used by default.
func WithLogger(l *slog.Logger) APIOption {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

// WithTimeout bounds request handling time. Default is 30s.
func WithTimeout(d time.Duration) APIOption {
	return func(a *API) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// WithTrustedIPHeaders lists the proxy headers trusted to carry the client
// address, in priority order. Only RemoteAddr is used by default.
func WithTrustedIPHeaders(headers ...string) APIOption {
	return func(a *API) {
		a.ipHeaders = append(a.ipHeaders, headers...)
	}
}

// NewAPI creates the HTTP API for reg.
func NewAPI(reg *form.Registry, opts ...APIOption) *API {
	a := &API{
		registry: reg,
		log:      logger.Discard(),
		timeout:  30 * time.Second,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SchemaInfo describes a registered schema.
type SchemaInfo struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// Router returns the API routes with their middleware stack.
func (a *API) Router() chi.Router {
	errorHandler := NewErrorHandler(a.log)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware(a.ipHeaders...))
	r.Use(a.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(a.timeout))
	if a.translator != nil {
		r.Use(i18n.Middleware(a.translator, LangParam))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = JSONError(ErrNotFound).Render(w, r)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = JSONError(ErrMethodNotAllowed).Render(w, r)
	})

	r.Get("/health", httpserver.HealthCheckHandler(a.log, func(context.Context) error {
		return a.registry.Check()
	}))

	r.Route("/schemas", func(r chi.Router) {
		r.Get("/", Wrap(a.listSchemas, WithErrorHandler[struct{}](errorHandler)))
		r.Get("/{name}", Wrap(a.describeSchema, WithErrorHandler[struct{}](errorHandler)))
		r.Post("/{name}/validate", Wrap(a.validate,
			WithBinder(Bind[map[string]any](binder.Request())),
			WithErrorHandler[map[string]any](errorHandler),
		))
	})
	return r
}

func (a *API) listSchemas(_ *http.Request, _ struct{}) Response {
	schemas := a.registry.Schemas()
	out := make([]SchemaInfo, 0, len(schemas))
	for _, s := range schemas {
		out = append(out, SchemaInfo{Name: s.Name(), Fields: s.FieldNames()})
	}
	return JSON(out)
}

func (a *API) describeSchema(r *http.Request, _ struct{}) Response {
	s, err := a.registry.Lookup(chi.URLParam(r, "name"))
	if err != nil {
		return JSONError(err)
	}
	return JSON(SchemaInfo{Name: s.Name(), Fields: s.FieldNames()})
}

func (a *API) validate(r *http.Request, doc map[string]any) Response {
	name := chi.URLParam(r, "name")
	data, err := a.registry.Validate(name, doc)
	if err == nil {
		return JSON(data)
	}

	tree := validator.ExtractTree(err)
	if tree == nil {
		if StatusOf(err) >= http.StatusInternalServerError {
			a.log.ErrorContext(r.Context(), "schema definition error", logger.Schema(name), logger.Error(err))
		}
		return JSONError(err)
	}

	a.log.DebugContext(r.Context(), "validation failed", logger.Schema(name), logger.Count("fields", len(tree)))
	if a.translator != nil {
		tree = a.translator.Localize(tree, a.translator.Language(r.Context()))
	}
	return JSONError(tree)
}

func (a *API) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		a.log.InfoContext(r.Context(), "request handled",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("client_ip", clientip.FromContext(r.Context())),
			slog.Int("status_code", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}
