package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/formkit/pkg/binder"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// JSONResponse is the body of every JSON response.
// Exactly one of Data, Errors, or Error is set.
type JSONResponse struct {
	Data   any            `json:"data,omitempty"`
	Errors validator.Tree `json:"errors,omitempty"`
	Meta   map[string]any `json:"meta,omitempty"`
	Error  *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a request that failed for reasons other than invalid data.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j *jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus overrides the HTTP status code.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta adds metadata to the response body.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON renders v under "data" with status 200.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err. Validation failures render their error tree under
// "errors" with status 422; everything else renders an ErrorDetail with the
// status from StatusOf.
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{}
	if tree := validator.ExtractTree(err); tree != nil {
		r.status = http.StatusUnprocessableEntity
		r.body.Errors = tree
	} else {
		r.status = StatusOf(err)
		r.body.Error = detailOf(err, r.status)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// StatusOf maps an error to its HTTP status code.
func StatusOf(err error) int {
	var httpErr HTTPError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &httpErr):
		return httpErr.Code
	case validator.IsValidationError(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, form.ErrSchemaNotFound) && !isRefError(err):
		return http.StatusNotFound
	case errors.Is(err, validator.ErrMaxDepthExceeded):
		return http.StatusUnprocessableEntity
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, binder.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParseYAML),
		errors.Is(err, binder.ErrFailedToParseForm),
		errors.Is(err, binder.ErrNotAnObject):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// isRefError reports a dangling reference inside a schema: a server side
// definition problem, not an unknown schema in the URL.
func isRefError(err error) bool {
	var defErr *form.DefinitionError
	return errors.As(err, &defErr) && defErr.Ref != ""
}

func detailOf(err error, status int) *ErrorDetail {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}

	switch {
	case status == http.StatusNotFound:
		return &ErrorDetail{Code: "schema_not_found", Message: err.Error()}
	case errors.Is(err, validator.ErrMaxDepthExceeded):
		return &ErrorDetail{Code: "max_depth_exceeded", Message: err.Error()}
	case status >= http.StatusInternalServerError:
		// Internal details stay in the logs.
		return &ErrorDetail{Code: ErrInternalServerError.Key, Message: http.StatusText(status)}
	}

	code := ErrBadRequest.Key
	switch status {
	case http.StatusUnsupportedMediaType:
		code = ErrUnsupportedMediaType.Key
	case http.StatusRequestEntityTooLarge:
		code = ErrRequestTooLarge.Key
	}
	return &ErrorDetail{Code: code, Message: err.Error()}
}
