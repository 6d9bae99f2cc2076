package binder

import (
	"fmt"
	"mime"
	"net/http"
	"strings"
)

const (
	// DefaultMaxBodySize is the default maximum request body size (1MB).
	DefaultMaxBodySize = 1 << 20
	// DefaultMaxMemory is the memory limit for multipart forms (10MB).
	DefaultMaxMemory = 10 << 20
)

// Func extracts a document from a request.
type Func func(r *http.Request) (map[string]any, error)

// JSON binds an application/json body.
func JSON() Func {
	return func(r *http.Request) (map[string]any, error) {
		if _, err := requireMediaType(r, "application/json"); err != nil {
			return nil, err
		}
		return DecodeReader(r.Body, DefaultMaxBodySize)
	}
}

// YAML binds an application/yaml body. The legacy application/x-yaml and
// text/yaml types are accepted too.
func YAML() Func {
	return func(r *http.Request) (map[string]any, error) {
		if _, err := requireMediaType(r, "application/yaml", "application/x-yaml", "text/yaml"); err != nil {
			return nil, err
		}
		content, err := readLimited(r.Body, DefaultMaxBodySize)
		if err != nil {
			return nil, err
		}
		return DecodeYAML(content)
	}
}

// Form binds urlencoded or multipart form values. A key with one value maps
// to a string, a repeated key to a list of strings. Files are ignored.
func Form() Func {
	return func(r *http.Request) (map[string]any, error) {
		mediaType, err := requireMediaType(r, "application/x-www-form-urlencoded", "multipart/form-data")
		if err != nil {
			return nil, err
		}

		if mediaType == "multipart/form-data" {
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			return values(r.MultipartForm.Value), nil
		}
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		return values(r.PostForm), nil
	}
}

// Query binds URL query parameters like Form binds form values.
func Query() Func {
	return func(r *http.Request) (map[string]any, error) {
		return values(r.URL.Query()), nil
	}
}

// Request picks JSON, YAML, or Form from the request's content type.
func Request() Func {
	bindJSON, bindYAML, bindForm := JSON(), YAML(), Form()
	return func(r *http.Request) (map[string]any, error) {
		mediaType, err := mediaTypeOf(r)
		if err != nil {
			return nil, err
		}
		switch mediaType {
		case "application/json":
			return bindJSON(r)
		case "application/yaml", "application/x-yaml", "text/yaml":
			return bindYAML(r)
		case "application/x-www-form-urlencoded", "multipart/form-data":
			return bindForm(r)
		}
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
}

func values(v map[string][]string) map[string]any {
	out := make(map[string]any, len(v))
	for k, vals := range v {
		switch len(vals) {
		case 0:
		case 1:
			out[k] = vals[0]
		default:
			list := make([]any, len(vals))
			for i, s := range vals {
				list[i] = s
			}
			out[k] = list
		}
	}
	return out
}

func mediaTypeOf(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", ErrMissingContentType
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMediaType, contentType)
	}
	return strings.ToLower(mediaType), nil
}

func requireMediaType(r *http.Request, allowed ...string) (string, error) {
	mediaType, err := mediaTypeOf(r)
	if err != nil {
		return "", err
	}
	for _, a := range allowed {
		if mediaType == a {
			return mediaType, nil
		}
	}
	return "", fmt.Errorf("%w: got %s, expected %s", ErrUnsupportedMediaType, mediaType, strings.Join(allowed, " or "))
}
