package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeJSON decodes a JSON object. Numbers are kept as json.Number so that
// integers survive the round trip unchanged.
func DecodeJSON(content []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrFailedToParseJSON)
		}
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
	}
	return object(doc)
}

// DecodeYAML decodes a YAML mapping.
func DecodeYAML(content []byte) (map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: empty document", ErrFailedToParseYAML)
	}
	return object(doc)
}

// DecodeFile decodes a .json, .yaml, or .yml file.
func DecodeFile(path string) (map[string]any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON(content)
	case ".yaml", ".yml":
		return DecodeYAML(content)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, path)
}

// DecodeReader reads r fully, up to limit bytes, and decodes it as JSON.
// A limit of zero or less means DefaultMaxBodySize.
func DecodeReader(r io.Reader, limit int64) (map[string]any, error) {
	content, err := readLimited(r, limit)
	if err != nil {
		return nil, err
	}
	return DecodeJSON(content)
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultMaxBodySize
	}
	content, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(content)) > limit {
		return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, limit)
	}
	return content, nil
}

func object(doc any) (map[string]any, error) {
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotAnObject, doc)
	}
	return m, nil
}
