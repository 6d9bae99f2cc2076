package i18n

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// TranslationAdapter loads translations: language -> key -> template.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads translations from one file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a file adapter. A nil parser is chosen from the file extension.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil {
		parser = NewParserForFile(path)
	}
	return &FileAdapter{parser: parser, path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, a.path)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: translation file %q is empty", ErrFailedToParseFile, a.path)
	}

	translations, err := a.parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return translations, nil
}

// MultiAdapter merges several sources; later sources override earlier keys.
type MultiAdapter []TranslationAdapter

func (m MultiAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	out := make(map[string]map[string]any)
	for _, a := range m {
		if a == nil {
			continue
		}
		data, err := a.Load(ctx)
		if err != nil {
			return nil, err
		}
		for lang, keys := range data {
			if out[lang] == nil {
				out[lang] = make(map[string]any, len(keys))
			}
			for k, v := range keys {
				out[lang][k] = v
			}
		}
	}
	return out, nil
}
