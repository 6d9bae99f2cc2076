package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// DefaultLanguage is used when no language is configured or matched.
const DefaultLanguage = "en"

// Translator resolves message templates per language.
// It is safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	langs          []string
	matcher        language.Matcher
	mu             sync.RWMutex
}

// NewTranslator loads translations from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, keys := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguageCode
		}
		if keys == nil {
			return nil, fmt.Errorf("nil translations map for language: %s", lang)
		}
	}

	t.translations = translations
	t.langs, t.matcher = buildMatcher(translations, t.defaultLang)
	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", t.langs))
	return t, nil
}

// NewValidationTranslator loads the built-in English validation messages
// followed by adapters, which may override them or add languages.
func NewValidationTranslator(ctx context.Context, adapters []TranslationAdapter, options ...Option) (*Translator, error) {
	defaults := make(map[string]any)
	for k, v := range validator.DefaultTemplates() {
		defaults[k] = v
	}
	sources := MultiAdapter{&MapAdapter{Data: map[string]map[string]any{DefaultLanguage: defaults}}}
	return NewTranslator(ctx, append(sources, adapters...), options...)
}

// buildMatcher orders languages with the default first, as language.Matcher
// falls back to its first tag.
func buildMatcher(translations map[string]map[string]any, defaultLang string) ([]string, language.Matcher) {
	langs := make([]string, 0, len(translations))
	for lang := range translations {
		if lang != defaultLang {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	if _, ok := translations[defaultLang]; ok {
		langs = append([]string{defaultLang}, langs...)
	}

	tags := make([]language.Tag, len(langs))
	for i, lang := range langs {
		tags[i] = language.Make(lang)
	}
	return langs, language.NewMatcher(tags)
}

// SupportedLanguages returns loaded language codes, default language first.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, len(t.langs))
	copy(out, t.langs)
	return out
}

func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match returns the supported language best matching the preferred tags,
// e.g. "de-AT" matches "de". It returns the default language when nothing matches.
func (t *Translator) Match(preferred ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.langs) == 0 {
		return t.defaultLang
	}

	tags := make([]language.Tag, 0, len(preferred))
	for _, p := range preferred {
		if tag, err := language.Parse(p); err == nil {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return t.defaultLang
	}

	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}

// MatchAcceptLanguage matches an Accept-Language header value.
func (t *Translator) MatchAcceptLanguage(header string) string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return t.defaultLang
	}
	preferred := make([]string, len(tags))
	for i, tag := range tags {
		preferred[i] = tag.String()
	}
	return t.Match(preferred...)
}

// Lookup returns the raw template for key. Keys are looked up as a dotted
// path through nested mappings first, then as a flat key.
func (t *Translator) Lookup(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	keys, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	val, ok := lookupPath(keys, key)
	if !ok {
		val, ok = keys[key]
	}
	if !ok {
		return "", false
	}
	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}

// Has reports whether a template exists for lang and key.
func (t *Translator) Has(lang, key string) bool {
	_, ok := t.Lookup(lang, key)
	return ok
}

// T renders key for lang, substituting %{name} placeholders from values.
// Missing translations render the key itself unless fallback is disabled.
func (t *Translator) T(lang, key string, values map[string]any) string {
	tmpl, ok := t.Lookup(lang, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", logger.Lang(lang), slog.String("key", key))
		}
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	return validator.Interpolate(tmpl, values)
}

func lookupPath(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}
