package i18n

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

type languageKey struct{}

// WithLanguage stores the negotiated response language in ctx.
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageKey{}, lang)
}

// LanguageFrom returns the language stored by WithLanguage.
// The boolean is false when none was negotiated.
func LanguageFrom(ctx context.Context) (string, bool) {
	lang, ok := ctx.Value(languageKey{}).(string)
	return lang, ok && lang != ""
}

// Language returns the language of the request, or the translator's
// default language when the request carries none.
func (t *Translator) Language(ctx context.Context) string {
	if lang, ok := LanguageFrom(ctx); ok {
		return lang
	}
	return t.DefaultLanguage()
}

// LoggerExtractor adds the negotiated language to records logged with a
// request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if lang, ok := LanguageFrom(ctx); ok {
			return slog.String("lang", lang), true
		}
		return slog.Attr{}, false
	}
}
