// Package i18n localises validation messages.
//
// A Translator loads catalogues through a TranslationAdapter (in-memory maps,
// YAML files, or several sources merged in order) and renders templates with
// %{name} placeholders, the same syntax the validator package uses for its
// built-in English messages. Keys may be flat ("validation.required") or
// nested mappings addressed with dots.
//
// Localize re-renders every message of a validation error tree in a given
// language using the translation key and values carried by each error. Errors
// raised with a custom message use that message as their key, so catalogues
// can translate them by text. Messages without a translation are left as is.
//
// Language negotiation is done with golang.org/x/text/language: Match and
// MatchAcceptLanguage pick the closest supported language and fall back to
// the default one. Middleware stores the negotiated language in the request
// context, where LanguageFrom and Translator.Language read it.
//
// # Usage
//
//	t, err := i18n.NewValidationTranslator(ctx, []i18n.TranslationAdapter{
//		i18n.NewFileAdapter(nil, "translations/de.yaml"),
//	})
//	if err != nil {
//		return err
//	}
//
//	if err := inst.Validate(); err != nil {
//		if tree := validator.ExtractTree(err); tree != nil {
//			localized := t.Localize(tree, t.MatchAcceptLanguage(r.Header.Get("Accept-Language")))
//			// encode localized
//		}
//	}
package i18n
