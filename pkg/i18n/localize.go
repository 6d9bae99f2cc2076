package i18n

import (
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Localize returns a copy of tree with every leaf message rendered in lang.
// Errors without a translation for lang keep their original message.
// The input tree is not modified.
func (t *Translator) Localize(tree validator.Tree, lang string) validator.Tree {
	if tree == nil {
		return nil
	}
	out := make(validator.Tree, len(tree))
	for field, p := range tree {
		out[field] = t.localizePayload(p, lang)
	}
	return out
}

func (t *Translator) localizePayload(p *validator.Payload, lang string) *validator.Payload {
	if p == nil {
		return nil
	}

	out := &validator.Payload{}
	if len(p.Errors) > 0 {
		out.Errors = make([]*validator.ValidationError, len(p.Errors))
		for i, e := range p.Errors {
			out.Errors[i] = t.localizeError(e, lang)
		}
	}
	if len(p.Items) > 0 {
		out.Items = make([]*validator.Payload, len(p.Items))
		for i, item := range p.Items {
			out.Items[i] = t.localizePayload(item, lang)
		}
	}
	if len(p.Alternatives) > 0 {
		out.Alternatives = make([]*validator.Payload, len(p.Alternatives))
		for i, alt := range p.Alternatives {
			out.Alternatives[i] = t.localizePayload(alt, lang)
		}
	}
	if len(p.Keys) > 0 {
		out.Keys = make(map[string]*validator.Payload, len(p.Keys))
		for k, v := range p.Keys {
			out.Keys[k] = t.localizePayload(v, lang)
		}
	}
	return out
}

func (t *Translator) localizeError(e *validator.ValidationError, lang string) *validator.ValidationError {
	c := *e
	if c.TranslationKey == "" {
		return &c
	}
	if tmpl, ok := t.Lookup(lang, c.TranslationKey); ok {
		c.Message = validator.Interpolate(tmpl, c.TranslationValues)
	}
	return &c
}
