package i18n

import (
	"net/http"
)

// Middleware stores the request language in the context: the query
// parameter param when set, otherwise the best match for Accept-Language.
func Middleware(t *Translator, param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var lang string
			if param != "" {
				if q := r.URL.Query().Get(param); q != "" {
					lang = t.Match(q)
				}
			}
			if lang == "" {
				lang = t.MatchAcceptLanguage(r.Header.Get("Accept-Language"))
			}
			next.ServeHTTP(w, r.WithContext(WithLanguage(r.Context(), lang)))
		})
	}
}
