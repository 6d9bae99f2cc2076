package validator

import (
	"regexp"

	"github.com/dmitrymomot/formkit/pkg/cache"
)

// patterns shares compiled expressions between Regex rules.
var patterns = cache.New[string, *regexp.Regexp](256)

// CompilePattern compiles expr anchored at both ends, so it must match the
// whole string. Compiled patterns are cached.
func CompilePattern(expr string) (*regexp.Regexp, error) {
	anchored := `^(?:` + expr + `)$`
	return patterns.GetOrCompute(anchored, func() (*regexp.Regexp, error) {
		return regexp.Compile(anchored)
	})
}

// Regex fails when a non-empty value is not a string fully matching expr.
// An empty message renders the "Must match pattern" template.
// It panics if expr does not compile.
func Regex(expr, message string) Rule {
	re, err := CompilePattern(expr)
	if err != nil {
		panic("validator: invalid pattern " + expr + ": " + err.Error())
	}

	return Rule{
		Check: present(func(value any) bool {
			s, ok := value.(string)
			return ok && re.MatchString(s)
		}),
		Error: *NewError(KindFormat, KeyPattern, map[string]any{"pattern": expr}),
	}.WithMessage(message)
}
