// Package cache provides a small generic, thread-safe LRU cache.
//
// It backs memoised compilation in the validator package: Regex rules built
// from schema files share compiled patterns through a process-wide LRU, so a
// registry loaded repeatedly does not recompile the same expression.
//
//	patterns := cache.New[string, *regexp.Regexp](256)
//	re, err := patterns.GetOrCompute(expr, func() (*regexp.Regexp, error) {
//		return regexp.Compile(expr)
//	})
//
// All operations are O(1) and safe for concurrent use.
package cache
