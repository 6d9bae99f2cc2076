// Package clientip resolves the address of the client behind an HTTP request.
//
// Proxy headers are attacker controlled unless a trusted proxy sets them, so
// none are consulted by default: list the headers your proxy writes, in
// priority order, and RemoteAddr remains the fallback.
//
//	r.Use(clientip.Middleware("CF-Connecting-IP", "X-Forwarded-For"))
//
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
package clientip
