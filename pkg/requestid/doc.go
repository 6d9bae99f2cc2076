// Package requestid tags HTTP requests with an identifier that is echoed in
// the X-Request-ID response header and attached to log records through
// LoggerExtractor.
package requestid
