// Package httpserver runs an http.Handler with configurable timeouts,
// graceful shutdown on context cancellation or SIGINT/SIGTERM, and
// lifecycle logging.
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// HealthCheckHandler serves liveness and readiness checks. Run wraps listen
// errors with ErrStart and Shutdown wraps shutdown errors with ErrShutdown.
package httpserver
