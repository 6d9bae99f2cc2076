// Package handler exposes form schemas over HTTP.
//
// API mounts a chi router that validates request documents against the
// schemas of a form.Registry. Valid input answers 200 with the pruned data
// under "data"; invalid input answers 422 with the error tree under "errors",
// localised by the request language when a translator is configured. Unknown
// schemas answer 404, and malformed or unsupported bodies answer 400 or 415
// with an "error" object.
//
// The building blocks are usable on their own: Wrap adapts a typed
// HandlerFunc with a binder, decorators, and an error handler; JSON and
// JSONError render responses; StatusOf maps errors to status codes.
//
//	api := handler.NewAPI(registry,
//		handler.WithLogger(log),
//		handler.WithTranslator(translator),
//	)
//	srv := httpserver.New(httpserver.WithAddr(":8080"))
//	err := srv.Run(ctx, api.Router())
package handler
