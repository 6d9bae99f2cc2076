// Package binder turns request bodies and documents into the map[string]any
// values that forms validate.
//
// Binders are chosen by media type: JSON() for application/json, YAML() for
// application/yaml, Form() for urlencoded and multipart forms, Query() for
// URL parameters, and Request() to dispatch on Content-Type. JSON numbers
// are decoded as json.Number.
//
// The Decode* helpers serve non-HTTP callers such as the formcheck CLI:
//
//	doc, err := binder.DecodeFile("order.yaml")
//	if err != nil {
//		return err
//	}
//	data, err := registry.Validate("Order", doc)
//
// # Error Handling
//
//   - ErrMissingContentType, ErrUnsupportedMediaType: no binder for the request.
//   - ErrBodyTooLarge: body exceeds DefaultMaxBodySize.
//   - ErrFailedToParseJSON, ErrFailedToParseYAML, ErrFailedToParseForm: malformed input.
//   - ErrNotAnObject: the document is valid but not an object.
package binder
