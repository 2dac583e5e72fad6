// Package errs defines the error types that reach API clients.
//
// Every failure a handler returns is turned into an *HTTPError by the global
// error handler, so clients always receive the same JSON shape:
//
//	{ "code": "...", "message": "...", "status": 400, ... }
//
// with the optional `errors`, `requestProperties` and `error` members filled
// in for validation and internal failures.
package errs
