// Package middleware holds the cross-cutting request handling: security
// headers, CORS, request ids, request-scoped logging, rate limiting,
// tracing, metrics, panic recovery and the global error handler.
package middleware
