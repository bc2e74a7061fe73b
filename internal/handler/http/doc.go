// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, panic recovery, request
// timeouts, response compression and request body parsing are handled in
// this package before requests reach a handler. Handlers return errors
// instead of writing failures themselves; every error ends up in a single
// terminal error handler that renders a JSON error response.
package http
