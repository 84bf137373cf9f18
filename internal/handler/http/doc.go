// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Every body is the {data, loading, error} envelope produced from a
// derived-state view. Cross-cutting concerns such as authentication, profile
// resolution, rate limiting, request tracing, access logging and response
// compression are handled in this package before requests reach the state
// adapters.
package http
