// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, trace
// identifiers, HTTP response writing and HTTP client initialization.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// BodyCtxKey is the key under which the body parsing middleware stores the
// decoded request body.
var BodyCtxKey = contextKey("body")

// ContextWithBody returns a copy of ctx carrying the decoded request body.
func ContextWithBody(ctx context.Context, body any) context.Context {
	return context.WithValue(ctx, BodyCtxKey, body)
}

// GetBodyFromContext retrieves the decoded request body from the context.
//
// Returns the body and an ok flag:
//   - ok == true:  a body was parsed for this request
//   - ok == false: the request had no parsable body
//
// JSON bodies are returned as map[string]any or []any with numbers kept as
// json.Number. URL-encoded bodies are returned as map[string]any whose
// leaves are strings, []any or nested maps.
func GetBodyFromContext(ctx context.Context) (any, bool) {
	body := ctx.Value(BodyCtxKey)
	if body == nil {
		return nil, false
	}
	return body, true
}
