// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
)

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is]; [statusFromError] maps each of them to an
// HTTP status code.
var (
	// ErrRouteNotFound is returned for requests that match no route, or match
	// a route with a method it does not handle.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMalformedJSON is returned by the body parser when a JSON body cannot
	// be decoded, has trailing data, or is not an object or array.
	ErrMalformedJSON = errors.New("malformed JSON body")

	// ErrMalformedForm is returned by the body parser when a URL-encoded body
	// cannot be parsed.
	ErrMalformedForm = errors.New("malformed URL-encoded body")

	// ErrBodyTooLarge is returned when the request body exceeds the
	// configured limit.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrTooManyParameters is returned when a URL-encoded body carries more
	// parameters than the parser accepts.
	ErrTooManyParameters = errors.New("too many parameters")

	// ErrUnsupportedCharset is returned when the body declares a charset
	// other than UTF-8.
	ErrUnsupportedCharset = errors.New("unsupported charset")

	// ErrInvalidGzipBody is returned when a request declares gzip content
	// encoding but its body is not valid gzip data.
	ErrInvalidGzipBody = errors.New("invalid gzip body")
)

// StatusError attaches an explicit HTTP status to an error. Handlers return
// it when no sentinel describes the failure.
type StatusError struct {
	// Status is the HTTP status code written to the client.
	Status int

	// Message replaces the status text in the response when not empty.
	Message string

	// Err is the underlying cause. It may be nil.
	Err error
}

// NewStatusError returns a [*StatusError] for status wrapping err.
func NewStatusError(status int, message string, err error) *StatusError {
	return &StatusError{Status: status, Message: message, Err: err}
}

func (e *StatusError) Error() string {
	switch {
	case e.Err != nil && e.Message != "":
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case e.Message != "":
		return e.Message
	default:
		return fmt.Sprintf("status %d", e.Status)
	}
}

func (e *StatusError) Unwrap() error {
	return e.Err
}
