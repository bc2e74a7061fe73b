package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-health-server/internal/service"
)

// errorStatuses is checked in order, so an error wrapping several sentinels
// always maps to the first one listed.
var errorStatuses = []struct {
	target error
	status int
}{
	{ErrRouteNotFound, http.StatusNotFound},
	{ErrBodyTooLarge, http.StatusRequestEntityTooLarge},
	{ErrTooManyParameters, http.StatusRequestEntityTooLarge},
	{ErrUnsupportedCharset, http.StatusUnsupportedMediaType},
	{ErrInvalidGzipBody, http.StatusBadRequest},
	{ErrMalformedJSON, http.StatusBadRequest},
	{ErrMalformedForm, http.StatusBadRequest},

	{service.ErrNotReady, http.StatusServiceUnavailable},

	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// statusFromError returns the HTTP status for err. An explicit
// [*StatusError] wins over the sentinel table; anything unknown is a 500.
func statusFromError(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Status >= 400 {
		return statusErr.Status
	}

	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing message for err answered with
// status.
func messageFromError(err error, status int) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}
	return http.StatusText(status)
}
