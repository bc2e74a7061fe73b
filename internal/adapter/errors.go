// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Errors returned by [HealthAdapter] implementations. Non-2xx responses are
// mapped to the sentinel matching their status code.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")

	// ErrUnhealthy is returned when GET /health answers 200 with a status
	// other than "Healthy".
	ErrUnhealthy = errors.New("server reported unhealthy status")

	// ErrInvalidAddress is returned by the constructor for an empty or
	// unparsable server address.
	ErrInvalidAddress = errors.New("invalid server address")
)
