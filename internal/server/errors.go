// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrBind is returned by Run when a listener cannot be bound, typically
	// because the port is already in use or not permitted.
	ErrBind = errors.New("unable to bind listener")

	errNoServersAreCreated = errors.New("no servers are created")
)
