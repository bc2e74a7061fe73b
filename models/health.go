// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Liveness payload values returned by GET /health.
const (
	StatusHealthy  = "Healthy"
	MessageHealthy = "Server Started Succesfullly"
)

// Readiness status values returned by GET /ready.
const (
	StatusReady    = "Ready"
	StatusNotReady = "NotReady"
)

// CheckOK is the value reported for a dependency check that passed.
const CheckOK = "ok"

// HealthStatus is the liveness payload. It never reflects dependency state:
// a process able to answer is healthy.
type HealthStatus struct {
	// Status is always [StatusHealthy] when produced by the server.
	Status string `json:"status"`

	// Message is a human-readable description of the status.
	Message string `json:"message"`
}

// ReadinessStatus is the readiness payload.
type ReadinessStatus struct {
	// Status is [StatusReady] when every check passed, [StatusNotReady]
	// otherwise.
	Status string `json:"status"`

	// Checks maps a dependency name to [CheckOK] or to the error text of the
	// failed check. Omitted when no dependencies are configured.
	Checks map[string]string `json:"checks,omitempty"`
}
