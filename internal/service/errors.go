package service

import "errors"

var (
	// ErrNotReady is returned by [HealthService.Readiness] when at least one
	// dependency did not answer.
	ErrNotReady = errors.New("service is not ready")
)
