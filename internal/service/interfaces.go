package service

import (
	"context"

	"github.com/MKhiriev/go-health-server/models"
)

// HealthService answers liveness and readiness questions for the transports.
type HealthService interface {
	// Liveness reports that the process is up. It performs no dependency
	// checks and always returns the same payload.
	Liveness(ctx context.Context) models.HealthStatus

	// Readiness pings every configured dependency. It returns the per-check
	// status and an error wrapping [ErrNotReady] when any check failed.
	Readiness(ctx context.Context) (models.ReadinessStatus, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
