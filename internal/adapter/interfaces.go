package adapter

import (
	"context"

	"github.com/MKhiriev/go-health-server/models"
)

// HealthAdapter probes a running go-health-server over the network. It backs
// the `healthcheck` subcommand used by container orchestrators.
type HealthAdapter interface {
	// Health calls GET /health and fails unless the server answers 200 with
	// the healthy payload.
	Health(ctx context.Context) (models.HealthStatus, error)

	// Ready calls GET /ready. The readiness report is returned even when the
	// server is not ready, together with an error wrapping
	// [ErrServiceUnavailable].
	Ready(ctx context.Context) (models.ReadinessStatus, error)
}
