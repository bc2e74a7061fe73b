package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-health-server/internal/logger"
	"github.com/MKhiriev/go-health-server/internal/service"
)

// ReadinessService is the health-checking service name whose status follows
// the readiness probe. The empty name reports liveness of the whole server.
const ReadinessService = "go-health-server.readiness"

// Handler is the root gRPC transport handler.
//
// It serves the standard grpc.health.v1 protocol. The overall status ("")
// mirrors GET /health and [ReadinessService] mirrors GET /ready. A handler
// instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides the liveness and readiness answers.
	services *service.Services

	// health keeps the per-service serving status.
	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose services all start NOT_SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(ReadinessService, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Handler{
		services: services,
		health:   healthServer,
		logger:   logger,
	}
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Serving marks the server SERVING and refreshes the readiness status. It is
// called once the listener is bound.
func (h *Handler) Serving(ctx context.Context) {
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.RefreshReadiness(ctx)
}

// RefreshReadiness runs the readiness probe and publishes its outcome under
// [ReadinessService].
func (h *Handler) RefreshReadiness(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if _, err := h.services.HealthService.Readiness(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("gRPC readiness is NOT_SERVING")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.health.SetServingStatus(ReadinessService, status)
}

// Shutdown switches every service to NOT_SERVING and ignores later updates,
// so clients drain before the listener closes.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("gRPC health switched to NOT_SERVING")
	h.health.Shutdown()
}
