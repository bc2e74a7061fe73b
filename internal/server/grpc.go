package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-health-server/internal/config"
	myGRPC "github.com/MKhiriev/go-health-server/internal/handler/grpc"
	"github.com/MKhiriev/go-health-server/internal/logger"
	"github.com/MKhiriev/go-health-server/internal/workers"
)

// readinessRefreshInterval is how often the gRPC readiness status is
// re-evaluated while serving.
const readinessRefreshInterval = 15 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	address         string
	server          *grpc.Server
	gRPCNetListener net.Listener

	workers *workers.Workers

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.UnaryLoggingInterceptor))
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  server,
		workers: workers.NewWorkers(workers.NewPeriodic(readinessRefreshInterval, handler.RefreshReadiness)),
		logger:  logger,
	}
}

func (g *grpcServer) name() string {
	return "gRPC"
}

func (g *grpcServer) listen() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("%w: gRPC on %s: %w", ErrBind, g.address, err)
	}
	g.gRPCNetListener = listener

	g.logger.Info().Msgf("gRPC health server is running on %s", listener.Addr())
	return nil
}

func (g *grpcServer) serve(ctx context.Context) error {
	g.handler.Serving(ctx)
	go g.workers.Run(ctx)

	if err := g.server.Serve(g.gRPCNetListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// shutdown reports NOT_SERVING, then drains in-flight calls. Calls still
// running when ctx expires are cut off.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return fmt.Errorf("gRPC server Shutdown: %w", ctx.Err())
	}
}

func (g *grpcServer) close() error {
	if g.gRPCNetListener == nil {
		return nil
	}
	return g.gRPCNetListener.Close()
}
