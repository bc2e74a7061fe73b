package server

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-health-server/internal/config"
	"github.com/MKhiriev/go-health-server/internal/handler"
	"github.com/MKhiriev/go-health-server/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	shutdownTimeout time.Duration

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if handlers.GRPC != nil && cfg.GRPCAddress != "" {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.shutdownTimeout = cfg.ShutdownTimeout
	servers.logger = logger

	return servers, nil
}

func (s *server) Run(ctx context.Context) error {
	if err := s.listen(); err != nil {
		return err
	}
	return s.serve(ctx)
}

func (s *server) transports() []transport {
	var transports []transport
	if s.httpServer != nil {
		transports = append(transports, s.httpServer)
	}
	if s.gRPCServer != nil {
		transports = append(transports, s.gRPCServer)
	}
	return transports
}

// listen binds every transport. On failure the listeners bound so far are
// released.
func (s *server) listen() error {
	var bound []transport
	for _, t := range s.transports() {
		if err := t.listen(); err != nil {
			for _, b := range bound {
				if closeErr := b.close(); closeErr != nil {
					s.logger.Warn().Err(closeErr).Msgf("closing %s listener", b.name())
				}
			}
			return err
		}
		bound = append(bound, t)
	}
	return nil
}

// serve runs the bound transports until ctx is cancelled or one of them
// fails, then shuts all of them down within shutdownTimeout.
func (s *server) serve(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	for _, t := range s.transports() {
		s.logger.Info().Msgf("Launching %s server", t.name())
		g.Go(func() error {
			return t.serve(gCtx)
		})
	}

	g.Go(func() error {
		<-gCtx.Done()
		return s.shutdown()
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) shutdown() error {
	ctx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	var errs []error
	for _, t := range s.transports() {
		if err := t.shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
