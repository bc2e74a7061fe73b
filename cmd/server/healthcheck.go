package main

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/MKhiriev/go-health-server/internal/adapter"
	"github.com/MKhiriev/go-health-server/internal/config"
	"github.com/MKhiriev/go-health-server/internal/logger"
)

const (
	healthcheckCommand = "healthcheck"
	healthcheckTimeout = 3 * time.Second
)

// healthcheck probes GET /health of the server configured by the same
// environment and flags and returns the process exit code.
func healthcheck(args []string) int {
	cfg, _ := config.Load(config.OSEnv, args)
	log := logger.NewLogger(healthcheckCommand, cfg.App.LogLevel)

	healthAdapter, err := adapter.NewHTTPHealthAdapter(probeAddress(cfg.Server), healthcheckTimeout, log)
	if err != nil {
		log.Error().Err(err).Msg("invalid health probe address")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), healthcheckTimeout)
	defer cancel()

	status, err := healthAdapter.Health(ctx)
	if err != nil {
		log.Error().Err(err).Msg("health probe failed")
		return 1
	}

	log.Info().Str("status", status.Status).Msg("server is healthy")
	return 0
}

// probeAddress returns the host:port to probe. Wildcard and empty hosts are
// replaced with the loopback address.
func probeAddress(cfg config.Server) string {
	host := cfg.Host
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, strconv.Itoa(cfg.Port))
}
