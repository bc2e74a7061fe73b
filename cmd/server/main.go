package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-health-server/internal/config"
	"github.com/MKhiriev/go-health-server/internal/handler"
	"github.com/MKhiriev/go-health-server/internal/logger"
	"github.com/MKhiriev/go-health-server/internal/server"
	"github.com/MKhiriev/go-health-server/internal/service"
	"github.com/MKhiriev/go-health-server/internal/store"
	"github.com/MKhiriev/go-health-server/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const appName = "go-health-server"

func main() {
	args := os.Args[1:]
	if len(args) > 0 && args[0] == healthcheckCommand {
		os.Exit(healthcheck(args[1:]))
	}

	printBuildInfo()

	cfg, cfgErr := config.Load(config.OSEnv, args)
	log := logger.NewLogger(appName, cfg.App.LogLevel)
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Msg("some config sources were skipped, using defaults")
	}

	log.Debug().
		Str("environment", cfg.App.Environment).
		Str("log_level", cfg.App.LogLevel).
		Str("http_address", cfg.Server.HTTPAddress()).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Dur("shutdown_timeout", cfg.Server.ShutdownTimeout).
		Int64("max_body_bytes", cfg.Server.MaxBodyBytes).
		Bool("database_configured", cfg.Storage.DB.DSN != "").
		Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("Unable to connect to the database")
		os.Exit(1)
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services := service.NewServices(storages, *cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	runErr := srv.Run(ctx)

	if err = storages.Close(); err != nil {
		log.Error().Err(err).Msg("error closing storages")
	}

	if errors.Is(runErr, server.ErrBind) {
		log.Error().Err(runErr).Msg("unable to start server")
		os.Exit(1)
	}
	if runErr != nil {
		log.Error().Err(runErr).Msg("server stopped with error")
		os.Exit(1)
	}
}

func printBuildInfo() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())
}
