// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"time"
)

// EnvironmentDevelopment is the environment label used when none is provided.
const EnvironmentDevelopment = "development"

// StructuredConfig is the top-level configuration container for the
// go-health-server application. It is built once at process start by merging
// environment variables, command-line flags, an optional JSON file, and
// defaults, and is treated as read-only afterwards.
type StructuredConfig struct {
	// App holds application-level settings such as the environment label
	// and the log level.
	App App

	// Server holds listener addresses, timeouts and request limits for the
	// HTTP and gRPC transports.
	Server Server

	// Storage holds the optional database used for the startup dependency
	// check and the readiness probe.
	Storage Storage

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string
}

// App holds application-level configuration values.
type App struct {
	// Environment is an informational label such as "development" or
	// "production". It only changes how much detail error responses carry.
	// Env: NODE_ENV (or APP_ENV)
	Environment string

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	LogLevel string
}

// Server holds network, timeout and request-size settings for the inbound
// transport layer.
type Server struct {
	// Host is the interface the HTTP server binds to. Empty means all
	// interfaces.
	// Env: HOST
	Host string

	// Port is the TCP port of the HTTP server.
	// Env: PORT
	Port int

	// GRPCAddress is the host:port of the optional gRPC health server.
	// Empty disables the gRPC transport.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown of all listeners.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration

	// MaxBodyBytes is the largest request body the body parser accepts.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB
}

// DB holds connection settings for the optional database backend.
type DB struct {
	// DSN selects the driver by scheme: postgres:// and postgresql:// use
	// pgx, anything else is handed to sqlite3. Empty disables the database.
	// Env: DATABASE_URL
	DSN string

	// PingTimeout bounds every ping issued against the database.
	// Env: STORAGE_DB_PING_TIMEOUT
	PingTimeout time.Duration
}

// HTTPAddress returns the host:port the HTTP server binds to.
func (s Server) HTTPAddress() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsDevelopment reports whether the application runs in the development
// environment.
func (a App) IsDevelopment() bool {
	return a.Environment == EnvironmentDevelopment
}

// Load builds the application configuration from the environment exposed by
// readEnv, the command-line arguments args (without the program name), an
// optional JSON file, and defaults. Earlier sources win:
//  1. Environment variables, then the ./.env file for variables readEnv
//     does not set
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
//
// The returned config is always non-nil and fully populated: missing or
// malformed values fall back to their defaults. A non-nil error only lists
// the sources that had to be skipped, so callers can log it and continue.
func Load(readEnv EnvReader, args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv(readEnv).
		withFlags(args).
		withJSON().
		build()
}
