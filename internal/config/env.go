// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvReader looks up a single environment variable. It is the only place the
// config package touches the process environment, so tests can substitute
// fixed inputs with [MapEnv].
type EnvReader func(name string) (string, bool)

// OSEnv reads variables from the real process environment.
func OSEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapEnv returns an [EnvReader] backed by a fixed map.
func MapEnv(vars map[string]string) EnvReader {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

// rawEnv mirrors the supported environment variables. Every field is a
// string so that env parsing itself never fails; conversion to typed values
// happens in toConfig, where malformed values become zero and are later
// replaced by defaults.
type rawEnv struct {
	Port        string `env:"PORT"`
	NodeEnv     string `env:"NODE_ENV"`
	AppEnv      string `env:"APP_ENV"`
	Host        string `env:"HOST"`
	LogLevel    string `env:"LOG_LEVEL"`
	DatabaseURL string `env:"DATABASE_URL"`
	ConfigPath  string `env:"CONFIG"`

	Server struct {
		GRPCAddress     string `env:"GRPC_ADDRESS"`
		RequestTimeout  string `env:"REQUEST_TIMEOUT"`
		ShutdownTimeout string `env:"SHUTDOWN_TIMEOUT"`
		MaxBodyBytes    string `env:"MAX_BODY_BYTES"`
	} `envPrefix:"SERVER_"`

	Storage struct {
		DB struct {
			PingTimeout string `env:"PING_TIMEOUT"`
		} `envPrefix:"DB_"`
	} `envPrefix:"STORAGE_"`
}

// parseEnv populates a [StructuredConfig] from the variables visible through
// readEnv using the caarlos0/env library. Only the keys declared on rawEnv
// are requested from readEnv.
func parseEnv(readEnv EnvReader) (*StructuredConfig, error) {
	var raw rawEnv

	params, err := env.GetFieldParams(&raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsingEnv, err)
	}

	environ := make(map[string]string, len(params))
	for _, p := range params {
		if v, ok := readEnv(p.Key); ok {
			environ[p.Key] = v
		}
	}

	if err = env.ParseWithOptions(&raw, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsingEnv, err)
	}

	return raw.toConfig(), nil
}

func (raw rawEnv) toConfig() *StructuredConfig {
	environment := raw.NodeEnv
	if environment == "" {
		environment = raw.AppEnv
	}

	return &StructuredConfig{
		App: App{
			Environment: environment,
			LogLevel:    strings.ToLower(strings.TrimSpace(raw.LogLevel)),
		},
		Server: Server{
			Host:            strings.TrimSpace(raw.Host),
			Port:            parsePort(raw.Port),
			GRPCAddress:     strings.TrimSpace(raw.Server.GRPCAddress),
			RequestTimeout:  parseDuration(raw.Server.RequestTimeout),
			ShutdownTimeout: parseDuration(raw.Server.ShutdownTimeout),
			MaxBodyBytes:    parseSize(raw.Server.MaxBodyBytes),
		},
		Storage: Storage{
			DB: DB{
				DSN:         strings.TrimSpace(raw.DatabaseURL),
				PingTimeout: parseDuration(raw.Storage.DB.PingTimeout),
			},
		},
		JSONFilePath: strings.TrimSpace(raw.ConfigPath),
	}
}

// parsePort returns the port encoded in s, or 0 when s is not a positive
// integer.
func parsePort(s string) int {
	port, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || port < 1 {
		return 0
	}
	return port
}

// parseDuration returns the positive duration encoded in s, or 0.
func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil || d <= 0 {
		return 0
	}
	return d
}

// parseSize returns the positive byte count encoded in s, or 0.
func parseSize(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return 0
	}
	return n
}
