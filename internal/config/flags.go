package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the configuration flags found in args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-p server port
//	-e environment label
//	-grpc-address grpc health server address in format [host]:[port]
//	-d database DSN
//	-l log level
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout (e.g., "10s")
//	-max-body-bytes request body limit in bytes
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var port int
	var environment string
	var databaseDSN string
	var logLevel string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var shutdownTimeout time.Duration
	var maxBodyBytes int64

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.IntVar(&port, "p", 0, "Server port")
	fs.StringVar(&environment, "e", "", "Environment label")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&logLevel, "l", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Shutdown timeout (e.g., 10s)")
	fs.Int64Var(&maxBodyBytes, "max-body-bytes", 0, "Request body limit in bytes")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsingFlags, err)
	}

	// -p wins over the port part of -a
	if port < 1 {
		port = serverAddress.Port
	}

	return &StructuredConfig{
		App: App{
			Environment: environment,
			LogLevel:    strings.ToLower(logLevel),
		},
		Server: Server{
			Host:            serverAddress.Host,
			Port:            port,
			GRPCAddress:     grpcServerAddress.String(),
			RequestTimeout:  max(requestTimeout, 0),
			ShutdownTimeout: max(shutdownTimeout, 0),
			MaxBodyBytes:    max(maxBodyBytes, 0),
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The port must be a positive integer, like PORT and -p; a port beyond 65535
// is left for the listener to reject. The host must be an IP unless it is
// "localhost" or empty.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number must be positive")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
