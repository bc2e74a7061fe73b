package server

import "context"

// Server defines the lifecycle contract of the process' transports.
type Server interface {
	// Run binds every listener, serves until ctx is cancelled and then shuts
	// down gracefully. A bind failure is returned before anything is served
	// and wraps [ErrBind].
	Run(ctx context.Context) error
}

// transport is a single listener-backed server managed by [server].
type transport interface {
	// name identifies the transport in logs.
	name() string

	// listen binds the listener without serving.
	listen() error

	// serve blocks until the transport stops. A graceful stop is not an
	// error.
	serve(ctx context.Context) error

	// shutdown stops accepting connections and waits for in-flight requests
	// until ctx expires.
	shutdown(ctx context.Context) error

	// close releases a bound listener that never started serving.
	close() error
}
