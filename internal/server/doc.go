// Package server wires and runs the application's transport servers.
//
// It binds every enabled listener before serving anything, so an occupied
// port is reported synchronously to the caller. Once bound, the HTTP and
// gRPC servers run until the context is cancelled and are then shut down
// gracefully within the configured timeout.
package server
