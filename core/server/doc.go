// Package server holds the HTTP server configuration and lifecycle.
//
// Config is built once at startup and passed by value; nothing in the
// process mutates it or reads the working directory behind its back.
//
// # Lifecycle
//
//   - Listen binds the TCP socket synchronously so a port conflict or a
//     missing privilege for port 80 is reported before the banner.
//   - Serve runs fiber's accept loop (one goroutine per connection).
//   - Shutdown closes the listener and waits at most ShutdownTimeoutSeconds
//     for in-flight responses; the port can be bound again immediately.
//
// Read and write timeouts default to zero, meaning none. That is fine for a
// developer tool on a LAN but should be set for anything exposed further.
package server
