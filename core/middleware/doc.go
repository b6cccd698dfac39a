// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: tags every incoming request with a unique id stored in the
//     request locals so log lines can be correlated.
//   - AccessLog: writes one structured log line per request (method, path,
//     status, duration) through zap.
//
// Neither component alters the response, so a file served by the generic
// responder is byte-for-byte what the file server produced.
package middleware
