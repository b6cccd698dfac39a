package server

import (
	"fmt"
	"io"
	"net"

	"apk-server/core/middleware/accesslog"
	"apk-server/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Server owns the fiber app and its listener.
type Server struct {
	cfg    Config
	app    *fiber.App
	logger *zap.Logger
}

// New builds the fiber app and mounts handler behind the standard middleware.
func New(cfg Config, handler fiber.Handler, logger *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           cfg.ReadTimeout(),
		WriteTimeout:          cfg.WriteTimeout(),
	})

	app.Use(rayid.New())
	app.Use(accesslog.New(logger))
	app.Use(handler)

	return &Server{cfg: cfg, app: app, logger: logger}
}

// App exposes the fiber app, mostly for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen binds the configured address. Bind failures are returned before any
// request can be accepted.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", s.cfg.Addr(), err)
	}
	return ln, nil
}

// Serve runs the accept loop on ln until Shutdown is called.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("Starting server", zap.String("addr", ln.Addr().String()))
	return s.app.Listener(ln)
}

// Shutdown closes the listener and waits up to the shutdown timeout for
// active connections to finish. Connections still open after that, such as a
// client that stopped reading mid-download, are abandoned and an error is
// returned.
func (s *Server) Shutdown() error {
	if err := s.app.ShutdownWithTimeout(s.cfg.ShutdownTimeout()); err != nil {
		return fmt.Errorf("shutdown after %s: %w", s.cfg.ShutdownTimeout(), err)
	}
	return nil
}

// Banner writes the startup message listing every download route.
func Banner(w io.Writer, cfg Config, routes []string) {
	fmt.Fprintf(w, "Server started at http://localhost:%s\n", cfg.Port)
	for _, route := range routes {
		fmt.Fprintf(w, "Direct APK access at %s%s\n", cfg.BaseURL(), route)
	}
	fmt.Fprintln(w, "Press Ctrl+C to stop the server")
}
