package server

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface to bind. Empty binds all interfaces.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"80"`
	// Root is the working root for served files. Empty means the directory
	// containing the server executable.
	Root string `mapstructure:"root" default:""`
	// ReadTimeoutSeconds bounds reading a request. Zero disables the timeout.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"0"`
	// WriteTimeoutSeconds bounds writing a response. Zero disables the timeout.
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" default:"0"`
	// ShutdownTimeoutSeconds bounds how long Shutdown waits for in-flight
	// responses before giving up on them.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"5"`
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// ReadTimeout returns the configured read timeout.
func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the configured write timeout.
func (c Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// ShutdownTimeout returns the configured shutdown grace period, at least one second.
func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return time.Second
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// ResolveRoot returns the absolute working root.
func (c Config) ResolveRoot() (string, error) {
	if c.Root != "" {
		root, err := filepath.Abs(c.Root)
		if err != nil {
			return "", fmt.Errorf("failed to resolve root %q: %w", c.Root, err)
		}
		return root, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// BaseURL is the URL printed for humans. Port 80 is left implicit.
func (c Config) BaseURL() string {
	host := c.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	if c.Port == "80" {
		return "http://" + host
	}
	return "http://" + net.JoinHostPort(host, c.Port)
}
