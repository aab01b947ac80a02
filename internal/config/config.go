// Package config holds the immutable settings the server is built from.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// ErrInvalid is returned (wrapped) by Validate for unusable settings.
var ErrInvalid = errors.New("invalid config")

// Config contains everything the server needs at startup.
// It is built once and never mutated after Validate.
type Config struct {
	Host string // Interface to bind; empty means all interfaces
	Port int    // TCP port (default: 8080)
	Root string // Directory served (default: working directory)

	// MIMETypes overrides the platform extension table, keyed by ".ext".
	MIMETypes map[string]string
}

// Default returns the compiled-in configuration.
func Default() *Config {
	return &Config{
		Host: "",
		Port: 8080,
		Root: ".",
		MIMETypes: map[string]string{
			".wasm": "application/wasm",
		},
	}
}

// Validate checks the settings and normalises MIME extension keys
// to lower case with a leading dot.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalid, c.Port)
	}
	if strings.TrimSpace(c.Root) == "" {
		return fmt.Errorf("%w: empty root directory", ErrInvalid)
	}

	types := make(map[string]string, len(c.MIMETypes))
	for ext, typ := range c.MIMETypes {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == "." {
			return fmt.Errorf("%w: empty extension in MIME table", ErrInvalid)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if strings.TrimSpace(typ) == "" {
			return fmt.Errorf("%w: empty content type for %s", ErrInvalid, ext)
		}
		types[ext] = typ
	}
	c.MIMETypes = types

	return nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
