package config

import (
	"os"

	"hostmark/internal/platform"
)

const (
	// DefaultAddress is used when no address override is given.
	DefaultAddress = "127.0.0.1"
	// DefaultMarker identifies the managed block when APP_NAME is unset.
	DefaultMarker = "web-server"

	markerEnv = "APP_NAME"
)

// Config holds the fully resolved invocation parameters. It is built
// once at startup; nothing reads flags or the environment after that.
type Config struct {
	Marker  string
	Address string
	Path    string
}

// Resolve fills empty fields with their defaults: the marker from
// APP_NAME (falling back to DefaultMarker), the loopback address, and
// the platform hosts file path.
func Resolve(marker, address, path string) Config {
	if marker == "" {
		marker = MarkerFromEnv()
	}
	if address == "" {
		address = DefaultAddress
	}
	if path == "" {
		path = platform.DefaultHostsPath()
	}
	return Config{Marker: marker, Address: address, Path: path}
}

// MarkerFromEnv returns the marker configured via APP_NAME, or
// DefaultMarker when the variable is unset or empty.
func MarkerFromEnv() string {
	if v := os.Getenv(markerEnv); v != "" {
		return v
	}
	return DefaultMarker
}
