package strata

import (
	"log/slog"
	"os"

	"github.com/strata-web/strata/pkg/render"
)

// =============================================================================
// Configuration Types
// =============================================================================

// DefaultPort is used when the PORT environment variable is unset.
const DefaultPort = "8080"

// Config is the main application configuration.
type Config struct {
	// Shell configures the document wrapped around every rendered page.
	Shell render.Shell

	// Static configures static file serving.
	Static StaticConfig

	// API configures JSON API routes.
	API APIConfig

	// DevMode enables development conveniences: the render-timestamp
	// comment in the document and the live-reload endpoint.
	DevMode bool

	// Logger is the structured logger for the application.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// StaticConfig configures static file serving.
type StaticConfig struct {
	// Dir is the directory containing static files (e.g., "public").
	// Empty disables static serving.
	Dir string

	// Prefix is the URL path prefix for static files (e.g., "/").
	// A file at public/styles.css with Prefix="/" is served at /styles.css.
	// Default: "/".
	Prefix string

	// CacheControl determines caching behavior for static files.
	// Default: CacheControlNone (no caching headers).
	CacheControl CacheControlStrategy

	// Headers are custom headers to add to all static file responses.
	Headers map[string]string
}

// APIConfig configures JSON API routes.
type APIConfig struct {
	// MaxBodyBytes is the maximum number of bytes read from the HTTP
	// request body for API routes.
	//
	// Default: 1 MiB.
	MaxBodyBytes int64

	// RequireJSONContentType enforces that requests with a non-empty body
	// specify a JSON Content-Type (application/json or application/*+json).
	//
	// When false (default), missing Content-Type is accepted, but explicit
	// non-JSON Content-Type is rejected.
	RequireJSONContentType bool
}

// CacheControlStrategy determines caching behavior for static files.
type CacheControlStrategy int

const (
	// CacheControlNone adds no-store headers.
	// Use in development for instant updates.
	CacheControlNone CacheControlStrategy = iota

	// CacheControlProduction uses appropriate caching:
	// - Fingerprinted files (*.a1b2c3d4.css): immutable, 1 year max-age
	// - Other files: short cache with revalidation
	CacheControlProduction
)

// =============================================================================
// Default Configurations
// =============================================================================

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Static: DefaultStaticConfig(),
		API:    DefaultAPIConfig(),
	}
}

// DefaultStaticConfig returns a StaticConfig with sensible defaults.
func DefaultStaticConfig() StaticConfig {
	return StaticConfig{
		Prefix:       "/",
		CacheControl: CacheControlNone,
	}
}

// DefaultAPIConfig returns an APIConfig with sensible defaults.
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		MaxBodyBytes: 1 << 20, // 1 MiB
	}
}

// PortFromEnv returns the port from the PORT environment variable,
// falling back to DefaultPort.
func PortFromEnv() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return DefaultPort
}
