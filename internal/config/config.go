// Package config loads server settings from an optional .env file and the
// environment.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/terrain-api/internal/errors"
	"github.com/KirkDiggler/terrain-api/internal/imaging"
)

// Environment variable names
const (
	EnvFrontendURL    = "FRONTEND_URL"
	EnvHTTPPort       = "HTTP_PORT"
	EnvGRPCPort       = "GRPC_PORT"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvPNGCompression = "PNG_COMPRESSION"
)

// Defaults
const (
	DefaultFrontendURL = "http://localhost:5173"
	DefaultHTTPPort    = 3000
	DefaultGRPCPort    = 50051
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
)

// LogFormats lists the accepted LOG_FORMAT values
var LogFormats = []string{"text", "json"}

// LogLevels lists the accepted LOG_LEVEL values
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds everything the server needs to start
type Config struct {
	FrontendURL    string
	HTTPPort       int
	GRPCPort       int
	LogLevel       string
	LogFormat      string
	PNGCompression string
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		FrontendURL:    DefaultFrontendURL,
		HTTPPort:       DefaultHTTPPort,
		GRPCPort:       DefaultGRPCPort,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
		PNGCompression: imaging.CompressionDefault,
	}
}

// Load reads the given .env files (".env" when none are named), then
// overlays the process environment on the defaults. Missing files are
// ignored.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "failed to load %s", f)
		}
	}

	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function such as os.LookupEnv
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	vb := errors.NewValidationBuilder()

	if v, ok := lookup(EnvFrontendURL); ok && v != "" {
		cfg.FrontendURL = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v, ok := lookup(EnvPNGCompression); ok && v != "" {
		cfg.PNGCompression = strings.ToLower(v)
	}

	cfg.HTTPPort = portFromEnv(lookup, EnvHTTPPort, cfg.HTTPPort, vb)
	cfg.GRPCPort = portFromEnv(lookup, EnvGRPCPort, cfg.GRPCPort, vb)

	if err := vb.Build(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings and port ranges
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired(EnvFrontendURL, c.FrontendURL, vb)
	errors.ValidateRange(EnvHTTPPort, c.HTTPPort, 1, 65535, vb)
	errors.ValidateRange(EnvGRPCPort, c.GRPCPort, 1, 65535, vb)
	errors.ValidateEnum(EnvLogLevel, c.LogLevel, LogLevels, vb)
	errors.ValidateEnum(EnvLogFormat, c.LogFormat, LogFormats, vb)
	errors.ValidateEnum(EnvPNGCompression, c.PNGCompression, imaging.CompressionLevels, vb)

	return vb.Build()
}

func portFromEnv(lookup func(string) (string, bool), name string, fallback int, vb *errors.ValidationBuilder) int {
	v, ok := lookup(name)
	if !ok || v == "" {
		return fallback
	}

	port, err := strconv.Atoi(v)
	if err != nil {
		vb.InvalidField(name, "not an integer")
		return fallback
	}
	return port
}
