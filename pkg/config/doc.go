// Package config provides configuration management for the iqmath server.
//
// This package handles loading and validating server configuration from
// environment variables and an optional YAML configuration file.
//
// # Configuration Sources
//
// Configuration is resolved in order of increasing precedence:
//
//   - Built-in defaults
//   - Configuration file (iqmath.yml)
//   - Environment variables
//
// Each attribute remembers where its value came from, which the
// `iqmathctl configuration show` command surfaces.
//
// # Key Configuration Options
//
//   - IQMATH_ENVIRONMENT: development or production
//   - IQMATH_SESSION_SIGNING_KEY: HMAC key for session tokens
//   - IQMATH_ALLOWED_ORIGINS: CORS origins for the admin console
//   - IQMATH_CONFIG_PATH: Directory containing iqmath.yml
//   - DATABASE_URL: Database connection (read by pkg/db)
//   - PORT: Server listen port (read by iqmathctl server)
package config
