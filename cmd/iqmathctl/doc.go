// Package main implements iqmathctl, the iqmath server CLI.
//
// The server backs the iqmath marketing website and its admin panel:
// public content APIs, appointment booking, and cookie-based admin
// authentication.
//
// # Quick Start
//
//	# Run database migrations
//	iqmathctl db migrate
//
//	# Create the first admin user
//	iqmathctl user create admin@iqmath.in "Admin" --role admin
//
//	# Start the server
//	iqmathctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - IQMATH_ENVIRONMENT: Deployment environment (development, production)
//   - IQMATH_SESSION_SIGNING_KEY: HMAC key for session tokens
//   - IQMATH_ALLOWED_ORIGINS: Comma-separated CORS origins
//   - IQMATH_CONFIG_PATH: Config file directory (default: /etc/iqmath/config)
//   - IQMATH_LOG_LEVEL: Log level (debug enables SQL logging)
//   - PORT: Server port (default: 8000)
package main
