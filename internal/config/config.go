// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-task-tracker application. It aggregates all sub-configurations and is
// populated by merging values from defaults, a .env file, environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the token signing key,
	// token lifetime and password hashing cost.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the
	// optional Redis cache used by the rate limiter.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout, CORS and rate limit settings
	// for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for the command-line API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security
// and token lifecycle.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Required by the server. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the optional "iss" claim embedded in every issued token.
	// When set, tokens carrying a different issuer are rejected.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a token remains valid after issuance.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt work factor used at signup.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Cache holds the Redis connection settings.
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: a "postgres://" or "postgresql://" URL opens
	// PostgreSQL through pgx, anything else is treated as a SQLite file path
	// (":memory:" for an in-memory database).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns limits the connection pool. Zero means unlimited.
	// Ignored for in-memory SQLite, which always uses a single connection.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Cache holds connection settings for Redis.
type Cache struct {
	// RedisAddress is the "host:port" of the Redis server. When empty the
	// rate limiter keeps its counters in process memory.
	// Env: STORAGE_CACHE_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`

	// RedisPassword is the optional Redis password.
	// Env: STORAGE_CACHE_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`

	// RedisDB is the Redis logical database number.
	// Env: STORAGE_CACHE_REDIS_DB
	RedisDB int `env:"REDIS_DB"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. ":5000").
	// Env: SERVER_ADDRESS (PORT is honoured when SERVER_ADDRESS is unset)
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it. Zero disables the timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// CORSAllowedOrigins lists origins allowed by the CORS middleware.
	// Env: SERVER_CORS_ALLOWED_ORIGINS (comma separated)
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// RateLimit throttles the signup and login endpoints.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
}

// RateLimit configures the fixed-window limiter applied per client IP.
type RateLimit struct {
	// Requests is the number of requests allowed per Window.
	// Zero or less disables the limiter.
	// Env: SERVER_RATE_LIMIT_REQUESTS
	Requests int `env:"REQUESTS"`

	// Window is the length of one counting window.
	// Env: SERVER_RATE_LIMIT_WINDOW
	Window time.Duration `env:"WINDOW"`
}

// Adapter holds configuration for the command-line API client.
type Adapter struct {
	// HTTPAddress is the base URL of the task tracker API
	// (e.g. "http://localhost:5000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout for a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is a bearer token obtained from a previous login.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`

	// LogFile is where the client writes its logs. Empty means stderr.
	// Env: ADAPTER_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Database drivers selected by [DB.Driver].
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// Driver returns the database/sql driver name matching the DSN.
func (db DB) Driver() string {
	dsn := strings.ToLower(db.DSN)
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

// Enabled reports whether the rate limiter should be installed.
func (r RateLimit) Enabled() bool {
	return r.Requests > 0 && r.Window > 0
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  1. Built-in defaults
//  2. .env file in the working directory (if present)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotenv(defaultDotenvPath).
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
