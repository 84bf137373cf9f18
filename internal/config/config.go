// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-health-keeper server. It aggregates all sub-configurations and is
// populated by merging defaults, a .env file, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database and the object store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Auth holds the bearer token verification settings.
	Auth Auth `envPrefix:"AUTH_"`

	// Server holds network address, timeout and rate-limit settings.
	Server Server `envPrefix:"SERVER_"`

	// Cache holds query cache settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	DB   DB   `envPrefix:"DB_"`
	Blob Blob `envPrefix:"BLOB_"`
}

// DB holds connection settings for Postgres.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns limits the pool size. Zero keeps the driver default.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Blob providers supported by [Blob.Provider].
const (
	BlobProviderS3       = "s3"
	BlobProviderSupabase = "supabase"
)

// Blob holds object store settings for Winners Bible images.
type Blob struct {
	// Provider selects the object store implementation: "s3" or "supabase".
	// Env: STORAGE_BLOB_PROVIDER
	Provider string `env:"PROVIDER"`

	// Bucket is the bucket every image path is scoped by.
	// Env: STORAGE_BLOB_BUCKET
	Bucket string `env:"BUCKET"`

	// S3 settings.
	Region          string `env:"REGION"`
	Endpoint        string `env:"ENDPOINT"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	UsePathStyle    bool   `env:"USE_PATH_STYLE"`

	// PublicBaseURL overrides the public URL prefix of stored objects.
	// Env: STORAGE_BLOB_PUBLIC_BASE_URL
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`

	// Supabase Storage settings.
	SupabaseURL        string        `env:"SUPABASE_URL"`
	SupabaseServiceKey string        `env:"SUPABASE_SERVICE_KEY"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT"`
}

// Auth holds bearer token verification settings. At least one of
// SupabaseJWTSecret and JWKSURL must be set.
type Auth struct {
	// SupabaseJWTSecret verifies HS256 tokens issued by Supabase Auth.
	// Env: AUTH_SUPABASE_JWT_SECRET
	SupabaseJWTSecret string `env:"SUPABASE_JWT_SECRET"`

	// JWKSURL is the key set endpoint used to verify RS256 tokens (Clerk).
	// Env: AUTH_JWKS_URL
	JWKSURL string `env:"JWKS_URL"`

	// Issuer, when set, must match the "iss" claim.
	// Env: AUTH_ISSUER
	Issuer string `env:"ISSUER"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the sustained per-subject request rate (requests/second).
	// Env: SERVER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the per-subject burst size.
	// Env: SERVER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Cache holds query cache settings.
type Cache struct {
	// TTL is how long a cached result is served without reloading.
	// Env: CACHE_TTL
	TTL time.Duration `env:"TTL"`

	// MaxAge is the age after which the sweeper drops an entry.
	// Env: CACHE_MAX_AGE
	MaxAge time.Duration `env:"MAX_AGE"`

	// LoadTimeout bounds a backend load shared by concurrent requests.
	// Env: CACHE_LOAD_TIMEOUT
	LoadTimeout time.Duration `env:"LOAD_TIMEOUT"`

	// RedisAddress enables the cross-instance invalidation bus when set.
	// Env: CACHE_REDIS_ADDRESS
	RedisAddress  string `env:"REDIS_ADDRESS"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisChannel  string `env:"REDIS_CHANNEL"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// CacheSweepSchedule is a cron spec for the cache sweeper ("@every 5m").
	// Env: WORKERS_CACHE_SWEEP_SCHEDULE
	CacheSweepSchedule string `env:"CACHE_SWEEP_SCHEDULE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (a .env file in the working directory is loaded first)
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
