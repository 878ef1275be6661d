// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-subjects service. It aggregates all sub-configurations and is
// populated by merging defaults, a config file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//   - koanf     — key used when the struct is read from a config file.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_" koanf:"app"`

	// Storage holds the connection settings of the subject store.
	Storage Storage `envPrefix:"STORAGE_" koanf:"storage"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_" koanf:"server"`

	// Adapter holds settings of outbound integrations, currently the user
	// subsystem.
	Adapter Adapter `envPrefix:"ADAPTER_" koanf:"adapter"`

	// Cache holds settings of the Redis read-through cache.
	Cache Cache `envPrefix:"CACHE_" koanf:"cache"`

	// Events holds settings of the RabbitMQ event publisher.
	Events Events `envPrefix:"EVENTS_" koanf:"events"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_" koanf:"workers"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG" koanf:"-"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION" koanf:"version"`

	// LogLevel is the minimal zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" koanf:"log_level"`
}

// Storage groups the configuration of the persistence backend.
type Storage struct {
	DB DB `envPrefix:"DB_" koanf:"db"`
}

// DB holds connection settings for the subject store.
type DB struct {
	// DSN selects the backend by its scheme:
	//   - mongodb://, mongodb+srv://  — MongoDB
	//   - postgres://, postgresql://  — PostgreSQL
	//   - sqlite://<path>, file:<path> — SQLite
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" koanf:"dsn"`

	// Name is the MongoDB database name. Ignored by SQL backends.
	// Env: STORAGE_DB_DATABASE_NAME
	Name string `env:"DATABASE_NAME" koanf:"name"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" koanf:"http_address"`

	// GRPCAddress is the TCP address of the gRPC health server. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS" koanf:"grpc_address"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" koanf:"request_timeout"`

	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" koanf:"shutdown_timeout"`
}

// Adapter holds configuration for external adapter integrations.
type Adapter struct {
	// UsersAddress is the base URL of the user subsystem. When empty, users
	// are read from the subject store's own database.
	// Env: ADAPTER_USERS_ADDRESS
	UsersAddress string `env:"USERS_ADDRESS" koanf:"users_address"`

	// RequestTimeout bounds a single call to the user subsystem.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" koanf:"request_timeout"`
}

// Cache holds Redis settings. An empty RedisAddress disables caching.
type Cache struct {
	RedisAddress  string        `env:"REDIS_ADDRESS" koanf:"redis_address"`
	RedisPassword string        `env:"REDIS_PASSWORD" koanf:"redis_password"`
	RedisDB       int           `env:"REDIS_DB" koanf:"redis_db"`
	TTL           time.Duration `env:"TTL" koanf:"ttl"`
}

// Events holds RabbitMQ settings. An empty AMQPURL disables publishing.
type Events struct {
	AMQPURL  string `env:"AMQP_URL" koanf:"amqp_url"`
	Exchange string `env:"EXCHANGE" koanf:"exchange"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// HealthCheckInterval is the period of the storage health probe.
	// Env: WORKERS_HEALTH_CHECK_INTERVAL
	HealthCheckInterval time.Duration `env:"HEALTH_CHECK_INTERVAL" koanf:"health_check_interval"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Config file (path resolved from sources 3 and 4)
//  3. Environment variables
//  4. Command-line flags
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withFile().
		build()
}
