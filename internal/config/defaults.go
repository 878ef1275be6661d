package config

import "time"

const (
	defaultHTTPAddress         = ":8080"
	defaultRequestTimeout      = 30 * time.Second
	defaultShutdownTimeout     = 10 * time.Second
	defaultDatabaseName        = "school"
	defaultAdapterTimeout      = 5 * time.Second
	defaultCacheTTL            = 5 * time.Minute
	defaultEventsExchange      = "subjects"
	defaultHealthCheckInterval = 15 * time.Second
	defaultAppVersion          = "0.0.0-dev"
	defaultLogLevel            = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  defaultAppVersion,
			LogLevel: defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{Name: defaultDatabaseName},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: defaultAdapterTimeout,
		},
		Cache: Cache{
			TTL: defaultCacheTTL,
		},
		Events: Events{
			Exchange: defaultEventsExchange,
		},
		Workers: Workers{
			HealthCheckInterval: defaultHealthCheckInterval,
		},
	}
}
