package config

import "time"

const defaultDotenvPath = ".env"

// Defaults used when no source provides a value.
const (
	DefaultTokenDuration    = 24 * time.Hour
	DefaultPasswordHashCost = 8
	DefaultDSN              = "database.db"
	DefaultHTTPAddress      = ":5000"
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultRateLimitWindow  = time.Minute
	DefaultRateLimitCount   = 30
	DefaultAdapterAddress   = "http://localhost:5000"
	DefaultAdapterTimeout   = 15 * time.Second
	DefaultLogLevel         = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: DefaultPasswordHashCost,
			LogLevel:         DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:        DefaultHTTPAddress,
			ShutdownTimeout:    DefaultShutdownTimeout,
			CORSAllowedOrigins: []string{"*"},
			RateLimit: RateLimit{
				Requests: DefaultRateLimitCount,
				Window:   DefaultRateLimitWindow,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
	}
}
