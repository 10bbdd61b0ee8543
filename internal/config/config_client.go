package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is a previously issued bearer token, if any.
	Token string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the client transport address and timeout.
	Adapter ClientAdapter
	// LogFile is the client log destination. Empty means stderr.
	LogFile string
	// LogLevel is the minimum log level.
	LogLevel string
}

// GetClientConfig builds and validates a client-specific config view.
//
// The client parses its own command-line arguments, so only defaults, the
// .env file, environment variables and the JSON file named by CONFIG are
// consulted.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotenv(defaultDotenvPath).
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := clientConfigFrom(cfg)

	return clientCfg, clientCfg.validate()
}

func clientConfigFrom(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		LogFile:  cfg.Adapter.LogFile,
		LogLevel: cfg.App.LogLevel,
	}
}
