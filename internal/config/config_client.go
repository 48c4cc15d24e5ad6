package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// GRPCAddress is the cinema service endpoint.
	GRPCAddress string `validate:"required,hostname_port"`
	// RequestTimeout is the deadline of unary calls; zero disables it.
	RequestTimeout time.Duration `validate:"gte=0"`
	// KeepAliveTime is the keep-alive ping interval.
	KeepAliveTime time.Duration `validate:"gt=0"`
	// KeepAliveTimeout is the keep-alive ping ack timeout.
	KeepAliveTimeout time.Duration `validate:"gt=0"`
}

// ClientSession holds settings of the interactive command loop.
type ClientSession struct {
	// Cooldown is the pause after a failed command.
	Cooldown time.Duration `validate:"gt=0"`
	// HistoryFile is the readline history path; empty disables history.
	HistoryFile string
}

// ClientLog holds logger output settings.
type ClientLog struct {
	// File is the JSON log file path.
	File string `validate:"required"`
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the cinema service address and connection policy.
	Adapter ClientAdapter
	// Session contains command loop settings.
	Session ClientSession
	// Log contains logger settings.
	Log ClientLog
}

// GetClientConfig builds and validates the client config from the merged
// structured configuration. args are the command-line arguments without the
// program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			GRPCAddress:      cfg.Adapter.GRPCAddress,
			RequestTimeout:   cfg.Adapter.RequestTimeout,
			KeepAliveTime:    cfg.Adapter.KeepAliveTime,
			KeepAliveTimeout: cfg.Adapter.KeepAliveTimeout,
		},
		Session: ClientSession{
			Cooldown:    cfg.Session.Cooldown,
			HistoryFile: cfg.Session.HistoryFile,
		},
		Log: ClientLog{
			File: cfg.Log.File,
		},
	}
}
