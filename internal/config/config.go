// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied before any other configuration source.
const (
	DefaultGRPCAddress      = "localhost:50051"
	DefaultRequestTimeout   = 10 * time.Second
	DefaultKeepAliveTime    = 10 * time.Second
	DefaultKeepAliveTimeout = 10 * time.Second
	DefaultCooldown         = time.Second
	DefaultLogFile          = "cinema-client.log"
)

// StructuredConfig is the top-level configuration container for the cinema
// client. It is populated by merging defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the cinema service endpoint and connection behaviour.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Session holds settings of the interactive command loop.
	Session Session `envPrefix:"SESSION_"`

	// Log holds logger output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds network settings of the connection to the cinema service.
type Adapter struct {
	// GRPCAddress is the cinema service endpoint in "host:port" format.
	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds every unary call. Subscriptions are not bounded.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// KeepAliveTime is the interval between keep-alive pings on an idle
	// connection.
	// Env: ADAPTER_KEEPALIVE_TIME
	KeepAliveTime time.Duration `env:"KEEPALIVE_TIME"`

	// KeepAliveTimeout is how long the client waits for a ping ack before
	// the connection is considered dead.
	// Env: ADAPTER_KEEPALIVE_TIMEOUT
	KeepAliveTimeout time.Duration `env:"KEEPALIVE_TIMEOUT"`
}

// Session holds settings of the interactive command loop.
type Session struct {
	// Cooldown is the pause inserted after a failed command before the next
	// line is read.
	// Env: SESSION_COOLDOWN
	Cooldown time.Duration `env:"COOLDOWN"`

	// HistoryFile is where interactive line history is kept. Empty disables
	// history.
	// Env: SESSION_HISTORY_FILE
	HistoryFile string `env:"HISTORY_FILE"`
}

// Log holds logger output settings.
type Log struct {
	// File is the path of the JSON log file.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// defaultConfig returns the configuration used when no source overrides a
// field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			GRPCAddress:      DefaultGRPCAddress,
			RequestTimeout:   DefaultRequestTimeout,
			KeepAliveTime:    DefaultKeepAliveTime,
			KeepAliveTimeout: DefaultKeepAliveTimeout,
		},
		Session: Session{
			Cooldown: DefaultCooldown,
		},
		Log: Log{
			File: DefaultLogFile,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
