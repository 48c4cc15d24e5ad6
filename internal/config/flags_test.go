package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 50051}, expected: "localhost:50051"},
		{name: "IPv6 host", addr: NetAddress{Host: "::1", Port: 50051}, expected: "[::1]:50051"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    NetAddress
	}{
		{name: "localhost", input: "localhost:50051", expected: NetAddress{Host: "localhost", Port: 50051}},
		{name: "hostname", input: "cinema.example.com:443", expected: NetAddress{Host: "cinema.example.com", Port: 443}},
		{name: "ip", input: "10.0.0.1:9000", expected: NetAddress{Host: "10.0.0.1", Port: 9000}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "missing host", input: ":50051", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	// Arrange
	args := []string{
		"-grpc-address", "localhost:7000",
		"-request-timeout", "3s",
		"-keepalive-time", "30s",
		"-keepalive-timeout", "20s",
		"-cooldown", "500ms",
		"-history-file", "/tmp/h",
		"-log-file", "/tmp/l.log",
		"-config", "/tmp/c.json",
	}

	// Act
	cfg, err := parseFlags(args)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "localhost:7000", cfg.Adapter.GRPCAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.Adapter.KeepAliveTime)
	assert.Equal(t, 20*time.Second, cfg.Adapter.KeepAliveTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Session.Cooldown)
	assert.Equal(t, "/tmp/h", cfg.Session.HistoryFile)
	assert.Equal(t, "/tmp/l.log", cfg.Log.File)
	assert.Equal(t, "/tmp/c.json", cfg.JSONFilePath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-c", "cfg.json"})

	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-films"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestParseFlags_BadAddress(t *testing.T) {
	_, err := parseFlags([]string{"-grpc-address", "nope"})

	assert.Error(t, err)
}
