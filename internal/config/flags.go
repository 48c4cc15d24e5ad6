package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the client's command-line flags from args.
//
// Flags:
//
//	-grpc-address cinema service address in format [host]:[port]
//	-request-timeout unary call timeout (e.g., "10s")
//	-keepalive-time keep-alive ping interval (e.g., "10s")
//	-keepalive-timeout keep-alive ping ack timeout (e.g., "10s")
//	-cooldown pause after a failed command (e.g., "1s")
//	-history-file interactive history file path
//	-log-file log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var grpcAddress NetAddress
	var requestTimeout time.Duration
	var keepAliveTime time.Duration
	var keepAliveTimeout time.Duration
	var cooldown time.Duration
	var historyFile string
	var logFile string
	var jsonConfigPath string

	fs := flag.NewFlagSet("cinema-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&grpcAddress, "grpc-address", "Cinema service address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Unary request timeout (e.g., 10s)")
	fs.DurationVar(&keepAliveTime, "keepalive-time", 0, "Keep-alive ping interval (e.g., 10s)")
	fs.DurationVar(&keepAliveTimeout, "keepalive-timeout", 0, "Keep-alive ping timeout (e.g., 10s)")
	fs.DurationVar(&cooldown, "cooldown", 0, "Pause after a failed command (e.g., 1s)")
	fs.StringVar(&historyFile, "history-file", "", "Interactive history file path")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			GRPCAddress:      grpcAddress.String(),
			RequestTimeout:   requestTimeout,
			KeepAliveTime:    keepAliveTime,
			KeepAliveTimeout: keepAliveTimeout,
		},
		Session: Session{
			Cooldown:    cooldown,
			HistoryFile: historyFile,
		},
		Log: Log{
			File: logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and returns an error if the format or values
// are invalid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	if host == "" {
		return errors.New("host is required")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	a.Host = host
	a.Port = port
	return nil
}
