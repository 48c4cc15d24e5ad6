// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-cinema-client/internal/commands"
	"github.com/MKhiriev/go-cinema-client/internal/service"
	"github.com/MKhiriev/go-cinema-client/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the session and blocks until it ends.
	Run(ctx context.Context) error
}

// LineReader reads raw command lines.
type LineReader interface {
	ReadLine() (string, error)
}

// Dispatcher executes one parsed command.
type Dispatcher interface {
	Dispatch(ctx context.Context, svc service.CinemaService, cmd models.Command) commands.Outcome
}

// Output renders session messages and errors.
type Output interface {
	Error(error)
	Message(string)
}
