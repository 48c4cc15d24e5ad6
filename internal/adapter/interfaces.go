// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer facade used to talk to the
// cinema service.
//
// The primary abstraction is [CinemaAdapter], which decouples the service
// layer from the underlying protocol. The package ships a gRPC
// implementation ([NewGRPCCinemaAdapter]) that keeps one long-lived
// connection with keep-alive probing enabled.
//
// Error values defined in errors.go are mapped from gRPC status codes by
// mapGRPCError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrCommunication] for an unreachable service).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cinema-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cinema_adapter_mock.go -package=mock

// CinemaAdapter defines transport-agnostic communication with the cinema
// service. Implementations are responsible for serialisation, connection
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type CinemaAdapter interface {
	// ListFilms returns every film known to the service.
	ListFilms(ctx context.Context) ([]models.Film, error)

	// ListFilmScreenings returns the screenings of the film identified by
	// filmID in the order the service reports them. An unknown film is
	// reported as [ErrNotFound].
	ListFilmScreenings(ctx context.Context, filmID int32) ([]models.Screening, error)

	// SubscribeScreenings opens a live feed of screening batches matching
	// filter. The feed runs until the service closes it, the connection
	// fails, or ctx is canceled.
	SubscribeScreenings(ctx context.Context, filter models.SubscriptionFilter) (ScreeningStream, error)

	// Close releases the connection. No call may be made afterwards.
	Close() error
}

// ScreeningStream is the receiving side of a screening subscription.
type ScreeningStream interface {
	// Recv blocks until the next batch arrives. It returns io.EOF once the
	// service has closed the feed, and ctx.Err() of the subscription context
	// when that context was canceled.
	Recv() ([]models.Screening, error)
}
