// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the cinema use cases on top of the transport
// facade in package adapter: listing films, listing a film's screenings and
// following a live screening feed.
//
// Errors returned by the services are classified against the sentinels in
// errors.go so callers never depend on transport details.
package service

import (
	"context"

	"github.com/MKhiriev/go-cinema-client/models"
)

// CinemaService is the set of remote cinema operations available to the
// command dispatcher.
type CinemaService interface {
	// Films returns every film known to the service.
	Films(ctx context.Context) ([]models.Film, error)

	// FilmScreenings returns the screenings of the requested film in the
	// order the service reports them.
	FilmScreenings(ctx context.Context, req models.FilmScreeningsRequest) ([]models.Screening, error)

	// Subscribe follows the screening feed matching filter, calling onBatch
	// for each batch in arrival order. It returns nil when the service
	// closes the feed or ctx is canceled.
	Subscribe(ctx context.Context, filter models.SubscriptionFilter, onBatch func([]models.Screening) error) error
}

// CinemaServiceWrapper defines middleware composition for CinemaService.
// Implementations wrap an existing CinemaService to add behavior such as
// validation.
type CinemaServiceWrapper interface {
	Wrap(CinemaService) CinemaService
}
