package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-cinema-client/internal/adapter"
	"github.com/MKhiriev/go-cinema-client/internal/logger"
	"github.com/MKhiriev/go-cinema-client/internal/utils"
	"github.com/MKhiriev/go-cinema-client/models"
)

type cinemaService struct {
	adapter adapter.CinemaAdapter
	logger  *logger.Logger
}

// NewCinemaService returns the CinemaService backed by cinemaAdapter, with
// every request validated before it leaves the client.
func NewCinemaService(cinemaAdapter adapter.CinemaAdapter, log *logger.Logger) CinemaService {
	return NewCinemaValidationService().Wrap(&cinemaService{adapter: cinemaAdapter, logger: log})
}

func (c *cinemaService) Films(ctx context.Context) ([]models.Film, error) {
	films, err := c.adapter.ListFilms(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	c.log(ctx).Debug().Int("count", len(films)).Msg("films received")
	return films, nil
}

func (c *cinemaService) FilmScreenings(ctx context.Context, req models.FilmScreeningsRequest) ([]models.Screening, error) {
	screenings, err := c.adapter.ListFilmScreenings(ctx, req.FilmID)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	c.log(ctx).Debug().
		Int32("film_id", req.FilmID).
		Int("count", len(screenings)).
		Msg("screenings received")
	return screenings, nil
}

// Subscribe keeps exactly one batch in flight: the next Recv is issued only
// after onBatch has returned.
func (c *cinemaService) Subscribe(ctx context.Context, filter models.SubscriptionFilter, onBatch func([]models.Screening) error) error {
	log := c.log(ctx)

	stream, err := c.adapter.SubscribeScreenings(ctx, filter)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return mapAdapterError(err)
	}
	log.Info().
		Ints32("film_ids", filter.FilmIDs).
		Ints32("venue_ids", filter.VenueIDs).
		Msg("subscription opened")

	for batches := 0; ; batches++ {
		batch, err := stream.Recv()
		switch {
		case errors.Is(err, io.EOF):
			log.Info().Int("batches", batches).Msg("subscription closed by the service")
			return nil
		case errors.Is(err, context.Canceled) || ctx.Err() != nil:
			log.Info().Int("batches", batches).Msg("subscription canceled")
			return nil
		case err != nil:
			return mapAdapterError(err)
		}

		if err = onBatch(batch); err != nil {
			return fmt.Errorf("handle screening batch: %w", err)
		}
	}
}

// log prefers the command-scoped logger carried by ctx.
func (c *cinemaService) log(ctx context.Context) *logger.Logger {
	if _, ok := utils.GetTraceIDFromContext(ctx); ok {
		return logger.FromContext(ctx)
	}
	return c.logger
}
