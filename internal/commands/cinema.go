package commands

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-cinema-client/internal/app"
	"github.com/MKhiriev/go-cinema-client/internal/console"
	"github.com/MKhiriev/go-cinema-client/internal/service"
	"github.com/MKhiriev/go-cinema-client/models"
)

const (
	filmAxisLabel  = "film"
	venueAxisLabel = "venue"
)

var errMissingFilmID = errors.New("film identifier is required")

func (d *Dispatcher) registerCinemaCommands() {
	d.Register(&Command{
		Name:        models.CommandFilms,
		Description: "List all films",
		Usage:       "films",
		Handler:     d.filmsHandler,
	})

	d.Register(&Command{
		Name:        models.CommandScreenings,
		Description: "List the screenings of a film",
		Usage:       "screenings <film_id>",
		Handler:     d.screeningsHandler,
	})

	d.Register(&Command{
		Name:        models.CommandSubscribe,
		Description: "Follow new screenings of the chosen films and venues",
		Usage:       "subscribe",
		Handler:     d.subscribeHandler,
	})
}

func (d *Dispatcher) filmsHandler(ctx context.Context, svc service.CinemaService, _ models.Command) Outcome {
	films, err := svc.Films(ctx)
	if err != nil {
		return d.serviceFailure(err)
	}

	d.out.Films(films)
	return continueOutcome
}

func (d *Dispatcher) screeningsHandler(ctx context.Context, svc service.CinemaService, cmd models.Command) Outcome {
	if !cmd.HasArgument {
		d.out.Error(&console.InputParseError{Err: errMissingFilmID})
		return continueOutcome
	}

	filmID, err := console.ParseInt32(cmd.Argument)
	if err != nil {
		d.out.Error(err)
		return continueOutcome
	}

	screenings, err := svc.FilmScreenings(ctx, models.FilmScreeningsRequest{FilmID: filmID})
	if err != nil {
		return d.serviceFailure(err)
	}

	d.out.Screenings(screenings)
	return continueOutcome
}

// subscribeHandler collects both filter axes before any remote call. The
// feed is followed until the service closes it or ctx is canceled; there is
// no way to stop it from the keyboard.
func (d *Dispatcher) subscribeHandler(ctx context.Context, svc service.CinemaService, _ models.Command) Outcome {
	var filter models.SubscriptionFilter

	for _, axis := range []struct {
		label string
		dst   *models.IdentifierList
	}{
		{label: filmAxisLabel, dst: &filter.FilmIDs},
		{label: venueAxisLabel, dst: &filter.VenueIDs},
	} {
		ids, err := d.reader.ReadIdentifierList(axis.label)
		switch {
		case errors.Is(err, console.ErrEndOfInput):
			return terminateOutcome
		case errors.Is(err, console.ErrAborted):
			return continueOutcome
		case err != nil:
			return errorOutcome(err)
		}
		*axis.dst = ids
	}

	err := svc.Subscribe(ctx, filter, func(batch []models.Screening) error {
		d.out.Screenings(batch)
		return nil
	})
	if err != nil {
		return d.serviceFailure(err)
	}

	if ctx.Err() != nil {
		d.out.Notice(app.MsgSubscriptionCanceled)
	} else {
		d.out.Notice(app.MsgSubscriptionEnded)
	}
	return continueOutcome
}

// serviceFailure reports a request rejected before it left the client the
// same way as a malformed argument; anything else is a failed command.
func (d *Dispatcher) serviceFailure(err error) Outcome {
	if errors.Is(err, service.ErrInvalidRequest) {
		d.out.Error(err)
		return continueOutcome
	}
	return errorOutcome(err)
}
