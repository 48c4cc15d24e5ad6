package adapter

import (
	"time"

	"github.com/MKhiriev/go-cinema-client/internal/cinemapb"
	"github.com/MKhiriev/go-cinema-client/models"
)

func filmsFromProto(in *cinemapb.Films) []models.Film {
	films := make([]models.Film, 0, len(in.Films))
	for _, f := range in.Films {
		if f == nil {
			continue
		}
		films = append(films, models.Film{
			ID:       f.Id,
			Name:     f.Name,
			Duration: time.Duration(f.DurationSec) * time.Second,
		})
	}
	return films
}

func screeningsFromProto(in *cinemapb.Screenings) []models.Screening {
	screenings := make([]models.Screening, 0, len(in.Screenings))
	for _, s := range in.Screenings {
		if s == nil {
			continue
		}
		screenings = append(screenings, models.Screening{
			ID:        s.Id,
			FilmID:    s.FilmId,
			StartDate: timeFromProto(s.StartDate),
			EndDate:   timeFromProto(s.EndDate),
			Venue:     venueFromProto(s.Venue),
		})
	}
	return screenings
}

func venueFromProto(in *cinemapb.Venue) *models.Venue {
	if in == nil {
		return nil
	}

	venue := &models.Venue{
		ID:                  in.Id,
		MaximumSeatsCount:   in.MaximumSeatsCount,
		PurchasedSeatsCount: in.PurchasedSeatsCount,
		Seats:               make([]models.Seat, 0, len(in.Seats)),
	}
	for _, seat := range in.Seats {
		if seat == nil {
			continue
		}
		venue.Seats = append(venue.Seats, models.Seat{
			ID:        seat.Id,
			Type:      models.SeatType(seat.Type),
			Purchased: seat.Purchased,
		})
	}
	return venue
}

func timeFromProto(ts *cinemapb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return time.Unix(ts.Seconds, int64(ts.Nanos)).UTC()
}

// subscribeRequestToProto keeps absent axes nil so they are left out of the
// encoded request.
func subscribeRequestToProto(filter models.SubscriptionFilter) *cinemapb.SubscribeScreeningsRequest {
	req := &cinemapb.SubscribeScreeningsRequest{}
	if !filter.FilmIDs.IsAbsent() {
		req.FilmIds = append([]int32(nil), filter.FilmIDs...)
	}
	if !filter.VenueIDs.IsAbsent() {
		req.VenueIds = append([]int32(nil), filter.VenueIDs...)
	}
	return req
}
