package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cinema-client/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldFilmID targets the film identifier of a screenings request.
	FieldFilmID = "film_id"

	// FieldFilmIDs targets the film axis of a subscription filter.
	FieldFilmIDs = "film_ids"

	// FieldVenueIDs targets the venue axis of a subscription filter.
	FieldVenueIDs = "venue_ids"
)

// RequestValidator implements [Validator] for the requests sent to the
// cinema service: models.FilmScreeningsRequest and models.SubscriptionFilter.
// Value and pointer forms are both accepted.
type RequestValidator struct {
}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. It returns
// ErrUnsupportedType for any other type and ErrUnknownField for a field
// name the type does not have.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FilmScreeningsRequest:
		return v.validateFilmScreeningsRequest(ctx, value, fields...)
	case *models.FilmScreeningsRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateFilmScreeningsRequest(ctx, *value, fields...)
	case models.SubscriptionFilter:
		return v.validateSubscriptionFilter(ctx, value, fields...)
	case *models.SubscriptionFilter:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSubscriptionFilter(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateFilmScreeningsRequest(_ context.Context, request models.FilmScreeningsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFilmID}
	}

	for _, f := range fields {
		switch f {
		case FieldFilmID:
			if request.FilmID < 0 {
				return fmt.Errorf("%w: %d", ErrInvalidFilmID, request.FilmID)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// An absent axis is always valid: it means "no restriction".
func (v *RequestValidator) validateSubscriptionFilter(_ context.Context, filter models.SubscriptionFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFilmIDs, FieldVenueIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldFilmIDs:
			if err := validateIdentifiers(filter.FilmIDs, ErrInvalidFilmID); err != nil {
				return err
			}
		case FieldVenueIDs:
			if err := validateIdentifiers(filter.VenueIDs, ErrInvalidVenueID); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateIdentifiers(ids models.IdentifierList, sentinel error) error {
	for i, id := range ids {
		if id < 0 {
			return fmt.Errorf("%w: %d at index %d", sentinel, id, i)
		}
	}
	return nil
}
