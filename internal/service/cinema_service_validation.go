package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cinema-client/internal/validators"
	"github.com/MKhiriev/go-cinema-client/models"
)

// CinemaValidationService rejects malformed requests before they reach the
// wrapped service.
type CinemaValidationService struct {
	inner     CinemaService
	validator validators.Validator
}

func NewCinemaValidationService() CinemaServiceWrapper {
	return &CinemaValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *CinemaValidationService) Wrap(inner CinemaService) CinemaService {
	v.inner = inner
	return v
}

func (v *CinemaValidationService) Films(ctx context.Context) ([]models.Film, error) {
	return v.inner.Films(ctx)
}

func (v *CinemaValidationService) FilmScreenings(ctx context.Context, req models.FilmScreeningsRequest) ([]models.Screening, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	return v.inner.FilmScreenings(ctx, req)
}

func (v *CinemaValidationService) Subscribe(ctx context.Context, filter models.SubscriptionFilter, onBatch func([]models.Screening) error) error {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	return v.inner.Subscribe(ctx, filter, onBatch)
}
