package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cinema-client/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// error. Both sentinels stay in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrUnknownFilm, err)
	case errors.Is(err, adapter.ErrServiceRejected):
		return fmt.Errorf("%w: %w", ErrServiceRejected, err)
	case errors.Is(err, adapter.ErrCommunication):
		return fmt.Errorf("%w: %w", ErrCommunication, err)
	}

	return err
}
