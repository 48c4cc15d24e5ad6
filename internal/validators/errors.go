package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidFilmID  = errors.New("invalid film id")
	ErrInvalidVenueID = errors.New("invalid venue id")
)
