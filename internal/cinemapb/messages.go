package cinemapb

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Empty is cinema.Empty.
type Empty struct{}

func (*Empty) MarshalProto() ([]byte, error) { return nil, nil }

func (*Empty) UnmarshalProto(b []byte) error {
	return walk(b, func(protowire.Number, protowire.Type, []byte) (int, bool, error) {
		return 0, false, nil
	})
}

// Film is cinema.Film.
type Film struct {
	Id          int32
	Name        string
	DurationSec int32
}

func (m *Film) MarshalProto() ([]byte, error) {
	var b []byte
	b = appendInt32(b, 1, m.Id)
	b = appendString(b, 2, m.Name)
	b = appendInt32(b, 3, m.DurationSec)
	return b, nil
}

func (m *Film) UnmarshalProto(b []byte) error {
	*m = Film{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		var (
			n   int
			err error
		)
		switch num {
		case 1:
			n, err = consumeInt32(typ, b, &m.Id)
		case 2:
			n, err = consumeString(typ, b, &m.Name)
		case 3:
			n, err = consumeInt32(typ, b, &m.DurationSec)
		default:
			return 0, false, nil
		}
		return n, true, err
	})
}

// Films is cinema.Films, the response of GetFilms.
type Films struct {
	Films []*Film
}

func (m *Films) MarshalProto() ([]byte, error) {
	var (
		b   []byte
		err error
	)
	for _, f := range m.Films {
		if b, err = appendMessage(b, 1, f); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *Films) UnmarshalProto(b []byte) error {
	*m = Films{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		if num != 1 {
			return 0, false, nil
		}
		f := new(Film)
		n, err := consumeMessage(typ, b, f)
		m.Films = append(m.Films, f)
		return n, true, err
	})
}

// Timestamp is google.protobuf.Timestamp.
type Timestamp struct {
	Seconds int64
	Nanos   int32
}

func (m *Timestamp) MarshalProto() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 1, m.Seconds)
	b = appendInt32(b, 2, m.Nanos)
	return b, nil
}

func (m *Timestamp) UnmarshalProto(b []byte) error {
	*m = Timestamp{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		var (
			n   int
			err error
		)
		switch num {
		case 1:
			n, err = consumeInt64(typ, b, &m.Seconds)
		case 2:
			n, err = consumeInt32(typ, b, &m.Nanos)
		default:
			return 0, false, nil
		}
		return n, true, err
	})
}

// Seat is cinema.Seat. Type carries the cinema.SeatType enum value.
type Seat struct {
	Id        int32
	Type      int32
	Purchased bool
}

func (m *Seat) MarshalProto() ([]byte, error) {
	var b []byte
	b = appendInt32(b, 1, m.Id)
	b = appendInt32(b, 2, m.Type)
	b = appendBool(b, 3, m.Purchased)
	return b, nil
}

func (m *Seat) UnmarshalProto(b []byte) error {
	*m = Seat{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		var (
			n   int
			err error
		)
		switch num {
		case 1:
			n, err = consumeInt32(typ, b, &m.Id)
		case 2:
			n, err = consumeInt32(typ, b, &m.Type)
		case 3:
			n, err = consumeBool(typ, b, &m.Purchased)
		default:
			return 0, false, nil
		}
		return n, true, err
	})
}

// Venue is cinema.Venue.
type Venue struct {
	Id                  int32
	MaximumSeatsCount   int32
	PurchasedSeatsCount int32
	Seats               []*Seat
}

func (m *Venue) MarshalProto() ([]byte, error) {
	var (
		b   []byte
		err error
	)
	b = appendInt32(b, 1, m.Id)
	b = appendInt32(b, 2, m.MaximumSeatsCount)
	b = appendInt32(b, 3, m.PurchasedSeatsCount)
	for _, s := range m.Seats {
		if b, err = appendMessage(b, 4, s); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *Venue) UnmarshalProto(b []byte) error {
	*m = Venue{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		var (
			n   int
			err error
		)
		switch num {
		case 1:
			n, err = consumeInt32(typ, b, &m.Id)
		case 2:
			n, err = consumeInt32(typ, b, &m.MaximumSeatsCount)
		case 3:
			n, err = consumeInt32(typ, b, &m.PurchasedSeatsCount)
		case 4:
			s := new(Seat)
			n, err = consumeMessage(typ, b, s)
			m.Seats = append(m.Seats, s)
		default:
			return 0, false, nil
		}
		return n, true, err
	})
}

// Screening is cinema.Screening.
type Screening struct {
	Id        int32
	FilmId    int32
	StartDate *Timestamp
	EndDate   *Timestamp
	Venue     *Venue
}

func (m *Screening) MarshalProto() ([]byte, error) {
	var (
		b   []byte
		err error
	)
	b = appendInt32(b, 1, m.Id)
	b = appendInt32(b, 2, m.FilmId)
	if m.StartDate != nil {
		if b, err = appendMessage(b, 3, m.StartDate); err != nil {
			return nil, err
		}
	}
	if m.EndDate != nil {
		if b, err = appendMessage(b, 4, m.EndDate); err != nil {
			return nil, err
		}
	}
	if m.Venue != nil {
		if b, err = appendMessage(b, 5, m.Venue); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *Screening) UnmarshalProto(b []byte) error {
	*m = Screening{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		var (
			n   int
			err error
		)
		switch num {
		case 1:
			n, err = consumeInt32(typ, b, &m.Id)
		case 2:
			n, err = consumeInt32(typ, b, &m.FilmId)
		case 3:
			m.StartDate = new(Timestamp)
			n, err = consumeMessage(typ, b, m.StartDate)
		case 4:
			m.EndDate = new(Timestamp)
			n, err = consumeMessage(typ, b, m.EndDate)
		case 5:
			m.Venue = new(Venue)
			n, err = consumeMessage(typ, b, m.Venue)
		default:
			return 0, false, nil
		}
		return n, true, err
	})
}

// Screenings is cinema.Screenings: the response of GetFilmScreenings and one
// batch of the SubscribeScreenings stream.
type Screenings struct {
	Screenings []*Screening
}

func (m *Screenings) MarshalProto() ([]byte, error) {
	var (
		b   []byte
		err error
	)
	for _, s := range m.Screenings {
		if b, err = appendMessage(b, 1, s); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *Screenings) UnmarshalProto(b []byte) error {
	*m = Screenings{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		if num != 1 {
			return 0, false, nil
		}
		s := new(Screening)
		n, err := consumeMessage(typ, b, s)
		m.Screenings = append(m.Screenings, s)
		return n, true, err
	})
}

// GetFilmScreeningsRequest is cinema.GetFilmScreeningsRequest.
type GetFilmScreeningsRequest struct {
	FilmId int32
}

func (m *GetFilmScreeningsRequest) MarshalProto() ([]byte, error) {
	return appendInt32(nil, 1, m.FilmId), nil
}

func (m *GetFilmScreeningsRequest) UnmarshalProto(b []byte) error {
	*m = GetFilmScreeningsRequest{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		if num != 1 {
			return 0, false, nil
		}
		n, err := consumeInt32(typ, b, &m.FilmId)
		return n, true, err
	})
}

// SubscribeScreeningsRequest is cinema.SubscribeScreeningsRequest. A nil
// slice leaves the field out of the encoded message.
type SubscribeScreeningsRequest struct {
	FilmIds  []int32
	VenueIds []int32
}

func (m *SubscribeScreeningsRequest) MarshalProto() ([]byte, error) {
	var b []byte
	b = appendPackedInt32s(b, 1, m.FilmIds)
	b = appendPackedInt32s(b, 2, m.VenueIds)
	return b, nil
}

func (m *SubscribeScreeningsRequest) UnmarshalProto(b []byte) error {
	*m = SubscribeScreeningsRequest{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		var (
			n   int
			err error
		)
		switch num {
		case 1:
			n, err = consumeInt32s(typ, b, &m.FilmIds)
		case 2:
			n, err = consumeInt32s(typ, b, &m.VenueIds)
		default:
			return 0, false, nil
		}
		return n, true, err
	})
}
