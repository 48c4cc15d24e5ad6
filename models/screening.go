// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"time"
)

// SeatType classifies a seat inside a venue.
type SeatType int32

const (
	SeatTypeStandard SeatType = iota
	SeatTypeComfort
	SeatTypeVIP
)

// String returns the upper-case wire name of the seat type.
func (t SeatType) String() string {
	switch t {
	case SeatTypeStandard:
		return "STANDARD"
	case SeatTypeComfort:
		return "COMFORT"
	case SeatTypeVIP:
		return "VIP"
	default:
		return "SEAT_TYPE_" + strconv.Itoa(int(t))
	}
}

// Seat is one seat of a venue.
type Seat struct {
	ID        int32
	Type      SeatType
	Purchased bool
}

// Venue is the hall a screening takes place in.
type Venue struct {
	ID                  int32
	MaximumSeatsCount   int32
	PurchasedSeatsCount int32
	Seats               []Seat
}

// Screening is a single showing of a film in a venue.
//
// Venue is nil when the service did not report one.
type Screening struct {
	ID        int32
	FilmID    int32
	StartDate time.Time
	EndDate   time.Time
	Venue     *Venue
}
