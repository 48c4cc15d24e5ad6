// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Film is a summary record of a film known to the cinema service.
type Film struct {
	ID       int32
	Name     string
	Duration time.Duration
}

// FilmScreeningsRequest asks the cinema service for all screenings of a
// single film.
type FilmScreeningsRequest struct {
	FilmID int32
}
