// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// IdentifierList is an ordered list of film or venue identifiers collected
// from the user for one filter axis.
//
// A nil list means the axis was not provided at all. A subscribe request
// omits such an axis entirely instead of sending an empty list.
type IdentifierList []int32

// IsAbsent reports whether the axis carries no identifiers.
func (l IdentifierList) IsAbsent() bool {
	return len(l) == 0
}

// SubscriptionFilter selects which live screening updates a subscription
// receives. Either axis may be absent.
type SubscriptionFilter struct {
	FilmIDs  IdentifierList
	VenueIDs IdentifierList
}
